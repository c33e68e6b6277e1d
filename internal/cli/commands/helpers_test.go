package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/spf13/cobra"
)

type seenRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   string
}

// fakeBackend records every request and answers from a route table keyed by
// "METHOD /path".
type fakeBackend struct {
	mu       sync.Mutex
	requests []seenRequest
	routes   map[string]http.HandlerFunc
	srv      *httptest.Server
}

func newFakeBackend(t *testing.T, routes map[string]http.HandlerFunc) *fakeBackend {
	t.Helper()
	b := &fakeBackend{routes: routes}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.requests = append(b.requests, seenRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Auth:   r.Header.Get("Authorization"),
		Body:   string(body),
	})
	handler, ok := b.routes[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !ok {
		http.Error(w, `{"detail": "Not found."}`, http.StatusNotFound)
		return
	}
	handler(w, r)
}

func (b *fakeBackend) URL() string {
	return b.srv.URL
}

func (b *fakeBackend) Requests() []seenRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]seenRequest(nil), b.requests...)
}

func (b *fakeBackend) find(method, path string) (seenRequest, bool) {
	for _, r := range b.Requests() {
		if r.Method == method && r.Path == path {
			return r, true
		}
	}
	return seenRequest{}, false
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

// execute runs cmd with args and returns what it wrote to stdout and stderr.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// isolate keeps a test away from the developer's home directory and any
// .env or roomdesk.json in the package directory.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROOMDESK_API_BASE_URL", "")
	t.Setenv("ROOMDESK_HTTP_TIMEOUT", "")
	t.Setenv("ROOMDESK_RATE_LIMIT", "")
	dir := t.TempDir()
	testChdir(t, dir)
	return dir
}

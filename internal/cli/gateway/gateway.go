// Package gateway prepares every outgoing backend request: it normalizes the
// path, picks the credential to attach, and reports authentication rejections
// to a listener without acting on them.
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"

	defaultTimeout = 30 * time.Second
)

// Gateway dispatches requests to a single backend.
type Gateway struct {
	baseURL    string
	creds      CredentialSource
	httpClient *http.Client
	notifier   Notifier
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		if c != nil {
			g.httpClient = c
		}
	}
}

// WithNotifier registers the listener for unauthorized responses.
func WithNotifier(n Notifier) Option {
	return func(g *Gateway) {
		g.notifier = n
	}
}

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Gateway) {
		g.logger = l
	}
}

// WithRateLimit caps outgoing requests per second. rps <= 0 disables the limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(g *Gateway) {
		if rps <= 0 {
			g.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// New creates a Gateway for baseURL reading credentials from creds.
func New(baseURL string, creds CredentialSource, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL:    CleanBaseURL(baseURL),
		creds:      creds,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// BaseURL returns the cleaned base URL requests are resolved against.
func (g *Gateway) BaseURL() string {
	return g.baseURL
}

// CleanBaseURL trims a trailing slash and drops a trailing "/api" segment so
// that canonical "/api/..." paths are not prefixed twice.
func CleanBaseURL(raw string) string {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	return strings.TrimSuffix(base, "/api")
}

type routeKey struct{}

// RouteFromContext returns the Route attached to a request built by NewRequest.
func RouteFromContext(ctx context.Context) (Route, bool) {
	r, ok := ctx.Value(routeKey{}).(Route)
	return r, ok
}

// NewRequest builds a request for path. The path is normalized first and the
// classification and credential decision are derived from the normalized form.
// Absolute URLs are classified like any other path regardless of host, so a
// stored bearer token goes with them. Only pass absolute URLs for hosts that
// may see it.
func (g *Gateway) NewRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	normalized := Normalize(path)

	target := normalized
	if !IsAbsoluteURL(normalized) {
		target = g.baseURL + normalized
	}
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + query.Encode()
	}

	route := Classify(normalized)
	req, err := http.NewRequestWithContext(context.WithValue(ctx, routeKey{}, route), method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(HeaderContentType, "application/json")
	req.Header.Set(HeaderRequestID, ulid.Make().String())
	Apply(req.Header, route, g.creds)

	return req, nil
}

// Do sends req. Transport errors and non-2xx responses are returned to the
// caller unchanged; a 401 additionally produces one UnauthorizedEvent.
func (g *Gateway) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	route, ok := RouteFromContext(ctx)
	if !ok {
		route = Classify(Normalize(req.URL.Path))
	}

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Debug().
			Err(err).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("route", string(route.Kind())).
			Str("request_id", req.Header.Get(HeaderRequestID)).
			Msg("Request failed")
		return nil, err
	}

	g.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("route", string(route.Kind())).
		Str("request_id", req.Header.Get(HeaderRequestID)).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Request completed")

	if resp.StatusCode == http.StatusUnauthorized && g.notifier != nil {
		g.notifier.Unauthorized(ctx, UnauthorizedEvent{Status: resp.StatusCode})
	}

	return resp, nil
}

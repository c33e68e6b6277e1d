package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{
  "servers": [
    {"url": "https://book.test/api/", "alias": "prod"},
    {"url": "http://localhost:8000", "alias": "local"}
  ]
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Servers, 2)

	prod, err := cfg.GetServerByAlias("prod")
	require.NoError(t, err)
	assert.Equal(t, "https://book.test", prod.BaseURL())

	def, err := cfg.GetDefaultServer()
	require.NoError(t, err)
	assert.Equal(t, "prod", def.Alias)

	_, err = cfg.GetServerByAlias("staging")
	assert.ErrorContains(t, err, "staging")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{"servers": [`, "failed to parse config file"},
		{"missing url", `{"servers": [{"alias": "prod"}]}`, "URL"},
		{"not a url", `{"servers": [{"url": "book.test", "alias": "prod"}]}`, "http_url"},
		{"missing alias", `{"servers": [{"url": "https://book.test"}]}`, "Alias"},
		{"duplicate alias", `{"servers": [{"url": "https://a.test", "alias": "x"}, {"url": "https://b.test", "alias": "x"}]}`, "duplicate server alias"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGetServerByURL(t *testing.T) {
	cfg := &Config{Servers: []Server{
		{URL: "https://book.test/api", Alias: "prod"},
	}}

	s, err := cfg.GetServerByURL("https://book.test/")
	require.NoError(t, err)
	assert.Equal(t, "prod", s.Alias)

	_, err = cfg.GetServerByURL("https://other.test")
	assert.Error(t, err)
}

func TestGetDefaultServer_Empty(t *testing.T) {
	_, err := (&Config{}).GetDefaultServer()
	assert.ErrorContains(t, err, "no servers configured")
}

func TestFindConfigFile_SearchesParents(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"servers": []}`)

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	testChdir(t, nested)

	path, err := FindConfigFile()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(filepath.Join(root, ConfigFileName))
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, Save(path, DefaultConfig()))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

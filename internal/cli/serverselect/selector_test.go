package serverselect

import (
	"testing"

	"github.com/roomdesk/roomdesk/internal/cli/config"
	"github.com/roomdesk/roomdesk/internal/cli/userconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoServers() *config.Config {
	return &config.Config{Servers: []config.Server{
		{URL: "https://book.test/api", Alias: "prod"},
		{URL: "http://localhost:8000", Alias: "local"},
	}}
}

func TestResolveServer_AliasWins(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, userconfig.SelectServer("http://localhost:8000", "local"))

	server, err := ResolveServer(twoServers(), "prod")
	require.NoError(t, err)
	assert.Equal(t, "prod", server.Alias)
}

func TestResolveServer_UnknownAlias(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := ResolveServer(twoServers(), "staging")
	assert.ErrorContains(t, err, "staging")
}

func TestResolveServer_UsesSelected(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, userconfig.SelectServer("https://book.test", ""))

	server, err := ResolveServer(twoServers(), "")
	require.NoError(t, err)
	assert.Equal(t, "prod", server.Alias)
}

func TestResolveServer_SingleServerIsRemembered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, userconfig.SelectServer("https://gone.test", "gone"))

	cfg := &config.Config{Servers: []config.Server{{URL: "https://book.test/", Alias: "prod"}}}
	server, err := ResolveServer(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "prod", server.Alias)

	sel, err := userconfig.Selected()
	require.NoError(t, err)
	assert.Equal(t, userconfig.Selection{URL: "https://book.test", Alias: "prod"}, sel)
}

func TestResolveServer_SelectionFollowsAliasWhenURLChanged(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, userconfig.SelectServer("https://old.book.test", "prod"))

	server, err := ResolveServer(twoServers(), "")
	require.NoError(t, err)
	assert.Equal(t, "prod", server.Alias)

	sel, err := userconfig.Selected()
	require.NoError(t, err)
	assert.Equal(t, userconfig.Selection{URL: "https://book.test", Alias: "prod"}, sel)
}

func TestGetServerByURLOrAlias(t *testing.T) {
	cfg := twoServers()

	s, err := GetServerByURLOrAlias(cfg, "local")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", s.URL)

	s, err = GetServerByURLOrAlias(cfg, "https://book.test/")
	require.NoError(t, err)
	assert.Equal(t, "prod", s.Alias)

	_, err = GetServerByURLOrAlias(cfg, "nope")
	assert.Error(t, err)
}

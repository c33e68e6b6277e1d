package commands

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomdesk/roomdesk/internal/cli/auth"
	"github.com/roomdesk/roomdesk/internal/cli/config"
	"github.com/roomdesk/roomdesk/internal/cli/userconfig"
)

func TestInitCommand_NewConfig(t *testing.T) {
	dir := isolate(t)

	stdout, _, err := execute(t, NewInitCmd(), "https://book.test/api/")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created ./roomdesk.json")

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	require.Len(t, cfg.Servers, 1)
	assert.Equal(t, "https://book.test", cfg.Servers[0].URL)
	assert.Equal(t, "server-1", cfg.Servers[0].Alias)
}

func TestInitCommand_AppendsWithAlias(t *testing.T) {
	dir := isolate(t)

	_, _, err := execute(t, NewInitCmd(), "https://book.test")
	require.NoError(t, err)

	stdout, _, err := execute(t, NewInitCmd(), "http://localhost:8000", "--alias", "local")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Found existing roomdesk.json")
	assert.Contains(t, stdout, "Added server http://localhost:8000 (local)")

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	require.Len(t, cfg.Servers, 2)
	assert.Equal(t, "local", cfg.Servers[1].Alias)
}

func TestInitCommand_DuplicateURL(t *testing.T) {
	dir := isolate(t)

	_, _, err := execute(t, NewInitCmd(), "https://book.test")
	require.NoError(t, err)

	stdout, _, err := execute(t, NewInitCmd(), "https://book.test/api")
	require.NoError(t, err)
	assert.Contains(t, stdout, "already exists")

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Len(t, cfg.Servers, 1)
}

func TestInitCommand_RejectsInvalidURL(t *testing.T) {
	dir := isolate(t)

	_, _, err := execute(t, NewInitCmd(), "book.test")
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, config.ConfigFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSelectServer_ByAlias(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, NewInitCmd(), "https://book.test", "--alias", "prod")
	require.NoError(t, err)
	_, _, err = execute(t, NewInitCmd(), "http://localhost:8000", "--alias", "local")
	require.NoError(t, err)

	stdout, _, err := execute(t, NewSelectServerCmd(), "local")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Selected server: local (http://localhost:8000)")

	sel, err := userconfig.Selected()
	require.NoError(t, err)
	assert.Equal(t, userconfig.Selection{URL: "http://localhost:8000", Alias: "local"}, sel)
}

func TestCommands_ResolveServerFromProjectConfig(t *testing.T) {
	isolate(t)

	backend := newFakeBackend(t, map[string]http.HandlerFunc{
		"GET /api/v1/hotels/": respond(http.StatusOK, `[]`),
	})

	_, _, err := execute(t, NewInitCmd(), backend.URL(), "--alias", "test")
	require.NoError(t, err)

	stdout, _, err := execute(t, NewHotelsCmd(WithStore(auth.NewMemoryStore())), "ls")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No hotels found.")

	_, ok := backend.find(http.MethodGet, "/api/v1/hotels/")
	assert.True(t, ok)
}

func TestCommands_MissingProjectConfig(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, NewHotelsCmd(WithStore(auth.NewMemoryStore())), "ls")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roomdesk init")
}

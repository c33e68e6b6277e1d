// Package userconfig keeps per-user CLI state that does not belong in the
// project's roomdesk.json: which server was picked and, per server, the guest
// email last used for a one-time code.
package userconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roomdesk/roomdesk/internal/cli/gateway"
)

const (
	configDirName = "roomdesk"
	stateFileName = "state.yaml"
)

// Selection is the server commands run against when --server is not given.
type Selection struct {
	URL   string `yaml:"url"`
	Alias string `yaml:"alias,omitempty"`
}

// ServerState is remembered per backend, keyed by its cleaned base URL.
type ServerState struct {
	GuestEmail string `yaml:"guest_email,omitempty"`
}

// State is the content of ~/.config/roomdesk/state.yaml.
type State struct {
	Selected Selection              `yaml:"selected,omitempty"`
	Servers  map[string]ServerState `yaml:"servers,omitempty"`
}

// Path returns the location of the state file.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", configDirName, stateFileName), nil
}

// Load reads the state file. A missing file is an empty state.
func Load() (*State, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &State{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user state: %w", err)
	}

	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to parse user state %s: %w", path, err)
	}
	return &st, nil
}

// Save replaces the state file. The file holds guest emails, so it is
// readable by the owner only.
func Save(st *State) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal user state: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write user state: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write user state: %w", err)
	}
	return nil
}

// Update loads the state, applies fn and saves the result.
func Update(fn func(*State)) error {
	st, err := Load()
	if err != nil {
		return err
	}
	fn(st)
	return Save(st)
}

// SelectServer remembers serverURL (cleaned) and the alias it was picked by.
func SelectServer(serverURL, alias string) error {
	return Update(func(st *State) {
		st.Selected = Selection{URL: gateway.CleanBaseURL(serverURL), Alias: alias}
	})
}

// ClearSelection forgets the selected server.
func ClearSelection() error {
	return Update(func(st *State) {
		st.Selected = Selection{}
	})
}

// Selected returns the remembered server, or a zero Selection.
func Selected() (Selection, error) {
	st, err := Load()
	if err != nil {
		return Selection{}, err
	}
	return st.Selected, nil
}

// RememberGuestEmail records the email a one-time code was sent to on server.
func RememberGuestEmail(server, email string) error {
	key := gateway.CleanBaseURL(server)
	return Update(func(st *State) {
		if st.Servers == nil {
			st.Servers = make(map[string]ServerState)
		}
		s := st.Servers[key]
		s.GuestEmail = email
		st.Servers[key] = s
	})
}

// GuestEmail returns the email last used for a one-time code on server.
func GuestEmail(server string) (string, error) {
	st, err := Load()
	if err != nil {
		return "", err
	}
	return st.Servers[gateway.CleanBaseURL(server)].GuestEmail, nil
}

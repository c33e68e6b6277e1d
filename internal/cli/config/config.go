package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/roomdesk/roomdesk/internal/cli/gateway"
)

const ConfigFileName = "roomdesk.json"

// Server represents a booking backend the CLI can talk to
type Server struct {
	URL   string `json:"url" validate:"required,http_url"`
	Alias string `json:"alias" validate:"required"`
}

// BaseURL returns the server URL with any trailing "/" or "/api" removed.
func (s Server) BaseURL() string {
	return gateway.CleanBaseURL(s.URL)
}

// Config represents the project configuration file
type Config struct {
	Servers []Server `json:"servers" validate:"dive"`
}

// DefaultConfig returns a default configuration with an example server
func DefaultConfig() *Config {
	return &Config{
		Servers: []Server{
			{
				URL:   "http://localhost:8000",
				Alias: "local",
			},
		},
	}
}

// FindConfigFile searches for roomdesk.json in current directory and parent directories
func FindConfigFile() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	// Search upwards until we find roomdesk.json or reach root
	dir := currentDir
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found in %s or any parent directory", ConfigFileName, currentDir)
}

// Load reads and validates the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromCurrentDir loads config from current directory or parent directories
func LoadFromCurrentDir() (*Config, error) {
	configPath, err := FindConfigFile()
	if err != nil {
		return nil, err
	}

	return Load(configPath)
}

// Save writes the configuration to a file
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks every server entry and rejects duplicate aliases
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid %s: %s failed on '%s'", ConfigFileName, fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}

	seen := make(map[string]bool, len(c.Servers))
	for _, s := range c.Servers {
		if seen[s.Alias] {
			return fmt.Errorf("invalid %s: duplicate server alias '%s'", ConfigFileName, s.Alias)
		}
		seen[s.Alias] = true
	}
	return nil
}

// GetServerByAlias returns a server by its alias
func (c *Config) GetServerByAlias(alias string) (*Server, error) {
	for i := range c.Servers {
		if c.Servers[i].Alias == alias {
			return &c.Servers[i], nil
		}
	}
	return nil, fmt.Errorf("server with alias '%s' not found", alias)
}

// GetServerByURL returns a server whose cleaned URL matches rawURL
func (c *Config) GetServerByURL(rawURL string) (*Server, error) {
	want := gateway.CleanBaseURL(rawURL)
	for i := range c.Servers {
		if c.Servers[i].BaseURL() == want {
			return &c.Servers[i], nil
		}
	}
	return nil, fmt.Errorf("server with URL '%s' not found", rawURL)
}

// GetDefaultServer returns the first server in the list
func (c *Config) GetDefaultServer() (*Server, error) {
	if len(c.Servers) == 0 {
		return nil, fmt.Errorf("no servers configured in %s", ConfigFileName)
	}
	return &c.Servers[0], nil
}

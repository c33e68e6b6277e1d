package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/roomdesk/roomdesk/internal/cli/config"
	"github.com/roomdesk/roomdesk/internal/cli/gateway"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var alias string

	cmd := &cobra.Command{
		Use:   "init <url>",
		Short: "Add a booking backend to ./roomdesk.json",
		Long: `Add a booking backend to ./roomdesk.json, creating the file if needed.

Examples:
  $ roomdesk init https://book.example.com
  $ roomdesk init http://localhost:8000/api --alias local`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, args[0], alias)
		},
	}

	cmd.Flags().StringVar(&alias, "alias", "", "Alias for the server (defaults to server-N)")

	return cmd
}

func runInit(cmd *cobra.Command, rawURL, alias string) error {
	out := cmd.OutOrStdout()

	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(currentDir, config.ConfigFileName)

	var cfg *config.Config
	isNewConfig := false

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load existing config: %w", err)
		}
		fmt.Fprintf(out, "Found existing %s\n", config.ConfigFileName)
	} else {
		cfg = &config.Config{
			Servers: []config.Server{},
		}
		isNewConfig = true
	}

	baseURL := gateway.CleanBaseURL(rawURL)

	if existing, err := cfg.GetServerByURL(baseURL); err == nil {
		fmt.Fprintf(out, "Server %s already exists in %s as '%s'\n", baseURL, config.ConfigFileName, existing.Alias)
		return nil
	}

	if alias == "" {
		alias = fmt.Sprintf("server-%d", len(cfg.Servers)+1)
	}

	cfg.Servers = append(cfg.Servers, config.Server{
		URL:   baseURL,
		Alias: alias,
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	if isNewConfig {
		fmt.Fprintf(out, "✓ Created ./%s with server %s (%s)\n", config.ConfigFileName, baseURL, alias)
	} else {
		fmt.Fprintf(out, "✓ Added server %s (%s) to ./%s\n", baseURL, alias, config.ConfigFileName)
	}

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Run 'roomdesk login' to sign in as staff")
	fmt.Fprintln(out, "  2. Or run 'roomdesk otp request <email>' to manage bookings as a guest")

	return nil
}

package commands

import (
	"fmt"

	"github.com/roomdesk/roomdesk/internal/cli/config"
	"github.com/roomdesk/roomdesk/internal/cli/serverselect"
	"github.com/roomdesk/roomdesk/internal/cli/userconfig"
	"github.com/spf13/cobra"
)

// NewSelectServerCmd creates the select-server command
func NewSelectServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select-server [url-or-alias]",
		Short: "Select the server to use for commands",
		Long: `Select the server to use for commands.

If no param is provided, an interactive prompt will be shown.

Examples:
  $ roomdesk select-server                           # Interactive selection
  $ roomdesk select-server https://book.example.com  # Select by URL
  $ roomdesk select-server production                # Select by alias`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var urlOrAlias string
			if len(args) > 0 {
				urlOrAlias = args[0]
			}
			return runSelectServer(cmd, urlOrAlias)
		},
	}

	return cmd
}

func runSelectServer(cmd *cobra.Command, urlOrAlias string) error {
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return fmt.Errorf("failed to load config: %w\nRun 'roomdesk init <url>' to create a configuration file", err)
	}

	var server *config.Server

	if urlOrAlias != "" {
		server, err = serverselect.GetServerByURLOrAlias(cfg, urlOrAlias)
		if err != nil {
			return err
		}
	} else {
		server, err = serverselect.PromptServerSelection(cfg)
		if err != nil {
			return err
		}
	}

	if err := userconfig.SelectServer(server.BaseURL(), server.Alias); err != nil {
		return fmt.Errorf("failed to save selected server: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Selected server: %s (%s)\n", server.Alias, server.BaseURL())
	return nil
}

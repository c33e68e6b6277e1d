package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/roomdesk/roomdesk/internal/cli/commands"
	"github.com/roomdesk/roomdesk/internal/config"
	"github.com/roomdesk/roomdesk/internal/logger"
	"github.com/spf13/cobra"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "roomdesk",
	Short: "roomdesk - hotel booking from the terminal",
	Long: `roomdesk CLI - Browse hotels, book rooms and run the front desk.

Guests verify their email with a one-time code to manage their bookings.
Staff sign in with a username and password to manage hotels, rooms,
inventory and images.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if cmd.Flags().Changed("log-level") {
			level, _ = cmd.Flags().GetString("log-level")
		}
		logger.Init(level, cfg.Logging.Format)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "Server alias from roomdesk.json")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format: table, json or yaml")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (or set ROOMDESK_LOG_LEVEL)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "roomdesk version %s\n", version)
		},
	})

	rootCmd.AddCommand(commands.NewInitCmd())
	rootCmd.AddCommand(commands.NewSelectServerCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewAuthCmd())
	rootCmd.AddCommand(commands.NewOTPCmd())
	rootCmd.AddCommand(commands.NewHotelsCmd())
	rootCmd.AddCommand(commands.NewBookCmd())
	rootCmd.AddCommand(commands.NewBookingsCmd())
	rootCmd.AddCommand(commands.NewAdminCmd())
}

// Execute runs the root command
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

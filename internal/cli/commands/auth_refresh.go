package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAuthCmd creates the auth command group
func NewAuthCmd(opts ...Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the staff session",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Exchange the refresh token for a new access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthRefresh(cmd, collect(opts))
		},
	})

	return cmd
}

func runAuthRefresh(cmd *cobra.Command, o *options) error {
	e, err := newEnv(cmd, o)
	if err != nil {
		return err
	}

	refresh := e.session.RefreshToken()
	if refresh == "" {
		return fmt.Errorf("no refresh token stored; run 'roomdesk login'")
	}

	access, err := e.api.RefreshToken(e.ctx(cmd), refresh)
	if err != nil {
		return fmt.Errorf("failed to refresh access token: %w", err)
	}

	if err := e.session.Refresh(access); err != nil {
		return err
	}

	fmt.Fprintln(e.out, "✓ Access token refreshed")
	return nil
}

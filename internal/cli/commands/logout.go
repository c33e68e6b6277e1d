package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd(opts ...Option) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget every stored credential for the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd, collect(opts))
			if err != nil {
				return err
			}
			if err := e.session.Logout(); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "✓ Logged out of %s\n", e.serverLabel())
			return nil
		},
	}
}

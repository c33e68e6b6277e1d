package commands

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/roomdesk/roomdesk/internal/cli/client"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCmd creates the login command
func NewLoginCmd(opts ...Option) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as hotel staff",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, collect(opts), username, password)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (or set ROOMDESK_USERNAME)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set ROOMDESK_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(cmd *cobra.Command, o *options, username, password string) error {
	// Check for environment variables (useful for CI/CD)
	if username == "" {
		username = os.Getenv("ROOMDESK_USERNAME")
	}
	if password == "" {
		password = os.Getenv("ROOMDESK_PASSWORD")
	}

	if username == "" {
		return fmt.Errorf("username is required (use --username flag or ROOMDESK_USERNAME env var)")
	}

	e, err := newEnv(cmd, o)
	if err != nil {
		return err
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if !term.IsTerminal(int(syscall.Stdin)) {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or ROOMDESK_PASSWORD env var)")
		}
		fmt.Fprint(e.errOut, "Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(bytePassword)
		fmt.Fprintln(e.errOut)
	}

	// Stale staff tokens go first. The email token is kept unless the backend
	// rejects the login, in which case the 401 reaches the guard and clears it too.
	if err := e.session.DropStaffTokens(); err != nil {
		return err
	}

	fmt.Fprintf(e.out, "Logging in to %s...\n", e.serverLabel())

	ctx := e.ctx(cmd)
	pair, err := e.api.ObtainToken(ctx, username, password)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return fmt.Errorf("login failed: invalid username or password")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	if err := e.session.Login(pair.Access, pair.Refresh); err != nil {
		return err
	}

	fmt.Fprintln(e.out, "✓ Login successful!")

	profile, err := e.api.Profile(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Msg("Failed to load profile after login")
		return nil
	}

	fmt.Fprintf(e.out, "  User: %s\n", displayName(profile))
	if profile.IsStaff || profile.IsSuperuser {
		fmt.Fprintln(e.out, "  Role: Staff")
	} else {
		fmt.Fprintln(e.out, "  Role: Guest (admin commands will be rejected by the server)")
	}

	return nil
}

func displayName(p *client.Profile) string {
	if p.FullName != "" {
		return fmt.Sprintf("%s (%s)", p.FullName, p.Username)
	}
	return p.Username
}

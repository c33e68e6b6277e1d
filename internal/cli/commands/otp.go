package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roomdesk/roomdesk/internal/cli/userconfig"
)

// NewOTPCmd creates the otp command group used by guests to manage their bookings
func NewOTPCmd(opts ...Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "otp",
		Short: "Verify a guest email address with a one-time code",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "request <email>",
		Short: "Email a one-time code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd, collect(opts))
			if err != nil {
				return err
			}
			if err := e.api.RequestOTP(e.ctx(cmd), args[0]); err != nil {
				return fmt.Errorf("failed to request code: %w", err)
			}
			e.rememberGuestEmail(args[0])
			fmt.Fprintf(e.out, "✓ Code sent to %s\n", args[0])
			fmt.Fprintln(e.out, "\nRun 'roomdesk otp verify <code>' once it arrives")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "verify [email] <code>",
		Short: "Exchange a one-time code for an email token",
		Long: `Exchange a one-time code for an email token.

The email defaults to the one the last code was requested for on this server.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd, collect(opts))
			if err != nil {
				return err
			}

			email, code := "", args[len(args)-1]
			if len(args) == 2 {
				email = args[0]
			} else {
				email, err = userconfig.GuestEmail(e.baseURL)
				if err != nil {
					return err
				}
				if email == "" {
					return fmt.Errorf("no code was requested from %s yet; run 'roomdesk otp request <email>' or pass the email", e.serverLabel())
				}
			}

			token, err := e.api.VerifyOTP(e.ctx(cmd), email, code)
			if err != nil {
				return fmt.Errorf("failed to verify code: %w", err)
			}
			if err := e.session.LoginEmail(token); err != nil {
				return err
			}
			e.rememberGuestEmail(email)
			fmt.Fprintf(e.out, "✓ Verified %s; booking commands will use the email token\n", email)
			return nil
		},
	})

	return cmd
}

func (e *env) rememberGuestEmail(email string) {
	if err := userconfig.RememberGuestEmail(e.baseURL, email); err != nil {
		e.logger.Warn().Err(err).Msg("Failed to remember guest email")
	}
}

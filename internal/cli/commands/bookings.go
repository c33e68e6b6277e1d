package commands

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/roomdesk/roomdesk/internal/cli/client"
	"github.com/roomdesk/roomdesk/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewBookCmd creates the book command
func NewBookCmd(opts ...Option) *cobra.Command {
	var req client.CreateBookingRequest

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a room",
		Long: `Book a room for a stay.

Requires a staff login or a verified email token (see 'roomdesk otp').

Examples:
  $ roomdesk book --room 12 --check-in 2026-11-02 --check-out 2026-11-05`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd, collect(opts))
			if err != nil {
				return err
			}
			if !e.session.IsAuthenticated() {
				return fmt.Errorf("booking requires a login; run 'roomdesk otp request <email>' or 'roomdesk login'")
			}

			booking, err := e.api.CreateBooking(e.ctx(cmd), req)
			if err != nil {
				return err
			}

			e.printer.Message("✓ Booking #%d created (%s)", booking.ID, booking.Status)
			return e.printer.Print(booking, bookingsTable([]client.Booking{*booking}))
		},
	}

	cmd.Flags().IntVar(&req.Room, "room", 0, "Room ID")
	cmd.Flags().StringVar(&req.CheckIn, "check-in", "", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.CheckOut, "check-out", "", "Check-out date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("room")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("check-out")

	return cmd
}

// NewBookingsCmd creates the commands for a guest's own bookings
func NewBookingsCmd(opts ...Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List or cancel your bookings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List your bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd, collect(opts))
			if err != nil {
				return err
			}

			bookings, err := e.api.MyBookings(e.ctx(cmd))
			if err != nil {
				return err
			}
			return printBookings(e, bookings)
		},
	})

	cmd.AddCommand(newCancelBookingCmd(opts, false))

	return cmd
}

func printBookings(e *env, bookings []client.Booking) error {
	if len(bookings) == 0 && e.printer.Format() == output.FormatTable {
		e.printer.Message("No bookings found.")
		e.printer.Message("\nBook a room with: roomdesk book --room <id> --check-in <date> --check-out <date>")
		return nil
	}
	return e.printer.Print(bookings, bookingsTable(bookings))
}

func newCancelBookingCmd(opts []Option, admin bool) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "booking")
			if err != nil {
				return err
			}

			o := collect(opts)
			var e *env
			if admin {
				e, err = newAdminEnv(cmd, o)
			} else {
				e, err = newEnv(cmd, o)
			}
			if err != nil {
				return err
			}

			if !yes {
				if err := confirm(fmt.Sprintf("Cancel booking #%d", id)); err != nil {
					return err
				}
			}

			msg, err := e.api.CancelBooking(e.ctx(cmd), id)
			if err != nil {
				return err
			}
			if msg == "" {
				msg = fmt.Sprintf("Booking #%d cancelled", id)
			}
			fmt.Fprintf(e.out, "✓ %s\n", msg)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

var errAborted = errors.New("aborted")

// confirm asks a yes/no question on the terminal.
func confirm(label string) error {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return errAborted
		}
		return fmt.Errorf("confirmation failed: %w", err)
	}
	return nil
}

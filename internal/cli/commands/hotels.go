package commands

import (
	"fmt"

	"github.com/roomdesk/roomdesk/internal/cli/client"
	"github.com/roomdesk/roomdesk/internal/cli/output"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewHotelsCmd creates the public hotel browsing commands
func NewHotelsCmd(opts ...Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotels",
		Short: "Browse hotels and rooms",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List hotels",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd, collect(opts))
			if err != nil {
				return err
			}

			hotels, err := e.api.ListHotels(e.ctx(cmd))
			if err != nil {
				return err
			}

			if len(hotels) == 0 {
				e.printer.Message("No hotels found.")
				if e.printer.Format() == output.FormatTable {
					return nil
				}
			}
			return e.printer.Print(hotels, hotelsTable(hotels))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <hotel-id>",
		Short: "Show a hotel and its rooms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "hotel")
			if err != nil {
				return err
			}

			e, err := newEnv(cmd, collect(opts))
			if err != nil {
				return err
			}

			var (
				hotel *client.Hotel
				rooms []client.Room
			)
			g, ctx := errgroup.WithContext(e.ctx(cmd))
			g.Go(func() error {
				var err error
				hotel, err = e.api.GetHotel(ctx, id)
				return err
			})
			g.Go(func() error {
				var err error
				rooms, err = e.api.ListHotelRooms(ctx, id)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			if e.printer.Format() != output.FormatTable {
				return e.printer.Print(struct {
					client.Hotel `yaml:",inline"`
					Rooms        []client.Room `json:"rooms" yaml:"rooms"`
				}{*hotel, rooms}, nil)
			}

			fmt.Fprintf(e.out, "%s (%s)\n", hotel.Name, hotel.City)
			fmt.Fprintf(e.out, "%s\n", hotel.Address)
			if hotel.Rating != "" {
				fmt.Fprintf(e.out, "Rating: %s\n", hotel.Rating)
			}
			if hotel.Description != "" {
				fmt.Fprintf(e.out, "\n%s\n", hotel.Description)
			}
			fmt.Fprintln(e.out)

			if len(rooms) == 0 {
				fmt.Fprintln(e.out, "No rooms listed.")
				return nil
			}
			return e.printer.Print(rooms, roomsTable(rooms))
		},
	})

	return cmd
}

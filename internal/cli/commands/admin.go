package commands

import (
	"fmt"

	"github.com/roomdesk/roomdesk/internal/cli/client"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewAdminCmd creates the staff-only command tree. Every subcommand needs a
// stored access token.
func NewAdminCmd(opts ...Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage hotels, rooms, inventory, bookings and images (staff only)",
	}

	cmd.AddCommand(newAdminHotelsCmd(opts))
	cmd.AddCommand(newAdminRoomsCmd(opts))
	cmd.AddCommand(newAdminInventoryCmd(opts))
	cmd.AddCommand(newAdminBookingsCmd(opts))
	cmd.AddCommand(newAdminImagesCmd(opts))

	return cmd
}

func newAdminHotelsCmd(opts []Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotels",
		Short: "Manage hotels",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List hotels",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newAdminEnv(cmd, collect(opts))
			if err != nil {
				return err
			}
			hotels, err := e.api.AdminListHotels(e.ctx(cmd))
			if err != nil {
				return err
			}
			return e.printer.Print(hotels, hotelsTable(hotels))
		},
	})

	var create client.HotelInput
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a hotel",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newAdminEnv(cmd, collect(opts))
			if err != nil {
				return err
			}
			hotel, err := e.api.AdminCreateHotel(e.ctx(cmd), create)
			if err != nil {
				return err
			}
			e.printer.Message("✓ Created hotel #%d", hotel.ID)
			return e.printer.Print(hotel, hotelsTable([]client.Hotel{*hotel}))
		},
	}
	bindHotelFlags(createCmd.Flags(), &create)
	cmd.AddCommand(createCmd)

	var update client.HotelInput
	updateCmd := &cobra.Command{
		Use:   "update <hotel-id>",
		Short: "Update a hotel; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "hotel")
			if err != nil {
				return err
			}
			e, err := newAdminEnv(cmd, collect(opts))
			if err != nil {
				return err
			}

			ctx := e.ctx(cmd)
			current, err := findHotel(e, cmd, id)
			if err != nil {
				return err
			}
			in := mergeHotel(cmd.Flags(), current, update)

			hotel, err := e.api.AdminUpdateHotel(ctx, id, in)
			if err != nil {
				return err
			}
			e.printer.Message("✓ Updated hotel #%d", hotel.ID)
			return e.printer.Print(hotel, hotelsTable([]client.Hotel{*hotel}))
		},
	}
	bindHotelFlags(updateCmd.Flags(), &update)
	cmd.AddCommand(updateCmd)

	cmd.AddCommand(newAdminDeleteCmd(opts, "hotel", func(e *env, cmd *cobra.Command, id int) error {
		return e.api.AdminDeleteHotel(e.ctx(cmd), id)
	}))

	return cmd
}

func bindHotelFlags(fs *pflag.FlagSet, in *client.HotelInput) {
	fs.StringVar(&in.Name, "name", "", "Hotel name")
	fs.StringVar(&in.City, "city", "", "City")
	fs.StringVar(&in.Address, "address", "", "Street address")
	fs.StringVar(&in.Rating, "rating", "", "Rating, e.g. 4.5")
	fs.StringVar(&in.PriceMin, "price-min", "", "Lowest nightly price")
	fs.StringVar(&in.Description, "description", "", "Description")
}

func findHotel(e *env, cmd *cobra.Command, id int) (*client.Hotel, error) {
	hotels, err := e.api.AdminListHotels(e.ctx(cmd))
	if err != nil {
		return nil, err
	}
	for i := range hotels {
		if hotels[i].ID == id {
			return &hotels[i], nil
		}
	}
	return nil, fmt.Errorf("hotel %d not found", id)
}

// mergeHotel starts from the stored hotel and applies only the flags the
// user set, so a PUT never blanks fields by accident.
func mergeHotel(fs *pflag.FlagSet, current *client.Hotel, flags client.HotelInput) client.HotelInput {
	in := client.HotelInput{
		Name:        current.Name,
		City:        current.City,
		Address:     current.Address,
		Rating:      current.Rating,
		PriceMin:    current.PriceMin,
		Description: current.Description,
	}
	if fs.Changed("name") {
		in.Name = flags.Name
	}
	if fs.Changed("city") {
		in.City = flags.City
	}
	if fs.Changed("address") {
		in.Address = flags.Address
	}
	if fs.Changed("rating") {
		in.Rating = flags.Rating
	}
	if fs.Changed("price-min") {
		in.PriceMin = flags.PriceMin
	}
	if fs.Changed("description") {
		in.Description = flags.Description
	}
	return in
}

func newAdminRoomsCmd(opts []Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Manage rooms",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newAdminEnv(cmd, collect(opts))
			if err != nil {
				return err
			}
			rooms, err := e.api.AdminListRooms(e.ctx(cmd))
			if err != nil {
				return err
			}
			return e.printer.Print(rooms, roomsTable(rooms))
		},
	})

	create := client.RoomInput{IsAvailable: true}
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a room",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newAdminEnv(cmd, collect(opts))
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("available") {
				create.AvailableRooms = create.TotalRooms
			}
			room, err := e.api.AdminCreateRoom(e.ctx(cmd), create)
			if err != nil {
				return err
			}
			e.printer.Message("✓ Created room #%d", room.ID)
			return e.printer.Print(room, roomsTable([]client.Room{*room}))
		},
	}
	bindRoomFlags(createCmd.Flags(), &create)
	cmd.AddCommand(createCmd)

	var update client.RoomInput
	updateCmd := &cobra.Command{
		Use:   "update <room-id>",
		Short: "Update a room; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "room")
			if err != nil {
				return err
			}
			e, err := newAdminEnv(cmd, collect(opts))
			if err != nil {
				return err
			}

			ctx := e.ctx(cmd)
			rooms, err := e.api.AdminListRooms(ctx)
			if err != nil {
				return err
			}
			var current *client.Room
			for i := range rooms {
				if rooms[i].ID == id {
					current = &rooms[i]
					break
				}
			}
			if current == nil {
				return fmt.Errorf("room %d not found", id)
			}

			room, err := e.api.AdminUpdateRoom(ctx, id, mergeRoom(cmd.Flags(), current, update))
			if err != nil {
				return err
			}
			e.printer.Message("✓ Updated room #%d", room.ID)
			return e.printer.Print(room, roomsTable([]client.Room{*room}))
		},
	}
	bindRoomFlags(updateCmd.Flags(), &update)
	cmd.AddCommand(updateCmd)

	cmd.AddCommand(newAdminDeleteCmd(opts, "room", func(e *env, cmd *cobra.Command, id int) error {
		return e.api.AdminDeleteRoom(e.ctx(cmd), id)
	}))

	return cmd
}

func bindRoomFlags(fs *pflag.FlagSet, in *client.RoomInput) {
	fs.IntVar(&in.Hotel, "hotel", in.Hotel, "Hotel ID")
	fs.StringVar(&in.RoomName, "name", in.RoomName, "Room name")
	fs.StringVar(&in.RoomType, "type", in.RoomType, "Room type")
	fs.StringVar(&in.BedType, "bed", in.BedType, "Bed type")
	fs.IntVar(&in.SizeInSqft, "size", in.SizeInSqft, "Size in square feet")
	fs.StringVar(&in.PricePerNight, "price", in.PricePerNight, "Price per night")
	fs.IntVar(&in.MaxGuests, "max-guests", in.MaxGuests, "Maximum guests")
	fs.IntVar(&in.TotalRooms, "total", in.TotalRooms, "Number of rooms of this kind")
	fs.IntVar(&in.AvailableRooms, "available", in.AvailableRooms, "Rooms currently available (defaults to --total)")
	fs.StringSliceVar(&in.Amenities, "amenity", in.Amenities, "Amenity (repeatable)")
	fs.BoolVar(&in.IsRefundable, "refundable", in.IsRefundable, "Booking is refundable")
	fs.BoolVar(&in.FreeCancellation, "free-cancellation", in.FreeCancellation, "Free cancellation")
	fs.StringVar(&in.Description, "description", in.Description, "Description")
	fs.BoolVar(&in.IsAvailable, "bookable", in.IsAvailable, "Room can be booked")
}

func mergeRoom(fs *pflag.FlagSet, current *client.Room, flags client.RoomInput) client.RoomInput {
	in := client.RoomInput{
		Hotel:            current.Hotel,
		RoomName:         current.RoomName,
		RoomType:         current.RoomType,
		BedType:          current.BedType,
		SizeInSqft:       current.SizeInSqft,
		PricePerNight:    current.PricePerNight,
		MaxGuests:        current.MaxGuests,
		TotalRooms:       current.TotalRooms,
		AvailableRooms:   current.AvailableRooms,
		Amenities:        current.Amenities,
		IsRefundable:     current.IsRefundable,
		FreeCancellation: current.FreeCancellation,
		Description:      current.Description,
		IsAvailable:      current.IsAvailable,
	}

	set := map[string]func(){
		"hotel":             func() { in.Hotel = flags.Hotel },
		"name":              func() { in.RoomName = flags.RoomName },
		"type":              func() { in.RoomType = flags.RoomType },
		"bed":               func() { in.BedType = flags.BedType },
		"size":              func() { in.SizeInSqft = flags.SizeInSqft },
		"price":             func() { in.PricePerNight = flags.PricePerNight },
		"max-guests":        func() { in.MaxGuests = flags.MaxGuests },
		"total":             func() { in.TotalRooms = flags.TotalRooms },
		"available":         func() { in.AvailableRooms = flags.AvailableRooms },
		"amenity":           func() { in.Amenities = flags.Amenities },
		"refundable":        func() { in.IsRefundable = flags.IsRefundable },
		"free-cancellation": func() { in.FreeCancellation = flags.FreeCancellation },
		"description":       func() { in.Description = flags.Description },
		"bookable":          func() { in.IsAvailable = flags.IsAvailable },
	}
	fs.Visit(func(f *pflag.Flag) {
		if apply, ok := set[f.Name]; ok {
			apply()
		}
	})
	return in
}

func newAdminDeleteCmd(opts []Option, what string, del func(e *env, cmd *cobra.Command, id int) error) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("delete <%s-id>", what),
		Short: fmt.Sprintf("Delete a %s", what),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], what)
			if err != nil {
				return err
			}
			e, err := newAdminEnv(cmd, collect(opts))
			if err != nil {
				return err
			}
			if !yes {
				if err := confirm(fmt.Sprintf("Delete %s #%d", what, id)); err != nil {
					return err
				}
			}
			if err := del(e, cmd, id); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "✓ Deleted %s #%d\n", what, id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newAdminBookingsCmd(opts []Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "View and cancel any booking",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List all bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newAdminEnv(cmd, collect(opts))
			if err != nil {
				return err
			}
			bookings, err := e.api.AdminBookings(e.ctx(cmd))
			if err != nil {
				return err
			}
			return printBookings(e, bookings)
		},
	})

	cmd.AddCommand(newCancelBookingCmd(opts, true))

	return cmd
}

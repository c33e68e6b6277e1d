package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roomdesk/roomdesk/internal/cli/client"
	"github.com/roomdesk/roomdesk/internal/cli/output"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func hotelsTable(hotels []client.Hotel) func() output.Table {
	return func() output.Table {
		t := output.Table{Header: []string{"ID", "NAME", "CITY", "RATING", "FROM"}}
		for _, h := range hotels {
			t.Rows = append(t.Rows, []string{strconv.Itoa(h.ID), h.Name, h.City, h.Rating, h.PriceMin})
		}
		return t
	}
}

func roomsTable(rooms []client.Room) func() output.Table {
	return func() output.Table {
		t := output.Table{Header: []string{"ID", "HOTEL", "NAME", "TYPE", "PRICE", "GUESTS", "TOTAL", "AVAILABLE"}}
		for _, r := range rooms {
			t.Rows = append(t.Rows, []string{
				strconv.Itoa(r.ID),
				strconv.Itoa(r.Hotel),
				r.RoomName,
				r.RoomType,
				r.PricePerNight,
				strconv.Itoa(r.MaxGuests),
				strconv.Itoa(r.TotalRooms),
				strconv.Itoa(r.AvailableRooms),
			})
		}
		return t
	}
}

func bookingsTable(bookings []client.Booking) func() output.Table {
	return func() output.Table {
		t := output.Table{Header: []string{"ID", "HOTEL", "ROOM", "CHECK-IN", "CHECK-OUT", "TOTAL", "STATUS"}}
		for _, b := range bookings {
			t.Rows = append(t.Rows, []string{
				strconv.Itoa(b.ID),
				b.HotelName,
				b.RoomName,
				b.CheckIn,
				b.CheckOut,
				b.TotalPrice,
				b.Status,
			})
		}
		return t
	}
}

func imagesTable(images []client.Image) func() output.Table {
	return func() output.Table {
		t := output.Table{Header: []string{"ID", "ORDER", "PRIMARY", "ALT", "URL"}}
		for _, img := range images {
			url := img.ImageURL
			if url == "" {
				url = img.Image
			}
			t.Rows = append(t.Rows, []string{
				strconv.Itoa(img.ID),
				strconv.Itoa(img.Order),
				yesNo(img.IsPrimary),
				img.AltText,
				url,
			})
		}
		return t
	}
}

func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID '%s'", what, arg)
	}
	return id, nil
}

// Package inventory builds the rooms × dates availability grid used by the
// back-office, and plans how a new availability figure is saved.
package inventory

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/roomdesk/roomdesk/internal/cli/client"
)

// MaxDays bounds the width of a matrix.
const MaxDays = 62

// Cell is one room on one date.
type Cell struct {
	Date        string `json:"date" yaml:"date"`
	InventoryID int    `json:"inventory_id,omitempty" yaml:"inventory_id,omitempty"`
	Total       int    `json:"total" yaml:"total"`
	Booked      int    `json:"booked" yaml:"booked"`
	Available   int    `json:"available" yaml:"available"`
	// Defaulted cells have no inventory record yet; their numbers come from the room.
	Defaulted bool `json:"defaulted" yaml:"defaulted"`
}

type Row struct {
	RoomID   int    `json:"room_id" yaml:"room_id"`
	RoomName string `json:"room_name" yaml:"room_name"`
	Cells    []Cell `json:"cells" yaml:"cells"`
}

type Matrix struct {
	Dates []string `json:"dates" yaml:"dates"`
	Rows  []Row    `json:"rows" yaml:"rows"`
}

// DateRange returns every date from..to inclusive.
func DateRange(from, to string) ([]string, error) {
	start, err := time.Parse(client.DateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", from, err)
	}
	end, err := time.Parse(client.DateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", to, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s", to, from)
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > MaxDays {
		return nil, fmt.Errorf("date range of %d days exceeds the %d day limit", days, MaxDays)
	}

	dates := make([]string, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(client.DateLayout))
	}
	return dates, nil
}

// Build lays records out on a rooms × dates grid. Dates without a record are
// defaulted to the room's total room count with nothing booked.
func Build(rooms []client.Room, records []client.Inventory, from, to string) (*Matrix, error) {
	dates, err := DateRange(from, to)
	if err != nil {
		return nil, err
	}

	type key struct {
		room int
		date string
	}
	byKey := make(map[key]client.Inventory, len(records))
	for _, rec := range records {
		byKey[key{rec.Room, rec.Date}] = rec
	}

	m := &Matrix{Dates: dates, Rows: make([]Row, 0, len(rooms))}
	for _, room := range rooms {
		row := Row{RoomID: room.ID, RoomName: room.RoomName, Cells: make([]Cell, 0, len(dates))}
		for _, date := range dates {
			rec, ok := byKey[key{room.ID, date}]
			if !ok {
				row.Cells = append(row.Cells, Cell{
					Date:      date,
					Total:     room.TotalRooms,
					Available: room.TotalRooms,
					Defaulted: true,
				})
				continue
			}
			row.Cells = append(row.Cells, Cell{
				Date:        date,
				InventoryID: rec.ID,
				Total:       rec.TotalRooms,
				Booked:      rec.BookedRooms,
				Available:   rec.Available(),
			})
		}
		m.Rows = append(m.Rows, row)
	}
	return m, nil
}

// Render writes the matrix as a table of available counts. Defaulted cells
// are marked with "*".
func (m *Matrix) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprint(tw, "ROOM")
	for _, d := range m.Dates {
		fmt.Fprintf(tw, "\t%s", d[5:])
	}
	fmt.Fprintln(tw)

	for _, row := range m.Rows {
		fmt.Fprintf(tw, "%s (#%d)", row.RoomName, row.RoomID)
		for _, c := range row.Cells {
			v := strconv.Itoa(c.Available)
			if c.Defaulted {
				v += "*"
			}
			fmt.Fprintf(tw, "\t%s", v)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

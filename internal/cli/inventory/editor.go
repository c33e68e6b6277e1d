package inventory

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/roomdesk/roomdesk/internal/cli/client"
)

// API is the slice of the backend client the editor needs.
type API interface {
	AdminListRooms(ctx context.Context) ([]client.Room, error)
	ListInventory(ctx context.Context, filter client.InventoryFilter) ([]client.Inventory, error)
	CreateInventory(ctx context.Context, in client.InventoryCreate) (*client.Inventory, error)
	PatchInventory(ctx context.Context, id int, patch client.InventoryPatch) (*client.Inventory, error)
}

// Change is the single write needed to record a new availability figure.
// Exactly one of Create or Patch is set.
type Change struct {
	Create  *client.InventoryCreate
	PatchID int
	Patch   *client.InventoryPatch
}

// Plan decides how to store available rooms for roomID on date. An existing
// record keeps its bookings and has its total raised to booked+available.
func Plan(existing *client.Inventory, roomID int, date string, available int) (Change, error) {
	if available < 0 {
		return Change{}, fmt.Errorf("available rooms must not be negative, got %d", available)
	}
	if existing != nil {
		return Change{
			PatchID: existing.ID,
			Patch:   &client.InventoryPatch{TotalRooms: existing.BookedRooms + available},
		}, nil
	}
	return Change{
		Create: &client.InventoryCreate{Room: roomID, Date: date, TotalRooms: available, BookedRooms: 0},
	}, nil
}

type Editor struct {
	api API
}

func NewEditor(api API) *Editor {
	return &Editor{api: api}
}

// Matrix loads rooms and records for the range. roomID 0 means every room.
func (e *Editor) Matrix(ctx context.Context, roomID int, from, to string) (*Matrix, error) {
	if _, err := DateRange(from, to); err != nil {
		return nil, err
	}

	var (
		rooms   []client.Room
		records []client.Inventory
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if rooms, err = e.api.AdminListRooms(gctx); err != nil {
			return fmt.Errorf("failed to load rooms: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = e.api.ListInventory(gctx, client.InventoryFilter{
			RoomID:   roomID,
			DateFrom: from,
			DateTo:   to,
			Ordering: "date",
		})
		if err != nil {
			return fmt.Errorf("failed to load inventory: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if roomID > 0 {
		filtered := rooms[:0:0]
		for _, r := range rooms {
			if r.ID == roomID {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) == 0 {
			return nil, fmt.Errorf("room %d not found", roomID)
		}
		rooms = filtered
	}

	return Build(rooms, records, from, to)
}

// Lookup returns the record for roomID on date, or nil when none exists.
func (e *Editor) Lookup(ctx context.Context, roomID int, date string) (*client.Inventory, error) {
	items, err := e.api.ListInventory(ctx, client.InventoryFilter{RoomID: roomID, DateFrom: date, DateTo: date})
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	for i := range items {
		if items[i].Room == roomID && items[i].Date == date {
			return &items[i], nil
		}
	}
	return nil, nil
}

// SetAvailability records the number of rooms still available for roomID on
// date and returns the stored record as re-read from the backend.
func (e *Editor) SetAvailability(ctx context.Context, roomID int, date string, available int) (*client.Inventory, error) {
	existing, err := e.Lookup(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	change, err := Plan(existing, roomID, date, available)
	if err != nil {
		return nil, err
	}

	if change.Patch != nil {
		_, err = e.api.PatchInventory(ctx, change.PatchID, *change.Patch)
	} else {
		_, err = e.api.CreateInventory(ctx, *change.Create)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save inventory: %w", err)
	}

	saved, err := e.Lookup(ctx, roomID, date)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, fmt.Errorf("inventory for room %d on %s was not found after saving", roomID, date)
	}
	return saved, nil
}

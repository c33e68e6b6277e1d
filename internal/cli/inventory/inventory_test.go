package inventory

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomdesk/roomdesk/internal/cli/client"
)

func intPtr(v int) *int { return &v }

// fakeAPI is an in-memory inventory backend.
type fakeAPI struct {
	rooms   []client.Room
	records []client.Inventory
	nextID  int
	patched []client.InventoryPatch
	created []client.InventoryCreate
}

func (f *fakeAPI) AdminListRooms(context.Context) ([]client.Room, error) {
	return f.rooms, nil
}

func (f *fakeAPI) ListInventory(_ context.Context, filter client.InventoryFilter) ([]client.Inventory, error) {
	var out []client.Inventory
	for _, r := range f.records {
		if filter.RoomID > 0 && r.Room != filter.RoomID {
			continue
		}
		if filter.DateFrom != "" && r.Date < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && r.Date > filter.DateTo {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAPI) CreateInventory(_ context.Context, in client.InventoryCreate) (*client.Inventory, error) {
	f.created = append(f.created, in)
	f.nextID++
	rec := client.Inventory{ID: f.nextID, Room: in.Room, Date: in.Date, TotalRooms: in.TotalRooms, BookedRooms: in.BookedRooms}
	f.records = append(f.records, rec)
	return &rec, nil
}

func (f *fakeAPI) PatchInventory(_ context.Context, id int, patch client.InventoryPatch) (*client.Inventory, error) {
	f.patched = append(f.patched, patch)
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].TotalRooms = patch.TotalRooms
			f.records[i].AvailableRooms = nil
			return &f.records[i], nil
		}
	}
	return nil, &client.APIError{StatusCode: 404, Message: "Not found."}
}

func TestDateRange(t *testing.T) {
	dates, err := DateRange("2026-10-30", "2026-11-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-30", "2026-10-31", "2026-11-01", "2026-11-02"}, dates)

	_, err = DateRange("2026-11-02", "2026-11-01")
	assert.Error(t, err)

	_, err = DateRange("2026-01-01", "2026-12-31")
	assert.ErrorContains(t, err, "day limit")

	_, err = DateRange("tomorrow", "2026-11-01")
	assert.Error(t, err)
}

func TestBuild_DefaultsMissingCells(t *testing.T) {
	rooms := []client.Room{
		{ID: 1, RoomName: "Deluxe King", TotalRooms: 5},
		{ID: 2, RoomName: "Twin", TotalRooms: 2},
	}
	records := []client.Inventory{
		{ID: 10, Room: 1, Date: "2026-11-01", TotalRooms: 5, BookedRooms: 3, AvailableRooms: intPtr(2)},
		{ID: 11, Room: 2, Date: "2026-11-02", TotalRooms: 2, BookedRooms: 2},
	}

	m, err := Build(rooms, records, "2026-11-01", "2026-11-02")
	require.NoError(t, err)
	require.Len(t, m.Rows, 2)

	assert.Equal(t, Cell{Date: "2026-11-01", InventoryID: 10, Total: 5, Booked: 3, Available: 2}, m.Rows[0].Cells[0])
	assert.Equal(t, Cell{Date: "2026-11-02", Total: 5, Available: 5, Defaulted: true}, m.Rows[0].Cells[1])
	assert.Equal(t, Cell{Date: "2026-11-01", Total: 2, Available: 2, Defaulted: true}, m.Rows[1].Cells[0])
	assert.Equal(t, Cell{Date: "2026-11-02", InventoryID: 11, Total: 2, Booked: 2, Available: 0}, m.Rows[1].Cells[1])

	var buf bytes.Buffer
	require.NoError(t, m.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "11-01")
	assert.Contains(t, out, "Deluxe King (#1)")
	assert.Contains(t, out, "5*")
}

func TestPlan(t *testing.T) {
	change, err := Plan(nil, 4, "2026-11-01", 3)
	require.NoError(t, err)
	assert.Nil(t, change.Patch)
	assert.Equal(t, &client.InventoryCreate{Room: 4, Date: "2026-11-01", TotalRooms: 3}, change.Create)

	change, err = Plan(&client.Inventory{ID: 8, TotalRooms: 5, BookedRooms: 2}, 4, "2026-11-01", 1)
	require.NoError(t, err)
	assert.Nil(t, change.Create)
	assert.Equal(t, 8, change.PatchID)
	assert.Equal(t, &client.InventoryPatch{TotalRooms: 3}, change.Patch)

	_, err = Plan(nil, 4, "2026-11-01", -1)
	assert.Error(t, err)
}

func TestEditor_SetAvailability(t *testing.T) {
	api := &fakeAPI{
		rooms:   []client.Room{{ID: 1, RoomName: "Deluxe King", TotalRooms: 5}},
		records: []client.Inventory{{ID: 1, Room: 1, Date: "2026-11-01", TotalRooms: 5, BookedRooms: 2}},
		nextID:  1,
	}
	editor := NewEditor(api)

	saved, err := editor.SetAvailability(context.Background(), 1, "2026-11-01", 4)
	require.NoError(t, err)
	assert.Equal(t, []client.InventoryPatch{{TotalRooms: 6}}, api.patched)
	assert.Equal(t, 4, saved.Available())

	saved, err = editor.SetAvailability(context.Background(), 1, "2026-11-02", 3)
	require.NoError(t, err)
	assert.Len(t, api.created, 1)
	assert.Equal(t, 3, saved.Available())

	m, err := editor.Matrix(context.Background(), 1, "2026-11-01", "2026-11-03")
	require.NoError(t, err)
	require.Len(t, m.Rows, 1)
	assert.Equal(t, []int{4, 3, 5}, []int{m.Rows[0].Cells[0].Available, m.Rows[0].Cells[1].Available, m.Rows[0].Cells[2].Available})
	assert.True(t, m.Rows[0].Cells[2].Defaulted)
}

func TestEditor_MatrixUnknownRoom(t *testing.T) {
	editor := NewEditor(&fakeAPI{rooms: []client.Room{{ID: 1}}})

	_, err := editor.Matrix(context.Background(), 7, "2026-11-01", "2026-11-01")
	assert.ErrorContains(t, err, "room 7 not found")
}

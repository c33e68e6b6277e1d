package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// InventoryFilter narrows an inventory listing. Zero values are omitted.
type InventoryFilter struct {
	RoomID   int
	DateFrom string
	DateTo   string
	Ordering string
}

func (f InventoryFilter) values() url.Values {
	q := url.Values{}
	if f.RoomID > 0 {
		q.Set("room_id", strconv.Itoa(f.RoomID))
	}
	if f.DateFrom != "" {
		q.Set("date_from", f.DateFrom)
	}
	if f.DateTo != "" {
		q.Set("date_to", f.DateTo)
	}
	if f.Ordering != "" {
		q.Set("ordering", f.Ordering)
	}
	return q
}

// InventoryCreate is the payload for a new inventory record.
type InventoryCreate struct {
	Room        int    `json:"room" validate:"required,gt=0"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	TotalRooms  int    `json:"total_rooms" validate:"gte=0"`
	BookedRooms int    `json:"booked_rooms" validate:"gte=0"`
}

// InventoryPatch changes the total room count of a record.
type InventoryPatch struct {
	TotalRooms int `json:"total_rooms" validate:"gte=0"`
}

func (c *Client) ListInventory(ctx context.Context, filter InventoryFilter) ([]Inventory, error) {
	return getList[Inventory](ctx, c, "/admin-api/inventory/", filter.values())
}

func (c *Client) CreateInventory(ctx context.Context, in InventoryCreate) (*Inventory, error) {
	if err := c.check("inventory", in); err != nil {
		return nil, err
	}
	var inv Inventory
	if err := c.do(ctx, http.MethodPost, "/admin-api/inventory/", nil, in, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *Client) PatchInventory(ctx context.Context, id int, patch InventoryPatch) (*Inventory, error) {
	if err := c.check("inventory", patch); err != nil {
		return nil, err
	}
	var inv Inventory
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin-api/inventory/%d/", id), nil, patch, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

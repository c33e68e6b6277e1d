package client

import (
	"context"
	"fmt"
	"net/http"
)

// HotelInput is the admin payload for creating or replacing a hotel.
type HotelInput struct {
	Name        string `json:"name" validate:"required"`
	City        string `json:"city" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Rating      string `json:"rating" validate:"required,numeric"`
	PriceMin    string `json:"price_min" validate:"required,numeric"`
	Description string `json:"description"`
}

// RoomInput is the admin payload for creating or replacing a room.
type RoomInput struct {
	Hotel            int      `json:"hotel" validate:"required,gt=0"`
	RoomName         string   `json:"room_name" validate:"required"`
	RoomType         string   `json:"room_type,omitempty"`
	BedType          string   `json:"bed_type,omitempty"`
	SizeInSqft       int      `json:"size_in_sqft,omitempty" validate:"gte=0"`
	PricePerNight    string   `json:"price_per_night,omitempty" validate:"omitempty,numeric"`
	MaxGuests        int      `json:"max_guests,omitempty" validate:"gte=0"`
	TotalRooms       int      `json:"total_rooms" validate:"gte=0"`
	AvailableRooms   int      `json:"available_rooms" validate:"gte=0"`
	Amenities        []string `json:"amenities"`
	IsRefundable     bool     `json:"is_refundable"`
	FreeCancellation bool     `json:"free_cancellation"`
	Description      string   `json:"description"`
	IsAvailable      bool     `json:"is_available"`
}

func (c *Client) AdminListHotels(ctx context.Context) ([]Hotel, error) {
	return getList[Hotel](ctx, c, "/admin-api/hotels/", nil)
}

func (c *Client) AdminCreateHotel(ctx context.Context, in HotelInput) (*Hotel, error) {
	if err := c.check("hotel", in); err != nil {
		return nil, err
	}
	var hotel Hotel
	if err := c.do(ctx, http.MethodPost, "/admin-api/hotels/", nil, in, &hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (c *Client) AdminUpdateHotel(ctx context.Context, id int, in HotelInput) (*Hotel, error) {
	if err := c.check("hotel", in); err != nil {
		return nil, err
	}
	var hotel Hotel
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin-api/hotels/%d/", id), nil, in, &hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (c *Client) AdminDeleteHotel(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin-api/hotels/%d/", id), nil, nil, nil)
}

func (c *Client) AdminListRooms(ctx context.Context) ([]Room, error) {
	return getList[Room](ctx, c, "/admin-api/rooms/", nil)
}

func (c *Client) AdminCreateRoom(ctx context.Context, in RoomInput) (*Room, error) {
	if err := c.check("room", in); err != nil {
		return nil, err
	}
	var room Room
	if err := c.do(ctx, http.MethodPost, "/admin-api/rooms/", nil, in, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *Client) AdminUpdateRoom(ctx context.Context, id int, in RoomInput) (*Room, error) {
	if err := c.check("room", in); err != nil {
		return nil, err
	}
	var room Room
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin-api/rooms/%d/", id), nil, in, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *Client) AdminDeleteRoom(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin-api/rooms/%d/", id), nil, nil, nil)
}

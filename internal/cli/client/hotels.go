package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListHotels returns all hotels.
func (c *Client) ListHotels(ctx context.Context) ([]Hotel, error) {
	return getList[Hotel](ctx, c, "/v1/hotels/", nil)
}

// GetHotel returns one hotel.
func (c *Client) GetHotel(ctx context.Context, id int) (*Hotel, error) {
	var hotel Hotel
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/hotels/%d/", id), nil, nil, &hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}

// ListHotelRooms returns the rooms of a hotel.
func (c *Client) ListHotelRooms(ctx context.Context, hotelID int) ([]Room, error) {
	return getList[Room](ctx, c, fmt.Sprintf("/v1/hotels/%d/rooms/", hotelID), nil)
}

// GetRoom returns one room.
func (c *Client) GetRoom(ctx context.Context, id int) (*Room, error) {
	var room Room
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/hotels/rooms/%d/", id), nil, nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

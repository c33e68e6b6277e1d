package client

import (
	"context"
	"fmt"
	"net/http"
)

// CreateBookingRequest represents the booking creation request
type CreateBookingRequest struct {
	Room     int    `json:"room" validate:"required,gt=0"`
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

// CreateBooking books a room. Pricing and availability are decided by the backend.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	if err := c.check("booking", req); err != nil {
		return nil, err
	}

	var booking Booking
	if err := c.do(ctx, http.MethodPost, "/v1/bookings/", nil, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// MyBookings lists the bookings of the current session (staff JWT or email token).
func (c *Client) MyBookings(ctx context.Context) ([]Booking, error) {
	return getList[Booking](ctx, c, "/v1/bookings/me/", nil)
}

// AdminBookings lists every booking. Staff only.
func (c *Client) AdminBookings(ctx context.Context) ([]Booking, error) {
	return getList[Booking](ctx, c, "/v1/bookings/admin/", nil)
}

// CancelBooking cancels a booking and returns the backend's confirmation message.
func (c *Client) CancelBooking(ctx context.Context, id int) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/bookings/%d/cancel/", id), nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

type otpRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type otpVerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

// RequestOTP asks the backend to email a one-time passcode.
func (c *Client) RequestOTP(ctx context.Context, email string) error {
	reqBody := otpRequest{Email: email}
	if err := c.check("email", reqBody); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/v1/bookings/otp/request/", nil, reqBody, nil)
}

// VerifyOTP exchanges a passcode for an email-session token.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (string, error) {
	reqBody := otpVerifyRequest{Email: email, OTP: otp}
	if err := c.check("passcode", reqBody); err != nil {
		return "", err
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/bookings/otp/verify/", nil, reqBody, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("verification response did not include a token")
	}
	return resp.Token, nil
}

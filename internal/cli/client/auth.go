package client

import (
	"context"
	"net/http"
)

// LoginRequest represents the staff login request body
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ObtainToken exchanges staff credentials for a JWT pair.
func (c *Client) ObtainToken(ctx context.Context, username, password string) (*TokenPair, error) {
	reqBody := LoginRequest{Username: username, Password: password}
	if err := c.check("login", reqBody); err != nil {
		return nil, err
	}

	var pair TokenPair
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/token/", nil, reqBody, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// RefreshToken trades a refresh token for a new access token.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (string, error) {
	reqBody := struct {
		Refresh string `json:"refresh" validate:"required"`
	}{Refresh: refresh}
	if err := c.check("refresh", reqBody); err != nil {
		return "", err
	}

	var resp struct {
		Access string `json:"access"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/token/refresh/", nil, reqBody, &resp); err != nil {
		return "", err
	}
	return resp.Access, nil
}

// Profile returns the signed-in user's profile.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/profile/", nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

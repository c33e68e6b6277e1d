package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the CLI can learn from an access token without the
// backend's signing key.
type TokenInfo struct {
	UserID    string
	TokenType string
	ExpiresAt time.Time
}

// Expired reports whether the token expired before now. Tokens without an
// expiry never expire.
func (t TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

type accessClaims struct {
	UserID    any    `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// InspectToken decodes the claims of an access token. The signature is NOT
// verified; the result is only used for display and expiry hints.
func InspectToken(token string) (TokenInfo, error) {
	var claims accessClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}, fmt.Errorf("failed to parse token: %w", err)
	}

	info := TokenInfo{TokenType: claims.TokenType}
	if claims.UserID != nil {
		info.UserID = fmt.Sprint(claims.UserID)
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

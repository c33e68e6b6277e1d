package auth

import "errors"

// ErrNotAuthenticated is returned when an operation needs a credential that is not stored.
var ErrNotAuthenticated = errors.New("not authenticated. Please run 'roomdesk login' or 'roomdesk otp request' first")

// Credentials holds the tokens kept for one backend server. Each field is
// independently optional.
type Credentials struct {
	Access  string `json:"access,omitempty"`
	Refresh string `json:"refresh,omitempty"`
	Email   string `json:"email,omitempty"`
}

// IsAuthenticated reports whether any usable session credential is present.
func (c Credentials) IsAuthenticated() bool {
	return c.Access != "" || c.Email != ""
}

// Store persists credentials per server.
// This allows us to swap the keyring for memory in tests.
type Store interface {
	Load(server string) (Credentials, error)
	Save(server string, creds Credentials) error
	Clear(server string) error
}

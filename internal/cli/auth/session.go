package auth

import (
	"fmt"
	"sync"
)

// Session is the credential snapshot for one server. Reads are synchronous and
// safe for concurrent requests; writes go through the Store first.
type Session struct {
	mu     sync.RWMutex
	server string
	store  Store
	creds  Credentials
}

// OpenSession loads the stored credentials for server.
func OpenSession(store Store, server string) (*Session, error) {
	creds, err := store.Load(server)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	return &Session{server: server, store: store, creds: creds}, nil
}

func (s *Session) Server() string {
	return s.server
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.Access
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.Refresh
}

func (s *Session) EmailToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.Email
}

// Tokens reads the access and email tokens under one lock.
func (s *Session) Tokens() (access, email string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.Access, s.creds.Email
}

// Credentials returns a copy of the current credentials.
func (s *Session) Credentials() Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

func (s *Session) IsAuthenticated() bool {
	return s.Credentials().IsAuthenticated()
}

// Login stores a staff access/refresh pair. The email token is kept.
func (s *Session) Login(access, refresh string) error {
	return s.update(func(c *Credentials) {
		c.Access = access
		c.Refresh = refresh
	})
}

// LoginEmail stores the email-session token issued after OTP verification.
func (s *Session) LoginEmail(token string) error {
	return s.update(func(c *Credentials) {
		c.Email = token
	})
}

// Refresh replaces the access token after a token refresh.
func (s *Session) Refresh(access string) error {
	return s.update(func(c *Credentials) {
		c.Access = access
	})
}

// DropStaffTokens forgets the access/refresh pair so a fresh login does not
// race a stale token.
func (s *Session) DropStaffTokens() error {
	return s.update(func(c *Credentials) {
		c.Access = ""
		c.Refresh = ""
	})
}

// Logout clears every stored credential. The in-memory copy is cleared even
// when the store fails.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = Credentials{}
	if err := s.store.Clear(s.server); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

func (s *Session) update(fn func(*Credentials)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.creds
	fn(&next)
	if err := s.store.Save(s.server, next); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	s.creds = next
	return nil
}

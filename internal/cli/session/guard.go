// Package session reacts to authentication rejections reported by the gateway.
package session

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/roomdesk/roomdesk/internal/cli/gateway"
)

// CredentialClearer forgets every stored credential.
type CredentialClearer interface {
	Logout() error
}

// Guard is the application's single unauthorized listener. For each event it
// clears the stored credentials and then sends the user to the login entry point.
type Guard struct {
	creds     CredentialClearer
	toLogin   func(status int)
	logger    zerolog.Logger
	triggered atomic.Bool
}

var _ gateway.Notifier = (*Guard)(nil)

// NewGuard creates a Guard. toLogin may be nil.
func NewGuard(creds CredentialClearer, toLogin func(status int), logger zerolog.Logger) *Guard {
	return &Guard{creds: creds, toLogin: toLogin, logger: logger}
}

func (g *Guard) Unauthorized(_ context.Context, ev gateway.UnauthorizedEvent) {
	g.triggered.Store(true)

	if err := g.creds.Logout(); err != nil {
		g.logger.Warn().Err(err).Msg("Failed to clear credentials after unauthorized response")
	} else {
		g.logger.Debug().Int("status", ev.Status).Msg("Cleared credentials after unauthorized response")
	}

	if g.toLogin != nil {
		g.toLogin(ev.Status)
	}
}

// Triggered reports whether any unauthorized event has been handled.
func (g *Guard) Triggered() bool {
	return g.triggered.Load()
}

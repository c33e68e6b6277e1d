package gateway

import "context"

// UnauthorizedEvent is emitted once for every response rejected with 401.
// It carries the status only.
type UnauthorizedEvent struct {
	Status int
}

// Notifier receives unauthorized events. The gateway never navigates or clears
// credentials itself; that is the listener's job.
type Notifier interface {
	Unauthorized(ctx context.Context, ev UnauthorizedEvent)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, ev UnauthorizedEvent)

func (f NotifierFunc) Unauthorized(ctx context.Context, ev UnauthorizedEvent) {
	f(ctx, ev)
}

package gateway

import "strings"

// Kind is the authentication policy bucket a path falls into.
type Kind string

const (
	KindAdmin   Kind = "admin"
	KindAuth    Kind = "auth"
	KindPublic  Kind = "public"
	KindBooking Kind = "booking"
	KindOther   Kind = "other"
)

const (
	adminMarker   = "/admin-api"
	bookingMarker = "/bookings"
)

// authFreePatterns mark endpoints that issue credentials. They must never see
// a stale bearer token.
var authFreePatterns = []string{"/auth/token", "/auth/register", "/login", "/register", "/token"}

var publicPrefixes = []string{"/api/v1/hotels", "/api/v1/rooms"}

// Route is the classification of a normalized request path.
type Route struct {
	Path     string
	Admin    bool
	AuthFree bool
	Public   bool
	Booking  bool
}

// Classify computes the Route for path. The path must already be normalized.
func Classify(path string) Route {
	r := Route{
		Path:    path,
		Admin:   strings.Contains(path, adminMarker),
		Booking: strings.Contains(path, bookingMarker),
	}
	for _, pat := range authFreePatterns {
		if strings.Contains(path, pat) {
			r.AuthFree = true
			break
		}
	}
	if !r.Admin {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(path, prefix) {
				r.Public = true
				break
			}
		}
	}
	return r
}

// Kind returns the dominant classification. Admin wins over everything.
func (r Route) Kind() Kind {
	switch {
	case r.Admin:
		return KindAdmin
	case r.AuthFree:
		return KindAuth
	case r.Public:
		return KindPublic
	case r.Booking:
		return KindBooking
	default:
		return KindOther
	}
}

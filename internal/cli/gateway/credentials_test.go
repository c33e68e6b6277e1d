package gateway

import (
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		kind Kind
	}{
		{"/admin-api/hotels/", KindAdmin},
		{"/admin-api/auth/token/", KindAdmin},
		{"/api/v1/auth/token/", KindAuth},
		{"/api/v1/auth/token/refresh/", KindAuth},
		{"/api/v1/hotels/", KindPublic},
		{"/api/v1/hotels/4/rooms/", KindPublic},
		{"/api/v1/bookings/", KindBooking},
		{"/api/v1/bookings/me/", KindBooking},
		{"/api/v1/auth/profile/", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.kind, Classify(tt.path).Kind())
		})
	}
}

func TestClassify_AdminIsNeverPublic(t *testing.T) {
	r := Classify("/admin-api/api/v1/hotels")
	assert.True(t, r.Admin)
	assert.False(t, r.Public)
}

func TestSelect(t *testing.T) {
	bearer := StaticCredentials{Access: "jwt"}
	email := StaticCredentials{Email: "otp-token"}
	both := StaticCredentials{Access: "jwt", Email: "otp-token"}

	tests := []struct {
		name     string
		path     string
		creds    CredentialSource
		expected Decision
	}{
		{"admin with bearer", "/admin-api/hotels/", bearer, DecisionBearer},
		{"admin colliding with auth-free pattern", "/admin-api/token/", bearer, DecisionBearer},
		{"auth endpoint withholds bearer", "/api/v1/auth/token/", bearer, DecisionAnonymous},
		{"public accepts bearer", "/api/v1/hotels/", bearer, DecisionBearer},
		{"admin without bearer", "/admin-api/hotels/", email, DecisionWithheld},
		{"booking with email token", "/api/v1/bookings/", email, DecisionEmail},
		{"non-booking with email token", "/api/v1/hotels/", email, DecisionAnonymous},
		{"bearer preferred over email", "/api/v1/bookings/me/", both, DecisionBearer},
		{"nothing stored", "/api/v1/bookings/", StaticCredentials{}, DecisionAnonymous},
		{"nil source", "/admin-api/rooms/", nil, DecisionWithheld},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Select(Classify(tt.path), tt.creds))
		})
	}
}

func TestApply_Bearer(t *testing.T) {
	h := http.Header{}
	Apply(h, Classify("/admin-api/hotels/"), StaticCredentials{Access: "jwt"})

	assert.Equal(t, "Bearer jwt", h.Get(HeaderAuthorization))
	assert.Empty(t, h.Get(HeaderEmailToken))
}

func TestApply_AuthFreeStripsStaleHeader(t *testing.T) {
	h := http.Header{}
	h.Set(HeaderAuthorization, "Bearer stale")

	d := Apply(h, Classify("/api/v1/auth/token/"), StaticCredentials{Access: "jwt"})

	assert.Equal(t, DecisionAnonymous, d)
	assert.Empty(t, h.Get(HeaderAuthorization))
}

func TestApply_EmailToken(t *testing.T) {
	h := http.Header{}
	Apply(h, Classify("/api/v1/bookings/"), StaticCredentials{Email: "otp-token"})

	assert.Equal(t, "EmailToken otp-token", h.Get(HeaderAuthorization))
	assert.Equal(t, "otp-token", h.Get(HeaderEmailToken))
}

func TestApply_NonBookingWithEmailTokenAttachesNothing(t *testing.T) {
	h := http.Header{}
	Apply(h, Classify("/api/v1/hotels/"), StaticCredentials{Email: "otp-token"})

	assert.Empty(t, h.Get(HeaderAuthorization))
	assert.Empty(t, h.Get(HeaderEmailToken))
}

// draining hands out each token once, then reports it gone, the way a
// session looks when a logout lands between two reads.
type draining struct {
	access, email atomic.Int32
	accessToken   string
	emailToken    string
}

func (d *draining) AccessToken() string {
	if d.access.Add(1) > 1 {
		return ""
	}
	return d.accessToken
}

func (d *draining) EmailToken() string {
	if d.email.Add(1) > 1 {
		return ""
	}
	return d.emailToken
}

func TestApply_ReadsSourceOnce(t *testing.T) {
	t.Run("bearer", func(t *testing.T) {
		h := http.Header{}
		src := &draining{accessToken: "jwt"}

		d := Apply(h, Classify("/admin-api/hotels/"), src)

		assert.Equal(t, DecisionBearer, d)
		assert.Equal(t, "Bearer jwt", h.Get(HeaderAuthorization))
		assert.Equal(t, int32(1), src.access.Load())
	})

	t.Run("email", func(t *testing.T) {
		h := http.Header{}
		src := &draining{emailToken: "otp-token"}

		d := Apply(h, Classify("/api/v1/bookings/me/"), src)

		assert.Equal(t, DecisionEmail, d)
		assert.Equal(t, "EmailToken otp-token", h.Get(HeaderAuthorization))
		assert.Equal(t, "otp-token", h.Get(HeaderEmailToken))
		assert.Equal(t, int32(1), src.email.Load())
	})
}

type pairedSource struct {
	StaticCredentials
	calls int
}

func (p *pairedSource) Tokens() (string, string) {
	p.calls++
	return p.Access, p.Email
}

func TestApply_PrefersTokenSnapshot(t *testing.T) {
	h := http.Header{}
	src := &pairedSource{StaticCredentials: StaticCredentials{Access: "jwt"}}

	Apply(h, Classify("/api/v1/bookings/"), src)

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, "Bearer jwt", h.Get(HeaderAuthorization))
}

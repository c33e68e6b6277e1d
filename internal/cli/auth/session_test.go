package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	*MemoryStore
}

func (f *failingStore) Save(string, Credentials) error { return errors.New("keychain locked") }
func (f *failingStore) Clear(string) error            { return errors.New("keychain locked") }

func TestSession_LoginFlows(t *testing.T) {
	store := NewMemoryStore()
	s, err := OpenSession(store, "book.test")
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())

	require.NoError(t, s.LoginEmail("otp-token"))
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "otp-token", s.EmailToken())

	require.NoError(t, s.Login("access", "refresh"))
	assert.Equal(t, "access", s.AccessToken())
	assert.Equal(t, "refresh", s.RefreshToken())
	assert.Equal(t, "otp-token", s.EmailToken())

	access, email := s.Tokens()
	assert.Equal(t, "access", access)
	assert.Equal(t, "otp-token", email)

	require.NoError(t, s.Refresh("access-2"))
	stored, _ := store.Load("book.test")
	assert.Equal(t, Credentials{Access: "access-2", Refresh: "refresh", Email: "otp-token"}, stored)

	require.NoError(t, s.DropStaffTokens())
	assert.Empty(t, s.AccessToken())
	assert.Equal(t, "otp-token", s.EmailToken())

	require.NoError(t, s.Logout())
	assert.False(t, s.IsAuthenticated())
	stored, _ = store.Load("book.test")
	assert.Equal(t, Credentials{}, stored)
}

func TestSession_SaveFailureKeepsPreviousState(t *testing.T) {
	store := &failingStore{MemoryStore: NewMemoryStore()}
	s, err := OpenSession(store, "book.test")
	require.NoError(t, err)

	err = s.Login("access", "refresh")
	require.Error(t, err)
	assert.Empty(t, s.AccessToken())
}

func TestSession_LogoutClearsMemoryEvenWhenStoreFails(t *testing.T) {
	store := &failingStore{MemoryStore: NewMemoryStore()}
	store.creds["book.test"] = Credentials{Access: "access"}

	s, err := OpenSession(store, "book.test")
	require.NoError(t, err)
	require.Equal(t, "access", s.AccessToken())

	require.Error(t, s.Logout())
	assert.Empty(t, s.AccessToken())
}

func TestInspectToken(t *testing.T) {
	exp := time.Now().Add(-time.Minute).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"token_type": "access",
		"user_id":    7,
		"exp":        exp.Unix(),
	})
	signed, err := token.SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	info, err := InspectToken(signed)
	require.NoError(t, err)

	assert.Equal(t, "7", info.UserID)
	assert.Equal(t, "access", info.TokenType)
	assert.True(t, info.ExpiresAt.Equal(exp))
	assert.True(t, info.Expired(time.Now()))
}

func TestInspectToken_Garbage(t *testing.T) {
	_, err := InspectToken("not-a-jwt")
	assert.Error(t, err)
}

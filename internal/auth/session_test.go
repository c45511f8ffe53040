// internal/auth/session_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	Init()

	id := uuid.New()
	token, err := CreateJWT(id.String())
	require.NoError(t, err)

	sub, err := AuthenticateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), sub)
}

func TestTamperedTokenRejected(t *testing.T) {
	Init()

	token, err := CreateJWT(uuid.New().String())
	require.NoError(t, err)

	_, err = AuthenticateJWT(token + "x")
	assert.Error(t, err)

	_, err = AuthenticateJWT("not-a-token")
	assert.Error(t, err)
}

func TestEnsureGuestMintsAndHonorsCookie(t *testing.T) {
	Init()

	// first request: no cookie, a guest identity is minted and set
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ws", nil)
	id, err := EnsureGuest(w, r)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)

	// second request with the cookie: same identity, no new cookie
	w2 := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodGet, "/ws", nil)
	r2.AddCookie(cookies[0])
	id2, err := EnsureGuest(w2, r2)
	require.NoError(t, err)
	assert.Equal(t, id, id2)
	assert.Empty(t, w2.Result().Cookies())
}

func TestEnsureGuestReissuesInvalidCookie(t *testing.T) {
	Init()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ws", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})

	id, err := EnsureGuest(w, r)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	require.Len(t, w.Result().Cookies(), 1, "invalid token must be replaced")
}

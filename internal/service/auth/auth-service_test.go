package auth

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrioChat/entity"
	"TrioChat/internal/config"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &config.Config{}
	conf.Auth.BaseURL = srv.URL

	return NewAuthService(conf, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAuthenticateByToken(t *testing.T) {
	var gotAuth string
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/identity", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		json.NewEncoder(w).Encode(map[string]string{
			"id":   "user-1",
			"name": "Asha",
			"role": "vendor",
		})
	})

	user, err := s.AuthenticateByToken("tok-123")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, entity.RoleVendor, user.Role)
}

func TestAuthenticateByToken_LegacyRoleTag(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"id":   "user-9",
			"name": "Ravi",
			"role": "delivery_boy",
		})
	})

	user, err := s.AuthenticateByToken("tok")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDelivery, user.Role)
}

func TestAuthenticateByToken_InvalidToken(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := s.AuthenticateByToken("expired")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateByToken_UnknownRole(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"id":   "user-2",
			"name": "Admin",
			"role": "admin",
		})
	})

	_, err := s.AuthenticateByToken("tok")
	assert.Error(t, err)
}

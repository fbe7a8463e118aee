package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhq/salon-backend-go/internal/domain/auth"
	"github.com/salonhq/salon-backend-go/internal/pkg/jwt"
)

const (
	middlewareTestSecret     = "test-secret-key-for-jwt"
	middlewareTestAccessExp  = "1h"
	middlewareTestRefreshExp = "24h"
)

func newProtectedServer(svc jwt.Service, ownerGated bool) http.Handler {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(svc.JWTAuth()))
	r.Use(AuthRequired(svc.JWTAuth()))
	if ownerGated {
		r.Use(OwnerOnly)
	}
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func doRequest(t *testing.T, handler http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_AccessToken(t *testing.T) {
	svc := jwt.NewJWTService(middlewareTestSecret, middlewareTestAccessExp, middlewareTestRefreshExp)
	handler := newProtectedServer(svc, false)

	staffID := "staff-1"
	token, expiresAt, err := svc.GenerateAccessToken("user-1", &staffID, "business-1", auth.RoleStaff)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	rec := doRequest(t, handler, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_NoStaffClaim(t *testing.T) {
	svc := jwt.NewJWTService(middlewareTestSecret, middlewareTestAccessExp, middlewareTestRefreshExp)
	handler := newProtectedServer(svc, false)

	token, _, err := svc.GenerateAccessToken("user-1", nil, "business-1", auth.RoleOwner)
	require.NoError(t, err)

	rec := doRequest(t, handler, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_RejectsRefreshToken(t *testing.T) {
	svc := jwt.NewJWTService(middlewareTestSecret, middlewareTestAccessExp, middlewareTestRefreshExp)
	handler := newProtectedServer(svc, false)

	// Refresh tokens carry type=refresh and must not pass the access gate.
	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	rec := doRequest(t, handler, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	svc := jwt.NewJWTService(middlewareTestSecret, middlewareTestAccessExp, middlewareTestRefreshExp)
	handler := newProtectedServer(svc, false)

	rec := doRequest(t, handler, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_GarbageToken(t *testing.T) {
	svc := jwt.NewJWTService(middlewareTestSecret, middlewareTestAccessExp, middlewareTestRefreshExp)
	handler := newProtectedServer(svc, false)

	rec := doRequest(t, handler, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_WrongSecret(t *testing.T) {
	svc := jwt.NewJWTService(middlewareTestSecret, middlewareTestAccessExp, middlewareTestRefreshExp)
	other := jwt.NewJWTService("a-different-secret", middlewareTestAccessExp, middlewareTestRefreshExp)
	handler := newProtectedServer(svc, false)

	token, _, err := other.GenerateAccessToken("user-1", nil, "business-1", auth.RoleOwner)
	require.NoError(t, err)

	rec := doRequest(t, handler, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOwnerOnly(t *testing.T) {
	svc := jwt.NewJWTService(middlewareTestSecret, middlewareTestAccessExp, middlewareTestRefreshExp)
	handler := newProtectedServer(svc, true)

	cases := []struct {
		name string
		role auth.Role
		want int
	}{
		{"owner passes", auth.RoleOwner, http.StatusOK},
		{"admin passes", auth.RoleAdmin, http.StatusOK},
		{"staff forbidden", auth.RoleStaff, http.StatusForbidden},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			token, _, err := svc.GenerateAccessToken("user-1", nil, "business-1", c.role)
			require.NoError(t, err)

			rec := doRequest(t, handler, token)
			assert.Equal(t, c.want, rec.Code)
		})
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caibang/attendance-backend-go/internal/pkg/jwt"
)

func protectedRouter(ja *jwtauth.JWTAuth) http.Handler {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(ja))
	r.Use(AuthRequired)
	r.Get("/member", ok)
	r.With(AdminOnly).Get("/admin", ok)
	return r
}

func do(t *testing.T, h http.Handler, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthRequiredAndAdminOnly(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "1h")
	h := protectedRouter(svc.JWTAuth())

	memberToken, _, err := svc.GenerateAccessToken(jwt.Principal{UserID: "u-1"})
	require.NoError(t, err)
	adminToken, _, err := svc.GenerateAccessToken(jwt.Principal{UserID: "u-2", IsAdmin: true})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, do(t, h, "/member", ""))
	assert.Equal(t, http.StatusUnauthorized, do(t, h, "/member", "garbage"))
	assert.Equal(t, http.StatusNoContent, do(t, h, "/member", memberToken))
	assert.Equal(t, http.StatusForbidden, do(t, h, "/admin", memberToken))
	assert.Equal(t, http.StatusNoContent, do(t, h, "/admin", adminToken))

	// Tokens signed with another key are rejected.
	other := jwt.NewJWTService("other-secret", "1h")
	forged, _, err := other.GenerateAccessToken(jwt.Principal{UserID: "u-3", IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, "/admin", forged))
}

package jwt

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	tokenString, expiresAt, err := svc.GenerateAccessToken(Principal{
		UserID:  "user-1",
		Email:   "boss@caibang.vn",
		IsAdmin: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), token, nil)
	p, err := PrincipalFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "boss@caibang.vn", p.Email)
	assert.True(t, p.IsAdmin)
	assert.False(t, p.IsAnonymous)
}

func TestPrincipalFromContext_Missing(t *testing.T) {
	_, err := PrincipalFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoPrincipal)
}

func TestNewJWTService_InvalidExpirationFallsBack(t *testing.T) {
	svc := NewJWTService("secret", "not-a-duration").(*JWTService)
	assert.Equal(t, "1h0m0s", svc.accessTokenExpirationTime.String())
}

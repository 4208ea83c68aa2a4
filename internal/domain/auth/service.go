package auth

import (
	"context"
)

type AuthService interface {
	SignInAnonymously(ctx context.Context) (TokenResponse, error)
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, profile GoogleProfile) (TokenResponse, error)
}

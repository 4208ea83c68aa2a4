package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrGoogleDisabled     = errors.New("google sign-in is not configured")
	ErrEmailNotVerified   = errors.New("google account email is not verified")
)

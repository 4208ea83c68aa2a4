package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/caibang/attendance-backend-go/internal/config"
	"github.com/caibang/attendance-backend-go/internal/domain/auth"
	"github.com/caibang/attendance-backend-go/internal/domain/user"
	"github.com/caibang/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	admin config.AdminConfig
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, admin config.AdminConfig) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		admin:          admin,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SignInAnonymously implements auth.AuthService.
func (a *AuthServiceImpl) SignInAnonymously(ctx context.Context) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.Create(ctx, user.User{Provider: user.ProviderAnonymous})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create anonymous user: %w", err)
	}
	return a.issueToken(userData)
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}
	email := normalizeEmail(req.Email)

	// Check user already exist or not
	_, err := a.UserRepository.GetByEmail(ctx, email)
	if err == nil {
		return auth.TokenResponse{}, user.ErrUserEmailExists
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user data by email: %w", err)
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	userData, err := a.UserRepository.Create(ctx, user.User{
		Email:        &email,
		PasswordHash: &hashed,
		Provider:     user.ProviderPassword,
	})
	if err != nil {
		if errors.Is(err, user.ErrUserEmailExists) {
			return auth.TokenResponse{}, err
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return a.issueToken(userData)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Google-only accounts have no password
	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueToken(userData)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, profile auth.GoogleProfile) (auth.TokenResponse, error) {
	if !profile.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrEmailNotVerified
	}
	email := normalizeEmail(profile.Email)

	userData, err := a.UserRepository.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		// User does not exist so we create one
		userData, err = a.UserRepository.Create(ctx, user.User{
			Email:           &email,
			Provider:        user.ProviderGoogle,
			OAuthProviderID: &profile.GoogleID,
			DisplayName:     optional(profile.Name),
			PhotoURL:        optional(profile.Picture),
		})
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
		}
	case err != nil:
		return auth.TokenResponse{}, fmt.Errorf("failed to get user data by email: %w", err)
	case userData.OAuthProviderID == nil:
		userData, err = a.UserRepository.LinkGoogleAccount(ctx, profile.GoogleID, email, optional(profile.Picture))
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
		}
	}

	return a.issueToken(userData)
}

func (a *AuthServiceImpl) issueToken(u user.User) (auth.TokenResponse, error) {
	var email string
	if u.Email != nil {
		email = *u.Email
	}

	principal := jwt.Principal{
		UserID:      u.ID,
		Email:       email,
		IsAdmin:     email != "" && a.admin.IsAdminEmail(email),
		IsAnonymous: u.IsAnonymous(),
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(principal)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		UserID:               u.ID,
		IsAnonymous:          principal.IsAnonymous,
		IsAdmin:              principal.IsAdmin,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

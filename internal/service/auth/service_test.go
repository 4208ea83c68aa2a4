package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caibang/attendance-backend-go/internal/config"
	"github.com/caibang/attendance-backend-go/internal/domain/auth"
	"github.com/caibang/attendance-backend-go/internal/domain/user"
	"github.com/caibang/attendance-backend-go/internal/pkg/jwt"
)

const testSecret = "test-secret-key-for-jwt"

type fakeUserRepo struct {
	users map[string]user.User
	links int
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) LinkGoogleAccount(ctx context.Context, googleID, email string, photoURL *string) (user.User, error) {
	u, err := f.GetByEmail(ctx, email)
	if err != nil {
		return user.User{}, err
	}
	f.links++
	u.OAuthProviderID = &googleID
	u.PhotoURL = photoURL
	f.users[u.ID] = u
	return u, nil
}

func newService() (auth.AuthService, *fakeUserRepo, jwt.Service) {
	repo := &fakeUserRepo{users: map[string]user.User{}}
	jwtService := jwt.NewJWTService(testSecret, "1h")
	admin := config.AdminConfig{Emails: []string{"bang-chu@caibang.vn"}}
	return NewAuthService(repo, jwtService, admin), repo, jwtService
}

func TestSignInAnonymously(t *testing.T) {
	svc, repo, jwtService := newService()

	tokens, err := svc.SignInAnonymously(context.Background())
	require.NoError(t, err)

	assert.True(t, tokens.IsAnonymous)
	assert.False(t, tokens.IsAdmin)
	assert.Len(t, repo.users, 1)

	token, err := jwtService.JWTAuth().Decode(tokens.AccessToken)
	require.NoError(t, err)
	userID, ok := token.Get("user_id")
	require.True(t, ok)
	assert.Equal(t, tokens.UserID, userID)
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, auth.RegisterRequest{
		Email:           "Bang-Chu@caibang.vn",
		Password:        "hang-long-18",
		ConfirmPassword: "hang-long-18",
	})
	require.NoError(t, err)
	assert.True(t, registered.IsAdmin)

	_, err = svc.Register(ctx, auth.RegisterRequest{
		Email:           "bang-chu@caibang.vn",
		Password:        "another-pass",
		ConfirmPassword: "another-pass",
	})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	loggedIn, err := svc.Login(ctx, auth.LoginRequest{Email: "bang-chu@caibang.vn", Password: "hang-long-18"})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, loggedIn.UserID)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "bang-chu@caibang.vn", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "nobody@caibang.vn", Password: "hang-long-18"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginWithGoogle(t *testing.T) {
	svc, repo, _ := newService()
	ctx := context.Background()

	profile := auth.GoogleProfile{
		GoogleID:      "g-1",
		Email:         "a-chu@caibang.vn",
		VerifiedEmail: true,
		Name:          "A Châu",
		Picture:       "https://lh3.googleusercontent.com/a",
	}

	first, err := svc.LoginWithGoogle(ctx, profile)
	require.NoError(t, err)
	second, err := svc.LoginWithGoogle(ctx, profile)
	require.NoError(t, err)

	assert.Equal(t, first.UserID, second.UserID)
	assert.Len(t, repo.users, 1)
	assert.Zero(t, repo.links)

	// Google-only accounts cannot use password login
	_, err = svc.Login(ctx, auth.LoginRequest{Email: "a-chu@caibang.vn", Password: "whatever1"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	profile.VerifiedEmail = false
	_, err = svc.LoginWithGoogle(ctx, profile)
	assert.ErrorIs(t, err, auth.ErrEmailNotVerified)
}

func TestLoginWithGoogle_LinksPasswordAccount(t *testing.T) {
	svc, repo, _ := newService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, auth.RegisterRequest{
		Email:           "du@caibang.vn",
		Password:        "luc-mach-than-kiem",
		ConfirmPassword: "luc-mach-than-kiem",
	})
	require.NoError(t, err)

	tokens, err := svc.LoginWithGoogle(ctx, auth.GoogleProfile{GoogleID: "g-2", Email: "du@caibang.vn", VerifiedEmail: true})
	require.NoError(t, err)

	assert.Equal(t, registered.UserID, tokens.UserID)
	assert.Equal(t, 1, repo.links)
}

package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	// LinkGoogleAccount attaches a Google identity to the account owning email.
	LinkGoogleAccount(ctx context.Context, googleID, email string, photoURL *string) (User, error)
}

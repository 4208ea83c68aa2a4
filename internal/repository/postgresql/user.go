package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/caibang/attendance-backend-go/internal/domain/user"
	"github.com/caibang/attendance-backend-go/internal/pkg/database"
)

const usersEmailKey = "users_email_key"

const userColumns = `
	id, email, password_hash, provider, oauth_provider_id, display_name, photo_url,
	created_at, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	if newUser.ID == "" {
		newUser.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, email, password_hash, provider, oauth_provider_id, display_name, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.ID,
		newUser.Email,
		newUser.PasswordHash,
		string(newUser.Provider),
		newUser.OAuthProviderID,
		newUser.DisplayName,
		newUser.PhotoURL,
	))
	if err != nil {
		if isUniqueViolation(err, usersEmailKey) {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, "SELECT"+userColumns+" FROM users WHERE email = $1", email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, "SELECT"+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// LinkGoogleAccount implements user.UserRepository.
func (r *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID, email string, photoURL *string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET oauth_provider_id = $1, photo_url = COALESCE(photo_url, $2), updated_at = NOW()
		WHERE email = $3
		RETURNING` + userColumns

	updated, err := scanUser(q.QueryRow(ctx, query, googleID, photoURL, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to link google account: %w", err)
	}
	return updated, nil
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var provider string
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&provider,
		&u.OAuthProviderID,
		&u.DisplayName,
		&u.PhotoURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	u.Provider = user.Provider(provider)
	return u, err
}

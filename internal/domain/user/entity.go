package user

import "time"

type Provider string

const (
	ProviderAnonymous Provider = "anonymous"
	ProviderPassword  Provider = "password"
	ProviderGoogle    Provider = "google"
)

// User is a sign-in account. Its ID is the stable principal identifier
// that owns attendance records, daily reports and the roster profile.
type User struct {
	ID              string
	Email           *string
	PasswordHash    *string
	Provider        Provider
	OAuthProviderID *string
	DisplayName     *string
	PhotoURL        *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (u *User) IsAnonymous() bool {
	return u.Provider == ProviderAnonymous
}

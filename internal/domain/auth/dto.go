package auth

import "github.com/caibang/attendance-backend-go/internal/pkg/validator"

const emailFormatMessage = "email must be a valid email address, e.g. user@example.com"

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	// Email
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if len(r.Email) > 254 {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed 254 characters",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: emailFormatMessage,
		})
	}

	// Password
	errs = append(errs, validatePassword(r.Password)...)
	if validator.IsEmpty(r.ConfirmPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "confirm_password is required",
		})
	} else if r.ConfirmPassword != r.Password {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "password and confirm_password do not match",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: emailFormatMessage,
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validatePassword(password string) validator.ValidationErrors {
	switch {
	case validator.IsEmpty(password):
		return validator.Fail("password", "password is required")
	case len(password) < 8:
		return validator.Fail("password", "password must be at least 8 characters long")
	case len(password) > 72:
		// bcrypt only hashes the first 72 bytes
		return validator.Fail("password", "password must not exceed 72 characters")
	}
	return nil
}

// GoogleProfile is the verified identity returned by the Google callback.
type GoogleProfile struct {
	GoogleID      string
	Email         string
	VerifiedEmail bool
	Name          string
	Picture       string
}

type TokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
	UserID               string `json:"user_id"`
	IsAnonymous          bool   `json:"is_anonymous"`
	IsAdmin              bool   `json:"is_admin"`
}

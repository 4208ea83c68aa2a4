package response

import (
	"errors"
	"net/http"

	"github.com/caibang/attendance-backend-go/internal/domain/attendance"
	"github.com/caibang/attendance-backend-go/internal/domain/auth"
	"github.com/caibang/attendance-backend-go/internal/domain/dailyreport"
	"github.com/caibang/attendance-backend-go/internal/domain/member"
	"github.com/caibang/attendance-backend-go/internal/domain/user"
	"github.com/caibang/attendance-backend-go/internal/pkg/jwt"
	"github.com/caibang/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, jwt.ErrNoPrincipal):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Google account email is not verified")
	case errors.Is(err, auth.ErrGoogleDisabled):
		NotFound(w, "Google sign-in is not configured")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Member has already checked in today")

	// Daily report domain errors
	case errors.Is(err, dailyreport.ErrDailyReportNotFound):
		NotFound(w, "No daily report matches the given employee, level and date")

	// Member domain errors
	case errors.Is(err, member.ErrMemberIDExists):
		Conflict(w, "Member ID is already registered to another account")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

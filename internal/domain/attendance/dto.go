package attendance

import (
	"strings"
	"time"

	"github.com/caibang/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// CHECK-IN DTOs
// ========================================

type CheckInRequest struct {
	MemberName string `json:"member_name"`
	MemberID   string `json:"member_id"`
	Location   string `json:"location"`
}

func (r *CheckInRequest) Validate() error {
	errs := r.validate()
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CheckInRequest) validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MemberName) {
		errs = append(errs, validator.ValidationError{
			Field:   "member_name",
			Message: "member_name is required",
		})
	}

	if validator.IsEmpty(r.MemberID) {
		errs = append(errs, validator.ValidationError{
			Field:   "member_id",
			Message: "member_id is required",
		})
	} else if !validator.IsValidMemberID(r.MemberID) {
		errs = append(errs, validator.ValidationError{
			Field:   "member_id",
			Message: "member_id must be 3 digits and must not start with 0",
		})
	}

	if !validator.IsInSlice(r.Location, validLocations) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must be one of: " + strings.Join(validLocations, ", "),
		})
	}

	return errs
}

// LateCheckInRequest carries the details collected after a check-in was found late.
type LateCheckInRequest struct {
	CheckInRequest
	LateReason        string `json:"late_reason"`
	ReportedInAdvance bool   `json:"reported_in_advance"`
	LateApprover      string `json:"late_approver"`
}

func (r *LateCheckInRequest) Validate() error {
	errs := r.CheckInRequest.validate()

	if r.ReportedInAdvance && validator.IsEmpty(r.LateApprover) {
		errs = append(errs, validator.ValidationError{
			Field:   "late_approver",
			Message: "late_approver is required when lateness was reported in advance",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID                    string  `json:"id"`
	MemberID              string  `json:"member_id"`
	MemberName            string  `json:"member_name"`
	CheckinAt             string  `json:"checkin_at"`
	CheckinDate           string  `json:"checkin_date"`
	Location              string  `json:"location"`
	IsLate                bool    `json:"is_late"`
	LateMinutes           int     `json:"late_minutes"`
	LateReason            *string `json:"late_reason,omitempty"`
	LateReportedInAdvance bool    `json:"late_reported_in_advance"`
	LateApprover          *string `json:"late_approver,omitempty"`
	DeductedHours         float64 `json:"deducted_hours"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                    a.ID,
		MemberID:              a.MemberID,
		MemberName:            a.MemberName,
		CheckinAt:             a.CheckinAt.Format(time.RFC3339),
		CheckinDate:           a.CheckinDate.Format(time.DateOnly),
		Location:              a.Location,
		IsLate:                a.IsLate(),
		LateMinutes:           a.LateMinutes,
		LateReason:            a.LateReason,
		LateReportedInAdvance: a.LateReportedInAdvance,
		LateApprover:          a.LateApprover,
		DeductedHours:         a.DeductedHours,
	}
}

// CheckInResponse is returned by both check-in steps. When RequiresLateDetails
// is set nothing was stored and the client must call the late check-in endpoint.
type CheckInResponse struct {
	RequiresLateDetails bool                `json:"requires_late_details"`
	LateMinutes         int                 `json:"late_minutes"`
	Cutoff              string              `json:"cutoff"`
	Attendance          *AttendanceResponse `json:"attendance,omitempty"`
	Notice              string              `json:"notice,omitempty"`
}

type StatusResponse struct {
	Now         string `json:"now"`
	Cutoff      string `json:"cutoff"`
	IsLate      bool   `json:"is_late"`
	LateMinutes int    `json:"late_minutes"`
}

// ========================================
// QUERY DTOs
// ========================================

type HistoryFilter struct {
	Date string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (f *HistoryFilter) Validate() error {
	return validateOptionalDate(f.Date)
}

type MonthlyStatsFilter struct {
	Date string `json:"date,omitempty"` // any YYYY-MM-DD inside the month, defaults to today
}

func (f *MonthlyStatsFilter) Validate() error {
	return validateOptionalDate(f.Date)
}

func validateOptionalDate(date string) error {
	if date == "" {
		return nil
	}
	if _, ok := validator.IsValidDate(date); !ok {
		return validator.Fail("date", "date must be in YYYY-MM-DD format")
	}
	return nil
}

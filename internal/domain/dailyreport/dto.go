package dailyreport

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caibang/attendance-backend-go/internal/pkg/validator"
)

// Policy controls the optional workday rule.
type Policy struct {
	StrictWorkday bool
	WorkdayHours  float64
}

var validWorkLocations = []string{WorkLocationOnSite, WorkLocationRemote}

type SubmitDailyReportRequest struct {
	Name             string          `json:"name"`
	EmployeeID       string          `json:"employee_id"`
	Level            int             `json:"level"`
	WorkingHours     float64         `json:"working_hours"`
	LateHours        float64         `json:"late_hours"`
	LeaveHours       float64         `json:"leave_hours"`
	OvertimeHours    float64         `json:"overtime_hours"`
	PermissionState  PermissionState `json:"permission_state"`
	LeaveApprover    string          `json:"leave_approver"`
	WorkLocation     string          `json:"work_location"`
	ReportLink       string          `json:"report_link"`
	WorkDescription  string          `json:"work_description"`
	OvertimeContent  string          `json:"overtime_content"`
	OvertimeApprover string          `json:"overtime_approver"`
	Date             string          `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

// Validate stops at the first failing rule and reports only that rule.
func (r *SubmitDailyReportRequest) Validate(policy Policy) error {
	// Required fields
	required := []struct {
		field string
		empty bool
	}{
		{"name", validator.IsEmpty(r.Name)},
		{"employee_id", validator.IsEmpty(r.EmployeeID)},
		{"level", r.Level == 0},
		{"work_location", validator.IsEmpty(r.WorkLocation)},
		{"report_link", validator.IsEmpty(r.ReportLink)},
		{"work_description", validator.IsEmpty(r.WorkDescription)},
	}
	for _, f := range required {
		if f.empty {
			return validator.Fail(f.field, f.field+" is required")
		}
	}
	if r.Level < MinLevel || r.Level > MaxLevel {
		return validator.Fail("level", fmt.Sprintf("level must be between %d and %d", MinLevel, MaxLevel))
	}
	if !validator.IsInSlice(r.WorkLocation, validWorkLocations) {
		return validator.Fail("work_location", "work_location must be one of: on_site, remote")
	}

	// Leave permission
	switch r.PermissionState {
	case PermissionUnset, PermissionNotRequested, PermissionRequested:
	default:
		return validator.Fail("permission_state", "permission_state must be one of: not_requested, requested")
	}
	if r.PermissionState == PermissionUnset && r.LeaveHours > 0 {
		return validator.Fail("permission_state", "permission_state must be chosen when leave_hours is set")
	}
	if r.PermissionState == PermissionRequested && validator.IsEmpty(r.LeaveApprover) && r.LeaveHours > 0 {
		return validator.Fail("leave_approver", "leave_approver is required when leave was requested")
	}

	// Formats
	if !validator.IsValidLink(r.ReportLink) {
		return validator.Fail("report_link", "report_link must be an http or https URL")
	}
	if !validator.IsValidMemberID(r.EmployeeID) {
		return validator.Fail("employee_id", "employee_id must be 3 digits and must not start with 0")
	}

	// Overtime
	if r.OvertimeHours > 0 && (validator.IsEmpty(r.OvertimeContent) || validator.IsEmpty(r.OvertimeApprover)) {
		if validator.IsEmpty(r.OvertimeContent) {
			return validator.Fail("overtime_content", "overtime_content is required when overtime_hours is set")
		}
		return validator.Fail("overtime_approver", "overtime_approver is required when overtime_hours is set")
	}

	for _, h := range []struct {
		field string
		value float64
	}{
		{"working_hours", r.WorkingHours},
		{"late_hours", r.LateHours},
		{"leave_hours", r.LeaveHours},
		{"overtime_hours", r.OvertimeHours},
	} {
		if h.value < 0 {
			return validator.Fail(h.field, h.field+" must not be negative")
		}
	}

	if policy.StrictWorkday {
		// Summed as decimals so inputs like 7.1 + 0.9 compare equal to 8.
		sum := decimal.NewFromFloat(r.WorkingHours).
			Add(decimal.NewFromFloat(r.LateHours)).
			Add(decimal.NewFromFloat(r.LeaveHours))
		if !sum.Equal(decimal.NewFromFloat(policy.WorkdayHours)) {
			return validator.Fail("working_hours", fmt.Sprintf(
				"working_hours + late_hours + leave_hours must equal %s, got %s",
				formatHours(policy.WorkdayHours), sum.String()))
		}
	}

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			return validator.Fail("date", "date must be in YYYY-MM-DD format")
		}
	}

	return nil
}

type DailyReportResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	EmployeeID       string          `json:"employee_id"`
	Level            int             `json:"level"`
	WorkingHours     float64         `json:"working_hours"`
	LateHours        float64         `json:"late_hours"`
	LeaveHours       float64         `json:"leave_hours"`
	OvertimeHours    float64         `json:"overtime_hours"`
	TotalHours       float64         `json:"total_hours"`
	PermissionState  PermissionState `json:"permission_state,omitempty"`
	LeaveApprover    *string         `json:"leave_approver,omitempty"`
	WorkLocation     string          `json:"work_location"`
	ReportLink       string          `json:"report_link"`
	WorkDescription  string          `json:"work_description"`
	OvertimeContent  *string         `json:"overtime_content,omitempty"`
	OvertimeApprover *string         `json:"overtime_approver,omitempty"`
	SubmissionDate   string          `json:"submission_date"`
	SubmittedAt      string          `json:"submitted_at"`
}

func ToResponse(r DailyReport) DailyReportResponse {
	return DailyReportResponse{
		ID:               r.ID,
		Name:             r.Name,
		EmployeeID:       r.EmployeeID,
		Level:            r.Level,
		WorkingHours:     r.WorkingHours,
		LateHours:        r.LateHours,
		LeaveHours:       r.LeaveHours,
		OvertimeHours:    r.OvertimeHours,
		TotalHours:       r.TotalHours,
		PermissionState:  r.PermissionState,
		LeaveApprover:    r.LeaveApprover,
		WorkLocation:     r.WorkLocation,
		ReportLink:       r.ReportLink,
		WorkDescription:  r.WorkDescription,
		OvertimeContent:  r.OvertimeContent,
		OvertimeApprover: r.OvertimeApprover,
		SubmissionDate:   r.SubmissionDate.Format(time.DateOnly),
		SubmittedAt:      r.SubmittedAt.Format(time.RFC3339),
	}
}

type ListDailyReportFilter struct {
	Date string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (f *ListDailyReportFilter) Validate() error {
	if f.Date == "" {
		return nil
	}
	if _, ok := validator.IsValidDate(f.Date); !ok {
		return validator.Fail("date", "date must be in YYYY-MM-DD format")
	}
	return nil
}

// ResetDailyReportRequest identifies the report an administrator wants removed.
type ResetDailyReportRequest struct {
	EmployeeID string `json:"employee_id"`
	Level      int    `json:"level"`
	Date       string `json:"date"` // YYYY-MM-DD, defaults to today
}

func (r *ResetDailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMemberID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be 3 digits and must not start with 0",
		})
	}

	if r.Level < MinLevel || r.Level > MaxLevel {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: fmt.Sprintf("level must be between %d and %d", MinLevel, MaxLevel),
		})
	}

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func formatHours(h float64) string {
	return fmt.Sprintf("%g", h)
}

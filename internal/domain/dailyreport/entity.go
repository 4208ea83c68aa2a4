package dailyreport

import (
	"time"

	"github.com/shopspring/decimal"
)

type PermissionState string

const (
	PermissionUnset        PermissionState = ""
	PermissionNotRequested PermissionState = "not_requested"
	PermissionRequested    PermissionState = "requested"
)

const (
	WorkLocationOnSite = "on_site"
	WorkLocationRemote = "remote"
)

const (
	MinLevel = 1
	MaxLevel = 10
)

// DailyReport is one member's self-report for one calendar day.
// Reports are never updated; resubmitting creates another record.
type DailyReport struct {
	ID               string
	Name             string
	EmployeeID       string
	Level            int
	WorkingHours     float64
	LateHours        float64
	LeaveHours       float64
	OvertimeHours    float64
	PermissionState  PermissionState
	LeaveApprover    *string
	WorkLocation     string
	ReportLink       string
	WorkDescription  string
	OvertimeContent  *string
	OvertimeApprover *string
	TotalHours       float64
	SubmissionDate   time.Time // local midnight of the day the report covers
	SubmittedAt      time.Time
	OwnerID          string
}

// TotalHours is the credited time of a day: hours worked plus overtime.
// Late and leave hours are not credited.
func TotalHours(workingHours, overtimeHours float64) float64 {
	return decimal.NewFromFloat(workingHours).Add(decimal.NewFromFloat(overtimeHours)).InexactFloat64()
}

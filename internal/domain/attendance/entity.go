package attendance

import (
	"time"
)

const (
	LocationOnSite = "on_site"
	LocationRemote = "remote"
)

var validLocations = []string{LocationOnSite, LocationRemote}

// Attendance is one check-in event. Records are created once and never updated.
type Attendance struct {
	ID                    string
	MemberID              string
	MemberName            string
	CheckinAt             time.Time
	CheckinDate           time.Time // local calendar day of CheckinAt
	Location              string
	LateMinutes           int
	LateReason            *string
	LateReportedInAdvance bool
	LateApprover          *string
	DeductedHours         float64
	OwnerID               string
	CreatedAt             time.Time
}

// IsLate reports whether the record counts as a late check-in.
func (a Attendance) IsLate() bool {
	return a.LateMinutes > 0
}

package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// Range bounds are inclusive on both ends and results are ordered by check-in
// instant ascending.
type AttendanceRepository interface {
	// Create persists a new check-in
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// HasCheckedInOnDay reports whether memberID already has a check-in within [start, end].
	// Used to prevent double check-in
	HasCheckedInOnDay(ctx context.Context, memberID string, start, end time.Time) (bool, error)

	// ListByOwner retrieves the check-ins submitted by one principal within [start, end]
	ListByOwner(ctx context.Context, ownerID string, start, end time.Time) ([]Attendance, error)

	// ListInRange retrieves every check-in within [start, end]
	ListInRange(ctx context.Context, start, end time.Time) ([]Attendance, error)
}

package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Status evaluates the current instant against today's cutoff
	Status(ctx context.Context) (StatusResponse, error)

	// CheckIn records an on-time check-in, or reports that late details are required
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// FinalizeLate re-evaluates lateness at call time and records the check-in with its deduction
	FinalizeLate(ctx context.Context, req LateCheckInRequest) (CheckInResponse, error)

	// History lists the caller's own check-ins on one day
	History(ctx context.Context, filter HistoryFilter) ([]AttendanceResponse, error)

	// MonthlyStats rolls up late check-ins of the month containing the given date
	MonthlyStats(ctx context.Context, filter MonthlyStatsFilter) (MonthlySummary, error)
}

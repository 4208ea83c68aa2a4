package dailyreport

import (
	"context"
	"time"
)

type DailyReportRepository interface {
	Create(ctx context.Context, report DailyReport) (DailyReport, error)

	// ListBySubmissionDate returns reports whose submission date lies in [start, end],
	// ordered by submission instant ascending.
	ListBySubmissionDate(ctx context.Context, start, end time.Time) ([]DailyReport, error)

	// DeleteFirst removes the earliest report matching employeeID and level in [start, end].
	// Returns ErrDailyReportNotFound when nothing matches.
	DeleteFirst(ctx context.Context, employeeID string, level int, start, end time.Time) error
}

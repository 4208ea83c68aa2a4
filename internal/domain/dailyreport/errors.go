package dailyreport

import "errors"

var (
	ErrDailyReportNotFound = errors.New("daily report not found")
)

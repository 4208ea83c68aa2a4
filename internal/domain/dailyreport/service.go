package dailyreport

import "context"

type DailyReportService interface {
	Submit(ctx context.Context, req SubmitDailyReportRequest) (DailyReportResponse, error)
	List(ctx context.Context, filter ListDailyReportFilter) ([]DailyReportResponse, error)
	Reset(ctx context.Context, req ResetDailyReportRequest) error
}

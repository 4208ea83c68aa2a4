package dailyreport

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/caibang/attendance-backend-go/internal/domain/dailyreport"
	"github.com/caibang/attendance-backend-go/internal/domain/user"
	"github.com/caibang/attendance-backend-go/internal/pkg/jwt"
	"github.com/caibang/attendance-backend-go/internal/pkg/utils"
	"github.com/caibang/attendance-backend-go/internal/pkg/validator"
)

type DailyReportServiceImpl struct {
	dailyreport.DailyReportRepository
	clock  clock.Clock
	loc    *time.Location
	policy dailyreport.Policy
}

func NewDailyReportService(
	reportRepo dailyreport.DailyReportRepository,
	clk clock.Clock,
	loc *time.Location,
	policy dailyreport.Policy,
) dailyreport.DailyReportService {
	return &DailyReportServiceImpl{
		DailyReportRepository: reportRepo,
		clock:                 clk,
		loc:                   loc,
		policy:                policy,
	}
}

// Submit implements dailyreport.DailyReportService.
func (s *DailyReportServiceImpl) Submit(ctx context.Context, req dailyreport.SubmitDailyReportRequest) (dailyreport.DailyReportResponse, error) {
	if err := req.Validate(s.policy); err != nil {
		return dailyreport.DailyReportResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return dailyreport.DailyReportResponse{}, err
	}

	now := s.clock.Now().In(s.loc)
	day, _ := utils.DayBounds(s.dayOf(req.Date))

	report := dailyreport.DailyReport{
		Name:             req.Name,
		EmployeeID:       req.EmployeeID,
		Level:            req.Level,
		WorkingHours:     req.WorkingHours,
		LateHours:        req.LateHours,
		LeaveHours:       req.LeaveHours,
		OvertimeHours:    req.OvertimeHours,
		PermissionState:  req.PermissionState,
		LeaveApprover:    optional(req.LeaveApprover),
		WorkLocation:     req.WorkLocation,
		ReportLink:       req.ReportLink,
		WorkDescription:  req.WorkDescription,
		OvertimeContent:  optional(req.OvertimeContent),
		OvertimeApprover: optional(req.OvertimeApprover),
		TotalHours:       dailyreport.TotalHours(req.WorkingHours, req.OvertimeHours),
		SubmissionDate:   day,
		SubmittedAt:      now,
		OwnerID:          principal.UserID,
	}

	created, err := s.DailyReportRepository.Create(ctx, report)
	if err != nil {
		return dailyreport.DailyReportResponse{}, fmt.Errorf("failed to create daily report: %w", err)
	}

	return dailyreport.ToResponse(created), nil
}

// List implements dailyreport.DailyReportService.
func (s *DailyReportServiceImpl) List(ctx context.Context, filter dailyreport.ListDailyReportFilter) ([]dailyreport.DailyReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, end := utils.DayBounds(s.dayOf(filter.Date))

	reports, err := s.DailyReportRepository.ListBySubmissionDate(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily reports: %w", err)
	}

	// Stable, so reports of one employee keep their submission order.
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].EmployeeID < reports[j].EmployeeID
	})

	responses := make([]dailyreport.DailyReportResponse, 0, len(reports))
	for _, r := range reports {
		responses = append(responses, dailyreport.ToResponse(r))
	}
	return responses, nil
}

// Reset implements dailyreport.DailyReportService.
func (s *DailyReportServiceImpl) Reset(ctx context.Context, req dailyreport.ResetDailyReportRequest) error {
	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return err
	}
	if !principal.IsAdmin {
		return user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return err
	}

	start, end := utils.DayBounds(s.dayOf(req.Date))

	if err := s.DailyReportRepository.DeleteFirst(ctx, req.EmployeeID, req.Level, start, end); err != nil {
		return fmt.Errorf("failed to reset daily report: %w", err)
	}
	return nil
}

func (s *DailyReportServiceImpl) dayOf(date string) time.Time {
	if date == "" {
		return s.clock.Now().In(s.loc)
	}
	day, _ := validator.ParseDateIn(date, s.loc)
	return day
}

func optional(s string) *string {
	if validator.IsEmpty(s) {
		return nil
	}
	return &s
}

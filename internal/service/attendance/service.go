package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/caibang/attendance-backend-go/internal/domain/attendance"
	"github.com/caibang/attendance-backend-go/internal/pkg/database"
	"github.com/caibang/attendance-backend-go/internal/pkg/jwt"
	"github.com/caibang/attendance-backend-go/internal/pkg/utils"
	"github.com/caibang/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	db database.Transactor
	attendance.AttendanceRepository
	clock     clock.Clock
	evaluator attendance.Evaluator
}

func NewAttendanceService(
	db database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	clk clock.Clock,
	evaluator attendance.Evaluator,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		clock:                clk,
		evaluator:            evaluator,
	}
}

// Status implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Status(ctx context.Context) (attendance.StatusResponse, error) {
	now := a.now()
	eval := a.evaluator.Evaluate(now)

	return attendance.StatusResponse{
		Now:         now.Format(time.RFC3339),
		Cutoff:      eval.Cutoff.Format(time.RFC3339),
		IsLate:      eval.IsLate,
		LateMinutes: eval.LateMinutes,
	}, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := a.now()
	eval := a.evaluator.Evaluate(now)

	// Late check-ins are only stored once the reason has been collected.
	if eval.IsLate {
		return attendance.CheckInResponse{
			RequiresLateDetails: true,
			LateMinutes:         eval.LateMinutes,
			Cutoff:              eval.Cutoff.Format(time.RFC3339),
		}, nil
	}

	record := a.newRecord(req, principal, now)
	created, err := a.record(ctx, record)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	resp := attendance.ToResponse(created)
	return attendance.CheckInResponse{
		Cutoff:     eval.Cutoff.Format(time.RFC3339),
		Attendance: &resp,
	}, nil
}

// FinalizeLate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) FinalizeLate(ctx context.Context, req attendance.LateCheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	// Lateness is measured at finalize time, not at the first submission.
	now := a.now()
	eval := a.evaluator.Evaluate(now)

	record := a.newRecord(req.CheckInRequest, principal, now)

	var notice string
	if eval.IsLate {
		record.LateMinutes = eval.LateMinutes
		record.LateReportedInAdvance = req.ReportedInAdvance
		record.DeductedHours = attendance.Deduction(eval.LateMinutes, req.ReportedInAdvance)
		if !validator.IsEmpty(req.LateReason) {
			record.LateReason = &req.LateReason
		}
		if req.ReportedInAdvance {
			record.LateApprover = &req.LateApprover
		}
		notice = attendance.DeductionNotice(record.DeductedHours, req.ReportedInAdvance, req.LateApprover)
	}

	created, err := a.record(ctx, record)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	resp := attendance.ToResponse(created)
	return attendance.CheckInResponse{
		LateMinutes: created.LateMinutes,
		Cutoff:      eval.Cutoff.Format(time.RFC3339),
		Attendance:  &resp,
		Notice:      notice,
	}, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, end := utils.DayBounds(a.dayOf(filter.Date))

	records, err := a.AttendanceRepository.ListByOwner(ctx, principal.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}
	return responses, nil
}

// MonthlyStats implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyStats(ctx context.Context, filter attendance.MonthlyStatsFilter) (attendance.MonthlySummary, error) {
	if err := filter.Validate(); err != nil {
		return attendance.MonthlySummary{}, err
	}

	start, end := utils.MonthBounds(a.dayOf(filter.Date))

	records, err := a.AttendanceRepository.ListInRange(ctx, start, end)
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to list attendance for month: %w", err)
	}

	return attendance.MonthlySummary{
		Month:       start.Format("2006-01"),
		PeriodStart: start,
		PeriodEnd:   end,
		Members:     attendance.Summarize(records),
	}, nil
}

// record stores a check-in unless the member already has one that day.
func (a *AttendanceServiceImpl) record(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	var created attendance.Attendance

	err := a.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		start, end := utils.DayBounds(record.CheckinAt)

		exists, err := a.AttendanceRepository.HasCheckedInOnDay(txCtx, record.MemberID, start, end)
		if err != nil {
			return fmt.Errorf("failed to check existing check-in: %w", err)
		}
		if exists {
			return attendance.ErrAlreadyCheckedIn
		}

		created, err = a.AttendanceRepository.Create(txCtx, record)
		if err != nil {
			return fmt.Errorf("failed to create attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.Attendance{}, err
	}

	return created, nil
}

func (a *AttendanceServiceImpl) newRecord(req attendance.CheckInRequest, principal jwt.Principal, now time.Time) attendance.Attendance {
	day, _ := utils.DayBounds(now)
	return attendance.Attendance{
		MemberID:    req.MemberID,
		MemberName:  req.MemberName,
		CheckinAt:   now,
		CheckinDate: day,
		Location:    req.Location,
		OwnerID:     principal.UserID,
	}
}

// now is the current instant in the attendance timezone.
func (a *AttendanceServiceImpl) now() time.Time {
	return a.clock.Now().In(a.evaluator.Location())
}

// dayOf resolves an optional YYYY-MM-DD to a day in the attendance timezone.
// Dates are validated before this is called.
func (a *AttendanceServiceImpl) dayOf(date string) time.Time {
	if date == "" {
		return a.now()
	}
	day, _ := validator.ParseDateIn(date, a.evaluator.Location())
	return day
}

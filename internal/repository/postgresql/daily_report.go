package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caibang/attendance-backend-go/internal/domain/dailyreport"
	"github.com/caibang/attendance-backend-go/internal/pkg/database"
)

type dailyReportRepository struct {
	db *database.DB
}

func NewDailyReportRepository(db *database.DB) dailyreport.DailyReportRepository {
	return &dailyReportRepository{db: db}
}

// Create implements dailyreport.DailyReportRepository.
func (d *dailyReportRepository) Create(ctx context.Context, report dailyreport.DailyReport) (dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, d.db)

	if report.ID == "" {
		report.ID = uuid.New().String()
	}

	query := `
		INSERT INTO daily_reports (
			id, name, employee_id, level,
			working_hours, late_hours, leave_hours, overtime_hours, total_hours,
			permission_state, leave_approver, work_location, report_link, work_description,
			overtime_content, overtime_approver, submission_date, submitted_at, owner_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
		)
	`

	_, err := q.Exec(ctx, query,
		report.ID, report.Name, report.EmployeeID, report.Level,
		report.WorkingHours, report.LateHours, report.LeaveHours, report.OvertimeHours, report.TotalHours,
		string(report.PermissionState), report.LeaveApprover, report.WorkLocation, report.ReportLink, report.WorkDescription,
		report.OvertimeContent, report.OvertimeApprover, report.SubmissionDate, report.SubmittedAt, report.OwnerID,
	)
	if err != nil {
		return dailyreport.DailyReport{}, fmt.Errorf("failed to create daily report: %w", err)
	}

	return report, nil
}

// ListBySubmissionDate implements dailyreport.DailyReportRepository.
func (d *dailyReportRepository) ListBySubmissionDate(ctx context.Context, start, end time.Time) ([]dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, d.db)

	where, args, err := buildWhere([]Filter{
		Gte("submission_date", start),
		Lte("submission_date", end),
	})
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, employee_id, level,
			   working_hours, late_hours, leave_hours, overtime_hours, total_hours,
			   permission_state, leave_approver, work_location, report_link, work_description,
			   overtime_content, overtime_approver, submission_date, submitted_at, owner_id
		FROM daily_reports` + where + `
		ORDER BY submitted_at ASC, id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily reports: %w", err)
	}
	defer rows.Close()

	var reports []dailyreport.DailyReport
	for rows.Next() {
		var r dailyreport.DailyReport
		var permission string
		if err := rows.Scan(
			&r.ID, &r.Name, &r.EmployeeID, &r.Level,
			&r.WorkingHours, &r.LateHours, &r.LeaveHours, &r.OvertimeHours, &r.TotalHours,
			&permission, &r.LeaveApprover, &r.WorkLocation, &r.ReportLink, &r.WorkDescription,
			&r.OvertimeContent, &r.OvertimeApprover, &r.SubmissionDate, &r.SubmittedAt, &r.OwnerID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan daily report: %w", err)
		}
		r.PermissionState = dailyreport.PermissionState(permission)
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily reports: %w", err)
	}

	return reports, nil
}

// DeleteFirst implements dailyreport.DailyReportRepository.
func (d *dailyReportRepository) DeleteFirst(ctx context.Context, employeeID string, level int, start, end time.Time) error {
	q := GetQuerier(ctx, d.db)

	where, args, err := buildWhere([]Filter{
		Eq("employee_id", employeeID),
		Eq("level", level),
		Gte("submission_date", start),
		Lte("submission_date", end),
	})
	if err != nil {
		return err
	}

	query := `
		DELETE FROM daily_reports
		WHERE id = (
			SELECT id FROM daily_reports` + where + `
			ORDER BY submitted_at ASC, id ASC
			LIMIT 1
		)`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete daily report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dailyreport.ErrDailyReportNotFound
	}

	return nil
}

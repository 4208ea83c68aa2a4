package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/caibang/attendance-backend-go/internal/domain/attendance"
	"github.com/caibang/attendance-backend-go/internal/pkg/database"
)

const attendanceMemberDayKey = "attendances_member_id_checkin_date_key"

const attendanceColumns = `
	id, member_id, member_name, checkin_at, checkin_date, location,
	late_minutes, late_reason, late_reported_in_advance, late_approver,
	deducted_hours, owner_id, created_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if newAttendance.ID == "" {
		newAttendance.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendances (
			id, member_id, member_name, checkin_at, checkin_date, location,
			late_minutes, late_reason, late_reported_in_advance, late_approver,
			deducted_hours, owner_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.MemberID,
		newAttendance.MemberName,
		newAttendance.CheckinAt,
		newAttendance.CheckinDate,
		newAttendance.Location,
		newAttendance.LateMinutes,
		newAttendance.LateReason,
		newAttendance.LateReportedInAdvance,
		newAttendance.LateApprover,
		newAttendance.DeductedHours,
		newAttendance.OwnerID,
	).Scan(&newAttendance.CreatedAt)

	if err != nil {
		if isUniqueViolation(err, attendanceMemberDayKey) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// HasCheckedInOnDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) HasCheckedInOnDay(ctx context.Context, memberID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	where, args, err := buildWhere([]Filter{
		Eq("member_id", memberID),
		Gte("checkin_at", start),
		Lte("checkin_at", end),
	})
	if err != nil {
		return false, err
	}

	var exists bool
	err = q.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM attendances"+where+")", args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}

	return exists, nil
}

// ListByOwner implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByOwner(ctx context.Context, ownerID string, start, end time.Time) ([]attendance.Attendance, error) {
	return a.list(ctx, []Filter{
		Eq("owner_id", ownerID),
		Gte("checkin_at", start),
		Lte("checkin_at", end),
	})
}

// ListInRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListInRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	return a.list(ctx, []Filter{
		Gte("checkin_at", start),
		Lte("checkin_at", end),
	})
}

func (a *attendanceRepository) list(ctx context.Context, filters []Filter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	where, args, err := buildWhere(filters)
	if err != nil {
		return nil, err
	}

	query := "SELECT" + attendanceColumns + " FROM attendances" + where + " ORDER BY checkin_at ASC, id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := scanAttendance(rows, &att); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return result, nil
}

func scanAttendance(row pgx.Row, att *attendance.Attendance) error {
	return row.Scan(
		&att.ID, &att.MemberID, &att.MemberName, &att.CheckinAt, &att.CheckinDate, &att.Location,
		&att.LateMinutes, &att.LateReason, &att.LateReportedInAdvance, &att.LateApprover,
		&att.DeductedHours, &att.OwnerID, &att.CreatedAt,
	)
}

package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caibang/attendance-backend-go/internal/domain/attendance"
	"github.com/caibang/attendance-backend-go/internal/domain/dailyreport"
	"github.com/caibang/attendance-backend-go/internal/domain/member"
	"github.com/caibang/attendance-backend-go/internal/domain/user"
	"github.com/caibang/attendance-backend-go/internal/pkg/utils"
	"github.com/caibang/attendance-backend-go/internal/repository/postgresql"
)

var ict = time.FixedZone("ICT", 7*3600)

func setup(t *testing.T) (*TestDatabaseSetup, context.Context) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	tdb, err := NewTestDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(tdb.Close)

	require.NoError(t, tdb.TruncateAllTables(ctx))
	return tdb, ctx
}

func createUser(t *testing.T, ctx context.Context, repo user.UserRepository, email string) user.User {
	t.Helper()
	u, err := repo.Create(ctx, user.User{Email: &email, Provider: user.ProviderPassword})
	require.NoError(t, err)
	return u
}

func TestUserRepository(t *testing.T) {
	tdb, ctx := setup(t)
	repo := postgresql.NewUserRepository(tdb.DB)

	created := createUser(t, ctx, repo, "kieu-phong@caibang.vn")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, user.ProviderPassword, created.Provider)

	_, err := repo.Create(ctx, user.User{Email: created.Email, Provider: user.ProviderPassword})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	byEmail, err := repo.GetByEmail(ctx, "kieu-phong@caibang.vn")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	photo := "https://photos/kp.png"
	linked, err := repo.LinkGoogleAccount(ctx, "g-1", "kieu-phong@caibang.vn", &photo)
	require.NoError(t, err)
	require.NotNil(t, linked.OAuthProviderID)
	assert.Equal(t, "g-1", *linked.OAuthProviderID)

	anon, err := repo.Create(ctx, user.User{Provider: user.ProviderAnonymous})
	require.NoError(t, err)
	assert.Nil(t, anon.Email)
}

func TestAttendanceRepository(t *testing.T) {
	tdb, ctx := setup(t)
	owner := createUser(t, ctx, postgresql.NewUserRepository(tdb.DB), "owner@caibang.vn")
	repo := postgresql.NewAttendanceRepository(tdb.DB)

	checkin := func(memberID string, at time.Time, late int) attendance.Attendance {
		day, _ := utils.DayBounds(at)
		return attendance.Attendance{
			MemberID:    memberID,
			MemberName:  "Đoàn Dự",
			CheckinAt:   at,
			CheckinDate: day,
			Location:    attendance.LocationRemote,
			LateMinutes: late,
			OwnerID:     owner.ID,
		}
	}

	first, err := repo.Create(ctx, checkin("101", time.Date(2024, 3, 15, 9, 30, 0, 0, ict), 25))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = repo.Create(ctx, checkin("101", time.Date(2024, 3, 15, 10, 0, 0, 0, ict), 55))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	_, err = repo.Create(ctx, checkin("102", time.Date(2024, 3, 15, 8, 0, 0, 0, ict), 0))
	require.NoError(t, err)

	start, end := utils.DayBounds(time.Date(2024, 3, 15, 12, 0, 0, 0, ict))
	exists, err := repo.HasCheckedInOnDay(ctx, "101", start, end)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.HasCheckedInOnDay(ctx, "103", start, end)
	require.NoError(t, err)
	assert.False(t, exists)

	records, err := repo.ListByOwner(ctx, owner.ID, start, end)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "102", records[0].MemberID, "ordered by check-in instant")
	assert.Equal(t, "2024-03-15", records[1].CheckinDate.Format(time.DateOnly))

	monthStart, monthEnd := utils.MonthBounds(start)
	all, err := repo.ListInRange(ctx, monthStart, monthEnd)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDailyReportRepository(t *testing.T) {
	tdb, ctx := setup(t)
	owner := createUser(t, ctx, postgresql.NewUserRepository(tdb.DB), "owner@caibang.vn")
	repo := postgresql.NewDailyReportRepository(tdb.DB)

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, ict)
	report := func(employeeID string, level int, submitted time.Time) dailyreport.DailyReport {
		return dailyreport.DailyReport{
			Name:            "Vương Ngữ Yên",
			EmployeeID:      employeeID,
			Level:           level,
			WorkingHours:    8,
			PermissionState: dailyreport.PermissionNotRequested,
			WorkLocation:    dailyreport.WorkLocationOnSite,
			ReportLink:      "https://docs.google.com/document/d/3",
			WorkDescription: "Tổng hợp",
			TotalHours:      8,
			SubmissionDate:  day,
			SubmittedAt:     submitted,
			OwnerID:         owner.ID,
		}
	}

	first, err := repo.Create(ctx, report("300", 1, day.Add(17*time.Hour)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, report("300", 1, day.Add(18*time.Hour)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, report("120", 2, day.Add(19*time.Hour)))
	require.NoError(t, err)

	start, end := utils.DayBounds(day)
	reports, err := repo.ListBySubmissionDate(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, first.ID, reports[0].ID)
	assert.Equal(t, dailyreport.PermissionNotRequested, reports[0].PermissionState)

	require.NoError(t, repo.DeleteFirst(ctx, "300", 1, start, end))

	reports, err = repo.ListBySubmissionDate(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.NotEqual(t, first.ID, reports[0].ID)

	err = repo.DeleteFirst(ctx, "300", 5, start, end)
	assert.ErrorIs(t, err, dailyreport.ErrDailyReportNotFound)

	nextStart, nextEnd := utils.DayBounds(day.AddDate(0, 0, 1))
	err = repo.DeleteFirst(ctx, "120", 2, nextStart, nextEnd)
	assert.ErrorIs(t, err, dailyreport.ErrDailyReportNotFound)
}

func TestMemberRepository(t *testing.T) {
	tdb, ctx := setup(t)
	users := postgresql.NewUserRepository(tdb.DB)
	a := createUser(t, ctx, users, "a@caibang.vn")
	b := createUser(t, ctx, users, "b@caibang.vn")
	repo := postgresql.NewMemberRepository(tdb.DB)

	profile := func(owner, memberID string) member.Member {
		return member.Member{
			OwnerID:        owner,
			FullName:       "Nhạc Bất Quần",
			MemberID:       memberID,
			Gender:         member.GenderMale,
			JoinDate:       time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			Group:          "HỒ LY SƠN TRANG",
			PhoneNumber:    "0987654321",
			Hometown:       "Hoa Sơn",
			CurrentAddress: "Hoa Sơn",
		}
	}

	_, err := repo.Upsert(ctx, profile(a.ID, "200"))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, profile(a.ID, "150"))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, profile(b.ID, "150"))
	assert.ErrorIs(t, err, member.ErrMemberIDExists)
	_, err = repo.Upsert(ctx, profile(b.ID, "120"))
	require.NoError(t, err)

	members, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "120", members[0].MemberID)
	assert.Equal(t, "150", members[1].MemberID)
}

package http

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/caibang/attendance-backend-go/internal/domain/attendance"
	"github.com/caibang/attendance-backend-go/internal/domain/auth"
	"github.com/caibang/attendance-backend-go/internal/domain/dailyreport"
	"github.com/caibang/attendance-backend-go/internal/domain/member"
	"github.com/caibang/attendance-backend-go/internal/pkg/oauth"
)

type fakeAuthService struct {
	anonymous func(ctx context.Context) (auth.TokenResponse, error)
	register  func(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error)
	login     func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
	google    func(ctx context.Context, profile auth.GoogleProfile) (auth.TokenResponse, error)
}

func (f *fakeAuthService) SignInAnonymously(ctx context.Context) (auth.TokenResponse, error) {
	return f.anonymous(ctx)
}

func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	return f.register(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	return f.login(ctx, req)
}

func (f *fakeAuthService) LoginWithGoogle(ctx context.Context, profile auth.GoogleProfile) (auth.TokenResponse, error) {
	return f.google(ctx, profile)
}

type fakeGoogleService struct {
	state string
	info  oauth.GoogleInformation
	err   error
}

func (f *fakeGoogleService) GenerateState(userAgent string) string { return f.state }

func (f *fakeGoogleService) RedirectURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (f *fakeGoogleService) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &oauth2.Token{AccessToken: "google-" + code}, nil
}

func (f *fakeGoogleService) VerifyUser(ctx context.Context, token *oauth2.Token) (oauth.GoogleInformation, error) {
	return f.info, nil
}

type fakeAttendanceService struct {
	checkIn      func(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error)
	finalizeLate func(ctx context.Context, req attendance.LateCheckInRequest) (attendance.CheckInResponse, error)
	summary      attendance.MonthlySummary
}

func (f *fakeAttendanceService) Status(ctx context.Context) (attendance.StatusResponse, error) {
	return attendance.StatusResponse{Cutoff: "09:05:00"}, nil
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	return f.checkIn(ctx, req)
}

func (f *fakeAttendanceService) FinalizeLate(ctx context.Context, req attendance.LateCheckInRequest) (attendance.CheckInResponse, error) {
	return f.finalizeLate(ctx, req)
}

func (f *fakeAttendanceService) History(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.AttendanceResponse, error) {
	return []attendance.AttendanceResponse{}, nil
}

func (f *fakeAttendanceService) MonthlyStats(ctx context.Context, filter attendance.MonthlyStatsFilter) (attendance.MonthlySummary, error) {
	return f.summary, nil
}

type fakeDailyReportService struct {
	submitted []dailyreport.SubmitDailyReportRequest
	resetErr  error
	resets    []dailyreport.ResetDailyReportRequest
}

func (f *fakeDailyReportService) Submit(ctx context.Context, req dailyreport.SubmitDailyReportRequest) (dailyreport.DailyReportResponse, error) {
	if err := req.Validate(dailyreport.Policy{StrictWorkday: true, WorkdayHours: 8}); err != nil {
		return dailyreport.DailyReportResponse{}, err
	}
	f.submitted = append(f.submitted, req)
	return dailyreport.DailyReportResponse{}, nil
}

func (f *fakeDailyReportService) List(ctx context.Context, filter dailyreport.ListDailyReportFilter) ([]dailyreport.DailyReportResponse, error) {
	return []dailyreport.DailyReportResponse{}, nil
}

func (f *fakeDailyReportService) Reset(ctx context.Context, req dailyreport.ResetDailyReportRequest) error {
	f.resets = append(f.resets, req)
	return f.resetErr
}

type fakeMemberService struct {
	registerErr error
	members     []member.MemberResponse
	lastFilter  member.MemberFilter
}

func (f *fakeMemberService) Register(ctx context.Context, req member.RegisterMemberRequest) (member.MemberResponse, error) {
	if f.registerErr != nil {
		return member.MemberResponse{}, f.registerErr
	}
	return member.MemberResponse{FullName: req.FullName, MemberID: req.MemberID}, nil
}

func (f *fakeMemberService) List(ctx context.Context, filter member.MemberFilter) ([]member.MemberResponse, error) {
	f.lastFilter = filter
	return f.members, nil
}

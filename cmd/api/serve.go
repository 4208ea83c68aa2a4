package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/spf13/cobra"

	"github.com/caibang/attendance-backend-go/internal/config"
	"github.com/caibang/attendance-backend-go/internal/domain/attendance"
	"github.com/caibang/attendance-backend-go/internal/domain/dailyreport"
	appHTTP "github.com/caibang/attendance-backend-go/internal/handler/http"
	"github.com/caibang/attendance-backend-go/internal/pkg/database"
	"github.com/caibang/attendance-backend-go/internal/pkg/jwt"
	"github.com/caibang/attendance-backend-go/internal/pkg/oauth"
	"github.com/caibang/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/caibang/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/caibang/attendance-backend-go/internal/service/auth"
	dailyReportService "github.com/caibang/attendance-backend-go/internal/service/dailyreport"
	memberService "github.com/caibang/attendance-backend-go/internal/service/member"
)

func newServeCommand() *cobra.Command {
	var migrationsDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), migrationsDir)
		},
	}
	cmd.Flags().StringVar(&migrationsDir, "migrate", "", "Apply pending migrations from this directory before serving")
	return cmd
}

func serve(ctx context.Context, migrationsDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if migrationsDir != "" {
		if _, err := db.Migrate(ctx, os.DirFS(migrationsDir)); err != nil {
			return err
		}
	}

	userRepo := postgresql.NewUserRepository(db)
	memberRepo := postgresql.NewMemberRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dailyReportRepo := postgresql.NewDailyReportRepository(db)

	clk := clock.New()
	evaluator, err := attendance.NewEvaluator(cfg.Attendance.Cutoff, cfg.Attendance.Location)
	if err != nil {
		return fmt.Errorf("build lateness evaluator: %w", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var GoogleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		GoogleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	} else {
		slog.Warn("Google sign-in disabled, CLIENT_ID is not set")
	}

	authService := serviceAuth.NewAuthService(userRepo, JWTService, cfg.Admin)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, clk, evaluator)
	dailyReportSvc := dailyReportService.NewDailyReportService(dailyReportRepo, clk, cfg.Attendance.Location, dailyreport.Policy{
		StrictWorkday: cfg.Report.StrictWorkday,
		WorkdayHours:  cfg.Report.WorkdayHours,
	})
	memberSvc := memberService.NewMemberService(memberRepo, userRepo)

	router := appHTTP.NewRouter(cfg.App, JWTService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authService, GoogleService, cfg.App.FrontendURL),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		DailyReport: appHTTP.NewDailyReportHandler(dailyReportSvc),
		Member:      appHTTP.NewMemberHandler(memberSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

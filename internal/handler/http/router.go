package http

import (
	"log/slog"
	"os"

	"github.com/caibang/attendance-backend-go/internal/config"
	"github.com/caibang/attendance-backend-go/internal/handler/http/middleware"
	"github.com/caibang/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth        AuthHandler
	Attendance  AttendanceHandler
	DailyReport DailyReportHandler
	Member      MemberHandler
}

func NewRouter(appConfig config.AppConfig, JWTService jwt.Service, handlers Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(appConfig.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "caibang-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appConfig.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(appConfig.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/anonymous", handlers.Auth.SignInAnonymously)
			r.Post("/register", handlers.Auth.Register)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", handlers.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", handlers.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", handlers.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/status", handlers.Attendance.Status)
				r.Get("/history", handlers.Attendance.History)

				r.Route("/check-in", func(r chi.Router) {
					r.Post("/", handlers.Attendance.CheckIn)
					r.Post("/late", handlers.Attendance.CheckInLate)
				})

				r.Route("/stats/monthly", func(r chi.Router) {
					r.Get("/", handlers.Attendance.MonthlyStats)
					r.Get("/export", handlers.Attendance.ExportMonthlyStats)
				})
			})

			r.Route("/daily-reports", func(r chi.Router) {
				r.Get("/", handlers.DailyReport.List)
				r.Post("/", handlers.DailyReport.Submit)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/", handlers.DailyReport.Reset)
				})
			})

			r.Route("/members", func(r chi.Router) {
				r.Get("/", handlers.Member.List)
				r.Post("/", handlers.Member.Register)
			})
		})
	})
	return r
}

func logLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

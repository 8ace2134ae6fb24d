package http

import (
	"log/slog"
	"os"

	"github.com/distripanel/panel-backend/internal/config"
	"github.com/distripanel/panel-backend/internal/domain/user"
	"github.com/distripanel/panel-backend/internal/handler/http/middleware"
	"github.com/distripanel/panel-backend/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	appConfig config.AppConfig,
	JWTService jwt.Service,
	employeeHandler EmployeeHandler,
	scheduleHandler ScheduleHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	performanceHandler PerformanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(appConfig.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "distripanel"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appConfig.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  appConfig.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("deflate", "gzip"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/workers", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionWorkerView)).Get("/", employeeHandler.List)

				r.Route("/{workerID}", func(r chi.Router) {
					r.Use(middleware.WorkerIDParam)

					r.With(middleware.RequirePermission(user.PermissionWorkerView)).Get("/", employeeHandler.Get)

					r.Route("/shift-config", func(r chi.Router) {
						r.With(middleware.RequirePermission(user.PermissionScheduleView)).Get("/", scheduleHandler.GetShiftConfig)
						r.With(middleware.RequirePermission(user.PermissionScheduleManage)).Put("/", scheduleHandler.UpdateShiftConfig)
					})

					r.Route("/reports", func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionReportProcess))
						r.Post("/", attendanceHandler.ProcessReport)
						r.Post("/upload", attendanceHandler.UploadReport)
					})

					r.Route("/day-flags", func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionDayFlagManage))
						r.Get("/", attendanceHandler.ListDayFlags)
						r.Put("/{date}", attendanceHandler.SetDayFlags)
					})

					r.Route("/adjustments/{anchorDate}", func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionAdjustmentManage))
						r.Get("/", payrollHandler.GetAdjustments)
						r.Put("/", payrollHandler.SaveAdjustments)
					})

					r.Route("/performance", func(r chi.Router) {
						r.With(middleware.RequirePermission(user.PermissionPerformanceView)).Get("/", performanceHandler.GetMetrics)
						r.With(middleware.RequirePermission(user.PermissionPerformanceSave)).Post("/", attendanceHandler.SavePerformance)
					})
				})
			})

			r.Route("/bonus-settings", func(r chi.Router) {
				r.Get("/", payrollHandler.ListBonusSettings)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Use(middleware.RequirePermission(user.PermissionBonusManage))
					r.Put("/{location}", payrollHandler.UpdateBonusSettings)
				})
			})

			r.With(middleware.RequirePermission(user.PermissionPerformanceView)).Get("/performance/ranking", performanceHandler.GetRanking)
		})
	})
	return r
}

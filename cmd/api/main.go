package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/distripanel/panel-backend/internal/config"
	appHTTP "github.com/distripanel/panel-backend/internal/handler/http"
	"github.com/distripanel/panel-backend/internal/pkg/database"
	"github.com/distripanel/panel-backend/internal/pkg/jwt"
	"github.com/distripanel/panel-backend/internal/repository/postgresql"
	attendanceService "github.com/distripanel/panel-backend/internal/service/attendance"
	employeeService "github.com/distripanel/panel-backend/internal/service/employee"
	payrollService "github.com/distripanel/panel-backend/internal/service/payroll"
	performanceService "github.com/distripanel/panel-backend/internal/service/performance"
	scheduleService "github.com/distripanel/panel-backend/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.SlogLevel(),
	})))

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftConfigRepo := postgresql.NewShiftConfigRepository(db)
	dayFlagRepo := postgresql.NewDayFlagRepository(db)
	bonusSettingsRepo := postgresql.NewBonusSettingsRepository(db)
	periodAdjustmentRepo := postgresql.NewPeriodAdjustmentRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(shiftConfigRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		bonusSettingsRepo,
		periodAdjustmentRepo,
		employeeRepo,
		cfg.Bonus.DefaultBonus1,
		cfg.Bonus.DefaultBonus2,
	)
	attendanceSvc := attendanceService.NewAttendanceService(
		employeeRepo,
		shiftConfigRepo,
		dayFlagRepo,
		performanceRepo,
		periodAdjustmentRepo,
		payrollSvc,
		txManager,
	)
	performanceSvc := performanceService.NewPerformanceService(employeeRepo, performanceRepo)

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewScheduleHandler(scheduleSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewPerformanceHandler(performanceSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", fmt.Sprintf("http://localhost%s", server.Addr), "env", cfg.App.Env)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
		slog.Info("Server stopped")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
		}
	}
}

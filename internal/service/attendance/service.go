package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/distripanel/panel-backend/internal/domain/attendance"
	"github.com/distripanel/panel-backend/internal/domain/employee"
	"github.com/distripanel/panel-backend/internal/domain/payroll"
	"github.com/distripanel/panel-backend/internal/domain/performance"
	"github.com/distripanel/panel-backend/internal/domain/schedule"
	"github.com/distripanel/panel-backend/internal/pkg/jwt"
	"github.com/distripanel/panel-backend/internal/pkg/spreadsheet"
	"github.com/distripanel/panel-backend/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	shiftConfigRepo schedule.ShiftConfigRepository
	dayFlagRepo     attendance.DayFlagRepository
	performanceRepo performance.PerformanceRepository
	adjustmentRepo  payroll.PeriodAdjustmentRepository
	payrollService  payroll.PayrollService
	txManager       postgresql.TxManager
	now             func() time.Time
}

func NewAttendanceService(
	employeeRepo employee.EmployeeRepository,
	shiftConfigRepo schedule.ShiftConfigRepository,
	dayFlagRepo attendance.DayFlagRepository,
	performanceRepo performance.PerformanceRepository,
	adjustmentRepo payroll.PeriodAdjustmentRepository,
	payrollService payroll.PayrollService,
	txManager postgresql.TxManager,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		employeeRepo:    employeeRepo,
		shiftConfigRepo: shiftConfigRepo,
		dayFlagRepo:     dayFlagRepo,
		performanceRepo: performanceRepo,
		adjustmentRepo:  adjustmentRepo,
		payrollService:  payrollService,
		txManager:       txManager,
		now:             time.Now,
	}
}

// processedPeriod is the outcome of running the pipeline for one request.
type processedPeriod struct {
	employee employee.Employee
	config   schedule.ShiftConfig
	result   PeriodResult
}

// ProcessReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ProcessReport(ctx context.Context, req attendance.ProcessReportRequest) (attendance.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ReportResponse{}, err
	}

	period, err := s.processPeriod(ctx, req)
	if err != nil {
		return attendance.ReportResponse{}, err
	}

	slog.Info("Attendance report processed",
		"employee_id", period.employee.ID,
		"anchor_date", period.result.Report.AnchorDate.Format(attendance.DateKeyLayout),
		"bonus_tier", period.result.Summary.BonusTier,
		"net_payable", period.result.Summary.NetPayable.String(),
	)

	return newReportResponse(period), nil
}

// ProcessSpreadsheet implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ProcessSpreadsheet(ctx context.Context, req attendance.UploadReportRequest) (attendance.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ReportResponse{}, err
	}

	rows, err := spreadsheet.ReadRows(req.File, req.FileHeader.Filename)
	if err != nil {
		slog.Error("Failed to read report spreadsheet", "filename", req.FileHeader.Filename, "error", err)
		return attendance.ReportResponse{}, fmt.Errorf("%w: %v", attendance.ErrInvalidSpreadsheet, err)
	}

	processReq := req.ProcessReportRequest
	processReq.RawText = spreadsheet.ToText(rows)
	return s.ProcessReport(ctx, processReq)
}

// SavePerformance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SavePerformance(ctx context.Context, req attendance.ProcessReportRequest) (performance.MetricsResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.MetricsResponse{}, err
	}

	period, err := s.processPeriod(ctx, req)
	if err != nil {
		return performance.MetricsResponse{}, err
	}

	// adjustments sent with the save are stored alongside the metrics
	var record performance.PerformanceRecord
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if req.Adjustments != nil {
			_, err := s.adjustmentRepo.Upsert(txCtx, payroll.PeriodAdjustment{
				EmployeeID:        period.employee.ID,
				AnchorDate:        period.result.Report.AnchorDate,
				ManualAdjustments: req.Adjustments.ToManualAdjustments(),
				UpdatedBy:         jwt.UserIDFromContext(ctx),
			})
			if err != nil {
				return fmt.Errorf("failed to save period adjustments: %w", err)
			}
		}

		var err error
		record, err = s.performanceRepo.AddDelta(txCtx, period.employee.ID, period.result.Metrics)
		if err != nil {
			return fmt.Errorf("failed to save performance metrics: %w", err)
		}
		return nil
	})
	if err != nil {
		slog.Error("Failed to save performance", "employee_id", period.employee.ID, "error", err)
		return performance.MetricsResponse{}, err
	}

	slog.Info("Performance metrics saved",
		"employee_id", period.employee.ID,
		"anchor_date", period.result.Report.AnchorDate.Format(attendance.DateKeyLayout),
		"early_arrivals", period.result.Metrics.EarlyArrivals,
		"late_arrivals", period.result.Metrics.LateArrivals,
		"absences", period.result.Metrics.Absences,
	)

	return performance.NewMetricsResponse(record), nil
}

// ListDayFlags implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListDayFlags(ctx context.Context, filter attendance.DayFlagFilter) ([]attendance.DayFlagResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, filter.EmployeeID); err != nil {
		return nil, err
	}

	start, _ := time.Parse(attendance.DateKeyLayout, filter.StartDate)
	end, _ := time.Parse(attendance.DateKeyLayout, filter.EndDate)

	flags, err := s.dayFlagRepo.ListByRange(ctx, filter.EmployeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list day flags: %w", err)
	}

	resp := make([]attendance.DayFlagResponse, 0, len(flags))
	for _, f := range flags {
		resp = append(resp, attendance.NewDayFlagResponse(f))
	}
	return resp, nil
}

// SetDayFlags implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SetDayFlags(ctx context.Context, req attendance.SetDayFlagsRequest) (attendance.DayFlagResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayFlagResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.DayFlagResponse{}, err
	}

	date, _ := time.Parse(attendance.DateKeyLayout, req.Date)

	if !req.IsHoliday && !req.IsJustified {
		if err := s.dayFlagRepo.Delete(ctx, req.EmployeeID, date); err != nil {
			return attendance.DayFlagResponse{}, fmt.Errorf("failed to clear day flags: %w", err)
		}
		return attendance.NewDayFlagResponse(attendance.DayFlag{EmployeeID: req.EmployeeID, Date: date}), nil
	}

	flag, err := s.dayFlagRepo.Upsert(ctx, attendance.DayFlag{
		EmployeeID:  req.EmployeeID,
		Date:        date,
		IsHoliday:   req.IsHoliday,
		IsJustified: req.IsJustified,
		UpdatedBy:   jwt.UserIDFromContext(ctx),
	})
	if err != nil {
		return attendance.DayFlagResponse{}, fmt.Errorf("failed to save day flags: %w", err)
	}

	return attendance.NewDayFlagResponse(flag), nil
}

// processPeriod loads everything the pipeline needs for the worker and runs it.
func (s *AttendanceServiceImpl) processPeriod(ctx context.Context, req attendance.ProcessReportRequest) (processedPeriod, error) {
	ref := s.now()
	if req.ReferenceDate != nil && *req.ReferenceDate != "" {
		ref, _ = time.Parse(attendance.DateKeyLayout, *req.ReferenceDate)
	}

	var (
		emp employee.Employee
		cfg schedule.ShiftConfig
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emp, err = s.employeeRepo.GetByID(gCtx, req.EmployeeID)
		return err
	})
	g.Go(func() error {
		var err error
		cfg, err = s.shiftConfig(gCtx, req.EmployeeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return processedPeriod{}, err
	}

	punches, err := ParseReport(req.RawText, cfg.Location)
	if err != nil {
		return processedPeriod{}, err
	}
	if len(punches) == 0 {
		return processedPeriod{}, attendance.ErrEmptyReport
	}

	anchor, err := PeriodAnchor(punches, cfg.Location, ref)
	if err != nil {
		return processedPeriod{}, err
	}
	start, end := PeriodBounds(anchor)

	var (
		flags       attendance.FlagSet
		bonus       payroll.BonusSettings
		adjustments payroll.ManualAdjustments
	)

	g, gCtx = errgroup.WithContext(ctx)
	g.Go(func() error {
		stored, err := s.dayFlagRepo.ListByRange(gCtx, req.EmployeeID, start, end)
		if err != nil {
			return fmt.Errorf("failed to load day flags: %w", err)
		}
		flags = make(attendance.FlagSet, len(stored))
		for _, f := range stored {
			flags[f.Date.Format(attendance.DateKeyLayout)] = attendance.Flags{
				IsHoliday:   f.IsHoliday,
				IsJustified: f.IsJustified,
			}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		bonus, err = s.payrollService.GetBonusSettings(gCtx, string(cfg.Location))
		return err
	})
	g.Go(func() error {
		if req.Adjustments != nil {
			adjustments = req.Adjustments.ToManualAdjustments()
			return nil
		}
		saved, err := s.payrollService.GetAdjustments(gCtx, req.EmployeeID, anchor.Format(attendance.DateKeyLayout))
		if err != nil {
			return err
		}
		adjustments = payroll.ManualAdjustments{
			ExtraHours:  saved.ExtraHours,
			ManualExtra: saved.ManualExtra,
			Debt:        saved.Debt,
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return processedPeriod{}, err
	}

	result, err := BuildPeriod(punches, PeriodInput{
		Config:      cfg,
		Reference:   ref,
		Flags:       flags,
		Bonus:       bonus,
		Adjustments: adjustments,
	})
	if err != nil {
		return processedPeriod{}, err
	}

	return processedPeriod{employee: emp, config: cfg, result: result}, nil
}

// shiftConfig returns the stored configuration or the in-memory default.
func (s *AttendanceServiceImpl) shiftConfig(ctx context.Context, employeeID string) (schedule.ShiftConfig, error) {
	cfg, err := s.shiftConfigRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, schedule.ErrShiftConfigNotFound) {
			return schedule.DefaultShiftConfig(employeeID), nil
		}
		return schedule.ShiftConfig{}, fmt.Errorf("failed to get shift config: %w", err)
	}
	return cfg, nil
}

func newReportResponse(p processedPeriod) attendance.ReportResponse {
	report := p.result.Report
	start, end := PeriodBounds(report.AnchorDate)

	return attendance.ReportResponse{
		Employee:    employee.NewEmployeeResponse(p.employee),
		ShiftConfig: schedule.NewShiftConfigResponse(p.config),
		Location:    string(report.Location),
		AnchorDate:  start.Format(attendance.DateKeyLayout),
		EndDate:     end.Format(attendance.DateKeyLayout),
		Days:        report.Days[:],
		Totals:      report.Totals,
		Summary:     p.result.Summary,
		Metrics:     p.result.Metrics,
	}
}

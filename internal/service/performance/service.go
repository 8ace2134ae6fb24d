package performance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/distripanel/panel-backend/internal/domain/employee"
	"github.com/distripanel/panel-backend/internal/domain/performance"
	"golang.org/x/sync/errgroup"
)

type PerformanceServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	performanceRepo performance.PerformanceRepository
}

func NewPerformanceService(employeeRepo employee.EmployeeRepository, performanceRepo performance.PerformanceRepository) performance.PerformanceService {
	return &PerformanceServiceImpl{
		employeeRepo:    employeeRepo,
		performanceRepo: performanceRepo,
	}
}

// GetMetrics implements performance.PerformanceService.
func (s *PerformanceServiceImpl) GetMetrics(ctx context.Context, employeeID string) (performance.MetricsResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return performance.MetricsResponse{}, err
	}

	record, err := s.performanceRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, performance.ErrPerformanceNotFound) {
			return performance.MetricsResponse{EmployeeID: employeeID}, nil
		}
		return performance.MetricsResponse{}, fmt.Errorf("failed to get performance metrics: %w", err)
	}

	return performance.NewMetricsResponse(record), nil
}

// GetRanking implements performance.PerformanceService.
func (s *PerformanceServiceImpl) GetRanking(ctx context.Context) ([]performance.RankingEntryResponse, error) {
	var (
		employees []employee.Employee
		records   []performance.PerformanceRecord
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx, false)
		if err != nil {
			return fmt.Errorf("failed to list workers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.performanceRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list performance metrics: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		slog.Error("Failed to load ranking data", "error", err)
		return nil, err
	}

	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	entries := Rank(records, byID)
	resp := make([]performance.RankingEntryResponse, 0, len(entries))
	for i, e := range entries {
		resp = append(resp, performance.RankingEntryResponse{
			Position:     i + 1,
			EmployeeID:   e.Employee.ID,
			EmployeeName: e.Employee.FullName,
			Score:        e.Score,
			Metrics:      e.Metrics,
		})
	}
	return resp, nil
}

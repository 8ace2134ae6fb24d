package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/distripanel/panel-backend/internal/domain/employee"
	"github.com/distripanel/panel-backend/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	shiftConfigRepo schedule.ShiftConfigRepository
	employeeRepo    employee.EmployeeRepository
}

func NewScheduleService(shiftConfigRepo schedule.ShiftConfigRepository, employeeRepo employee.EmployeeRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		shiftConfigRepo: shiftConfigRepo,
		employeeRepo:    employeeRepo,
	}
}

// GetShiftConfig implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetShiftConfig(ctx context.Context, employeeID string) (schedule.ShiftConfigResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return schedule.ShiftConfigResponse{}, err
	}

	cfg, err := s.shiftConfigRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, schedule.ErrShiftConfigNotFound) {
			return schedule.NewShiftConfigResponse(schedule.DefaultShiftConfig(employeeID)), nil
		}
		return schedule.ShiftConfigResponse{}, fmt.Errorf("failed to get shift config: %w", err)
	}

	return schedule.NewShiftConfigResponse(cfg), nil
}

// UpdateShiftConfig implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) UpdateShiftConfig(ctx context.Context, req schedule.UpdateShiftConfigRequest) (schedule.ShiftConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftConfigResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.ShiftConfigResponse{}, err
	}

	saved, err := s.shiftConfigRepo.Upsert(ctx, req.ToShiftConfig())
	if err != nil {
		return schedule.ShiftConfigResponse{}, fmt.Errorf("failed to save shift config: %w", err)
	}

	slog.Info("Shift config updated",
		"employee_id", saved.EmployeeID,
		"location", saved.Location,
		"rotating", saved.Secondary != nil,
	)

	return schedule.NewShiftConfigResponse(saved), nil
}

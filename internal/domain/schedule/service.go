package schedule

import "context"

type ScheduleService interface {
	// GetShiftConfig returns the stored configuration or the default one
	GetShiftConfig(ctx context.Context, employeeID string) (ShiftConfigResponse, error)

	// UpdateShiftConfig validates and stores a worker's configuration
	UpdateShiftConfig(ctx context.Context, req UpdateShiftConfigRequest) (ShiftConfigResponse, error)
}

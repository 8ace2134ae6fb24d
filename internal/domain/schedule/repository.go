package schedule

import "context"

// ShiftConfigRepository persists one shift configuration per worker.
type ShiftConfigRepository interface {
	// GetByEmployeeID returns ErrShiftConfigNotFound when the worker has none
	GetByEmployeeID(ctx context.Context, employeeID string) (ShiftConfig, error)

	// Upsert creates or replaces the worker's configuration
	Upsert(ctx context.Context, config ShiftConfig) (ShiftConfig, error)
}

package performance

import "context"

type PerformanceRepository interface {
	// GetByEmployeeID returns ErrPerformanceNotFound before the first save
	GetByEmployeeID(ctx context.Context, employeeID string) (PerformanceRecord, error)

	// AddDelta creates the row on first save and otherwise adds delta to the
	// stored totals, returning the new cumulative record
	AddDelta(ctx context.Context, employeeID string, delta Metrics) (PerformanceRecord, error)

	// List returns every stored record in creation order
	List(ctx context.Context) ([]PerformanceRecord, error)
}

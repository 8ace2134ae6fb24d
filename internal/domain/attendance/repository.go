package attendance

import (
	"context"
	"time"
)

// DayFlagRepository stores holiday/justified flags per worker and date.
type DayFlagRepository interface {
	// ListByRange returns flags with start <= date <= end, ordered by date
	ListByRange(ctx context.Context, employeeID string, start, end time.Time) ([]DayFlag, error)

	// Upsert creates or replaces the flags for one date
	Upsert(ctx context.Context, flag DayFlag) (DayFlag, error)

	// Delete removes the flags for one date
	Delete(ctx context.Context, employeeID string, date time.Time) error
}

package payroll

import (
	"context"
	"time"
)

type BonusSettingsRepository interface {
	// GetByLocation returns ErrBonusSettingsNotFound when no row exists
	GetByLocation(ctx context.Context, location string) (BonusSettings, error)
	List(ctx context.Context) ([]BonusSettings, error)
	Upsert(ctx context.Context, settings BonusSettings) (BonusSettings, error)
}

type PeriodAdjustmentRepository interface {
	// Get returns ErrPeriodAdjustmentNotFound when nothing was saved for the period
	Get(ctx context.Context, employeeID string, anchorDate time.Time) (PeriodAdjustment, error)
	Upsert(ctx context.Context, adjustment PeriodAdjustment) (PeriodAdjustment, error)
}

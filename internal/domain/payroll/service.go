package payroll

import "context"

type PayrollService interface {
	// ListBonusSettings returns one entry per known location
	ListBonusSettings(ctx context.Context) ([]BonusSettingsResponse, error)

	// GetBonusSettings falls back to the default amounts when nothing is stored
	GetBonusSettings(ctx context.Context, location string) (BonusSettings, error)

	UpdateBonusSettings(ctx context.Context, req UpdateBonusSettingsRequest) (BonusSettingsResponse, error)

	// GetAdjustments returns zero adjustments when nothing was saved
	GetAdjustments(ctx context.Context, employeeID string, anchorDate string) (AdjustmentsResponse, error)
	SaveAdjustments(ctx context.Context, req SaveAdjustmentsRequest) (AdjustmentsResponse, error)
}

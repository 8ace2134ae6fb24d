package payroll

import "errors"

var (
	ErrBonusSettingsNotFound    = errors.New("bonus settings not found")
	ErrPeriodAdjustmentNotFound = errors.New("period adjustment not found")
	ErrInvalidLocation          = errors.New("invalid location")
)

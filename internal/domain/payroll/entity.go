package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fallback bonus amounts for a location with no stored settings.
var (
	DefaultBonus1 = decimal.NewFromInt(30000)
	DefaultBonus2 = decimal.NewFromInt(20000)
)

// BonusSettings holds the two bonus tiers paid at one location.
type BonusSettings struct {
	ID        string
	Location  string
	Bonus1    decimal.Decimal // excellence
	Bonus2    decimal.Decimal // compliance
	IsDefault bool
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BonusTier string

const (
	BonusTierNone       BonusTier = "none"
	BonusTierExcellence BonusTier = "excellence"
	BonusTierCompliance BonusTier = "compliance"
)

// ManualAdjustments are the operator-entered numbers folded into net pay.
type ManualAdjustments struct {
	ExtraHours  decimal.Decimal
	ManualExtra decimal.Decimal
	Debt        decimal.Decimal
}

// PeriodAdjustment persists ManualAdjustments per worker and period anchor.
type PeriodAdjustment struct {
	ID         string
	EmployeeID string
	AnchorDate time.Time
	ManualAdjustments
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayrollSummary is recomputed on every render; it is never stored.
type PayrollSummary struct {
	TotalHours        int             `json:"total_hours"`
	TotalPenaltyHours float64         `json:"total_penalty_hours"`
	LateCount         int             `json:"late_count"`
	HourlyRate        decimal.Decimal `json:"hourly_rate"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	BonusTier         BonusTier       `json:"bonus_tier"`
	Bonus             decimal.Decimal `json:"bonus"`
	ExtraHours        decimal.Decimal `json:"extra_hours"`
	ExtraHoursAmount  decimal.Decimal `json:"extra_hours_amount"`
	ManualExtra       decimal.Decimal `json:"manual_extra"`
	Additions         decimal.Decimal `json:"additions"`
	Debt              decimal.Decimal `json:"debt"`
	NetPayable        decimal.Decimal `json:"net_payable"`
}

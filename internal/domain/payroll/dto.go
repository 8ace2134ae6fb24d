package payroll

import (
	"github.com/distripanel/panel-backend/internal/domain/schedule"
	"github.com/distripanel/panel-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== BONUS SETTINGS ==========

type UpdateBonusSettingsRequest struct {
	Location string          `json:"-"`
	Bonus1   decimal.Decimal `json:"bonus_1"`
	Bonus2   decimal.Decimal `json:"bonus_2"`
}

func (r *UpdateBonusSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !schedule.Location(r.Location).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must be one of: matriz, sucursal",
		})
	}
	if r.Bonus1.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "bonus_1",
			Message: "bonus_1 must not be negative",
		})
	}
	if r.Bonus2.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "bonus_2",
			Message: "bonus_2 must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BonusSettingsResponse struct {
	Location  string          `json:"location"`
	Bonus1    decimal.Decimal `json:"bonus_1"`
	Bonus2    decimal.Decimal `json:"bonus_2"`
	IsDefault bool            `json:"is_default"`
	UpdatedAt *string         `json:"updated_at,omitempty"`
}

func NewBonusSettingsResponse(s BonusSettings) BonusSettingsResponse {
	resp := BonusSettingsResponse{
		Location:  s.Location,
		Bonus1:    s.Bonus1,
		Bonus2:    s.Bonus2,
		IsDefault: s.IsDefault,
	}
	if !s.UpdatedAt.IsZero() {
		updated := s.UpdatedAt.Format("2006-01-02 15:04:05")
		resp.UpdatedAt = &updated
	}
	return resp
}

// ========== MANUAL ADJUSTMENTS ==========

// ManualAdjustmentsInput is the lenient request form of ManualAdjustments.
type ManualAdjustmentsInput struct {
	ExtraHours  Amount `json:"extra_hours"`
	ManualExtra Amount `json:"manual_extra"`
	Debt        Amount `json:"debt"`
}

func (in ManualAdjustmentsInput) ToManualAdjustments() ManualAdjustments {
	return ManualAdjustments{
		ExtraHours:  in.ExtraHours.Decimal(),
		ManualExtra: in.ManualExtra.Decimal(),
		Debt:        in.Debt.Decimal(),
	}
}

type SaveAdjustmentsRequest struct {
	EmployeeID string `json:"-"`
	AnchorDate string `json:"-"` // YYYY-MM-DD
	ManualAdjustmentsInput
}

func (r *SaveAdjustmentsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, valid := validator.IsValidDate(r.AnchorDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "anchor_date",
			Message: "anchor_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustmentsResponse struct {
	EmployeeID  string          `json:"employee_id"`
	AnchorDate  string          `json:"anchor_date"`
	ExtraHours  decimal.Decimal `json:"extra_hours"`
	ManualExtra decimal.Decimal `json:"manual_extra"`
	Debt        decimal.Decimal `json:"debt"`
	Saved       bool            `json:"saved"`
}

func NewAdjustmentsResponse(a PeriodAdjustment, saved bool) AdjustmentsResponse {
	return AdjustmentsResponse{
		EmployeeID:  a.EmployeeID,
		AnchorDate:  a.AnchorDate.Format("2006-01-02"),
		ExtraHours:  a.ExtraHours,
		ManualExtra: a.ManualExtra,
		Debt:        a.Debt,
		Saved:       saved,
	}
}

package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/distripanel/panel-backend/internal/domain/employee"
	"github.com/distripanel/panel-backend/internal/domain/payroll"
	"github.com/distripanel/panel-backend/internal/domain/schedule"
	"github.com/distripanel/panel-backend/internal/pkg/jwt"
	"github.com/distripanel/panel-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	bonusRepo      payroll.BonusSettingsRepository
	adjustmentRepo payroll.PeriodAdjustmentRepository
	employeeRepo   employee.EmployeeRepository
	defaultBonus1  decimal.Decimal
	defaultBonus2  decimal.Decimal
}

func NewPayrollService(
	bonusRepo payroll.BonusSettingsRepository,
	adjustmentRepo payroll.PeriodAdjustmentRepository,
	employeeRepo employee.EmployeeRepository,
	defaultBonus1 decimal.Decimal,
	defaultBonus2 decimal.Decimal,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		bonusRepo:      bonusRepo,
		adjustmentRepo: adjustmentRepo,
		employeeRepo:   employeeRepo,
		defaultBonus1:  defaultBonus1,
		defaultBonus2:  defaultBonus2,
	}
}

// ========== BONUS SETTINGS ==========

func (s *PayrollServiceImpl) defaultSettings(location string) payroll.BonusSettings {
	return payroll.BonusSettings{
		Location:  location,
		Bonus1:    s.defaultBonus1,
		Bonus2:    s.defaultBonus2,
		IsDefault: true,
	}
}

func (s *PayrollServiceImpl) ListBonusSettings(ctx context.Context) ([]payroll.BonusSettingsResponse, error) {
	stored, err := s.bonusRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonus settings: %w", err)
	}

	byLocation := make(map[string]payroll.BonusSettings, len(stored))
	for _, b := range stored {
		byLocation[b.Location] = b
	}

	resp := make([]payroll.BonusSettingsResponse, 0, len(schedule.LocationValues))
	for _, loc := range schedule.LocationValues {
		settings, ok := byLocation[loc]
		if !ok {
			settings = s.defaultSettings(loc)
		}
		resp = append(resp, payroll.NewBonusSettingsResponse(settings))
	}
	return resp, nil
}

func (s *PayrollServiceImpl) GetBonusSettings(ctx context.Context, location string) (payroll.BonusSettings, error) {
	if !schedule.Location(location).Valid() {
		return payroll.BonusSettings{}, fmt.Errorf("%w: %q", payroll.ErrInvalidLocation, location)
	}

	settings, err := s.bonusRepo.GetByLocation(ctx, location)
	if err != nil {
		if errors.Is(err, payroll.ErrBonusSettingsNotFound) {
			return s.defaultSettings(location), nil
		}
		return payroll.BonusSettings{}, fmt.Errorf("failed to get bonus settings: %w", err)
	}
	return settings, nil
}

func (s *PayrollServiceImpl) UpdateBonusSettings(ctx context.Context, req payroll.UpdateBonusSettingsRequest) (payroll.BonusSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BonusSettingsResponse{}, err
	}

	updated, err := s.bonusRepo.Upsert(ctx, payroll.BonusSettings{
		Location:  req.Location,
		Bonus1:    req.Bonus1,
		Bonus2:    req.Bonus2,
		UpdatedBy: jwt.UserIDFromContext(ctx),
	})
	if err != nil {
		return payroll.BonusSettingsResponse{}, fmt.Errorf("failed to save bonus settings: %w", err)
	}

	slog.Info("Bonus settings updated",
		"location", updated.Location,
		"bonus_1", updated.Bonus1.String(),
		"bonus_2", updated.Bonus2.String(),
	)

	return payroll.NewBonusSettingsResponse(updated), nil
}

// ========== PERIOD ADJUSTMENTS ==========

func (s *PayrollServiceImpl) GetAdjustments(ctx context.Context, employeeID string, anchorDate string) (payroll.AdjustmentsResponse, error) {
	anchor, valid := validator.IsValidDate(anchorDate)
	if !valid {
		return payroll.AdjustmentsResponse{}, validator.ValidationErrors{{
			Field:   "anchor_date",
			Message: "anchor_date must be in YYYY-MM-DD format",
		}}
	}

	adj, err := s.adjustmentRepo.Get(ctx, employeeID, anchor)
	if err != nil {
		if errors.Is(err, payroll.ErrPeriodAdjustmentNotFound) {
			return payroll.NewAdjustmentsResponse(payroll.PeriodAdjustment{
				EmployeeID: employeeID,
				AnchorDate: anchor,
				ManualAdjustments: payroll.ManualAdjustments{
					ExtraHours:  decimal.Zero,
					ManualExtra: decimal.Zero,
					Debt:        decimal.Zero,
				},
			}, false), nil
		}
		return payroll.AdjustmentsResponse{}, fmt.Errorf("failed to get period adjustments: %w", err)
	}

	return payroll.NewAdjustmentsResponse(adj, true), nil
}

func (s *PayrollServiceImpl) SaveAdjustments(ctx context.Context, req payroll.SaveAdjustmentsRequest) (payroll.AdjustmentsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.AdjustmentsResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.AdjustmentsResponse{}, err
	}

	anchor, _ := time.Parse("2006-01-02", req.AnchorDate)
	saved, err := s.adjustmentRepo.Upsert(ctx, payroll.PeriodAdjustment{
		EmployeeID:        req.EmployeeID,
		AnchorDate:        anchor,
		ManualAdjustments: req.ToManualAdjustments(),
		UpdatedBy:         jwt.UserIDFromContext(ctx),
	})
	if err != nil {
		return payroll.AdjustmentsResponse{}, fmt.Errorf("failed to save period adjustments: %w", err)
	}

	return payroll.NewAdjustmentsResponse(saved, true), nil
}

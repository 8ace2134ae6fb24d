package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/distripanel/panel-backend/internal/domain/payroll"
	"github.com/distripanel/panel-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type periodAdjustmentRepository struct {
	db *database.DB
}

func NewPeriodAdjustmentRepository(db *database.DB) payroll.PeriodAdjustmentRepository {
	return &periodAdjustmentRepository{db: db}
}

func (r *periodAdjustmentRepository) Get(ctx context.Context, employeeID string, anchorDate time.Time) (payroll.PeriodAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, anchor_date, extra_hours, manual_extra, debt, updated_by, created_at, updated_at
		FROM period_adjustments
		WHERE employee_id = $1 AND anchor_date = $2
	`

	var a payroll.PeriodAdjustment
	err := q.QueryRow(ctx, query, employeeID, anchorDate).Scan(
		&a.ID, &a.EmployeeID, &a.AnchorDate, &a.ExtraHours, &a.ManualExtra, &a.Debt,
		&a.UpdatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PeriodAdjustment{}, payroll.ErrPeriodAdjustmentNotFound
		}
		return payroll.PeriodAdjustment{}, fmt.Errorf("failed to get period adjustment: %w", err)
	}
	return a, nil
}

func (r *periodAdjustmentRepository) Upsert(ctx context.Context, adj payroll.PeriodAdjustment) (payroll.PeriodAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO period_adjustments (id, employee_id, anchor_date, extra_hours, manual_extra, debt, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, anchor_date) DO UPDATE SET
			extra_hours = EXCLUDED.extra_hours,
			manual_extra = EXCLUDED.manual_extra,
			debt = EXCLUDED.debt,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
		RETURNING id, employee_id, anchor_date, extra_hours, manual_extra, debt, updated_by, created_at, updated_at
	`

	var a payroll.PeriodAdjustment
	err := q.QueryRow(ctx, query,
		uuid.Must(uuid.NewV7()).String(), adj.EmployeeID, adj.AnchorDate,
		adj.ExtraHours, adj.ManualExtra, adj.Debt, adj.UpdatedBy,
	).Scan(
		&a.ID, &a.EmployeeID, &a.AnchorDate, &a.ExtraHours, &a.ManualExtra, &a.Debt,
		&a.UpdatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return payroll.PeriodAdjustment{}, fmt.Errorf("failed to upsert period adjustment: %w", err)
	}
	return a, nil
}

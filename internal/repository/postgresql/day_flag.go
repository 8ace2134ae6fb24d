package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/distripanel/panel-backend/internal/domain/attendance"
	"github.com/distripanel/panel-backend/internal/pkg/database"
)

type dayFlagRepository struct {
	db *database.DB
}

func NewDayFlagRepository(db *database.DB) attendance.DayFlagRepository {
	return &dayFlagRepository{db: db}
}

func (r *dayFlagRepository) ListByRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.DayFlag, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, flag_date, is_holiday, is_justified, updated_by, created_at, updated_at
		FROM day_flags
		WHERE employee_id = $1 AND flag_date BETWEEN $2 AND $3
		ORDER BY flag_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list day flags: %w", err)
	}
	defer rows.Close()

	var flags []attendance.DayFlag
	for rows.Next() {
		var f attendance.DayFlag
		if err := rows.Scan(&f.EmployeeID, &f.Date, &f.IsHoliday, &f.IsJustified, &f.UpdatedBy, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan day flag: %w", err)
		}
		flags = append(flags, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate day flags: %w", err)
	}

	return flags, nil
}

func (r *dayFlagRepository) Upsert(ctx context.Context, flag attendance.DayFlag) (attendance.DayFlag, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO day_flags (employee_id, flag_date, is_holiday, is_justified, updated_by)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, flag_date) DO UPDATE SET
			is_holiday = EXCLUDED.is_holiday,
			is_justified = EXCLUDED.is_justified,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
		RETURNING employee_id, flag_date, is_holiday, is_justified, updated_by, created_at, updated_at
	`

	var f attendance.DayFlag
	err := q.QueryRow(ctx, query, flag.EmployeeID, flag.Date, flag.IsHoliday, flag.IsJustified, flag.UpdatedBy).Scan(
		&f.EmployeeID, &f.Date, &f.IsHoliday, &f.IsJustified, &f.UpdatedBy, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return attendance.DayFlag{}, fmt.Errorf("failed to upsert day flag: %w", err)
	}
	return f, nil
}

func (r *dayFlagRepository) Delete(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM day_flags WHERE employee_id = $1 AND flag_date = $2`, employeeID, date)
	if err != nil {
		return fmt.Errorf("failed to delete day flag: %w", err)
	}
	return nil
}

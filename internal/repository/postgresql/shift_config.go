package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/distripanel/panel-backend/internal/domain/schedule"
	"github.com/distripanel/panel-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type shiftConfigRepository struct {
	db *database.DB
}

func NewShiftConfigRepository(db *database.DB) schedule.ShiftConfigRepository {
	return &shiftConfigRepository{db: db}
}

const shiftConfigColumns = `
	id, employee_id, hourly_rate, work_days,
	entry_minutes, exit_minutes, entry_minutes_pm, exit_minutes_pm,
	location, created_at, updated_at
`

func scanShiftConfig(row pgx.Row) (schedule.ShiftConfig, error) {
	var (
		c               schedule.ShiftConfig
		location        string
		entryPM, exitPM *int
	)
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.HourlyRate, &c.WorkDays,
		&c.Primary.Entry, &c.Primary.Exit, &entryPM, &exitPM,
		&location, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return schedule.ShiftConfig{}, err
	}
	c.Location = schedule.Location(location)
	if entryPM != nil && exitPM != nil {
		c.Secondary = &schedule.Shift{Entry: *entryPM, Exit: *exitPM}
	}
	return c, nil
}

func (r *shiftConfigRepository) GetByEmployeeID(ctx context.Context, employeeID string) (schedule.ShiftConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftConfigColumns + ` FROM shift_configs WHERE employee_id = $1`

	c, err := scanShiftConfig(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ShiftConfig{}, schedule.ErrShiftConfigNotFound
		}
		return schedule.ShiftConfig{}, fmt.Errorf("failed to get shift config: %w", err)
	}
	return c, nil
}

func (r *shiftConfigRepository) Upsert(ctx context.Context, cfg schedule.ShiftConfig) (schedule.ShiftConfig, error) {
	q := GetQuerier(ctx, r.db)

	var entryPM, exitPM *int
	if cfg.Secondary != nil {
		entryPM = &cfg.Secondary.Entry
		exitPM = &cfg.Secondary.Exit
	}

	query := `
		INSERT INTO shift_configs (
			id, employee_id, hourly_rate, work_days,
			entry_minutes, exit_minutes, entry_minutes_pm, exit_minutes_pm, location
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (employee_id) DO UPDATE SET
			hourly_rate = EXCLUDED.hourly_rate,
			work_days = EXCLUDED.work_days,
			entry_minutes = EXCLUDED.entry_minutes,
			exit_minutes = EXCLUDED.exit_minutes,
			entry_minutes_pm = EXCLUDED.entry_minutes_pm,
			exit_minutes_pm = EXCLUDED.exit_minutes_pm,
			location = EXCLUDED.location,
			updated_at = NOW()
		RETURNING ` + shiftConfigColumns

	saved, err := scanShiftConfig(q.QueryRow(ctx, query,
		uuid.Must(uuid.NewV7()).String(), cfg.EmployeeID, cfg.HourlyRate, cfg.WorkDays,
		cfg.Primary.Entry, cfg.Primary.Exit, entryPM, exitPM, string(cfg.Location),
	))
	if err != nil {
		return schedule.ShiftConfig{}, fmt.Errorf("failed to upsert shift config: %w", err)
	}
	return saved, nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/distripanel/panel-backend/internal/domain/payroll"
	"github.com/distripanel/panel-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type bonusSettingsRepository struct {
	db *database.DB
}

func NewBonusSettingsRepository(db *database.DB) payroll.BonusSettingsRepository {
	return &bonusSettingsRepository{db: db}
}

func (r *bonusSettingsRepository) GetByLocation(ctx context.Context, location string) (payroll.BonusSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, location, bonus_1, bonus_2, updated_by, created_at, updated_at
		FROM bonus_settings
		WHERE location = $1
	`

	var s payroll.BonusSettings
	err := q.QueryRow(ctx, query, location).Scan(
		&s.ID, &s.Location, &s.Bonus1, &s.Bonus2, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.BonusSettings{}, payroll.ErrBonusSettingsNotFound
		}
		return payroll.BonusSettings{}, fmt.Errorf("failed to get bonus settings: %w", err)
	}
	return s, nil
}

func (r *bonusSettingsRepository) List(ctx context.Context) ([]payroll.BonusSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, location, bonus_1, bonus_2, updated_by, created_at, updated_at
		FROM bonus_settings
		ORDER BY location
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonus settings: %w", err)
	}
	defer rows.Close()

	var settings []payroll.BonusSettings
	for rows.Next() {
		var s payroll.BonusSettings
		if err := rows.Scan(&s.ID, &s.Location, &s.Bonus1, &s.Bonus2, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bonus settings: %w", err)
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bonus settings: %w", err)
	}

	return settings, nil
}

func (r *bonusSettingsRepository) Upsert(ctx context.Context, settings payroll.BonusSettings) (payroll.BonusSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonus_settings (id, location, bonus_1, bonus_2, updated_by)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (location) DO UPDATE SET
			bonus_1 = EXCLUDED.bonus_1,
			bonus_2 = EXCLUDED.bonus_2,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
		RETURNING id, location, bonus_1, bonus_2, updated_by, created_at, updated_at
	`

	var s payroll.BonusSettings
	err := q.QueryRow(ctx, query,
		uuid.Must(uuid.NewV7()).String(), settings.Location, settings.Bonus1, settings.Bonus2, settings.UpdatedBy,
	).Scan(&s.ID, &s.Location, &s.Bonus1, &s.Bonus2, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return payroll.BonusSettings{}, fmt.Errorf("failed to upsert bonus settings: %w", err)
	}
	return s, nil
}

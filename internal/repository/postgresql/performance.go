package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/distripanel/panel-backend/internal/domain/performance"
	"github.com/distripanel/panel-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type performanceRepository struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.PerformanceRepository {
	return &performanceRepository{db: db}
}

const performanceColumns = `
	id, employee_id, early_arrivals, late_arrivals, justified_count, total_issues,
	holidays_worked, absences, scheduled_days, marked_days, created_at, updated_at
`

func scanPerformance(row pgx.Row) (performance.PerformanceRecord, error) {
	var p performance.PerformanceRecord
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.EarlyArrivals, &p.LateArrivals, &p.JustifiedCount, &p.TotalIssues,
		&p.HolidaysWorked, &p.Absences, &p.ScheduledDays, &p.MarkedDays, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *performanceRepository) GetByEmployeeID(ctx context.Context, employeeID string) (performance.PerformanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + performanceColumns + ` FROM performance_metrics WHERE employee_id = $1`

	p, err := scanPerformance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.PerformanceRecord{}, performance.ErrPerformanceNotFound
		}
		return performance.PerformanceRecord{}, fmt.Errorf("failed to get performance metrics: %w", err)
	}
	return p, nil
}

// AddDelta increments the stored counters in a single statement, so two
// concurrent saves for the same worker both count.
func (r *performanceRepository) AddDelta(ctx context.Context, employeeID string, delta performance.Metrics) (performance.PerformanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_metrics (
			id, employee_id, early_arrivals, late_arrivals, justified_count, total_issues,
			holidays_worked, absences, scheduled_days, marked_days
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employee_id) DO UPDATE SET
			early_arrivals = performance_metrics.early_arrivals + EXCLUDED.early_arrivals,
			late_arrivals = performance_metrics.late_arrivals + EXCLUDED.late_arrivals,
			justified_count = performance_metrics.justified_count + EXCLUDED.justified_count,
			total_issues = performance_metrics.total_issues + EXCLUDED.total_issues,
			holidays_worked = performance_metrics.holidays_worked + EXCLUDED.holidays_worked,
			absences = performance_metrics.absences + EXCLUDED.absences,
			scheduled_days = performance_metrics.scheduled_days + EXCLUDED.scheduled_days,
			marked_days = performance_metrics.marked_days + EXCLUDED.marked_days,
			updated_at = NOW()
		RETURNING ` + performanceColumns

	p, err := scanPerformance(q.QueryRow(ctx, query,
		uuid.Must(uuid.NewV7()).String(), employeeID,
		delta.EarlyArrivals, delta.LateArrivals, delta.JustifiedCount, delta.TotalIssues,
		delta.HolidaysWorked, delta.Absences, delta.ScheduledDays, delta.MarkedDays,
	))
	if err != nil {
		return performance.PerformanceRecord{}, fmt.Errorf("failed to add performance metrics: %w", err)
	}
	return p, nil
}

func (r *performanceRepository) List(ctx context.Context) ([]performance.PerformanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + performanceColumns + ` FROM performance_metrics ORDER BY created_at, id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance metrics: %w", err)
	}
	defer rows.Close()

	var records []performance.PerformanceRecord
	for rows.Next() {
		p, err := scanPerformance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance metrics: %w", err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate performance metrics: %w", err)
	}

	return records, nil
}

package postgresql_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/distripanel/panel-backend/internal/domain/attendance"
	"github.com/distripanel/panel-backend/internal/domain/employee"
	"github.com/distripanel/panel-backend/internal/domain/payroll"
	"github.com/distripanel/panel-backend/internal/domain/performance"
	"github.com/distripanel/panel-backend/internal/domain/schedule"
	"github.com/distripanel/panel-backend/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(setup.DB)

	first := setup.CreateEmployee(t, "Rosa Medina")
	second := setup.CreateEmployee(t, "Tomás Ibarra")

	e, err := repo.GetByID(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "Rosa Medina", e.FullName)
	assert.True(t, e.IsActive)

	list, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first, list[0].ID)
	assert.Equal(t, second, list[1].ID)

	_, err = repo.GetByID(ctx, "018f2b7e-0000-7000-8000-000000000000")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestShiftConfigRepository_Upsert(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewShiftConfigRepository(setup.DB)
	empID := setup.CreateEmployee(t, "Rosa Medina")

	_, err := repo.GetByEmployeeID(ctx, empID)
	assert.ErrorIs(t, err, schedule.ErrShiftConfigNotFound)

	cfg := schedule.ShiftConfig{
		EmployeeID: empID,
		HourlyRate: decimal.NewFromInt(1200),
		WorkDays:   []string{schedule.Lunes, schedule.Sabado},
		Primary:    schedule.Shift{Entry: 360, Exit: 840},
		Secondary:  &schedule.Shift{Entry: 840, Exit: 1320},
		Location:   schedule.LocationSucursal,
	}
	saved, err := repo.Upsert(ctx, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	cfg.Secondary = nil
	cfg.Location = schedule.LocationMatriz
	updated, err := repo.Upsert(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	got, err := repo.GetByEmployeeID(ctx, empID)
	require.NoError(t, err)
	assert.Nil(t, got.Secondary)
	assert.Equal(t, schedule.LocationMatriz, got.Location)
	assert.Equal(t, []string{schedule.Lunes, schedule.Sabado}, got.WorkDays)
	assert.True(t, decimal.NewFromInt(1200).Equal(got.HourlyRate))
}

func TestDayFlagRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewDayFlagRepository(setup.DB)
	empID := setup.CreateEmployee(t, "Rosa Medina")

	day := func(d int) time.Time { return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC) }

	_, err := repo.Upsert(ctx, attendance.DayFlag{EmployeeID: empID, Date: day(4), IsJustified: true})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, attendance.DayFlag{EmployeeID: empID, Date: day(20), IsHoliday: true})
	require.NoError(t, err)

	flags, err := repo.ListByRange(ctx, empID, day(3), day(16))
	require.NoError(t, err)
	require.Len(t, flags, 1)
	assert.True(t, flags[0].IsJustified)
	assert.Equal(t, "2025-03-04", flags[0].Date.Format(attendance.DateKeyLayout))

	require.NoError(t, repo.Delete(ctx, empID, day(4)))
	flags, err = repo.ListByRange(ctx, empID, day(3), day(16))
	require.NoError(t, err)
	assert.Empty(t, flags)
}

func TestBonusSettingsRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewBonusSettingsRepository(setup.DB)

	_, err := repo.GetByLocation(ctx, "matriz")
	assert.ErrorIs(t, err, payroll.ErrBonusSettingsNotFound)

	_, err = repo.Upsert(ctx, payroll.BonusSettings{Location: "matriz", Bonus1: decimal.NewFromInt(40000), Bonus2: decimal.NewFromInt(15000)})
	require.NoError(t, err)

	got, err := repo.GetByLocation(ctx, "matriz")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40000).Equal(got.Bonus1))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPeriodAdjustmentRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewPeriodAdjustmentRepository(setup.DB)
	empID := setup.CreateEmployee(t, "Rosa Medina")
	anchor := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	_, err := repo.Get(ctx, empID, anchor)
	assert.ErrorIs(t, err, payroll.ErrPeriodAdjustmentNotFound)

	_, err = repo.Upsert(ctx, payroll.PeriodAdjustment{
		EmployeeID: empID,
		AnchorDate: anchor,
		ManualAdjustments: payroll.ManualAdjustments{
			ExtraHours:  decimal.NewFromInt(2),
			ManualExtra: decimal.NewFromInt(500),
			Debt:        decimal.NewFromInt(3000),
		},
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, empID, anchor)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(3000).Equal(got.Debt))
}

func TestPerformanceRepository_AddDeltaIsAdditive(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewPerformanceRepository(setup.DB)
	empID := setup.CreateEmployee(t, "Rosa Medina")

	delta := performance.Metrics{EarlyArrivals: 2, LateArrivals: 1, ScheduledDays: 10, MarkedDays: 9}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AddDelta(ctx, empID, delta)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetByEmployeeID(ctx, empID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.EarlyArrivals)
	assert.Equal(t, 50, got.ScheduledDays)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTxManager_RollsBack(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewPerformanceRepository(setup.DB)
	tx := postgresql.NewTxManager(setup.DB)
	empID := setup.CreateEmployee(t, "Rosa Medina")

	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := repo.AddDelta(txCtx, empID, performance.Metrics{EarlyArrivals: 1}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.GetByEmployeeID(ctx, empID)
	assert.ErrorIs(t, err, performance.ErrPerformanceNotFound)
}

package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/distripanel/panel-backend/internal/domain/employee"
	"github.com/distripanel/panel-backend/internal/domain/schedule"
	"github.com/distripanel/panel-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShiftConfigRepo struct {
	configs map[string]schedule.ShiftConfig
}

func (f *fakeShiftConfigRepo) GetByEmployeeID(ctx context.Context, employeeID string) (schedule.ShiftConfig, error) {
	cfg, ok := f.configs[employeeID]
	if !ok {
		return schedule.ShiftConfig{}, schedule.ErrShiftConfigNotFound
	}
	return cfg, nil
}

func (f *fakeShiftConfigRepo) Upsert(ctx context.Context, cfg schedule.ShiftConfig) (schedule.ShiftConfig, error) {
	cfg.ID = "cfg-" + cfg.EmployeeID
	f.configs[cfg.EmployeeID] = cfg
	return cfg, nil
}

type fakeEmployeeRepo struct{}

func (fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id != "emp-1" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id}, nil
}

func (fakeEmployeeRepo) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	return nil, nil
}

func strPtr(s string) *string {
	return &s
}

func TestScheduleService_GetShiftConfig_Default(t *testing.T) {
	svc := NewScheduleService(&fakeShiftConfigRepo{configs: map[string]schedule.ShiftConfig{}}, fakeEmployeeRepo{})

	resp, err := svc.GetShiftConfig(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	assert.Equal(t, "08:00", resp.EntryTime)
	assert.Equal(t, "17:00", resp.ExitTime)
	assert.Equal(t, []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"}, resp.WorkDays)
	assert.Equal(t, "matriz", resp.Location)
	assert.Nil(t, resp.EntryTimePM)

	_, err = svc.GetShiftConfig(context.Background(), "emp-9")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestScheduleService_UpdateShiftConfig(t *testing.T) {
	repo := &fakeShiftConfigRepo{configs: map[string]schedule.ShiftConfig{}}
	svc := NewScheduleService(repo, fakeEmployeeRepo{})

	resp, err := svc.UpdateShiftConfig(context.Background(), schedule.UpdateShiftConfigRequest{
		EmployeeID:  "emp-1",
		HourlyRate:  decimal.NewFromInt(1200),
		WorkDays:    []string{"Sábado", "Lunes", "Miércoles"},
		EntryTime:   "6:00",
		ExitTime:    "14:00",
		EntryTimePM: strPtr("14:00"),
		ExitTimePM:  strPtr("22:00"),
		Location:    "sucursal",
	})
	require.NoError(t, err)

	assert.False(t, resp.IsDefault)
	assert.Equal(t, "cfg-emp-1", resp.ID)
	assert.Equal(t, []string{"Lunes", "Miércoles", "Sábado"}, resp.WorkDays)
	assert.Equal(t, "06:00", resp.EntryTime)
	require.NotNil(t, resp.EntryTimePM)
	assert.Equal(t, "14:00", *resp.EntryTimePM)

	stored := repo.configs["emp-1"]
	require.NotNil(t, stored.Secondary)
	assert.Equal(t, 22*60, stored.Secondary.Exit)
	assert.Equal(t, schedule.LocationSucursal, stored.Location)
}

func TestScheduleService_UpdateShiftConfig_Validation(t *testing.T) {
	svc := NewScheduleService(&fakeShiftConfigRepo{configs: map[string]schedule.ShiftConfig{}}, fakeEmployeeRepo{})

	_, err := svc.UpdateShiftConfig(context.Background(), schedule.UpdateShiftConfigRequest{
		EmployeeID:  "emp-1",
		HourlyRate:  decimal.NewFromInt(-5),
		WorkDays:    []string{"Funday"},
		EntryTime:   "17:00",
		ExitTime:    "08:00",
		EntryTimePM: strPtr("14:00"),
		Location:    "bodega",
	})

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	fields := validationErrs.ToMap()
	assert.Contains(t, fields, "hourly_rate")
	assert.Contains(t, fields, "work_days")
	assert.Contains(t, fields, "exit_time")
	assert.Contains(t, fields, "entry_time_pm")
	assert.Contains(t, fields, "location")
}

package attendance

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/distripanel/panel-backend/internal/domain/attendance"
	"github.com/distripanel/panel-backend/internal/domain/employee"
	"github.com/distripanel/panel-backend/internal/domain/payroll"
	"github.com/distripanel/panel-backend/internal/domain/performance"
	"github.com/distripanel/panel-backend/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

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
	f.configs[cfg.EmployeeID] = cfg
	return cfg, nil
}

type fakeDayFlagRepo struct {
	mu    sync.Mutex
	flags map[string]attendance.DayFlag // employeeID|date
}

func dayFlagKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format(attendance.DateKeyLayout)
}

func (f *fakeDayFlagRepo) ListByRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.DayFlag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []attendance.DayFlag
	for _, flag := range f.flags {
		if flag.EmployeeID == employeeID && !flag.Date.Before(start) && !flag.Date.After(end) {
			out = append(out, flag)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeDayFlagRepo) Upsert(ctx context.Context, flag attendance.DayFlag) (attendance.DayFlag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	flag.UpdatedAt = time.Date(2025, time.March, 20, 10, 0, 0, 0, time.UTC)
	f.flags[dayFlagKey(flag.EmployeeID, flag.Date)] = flag
	return flag, nil
}

func (f *fakeDayFlagRepo) Delete(ctx context.Context, employeeID string, date time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.flags, dayFlagKey(employeeID, date))
	return nil
}

type fakePerformanceRepo struct {
	records map[string]performance.PerformanceRecord
	err     error
}

func (f *fakePerformanceRepo) GetByEmployeeID(ctx context.Context, employeeID string) (performance.PerformanceRecord, error) {
	r, ok := f.records[employeeID]
	if !ok {
		return performance.PerformanceRecord{}, performance.ErrPerformanceNotFound
	}
	return r, nil
}

func (f *fakePerformanceRepo) AddDelta(ctx context.Context, employeeID string, delta performance.Metrics) (performance.PerformanceRecord, error) {
	if f.err != nil {
		return performance.PerformanceRecord{}, f.err
	}
	r := f.records[employeeID]
	r.EmployeeID = employeeID
	r.Metrics = r.Metrics.Add(delta)
	f.records[employeeID] = r
	return r, nil
}

func (f *fakePerformanceRepo) List(ctx context.Context) ([]performance.PerformanceRecord, error) {
	var out []performance.PerformanceRecord
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
}

// fakePayrollService returns fixed bonus amounts and the stored adjustments.
type fakePayrollService struct {
	bonus       payroll.BonusSettings
	adjustments map[string]payroll.AdjustmentsResponse // anchor date
}

func (f *fakePayrollService) ListBonusSettings(ctx context.Context) ([]payroll.BonusSettingsResponse, error) {
	return []payroll.BonusSettingsResponse{payroll.NewBonusSettingsResponse(f.bonus)}, nil
}

func (f *fakePayrollService) GetBonusSettings(ctx context.Context, location string) (payroll.BonusSettings, error) {
	b := f.bonus
	b.Location = location
	return b, nil
}

func (f *fakePayrollService) UpdateBonusSettings(ctx context.Context, req payroll.UpdateBonusSettingsRequest) (payroll.BonusSettingsResponse, error) {
	return payroll.BonusSettingsResponse{}, nil
}

func (f *fakePayrollService) GetAdjustments(ctx context.Context, employeeID string, anchorDate string) (payroll.AdjustmentsResponse, error) {
	if a, ok := f.adjustments[anchorDate]; ok {
		return a, nil
	}
	return payroll.AdjustmentsResponse{
		EmployeeID:  employeeID,
		AnchorDate:  anchorDate,
		ExtraHours:  decimal.Zero,
		ManualExtra: decimal.Zero,
		Debt:        decimal.Zero,
	}, nil
}

func (f *fakePayrollService) SaveAdjustments(ctx context.Context, req payroll.SaveAdjustmentsRequest) (payroll.AdjustmentsResponse, error) {
	return payroll.AdjustmentsResponse{}, nil
}

type fakeAdjustmentRepo struct {
	saved []payroll.PeriodAdjustment
}

func (f *fakeAdjustmentRepo) Get(ctx context.Context, employeeID string, anchorDate time.Time) (payroll.PeriodAdjustment, error) {
	return payroll.PeriodAdjustment{}, payroll.ErrPeriodAdjustmentNotFound
}

func (f *fakeAdjustmentRepo) Upsert(ctx context.Context, a payroll.PeriodAdjustment) (payroll.PeriodAdjustment, error) {
	f.saved = append(f.saved, a)
	return a, nil
}

// fakeTxManager runs fn without a database; it counts the calls.
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

package http

import (
	"context"

	"github.com/distripanel/panel-backend/internal/domain/attendance"
	"github.com/distripanel/panel-backend/internal/domain/employee"
	"github.com/distripanel/panel-backend/internal/domain/payroll"
	"github.com/distripanel/panel-backend/internal/domain/performance"
	"github.com/distripanel/panel-backend/internal/domain/schedule"
)

type fakeEmployeeService struct {
	employees  []employee.EmployeeResponse
	err        error
	activeOnly bool
}

func (f *fakeEmployeeService) GetEmployee(_ context.Context, id string) (employee.EmployeeResponse, error) {
	if f.err != nil {
		return employee.EmployeeResponse{}, f.err
	}
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeService) ListEmployees(_ context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	f.activeOnly = activeOnly
	return f.employees, f.err
}

type fakeScheduleService struct {
	lastUpdate schedule.UpdateShiftConfigRequest
	err        error
}

func (f *fakeScheduleService) GetShiftConfig(_ context.Context, employeeID string) (schedule.ShiftConfigResponse, error) {
	if f.err != nil {
		return schedule.ShiftConfigResponse{}, f.err
	}
	return schedule.ShiftConfigResponse{EmployeeID: employeeID, IsDefault: true, Location: "matriz"}, nil
}

func (f *fakeScheduleService) UpdateShiftConfig(_ context.Context, req schedule.UpdateShiftConfigRequest) (schedule.ShiftConfigResponse, error) {
	f.lastUpdate = req
	if f.err != nil {
		return schedule.ShiftConfigResponse{}, f.err
	}
	if err := req.Validate(); err != nil {
		return schedule.ShiftConfigResponse{}, err
	}
	return schedule.ShiftConfigResponse{EmployeeID: req.EmployeeID, Location: req.Location}, nil
}

type fakeAttendanceService struct {
	lastReport attendance.ProcessReportRequest
	lastUpload attendance.UploadReportRequest
	lastFilter attendance.DayFlagFilter
	lastFlags  attendance.SetDayFlagsRequest
	uploadName string
	err        error
}

func (f *fakeAttendanceService) ProcessReport(_ context.Context, req attendance.ProcessReportRequest) (attendance.ReportResponse, error) {
	f.lastReport = req
	if f.err != nil {
		return attendance.ReportResponse{}, f.err
	}
	return attendance.ReportResponse{Location: "matriz", AnchorDate: "2025-03-03", EndDate: "2025-03-16"}, nil
}

func (f *fakeAttendanceService) ProcessSpreadsheet(_ context.Context, req attendance.UploadReportRequest) (attendance.ReportResponse, error) {
	f.lastUpload = req
	if req.FileHeader != nil {
		f.uploadName = req.FileHeader.Filename
	}
	if f.err != nil {
		return attendance.ReportResponse{}, f.err
	}
	return attendance.ReportResponse{Location: "sucursal", AnchorDate: "2025-03-03"}, nil
}

func (f *fakeAttendanceService) ListDayFlags(_ context.Context, filter attendance.DayFlagFilter) ([]attendance.DayFlagResponse, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return []attendance.DayFlagResponse{{EmployeeID: filter.EmployeeID, Date: filter.StartDate}}, nil
}

func (f *fakeAttendanceService) SetDayFlags(_ context.Context, req attendance.SetDayFlagsRequest) (attendance.DayFlagResponse, error) {
	f.lastFlags = req
	if f.err != nil {
		return attendance.DayFlagResponse{}, f.err
	}
	return attendance.DayFlagResponse{EmployeeID: req.EmployeeID, Date: req.Date, Flags: req.Flags}, nil
}

func (f *fakeAttendanceService) SavePerformance(_ context.Context, req attendance.ProcessReportRequest) (performance.MetricsResponse, error) {
	f.lastReport = req
	if f.err != nil {
		return performance.MetricsResponse{}, f.err
	}
	return performance.MetricsResponse{EmployeeID: req.EmployeeID, Metrics: performance.Metrics{EarlyArrivals: 3}}, nil
}

type fakePayrollService struct {
	lastBonus      payroll.UpdateBonusSettingsRequest
	lastAdjustment payroll.SaveAdjustmentsRequest
	lastAnchor     string
	err            error
}

func (f *fakePayrollService) ListBonusSettings(_ context.Context) ([]payroll.BonusSettingsResponse, error) {
	return []payroll.BonusSettingsResponse{{Location: "matriz", IsDefault: true}, {Location: "sucursal", IsDefault: true}}, f.err
}

func (f *fakePayrollService) GetBonusSettings(_ context.Context, location string) (payroll.BonusSettings, error) {
	return payroll.BonusSettings{Location: location}, f.err
}

func (f *fakePayrollService) UpdateBonusSettings(_ context.Context, req payroll.UpdateBonusSettingsRequest) (payroll.BonusSettingsResponse, error) {
	f.lastBonus = req
	if f.err != nil {
		return payroll.BonusSettingsResponse{}, f.err
	}
	return payroll.BonusSettingsResponse{Location: req.Location, Bonus1: req.Bonus1, Bonus2: req.Bonus2}, nil
}

func (f *fakePayrollService) GetAdjustments(_ context.Context, employeeID string, anchorDate string) (payroll.AdjustmentsResponse, error) {
	f.lastAnchor = anchorDate
	if f.err != nil {
		return payroll.AdjustmentsResponse{}, f.err
	}
	return payroll.AdjustmentsResponse{EmployeeID: employeeID, AnchorDate: anchorDate}, nil
}

func (f *fakePayrollService) SaveAdjustments(_ context.Context, req payroll.SaveAdjustmentsRequest) (payroll.AdjustmentsResponse, error) {
	f.lastAdjustment = req
	if f.err != nil {
		return payroll.AdjustmentsResponse{}, f.err
	}
	return payroll.AdjustmentsResponse{EmployeeID: req.EmployeeID, AnchorDate: req.AnchorDate, Saved: true}, nil
}

type fakePerformanceService struct {
	ranking []performance.RankingEntryResponse
	err     error
}

func (f *fakePerformanceService) GetMetrics(_ context.Context, employeeID string) (performance.MetricsResponse, error) {
	return performance.MetricsResponse{EmployeeID: employeeID}, f.err
}

func (f *fakePerformanceService) GetRanking(_ context.Context) ([]performance.RankingEntryResponse, error) {
	return f.ranking, f.err
}

package attendance

import (
	"context"

	"github.com/distripanel/panel-backend/internal/domain/performance"
)

// AttendanceService runs the attendance-to-payroll pipeline for one worker.
type AttendanceService interface {
	// ProcessReport parses a pasted clock report and returns the classified period
	ProcessReport(ctx context.Context, req ProcessReportRequest) (ReportResponse, error)

	// ProcessSpreadsheet flattens an uploaded .xlsx report and processes it
	ProcessSpreadsheet(ctx context.Context, req UploadReportRequest) (ReportResponse, error)

	// ListDayFlags returns the holiday/justified flags in a date range
	ListDayFlags(ctx context.Context, filter DayFlagFilter) ([]DayFlagResponse, error)

	// SetDayFlags stores the flags for one date; clearing both removes them
	SetDayFlags(ctx context.Context, req SetDayFlagsRequest) (DayFlagResponse, error)

	// SavePerformance adds the period's metrics to the worker's cumulative totals
	SavePerformance(ctx context.Context, req ProcessReportRequest) (performance.MetricsResponse, error)
}

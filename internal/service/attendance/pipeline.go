package attendance

import (
	"time"

	"github.com/distripanel/panel-backend/internal/domain/attendance"
	"github.com/distripanel/panel-backend/internal/domain/payroll"
	"github.com/distripanel/panel-backend/internal/domain/performance"
	"github.com/distripanel/panel-backend/internal/domain/schedule"
)

// PeriodInput is everything the pipeline needs besides the punches. The
// caller owns persistence; nothing here is retained between calls.
type PeriodInput struct {
	Config      schedule.ShiftConfig
	Reference   time.Time
	Flags       attendance.FlagSet
	Bonus       payroll.BonusSettings
	Adjustments payroll.ManualAdjustments
}

type PeriodResult struct {
	Report  attendance.PeriodReport
	Summary payroll.PayrollSummary
	Metrics performance.Metrics
}

// BuildPeriod runs reconstruct → classify → aggregate/extract on parsed punches.
func BuildPeriod(punches []attendance.RawPunch, in PeriodInput) (PeriodResult, error) {
	report, err := ReconstructPeriod(punches, in.Config.Location, in.Reference, in.Flags)
	if err != nil {
		return PeriodResult{}, err
	}

	classified := ClassifyPeriod(report, in.Config)

	return PeriodResult{
		Report:  classified,
		Summary: AggregatePayroll(classified, in.Config.HourlyRate, in.Bonus, in.Adjustments),
		Metrics: ExtractMetrics(classified),
	}, nil
}

// RunPipeline parses raw report text and builds the period from it.
func RunPipeline(raw string, in PeriodInput) (PeriodResult, error) {
	punches, err := ParseReport(raw, in.Config.Location)
	if err != nil {
		return PeriodResult{}, err
	}
	if len(punches) == 0 {
		return PeriodResult{}, attendance.ErrEmptyReport
	}
	return BuildPeriod(punches, in)
}

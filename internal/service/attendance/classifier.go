package attendance

import (
	"github.com/distripanel/panel-backend/internal/domain/attendance"
	"github.com/distripanel/panel-backend/internal/domain/schedule"
)

const (
	earlyThresholdMinutes = 10  // arriving this many minutes before entry counts as early
	toleranceMinutes      = 10  // lateness up to this is tolerated without penalty
	incompletePenalty     = 6.0 // penalty hours for a day with a single punch
	minutesPerDay         = 24 * 60
)

// latePenalty returns the penalty hours and status for a late arrival of
// minutesLate > toleranceMinutes.
func latePenalty(minutesLate int) (float64, attendance.DayStatus) {
	switch {
	case minutesLate >= 120:
		return 4, attendance.StatusLate2h
	case minutesLate >= 60:
		return 2, attendance.StatusLate1h
	default:
		return 1, attendance.StatusLate10m
	}
}

// targetShift picks the shift the worker was on that day. With a rotating
// AM/PM schedule the shift whose entry is closest to the observed entry wins;
// ties go to the primary shift.
func targetShift(cfg schedule.ShiftConfig, entry int, hasEntry bool) schedule.Shift {
	if cfg.Secondary == nil || !hasEntry {
		return cfg.Primary
	}
	if abs(entry-cfg.Secondary.Entry) < abs(entry-cfg.Primary.Entry) {
		return *cfg.Secondary
	}
	return cfg.Primary
}

// ClassifyDay computes hours, penalties and status for a single day.
func ClassifyDay(day attendance.DayRecord, cfg schedule.ShiftConfig) attendance.DayRecord {
	entry, hasEntry := clockMinutes(day.Entry)
	exit, hasExit := clockMinutes(day.Exit)

	shift := targetShift(cfg, entry, hasEntry)
	scheduledHours := shift.ScheduledHours()

	day.Scheduled = cfg.WorksOn(day.Weekday)
	day.Hours = 0
	day.PenaltyHours = 0
	day.IsEarly = false
	day.IsLate = false
	day.MinutesLate = 0
	day.CountsAsLate = false

	diff := entry - shift.Entry

	switch {
	// holidays are paid, never scored for punctuality
	case day.IsHoliday && hasEntry && hasExit:
		day.Hours = workedHours(entry, exit) * 2
		day.Status = attendance.StatusHolidayWorked

	case day.IsHoliday:
		day.Hours = scheduledHours
		day.Status = attendance.StatusHoliday

	case hasEntry && hasExit:
		day.Hours = workedHours(entry, exit)
		day.IsEarly = diff <= -earlyThresholdMinutes
		day.MinutesLate = max(diff, 0)
		switch {
		case diff <= 0:
			day.Status = attendance.StatusOnTime
		case diff <= toleranceMinutes:
			day.Status = attendance.StatusToleratedLate
		default:
			day.PenaltyHours, day.Status = latePenalty(diff)
			day.IsLate = true
			day.CountsAsLate = true
		}
		// a justified late arrival keeps its status but costs no hours
		if day.IsJustified {
			day.PenaltyHours = 0
		}

	case hasEntry || hasExit:
		day.Status = attendance.StatusIncomplete
		day.PenaltyHours = incompletePenalty
		if hasEntry {
			day.MinutesLate = max(diff, 0)
			day.IsLate = diff > toleranceMinutes
		}
		day.CountsAsLate = true
		if day.IsJustified {
			day.PenaltyHours = 0
		}

	case day.Scheduled:
		if day.IsJustified {
			day.Hours = scheduledHours / 2
			day.Status = attendance.StatusJustifiedAbsence
		} else {
			day.Status = attendance.StatusAbsence
		}

	default:
		day.Status = attendance.StatusNotWorking
	}

	return day
}

// ClassifyPeriod classifies every day and accumulates the period totals.
// The input report is not modified.
func ClassifyPeriod(report attendance.PeriodReport, cfg schedule.ShiftConfig) attendance.PeriodReport {
	out := report
	out.Totals = attendance.Totals{}
	for i, day := range report.Days {
		classified := ClassifyDay(day, cfg)
		out.Days[i] = classified
		out.Totals.WorkedHours += classified.Hours - classified.PenaltyHours
		out.Totals.PenaltyHours += classified.PenaltyHours
		if classified.CountsAsLate {
			out.Totals.LateCount++
		}
	}
	return out
}

// workedHours handles exits past midnight as belonging to the same shift.
func workedHours(entry, exit int) float64 {
	if exit < entry {
		exit += minutesPerDay
	}
	return float64(exit-entry) / 60
}

func clockMinutes(s *string) (int, bool) {
	if s == nil {
		return 0, false
	}
	minutes, err := schedule.ParseClock(*s)
	if err != nil {
		return 0, false
	}
	return minutes, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

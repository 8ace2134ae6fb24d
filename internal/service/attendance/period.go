package attendance

import (
	"time"

	"github.com/distripanel/panel-backend/internal/domain/attendance"
	"github.com/distripanel/panel-backend/internal/domain/schedule"
)

// ReconstructPeriod expands sparse punches into the full pay period that
// starts on the first punch's date. Days without a punch keep only the
// flags stored for their date. When two punches share a date token the
// later one wins.
func ReconstructPeriod(punches []attendance.RawPunch, loc schedule.Location, ref time.Time, flags attendance.FlagSet) (attendance.PeriodReport, error) {
	anchor, err := PeriodAnchor(punches, loc, ref)
	if err != nil {
		return attendance.PeriodReport{}, err
	}
	format, err := formatFor(loc)
	if err != nil {
		return attendance.PeriodReport{}, err
	}

	byToken := make(map[string]attendance.RawPunch, len(punches))
	for _, p := range punches {
		byToken[p.DateToken] = p
	}

	report := attendance.PeriodReport{
		Location:   loc,
		AnchorDate: anchor,
	}
	for i := range report.Days {
		date := anchor.AddDate(0, 0, i)
		token := format.token(date)
		dayFlags := flags.Lookup(date)

		day := attendance.DayRecord{
			Date:        date,
			DateKey:     date.Format(attendance.DateKeyLayout),
			DateToken:   token,
			Weekday:     schedule.WeekdayName(date.Weekday()),
			IsHoliday:   dayFlags.IsHoliday,
			IsJustified: dayFlags.IsJustified,
		}
		if p, ok := byToken[token]; ok {
			day.Entry = p.Entry
			day.Exit = p.Exit
		}
		report.Days[i] = day
	}

	return report, nil
}

// PeriodAnchor resolves the first punch's date token to a calendar date,
// completing the missing month/year from the reference date.
func PeriodAnchor(punches []attendance.RawPunch, loc schedule.Location, ref time.Time) (time.Time, error) {
	if len(punches) == 0 {
		return time.Time{}, attendance.ErrEmptyReport
	}
	format, err := formatFor(loc)
	if err != nil {
		return time.Time{}, err
	}
	return format.anchor(punches[0].DateToken, truncateDate(ref))
}

// PeriodBounds returns the first and last date of the period starting at anchor.
func PeriodBounds(anchor time.Time) (time.Time, time.Time) {
	return anchor, anchor.AddDate(0, 0, attendance.PeriodLength-1)
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

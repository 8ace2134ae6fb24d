package attendance

import (
	"github.com/distripanel/panel-backend/internal/domain/attendance"
	"github.com/distripanel/panel-backend/internal/domain/performance"
)

// ExtractMetrics derives the ranking counters from a classified period.
func ExtractMetrics(report attendance.PeriodReport) performance.Metrics {
	m := performance.Metrics{
		LateArrivals: report.Totals.LateCount,
	}

	for _, day := range report.Days {
		if day.IsEarly {
			m.EarlyArrivals++
		}
		if day.IsJustified && (day.IsLate || day.IsAbsence()) {
			m.JustifiedCount++
		}
		if day.IsLate || day.IsAbsence() || day.Status == attendance.StatusIncomplete {
			m.TotalIssues++
		}
		if day.Status == attendance.StatusHolidayWorked {
			m.HolidaysWorked++
		}
		if day.Status == attendance.StatusAbsence {
			m.Absences++
		}
		if day.Scheduled {
			m.ScheduledDays++
		}
		if day.Worked() ||
			day.Status == attendance.StatusHoliday ||
			day.IsJustified ||
			day.Status == attendance.StatusNotWorking {
			m.MarkedDays++
		}
	}

	return m
}

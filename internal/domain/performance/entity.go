package performance

import (
	"time"

	"github.com/distripanel/panel-backend/internal/domain/employee"
)

// Metrics are the per-period counters extracted from a classified period.
// Stored totals are only ever incremented by another period's Metrics.
type Metrics struct {
	EarlyArrivals  int `json:"early_arrivals"`
	LateArrivals   int `json:"late_arrivals"`
	JustifiedCount int `json:"justified_count"`
	TotalIssues    int `json:"total_issues"`
	HolidaysWorked int `json:"holidays_worked"`
	Absences       int `json:"absences"`
	ScheduledDays  int `json:"scheduled_days"`
	MarkedDays     int `json:"marked_days"`
}

// Add returns the field-wise sum of m and delta.
func (m Metrics) Add(delta Metrics) Metrics {
	return Metrics{
		EarlyArrivals:  m.EarlyArrivals + delta.EarlyArrivals,
		LateArrivals:   m.LateArrivals + delta.LateArrivals,
		JustifiedCount: m.JustifiedCount + delta.JustifiedCount,
		TotalIssues:    m.TotalIssues + delta.TotalIssues,
		HolidaysWorked: m.HolidaysWorked + delta.HolidaysWorked,
		Absences:       m.Absences + delta.Absences,
		ScheduledDays:  m.ScheduledDays + delta.ScheduledDays,
		MarkedDays:     m.MarkedDays + delta.MarkedDays,
	}
}

// PerformanceRecord is the cumulative metrics row stored per worker.
type PerformanceRecord struct {
	ID         string
	EmployeeID string
	Metrics
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RankingEntry is computed on every leaderboard view and never stored.
type RankingEntry struct {
	Employee employee.Employee
	Metrics  Metrics
	Score    int
}

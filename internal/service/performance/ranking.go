package performance

import (
	"sort"

	"github.com/distripanel/panel-backend/internal/domain/employee"
	"github.com/distripanel/panel-backend/internal/domain/performance"
)

const (
	justifiedRatioThreshold = 0.8
	minScheduledDays        = 12 // floor for workers with little scheduled history
)

// Score rates cumulative metrics for the leaderboard.
func Score(m performance.Metrics) int {
	score := m.EarlyArrivals - m.LateArrivals - m.Absences

	if m.LateArrivals > 0 {
		if float64(m.JustifiedCount)/float64(m.LateArrivals) >= justifiedRatioThreshold {
			score++
		} else {
			score--
		}
	}

	switch efficiency := MarkingEfficiency(m); {
	case efficiency >= 1.0:
		score += 2
	case efficiency > 0.8:
		score++
	case efficiency < 0.5:
		score--
	}

	return score
}

// MarkingEfficiency is marked days over scheduled days, with the
// denominator floored at minScheduledDays.
func MarkingEfficiency(m performance.Metrics) float64 {
	scheduled := m.ScheduledDays
	if scheduled < minScheduledDays {
		scheduled = minScheduledDays
	}
	return float64(m.MarkedDays) / float64(scheduled)
}

// Rank scores each record and sorts best first. Records whose worker is
// unknown are left out. Equal scores keep the order of records.
func Rank(records []performance.PerformanceRecord, employees map[string]employee.Employee) []performance.RankingEntry {
	entries := make([]performance.RankingEntry, 0, len(records))
	for _, r := range records {
		emp, ok := employees[r.EmployeeID]
		if !ok {
			continue
		}
		entries = append(entries, performance.RankingEntry{
			Employee: emp,
			Metrics:  r.Metrics,
			Score:    Score(r.Metrics),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

package performance

import "context"

type PerformanceService interface {
	// GetMetrics returns zero metrics for a worker that never saved a period
	GetMetrics(ctx context.Context, employeeID string) (MetricsResponse, error)

	// GetRanking returns the leaderboard, best score first
	GetRanking(ctx context.Context) ([]RankingEntryResponse, error)
}

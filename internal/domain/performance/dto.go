package performance

type MetricsResponse struct {
	EmployeeID string `json:"employee_id"`
	Metrics
	UpdatedAt *string `json:"updated_at,omitempty"`
}

func NewMetricsResponse(r PerformanceRecord) MetricsResponse {
	resp := MetricsResponse{
		EmployeeID: r.EmployeeID,
		Metrics:    r.Metrics,
	}
	if !r.UpdatedAt.IsZero() {
		updated := r.UpdatedAt.Format("2006-01-02 15:04:05")
		resp.UpdatedAt = &updated
	}
	return resp
}

type RankingEntryResponse struct {
	Position     int    `json:"position"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Score        int    `json:"score"`
	Metrics
}

package http

import (
	"net/http"

	"github.com/distripanel/panel-backend/internal/domain/performance"
	"github.com/distripanel/panel-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PerformanceHandler interface {
	GetMetrics(w http.ResponseWriter, r *http.Request)
	GetRanking(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: performanceService,
	}
}

// GetMetrics implements PerformanceHandler.
func (h *performanceHandlerImpl) GetMetrics(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	if workerID == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	result, err := h.performanceService.GetMetrics(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetRanking implements PerformanceHandler.
func (h *performanceHandlerImpl) GetRanking(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.GetRanking(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

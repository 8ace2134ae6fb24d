package http

import (
	"encoding/json"
	"net/http"

	"github.com/distripanel/panel-backend/internal/domain/schedule"
	"github.com/distripanel/panel-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	GetShiftConfig(w http.ResponseWriter, r *http.Request)
	UpdateShiftConfig(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// GetShiftConfig implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetShiftConfig(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	if workerID == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	result, err := h.scheduleService.GetShiftConfig(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateShiftConfig implements ScheduleHandler.
func (h *scheduleHandlerImpl) UpdateShiftConfig(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateShiftConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "workerID")

	result, err := h.scheduleService.UpdateShiftConfig(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift configuration updated", result)
}

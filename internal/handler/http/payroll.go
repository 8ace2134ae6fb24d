package http

import (
	"encoding/json"
	"net/http"

	"github.com/distripanel/panel-backend/internal/domain/payroll"
	"github.com/distripanel/panel-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	// Bonus settings
	ListBonusSettings(w http.ResponseWriter, r *http.Request)
	UpdateBonusSettings(w http.ResponseWriter, r *http.Request)

	// Period adjustments
	GetAdjustments(w http.ResponseWriter, r *http.Request)
	SaveAdjustments(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== BONUS SETTINGS ==========

func (h *payrollHandlerImpl) ListBonusSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListBonusSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdateBonusSettings(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateBonusSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.Location = chi.URLParam(r, "location")

	result, err := h.payrollService.UpdateBonusSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus settings updated", result)
}

// ========== PERIOD ADJUSTMENTS ==========

func (h *payrollHandlerImpl) GetAdjustments(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	anchorDate := chi.URLParam(r, "anchorDate")

	result, err := h.payrollService.GetAdjustments(r.Context(), workerID, anchorDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) SaveAdjustments(w http.ResponseWriter, r *http.Request) {
	var req payroll.SaveAdjustmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "workerID")
	req.AnchorDate = chi.URLParam(r, "anchorDate")

	result, err := h.payrollService.SaveAdjustments(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Adjustments saved", result)
}

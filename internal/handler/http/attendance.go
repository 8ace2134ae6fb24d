package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/distripanel/panel-backend/internal/domain/attendance"
	"github.com/distripanel/panel-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ProcessReport(w http.ResponseWriter, r *http.Request)
	UploadReport(w http.ResponseWriter, r *http.Request)
	ListDayFlags(w http.ResponseWriter, r *http.Request)
	SetDayFlags(w http.ResponseWriter, r *http.Request)
	SavePerformance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ProcessReport implements AttendanceHandler.
func (h *attendanceHandlerImpl) ProcessReport(w http.ResponseWriter, r *http.Request) {
	var req attendance.ProcessReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "workerID")

	result, err := h.attendanceService.ProcessReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UploadReport implements AttendanceHandler.
func (h *attendanceHandlerImpl) UploadReport(w http.ResponseWriter, r *http.Request) {
	var req attendance.UploadReportRequest

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	// 'data' carries reference_date and adjustments; it may be omitted
	if dataJSON := r.FormValue("data"); dataJSON != "" {
		if err := json.Unmarshal([]byte(dataJSON), &req.ProcessReportRequest); err != nil {
			slog.Error("Failed to unmarshal JSON data", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.EmployeeID = chi.URLParam(r, "workerID")

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Report file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	req.File = file
	req.FileHeader = fileHeader

	result, err := h.attendanceService.ProcessSpreadsheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListDayFlags implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListDayFlags(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := attendance.DayFlagFilter{
		EmployeeID: chi.URLParam(r, "workerID"),
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
	}

	result, err := h.attendanceService.ListDayFlags(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetDayFlags implements AttendanceHandler.
func (h *attendanceHandlerImpl) SetDayFlags(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetDayFlagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "workerID")
	req.Date = chi.URLParam(r, "date")

	result, err := h.attendanceService.SetDayFlags(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day flags updated", result)
}

// SavePerformance implements AttendanceHandler.
func (h *attendanceHandlerImpl) SavePerformance(w http.ResponseWriter, r *http.Request) {
	var req attendance.ProcessReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "workerID")

	result, err := h.attendanceService.SavePerformance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance saved", result)
}

package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/distripanel/panel-backend/internal/domain/attendance"
	"github.com/distripanel/panel-backend/internal/domain/auth"
	"github.com/distripanel/panel-backend/internal/domain/employee"
	"github.com/distripanel/panel-backend/internal/domain/payroll"
	"github.com/distripanel/panel-backend/internal/domain/schedule"
	"github.com/distripanel/panel-backend/internal/domain/user"
	"github.com/distripanel/panel-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Worker errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Worker not found")

	// Report errors
	case errors.Is(err, attendance.ErrEmptyReport):
		Unprocessable(w, "EMPTY_REPORT", "No attendance records found in report")
	case errors.Is(err, attendance.ErrInvalidDateToken):
		Unprocessable(w, "INVALID_DATE", err.Error())
	case errors.Is(err, attendance.ErrInvalidSpreadsheet):
		Unprocessable(w, "INVALID_SPREADSHEET", err.Error())
	case errors.Is(err, attendance.ErrUnsupportedLocation):
		BadRequest(w, "Unsupported report location", nil)
	case errors.Is(err, attendance.ErrDayFlagNotFound):
		NotFound(w, "Day flag not found")

	// Configuration errors
	case errors.Is(err, schedule.ErrInvalidLocation), errors.Is(err, payroll.ErrInvalidLocation):
		BadRequest(w, "Invalid location", nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

package attendance

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/distripanel/panel-backend/internal/domain/employee"
	"github.com/distripanel/panel-backend/internal/domain/payroll"
	"github.com/distripanel/panel-backend/internal/domain/performance"
	"github.com/distripanel/panel-backend/internal/domain/schedule"
	"github.com/distripanel/panel-backend/internal/pkg/validator"
)

// ========================================
// REPORT PROCESSING DTOs
// ========================================

type ProcessReportRequest struct {
	EmployeeID    string                          `json:"-"`
	RawText       string                          `json:"raw_text"`
	ReferenceDate *string                         `json:"reference_date,omitempty"` // YYYY-MM-DD, defaults to today
	Adjustments   *payroll.ManualAdjustmentsInput `json:"adjustments,omitempty"`
}

func (r *ProcessReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.RawText) {
		errs = append(errs, validator.ValidationError{
			Field:   "raw_text",
			Message: "raw_text is required",
		})
	}

	if r.ReferenceDate != nil && *r.ReferenceDate != "" {
		if _, valid := validator.IsValidDate(*r.ReferenceDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "reference_date",
				Message: "reference_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UploadReportRequest struct {
	ProcessReportRequest
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UploadReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.FileHeader == nil || r.File == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "report file is required",
		})
	} else {
		ext := strings.ToLower(filepath.Ext(r.FileHeader.Filename))
		if ext != ".xlsx" && ext != ".xls" {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type: only xlsx, xls allowed",
			})
		} else if r.FileHeader.Size > 5<<20 { // 5MB
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "report file size must not exceed 5MB",
			})
		}
	}

	if r.ReferenceDate != nil && *r.ReferenceDate != "" {
		if _, valid := validator.IsValidDate(*r.ReferenceDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "reference_date",
				Message: "reference_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReportResponse struct {
	Employee    employee.EmployeeResponse    `json:"employee"`
	ShiftConfig schedule.ShiftConfigResponse `json:"shift_config"`
	Location    string                       `json:"location"`
	AnchorDate  string                       `json:"anchor_date"`
	EndDate     string                       `json:"end_date"`
	Days        []DayRecord                  `json:"days"`
	Totals      Totals                       `json:"totals"`
	Summary     payroll.PayrollSummary       `json:"summary"`
	Metrics     performance.Metrics          `json:"metrics"`
}

// ========================================
// DAY FLAG DTOs
// ========================================

type DayFlagFilter struct {
	EmployeeID string `json:"-"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
}

func (f *DayFlagFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, validStart := validator.IsValidDate(f.StartDate)
	if !validStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, validEnd := validator.IsValidDate(f.EndDate)
	if !validEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validStart && validEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetDayFlagsRequest struct {
	EmployeeID string `json:"-"`
	Date       string `json:"-"` // YYYY-MM-DD
	Flags
}

func (r *SetDayFlagsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayFlagResponse struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Flags
	UpdatedAt *string `json:"updated_at,omitempty"`
}

func NewDayFlagResponse(f DayFlag) DayFlagResponse {
	resp := DayFlagResponse{
		EmployeeID: f.EmployeeID,
		Date:       f.Date.Format(DateKeyLayout),
		Flags:      Flags{IsHoliday: f.IsHoliday, IsJustified: f.IsJustified},
	}
	if !f.UpdatedAt.IsZero() {
		updated := f.UpdatedAt.Format("2006-01-02 15:04:05")
		resp.UpdatedAt = &updated
	}
	return resp
}

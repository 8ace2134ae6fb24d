package schedule

import (
	"github.com/distripanel/panel-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdateShiftConfigRequest struct {
	EmployeeID  string          `json:"-"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	WorkDays    []string        `json:"work_days"`
	EntryTime   string          `json:"entry_time"`
	ExitTime    string          `json:"exit_time"`
	EntryTimePM *string         `json:"entry_time_pm,omitempty"`
	ExitTimePM  *string         `json:"exit_time_pm,omitempty"`
	Location    string          `json:"location"`
}

func (r *UpdateShiftConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(r.WorkDays) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "work_days",
			Message: "at least one work day is required",
		})
	}
	seen := make(map[string]bool, len(r.WorkDays))
	for _, d := range r.WorkDays {
		if !validator.IsInSlice(d, WeekdayNames) {
			errs = append(errs, validator.ValidationError{
				Field:   "work_days",
				Message: "unknown weekday: " + d,
			})
			break
		}
		if seen[d] {
			errs = append(errs, validator.ValidationError{
				Field:   "work_days",
				Message: "duplicate weekday: " + d,
			})
			break
		}
		seen[d] = true
	}

	errs = append(errs, validateShift("entry_time", "exit_time", &r.EntryTime, &r.ExitTime)...)

	switch {
	case r.EntryTimePM == nil && r.ExitTimePM == nil:
	case r.EntryTimePM == nil || r.ExitTimePM == nil:
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time_pm",
			Message: "entry_time_pm and exit_time_pm must be set together",
		})
	default:
		errs = append(errs, validateShift("entry_time_pm", "exit_time_pm", r.EntryTimePM, r.ExitTimePM)...)
	}

	if !Location(r.Location).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must be one of: matriz, sucursal",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateShift(entryField, exitField string, entry, exit *string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	in, err := ParseClock(*entry)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: entryField, Message: entryField + " must be in HH:MM format"})
	}
	out, err2 := ParseClock(*exit)
	if err2 != nil {
		errs = append(errs, validator.ValidationError{Field: exitField, Message: exitField + " must be in HH:MM format"})
	}
	if err == nil && err2 == nil && out <= in {
		errs = append(errs, validator.ValidationError{Field: exitField, Message: exitField + " must be after " + entryField})
	}
	return errs
}

// ToShiftConfig converts a validated request into the entity.
func (r *UpdateShiftConfigRequest) ToShiftConfig() ShiftConfig {
	entry, _ := ParseClock(r.EntryTime)
	exit, _ := ParseClock(r.ExitTime)
	cfg := ShiftConfig{
		EmployeeID: r.EmployeeID,
		HourlyRate: r.HourlyRate,
		WorkDays:   orderedWorkDays(r.WorkDays),
		Primary:    Shift{Entry: entry, Exit: exit},
		Location:   Location(r.Location),
	}
	if r.EntryTimePM != nil && r.ExitTimePM != nil {
		pmEntry, _ := ParseClock(*r.EntryTimePM)
		pmExit, _ := ParseClock(*r.ExitTimePM)
		cfg.Secondary = &Shift{Entry: pmEntry, Exit: pmExit}
	}
	return cfg
}

// orderedWorkDays keeps work days in calendar order regardless of input order.
func orderedWorkDays(days []string) []string {
	out := make([]string, 0, len(days))
	for _, name := range WeekdayNames {
		if validator.IsInSlice(name, days) {
			out = append(out, name)
		}
	}
	return out
}

type ShiftConfigResponse struct {
	ID          string          `json:"id,omitempty"`
	EmployeeID  string          `json:"employee_id"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	WorkDays    []string        `json:"work_days"`
	EntryTime   string          `json:"entry_time"`
	ExitTime    string          `json:"exit_time"`
	EntryTimePM *string         `json:"entry_time_pm,omitempty"`
	ExitTimePM  *string         `json:"exit_time_pm,omitempty"`
	Location    string          `json:"location"`
	IsDefault   bool            `json:"is_default"`
	UpdatedAt   *string         `json:"updated_at,omitempty"`
}

func NewShiftConfigResponse(c ShiftConfig) ShiftConfigResponse {
	resp := ShiftConfigResponse{
		ID:         c.ID,
		EmployeeID: c.EmployeeID,
		HourlyRate: c.HourlyRate,
		WorkDays:   c.WorkDays,
		EntryTime:  FormatClock(c.Primary.Entry),
		ExitTime:   FormatClock(c.Primary.Exit),
		Location:   string(c.Location),
		IsDefault:  c.IsDefault,
	}
	if c.Secondary != nil {
		entry := FormatClock(c.Secondary.Entry)
		exit := FormatClock(c.Secondary.Exit)
		resp.EntryTimePM = &entry
		resp.ExitTimePM = &exit
	}
	if !c.UpdatedAt.IsZero() {
		updated := c.UpdatedAt.Format("2006-01-02 15:04:05")
		resp.UpdatedAt = &updated
	}
	return resp
}

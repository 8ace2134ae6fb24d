package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// Location selects both the biometric report grammar and the bonus table
// that applies to a worker.
type Location string

const (
	LocationMatriz   Location = "matriz"   // reports dated DD/MM, weekday at end of line
	LocationSucursal Location = "sucursal" // reports dated DD followed by weekday abbreviation
)

var LocationValues = []string{
	string(LocationMatriz),
	string(LocationSucursal),
}

func (l Location) Valid() bool {
	switch l {
	case LocationMatriz, LocationSucursal:
		return true
	}
	return false
}

// Canonical weekday names, Monday first.
const (
	Lunes     = "Lunes"
	Martes    = "Martes"
	Miercoles = "Miércoles"
	Jueves    = "Jueves"
	Viernes   = "Viernes"
	Sabado    = "Sábado"
	Domingo   = "Domingo"
)

var WeekdayNames = []string{Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo}

// WeekdayName returns the canonical name for a time.Weekday.
func WeekdayName(d time.Weekday) string {
	if d == time.Sunday {
		return Domingo
	}
	return WeekdayNames[int(d)-1]
}

// Shift is an entry/exit pair expressed as minutes since midnight.
type Shift struct {
	Entry int
	Exit  int
}

// ScheduledHours is the length of the shift in hours.
func (s Shift) ScheduledHours() float64 {
	return float64(s.Exit-s.Entry) / 60
}

type ShiftConfig struct {
	ID         string
	EmployeeID string
	HourlyRate decimal.Decimal
	WorkDays   []string
	Primary    Shift
	Secondary  *Shift // rotating PM shift, optional
	Location   Location
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DefaultShiftConfig is substituted for workers that never saved a
// configuration.
func DefaultShiftConfig(employeeID string) ShiftConfig {
	return ShiftConfig{
		EmployeeID: employeeID,
		HourlyRate: decimal.Zero,
		WorkDays:   []string{Lunes, Martes, Miercoles, Jueves, Viernes},
		Primary:    Shift{Entry: 8 * 60, Exit: 17 * 60},
		Location:   LocationMatriz,
		IsDefault:  true,
	}
}

// WorksOn reports whether the weekday name is one of the configured work days.
func (c ShiftConfig) WorksOn(weekday string) bool {
	for _, d := range c.WorkDays {
		if d == weekday {
			return true
		}
	}
	return false
}

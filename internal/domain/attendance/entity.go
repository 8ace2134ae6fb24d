package attendance

import (
	"time"

	"github.com/distripanel/panel-backend/internal/domain/schedule"
)

// PeriodLength is the number of calendar days in a pay period (quincena).
const PeriodLength = 14

// DateKeyLayout is the canonical, display-independent key used for day flags.
const DateKeyLayout = "2006-01-02"

// RawPunch is one date line recovered from a biometric clock report.
type RawPunch struct {
	DateToken string
	Weekday   string
	Entry     *string
	Exit      *string
}

// Flags are the only operator-editable parts of a day.
type Flags struct {
	IsHoliday   bool `json:"is_holiday"`
	IsJustified bool `json:"is_justified"`
}

// FlagSet maps canonical date keys to the flags set for that date.
type FlagSet map[string]Flags

// Lookup returns the flags for a date, zero-valued when none were set.
func (f FlagSet) Lookup(date time.Time) Flags {
	if f == nil {
		return Flags{}
	}
	return f[date.Format(DateKeyLayout)]
}

// DayFlag is the persisted form of Flags.
type DayFlag struct {
	EmployeeID  string
	Date        time.Time
	IsHoliday   bool
	IsJustified bool
	UpdatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DayStatus string

const (
	StatusOnTime           DayStatus = "on time"
	StatusToleratedLate    DayStatus = "tolerated lateness"
	StatusLate10m          DayStatus = "late >10m"
	StatusLate1h           DayStatus = "late >1h"
	StatusLate2h           DayStatus = "late >2h"
	StatusIncomplete       DayStatus = "incomplete record"
	StatusJustifiedAbsence DayStatus = "justified absence"
	StatusAbsence          DayStatus = "absence"
	StatusNotWorking       DayStatus = "not working"
	StatusHoliday          DayStatus = "holiday"
	StatusHolidayWorked    DayStatus = "holiday worked"
)

// DayRecord is one day of a pay period. Entry, Exit and the flags are
// inputs; the remaining fields are filled in by classification.
type DayRecord struct {
	Date        time.Time `json:"-"`
	DateKey     string    `json:"date"`
	DateToken   string    `json:"date_token"`
	Weekday     string    `json:"weekday"`
	Entry       *string   `json:"entry,omitempty"`
	Exit        *string   `json:"exit,omitempty"`
	IsHoliday   bool      `json:"is_holiday"`
	IsJustified bool      `json:"is_justified"`

	Scheduled    bool      `json:"scheduled"`
	Hours        float64   `json:"hours"`
	PenaltyHours float64   `json:"penalty_hours"`
	Status       DayStatus `json:"status"`
	IsEarly      bool      `json:"is_early"`
	IsLate       bool      `json:"is_late"`
	MinutesLate  int       `json:"minutes_late"`
	CountsAsLate bool      `json:"-"`
}

// HasEntry and HasExit report which punches exist for the day.
func (d DayRecord) HasEntry() bool { return d.Entry != nil }
func (d DayRecord) HasExit() bool  { return d.Exit != nil }

// Worked reports whether both punches are present.
func (d DayRecord) Worked() bool { return d.HasEntry() && d.HasExit() }

// IsAbsence is true for both justified and unjustified absences.
func (d DayRecord) IsAbsence() bool {
	return d.Status == StatusAbsence || d.Status == StatusJustifiedAbsence
}

// Totals are the running sums produced while classifying a period.
type Totals struct {
	WorkedHours  float64 `json:"worked_hours"`
	PenaltyHours float64 `json:"penalty_hours"`
	LateCount    int     `json:"late_count"`
}

// PeriodReport is a fixed-length, chronologically ordered pay period.
type PeriodReport struct {
	Location   schedule.Location
	AnchorDate time.Time
	Days       [PeriodLength]DayRecord
	Totals     Totals
}

package attendance

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/distripanel/panel-backend/internal/domain/attendance"
	"github.com/distripanel/panel-backend/internal/domain/schedule"
)

// reportFormat is one clock-report dialect. Each location maps to exactly
// one format; supporting a new location means adding a variant here.
type reportFormat interface {
	// parseLine returns the punch on a date line, or false for any other line
	parseLine(line string) (attendance.RawPunch, bool)

	// anchor resolves a date token against the reference date
	anchor(token string, ref time.Time) (time.Time, error)

	// token renders a date the way the report prints it
	token(date time.Time) string
}

var reportFormats = map[schedule.Location]reportFormat{
	schedule.LocationMatriz:   slashFormat{},
	schedule.LocationSucursal: dayAbbrevFormat{},
}

func formatFor(loc schedule.Location) (reportFormat, error) {
	f, ok := reportFormats[loc]
	if !ok {
		return nil, fmt.Errorf("%w: %q", attendance.ErrUnsupportedLocation, loc)
	}
	return f, nil
}

var (
	clockToken   = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	clockPattern = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
)

// normalizeClock returns s as "HH:MM", or nil when it is not a valid time.
func normalizeClock(s string) *string {
	minutes, err := schedule.ParseClock(s)
	if err != nil {
		return nil
	}
	out := schedule.FormatClock(minutes)
	return &out
}

// ========== matriz: "DD/MM 08:01 17:03 ... Lun" ==========

const noRecordPhrase = "sin registro"

type slashFormat struct{}

func (slashFormat) parseLine(line string) (attendance.RawPunch, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.Contains(fields[0], "/") {
		return attendance.RawPunch{}, false
	}

	day, month, ok := splitDayMonth(fields[0])
	if !ok {
		return attendance.RawPunch{}, false
	}

	punch := attendance.RawPunch{
		DateToken: fmt.Sprintf("%02d/%02d", day, month),
		Weekday:   lookupWeekday(fields[len(fields)-1]),
	}

	if strings.Contains(strings.ToLower(line), noRecordPhrase) {
		return punch, true
	}
	if len(fields) > 1 && clockToken.MatchString(fields[1]) {
		punch.Entry = normalizeClock(fields[1])
	}
	if len(fields) > 2 && clockToken.MatchString(fields[2]) {
		punch.Exit = normalizeClock(fields[2])
	}
	return punch, true
}

func (slashFormat) anchor(token string, ref time.Time) (time.Time, error) {
	day, month, ok := splitDayMonth(token)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", attendance.ErrInvalidDateToken, token)
	}
	date, err := calendarDate(ref.Year(), time.Month(month), day)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", attendance.ErrInvalidDateToken, token)
	}
	// reports are always processed after the fact: a December report
	// processed in January belongs to the previous year
	if date.After(ref) {
		if prev, err := calendarDate(ref.Year()-1, time.Month(month), day); err == nil {
			date = prev
		}
	}
	return date, nil
}

func (slashFormat) token(date time.Time) string {
	return fmt.Sprintf("%02d/%02d", date.Day(), int(date.Month()))
}

// splitDayMonth reads "D/M", "DD/MM" or "DD/MM/YYYY".
func splitDayMonth(token string) (day, month int, ok bool) {
	parts := strings.Split(token, "/")
	if len(parts) < 2 {
		return 0, 0, false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > 31 {
		return 0, 0, false
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return day, month, true
}

// ========== sucursal: "DD Lu 08:01 17:03" ==========

var dayAbbrevLine = regexp.MustCompile(`^(\d{2})\s+([A-ZÁÉÍÓÚ][a-záéíóú])\S*\s*(.*)$`)

type dayAbbrevFormat struct{}

func (dayAbbrevFormat) parseLine(line string) (attendance.RawPunch, bool) {
	m := dayAbbrevLine.FindStringSubmatch(line)
	if m == nil {
		return attendance.RawPunch{}, false
	}

	punch := attendance.RawPunch{
		DateToken: m[1],
		Weekday:   lookupWeekday(m[2]),
	}

	// slots are positional: an out-of-range first time leaves entry empty
	// rather than promoting the exit
	times := clockPattern.FindAllString(m[3], 2)
	if len(times) > 0 {
		punch.Entry = normalizeClock(times[0])
	}
	if len(times) > 1 {
		punch.Exit = normalizeClock(times[1])
	}
	return punch, true
}

func (dayAbbrevFormat) anchor(token string, ref time.Time) (time.Time, error) {
	day, err := strconv.Atoi(token)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", attendance.ErrInvalidDateToken, token)
	}
	date, err := calendarDate(ref.Year(), ref.Month(), day)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", attendance.ErrInvalidDateToken, token)
	}
	// a report starting late last month, processed early this month
	if date.After(ref) {
		prevMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		if prev, err := calendarDate(prevMonth.Year(), prevMonth.Month(), day); err == nil {
			date = prev
		}
	}
	return date, nil
}

func (dayAbbrevFormat) token(date time.Time) string {
	return fmt.Sprintf("%02d", date.Day())
}

// calendarDate builds a naive date, rejecting overflow such as 31/02.
func calendarDate(year int, month time.Month, day int) (time.Time, error) {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != month {
		return time.Time{}, fmt.Errorf("day %d does not exist in %s %d", day, month, year)
	}
	return date, nil
}

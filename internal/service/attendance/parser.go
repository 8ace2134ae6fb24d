package attendance

import (
	"strings"
	"unicode"

	"github.com/distripanel/panel-backend/internal/domain/attendance"
	"github.com/distripanel/panel-backend/internal/domain/schedule"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ParseReport extracts one RawPunch per date line of a clock report.
// Table headers, separators and unrecognised lines are dropped, so an
// empty result is a normal outcome meaning there is nothing to process.
func ParseReport(raw string, loc schedule.Location) ([]attendance.RawPunch, error) {
	format, err := formatFor(loc)
	if err != nil {
		return nil, err
	}

	var punches []attendance.RawPunch
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isTableDecoration(line) {
			continue
		}
		if punch, ok := format.parseLine(line); ok {
			punches = append(punches, punch)
		}
	}
	return punches, nil
}

func isTableDecoration(line string) bool {
	return strings.Contains(strings.ToLower(line), "tabla") || strings.Contains(line, "==")
}

var weekdayByPrefix = map[string]string{
	"lu": schedule.Lunes,
	"ma": schedule.Martes,
	"mi": schedule.Miercoles,
	"ju": schedule.Jueves,
	"vi": schedule.Viernes,
	"sa": schedule.Sabado,
	"do": schedule.Domingo,
}

var weekdayByName = map[string]string{
	"lunes":     schedule.Lunes,
	"martes":    schedule.Martes,
	"miercoles": schedule.Miercoles,
	"jueves":    schedule.Jueves,
	"viernes":   schedule.Viernes,
	"sabado":    schedule.Sabado,
	"domingo":   schedule.Domingo,
}

// lookupWeekday maps "Lu", "lun.", "Miércoles" and similar to the canonical
// weekday name. Unknown tokens map to "".
func lookupWeekday(token string) string {
	key := foldAccents(strings.ToLower(strings.Trim(token, ".,;:")))
	if name, ok := weekdayByName[key]; ok {
		return name
	}
	if len(key) >= 2 {
		return weekdayByPrefix[key[:2]]
	}
	return ""
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

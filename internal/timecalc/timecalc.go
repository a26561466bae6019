// Package timecalc contains the pure work-hour arithmetic and calendar
// helpers the rest of the service is built on. All functions are
// deterministic and side-effect free; dates and times are naive local
// wall-clock values ("YYYY-MM-DD" and "HH:MM").
package timecalc

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Config holds the work-hour calculation constants. The zero value is not
// usable; start from DefaultConfig and override per deployment.
type Config struct {
	// StandardHours is the daily threshold beyond which hours count as overtime.
	StandardHours float64
	// LunchBreakHours is deducted from every shift before computing work hours.
	LunchBreakHours float64
}

// DefaultConfig returns the stock configuration: a 10-hour standard day and
// a 1-hour lunch break.
func DefaultConfig() Config {
	return Config{
		StandardHours:   10.0,
		LunchBreakHours: 1.0,
	}
}

// DateRange is an inclusive pair of formatted dates with Start <= End.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WorkHours computes the net hours worked between two wall-clock times on
// the same day, after deducting the lunch break. The result is floored at
// zero and rounded to two decimals. A check-out earlier than check-in is
// not interpreted as an overnight shift; it clamps to zero and is rejected
// upstream by validation.
func WorkHours(checkIn, checkOut string, lunchBreakHours float64) float64 {
	in, okIn := MinuteOfDay(checkIn)
	out, okOut := MinuteOfDay(checkOut)
	if !okIn || !okOut {
		return 0
	}

	totalHours := float64(out-in) / 60.0
	actual := totalHours - lunchBreakHours
	if actual < 0 {
		actual = 0
	}
	return Round2(actual)
}

// Overtime computes the portion of workHours exceeding standardHours,
// floored at zero and rounded to two decimals.
func Overtime(workHours, standardHours float64) float64 {
	overtime := Round2(workHours - standardHours)
	if overtime < 0 {
		return 0
	}
	return overtime
}

// WorkHours applies the configured lunch break.
func (c Config) WorkHours(checkIn, checkOut string) float64 {
	return WorkHours(checkIn, checkOut, c.LunchBreakHours)
}

// Overtime applies the configured standard-hours threshold.
func (c Config) Overtime(workHours float64) float64 {
	return Overtime(workHours, c.StandardHours)
}

// MinuteOfDay parses an "HH:MM" string into minutes since midnight.
func MinuteOfDay(s string) (int, bool) {
	if !timePattern.MatchString(s) {
		return 0, false
	}
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, false
	}
	return hour*60 + minute, true
}

// MinutesToHours converts minutes to hours rounded to two decimals.
func MinutesToHours(minutes int) float64 {
	return Round2(float64(minutes) / 60.0)
}

// IsValidTime reports whether s is a well-formed "HH:MM" wall-clock time.
func IsValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// IsValidDate reports whether s is a well-formed "YYYY-MM-DD" string that
// denotes a real calendar date (so "2024-02-30" is rejected).
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a date as zero-padded "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
// A date falling on Sunday belongs to the week whose Monday is six days
// earlier.
func WeekRange(t time.Time) DateRange {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	monday := t.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return DateRange{
		Start: FormatDate(monday),
		End:   FormatDate(sunday),
	}
}

// MonthRange returns the first and last calendar day of t's month.
func MonthRange(t time.Time) DateRange {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return DateRange{
		Start: FormatDate(first),
		End:   FormatDate(last),
	}
}

// FormatHoursLabel renders a decimal hour count as "H hours M minutes".
// Minutes are rounded first; when rounding reaches 60 the carry moves into
// the hour part, so 7.999 renders as "8 hours 0 minutes".
func FormatHoursLabel(hours float64) string {
	h := int(math.Floor(hours))
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%d hours %d minutes", h, m)
}

// WorkDaysBetween counts the calendar days in [start, end] inclusive whose
// weekday is Monday through Friday.
func WorkDaysBetween(start, end time.Time) int {
	workDays := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			workDays++
		}
	}
	return workDays
}

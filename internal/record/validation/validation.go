// Package validation performs structural and semantic checks on inbound
// record payloads and query parameters. Checks accumulate every applicable
// error instead of failing fast, and pagination is normalized rather than
// rejected.
package validation

import (
	"strconv"
	"strings"

	"github.com/timeclock/timeclock-backend/internal/timecalc"
)

const (
	maxNoteLength = 200
	maxRangeDays  = 365

	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 100
)

// RecordPayload is the sanitized shape of an inbound time record.
type RecordPayload struct {
	Date         string `json:"date"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
	Note         string `json:"note,omitempty"`
}

// Result is the outcome of a validation pass. Errors maps each offending
// field to a message; a field appears at most once.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Pagination is a normalized page/limit pair, always usable as-is.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Validator validates record payloads against the configured work-hour
// constants.
type Validator struct {
	cfg timecalc.Config
}

// New creates a validator for the given work-hour configuration.
func New(cfg timecalc.Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateTimeRecord checks a record payload. All applicable errors are
// collected: field presence and format, check-out strictly after check-in,
// strictly positive derived work hours, and note length.
func (v *Validator) ValidateTimeRecord(p RecordPayload) Result {
	errs := make(map[string]string)

	if p.Date == "" {
		errs["date"] = "date is required"
	} else if !timecalc.IsValidDate(p.Date) {
		errs["date"] = "date must be a valid date formatted YYYY-MM-DD"
	}

	if p.CheckInTime == "" {
		errs["check_in_time"] = "check-in time is required"
	} else if !timecalc.IsValidTime(p.CheckInTime) {
		errs["check_in_time"] = "check-in time must be formatted HH:MM"
	}

	if p.CheckOutTime == "" {
		errs["check_out_time"] = "check-out time is required"
	} else if !timecalc.IsValidTime(p.CheckOutTime) {
		errs["check_out_time"] = "check-out time must be formatted HH:MM"
	}

	if timecalc.IsValidTime(p.CheckInTime) && timecalc.IsValidTime(p.CheckOutTime) {
		in, _ := timecalc.MinuteOfDay(p.CheckInTime)
		out, _ := timecalc.MinuteOfDay(p.CheckOutTime)

		if out <= in {
			errs["check_out_time"] = "check-out time must be later than check-in time"
		}

		if v.cfg.WorkHours(p.CheckInTime, p.CheckOutTime) <= 0 {
			errs["work_hours"] = "working time is too short after the lunch break deduction"
		}
	}

	if len(p.Note) > maxNoteLength {
		errs["note"] = "note must be 200 characters or fewer"
	}

	return resultFrom(errs)
}

// ValidatePagination normalizes raw page/limit query values. It never
// errors: unparseable values fall back to defaults, page is floored at 1
// and limit is clamped into [1, 100].
func (v *Validator) ValidatePagination(page, limit string) Pagination {
	p, err := strconv.Atoi(page)
	if err != nil {
		p = defaultPage
	}
	if p < 1 {
		p = 1
	}

	l, err := strconv.Atoi(limit)
	if err != nil {
		l = defaultLimit
	}
	if l < 1 {
		l = 1
	}
	if l > maxLimit {
		l = maxLimit
	}

	return Pagination{Page: p, Limit: l}
}

// ValidateDateRange checks a start/end date pair: both present and valid,
// start not after end, and a span of at most 365 days measured as a raw
// duration.
func (v *Validator) ValidateDateRange(start, end string) Result {
	errs := make(map[string]string)

	if start == "" {
		errs["start"] = "start date is required"
	} else if !timecalc.IsValidDate(start) {
		errs["start"] = "start date must be a valid date formatted YYYY-MM-DD"
	}

	if end == "" {
		errs["end"] = "end date is required"
	} else if !timecalc.IsValidDate(end) {
		errs["end"] = "end date must be a valid date formatted YYYY-MM-DD"
	}

	if timecalc.IsValidDate(start) && timecalc.IsValidDate(end) {
		startDate, _ := timecalc.ParseDate(start)
		endDate, _ := timecalc.ParseDate(end)

		if startDate.After(endDate) {
			errs["range"] = "start date must not be after end date"
		} else if endDate.Sub(startDate).Hours() > maxRangeDays*24 {
			errs["range"] = "date range must not exceed one year"
		}
	}

	return resultFrom(errs)
}

// SanitizeRecordPayload projects a decoded JSON body down to the allowed
// record fields, trimming surrounding whitespace from string values.
// Unknown fields are dropped silently.
func SanitizeRecordPayload(raw map[string]interface{}) RecordPayload {
	get := func(field string) string {
		value, ok := raw[field]
		if !ok {
			return ""
		}
		s, ok := value.(string)
		if !ok {
			return ""
		}
		return strings.TrimSpace(s)
	}

	return RecordPayload{
		Date:         get("date"),
		CheckInTime:  get("check_in_time"),
		CheckOutTime: get("check_out_time"),
		Note:         get("note"),
	}
}

func resultFrom(errs map[string]string) Result {
	if len(errs) == 0 {
		return Result{Valid: true}
	}
	return Result{Valid: false, Errors: errs}
}

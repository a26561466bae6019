package timecalc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeclock/timeclock-backend/internal/timecalc"
)

func TestWorkHours(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		lunch    float64
		want     float64
	}{
		{"standard day", "09:00", "20:00", 1.0, 10.0},
		{"short day", "09:00", "17:30", 1.0, 7.5},
		{"uneven minutes round to two decimals", "09:10", "17:30", 1.0, 7.33},
		{"shift shorter than lunch clamps to zero", "09:00", "09:30", 1.0, 0},
		{"shift exactly the lunch length", "09:00", "10:00", 1.0, 0},
		{"check-out before check-in clamps to zero", "18:00", "09:00", 1.0, 0},
		{"no lunch deduction", "09:00", "17:00", 0, 8.0},
		{"malformed check-in", "9am", "17:00", 1.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timecalc.WorkHours(tt.checkIn, tt.checkOut, tt.lunch)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestOvertime(t *testing.T) {
	tests := []struct {
		name      string
		workHours float64
		standard  float64
		want      float64
	}{
		{"below threshold", 8.0, 10.0, 0},
		{"exactly at threshold", 10.0, 10.0, 0},
		{"above threshold", 11.5, 10.0, 1.5},
		{"fractional overtime rounds", 10.333, 10.0, 0.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timecalc.Overtime(tt.workHours, tt.standard)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestConfigMethods(t *testing.T) {
	cfg := timecalc.DefaultConfig()

	work := cfg.WorkHours("08:00", "20:00")
	assert.InDelta(t, 11.0, work, 0.001)
	assert.InDelta(t, 1.0, cfg.Overtime(work), 0.001)
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 7.33, timecalc.Round2(7.3333), 0.0001)
	assert.InDelta(t, 7.34, timecalc.Round2(7.336), 0.0001)
	assert.InDelta(t, 0, timecalc.Round2(0.0001), 0.0001)
}

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"00:00", 0, true},
		{"9:05", 545, true},
		{"09:05", 545, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := timecalc.MinuteOfDay(tt.in)
		assert.Equal(t, tt.wantOK, ok, "MinuteOfDay(%q)", tt.in)
		assert.Equal(t, tt.want, got, "MinuteOfDay(%q)", tt.in)
	}
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, timecalc.IsValidDate("2024-01-15"))
	assert.True(t, timecalc.IsValidDate("2024-02-29"), "leap day in a leap year")

	assert.False(t, timecalc.IsValidDate("2023-02-29"), "leap day outside a leap year")
	assert.False(t, timecalc.IsValidDate("2024-02-30"))
	assert.False(t, timecalc.IsValidDate("2024-13-01"))
	assert.False(t, timecalc.IsValidDate("2024-1-15"), "unpadded month")
	assert.False(t, timecalc.IsValidDate("15.01.2024"))
	assert.False(t, timecalc.IsValidDate(""))
}

func TestIsValidTime(t *testing.T) {
	assert.True(t, timecalc.IsValidTime("09:00"))
	assert.True(t, timecalc.IsValidTime("9:00"))
	assert.True(t, timecalc.IsValidTime("23:59"))

	assert.False(t, timecalc.IsValidTime("24:00"))
	assert.False(t, timecalc.IsValidTime("09:60"))
	assert.False(t, timecalc.IsValidTime("0900"))
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantStart string
		wantEnd   string
	}{
		{"monday maps to itself", "2024-01-01", "2024-01-01", "2024-01-07"},
		{"midweek", "2024-01-03", "2024-01-01", "2024-01-07"},
		{"sunday belongs to the preceding monday", "2024-01-07", "2024-01-01", "2024-01-07"},
		{"week spanning a month boundary", "2024-01-31", "2024-01-29", "2024-02-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := timecalc.ParseDate(tt.date)
			require.NoError(t, err)

			week := timecalc.WeekRange(day)
			assert.Equal(t, tt.wantStart, week.Start)
			assert.Equal(t, tt.wantEnd, week.End)
		})
	}
}

func TestMonthRange(t *testing.T) {
	day, err := timecalc.ParseDate("2024-02-15")
	require.NoError(t, err)

	month := timecalc.MonthRange(day)
	assert.Equal(t, "2024-02-01", month.Start)
	assert.Equal(t, "2024-02-29", month.End, "leap february")

	day, err = timecalc.ParseDate("2023-12-31")
	require.NoError(t, err)

	month = timecalc.MonthRange(day)
	assert.Equal(t, "2023-12-01", month.Start)
	assert.Equal(t, "2023-12-31", month.End)
}

func TestFormatHoursLabel(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{8.0, "8 hours 0 minutes"},
		{7.5, "7 hours 30 minutes"},
		{7.33, "7 hours 20 minutes"},
		{7.999, "8 hours 0 minutes"},
		{0, "0 hours 0 minutes"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, timecalc.FormatHoursLabel(tt.hours), "FormatHoursLabel(%v)", tt.hours)
	}
}

func TestWorkDaysBetween(t *testing.T) {
	// 2024-01-01 is a Monday.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, timecalc.WorkDaysBetween(start, start.AddDate(0, 0, 6)), "full week")
	assert.Equal(t, 1, timecalc.WorkDaysBetween(start, start), "single weekday")
	assert.Equal(t, 0, timecalc.WorkDaysBetween(start.AddDate(0, 0, 5), start.AddDate(0, 0, 6)), "weekend only")
	assert.Equal(t, 23, timecalc.WorkDaysBetween(start, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)), "january 2024")
}

func TestParseFormatRoundTrip(t *testing.T) {
	day, err := timecalc.ParseDate("2024-07-09")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-09", timecalc.FormatDate(day))
}

func TestMinutesToHours(t *testing.T) {
	assert.InDelta(t, 1.5, timecalc.MinutesToHours(90), 0.001)
	assert.InDelta(t, 0.17, timecalc.MinutesToHours(10), 0.001)
}

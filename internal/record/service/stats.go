package service

import (
	"context"

	"github.com/timeclock/timeclock-backend/internal/record/repository"
	"github.com/timeclock/timeclock-backend/internal/timecalc"
	"github.com/timeclock/timeclock-backend/pkg/logger"
)

// StatsService aggregates stored records into daily, weekly, monthly and
// free-range work-hour summaries.
type StatsService struct {
	store  RecordStore
	logger *logger.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(store RecordStore, log *logger.Logger) *StatsService {
	return &StatsService{
		store:  store,
		logger: log,
	}
}

// DayStats is the work-hour summary of a single date. HasRecord is false
// when no record exists; the hour figures are then zero and the time
// fields are omitted.
type DayStats struct {
	Date          string  `json:"date"`
	WorkHours     float64 `json:"work_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	HasRecord     bool    `json:"has_record"`
	CheckInTime   string  `json:"check_in_time,omitempty"`
	CheckOutTime  string  `json:"check_out_time,omitempty"`
	Note          string  `json:"note,omitempty"`
}

// RangeTotals holds the aggregated figures shared by every multi-day
// summary. WorkDays counts the records in the range, not the weekdays.
type RangeTotals struct {
	TotalWorkHours     float64                  `json:"total_work_hours"`
	TotalOvertimeHours float64                  `json:"total_overtime_hours"`
	WorkDays           int                      `json:"work_days"`
	AverageWorkHours   float64                  `json:"average_work_hours"`
	Records            []*repository.TimeRecord `json:"records"`
}

// WeekStats is the summary of one Monday-to-Sunday week
type WeekStats struct {
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
	RangeTotals
}

// MonthStats is the summary of one calendar month
type MonthStats struct {
	MonthStart string `json:"month_start"`
	MonthEnd   string `json:"month_end"`
	RangeTotals
}

// RangeStats is the summary of a caller-chosen date range
type RangeStats struct {
	DateRange timecalc.DateRange `json:"date_range"`
	RangeTotals
}

// DailyStats summarizes the record for a single date. Dates without a
// record yield a zeroed summary rather than an error.
func (s *StatsService) DailyStats(ctx context.Context, date string) (*DayStats, error) {
	records, err := s.store.ListByDateRange(ctx, date, date)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return &DayStats{Date: date}, nil
	}

	rec := records[0]
	stats := &DayStats{
		Date:          rec.Date,
		WorkHours:     rec.WorkHours,
		OvertimeHours: rec.OvertimeHours,
		HasRecord:     true,
		CheckInTime:   rec.CheckInTime,
		CheckOutTime:  rec.CheckOutTime,
	}
	if rec.Note != nil {
		stats.Note = *rec.Note
	}

	return stats, nil
}

// WeeklyStats summarizes the Monday-to-Sunday week containing date
func (s *StatsService) WeeklyStats(ctx context.Context, date string) (*WeekStats, error) {
	day, err := timecalc.ParseDate(date)
	if err != nil {
		return nil, err
	}

	week := timecalc.WeekRange(day)
	totals, err := s.rangeTotals(ctx, week.Start, week.End)
	if err != nil {
		return nil, err
	}

	return &WeekStats{
		WeekStart:   week.Start,
		WeekEnd:     week.End,
		RangeTotals: totals,
	}, nil
}

// MonthlyStats summarizes the calendar month containing date
func (s *StatsService) MonthlyStats(ctx context.Context, date string) (*MonthStats, error) {
	day, err := timecalc.ParseDate(date)
	if err != nil {
		return nil, err
	}

	month := timecalc.MonthRange(day)
	totals, err := s.rangeTotals(ctx, month.Start, month.End)
	if err != nil {
		return nil, err
	}

	return &MonthStats{
		MonthStart:  month.Start,
		MonthEnd:    month.End,
		RangeTotals: totals,
	}, nil
}

// RangeStats summarizes an arbitrary inclusive date range. The range is
// assumed to be validated upstream.
func (s *StatsService) RangeStats(ctx context.Context, start, end string) (*RangeStats, error) {
	totals, err := s.rangeTotals(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &RangeStats{
		DateRange:   timecalc.DateRange{Start: start, End: end},
		RangeTotals: totals,
	}, nil
}

func (s *StatsService) rangeTotals(ctx context.Context, start, end string) (RangeTotals, error) {
	records, err := s.store.ListByDateRange(ctx, start, end)
	if err != nil {
		return RangeTotals{}, err
	}
	if records == nil {
		records = []*repository.TimeRecord{}
	}

	var totalWork, totalOvertime float64
	for _, rec := range records {
		totalWork += rec.WorkHours
		totalOvertime += rec.OvertimeHours
	}

	totals := RangeTotals{
		TotalWorkHours:     timecalc.Round2(totalWork),
		TotalOvertimeHours: timecalc.Round2(totalOvertime),
		WorkDays:           len(records),
		Records:            records,
	}
	if len(records) > 0 {
		totals.AverageWorkHours = timecalc.Round2(totalWork / float64(len(records)))
	}

	return totals, nil
}

package handler

import (
	"net/http"

	"github.com/timeclock/timeclock-backend/internal/record/service"
	"github.com/timeclock/timeclock-backend/internal/record/validation"
	"github.com/timeclock/timeclock-backend/internal/timecalc"
	"github.com/timeclock/timeclock-backend/pkg/errors"
	"github.com/timeclock/timeclock-backend/pkg/httputil"
	"github.com/timeclock/timeclock-backend/pkg/logger"
)

// StatsHandler handles work-hour statistics endpoints
type StatsHandler struct {
	stats     *service.StatsService
	validator *validation.Validator
	logger    *logger.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats *service.StatsService, validator *validation.Validator, log *logger.Logger) *StatsHandler {
	return &StatsHandler{
		stats:     stats,
		validator: validator,
		logger:    log,
	}
}

// Daily handles GET /stats/daily?date=YYYY-MM-DD
func (h *StatsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !timecalc.IsValidDate(date) {
		httputil.Error(w, errors.BadRequest("date must be a valid date formatted YYYY-MM-DD"))
		return
	}

	stats, err := h.stats.DailyStats(r.Context(), date)
	if err != nil {
		h.logger.Error().Err(err).Str("date", date).Msg("failed to compute daily stats")
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, stats)
}

// Weekly handles GET /stats/weekly?date=YYYY-MM-DD
func (h *StatsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !timecalc.IsValidDate(date) {
		httputil.Error(w, errors.BadRequest("date must be a valid date formatted YYYY-MM-DD"))
		return
	}

	stats, err := h.stats.WeeklyStats(r.Context(), date)
	if err != nil {
		h.logger.Error().Err(err).Str("date", date).Msg("failed to compute weekly stats")
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, stats)
}

// Monthly handles GET /stats/monthly?date=YYYY-MM-DD
func (h *StatsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !timecalc.IsValidDate(date) {
		httputil.Error(w, errors.BadRequest("date must be a valid date formatted YYYY-MM-DD"))
		return
	}

	stats, err := h.stats.MonthlyStats(r.Context(), date)
	if err != nil {
		h.logger.Error().Err(err).Str("date", date).Msg("failed to compute monthly stats")
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, stats)
}

// Range handles GET /stats/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *StatsHandler) Range(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	result := h.validator.ValidateDateRange(start, end)
	if !result.Valid {
		httputil.Error(w, errors.Validation(result.Errors))
		return
	}

	stats, err := h.stats.RangeStats(r.Context(), start, end)
	if err != nil {
		h.logger.Error().Err(err).Str("start", start).Str("end", end).Msg("failed to compute range stats")
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, stats)
}

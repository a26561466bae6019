package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/timeclock/timeclock-backend/internal/record/service"
	"github.com/timeclock/timeclock-backend/internal/record/validation"
	"github.com/timeclock/timeclock-backend/pkg/errors"
	"github.com/timeclock/timeclock-backend/pkg/httputil"
	"github.com/timeclock/timeclock-backend/pkg/logger"
)

// RecordHandler handles time record HTTP endpoints
type RecordHandler struct {
	service *service.RecordService
	logger  *logger.Logger
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(svc *service.RecordService, log *logger.Logger) *RecordHandler {
	return &RecordHandler{
		service: svc,
		logger:  log,
	}
}

// List handles GET /records
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	page := h.service.Validator().ValidatePagination(
		r.URL.Query().Get("page"),
		r.URL.Query().Get("limit"),
	)

	result, err := h.service.List(r.Context(), page)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list records")
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// Create handles POST /records
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if err := httputil.DecodeJSON(r, &body); err != nil {
		httputil.Error(w, err)
		return
	}

	payload := validation.SanitizeRecordPayload(body)

	rec, err := h.service.Create(r.Context(), payload)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, rec)
}

// Get handles GET /records/{id}
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	rec, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, rec)
}

// Update handles PUT /records/{id}
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	var body map[string]interface{}
	if err := httputil.DecodeJSON(r, &body); err != nil {
		httputil.Error(w, err)
		return
	}

	payload := validation.SanitizeRecordPayload(body)

	rec, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /records/{id}
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.NoContent(w)
}

func recordID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.BadRequest("invalid record id")
	}
	return id, nil
}

package service

import (
	"context"
	"math"

	"github.com/timeclock/timeclock-backend/internal/record/events"
	"github.com/timeclock/timeclock-backend/internal/record/repository"
	"github.com/timeclock/timeclock-backend/internal/record/validation"
	"github.com/timeclock/timeclock-backend/internal/timecalc"
	"github.com/timeclock/timeclock-backend/pkg/errors"
	"github.com/timeclock/timeclock-backend/pkg/logger"
)

// RecordStore is the persistence contract the services depend on. It is
// satisfied by repository.RecordRepository; aggregation code never sees
// the storage engine behind it.
type RecordStore interface {
	Insert(ctx context.Context, rec *repository.TimeRecord) error
	GetByID(ctx context.Context, id int64) (*repository.TimeRecord, error)
	ListByDateRange(ctx context.Context, start, end string) ([]*repository.TimeRecord, error)
	Update(ctx context.Context, rec *repository.TimeRecord) error
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
	ListPage(ctx context.Context, offset, limit int) ([]*repository.TimeRecord, error)
}

// RecordService handles the time record lifecycle: sanitize, validate,
// derive work-hour figures, persist.
type RecordService struct {
	store     RecordStore
	cfg       timecalc.Config
	validator *validation.Validator
	publisher *events.RecordEventPublisher
	logger    *logger.Logger
}

// NewRecordService creates a new record service. publisher may be nil when
// no broker is configured.
func NewRecordService(
	store RecordStore,
	cfg timecalc.Config,
	publisher *events.RecordEventPublisher,
	log *logger.Logger,
) *RecordService {
	return &RecordService{
		store:     store,
		cfg:       cfg,
		validator: validation.New(cfg),
		publisher: publisher,
		logger:    log,
	}
}

// Validator exposes the service's validator for handlers that normalize
// query parameters.
func (s *RecordService) Validator() *validation.Validator {
	return s.validator
}

// RecordPage is one page of records plus pagination bookkeeping
type RecordPage struct {
	Records    []*repository.TimeRecord `json:"records"`
	Pagination PageInfo                 `json:"pagination"`
}

// PageInfo describes the position of a page within the full record set
type PageInfo struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalRecords int64 `json:"total_records"`
	HasNext      bool  `json:"has_next"`
	HasPrev      bool  `json:"has_prev"`
}

// Create validates a sanitized payload, derives work and overtime hours,
// and persists the record. Validation failures return a structured
// validation error with every offending field.
func (s *RecordService) Create(ctx context.Context, payload validation.RecordPayload) (*repository.TimeRecord, error) {
	result := s.validator.ValidateTimeRecord(payload)
	if !result.Valid {
		return nil, errors.Validation(result.Errors)
	}

	rec := s.buildRecord(payload)
	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err
	}

	s.publisher.PublishRecordCreated(ctx, rec)

	s.logger.Info().
		Int64("record_id", rec.ID).
		Str("date", rec.Date).
		Float64("work_hours", rec.WorkHours).
		Msg("time record created")

	return rec, nil
}

// Update revalidates the payload, recomputes the derived figures and
// rewrites the stored record. Returns not-found when the id is absent.
func (s *RecordService) Update(ctx context.Context, id int64, payload validation.RecordPayload) (*repository.TimeRecord, error) {
	result := s.validator.ValidateTimeRecord(payload)
	if !result.Valid {
		return nil, errors.Validation(result.Errors)
	}

	rec := s.buildRecord(payload)
	rec.ID = id

	if err := s.store.Update(ctx, rec); err != nil {
		return nil, err
	}

	// Re-read for store-assigned timestamps
	updated, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publisher.PublishRecordUpdated(ctx, updated)

	return updated, nil
}

// Get gets a record by id
func (s *RecordService) Get(ctx context.Context, id int64) (*repository.TimeRecord, error) {
	return s.store.GetByID(ctx, id)
}

// Delete removes a record by id
func (s *RecordService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.publisher.PublishRecordDeleted(ctx, id)
	return nil
}

// List returns one page of records, newest first, with pagination info
func (s *RecordService) List(ctx context.Context, page validation.Pagination) (*RecordPage, error) {
	total, err := s.store.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListPage(ctx, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*repository.TimeRecord{}
	}

	totalPages := int(math.Ceil(float64(total) / float64(page.Limit)))

	return &RecordPage{
		Records: records,
		Pagination: PageInfo{
			CurrentPage:  page.Page,
			TotalPages:   totalPages,
			TotalRecords: total,
			HasNext:      page.Page < totalPages,
			HasPrev:      page.Page > 1,
		},
	}, nil
}

func (s *RecordService) buildRecord(payload validation.RecordPayload) *repository.TimeRecord {
	workHours := s.cfg.WorkHours(payload.CheckInTime, payload.CheckOutTime)

	rec := &repository.TimeRecord{
		Date:          payload.Date,
		CheckInTime:   payload.CheckInTime,
		CheckOutTime:  payload.CheckOutTime,
		WorkHours:     workHours,
		OvertimeHours: s.cfg.Overtime(workHours),
	}
	if payload.Note != "" {
		note := payload.Note
		rec.Note = &note
	}
	return rec
}

package service_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeclock/timeclock-backend/internal/record/repository"
	"github.com/timeclock/timeclock-backend/internal/record/service"
	"github.com/timeclock/timeclock-backend/internal/record/validation"
	"github.com/timeclock/timeclock-backend/internal/timecalc"
	"github.com/timeclock/timeclock-backend/pkg/errors"
	"github.com/timeclock/timeclock-backend/pkg/logger"
)

// fakeStore is an in-memory RecordStore for service tests
type fakeStore struct {
	records map[int64]*repository.TimeRecord
	nextID  int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records: make(map[int64]*repository.TimeRecord),
		nextID:  1,
	}
}

func (s *fakeStore) Insert(_ context.Context, rec *repository.TimeRecord) error {
	rec.ID = s.nextID
	s.nextID++
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt

	stored := *rec
	s.records[rec.ID] = &stored
	return nil
}

func (s *fakeStore) GetByID(_ context.Context, id int64) (*repository.TimeRecord, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, errors.NotFound("time_record")
	}
	copied := *rec
	return &copied, nil
}

func (s *fakeStore) ListByDateRange(_ context.Context, start, end string) ([]*repository.TimeRecord, error) {
	var out []*repository.TimeRecord
	for _, rec := range s.records {
		if rec.Date >= start && rec.Date <= end {
			copied := *rec
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *fakeStore) Update(_ context.Context, rec *repository.TimeRecord) error {
	existing, ok := s.records[rec.ID]
	if !ok {
		return errors.NotFound("time_record")
	}
	updated := *rec
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	s.records[rec.ID] = &updated
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.records[id]; !ok {
		return errors.NotFound("time_record")
	}
	delete(s.records, id)
	return nil
}

func (s *fakeStore) CountAll(_ context.Context) (int64, error) {
	return int64(len(s.records)), nil
}

func (s *fakeStore) ListPage(_ context.Context, offset, limit int) ([]*repository.TimeRecord, error) {
	all, _ := s.ListByDateRange(context.Background(), "0000-01-01", "9999-12-31")
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func newRecordService(store service.RecordStore) *service.RecordService {
	log := logger.New("test", "development")
	return service.NewRecordService(store, timecalc.DefaultConfig(), nil, log)
}

func TestRecordService_Create(t *testing.T) {
	store := newFakeStore()
	svc := newRecordService(store)

	rec, err := svc.Create(context.Background(), validation.RecordPayload{
		Date:         "2024-03-15",
		CheckInTime:  "08:00",
		CheckOutTime: "20:00",
		Note:         "long day",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), rec.ID)
	assert.InDelta(t, 11.0, rec.WorkHours, 0.001, "12 hours minus the lunch break")
	assert.InDelta(t, 1.0, rec.OvertimeHours, 0.001)
	require.NotNil(t, rec.Note)
	assert.Equal(t, "long day", *rec.Note)
}

func TestRecordService_Create_EmptyNoteStoredAsNull(t *testing.T) {
	svc := newRecordService(newFakeStore())

	rec, err := svc.Create(context.Background(), validation.RecordPayload{
		Date:         "2024-03-15",
		CheckInTime:  "09:00",
		CheckOutTime: "18:00",
	})
	require.NoError(t, err)
	assert.Nil(t, rec.Note)
}

func TestRecordService_Create_Invalid(t *testing.T) {
	svc := newRecordService(newFakeStore())

	rec, err := svc.Create(context.Background(), validation.RecordPayload{
		Date:         "2024-03-15",
		CheckInTime:  "09:00",
		CheckOutTime: "09:30",
	})
	assert.Nil(t, rec)

	var appErr *errors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Contains(t, appErr.Details, "work_hours")
}

func TestRecordService_Update(t *testing.T) {
	store := newFakeStore()
	svc := newRecordService(store)

	created, err := svc.Create(context.Background(), validation.RecordPayload{
		Date:         "2024-03-15",
		CheckInTime:  "09:00",
		CheckOutTime: "18:00",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, validation.RecordPayload{
		Date:         "2024-03-15",
		CheckInTime:  "08:00",
		CheckOutTime: "21:00",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.InDelta(t, 12.0, updated.WorkHours, 0.001, "hours recomputed on update")
	assert.InDelta(t, 2.0, updated.OvertimeHours, 0.001)
}

func TestRecordService_Update_NotFound(t *testing.T) {
	svc := newRecordService(newFakeStore())

	_, err := svc.Update(context.Background(), 404, validation.RecordPayload{
		Date:         "2024-03-15",
		CheckInTime:  "09:00",
		CheckOutTime: "18:00",
	})
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestRecordService_Delete_NotFound(t *testing.T) {
	svc := newRecordService(newFakeStore())

	err := svc.Delete(context.Background(), 404)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestRecordService_List(t *testing.T) {
	store := newFakeStore()
	svc := newRecordService(store)

	for _, date := range []string{"2024-03-11", "2024-03-12", "2024-03-13"} {
		_, err := svc.Create(context.Background(), validation.RecordPayload{
			Date:         date,
			CheckInTime:  "09:00",
			CheckOutTime: "18:00",
		})
		require.NoError(t, err)
	}

	page, err := svc.List(context.Background(), validation.Pagination{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Len(t, page.Records, 2)
	assert.Equal(t, "2024-03-13", page.Records[0].Date, "newest first")
	assert.Equal(t, 1, page.Pagination.CurrentPage)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Equal(t, int64(3), page.Pagination.TotalRecords)
	assert.True(t, page.Pagination.HasNext)
	assert.False(t, page.Pagination.HasPrev)

	page, err = svc.List(context.Background(), validation.Pagination{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Records, 1)
	assert.False(t, page.Pagination.HasNext)
	assert.True(t, page.Pagination.HasPrev)
}

func TestRecordService_List_Empty(t *testing.T) {
	svc := newRecordService(newFakeStore())

	page, err := svc.List(context.Background(), validation.Pagination{Page: 1, Limit: 50})
	require.NoError(t, err)

	assert.NotNil(t, page.Records, "empty page serializes as [] not null")
	assert.Empty(t, page.Records)
	assert.Equal(t, 0, page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasNext)
}

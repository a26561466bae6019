package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeclock/timeclock-backend/internal/record/repository"
	"github.com/timeclock/timeclock-backend/pkg/database"
	"github.com/timeclock/timeclock-backend/pkg/errors"
	"github.com/timeclock/timeclock-backend/pkg/logger"
	"github.com/timeclock/timeclock-backend/pkg/testutil"
)

func newTestRepo(t *testing.T) (*repository.RecordRepository, *testutil.MockDB) {
	t.Helper()
	mockDB := testutil.NewMockDB(t)
	t.Cleanup(func() { mockDB.Close() })

	log := logger.New("test", "development")
	repo := repository.NewRecordRepository(database.NewFromSqlx(mockDB.DB, log))
	return repo, mockDB
}

var recordColumns = []string{
	"id", "date", "check_in_time", "check_out_time",
	"work_hours", "overtime_hours", "note", "created_at", "updated_at",
}

func TestRecordRepository_Insert(t *testing.T) {
	repo, mockDB := newTestRepo(t)

	now := time.Now()
	mockDB.ExpectQuery("INSERT INTO time_records").
		WithArgs("2024-03-15", "09:00", "18:00", 8.0, 0.0, nil).
		WillReturnRows(testutil.MockRows("id", "created_at", "updated_at").AddRow(int64(7), now, now))

	rec := &repository.TimeRecord{
		Date:          "2024-03-15",
		CheckInTime:   "09:00",
		CheckOutTime:  "18:00",
		WorkHours:     8.0,
		OvertimeHours: 0.0,
	}
	err := repo.Insert(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.ID)
	assert.Equal(t, now, rec.CreatedAt)

	mockDB.ExpectationsWereMet(t)
}

func TestRecordRepository_GetByID(t *testing.T) {
	repo, mockDB := newTestRepo(t)

	now := time.Now()
	note := "on-site visit"
	mockDB.ExpectQuery("FROM time_records").
		WithArgs(int64(7)).
		WillReturnRows(testutil.MockRows(recordColumns...).
			AddRow(int64(7), "2024-03-15", "09:00", "18:00", 8.0, 0.0, &note, now, now))

	rec, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", rec.Date)
	assert.Equal(t, "09:00", rec.CheckInTime)
	require.NotNil(t, rec.Note)
	assert.Equal(t, note, *rec.Note)

	mockDB.ExpectationsWereMet(t)
}

func TestRecordRepository_GetByID_NotFound(t *testing.T) {
	repo, mockDB := newTestRepo(t)

	mockDB.ExpectQuery("FROM time_records").
		WithArgs(int64(404)).
		WillReturnRows(testutil.MockRows(recordColumns...))

	rec, err := repo.GetByID(context.Background(), 404)
	assert.Nil(t, rec)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	mockDB.ExpectationsWereMet(t)
}

func TestRecordRepository_ListByDateRange(t *testing.T) {
	repo, mockDB := newTestRepo(t)

	now := time.Now()
	mockDB.ExpectQuery("WHERE date BETWEEN").
		WithArgs("2024-03-11", "2024-03-17").
		WillReturnRows(testutil.MockRows(recordColumns...).
			AddRow(int64(2), "2024-03-12", "09:00", "19:00", 9.0, 0.0, nil, now, now).
			AddRow(int64(1), "2024-03-11", "09:00", "18:00", 8.0, 0.0, nil, now, now))

	records, err := repo.ListByDateRange(context.Background(), "2024-03-11", "2024-03-17")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-03-12", records[0].Date, "newest first")

	mockDB.ExpectationsWereMet(t)
}

func TestRecordRepository_Update_NotFound(t *testing.T) {
	repo, mockDB := newTestRepo(t)

	mockDB.ExpectExec("UPDATE time_records").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &repository.TimeRecord{
		ID:           404,
		Date:         "2024-03-15",
		CheckInTime:  "09:00",
		CheckOutTime: "18:00",
	})
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	mockDB.ExpectationsWereMet(t)
}

func TestRecordRepository_Delete(t *testing.T) {
	repo, mockDB := newTestRepo(t)

	mockDB.ExpectExec("DELETE FROM time_records").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 7)
	assert.NoError(t, err)

	mockDB.ExpectationsWereMet(t)
}

func TestRecordRepository_Delete_NotFound(t *testing.T) {
	repo, mockDB := newTestRepo(t)

	mockDB.ExpectExec("DELETE FROM time_records").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 404)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	mockDB.ExpectationsWereMet(t)
}

func TestRecordRepository_CountAll(t *testing.T) {
	repo, mockDB := newTestRepo(t)

	mockDB.ExpectQuery("SELECT COUNT(*) FROM time_records").
		WillReturnRows(testutil.MockRows("count").AddRow(int64(42)))

	total, err := repo.CountAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)

	mockDB.ExpectationsWereMet(t)
}

func TestRecordRepository_ListPage(t *testing.T) {
	repo, mockDB := newTestRepo(t)

	now := time.Now()
	mockDB.ExpectQuery("LIMIT $1 OFFSET $2").
		WithArgs(50, 0).
		WillReturnRows(testutil.MockRows(recordColumns...).
			AddRow(int64(1), "2024-03-11", "09:00", "18:00", 8.0, 0.0, nil, now, now))

	records, err := repo.ListPage(context.Background(), 0, 50)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	mockDB.ExpectationsWereMet(t)
}

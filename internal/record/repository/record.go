package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/timeclock/timeclock-backend/pkg/database"
	"github.com/timeclock/timeclock-backend/pkg/errors"
)

// TimeRecord represents a daily check-in/check-out record
type TimeRecord struct {
	ID            int64     `db:"id" json:"id"`
	Date          string    `db:"date" json:"date"`
	CheckInTime   string    `db:"check_in_time" json:"check_in_time"`
	CheckOutTime  string    `db:"check_out_time" json:"check_out_time"`
	WorkHours     float64   `db:"work_hours" json:"work_hours"`
	OvertimeHours float64   `db:"overtime_hours" json:"overtime_hours"`
	Note          *string   `db:"note" json:"note,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// RecordRepository handles time record persistence
type RecordRepository struct {
	db *database.DB
}

// NewRecordRepository creates a new time record repository
func NewRecordRepository(db *database.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Insert creates a new time record. The store assigns the id and
// timestamps; ids are never reused after deletion.
func (r *RecordRepository) Insert(ctx context.Context, rec *TimeRecord) error {
	query := `
		INSERT INTO time_records (date, check_in_time, check_out_time, work_hours, overtime_hours, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowxContext(ctx, query,
		rec.Date, rec.CheckInTime, rec.CheckOutTime, rec.WorkHours, rec.OvertimeHours, rec.Note,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

// GetByID gets a time record by id
func (r *RecordRepository) GetByID(ctx context.Context, id int64) (*TimeRecord, error) {
	var rec TimeRecord

	query := `
		SELECT id, to_char(date, 'YYYY-MM-DD') AS date, check_in_time, check_out_time,
		       work_hours, overtime_hours, note, created_at, updated_at
		FROM time_records
		WHERE id = $1
	`
	err := r.db.GetContext(ctx, &rec, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("time_record")
	}
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// ListByDateRange gets the records whose date falls within [start, end]
// inclusive, newest first.
func (r *RecordRepository) ListByDateRange(ctx context.Context, start, end string) ([]*TimeRecord, error) {
	var records []*TimeRecord

	query := `
		SELECT id, to_char(date, 'YYYY-MM-DD') AS date, check_in_time, check_out_time,
		       work_hours, overtime_hours, note, created_at, updated_at
		FROM time_records
		WHERE date BETWEEN $1 AND $2
		ORDER BY date DESC, created_at DESC
	`
	if err := r.db.SelectContext(ctx, &records, query, start, end); err != nil {
		return nil, err
	}

	return records, nil
}

// Update rewrites a record's mutable fields and bumps updated_at
func (r *RecordRepository) Update(ctx context.Context, rec *TimeRecord) error {
	query := `
		UPDATE time_records SET
			date = $2, check_in_time = $3, check_out_time = $4,
			work_hours = $5, overtime_hours = $6, note = $7,
			updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Date, rec.CheckInTime, rec.CheckOutTime,
		rec.WorkHours, rec.OvertimeHours, rec.Note,
	)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("time_record")
	}

	return nil
}

// Delete removes a record. Deletion leaves a gap in the id sequence.
func (r *RecordRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM time_records WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("time_record")
	}

	return nil
}

// CountAll returns the total number of stored records
func (r *RecordRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64

	query := `SELECT COUNT(*) FROM time_records`
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, err
	}

	return total, nil
}

// ListPage gets a page of records, newest first
func (r *RecordRepository) ListPage(ctx context.Context, offset, limit int) ([]*TimeRecord, error) {
	var records []*TimeRecord

	query := `
		SELECT id, to_char(date, 'YYYY-MM-DD') AS date, check_in_time, check_out_time,
		       work_hours, overtime_hours, note, created_at, updated_at
		FROM time_records
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2
	`
	if err := r.db.SelectContext(ctx, &records, query, limit, offset); err != nil {
		return nil, err
	}

	return records, nil
}

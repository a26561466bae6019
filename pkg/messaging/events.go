package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	EventRecordCreated = "timeclock.record.created"
	EventRecordUpdated = "timeclock.record.updated"
	EventRecordDeleted = "timeclock.record.deleted"
)

// Exchange names
const (
	ExchangeTimeclockEvents = "timeclock.events"
)

// Event is the base event structure
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source, correlationID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            uuid.New().String(),
		Type:          eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Data:          dataBytes,
	}, nil
}

// RecordCreatedEvent is published when a time record is created
type RecordCreatedEvent struct {
	RecordID      int64   `json:"record_id"`
	Date          string  `json:"date"`
	WorkHours     float64 `json:"work_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// RecordUpdatedEvent is published when a time record is updated
type RecordUpdatedEvent struct {
	RecordID      int64   `json:"record_id"`
	Date          string  `json:"date"`
	WorkHours     float64 `json:"work_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// RecordDeletedEvent is published when a time record is deleted
type RecordDeletedEvent struct {
	RecordID int64 `json:"record_id"`
}

package events

import (
	"context"

	"github.com/timeclock/timeclock-backend/internal/record/repository"
	"github.com/timeclock/timeclock-backend/pkg/logger"
	"github.com/timeclock/timeclock-backend/pkg/messaging"
)

// RecordEventPublisher publishes time-record lifecycle events. A nil
// publisher is valid and drops every event, so the service can run
// without a broker.
type RecordEventPublisher struct {
	publisher *messaging.Publisher
	logger    *logger.Logger
}

// NewRecordEventPublisher creates a new record event publisher
func NewRecordEventPublisher(rmq *messaging.RabbitMQ, log *logger.Logger) (*RecordEventPublisher, error) {
	publisher, err := messaging.NewPublisher(rmq, messaging.ExchangeTimeclockEvents, "timeclock-server", log)
	if err != nil {
		return nil, err
	}

	return &RecordEventPublisher{
		publisher: publisher,
		logger:    log,
	}, nil
}

// PublishRecordCreated publishes a record created event
func (p *RecordEventPublisher) PublishRecordCreated(ctx context.Context, rec *repository.TimeRecord) {
	if p == nil {
		return
	}

	data := messaging.RecordCreatedEvent{
		RecordID:      rec.ID,
		Date:          rec.Date,
		WorkHours:     rec.WorkHours,
		OvertimeHours: rec.OvertimeHours,
	}

	if err := p.publisher.Publish(ctx, messaging.EventRecordCreated, data); err != nil {
		p.logger.Error().Err(err).Int64("record_id", rec.ID).Msg("failed to publish record created event")
	}
}

// PublishRecordUpdated publishes a record updated event
func (p *RecordEventPublisher) PublishRecordUpdated(ctx context.Context, rec *repository.TimeRecord) {
	if p == nil {
		return
	}

	data := messaging.RecordUpdatedEvent{
		RecordID:      rec.ID,
		Date:          rec.Date,
		WorkHours:     rec.WorkHours,
		OvertimeHours: rec.OvertimeHours,
	}

	if err := p.publisher.Publish(ctx, messaging.EventRecordUpdated, data); err != nil {
		p.logger.Error().Err(err).Int64("record_id", rec.ID).Msg("failed to publish record updated event")
	}
}

// PublishRecordDeleted publishes a record deleted event
func (p *RecordEventPublisher) PublishRecordDeleted(ctx context.Context, recordID int64) {
	if p == nil {
		return
	}

	data := messaging.RecordDeletedEvent{
		RecordID: recordID,
	}

	if err := p.publisher.Publish(ctx, messaging.EventRecordDeleted, data); err != nil {
		p.logger.Error().Err(err).Int64("record_id", recordID).Msg("failed to publish record deleted event")
	}
}

package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cryda/reconciler/internal/pkg/constants"
	"github.com/cryda/reconciler/internal/pkg/logger"
	"github.com/cryda/reconciler/internal/pkg/models"
	natspkg "github.com/cryda/reconciler/internal/pkg/nats"
)

// EventsGateway publishes ledger lifecycle events over NATS so downstream
// consumers (notifications, analytics) see confirmed state transitions.
type EventsGateway struct {
	natsClient *natspkg.Client
}

// NewEventsGateway creates a NATS-backed events gateway.
func NewEventsGateway(client *natspkg.Client) *EventsGateway {
	return &EventsGateway{natsClient: client}
}

// recordEvent is the shared envelope for failed and cancelled records.
type recordEvent struct {
	Kind      string    `json:"kind"`
	RecordID  uuid.UUID `json:"record_id"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PublishRideConfirmed announces a ride that is now mirrored on both ledgers.
func (g *EventsGateway) PublishRideConfirmed(ctx context.Context, ride *models.RideRecord) error {
	return g.publish(ctx, constants.SubjectRecordConfirmed, ride)
}

// PublishBookingConfirmed announces a booking mirrored on both ledgers.
func (g *EventsGateway) PublishBookingConfirmed(ctx context.Context, booking *models.BookingRecord) error {
	return g.publish(ctx, constants.SubjectRecordConfirmed, booking)
}

// PublishRecordFailed announces a record marked failed before chain submission.
func (g *EventsGateway) PublishRecordFailed(ctx context.Context, kind string, recordID uuid.UUID, reason string) error {
	return g.publish(ctx, constants.SubjectRecordFailed, recordEvent{
		Kind:      kind,
		RecordID:  recordID,
		Reason:    reason,
		Timestamp: time.Now(),
	})
}

// PublishRecordCancelled announces a record whose cancellation was confirmed
// on chain.
func (g *EventsGateway) PublishRecordCancelled(ctx context.Context, kind string, recordID uuid.UUID) error {
	return g.publish(ctx, constants.SubjectRecordCancelled, recordEvent{
		Kind:      kind,
		RecordID:  recordID,
		Timestamp: time.Now(),
	})
}

// PublishReconcileAlert flags a record stuck in provisional state for
// operator attention.
func (g *EventsGateway) PublishReconcileAlert(ctx context.Context, alert models.ReconcileAlert) error {
	return g.publish(ctx, constants.SubjectReconcileAlert, alert)
}

func (g *EventsGateway) publish(ctx context.Context, subject string, payload interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", subject, err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		logger.Error("Failed to publish event",
			logger.String("subject", subject),
			logger.Err(err))
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	return nil
}

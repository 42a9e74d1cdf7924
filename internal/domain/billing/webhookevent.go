package billing

import (
	"fmt"
	"time"

	"rebanho/internal/shared/biztime"
)

// WebhookEvent is the dedup ledger entry for a provider event delivery.
// The provider event ID is unique across all time; a record is written exactly
// once per distinct ID and never deleted. Lifecycle:
// unseen -> recorded(unprocessed) -> processed. No transition skips recorded.
type WebhookEvent struct {
	id         uint
	eventID    string
	eventType  string
	payload    []byte
	processed  bool
	receivedAt time.Time
}

func NewWebhookEvent(eventID, eventType string, payload []byte) (*WebhookEvent, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event ID is required")
	}
	if eventType == "" {
		return nil, fmt.Errorf("event type is required")
	}

	return &WebhookEvent{
		eventID:    eventID,
		eventType:  eventType,
		payload:    payload,
		processed:  false,
		receivedAt: biztime.NowUTC(),
	}, nil
}

// MarkProcessed transitions the record to its terminal state. Marking an
// already processed record is a no-op; there is no rollback.
func (e *WebhookEvent) MarkProcessed() {
	e.processed = true
}

func (e *WebhookEvent) ID() uint {
	return e.id
}

func (e *WebhookEvent) EventID() string {
	return e.eventID
}

func (e *WebhookEvent) EventType() string {
	return e.eventType
}

func (e *WebhookEvent) Payload() []byte {
	return e.payload
}

func (e *WebhookEvent) Processed() bool {
	return e.processed
}

func (e *WebhookEvent) ReceivedAt() time.Time {
	return e.receivedAt
}

// SetID sets the record ID after persistence (used by repository after Create)
func (e *WebhookEvent) SetID(id uint) {
	e.id = id
}

func ReconstructWebhookEvent(
	id uint,
	eventID, eventType string,
	payload []byte,
	processed bool,
	receivedAt time.Time,
) *WebhookEvent {
	return &WebhookEvent{
		id:         id,
		eventID:    eventID,
		eventType:  eventType,
		payload:    payload,
		processed:  processed,
		receivedAt: receivedAt,
	}
}

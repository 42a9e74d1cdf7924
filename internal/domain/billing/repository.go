package billing

import "context"

// WebhookEventRepository persists the dedup ledger. Create must rely on the
// unique index over the provider event ID so that concurrent redelivery of the
// same event resolves to exactly one inserted row; callers treat the resulting
// duplicate-key error as the dedup signal.
type WebhookEventRepository interface {
	// Create inserts a new unprocessed event record.
	Create(ctx context.Context, event *WebhookEvent) error

	// MarkProcessed flags the record for the given provider event ID.
	MarkProcessed(ctx context.Context, eventID string) error

	// GetByEventID retrieves a record by provider event ID.
	GetByEventID(ctx context.Context, eventID string) (*WebhookEvent, error)
}

// SubscriptionRepository persists per-user subscription state.
type SubscriptionRepository interface {
	// Upsert creates or overwrites the subscription row keyed on user ID.
	Upsert(ctx context.Context, sub *Subscription) error

	// GetByUserID retrieves the subscription for a user.
	GetByUserID(ctx context.Context, userID uint) (*Subscription, error)
}

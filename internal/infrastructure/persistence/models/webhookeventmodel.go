package models

import (
	"time"

	"gorm.io/datatypes"

	"rebanho/internal/shared/constants"
)

// WebhookEventModel represents the database persistence model for inbound
// payment webhook events. The unique index on EventID is the idempotency
// ledger: a second insert of the same provider event fails with a duplicate
// key error.
type WebhookEventModel struct {
	ID         uint           `gorm:"primarykey"`
	EventID    string         `gorm:"uniqueIndex:uk_event_id;not null;size:255"`
	EventType  string         `gorm:"not null;size:100;index:idx_event_type"`
	Payload    datatypes.JSON `gorm:"not null"`
	Processed  bool           `gorm:"not null;default:false;index:idx_processed"`
	ReceivedAt time.Time      `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (WebhookEventModel) TableName() string {
	return constants.TableWebhookEvents
}

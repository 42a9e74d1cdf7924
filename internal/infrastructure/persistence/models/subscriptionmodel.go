package models

import (
	"time"

	"rebanho/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for
// subscriptions. One row per user; webhook processing upserts on UserID.
type SubscriptionModel struct {
	ID                 uint      `gorm:"primarykey"`
	UserID             uint      `gorm:"uniqueIndex:uk_user_id;not null"`
	Tier               string    `gorm:"not null;size:20"`
	Status             string    `gorm:"not null;size:20;index:idx_status"`
	CurrentPeriodStart time.Time `gorm:"not null"`
	CurrentPeriodEnd   time.Time `gorm:"not null"`
	CustomerID         string    `gorm:"size:255;index:idx_customer_id"`
	SubscriptionID     string    `gorm:"size:255"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

package models

import (
	"time"

	"rebanho/internal/shared/constants"
)

// InvitationModel represents the database persistence model for invitations.
type InvitationModel struct {
	ID         uint   `gorm:"primarykey"`
	Token      string `gorm:"uniqueIndex:uk_token;not null;size:64"`
	Email      string `gorm:"not null;size:255;index:idx_email"`
	TenantID   uint   `gorm:"not null;index:idx_tenant"`
	Role       string `gorm:"not null;size:30"`
	Status     string `gorm:"not null;size:20;default:pending"`
	ExpiresAt  time.Time `gorm:"not null"`
	AcceptedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (InvitationModel) TableName() string {
	return constants.TableInvitations
}

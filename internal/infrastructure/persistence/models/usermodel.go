package models

import (
	"time"

	"rebanho/internal/shared/constants"
)

// UserModel represents the database persistence model for users.
type UserModel struct {
	ID        uint   `gorm:"primarykey"`
	Email     string `gorm:"uniqueIndex:uk_email;not null;size:255"`
	Name      string `gorm:"size:255"`
	Status    string `gorm:"not null;size:20;default:active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

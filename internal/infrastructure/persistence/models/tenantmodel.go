package models

import (
	"time"

	"rebanho/internal/shared/constants"
)

// TenantModel represents the database persistence model for tenants.
type TenantModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:255"`
	Category    string `gorm:"size:50"`
	Plan        string `gorm:"size:20"`
	MaxAnimals  int    `gorm:"not null;default:0"`
	MaxUsers    int    `gorm:"not null;default:0"`
	MaxProducts int    `gorm:"not null;default:0"`
	Active      bool   `gorm:"not null;default:true;index:idx_active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (TenantModel) TableName() string {
	return constants.TableTenants
}

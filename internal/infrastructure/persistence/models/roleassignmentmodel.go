package models

import (
	"time"

	"rebanho/internal/shared/constants"
)

// RoleAssignmentModel represents the database persistence model for role
// assignments. Rows are deactivated, never deleted.
type RoleAssignmentModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index:idx_user_active,priority:1"`
	TenantID  uint   `gorm:"not null;index:idx_tenant"`
	Role      string `gorm:"not null;size:30"`
	Active    bool   `gorm:"not null;default:true;index:idx_user_active,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (RoleAssignmentModel) TableName() string {
	return constants.TableRoleAssignments
}

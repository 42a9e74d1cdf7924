package tenancy

import (
	"fmt"
	"time"

	"rebanho/internal/shared/biztime"
)

// RoleAssignment binds a user to a tenant with a specific role. A user may
// hold assignments in several tenants but at most one active assignment per
// tenant. Assignments are deactivated on removal, never deleted.
type RoleAssignment struct {
	id       uint
	userID   uint
	tenantID uint
	role     Role
	active   bool

	createdAt time.Time
	updatedAt time.Time
}

func NewRoleAssignment(userID, tenantID uint, role Role) (*RoleAssignment, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	now := biztime.NowUTC()
	return &RoleAssignment{
		userID:    userID,
		tenantID:  tenantID,
		role:      role,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Deactivate removes the assignment from use without deleting it.
func (a *RoleAssignment) Deactivate() {
	if !a.active {
		return
	}
	a.active = false
	a.updatedAt = biztime.NowUTC()
}

func (a *RoleAssignment) ID() uint {
	return a.id
}

func (a *RoleAssignment) UserID() uint {
	return a.userID
}

func (a *RoleAssignment) TenantID() uint {
	return a.tenantID
}

func (a *RoleAssignment) Role() Role {
	return a.role
}

func (a *RoleAssignment) IsActive() bool {
	return a.active
}

func (a *RoleAssignment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *RoleAssignment) UpdatedAt() time.Time {
	return a.updatedAt
}

// SetID sets the assignment ID after persistence (used by repository after Create)
func (a *RoleAssignment) SetID(id uint) {
	a.id = id
}

func ReconstructRoleAssignment(
	id uint,
	userID, tenantID uint,
	role Role,
	active bool,
	createdAt, updatedAt time.Time,
) *RoleAssignment {
	return &RoleAssignment{
		id:        id,
		userID:    userID,
		tenantID:  tenantID,
		role:      role,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

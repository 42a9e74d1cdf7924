// Package invitation models team invitations. Accepting an invitation is what
// creates a role assignment for the invited user.
package invitation

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"rebanho/internal/domain/tenancy"
	"rebanho/internal/shared/biztime"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusExpired  Status = "expired"
)

type Invitation struct {
	id       uint
	token    string
	email    string
	tenantID uint
	role     tenancy.Role
	status   Status

	expiresAt  time.Time
	acceptedAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewInvitation(email string, tenantID uint, role tenancy.Role, ttl time.Duration) (*Invitation, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	if role == tenancy.RoleSuperAdmin {
		return nil, fmt.Errorf("super_admin cannot be granted by invitation")
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	now := biztime.NowUTC()
	return &Invitation{
		token:     token,
		email:     email,
		tenantID:  tenantID,
		role:      role,
		status:    StatusPending,
		expiresAt: now.Add(ttl),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (i *Invitation) IsExpired() bool {
	return biztime.NowUTC().After(i.expiresAt)
}

// Accept marks the invitation as used. Expired or already accepted
// invitations cannot be accepted.
func (i *Invitation) Accept() error {
	if i.status == StatusAccepted {
		return fmt.Errorf("invitation already accepted")
	}
	if i.status == StatusExpired || i.IsExpired() {
		return fmt.Errorf("invitation expired")
	}

	now := biztime.NowUTC()
	i.status = StatusAccepted
	i.acceptedAt = &now
	i.updatedAt = now

	return nil
}

// MarkExpired records the expiry so the row reflects the terminal state.
func (i *Invitation) MarkExpired() {
	if i.status != StatusPending {
		return
	}
	i.status = StatusExpired
	i.updatedAt = biztime.NowUTC()
}

func (i *Invitation) ID() uint {
	return i.id
}

func (i *Invitation) Token() string {
	return i.token
}

func (i *Invitation) Email() string {
	return i.email
}

func (i *Invitation) TenantID() uint {
	return i.tenantID
}

func (i *Invitation) Role() tenancy.Role {
	return i.role
}

func (i *Invitation) Status() Status {
	return i.status
}

func (i *Invitation) ExpiresAt() time.Time {
	return i.expiresAt
}

func (i *Invitation) AcceptedAt() *time.Time {
	return i.acceptedAt
}

func (i *Invitation) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Invitation) UpdatedAt() time.Time {
	return i.updatedAt
}

// SetID sets the invitation ID after persistence (used by repository after Create)
func (i *Invitation) SetID(id uint) {
	i.id = id
}

func ReconstructInvitation(
	id uint,
	token, email string,
	tenantID uint,
	role tenancy.Role,
	status Status,
	expiresAt time.Time,
	acceptedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Invitation {
	return &Invitation{
		id:         id,
		token:      token,
		email:      email,
		tenantID:   tenantID,
		role:       role,
		status:     status,
		expiresAt:  expiresAt,
		acceptedAt: acceptedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Package user holds the minimal user aggregate. Authentication is owned by
// the identity provider; this service only resolves users by ID or email.
package user

import (
	"fmt"
	"strings"
	"time"

	"rebanho/internal/shared/biztime"
)

type User struct {
	id     uint
	email  string
	name   string
	status string

	createdAt time.Time
	updatedAt time.Time
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

func NewUser(email, name string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	now := biztime.NowUTC()
	return &User{
		email:     email,
		name:      name,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Status() string {
	return u.status
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// SetID sets the user ID after persistence (used by repository after Create)
func (u *User) SetID(id uint) {
	u.id = id
}

func ReconstructUser(
	id uint,
	email, name, status string,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:        id,
		email:     email,
		name:      name,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

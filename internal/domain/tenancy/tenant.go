package tenancy

import (
	"fmt"
	"time"

	"rebanho/internal/shared/biztime"
)

// ResourceLimits caps what a tenant may create under its plan.
type ResourceLimits struct {
	MaxAnimals  int `json:"max_animals"`
	MaxUsers    int `json:"max_users"`
	MaxProducts int `json:"max_products"`
}

// Tenant is an isolated customer organization (company, farm or clinic).
// Tenant records are owned by the platform; this service only reads them
// outside of provisioning.
type Tenant struct {
	id       uint
	name     string
	category string
	plan     string
	limits   ResourceLimits
	active   bool

	createdAt time.Time
	updatedAt time.Time
}

func NewTenant(name, category, plan string, limits ResourceLimits) (*Tenant, error) {
	if name == "" {
		return nil, fmt.Errorf("tenant name is required")
	}

	now := biztime.NowUTC()
	return &Tenant{
		name:      name,
		category:  category,
		plan:      plan,
		limits:    limits,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (t *Tenant) ID() uint {
	return t.id
}

func (t *Tenant) Name() string {
	return t.name
}

func (t *Tenant) Category() string {
	return t.category
}

func (t *Tenant) Plan() string {
	return t.plan
}

func (t *Tenant) Limits() ResourceLimits {
	return t.limits
}

func (t *Tenant) IsActive() bool {
	return t.active
}

func (t *Tenant) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tenant) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetID sets the tenant ID after persistence (used by repository after Create)
func (t *Tenant) SetID(id uint) {
	t.id = id
}

func ReconstructTenant(
	id uint,
	name, category, plan string,
	limits ResourceLimits,
	active bool,
	createdAt, updatedAt time.Time,
) *Tenant {
	return &Tenant{
		id:        id,
		name:      name,
		category:  category,
		plan:      plan,
		limits:    limits,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

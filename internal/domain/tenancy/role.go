package tenancy

// Role is the permission level a user holds inside a tenant.
type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleCompanyAdmin Role = "company_admin"
	RoleVeterinario  Role = "veterinario"
	RoleCliente      Role = "cliente"
	RoleTecnico      Role = "tecnico"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleCompanyAdmin, RoleVeterinario, RoleCliente, RoleTecnico:
		return true
	}
	return false
}

// ParseRole returns the role for s, falling back to the least privileged role
// for unknown values.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleTecnico
}

// Capabilities are the boolean flags the UI binds against. They are a pure
// function of the role; no I/O is involved in deriving them.
type Capabilities struct {
	IsSuperAdmin      bool `json:"is_super_admin"`
	IsAdmin           bool `json:"is_admin"`
	IsVet             bool `json:"is_vet"`
	CanManageAnimals  bool `json:"can_manage_animals"`
	CanManageProducts bool `json:"can_manage_products"`
	CanManageUsers    bool `json:"can_manage_users"`
}

// Capabilities derives the capability flags for the role.
func (r Role) Capabilities() Capabilities {
	isSuperAdmin := r == RoleSuperAdmin
	isAdmin := r == RoleCompanyAdmin || isSuperAdmin
	isVet := r == RoleVeterinario || isAdmin

	return Capabilities{
		IsSuperAdmin:      isSuperAdmin,
		IsAdmin:           isAdmin,
		IsVet:             isVet,
		CanManageAnimals:  isVet || r == RoleCliente,
		CanManageProducts: r == RoleCompanyAdmin || isAdmin,
		CanManageUsers:    isAdmin,
	}
}

package tenancy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoleAssignment_ValidInput(t *testing.T) {
	assignment, err := NewRoleAssignment(10, 3, RoleVeterinario)

	require.NoError(t, err)
	require.NotNil(t, assignment)
	assert.Equal(t, uint(10), assignment.UserID())
	assert.Equal(t, uint(3), assignment.TenantID())
	assert.Equal(t, RoleVeterinario, assignment.Role())
	assert.True(t, assignment.IsActive())
}

func TestNewRoleAssignment_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		userID   uint
		tenantID uint
		role     Role
	}{
		{"missing user", 0, 3, RoleCliente},
		{"missing tenant", 10, 0, RoleCliente},
		{"bad role", 10, 3, Role("owner")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assignment, err := NewRoleAssignment(tc.userID, tc.tenantID, tc.role)
			assert.Error(t, err)
			assert.Nil(t, assignment)
		})
	}
}

func TestRoleAssignment_Deactivate(t *testing.T) {
	assignment, err := NewRoleAssignment(10, 3, RoleTecnico)
	require.NoError(t, err)

	assignment.Deactivate()
	assert.False(t, assignment.IsActive())

	// deactivating twice is a no-op
	assignment.Deactivate()
	assert.False(t, assignment.IsActive())
}

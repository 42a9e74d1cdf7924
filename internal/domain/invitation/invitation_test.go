package invitation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebanho/internal/domain/tenancy"
)

func TestNewInvitation_ValidInput(t *testing.T) {
	inv, err := NewInvitation("vet@fazenda.com", 3, tenancy.RoleVeterinario, 72*time.Hour)

	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, "vet@fazenda.com", inv.Email())
	assert.Equal(t, uint(3), inv.TenantID())
	assert.Equal(t, tenancy.RoleVeterinario, inv.Role())
	assert.Equal(t, StatusPending, inv.Status())
	assert.Len(t, inv.Token(), 64)
	assert.False(t, inv.IsExpired())
}

func TestNewInvitation_TokensAreUnique(t *testing.T) {
	a, err := NewInvitation("a@fazenda.com", 3, tenancy.RoleCliente, time.Hour)
	require.NoError(t, err)
	b, err := NewInvitation("b@fazenda.com", 3, tenancy.RoleCliente, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, a.Token(), b.Token())
}

func TestNewInvitation_RejectsSuperAdmin(t *testing.T) {
	inv, err := NewInvitation("root@fazenda.com", 3, tenancy.RoleSuperAdmin, time.Hour)

	assert.Error(t, err)
	assert.Nil(t, inv)
}

func TestInvitation_Accept(t *testing.T) {
	inv, err := NewInvitation("vet@fazenda.com", 3, tenancy.RoleVeterinario, time.Hour)
	require.NoError(t, err)

	require.NoError(t, inv.Accept())
	assert.Equal(t, StatusAccepted, inv.Status())
	require.NotNil(t, inv.AcceptedAt())

	// cannot accept twice
	assert.Error(t, inv.Accept())
}

func TestInvitation_AcceptExpired(t *testing.T) {
	inv, err := NewInvitation("vet@fazenda.com", 3, tenancy.RoleVeterinario, -time.Minute)
	require.NoError(t, err)

	assert.True(t, inv.IsExpired())
	assert.Error(t, inv.Accept())
	assert.NotEqual(t, StatusAccepted, inv.Status())
}

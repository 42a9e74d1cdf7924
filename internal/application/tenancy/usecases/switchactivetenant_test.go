package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebanho/internal/domain/tenancy"
	apperrors "rebanho/internal/shared/errors"
)

func TestSwitchActiveTenant_OwnTenant(t *testing.T) {
	tenant := makeTenant(t, 5, "Fazenda Boa Vista", time.Now().UTC())
	store := newFakeActiveStore()
	uc := NewSwitchActiveTenantUseCase(
		&fakeAssignmentRepo{byUser: map[uint]*tenancy.RoleAssignment{
			10: makeAssignment(t, 10, 5, tenancy.RoleCompanyAdmin),
		}},
		&fakeTenantRepo{tenants: map[uint]*tenancy.Tenant{5: tenant}},
		store,
		noopLogger{},
	)

	err := uc.Execute(context.Background(), SwitchActiveTenantCommand{UserID: 10, TenantID: 5})

	require.NoError(t, err)
	assert.Equal(t, uint(5), store.choices[10])
}

func TestSwitchActiveTenant_SuperAdminAnyTenant(t *testing.T) {
	other := makeTenant(t, 7, "Clinica Norte", time.Now().UTC())
	store := newFakeActiveStore()
	uc := NewSwitchActiveTenantUseCase(
		&fakeAssignmentRepo{byUser: map[uint]*tenancy.RoleAssignment{
			10: makeAssignment(t, 10, 1, tenancy.RoleSuperAdmin),
		}},
		&fakeTenantRepo{tenants: map[uint]*tenancy.Tenant{7: other}},
		store,
		noopLogger{},
	)

	err := uc.Execute(context.Background(), SwitchActiveTenantCommand{UserID: 10, TenantID: 7})

	require.NoError(t, err)
	assert.Equal(t, uint(7), store.choices[10])
}

func TestSwitchActiveTenant_InaccessibleTenant(t *testing.T) {
	tenant := makeTenant(t, 5, "Fazenda Boa Vista", time.Now().UTC())
	other := makeTenant(t, 7, "Clinica Norte", time.Now().UTC())
	store := newFakeActiveStore()
	uc := NewSwitchActiveTenantUseCase(
		&fakeAssignmentRepo{byUser: map[uint]*tenancy.RoleAssignment{
			10: makeAssignment(t, 10, 5, tenancy.RoleVeterinario),
		}},
		&fakeTenantRepo{tenants: map[uint]*tenancy.Tenant{5: tenant, 7: other}},
		store,
		noopLogger{},
	)

	err := uc.Execute(context.Background(), SwitchActiveTenantCommand{UserID: 10, TenantID: 7})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	assert.Zero(t, store.sets)
}

func TestSwitchActiveTenant_NoAssignment(t *testing.T) {
	store := newFakeActiveStore()
	uc := NewSwitchActiveTenantUseCase(
		&fakeAssignmentRepo{byUser: map[uint]*tenancy.RoleAssignment{}},
		&fakeTenantRepo{tenants: map[uint]*tenancy.Tenant{}},
		store,
		noopLogger{},
	)

	err := uc.Execute(context.Background(), SwitchActiveTenantCommand{UserID: 10, TenantID: 5})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}

func TestSwitchActiveTenant_UnknownTenant(t *testing.T) {
	store := newFakeActiveStore()
	uc := NewSwitchActiveTenantUseCase(
		&fakeAssignmentRepo{byUser: map[uint]*tenancy.RoleAssignment{
			10: makeAssignment(t, 10, 1, tenancy.RoleSuperAdmin),
		}},
		&fakeTenantRepo{tenants: map[uint]*tenancy.Tenant{}},
		store,
		noopLogger{},
	)

	err := uc.Execute(context.Background(), SwitchActiveTenantCommand{UserID: 10, TenantID: 99})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSwitchActiveTenant_MissingTenantID(t *testing.T) {
	uc := NewSwitchActiveTenantUseCase(
		&fakeAssignmentRepo{byUser: map[uint]*tenancy.RoleAssignment{}},
		&fakeTenantRepo{tenants: map[uint]*tenancy.Tenant{}},
		newFakeActiveStore(),
		noopLogger{},
	)

	err := uc.Execute(context.Background(), SwitchActiveTenantCommand{UserID: 10})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestSwitchActiveTenant_StoreWriteFails(t *testing.T) {
	tenant := makeTenant(t, 5, "Fazenda Boa Vista", time.Now().UTC())
	store := newFakeActiveStore()
	store.setErr = fmt.Errorf("connection refused")
	uc := NewSwitchActiveTenantUseCase(
		&fakeAssignmentRepo{byUser: map[uint]*tenancy.RoleAssignment{
			10: makeAssignment(t, 10, 5, tenancy.RoleCompanyAdmin),
		}},
		&fakeTenantRepo{tenants: map[uint]*tenancy.Tenant{5: tenant}},
		store,
		noopLogger{},
	)

	err := uc.Execute(context.Background(), SwitchActiveTenantCommand{UserID: 10, TenantID: 5})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

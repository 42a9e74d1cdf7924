package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tenancyUsecases "rebanho/internal/application/tenancy/usecases"
	"rebanho/internal/domain/tenancy"
	"rebanho/internal/interfaces/http/handlers/testutil"
	"rebanho/internal/shared/errors"
)

type mockResolveContextUC struct {
	result *tenancyUsecases.TenantContext
	err    error
}

func (m *mockResolveContextUC) Execute(ctx context.Context, query tenancyUsecases.ResolveTenantContextQuery) (*tenancyUsecases.TenantContext, error) {
	return m.result, m.err
}

type mockSwitchTenantUC struct {
	err     error
	lastCmd tenancyUsecases.SwitchActiveTenantCommand
}

func (m *mockSwitchTenantUC) Execute(ctx context.Context, cmd tenancyUsecases.SwitchActiveTenantCommand) error {
	m.lastCmd = cmd
	return m.err
}

func resolvedContext(t *testing.T) *tenancyUsecases.TenantContext {
	t.Helper()
	tenant := tenancy.ReconstructTenant(5, "Fazenda Boa Vista", "fazenda", "profissional",
		tenancy.ResourceLimits{MaxAnimals: 500, MaxUsers: 10, MaxProducts: 100},
		true, time.Now().UTC(), time.Now().UTC())
	assignment, err := tenancy.NewRoleAssignment(10, 5, tenancy.RoleCompanyAdmin)
	require.NoError(t, err)

	return &tenancyUsecases.TenantContext{
		Assignment:   assignment,
		ActiveTenant: tenant,
		Tenants:      []*tenancy.Tenant{tenant},
		Capabilities: assignment.Role().Capabilities(),
	}
}

func TestTenancyHandler_GetContext(t *testing.T) {
	handler := NewTenancyHandler(&mockResolveContextUC{result: resolvedContext(t)}, &mockSwitchTenantUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tenancy/context", nil)
	testutil.SetAuthContext(c, 10, "dono@fazenda.com")

	handler.GetContext(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.True(t, resp.Success)

	var data TenantContextResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.True(t, data.HasAccess)
	assert.Equal(t, "company_admin", data.Role)
	require.NotNil(t, data.ActiveTenant)
	assert.Equal(t, uint(5), data.ActiveTenant.ID)
	require.Len(t, data.Tenants, 1)
	assert.True(t, data.Capabilities.IsAdmin)
	assert.True(t, data.Capabilities.CanManageUsers)
	assert.False(t, data.Capabilities.IsSuperAdmin)
}

func TestTenancyHandler_NoAccessContext(t *testing.T) {
	handler := NewTenancyHandler(&mockResolveContextUC{result: &tenancyUsecases.TenantContext{}}, &mockSwitchTenantUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tenancy/context", nil)
	testutil.SetAuthContext(c, 10, "dono@fazenda.com")

	handler.GetContext(c)

	assert.Equal(t, http.StatusOK, w.Code, "missing access is not an HTTP error")

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data TenantContextResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.False(t, data.HasAccess)
	assert.Nil(t, data.ActiveTenant)
	assert.Empty(t, data.Tenants)
	assert.False(t, data.Capabilities.CanManageAnimals)
}

func TestTenancyHandler_GetContextUnauthenticated(t *testing.T) {
	handler := NewTenancyHandler(&mockResolveContextUC{}, &mockSwitchTenantUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tenancy/context", nil)

	handler.GetContext(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTenancyHandler_SwitchActiveTenant(t *testing.T) {
	switchUC := &mockSwitchTenantUC{}
	handler := NewTenancyHandler(&mockResolveContextUC{}, switchUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/api/tenancy/context/active-tenant",
		SwitchActiveTenantRequest{TenantID: 7})
	testutil.SetAuthContext(c, 10, "dono@fazenda.com")

	handler.SwitchActiveTenant(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(10), switchUC.lastCmd.UserID)
	assert.Equal(t, uint(7), switchUC.lastCmd.TenantID)
}

func TestTenancyHandler_SwitchToInaccessibleTenant(t *testing.T) {
	switchUC := &mockSwitchTenantUC{err: errors.NewForbiddenError("tenant is not accessible to this user")}
	handler := NewTenancyHandler(&mockResolveContextUC{}, switchUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/api/tenancy/context/active-tenant",
		SwitchActiveTenantRequest{TenantID: 99})
	testutil.SetAuthContext(c, 10, "dono@fazenda.com")

	handler.SwitchActiveTenant(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTenancyHandler_SwitchMissingBody(t *testing.T) {
	handler := NewTenancyHandler(&mockResolveContextUC{}, &mockSwitchTenantUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/api/tenancy/context/active-tenant", map[string]any{})
	testutil.SetAuthContext(c, 10, "dono@fazenda.com")

	handler.SwitchActiveTenant(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebanho/internal/domain/invitation"
	"rebanho/internal/domain/tenancy"
	apperrors "rebanho/internal/shared/errors"
	"rebanho/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) Fatal(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

type fakeInvitationRepo struct {
	byToken map[string]*invitation.Invitation
	creates int
	updates int
	err     error
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{byToken: make(map[string]*invitation.Invitation)}
}

func (f *fakeInvitationRepo) Create(ctx context.Context, inv *invitation.Invitation) error {
	if f.err != nil {
		return f.err
	}
	f.creates++
	f.byToken[inv.Token()] = inv
	return nil
}

func (f *fakeInvitationRepo) Update(ctx context.Context, inv *invitation.Invitation) error {
	if f.err != nil {
		return f.err
	}
	f.updates++
	f.byToken[inv.Token()] = inv
	return nil
}

func (f *fakeInvitationRepo) GetByToken(ctx context.Context, token string) (*invitation.Invitation, error) {
	inv, ok := f.byToken[token]
	if !ok {
		return nil, apperrors.NewNotFoundError("invitation not found")
	}
	return inv, nil
}

type fakeAssignmentRepo struct {
	active  map[uint]*tenancy.RoleAssignment // keyed by user ID
	created []*tenancy.RoleAssignment
	updated []*tenancy.RoleAssignment
	err     error
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{active: make(map[uint]*tenancy.RoleAssignment)}
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, a *tenancy.RoleAssignment) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAssignmentRepo) Update(ctx context.Context, a *tenancy.RoleAssignment) error {
	f.updated = append(f.updated, a)
	return nil
}

func (f *fakeAssignmentRepo) GetActiveByUserID(ctx context.Context, userID uint) (*tenancy.RoleAssignment, error) {
	a, ok := f.active[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("no active role assignment")
	}
	return a, nil
}

func (f *fakeAssignmentRepo) GetActiveByUserAndTenant(ctx context.Context, userID, tenantID uint) (*tenancy.RoleAssignment, error) {
	a, ok := f.active[userID]
	if !ok || a.TenantID() != tenantID || !a.IsActive() {
		return nil, apperrors.NewNotFoundError("no active role assignment")
	}
	return a, nil
}

type fakeTenantRepo struct {
	tenants map[uint]*tenancy.Tenant
}

func (f *fakeTenantRepo) Create(ctx context.Context, t *tenancy.Tenant) error { return nil }

func (f *fakeTenantRepo) GetByID(ctx context.Context, id uint) (*tenancy.Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("tenant not found")
	}
	return t, nil
}

func (f *fakeTenantRepo) ListAll(ctx context.Context) ([]*tenancy.Tenant, error) {
	out := make([]*tenancy.Tenant, 0, len(f.tenants))
	for _, t := range f.tenants {
		out = append(out, t)
	}
	return out, nil
}

type fakeMailer struct {
	sent chan string
	err  error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan string, 1)}
}

func (f *fakeMailer) SendInvitation(to, tenantName, role, token string, expiresAt time.Time) error {
	f.sent <- to
	return f.err
}

type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

func adminAssignment(t *testing.T, userID, tenantID uint, role tenancy.Role) *tenancy.RoleAssignment {
	t.Helper()
	a, err := tenancy.NewRoleAssignment(userID, tenantID, role)
	require.NoError(t, err)
	a.SetID(1)
	return a
}

func testTenant(t *testing.T, id uint, name string) *tenancy.Tenant {
	t.Helper()
	tn, err := tenancy.NewTenant(name, "fazenda", "profissional", tenancy.ResourceLimits{})
	require.NoError(t, err)
	tn.SetID(id)
	return tn
}

// =====================================================================
// CreateInvitation
// =====================================================================

func TestCreateInvitation_AdminInvites(t *testing.T) {
	invRepo := newFakeInvitationRepo()
	assignments := newFakeAssignmentRepo()
	assignments.active[1] = adminAssignment(t, 1, 5, tenancy.RoleCompanyAdmin)
	mailer := newFakeMailer()

	uc := NewCreateInvitationUseCase(invRepo, assignments,
		&fakeTenantRepo{tenants: map[uint]*tenancy.Tenant{5: testTenant(t, 5, "Fazenda Boa Vista")}},
		mailer, 72*time.Hour, noopLogger{})

	inv, err := uc.Execute(context.Background(), CreateInvitationCommand{
		InviterUserID: 1,
		Email:         "vet@fazenda.com",
		TenantID:      5,
		Role:          "veterinario",
	})

	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, invitation.StatusPending, inv.Status())
	assert.Len(t, inv.Token(), 64)
	assert.Equal(t, 1, invRepo.creates)

	select {
	case to := <-mailer.sent:
		assert.Equal(t, "vet@fazenda.com", to)
	case <-time.After(2 * time.Second):
		t.Fatal("invitation email was never sent")
	}
}

func TestCreateInvitation_NonAdminForbidden(t *testing.T) {
	assignments := newFakeAssignmentRepo()
	assignments.active[1] = adminAssignment(t, 1, 5, tenancy.RoleVeterinario)

	uc := NewCreateInvitationUseCase(newFakeInvitationRepo(), assignments,
		&fakeTenantRepo{tenants: map[uint]*tenancy.Tenant{5: testTenant(t, 5, "Fazenda Boa Vista")}},
		newFakeMailer(), 72*time.Hour, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateInvitationCommand{
		InviterUserID: 1,
		Email:         "vet@fazenda.com",
		TenantID:      5,
		Role:          "cliente",
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}

func TestCreateInvitation_AdminOfOtherTenantForbidden(t *testing.T) {
	assignments := newFakeAssignmentRepo()
	assignments.active[1] = adminAssignment(t, 1, 9, tenancy.RoleCompanyAdmin)

	uc := NewCreateInvitationUseCase(newFakeInvitationRepo(), assignments,
		&fakeTenantRepo{tenants: map[uint]*tenancy.Tenant{5: testTenant(t, 5, "Fazenda Boa Vista")}},
		newFakeMailer(), 72*time.Hour, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateInvitationCommand{
		InviterUserID: 1,
		Email:         "vet@fazenda.com",
		TenantID:      5,
		Role:          "cliente",
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}

func TestCreateInvitation_SuperAdminRoleRejected(t *testing.T) {
	assignments := newFakeAssignmentRepo()
	assignments.active[1] = adminAssignment(t, 1, 5, tenancy.RoleSuperAdmin)

	uc := NewCreateInvitationUseCase(newFakeInvitationRepo(), assignments,
		&fakeTenantRepo{tenants: map[uint]*tenancy.Tenant{5: testTenant(t, 5, "Fazenda Boa Vista")}},
		newFakeMailer(), 72*time.Hour, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateInvitationCommand{
		InviterUserID: 1,
		Email:         "vet@fazenda.com",
		TenantID:      5,
		Role:          "super_admin",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

// =====================================================================
// AcceptInvitation
// =====================================================================

func pendingInvitation(t *testing.T, email string, tenantID uint, role tenancy.Role) *invitation.Invitation {
	t.Helper()
	inv, err := invitation.NewInvitation(email, tenantID, role, 72*time.Hour)
	require.NoError(t, err)
	inv.SetID(1)
	return inv
}

func TestAcceptInvitation_GrantsRole(t *testing.T) {
	inv := pendingInvitation(t, "vet@fazenda.com", 5, tenancy.RoleVeterinario)
	invRepo := newFakeInvitationRepo()
	invRepo.byToken[inv.Token()] = inv
	assignments := newFakeAssignmentRepo()

	uc := NewAcceptInvitationUseCase(invRepo, assignments, &fakeTxManager{}, noopLogger{})

	assignment, err := uc.Execute(context.Background(), AcceptInvitationCommand{
		UserID:    20,
		UserEmail: "vet@fazenda.com",
		Token:     inv.Token(),
	})

	require.NoError(t, err)
	require.NotNil(t, assignment)
	assert.Equal(t, uint(20), assignment.UserID())
	assert.Equal(t, uint(5), assignment.TenantID())
	assert.Equal(t, tenancy.RoleVeterinario, assignment.Role())
	assert.True(t, assignment.IsActive())
	assert.Equal(t, invitation.StatusAccepted, inv.Status())
	require.Len(t, assignments.created, 1)
}

func TestAcceptInvitation_DeactivatesPriorAssignment(t *testing.T) {
	inv := pendingInvitation(t, "vet@fazenda.com", 5, tenancy.RoleCompanyAdmin)
	invRepo := newFakeInvitationRepo()
	invRepo.byToken[inv.Token()] = inv
	assignments := newFakeAssignmentRepo()
	prior := adminAssignment(t, 20, 5, tenancy.RoleTecnico)
	assignments.active[20] = prior

	uc := NewAcceptInvitationUseCase(invRepo, assignments, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), AcceptInvitationCommand{
		UserID:    20,
		UserEmail: "vet@fazenda.com",
		Token:     inv.Token(),
	})

	require.NoError(t, err)
	assert.False(t, prior.IsActive(), "prior assignment must be deactivated, not deleted")
	require.Len(t, assignments.updated, 1)
	require.Len(t, assignments.created, 1)
}

func TestAcceptInvitation_EmailMismatch(t *testing.T) {
	inv := pendingInvitation(t, "vet@fazenda.com", 5, tenancy.RoleVeterinario)
	invRepo := newFakeInvitationRepo()
	invRepo.byToken[inv.Token()] = inv

	uc := NewAcceptInvitationUseCase(invRepo, newFakeAssignmentRepo(), &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), AcceptInvitationCommand{
		UserID:    20,
		UserEmail: "outra@pessoa.com",
		Token:     inv.Token(),
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}

func TestAcceptInvitation_Expired(t *testing.T) {
	inv := pendingInvitation(t, "vet@fazenda.com", 5, tenancy.RoleVeterinario)
	// force expiry by rebuilding with a past deadline
	inv = invitation.ReconstructInvitation(1, inv.Token(), inv.Email(), inv.TenantID(), inv.Role(),
		invitation.StatusPending, time.Now().UTC().Add(-time.Hour), nil,
		inv.CreatedAt(), inv.UpdatedAt())
	invRepo := newFakeInvitationRepo()
	invRepo.byToken[inv.Token()] = inv

	uc := NewAcceptInvitationUseCase(invRepo, newFakeAssignmentRepo(), &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), AcceptInvitationCommand{
		UserID:    20,
		UserEmail: "vet@fazenda.com",
		Token:     inv.Token(),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Equal(t, invitation.StatusExpired, inv.Status())
}

func TestAcceptInvitation_AlreadyAccepted(t *testing.T) {
	inv := pendingInvitation(t, "vet@fazenda.com", 5, tenancy.RoleVeterinario)
	require.NoError(t, inv.Accept())
	invRepo := newFakeInvitationRepo()
	invRepo.byToken[inv.Token()] = inv

	uc := NewAcceptInvitationUseCase(invRepo, newFakeAssignmentRepo(), &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), AcceptInvitationCommand{
		UserID:    20,
		UserEmail: "vet@fazenda.com",
		Token:     inv.Token(),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestAcceptInvitation_UnknownToken(t *testing.T) {
	uc := NewAcceptInvitationUseCase(newFakeInvitationRepo(), newFakeAssignmentRepo(), &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), AcceptInvitationCommand{
		UserID:    20,
		UserEmail: "vet@fazenda.com",
		Token:     "deadbeef",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestAcceptInvitation_TransactionFailure(t *testing.T) {
	inv := pendingInvitation(t, "vet@fazenda.com", 5, tenancy.RoleVeterinario)
	invRepo := newFakeInvitationRepo()
	invRepo.byToken[inv.Token()] = inv

	uc := NewAcceptInvitationUseCase(invRepo, newFakeAssignmentRepo(),
		&fakeTxManager{err: fmt.Errorf("deadlock")}, noopLogger{})

	_, err := uc.Execute(context.Background(), AcceptInvitationCommand{
		UserID:    20,
		UserEmail: "vet@fazenda.com",
		Token:     inv.Token(),
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

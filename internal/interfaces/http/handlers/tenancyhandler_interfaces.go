package handlers

import (
	"context"

	tenancyUsecases "rebanho/internal/application/tenancy/usecases"
)

// Use case interfaces for TenancyHandler

type resolveTenantContextUseCase interface {
	Execute(ctx context.Context, query tenancyUsecases.ResolveTenantContextQuery) (*tenancyUsecases.TenantContext, error)
}

type switchActiveTenantUseCase interface {
	Execute(ctx context.Context, cmd tenancyUsecases.SwitchActiveTenantCommand) error
}

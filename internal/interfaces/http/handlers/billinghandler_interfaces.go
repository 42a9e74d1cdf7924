package handlers

import (
	"context"

	billingUsecases "rebanho/internal/application/billing/usecases"
	"rebanho/internal/domain/billing"
)

// Use case interfaces for BillingHandler

type getSubscriptionUseCase interface {
	Execute(ctx context.Context, query billingUsecases.GetSubscriptionQuery) (*billing.Subscription, error)
}

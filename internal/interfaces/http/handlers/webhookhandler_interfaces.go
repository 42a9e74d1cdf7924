package handlers

import (
	"context"

	billingUsecases "rebanho/internal/application/billing/usecases"
)

// Use case interfaces for WebhookHandler

type processWebhookEventUseCase interface {
	Execute(ctx context.Context, cmd billingUsecases.ProcessWebhookEventCommand) error
}

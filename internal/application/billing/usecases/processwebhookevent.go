package usecases

import (
	"context"

	"rebanho/internal/application/billing/paymentgateway"
	"rebanho/internal/domain/billing"
	vo "rebanho/internal/domain/billing/valueobjects"
	"rebanho/internal/domain/user"
	apperrors "rebanho/internal/shared/errors"
	"rebanho/internal/shared/logger"
)

type ProcessWebhookEventCommand struct {
	Payload         []byte
	SignatureHeader string
}

// ProcessWebhookEventUseCase ingests a provider webhook delivery: verify the
// signature, record the event exactly once, apply the subscription change and
// mark the record processed. Redeliveries collapse onto the unique index of
// the event ledger.
type ProcessWebhookEventUseCase struct {
	gateway          paymentgateway.PaymentGateway
	eventRepo        billing.WebhookEventRepository
	subscriptionRepo billing.SubscriptionRepository
	userRepo         user.Repository
	logger           logger.Interface
}

func NewProcessWebhookEventUseCase(
	gateway paymentgateway.PaymentGateway,
	eventRepo billing.WebhookEventRepository,
	subscriptionRepo billing.SubscriptionRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ProcessWebhookEventUseCase {
	return &ProcessWebhookEventUseCase{
		gateway:          gateway,
		eventRepo:        eventRepo,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *ProcessWebhookEventUseCase) Execute(ctx context.Context, cmd ProcessWebhookEventCommand) error {
	if cmd.SignatureHeader == "" {
		return apperrors.NewUnauthorizedError("missing webhook signature header")
	}

	evt, err := uc.gateway.VerifyEvent(cmd.Payload, cmd.SignatureHeader)
	if err != nil {
		uc.logger.Warnw("webhook signature verification failed", "error", err)
		return apperrors.NewUnauthorizedError("invalid webhook signature", err.Error())
	}

	record, err := billing.NewWebhookEvent(evt.ID, evt.RawType, evt.Raw)
	if err != nil {
		return apperrors.NewValidationError("invalid webhook event", err.Error())
	}

	// Insert before processing. The unique index on the event ID is the dedup
	// ledger: a duplicate-key error means another delivery of this event
	// already won, so this one acknowledges and stops.
	if err := uc.eventRepo.Create(ctx, record); err != nil {
		if apperrors.IsDuplicateError(err) {
			uc.logger.Infow("duplicate webhook delivery ignored",
				"event_id", evt.ID,
				"event_type", evt.RawType,
			)
			return nil
		}
		uc.logger.Errorw("failed to record webhook event", "error", err, "event_id", evt.ID)
		return apperrors.NewInternalError("failed to record webhook event")
	}

	// On dispatch failure the record stays unprocessed and the provider
	// redelivers; the ledger keeps the retried side effects single.
	if err := uc.dispatch(ctx, evt); err != nil {
		return err
	}

	if err := uc.eventRepo.MarkProcessed(ctx, evt.ID); err != nil {
		uc.logger.Errorw("failed to mark webhook event processed", "error", err, "event_id", evt.ID)
		return apperrors.NewInternalError("failed to mark webhook event processed")
	}

	return nil
}

func (uc *ProcessWebhookEventUseCase) dispatch(ctx context.Context, evt *paymentgateway.Event) error {
	switch {
	case evt.IsSubscriptionChange():
		return uc.applySubscriptionChange(ctx, evt)
	case evt.Type == paymentgateway.EventPaymentSucceeded:
		// Hook point only; subscription state follows the subscription events.
		uc.logger.Infow("invoice payment succeeded", "event_id", evt.ID)
		return nil
	case evt.Type == paymentgateway.EventPaymentFailed:
		uc.logger.Warnw("invoice payment failed", "event_id", evt.ID)
		return nil
	default:
		uc.logger.Infow("unhandled webhook event type",
			"event_id", evt.ID,
			"event_type", evt.RawType,
		)
		return nil
	}
}

func (uc *ProcessWebhookEventUseCase) applySubscriptionChange(ctx context.Context, evt *paymentgateway.Event) error {
	data := evt.Subscription
	if data == nil {
		return apperrors.NewValidationError("subscription event missing payload")
	}

	email, err := uc.gateway.CustomerEmail(ctx, data.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to resolve customer email",
			"error", err,
			"event_id", evt.ID,
			"customer_id", data.CustomerID,
		)
		return apperrors.NewInternalError("failed to resolve customer")
	}

	usr, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			// No account matches the paying customer. Accept the event so the
			// provider does not retry an unresolvable mapping.
			uc.logger.Warnw("no user matches customer email, skipping subscription update",
				"event_id", evt.ID,
				"customer_id", data.CustomerID,
			)
			return nil
		}
		uc.logger.Errorw("failed to look up user by email", "error", err, "event_id", evt.ID)
		return apperrors.NewInternalError("failed to look up user")
	}

	status := vo.SubscriptionStatusFromProvider(data.ProviderStatus)
	tier := vo.PlanTierForUnitAmount(data.UnitAmount)

	sub, err := billing.NewSubscription(
		usr.ID(),
		tier,
		status,
		data.PeriodStart,
		data.PeriodEnd,
		data.CustomerID,
		data.SubscriptionID,
	)
	if err != nil {
		return apperrors.NewValidationError("invalid subscription state", err.Error())
	}

	if err := uc.subscriptionRepo.Upsert(ctx, sub); err != nil {
		uc.logger.Errorw("failed to upsert subscription", "error", err, "user_id", usr.ID())
		return apperrors.NewInternalError("failed to persist subscription state")
	}

	uc.logger.Infow("subscription state updated",
		"event_id", evt.ID,
		"user_id", usr.ID(),
		"tier", tier.String(),
		"status", status.String(),
	)

	return nil
}

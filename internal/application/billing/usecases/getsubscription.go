package usecases

import (
	"context"

	"rebanho/internal/domain/billing"
	apperrors "rebanho/internal/shared/errors"
	"rebanho/internal/shared/logger"
)

type GetSubscriptionQuery struct {
	UserID uint
}

// GetSubscriptionUseCase returns the user's subscription state. Users without
// a stored row are on the implicit free tier.
type GetSubscriptionUseCase struct {
	subscriptionRepo billing.SubscriptionRepository
	logger           logger.Interface
}

func NewGetSubscriptionUseCase(
	subscriptionRepo billing.SubscriptionRepository,
	logger logger.Interface,
) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, query GetSubscriptionQuery) (*billing.Subscription, error) {
	sub, err := uc.subscriptionRepo.GetByUserID(ctx, query.UserID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return billing.FreeSubscription(query.UserID), nil
		}
		uc.logger.Errorw("failed to get subscription", "error", err, "user_id", query.UserID)
		return nil, apperrors.NewInternalError("failed to get subscription")
	}

	return sub, nil
}

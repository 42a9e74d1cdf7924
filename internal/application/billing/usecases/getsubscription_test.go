package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebanho/internal/domain/billing"
	vo "rebanho/internal/domain/billing/valueobjects"
)

func TestGetSubscription_Existing(t *testing.T) {
	now := time.Now().UTC()
	stored, err := billing.NewSubscription(10, vo.PlanTierProfissional, vo.SubscriptionStatusActive,
		now, now.AddDate(0, 1, 0), "cus_1", "sub_1")
	require.NoError(t, err)

	repo := &fakeSubscriptionRepo{upserts: []*billing.Subscription{stored}}
	uc := NewGetSubscriptionUseCase(repo, noopLogger{})

	sub, err := uc.Execute(context.Background(), GetSubscriptionQuery{UserID: 10})

	require.NoError(t, err)
	assert.Equal(t, vo.PlanTierProfissional, sub.Tier())
	assert.True(t, sub.IsActive())
}

func TestGetSubscription_MissingRowIsFreeTier(t *testing.T) {
	repo := &fakeSubscriptionRepo{}
	uc := NewGetSubscriptionUseCase(repo, noopLogger{})

	sub, err := uc.Execute(context.Background(), GetSubscriptionQuery{UserID: 10})

	require.NoError(t, err)
	assert.Equal(t, vo.PlanTierFree, sub.Tier())
	assert.False(t, sub.IsActive())
}

func TestGetSubscription_StoreUnavailable(t *testing.T) {
	repo := &fakeSubscriptionRepo{}
	uc := NewGetSubscriptionUseCase(repo, noopLogger{})
	repo.upsertErr = fmt.Errorf("unused")

	// GetByUserID only fails via not-found in the fake; simulate transient
	// failure through a wrapper.
	failing := &failingSubscriptionRepo{}
	uc = NewGetSubscriptionUseCase(failing, noopLogger{})

	sub, err := uc.Execute(context.Background(), GetSubscriptionQuery{UserID: 10})

	require.Error(t, err)
	assert.Nil(t, sub)
}

type failingSubscriptionRepo struct{}

func (f *failingSubscriptionRepo) Upsert(ctx context.Context, sub *billing.Subscription) error {
	return fmt.Errorf("connection refused")
}

func (f *failingSubscriptionRepo) GetByUserID(ctx context.Context, userID uint) (*billing.Subscription, error) {
	return nil, fmt.Errorf("connection refused")
}

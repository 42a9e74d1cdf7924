package billing

import (
	"fmt"
	"time"

	vo "rebanho/internal/domain/billing/valueobjects"
	"rebanho/internal/shared/biztime"
)

// Subscription is the per-user subscription state. At most one row exists per
// user; it is created or overwritten whenever a subscription-change event is
// processed, never by direct user action.
type Subscription struct {
	id                 uint
	userID             uint
	tier               vo.PlanTier
	status             vo.SubscriptionStatus
	currentPeriodStart time.Time
	currentPeriodEnd   time.Time
	customerID         string
	subscriptionID     string

	createdAt time.Time
	updatedAt time.Time
}

func NewSubscription(
	userID uint,
	tier vo.PlanTier,
	status vo.SubscriptionStatus,
	periodStart, periodEnd time.Time,
	customerID, subscriptionID string,
) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid plan tier %q", tier)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status %q", status)
	}

	now := biztime.NowUTC()
	return &Subscription{
		userID:             userID,
		tier:               tier,
		status:             status,
		currentPeriodStart: periodStart,
		currentPeriodEnd:   periodEnd,
		customerID:         customerID,
		subscriptionID:     subscriptionID,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// FreeSubscription is the implicit state for users without a stored row.
func FreeSubscription(userID uint) *Subscription {
	now := biztime.NowUTC()
	return &Subscription{
		userID:    userID,
		tier:      vo.PlanTierFree,
		status:    vo.SubscriptionStatusInactive,
		createdAt: now,
		updatedAt: now,
	}
}

func (s *Subscription) IsActive() bool {
	return s.status == vo.SubscriptionStatusActive
}

func (s *Subscription) ID() uint {
	return s.id
}

func (s *Subscription) UserID() uint {
	return s.userID
}

func (s *Subscription) Tier() vo.PlanTier {
	return s.tier
}

func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}

func (s *Subscription) CurrentPeriodStart() time.Time {
	return s.currentPeriodStart
}

func (s *Subscription) CurrentPeriodEnd() time.Time {
	return s.currentPeriodEnd
}

func (s *Subscription) CustomerID() string {
	return s.customerID
}

func (s *Subscription) SubscriptionID() string {
	return s.subscriptionID
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetID sets the subscription ID after persistence (used by repository after Create)
func (s *Subscription) SetID(id uint) {
	s.id = id
}

func ReconstructSubscription(
	id uint,
	userID uint,
	tier vo.PlanTier,
	status vo.SubscriptionStatus,
	periodStart, periodEnd time.Time,
	customerID, subscriptionID string,
	createdAt, updatedAt time.Time,
) *Subscription {
	return &Subscription{
		id:                 id,
		userID:             userID,
		tier:               tier,
		status:             status,
		currentPeriodStart: periodStart,
		currentPeriodEnd:   periodEnd,
		customerID:         customerID,
		subscriptionID:     subscriptionID,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

package valueobjects

// SubscriptionStatus is the stored subscription state.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusInactive, SubscriptionStatusCanceled,
		SubscriptionStatusPastDue, SubscriptionStatusTrialing:
		return true
	}
	return false
}

// SubscriptionStatusFromProvider collapses the provider's status into the
// stored state: "active" and "trialing" both grant access, everything else
// does not.
func SubscriptionStatusFromProvider(providerStatus string) SubscriptionStatus {
	switch providerStatus {
	case "active", "trialing":
		return SubscriptionStatusActive
	default:
		return SubscriptionStatusInactive
	}
}

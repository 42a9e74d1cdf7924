package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionStatusFromProvider(t *testing.T) {
	tests := []struct {
		name           string
		providerStatus string
		want           SubscriptionStatus
	}{
		{"active maps to active", "active", SubscriptionStatusActive},
		{"trialing maps to active", "trialing", SubscriptionStatusActive},
		{"canceled maps to inactive", "canceled", SubscriptionStatusInactive},
		{"past_due maps to inactive", "past_due", SubscriptionStatusInactive},
		{"incomplete maps to inactive", "incomplete", SubscriptionStatusInactive},
		{"unpaid maps to inactive", "unpaid", SubscriptionStatusInactive},
		{"empty maps to inactive", "", SubscriptionStatusInactive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SubscriptionStatusFromProvider(tc.providerStatus))
		})
	}
}

package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWebhookEvent_ValidInput(t *testing.T) {
	payload := []byte(`{"id":"evt_123"}`)
	event, err := NewWebhookEvent("evt_123", "customer.subscription.updated", payload)

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "evt_123", event.EventID())
	assert.Equal(t, "customer.subscription.updated", event.EventType())
	assert.Equal(t, payload, event.Payload())
	assert.False(t, event.Processed())
	assert.WithinDuration(t, time.Now().UTC(), event.ReceivedAt(), time.Second)
}

func TestNewWebhookEvent_MissingEventID(t *testing.T) {
	event, err := NewWebhookEvent("", "customer.subscription.updated", nil)

	assert.Error(t, err)
	assert.Nil(t, event)
}

func TestNewWebhookEvent_MissingEventType(t *testing.T) {
	event, err := NewWebhookEvent("evt_123", "", nil)

	assert.Error(t, err)
	assert.Nil(t, event)
}

func TestWebhookEvent_MarkProcessed(t *testing.T) {
	event, err := NewWebhookEvent("evt_123", "invoice.payment_succeeded", nil)
	require.NoError(t, err)

	assert.False(t, event.Processed())

	event.MarkProcessed()
	assert.True(t, event.Processed())

	// terminal state, marking again is a no-op
	event.MarkProcessed()
	assert.True(t, event.Processed())
}

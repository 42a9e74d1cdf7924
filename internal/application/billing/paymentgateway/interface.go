// Package paymentgateway defines the boundary to the payment provider:
// webhook signature verification and customer lookup.
package paymentgateway

import (
	"context"
	"time"
)

// EventType classifies provider webhook events. One parsed variant exists per
// known type; everything else falls back to EventUnknown.
type EventType string

const (
	EventSubscriptionCreated EventType = "customer.subscription.created"
	EventSubscriptionUpdated EventType = "customer.subscription.updated"
	EventSubscriptionDeleted EventType = "customer.subscription.deleted"
	EventPaymentSucceeded    EventType = "invoice.payment_succeeded"
	EventPaymentFailed       EventType = "invoice.payment_failed"
	EventUnknown             EventType = "unknown"
)

// ParseEventType maps a provider type string onto the known set.
func ParseEventType(s string) EventType {
	switch EventType(s) {
	case EventSubscriptionCreated, EventSubscriptionUpdated, EventSubscriptionDeleted,
		EventPaymentSucceeded, EventPaymentFailed:
		return EventType(s)
	default:
		return EventUnknown
	}
}

// Event is the verified, parsed provider envelope. Subscription is set for
// subscription change events, Invoice for invoice events; unknown events carry
// only the identifiers and the raw body.
type Event struct {
	ID      string
	Type    EventType
	RawType string
	Raw     []byte

	Subscription *SubscriptionEventData
	Invoice      *InvoiceEventData
}

// IsSubscriptionChange reports whether the event mutates subscription state.
func (e *Event) IsSubscriptionChange() bool {
	switch e.Type {
	case EventSubscriptionCreated, EventSubscriptionUpdated, EventSubscriptionDeleted:
		return true
	}
	return false
}

// SubscriptionEventData is the parsed payload of a subscription change event.
// UnitAmount is the first price line item in minor currency units.
type SubscriptionEventData struct {
	SubscriptionID string
	CustomerID     string
	ProviderStatus string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	UnitAmount     int64
}

// InvoiceEventData is the parsed payload of an invoice event.
type InvoiceEventData struct {
	InvoiceID  string
	CustomerID string
	AmountDue  int64
}

// PaymentGateway is the provider SDK boundary.
type PaymentGateway interface {
	// VerifyEvent verifies the signature header against the raw body using
	// the shared signing secret, then parses the envelope. It must fail
	// without side effects on a bad or missing signature.
	VerifyEvent(payload []byte, signatureHeader string) (*Event, error)

	// CustomerEmail resolves the paying customer's email by provider ID.
	CustomerEmail(ctx context.Context, customerID string) (string, error)
}

// Package billing adapts the Stripe SDK to the payment gateway boundary.
package billing

import (
	"context"
	"encoding/json"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"rebanho/internal/application/billing/paymentgateway"
	"rebanho/internal/shared/biztime"
	"rebanho/internal/shared/config"
)

// StripeGateway verifies webhook signatures and resolves customers through
// the Stripe API.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

// NewStripeGateway creates a new StripeGateway instance.
func NewStripeGateway(cfg *config.BillingConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.StripeAPIKey, nil)

	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.StripeWebhookSecret,
	}
}

// VerifyEvent checks the Stripe-Signature header against the raw body and
// parses the envelope into the typed event union.
func (g *StripeGateway) VerifyEvent(payload []byte, signatureHeader string) (*paymentgateway.Event, error) {
	// tolerate SDK/API version drift; the fields we read are stable
	stripeEvent, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("failed to verify webhook signature: %w", err)
	}

	rawType := string(stripeEvent.Type)
	event := &paymentgateway.Event{
		ID:      stripeEvent.ID,
		Type:    paymentgateway.ParseEventType(rawType),
		RawType: rawType,
		Raw:     payload,
	}

	switch {
	case event.IsSubscriptionChange():
		data, err := parseSubscriptionData(stripeEvent.Data.Raw)
		if err != nil {
			return nil, err
		}
		event.Subscription = data
	case event.Type == paymentgateway.EventPaymentSucceeded || event.Type == paymentgateway.EventPaymentFailed:
		data, err := parseInvoiceData(stripeEvent.Data.Raw)
		if err != nil {
			return nil, err
		}
		event.Invoice = data
	}

	return event, nil
}

// CustomerEmail resolves the paying customer's email by Stripe customer ID.
func (g *StripeGateway) CustomerEmail(ctx context.Context, customerID string) (string, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx

	customer, err := g.api.Customers.Get(customerID, params)
	if err != nil {
		return "", fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}

	return customer.Email, nil
}

func parseSubscriptionData(raw json.RawMessage) (*paymentgateway.SubscriptionEventData, error) {
	var sub stripe.Subscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, fmt.Errorf("failed to parse subscription payload: %w", err)
	}

	data := &paymentgateway.SubscriptionEventData{
		SubscriptionID: sub.ID,
		ProviderStatus: string(sub.Status),
		PeriodStart:    biztime.FromUnix(sub.CurrentPeriodStart),
		PeriodEnd:      biztime.FromUnix(sub.CurrentPeriodEnd),
	}
	if sub.Customer != nil {
		data.CustomerID = sub.Customer.ID
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		data.UnitAmount = sub.Items.Data[0].Price.UnitAmount
	}

	return data, nil
}

func parseInvoiceData(raw json.RawMessage) (*paymentgateway.InvoiceEventData, error) {
	var inv stripe.Invoice
	if err := json.Unmarshal(raw, &inv); err != nil {
		return nil, fmt.Errorf("failed to parse invoice payload: %w", err)
	}

	data := &paymentgateway.InvoiceEventData{
		InvoiceID: inv.ID,
		AmountDue: inv.AmountDue,
	}
	if inv.Customer != nil {
		data.CustomerID = inv.Customer.ID
	}

	return data, nil
}

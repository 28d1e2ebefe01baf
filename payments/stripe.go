package payments

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/assettrack/subscription-api/registration"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"
)

var _ registration.PaymentGateway = &StripeGateway{}

type StripeGateway struct {
	intents       paymentintent.Client
	webhookSecret string
}

// NewStripeGateway creates a gateway talking to Stripe. A nil backend uses
// the default Stripe API backend.
func NewStripeGateway(secretKey, webhookSecret string, backend stripe.Backend) *StripeGateway {
	if backend == nil {
		backend = stripe.GetBackend(stripe.APIBackend)
	}

	return &StripeGateway{
		intents: paymentintent.Client{
			B:   backend,
			Key: secretKey,
		},
		webhookSecret: webhookSecret,
	}
}

func (s *StripeGateway) CreateCharge(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (registration.Charge, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := s.intents.New(params)
	if err != nil {
		return registration.Charge{}, registration.NewFailedToCreateChargeError(fmt.Sprintf("Failed to create payment intent for %d %s", amountMinorUnits, currency), err)
	}

	return registration.Charge{
		PaymentReference:    intent.ID,
		ClientPaymentHandle: intent.ClientSecret,
	}, nil
}

func (s *StripeGateway) VerifyAndParseEvent(payload []byte, signatureHeader string) (registration.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return registration.PaymentEvent{}, registration.NewInvalidSignatureError("Webhook signature verification failed", err)
	}

	result := registration.PaymentEvent{
		ID:          event.ID,
		Kind:        registration.EVENT_OTHER,
		GatewayType: string(event.Type),
	}

	switch event.Type {
	case stripe.EventTypePaymentIntentSucceeded:
		result.Kind = registration.EVENT_CHARGE_SUCCEEDED
	case stripe.EventTypePaymentIntentPaymentFailed:
		result.Kind = registration.EVENT_CHARGE_FAILED
	default:
		return result, nil
	}

	var intent stripe.PaymentIntent
	err = json.Unmarshal(event.Data.Raw, &intent)
	if err != nil {
		return registration.PaymentEvent{}, registration.NewInvalidMetadataError("payment_intent", err)
	}

	result.ChargeReference = intent.ID
	result.Metadata = intent.Metadata
	return result, nil
}

package registration

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/assettrack/subscription-api/pricing"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type ReconcileOutcome string

const (
	// The registration moved out of pending.
	OUTCOME_APPLIED ReconcileOutcome = "APPLIED"
	// The registration was already settled, nothing changed.
	OUTCOME_DUPLICATE ReconcileOutcome = "DUPLICATE"
	// The event kind is not one we act on.
	OUTCOME_IGNORED ReconcileOutcome = "IGNORED"
)

type ReconcileResult struct {
	EventID      string
	EventKind    PaymentEventKind
	Outcome      ReconcileOutcome
	Registration *Registration
}

type chargeMetadataFields struct {
	Email          string
	Company        string
	AssetCount     int
	DurationMonths int
	Price          decimal.Decimal
}

// ReconcilePayment applies a signed payment gateway event to the registration
// it refers to. Redelivered events are acknowledged without side effects.
func ReconcilePayment(ctx context.Context, payload []byte, signature string, repo Repository, gateway PaymentGateway) (ReconcileResult, error) {
	ctx, span := tracer.Start(ctx, "registration.ReconcilePayment")
	defer span.End()

	result, err := reconcilePayment(ctx, payload, signature, repo, gateway)
	span.SetAttributes(
		attribute.String("payment.event_id", result.EventID),
		attribute.String("payment.event_kind", string(result.EventKind)),
		attribute.String("payment.outcome", string(result.Outcome)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return result, err
}

func reconcilePayment(ctx context.Context, payload []byte, signature string, repo Repository, gateway PaymentGateway) (ReconcileResult, error) {
	event, err := gateway.VerifyAndParseEvent(payload, signature)
	if err != nil {
		var regErr *Error
		if errors.As(err, &regErr) {
			return ReconcileResult{}, err
		}
		return ReconcileResult{}, NewInvalidSignatureError("Failed to verify payment event", err)
	}

	result := ReconcileResult{
		EventID:   event.ID,
		EventKind: event.Kind,
	}

	switch event.Kind {
	case EVENT_CHARGE_SUCCEEDED:
		meta, err := parseChargeMetadata(event.Metadata)
		if err != nil {
			return result, err
		}

		expectedPrice := pricing.Compute(meta.AssetCount, meta.DurationMonths)
		if !pricing.Matches(expectedPrice, meta.Price) {
			return result, NewPriceMismatchError(expectedPrice.StringFixed(2), meta.Price.String())
		}

		return settlePayment(ctx, result, event.ChargeReference, PAYMENT_SUCCEEDED, repo)
	case EVENT_CHARGE_FAILED:
		return settlePayment(ctx, result, event.ChargeReference, PAYMENT_FAILED, repo)
	default:
		result.Outcome = OUTCOME_IGNORED
		return result, nil
	}
}

func settlePayment(ctx context.Context, result ReconcileResult, paymentReference string, status PaymentStatus, repo Repository) (ReconcileResult, error) {
	reg, err := repo.UpdatePaymentStatus(ctx, paymentReference, status)
	if err != nil {
		if HasReason(err, REASON_PAYMENT_ALREADY_SETTLED) {
			result.Outcome = OUTCOME_DUPLICATE
			result.Registration = &reg
			return result, nil
		}
		return result, err
	}

	result.Outcome = OUTCOME_APPLIED
	result.Registration = &reg
	return result, nil
}

func parseChargeMetadata(metadata map[string]string) (chargeMetadataFields, error) {
	for _, field := range []string{METADATA_EMAIL, METADATA_COMPANY, METADATA_ASSETS, METADATA_DURATION, METADATA_PRICING} {
		if strings.TrimSpace(metadata[field]) == "" {
			return chargeMetadataFields{}, NewMissingMetadataError(field)
		}
	}

	assets, err := strconv.Atoi(strings.TrimSpace(metadata[METADATA_ASSETS]))
	if err != nil || assets <= 0 || assets > pricing.MAX_ASSET_COUNT {
		return chargeMetadataFields{}, NewInvalidMetadataError(METADATA_ASSETS, err)
	}

	months, err := strconv.Atoi(strings.TrimSpace(metadata[METADATA_DURATION]))
	if err != nil || months <= 0 || months > pricing.MAX_DURATION_MONTHS {
		return chargeMetadataFields{}, NewInvalidMetadataError(METADATA_DURATION, err)
	}

	price, err := pricing.Parse(strings.TrimSpace(metadata[METADATA_PRICING]))
	if err != nil {
		return chargeMetadataFields{}, NewInvalidMetadataError(METADATA_PRICING, err)
	}

	return chargeMetadataFields{
		Email:          metadata[METADATA_EMAIL],
		Company:        metadata[METADATA_COMPANY],
		AssetCount:     assets,
		DurationMonths: months,
		Price:          price,
	}, nil
}

package registration

import "context"

// PaymentGateway is the external payment provider.
type PaymentGateway interface {
	CreateCharge(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (Charge, error)
	// VerifyAndParseEvent must authenticate payload against signatureHeader
	// before looking at its contents.
	VerifyAndParseEvent(payload []byte, signatureHeader string) (PaymentEvent, error)
}

type Charge struct {
	PaymentReference    string
	ClientPaymentHandle string
}

type PaymentEventKind string

const (
	EVENT_CHARGE_SUCCEEDED PaymentEventKind = "CHARGE_SUCCEEDED"
	EVENT_CHARGE_FAILED    PaymentEventKind = "CHARGE_FAILED"
	EVENT_OTHER            PaymentEventKind = "OTHER"
)

type PaymentEvent struct {
	ID              string
	Kind            PaymentEventKind
	GatewayType     string
	ChargeReference string
	Metadata        map[string]string
}

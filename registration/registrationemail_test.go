package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEmailSender struct {
	sent []email.Email
	err  error
}

func (m *mockEmailSender) SendEmail(ctx context.Context, e email.Email) error {
	m.sent = append(m.sent, e)
	return m.err
}

func TestSendPaymentConfirmationEmail(t *testing.T) {
	reg := Registration{
		Name:             "Jane",
		Email:            "jane@example.com",
		Company:          "Acme",
		AssetCount:       5,
		DurationMonths:   12,
		Price:            decimal.RequireFromString("480"),
		PaymentReference: "pi_123",
		PaymentStatus:    PAYMENT_SUCCEEDED,
	}

	t.Run("renders both bodies", func(t *testing.T) {
		sender := &mockEmailSender{}

		err := SendPaymentConfirmationEmail(context.Background(), sender, "Billing <billing@example.com>", reg)
		require.NoError(t, err)
		require.Len(t, sender.sent, 1)

		sent := sender.sent[0]
		assert.Equal(t, []string{"jane@example.com"}, sent.ToAddresses)
		assert.Equal(t, "Billing <billing@example.com>", sent.FromAddress)
		assert.Equal(t, "Subscription confirmed - Acme", sent.Subject)
		assert.Contains(t, sent.HTMLBody, "$480.00")
		assert.Contains(t, sent.HTMLBody, "Thanks, Jane!")
		assert.Contains(t, sent.TextBody, "Reference: pi_123")
		assert.Contains(t, sent.TextBody, "Duration: 12 month(s)")
	})

	t.Run("sender failure is returned", func(t *testing.T) {
		sender := &mockEmailSender{err: errors.New("ses throttled")}

		err := SendPaymentConfirmationEmail(context.Background(), sender, "billing@example.com", reg)
		assert.Error(t, err)
	})
}

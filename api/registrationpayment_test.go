package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/assettrack/subscription-api/payments"
	"github.com/assettrack/subscription-api/registration"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testWebhookPath = "/test/webhook"

func paidMetadata() map[string]string {
	return map[string]string{
		registration.METADATA_NAME:     "Ada",
		registration.METADATA_EMAIL:    "ada@example.com",
		registration.METADATA_COMPANY:  "Acme",
		registration.METADATA_ASSETS:   "5",
		registration.METADATA_DURATION: "1",
		registration.METADATA_PRICING:  "50",
	}
}

func pendingRegistration() registration.Registration {
	return registration.Registration{
		ID:               uuid.New(),
		Version:          1,
		Name:             "Ada",
		Email:            "ada@example.com",
		Company:          "Acme",
		AssetCount:       5,
		DurationMonths:   1,
		Price:            decimal.NewFromInt(50),
		PaymentReference: "pi_123",
		PaymentStatus:    registration.PAYMENT_PENDING,
	}
}

func serveWebhook(t *testing.T, api *API, body string, signature string) (*httptest.ResponseRecorder, WebhookAck) {
	t.Helper()

	handler := api.paymentWebhookMiddleware(testWebhookPath)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("request should not reach the next handler")
	}))

	req := httptest.NewRequest(http.MethodPost, testWebhookPath, strings.NewReader(body))
	req.Header.Set("Stripe-Signature", signature)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	var ack WebhookAck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	return w, ack
}

func TestPaymentWebhookMiddleware(t *testing.T) {
	t.Run("succeeded event settles and sends confirmation", func(t *testing.T) {
		deps := newTestDeps()
		deps.gateway.VerifyAndParseEventFunc = func(payload []byte, signatureHeader string) (registration.PaymentEvent, error) {
			assert.Equal(t, "payload", string(payload))
			assert.Equal(t, "sig", signatureHeader)
			return registration.PaymentEvent{
				ID:              "evt_1",
				Kind:            registration.EVENT_CHARGE_SUCCEEDED,
				ChargeReference: "pi_123",
				Metadata:        paidMetadata(),
			}, nil
		}
		deps.registrations.UpdatePaymentStatusFunc = func(ctx context.Context, paymentReference string, status registration.PaymentStatus) (registration.Registration, error) {
			assert.Equal(t, "pi_123", paymentReference)
			assert.Equal(t, registration.PAYMENT_SUCCEEDED, status)
			reg := pendingRegistration()
			reg.PaymentStatus = status
			reg.Version = 2
			return reg, nil
		}

		w, ack := serveWebhook(t, deps.api(), "payload", "sig")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, ack.Received)

		sent := deps.emailSender.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, []string{"ada@example.com"}, sent[0].ToAddresses)
		assert.Equal(t, "billing@example.com", sent[0].FromAddress)
	})

	t.Run("failed event marks payment failed without email", func(t *testing.T) {
		deps := newTestDeps()
		deps.gateway.VerifyAndParseEventFunc = func(payload []byte, signatureHeader string) (registration.PaymentEvent, error) {
			return registration.PaymentEvent{
				ID:              "evt_2",
				Kind:            registration.EVENT_CHARGE_FAILED,
				ChargeReference: "pi_123",
			}, nil
		}
		var gotStatus registration.PaymentStatus
		deps.registrations.UpdatePaymentStatusFunc = func(ctx context.Context, paymentReference string, status registration.PaymentStatus) (registration.Registration, error) {
			gotStatus = status
			reg := pendingRegistration()
			reg.PaymentStatus = status
			return reg, nil
		}

		w, ack := serveWebhook(t, deps.api(), "payload", "sig")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, ack.Received)
		assert.Equal(t, registration.PAYMENT_FAILED, gotStatus)
		assert.Empty(t, deps.emailSender.Sent())
	})

	t.Run("redelivered event is acknowledged without email", func(t *testing.T) {
		deps := newTestDeps()
		deps.gateway.VerifyAndParseEventFunc = func(payload []byte, signatureHeader string) (registration.PaymentEvent, error) {
			return registration.PaymentEvent{
				ID:              "evt_1",
				Kind:            registration.EVENT_CHARGE_SUCCEEDED,
				ChargeReference: "pi_123",
				Metadata:        paidMetadata(),
			}, nil
		}
		deps.registrations.UpdatePaymentStatusFunc = func(ctx context.Context, paymentReference string, status registration.PaymentStatus) (registration.Registration, error) {
			reg := pendingRegistration()
			reg.PaymentStatus = registration.PAYMENT_SUCCEEDED
			return reg, registration.NewPaymentAlreadySettledError(paymentReference, reg.PaymentStatus)
		}

		w, ack := serveWebhook(t, deps.api(), "payload", "sig")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, ack.Received)
		assert.Empty(t, deps.emailSender.Sent())
	})

	t.Run("other event kinds are ignored", func(t *testing.T) {
		deps := newTestDeps()
		deps.registrations.UpdatePaymentStatusFunc = func(ctx context.Context, paymentReference string, status registration.PaymentStatus) (registration.Registration, error) {
			t.Fatalf("store should not be touched")
			return registration.Registration{}, nil
		}

		w, ack := serveWebhook(t, deps.api(), "payload", "sig")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, ack.Received)
	})

	t.Run("email failure still acknowledges", func(t *testing.T) {
		deps := newTestDeps()
		deps.gateway.VerifyAndParseEventFunc = func(payload []byte, signatureHeader string) (registration.PaymentEvent, error) {
			return registration.PaymentEvent{
				ID:              "evt_1",
				Kind:            registration.EVENT_CHARGE_SUCCEEDED,
				ChargeReference: "pi_123",
				Metadata:        paidMetadata(),
			}, nil
		}
		deps.registrations.UpdatePaymentStatusFunc = func(ctx context.Context, paymentReference string, status registration.PaymentStatus) (registration.Registration, error) {
			reg := pendingRegistration()
			reg.PaymentStatus = status
			return reg, nil
		}
		deps.emailSender.SendEmailFunc = func(ctx context.Context, e email.Email) error {
			return errors.New("smtp down")
		}

		w, ack := serveWebhook(t, deps.api(), "payload", "sig")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, ack.Received)
	})

	errorCases := []struct {
		name           string
		event          registration.PaymentEvent
		verifyErr      error
		updateErr      error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "invalid signature",
			verifyErr:      registration.NewInvalidSignatureError("No signatures found matching the expected signature", nil),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Webhook Error: No signatures found matching the expected signature",
		},
		{
			name:           "verification failure without reason",
			verifyErr:      errors.New("bad header"),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Webhook Error: Failed to verify payment event",
		},
		{
			name: "missing metadata",
			event: registration.PaymentEvent{
				ID:              "evt_1",
				Kind:            registration.EVENT_CHARGE_SUCCEEDED,
				ChargeReference: "pi_123",
				Metadata:        map[string]string{registration.METADATA_EMAIL: "ada@example.com"},
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Missing metadata",
		},
		{
			name: "price mismatch",
			event: registration.PaymentEvent{
				ID:              "evt_1",
				Kind:            registration.EVENT_CHARGE_SUCCEEDED,
				ChargeReference: "pi_123",
				Metadata: func() map[string]string {
					m := paidMetadata()
					m[registration.METADATA_PRICING] = "10"
					return m
				}(),
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Price mismatch",
		},
		{
			name: "unknown payment reference",
			event: registration.PaymentEvent{
				ID:              "evt_1",
				Kind:            registration.EVENT_CHARGE_FAILED,
				ChargeReference: "pi_missing",
			},
			updateErr:      registration.NewRegistrationDoesNotExistsError("not found", nil),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "User not found",
		},
		{
			name: "store failure",
			event: registration.PaymentEvent{
				ID:              "evt_1",
				Kind:            registration.EVENT_CHARGE_FAILED,
				ChargeReference: "pi_123",
			},
			updateErr:      registration.NewTimeoutError("UpdatePaymentStatus timed out"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Server error during webhook processing",
		},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			deps := newTestDeps()
			deps.gateway.VerifyAndParseEventFunc = func(payload []byte, signatureHeader string) (registration.PaymentEvent, error) {
				return tc.event, tc.verifyErr
			}
			deps.registrations.UpdatePaymentStatusFunc = func(ctx context.Context, paymentReference string, status registration.PaymentStatus) (registration.Registration, error) {
				return registration.Registration{}, tc.updateErr
			}

			w, ack := serveWebhook(t, deps.api(), "payload", "sig")

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.False(t, ack.Received)
			assert.Equal(t, tc.expectedMsg, ack.Message)
			assert.Empty(t, deps.emailSender.Sent())
		})
	}

	t.Run("oversized body", func(t *testing.T) {
		deps := newTestDeps()
		deps.gateway.VerifyAndParseEventFunc = func(payload []byte, signatureHeader string) (registration.PaymentEvent, error) {
			t.Fatalf("oversized payload should not be verified")
			return registration.PaymentEvent{}, nil
		}

		w, ack := serveWebhook(t, deps.api(), strings.Repeat("a", maxWebhookBodyBytes+1), "sig")

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.False(t, ack.Received)
	})

	t.Run("other paths pass through", func(t *testing.T) {
		api := newTestDeps().api()
		var reached atomic.Bool
		handler := api.paymentWebhookMiddleware(testWebhookPath)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached.Store(true)
			w.WriteHeader(http.StatusTeapot)
		}))

		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("{}"))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.True(t, reached.Load())
		assert.Equal(t, http.StatusTeapot, w.Code)
	})
}

func TestPaymentWebhookWithStripeSignatures(t *testing.T) {
	const secret = "whsec_test_secret"

	signed := func(t *testing.T, eventType string, metadata map[string]string) (string, string) {
		t.Helper()

		payload, err := json.Marshal(map[string]any{
			"id":          "evt_signed",
			"object":      "event",
			"type":        eventType,
			"api_version": "2020-08-27",
			"data": map[string]any{
				"object": map[string]any{
					"id":       "pi_123",
					"object":   "payment_intent",
					"amount":   5000,
					"currency": "usd",
					"metadata": metadata,
				},
			},
		})
		require.NoError(t, err)

		s := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload: payload,
			Secret:  secret,
		})
		return string(s.Payload), s.Header
	}

	newAPI := func(updates *atomic.Int32) (*API, *mockEmailSender) {
		deps := newTestDeps()
		deps.registrations.UpdatePaymentStatusFunc = func(ctx context.Context, paymentReference string, status registration.PaymentStatus) (registration.Registration, error) {
			reg := pendingRegistration()
			if updates.Add(1) > 1 {
				reg.PaymentStatus = status
				return reg, registration.NewPaymentAlreadySettledError(paymentReference, status)
			}
			reg.PaymentStatus = status
			return reg, nil
		}
		gateway := payments.NewStripeGateway("sk_test_key", secret, nil)
		return NewAPI(deps.registrations, deps.surveys, noopLogger, LOCAL, gateway, deps.emailSender, "billing@example.com", nil), deps.emailSender
	}

	t.Run("valid signature settles once across redeliveries", func(t *testing.T) {
		var updates atomic.Int32
		api, sender := newAPI(&updates)
		body, header := signed(t, "payment_intent.succeeded", paidMetadata())

		for range 3 {
			w, ack := serveWebhook(t, api, body, header)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, ack.Received)
		}

		assert.Len(t, sender.Sent(), 1)
	})

	t.Run("tampered body is rejected before touching the store", func(t *testing.T) {
		var updates atomic.Int32
		api, _ := newAPI(&updates)
		body, header := signed(t, "payment_intent.succeeded", paidMetadata())
		tampered := string(bytes.Replace([]byte(body), []byte(`"50"`), []byte(`"0.5"`), 1))

		w, ack := serveWebhook(t, api, tampered, header)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, ack.Received)
		assert.True(t, strings.HasPrefix(ack.Message, "Webhook Error: "))
		assert.Equal(t, int32(0), updates.Load())
	})

	t.Run("unhandled event type", func(t *testing.T) {
		var updates atomic.Int32
		api, _ := newAPI(&updates)
		body, header := signed(t, "payment_intent.created", paidMetadata())

		w, ack := serveWebhook(t, api, body, header)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, ack.Received)
		assert.Equal(t, int32(0), updates.Load())
	})
}

package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/International-Combat-Archery-Alliance/middleware"
	"github.com/assettrack/subscription-api/registration"
)

const maxWebhookBodyBytes = 65536

func (a *API) paymentWebhookMiddleware(path string) middleware.MiddlewareFunc {
	server := http.NewServeMux()

	server.HandleFunc("POST "+path, func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		logger := a.getLoggerOrBaseLogger(ctx)

		r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes)
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("Failed to read payment webhook body", slog.String("error", err.Error()))

			status := http.StatusServiceUnavailable
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				status = http.StatusRequestEntityTooLarge
			}
			a.writeWebhookAck(w, r, status, WebhookAck{Received: false, Message: "Failed to read request body"})
			return
		}

		result, err := registration.ReconcilePayment(ctx, payload, r.Header.Get("Stripe-Signature"), a.registrations, a.gateway)
		if err != nil {
			status, message := webhookErrorResponse(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to reconcile payment", slog.String("error", err.Error()))
			} else if registration.HasReason(err, registration.REASON_INVALID_SIGNATURE) {
				logger.Warn("Rejected payment webhook", slog.String("error", err.Error()))
			} else {
				logger.Error("Payment webhook could not be applied", slog.String("error", err.Error()))
			}

			a.writeWebhookAck(w, r, status, WebhookAck{Received: false, Message: message})
			return
		}

		logger = logger.With(
			slog.String("event-id", result.EventID),
			slog.String("event-kind", string(result.EventKind)),
			slog.String("outcome", string(result.Outcome)),
		)
		logger.Info("Payment webhook reconciled")

		if result.Outcome == registration.OUTCOME_APPLIED &&
			result.EventKind == registration.EVENT_CHARGE_SUCCEEDED &&
			result.Registration != nil {
			err = registration.SendPaymentConfirmationEmail(ctx, a.emailSender, a.fromAddress, *result.Registration)
			if err != nil {
				// The payment is settled either way, so the webhook is still acknowledged.
				logger.Error("Failed to send payment confirmation email",
					slog.String("error", err.Error()),
					slog.String("email", result.Registration.Email),
				)
			}
		}

		a.writeWebhookAck(w, r, http.StatusOK, WebhookAck{Received: true})
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler, matchedPath := server.Handler(r)

			if matchedPath == "" {
				next.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}

func webhookErrorResponse(err error) (int, string) {
	var regErr *registration.Error
	if !errors.As(err, &regErr) {
		return http.StatusInternalServerError, "Server error during webhook processing"
	}

	switch regErr.Reason {
	case registration.REASON_INVALID_SIGNATURE:
		return http.StatusBadRequest, "Webhook Error: " + regErr.Message
	case registration.REASON_MISSING_METADATA, registration.REASON_INVALID_METADATA:
		return http.StatusBadRequest, "Missing metadata"
	case registration.REASON_PRICE_MISMATCH:
		return http.StatusBadRequest, "Price mismatch"
	case registration.REASON_REGISTRATION_DOES_NOT_EXIST:
		return http.StatusBadRequest, "User not found"
	default:
		return http.StatusInternalServerError, "Server error during webhook processing"
	}
}

func (a *API) writeWebhookAck(w http.ResponseWriter, r *http.Request, status int, ack WebhookAck) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(ack)
	if err != nil {
		a.getLoggerOrBaseLogger(r.Context()).Error("Failed to write webhook response", slog.String("error", err.Error()))
	}
}

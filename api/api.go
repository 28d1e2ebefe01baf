//go:generate go tool oapi-codegen --config openapi-codegen-config.yaml ../spec/api.yaml
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/assettrack/subscription-api/registration"
	"github.com/assettrack/subscription-api/survey"
)

const paymentWebhookPath = "/payment-webhook"

var _ StrictServerInterface = (*API)(nil)

type API struct {
	registrations  registration.Repository
	surveys        survey.Repository
	logger         *slog.Logger
	env            Environment
	gateway        registration.PaymentGateway
	emailSender    email.Sender
	fromAddress    string
	allowedOrigins []string
}

func NewAPI(
	registrations registration.Repository,
	surveys survey.Repository,
	logger *slog.Logger,
	env Environment,
	gateway registration.PaymentGateway,
	emailSender email.Sender,
	fromAddress string,
	allowedOrigins []string,
) *API {
	return &API{
		registrations:  registrations,
		surveys:        surveys,
		logger:         logger,
		env:            env,
		gateway:        gateway,
		emailSender:    emailSender,
		fromAddress:    fromAddress,
		allowedOrigins: allowedOrigins,
	}
}

// Handler builds the full middleware chain. The payment webhook is served
// ahead of request validation so its raw body reaches signature
// verification untouched.
func (a *API) Handler() (http.Handler, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("error loading openapi spec: %w", err)
	}
	swagger.Servers = nil

	strictHandler := NewStrictHandlerWithOptions(a, nil, StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  a.requestErrorHandler,
		ResponseErrorHandlerFunc: a.responseErrorHandler,
	})

	r := http.NewServeMux()
	HandlerWithOptions(strictHandler, StdHTTPServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: a.paramErrorHandler,
	})

	return useMiddlewares(
		r,
		a.openapiValidateMiddleware(swagger),
		middlewareFunc(a.paymentWebhookMiddleware(paymentWebhookPath)),
		a.loggingMiddleware(),
		a.requestContextMiddleware(),
		a.corsMiddleware(),
	), nil
}

func (a *API) ListenAndServe(ctx context.Context, host, port string) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}

	s := &http.Server{
		Handler:           handler,
		Addr:              net.JoinHostPort(host, port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", slog.String("addr", s.Addr))
		errCh <- s.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		a.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

func (a *API) GetHealth(ctx context.Context, request GetHealthRequestObject) (GetHealthResponseObject, error) {
	return GetHealth200JSONResponse{
		Message:   "Server is running",
		Timestamp: time.Now().UTC(),
	}, nil
}

func (a *API) requestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	a.writeError(w, r, http.StatusBadRequest, Error{
		Code:    InvalidBody,
		Message: err.Error(),
	})
}

func (a *API) paramErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	message := err.Error()
	var paramErr *InvalidParamFormatError
	if errors.As(err, &paramErr) && paramErr.ParamName == "id" {
		message = "Invalid survey id"
	}

	a.writeError(w, r, http.StatusBadRequest, Error{
		Code:    InputValidationError,
		Message: message,
	})
}

func (a *API) responseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	a.getLoggerOrBaseLogger(r.Context()).Error("Unhandled handler error", slog.String("error", err.Error()))

	message := "Internal server error"
	if requestId, ok := getRequestIdFromCtx(r.Context()); ok {
		message = fmt.Sprintf("Internal server error. Request id: %s", requestId)
	}
	a.writeError(w, r, http.StatusInternalServerError, Error{
		Code:    InternalError,
		Message: message,
	})
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, status int, e Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(e)
	if err != nil {
		a.getLoggerOrBaseLogger(r.Context()).Error("Failed to write error response", slog.String("error", err.Error()))
	}
}

package api

import (
	"context"
	"log/slog"
	"sync"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/assettrack/subscription-api/registration"
	"github.com/assettrack/subscription-api/survey"
	"github.com/google/uuid"
)

var noopLogger = slog.New(slog.DiscardHandler)

var _ registration.Repository = &mockRegistrationRepository{}

type mockRegistrationRepository struct {
	CreateRegistrationFunc                func(ctx context.Context, reg registration.Registration) (registration.Registration, error)
	GetRegistrationByEmailFunc            func(ctx context.Context, email string) (registration.Registration, error)
	GetRegistrationByPaymentReferenceFunc func(ctx context.Context, paymentReference string) (registration.Registration, error)
	UpdatePaymentStatusFunc               func(ctx context.Context, paymentReference string, status registration.PaymentStatus) (registration.Registration, error)
}

func (m *mockRegistrationRepository) CreateRegistration(ctx context.Context, reg registration.Registration) (registration.Registration, error) {
	if m.CreateRegistrationFunc != nil {
		return m.CreateRegistrationFunc(ctx, reg)
	}
	return reg, nil
}

func (m *mockRegistrationRepository) GetRegistrationByEmail(ctx context.Context, email string) (registration.Registration, error) {
	if m.GetRegistrationByEmailFunc != nil {
		return m.GetRegistrationByEmailFunc(ctx, email)
	}
	return registration.Registration{}, registration.NewRegistrationDoesNotExistsError("not found", nil)
}

func (m *mockRegistrationRepository) GetRegistrationByPaymentReference(ctx context.Context, paymentReference string) (registration.Registration, error) {
	if m.GetRegistrationByPaymentReferenceFunc != nil {
		return m.GetRegistrationByPaymentReferenceFunc(ctx, paymentReference)
	}
	return registration.Registration{}, registration.NewRegistrationDoesNotExistsError("not found", nil)
}

func (m *mockRegistrationRepository) UpdatePaymentStatus(ctx context.Context, paymentReference string, status registration.PaymentStatus) (registration.Registration, error) {
	if m.UpdatePaymentStatusFunc != nil {
		return m.UpdatePaymentStatusFunc(ctx, paymentReference, status)
	}
	return registration.Registration{}, registration.NewRegistrationDoesNotExistsError("not found", nil)
}

var _ registration.PaymentGateway = &mockPaymentGateway{}

type mockPaymentGateway struct {
	CreateChargeFunc        func(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (registration.Charge, error)
	VerifyAndParseEventFunc func(payload []byte, signatureHeader string) (registration.PaymentEvent, error)
}

func (m *mockPaymentGateway) CreateCharge(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (registration.Charge, error) {
	if m.CreateChargeFunc != nil {
		return m.CreateChargeFunc(ctx, amountMinorUnits, currency, metadata)
	}
	return registration.Charge{PaymentReference: "pi_test", ClientPaymentHandle: "pi_test_secret_123"}, nil
}

func (m *mockPaymentGateway) VerifyAndParseEvent(payload []byte, signatureHeader string) (registration.PaymentEvent, error) {
	if m.VerifyAndParseEventFunc != nil {
		return m.VerifyAndParseEventFunc(payload, signatureHeader)
	}
	return registration.PaymentEvent{ID: "evt_test", Kind: registration.EVENT_OTHER, GatewayType: "customer.created"}, nil
}

var _ survey.Repository = &mockSurveyRepository{}

type mockSurveyRepository struct {
	CreateSurveyFunc  func(ctx context.Context, s survey.Survey) (survey.Survey, error)
	GetSurveyFunc     func(ctx context.Context, id uuid.UUID) (survey.Survey, error)
	ListSurveysFunc   func(ctx context.Context, offset, limit int) ([]survey.Survey, int, error)
	UpdateSurveyFunc  func(ctx context.Context, s survey.Survey) (survey.Survey, error)
	DeleteSurveyFunc  func(ctx context.Context, id uuid.UUID) error
	SearchSurveysFunc func(ctx context.Context, params survey.SearchParams) ([]survey.Survey, error)
}

func (m *mockSurveyRepository) CreateSurvey(ctx context.Context, s survey.Survey) (survey.Survey, error) {
	if m.CreateSurveyFunc != nil {
		return m.CreateSurveyFunc(ctx, s)
	}
	return s, nil
}

func (m *mockSurveyRepository) GetSurvey(ctx context.Context, id uuid.UUID) (survey.Survey, error) {
	if m.GetSurveyFunc != nil {
		return m.GetSurveyFunc(ctx, id)
	}
	return survey.Survey{}, survey.NewSurveyDoesNotExistError("not found", nil)
}

func (m *mockSurveyRepository) ListSurveys(ctx context.Context, offset, limit int) ([]survey.Survey, int, error) {
	if m.ListSurveysFunc != nil {
		return m.ListSurveysFunc(ctx, offset, limit)
	}
	return []survey.Survey{}, 0, nil
}

func (m *mockSurveyRepository) UpdateSurvey(ctx context.Context, s survey.Survey) (survey.Survey, error) {
	if m.UpdateSurveyFunc != nil {
		return m.UpdateSurveyFunc(ctx, s)
	}
	return s, nil
}

func (m *mockSurveyRepository) DeleteSurvey(ctx context.Context, id uuid.UUID) error {
	if m.DeleteSurveyFunc != nil {
		return m.DeleteSurveyFunc(ctx, id)
	}
	return nil
}

func (m *mockSurveyRepository) SearchSurveys(ctx context.Context, params survey.SearchParams) ([]survey.Survey, error) {
	if m.SearchSurveysFunc != nil {
		return m.SearchSurveysFunc(ctx, params)
	}
	return []survey.Survey{}, nil
}

var _ email.Sender = &mockEmailSender{}

type mockEmailSender struct {
	SendEmailFunc func(ctx context.Context, e email.Email) error

	mu   sync.Mutex
	sent []email.Email
}

func (m *mockEmailSender) SendEmail(ctx context.Context, e email.Email) error {
	m.mu.Lock()
	m.sent = append(m.sent, e)
	m.mu.Unlock()

	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, e)
	}
	return nil
}

func (m *mockEmailSender) Sent() []email.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]email.Email(nil), m.sent...)
}

type testDeps struct {
	registrations *mockRegistrationRepository
	surveys       *mockSurveyRepository
	gateway       *mockPaymentGateway
	emailSender   *mockEmailSender
}

func newTestDeps() testDeps {
	return testDeps{
		registrations: &mockRegistrationRepository{},
		surveys:       &mockSurveyRepository{},
		gateway:       &mockPaymentGateway{},
		emailSender:   &mockEmailSender{},
	}
}

func (d testDeps) api() *API {
	return NewAPI(d.registrations, d.surveys, noopLogger, LOCAL, d.gateway, d.emailSender, "billing@example.com", nil)
}

func testCtx() context.Context {
	return ctxWithLogger(context.Background(), noopLogger)
}

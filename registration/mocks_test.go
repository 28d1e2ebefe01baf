package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

var _ Repository = &mockRegistrationRepository{}

type mockRegistrationRepository struct {
	CreateRegistrationFunc                func(ctx context.Context, reg Registration) (Registration, error)
	GetRegistrationByEmailFunc            func(ctx context.Context, email string) (Registration, error)
	GetRegistrationByPaymentReferenceFunc func(ctx context.Context, paymentReference string) (Registration, error)
	UpdatePaymentStatusFunc               func(ctx context.Context, paymentReference string, status PaymentStatus) (Registration, error)
}

func (m *mockRegistrationRepository) CreateRegistration(ctx context.Context, reg Registration) (Registration, error) {
	if m.CreateRegistrationFunc != nil {
		return m.CreateRegistrationFunc(ctx, reg)
	}
	return reg, nil
}

func (m *mockRegistrationRepository) GetRegistrationByEmail(ctx context.Context, email string) (Registration, error) {
	if m.GetRegistrationByEmailFunc != nil {
		return m.GetRegistrationByEmailFunc(ctx, email)
	}
	return Registration{}, NewRegistrationDoesNotExistsError("not found", nil)
}

func (m *mockRegistrationRepository) GetRegistrationByPaymentReference(ctx context.Context, paymentReference string) (Registration, error) {
	if m.GetRegistrationByPaymentReferenceFunc != nil {
		return m.GetRegistrationByPaymentReferenceFunc(ctx, paymentReference)
	}
	return Registration{}, NewRegistrationDoesNotExistsError("not found", nil)
}

func (m *mockRegistrationRepository) UpdatePaymentStatus(ctx context.Context, paymentReference string, status PaymentStatus) (Registration, error) {
	if m.UpdatePaymentStatusFunc != nil {
		return m.UpdatePaymentStatusFunc(ctx, paymentReference, status)
	}
	return Registration{}, NewRegistrationDoesNotExistsError("not found", nil)
}

var _ PaymentGateway = &mockPaymentGateway{}

type mockPaymentGateway struct {
	CreateChargeFunc        func(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (Charge, error)
	VerifyAndParseEventFunc func(payload []byte, signatureHeader string) (PaymentEvent, error)
}

func (m *mockPaymentGateway) CreateCharge(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (Charge, error) {
	if m.CreateChargeFunc != nil {
		return m.CreateChargeFunc(ctx, amountMinorUnits, currency, metadata)
	}
	return Charge{PaymentReference: "pi_test", ClientPaymentHandle: "pi_test_secret"}, nil
}

func (m *mockPaymentGateway) VerifyAndParseEvent(payload []byte, signatureHeader string) (PaymentEvent, error) {
	if m.VerifyAndParseEventFunc != nil {
		return m.VerifyAndParseEventFunc(payload, signatureHeader)
	}
	return PaymentEvent{}, errors.New("no event")
}

// memoryRepository behaves like the real store: unique email and payment
// reference, and a status update that is atomic per payment reference.
type memoryRepository struct {
	mu          sync.Mutex
	byReference map[string]Registration
	byEmail     map[string]string
	writes      int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		byReference: map[string]Registration{},
		byEmail:     map[string]string{},
	}
}

func (m *memoryRepository) CreateRegistration(ctx context.Context, reg Registration) (Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[reg.Email]; ok {
		return Registration{}, NewRegistrationAlreadyExistsError("email taken", nil)
	}
	if _, ok := m.byReference[reg.PaymentReference]; ok {
		return Registration{}, NewRegistrationAlreadyExistsError("reference taken", nil)
	}

	now := time.Now()
	reg.CreatedAt = now
	reg.UpdatedAt = now
	m.byReference[reg.PaymentReference] = reg
	m.byEmail[reg.Email] = reg.PaymentReference
	m.writes++
	return reg, nil
}

func (m *memoryRepository) GetRegistrationByEmail(ctx context.Context, email string) (Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ref, ok := m.byEmail[email]
	if !ok {
		return Registration{}, NewRegistrationDoesNotExistsError("not found", nil)
	}
	return m.byReference[ref], nil
}

func (m *memoryRepository) GetRegistrationByPaymentReference(ctx context.Context, paymentReference string) (Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg, ok := m.byReference[paymentReference]
	if !ok {
		return Registration{}, NewRegistrationDoesNotExistsError("not found", nil)
	}
	return reg, nil
}

func (m *memoryRepository) UpdatePaymentStatus(ctx context.Context, paymentReference string, status PaymentStatus) (Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg, ok := m.byReference[paymentReference]
	if !ok {
		return Registration{}, NewRegistrationDoesNotExistsError("not found", nil)
	}
	if reg.PaymentStatus != PAYMENT_PENDING {
		return reg, NewPaymentAlreadySettledError(paymentReference, reg.PaymentStatus)
	}

	reg.PaymentStatus = status
	reg.Version++
	reg.UpdatedAt = time.Now()
	m.byReference[paymentReference] = reg
	m.writes++
	return reg, nil
}

// fakeGateway issues sequential references and accepts events whose
// signature is "valid". Event payloads are JSON encoded PaymentEvents.
type fakeGateway struct {
	mu      sync.Mutex
	charges map[string]map[string]string
	amounts map[string]int64
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		charges: map[string]map[string]string{},
		amounts: map[string]int64{},
	}
}

func (f *fakeGateway) CreateCharge(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (Charge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ref := fmt.Sprintf("pi_%d", len(f.charges)+1)
	f.charges[ref] = metadata
	f.amounts[ref] = amountMinorUnits
	return Charge{PaymentReference: ref, ClientPaymentHandle: ref + "_secret"}, nil
}

func (f *fakeGateway) VerifyAndParseEvent(payload []byte, signatureHeader string) (PaymentEvent, error) {
	if signatureHeader != "valid" {
		return PaymentEvent{}, errors.New("signature mismatch")
	}

	var event PaymentEvent
	err := json.Unmarshal(payload, &event)
	if err != nil {
		return PaymentEvent{}, err
	}
	return event, nil
}

func (f *fakeGateway) event(id string, kind PaymentEventKind, ref string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()

	payload, err := json.Marshal(PaymentEvent{
		ID:              id,
		Kind:            kind,
		ChargeReference: ref,
		Metadata:        f.charges[ref],
	})
	if err != nil {
		panic(err)
	}
	return payload
}

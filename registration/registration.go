package registration

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/assettrack/subscription-api/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/assettrack/subscription-api/registration")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const ChargeCurrency = "usd"

// Keys of the metadata attached to a charge. The webhook only sees what is
// stored here, so it has to be enough to price the registration again.
const (
	METADATA_NAME     = "name"
	METADATA_EMAIL    = "email"
	METADATA_COMPANY  = "company"
	METADATA_ASSETS   = "assets"
	METADATA_DURATION = "duration"
	METADATA_PRICING  = "pricing"
)

type Repository interface {
	CreateRegistration(ctx context.Context, reg Registration) (Registration, error)
	GetRegistrationByEmail(ctx context.Context, email string) (Registration, error)
	GetRegistrationByPaymentReference(ctx context.Context, paymentReference string) (Registration, error)
	// UpdatePaymentStatus moves a pending registration to status in a single
	// conditional write. When the registration is already settled the current
	// record is returned together with a PAYMENT_ALREADY_SETTLED error.
	UpdatePaymentStatus(ctx context.Context, paymentReference string, status PaymentStatus) (Registration, error)
}

type PaymentStatus string

const (
	PAYMENT_PENDING   PaymentStatus = "pending"
	PAYMENT_SUCCEEDED PaymentStatus = "succeeded"
	PAYMENT_FAILED    PaymentStatus = "failed"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PAYMENT_SUCCEEDED || s == PAYMENT_FAILED
}

type Registration struct {
	ID               uuid.UUID
	Version          int
	Name             string
	Email            string
	Company          string
	AssetCount       int
	DurationMonths   int
	Price            decimal.Decimal
	PaymentReference string
	PaymentStatus    PaymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type RegisterParams struct {
	Name           string
	Email          string
	Company        string
	AssetCount     int
	DurationMonths int
	Price          decimal.Decimal
}

type RegisterResult struct {
	PaymentHandle string
	Registration  Registration
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func Register(ctx context.Context, params RegisterParams, repo Repository, gateway PaymentGateway) (RegisterResult, error) {
	ctx, span := tracer.Start(ctx, "registration.Register",
		trace.WithAttributes(
			attribute.Int("registration.assets", params.AssetCount),
			attribute.Int("registration.duration_months", params.DurationMonths),
		))
	defer span.End()

	result, err := register(ctx, params, repo, gateway)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return RegisterResult{}, err
	}

	span.SetAttributes(attribute.String("payment.reference", result.Registration.PaymentReference))
	return result, nil
}

func register(ctx context.Context, params RegisterParams, repo Repository, gateway PaymentGateway) (RegisterResult, error) {
	params.Email = NormalizeEmail(params.Email)
	params.Name = strings.TrimSpace(params.Name)
	params.Company = strings.TrimSpace(params.Company)

	err := validateRegisterParams(params)
	if err != nil {
		return RegisterResult{}, err
	}

	expectedPrice := pricing.Compute(params.AssetCount, params.DurationMonths)
	if !pricing.Matches(expectedPrice, params.Price) {
		return RegisterResult{}, NewPriceMismatchError(expectedPrice.StringFixed(2), params.Price.String())
	}

	_, err = repo.GetRegistrationByEmail(ctx, params.Email)
	if err == nil {
		return RegisterResult{}, NewRegistrationAlreadyExistsError(fmt.Sprintf("Registration with email %s already exists", params.Email), nil)
	}
	if !HasReason(err, REASON_REGISTRATION_DOES_NOT_EXIST) {
		return RegisterResult{}, NewFailedToFetchError(fmt.Sprintf("Failed to check for existing registration with email %s", params.Email), err)
	}

	charge, err := gateway.CreateCharge(ctx, pricing.MinorUnits(params.Price), ChargeCurrency, chargeMetadata(params))
	if err != nil {
		var regErr *Error
		if errors.As(err, &regErr) {
			return RegisterResult{}, err
		}
		return RegisterResult{}, NewFailedToCreateChargeError("Failed to create payment charge", err)
	}

	reg, err := repo.CreateRegistration(ctx, Registration{
		ID:               uuid.New(),
		Version:          1,
		Name:             params.Name,
		Email:            params.Email,
		Company:          params.Company,
		AssetCount:       params.AssetCount,
		DurationMonths:   params.DurationMonths,
		Price:            params.Price,
		PaymentReference: charge.PaymentReference,
		PaymentStatus:    PAYMENT_PENDING,
	})
	if err != nil {
		return RegisterResult{}, NewOrphanedChargeError(charge.PaymentReference, err)
	}

	return RegisterResult{
		PaymentHandle: charge.ClientPaymentHandle,
		Registration:  reg,
	}, nil
}

func validateRegisterParams(params RegisterParams) error {
	if params.Email == "" || params.Company == "" {
		return NewInvalidInputError("Required fields: email, company, assets, duration, pricing")
	}

	if !ValidEmail(params.Email) {
		return NewInvalidInputError("Please enter a valid email address")
	}

	if params.AssetCount <= 0 || params.DurationMonths <= 0 {
		return NewInvalidInputError("Assets and duration must be positive numbers")
	}

	if !pricing.InRange(params.AssetCount, params.DurationMonths) {
		return NewInvalidInputError(fmt.Sprintf("Assets must be at most %d and duration at most %d months", pricing.MAX_ASSET_COUNT, pricing.MAX_DURATION_MONTHS))
	}

	return nil
}

func chargeMetadata(params RegisterParams) map[string]string {
	return map[string]string{
		METADATA_NAME:     params.Name,
		METADATA_EMAIL:    params.Email,
		METADATA_COMPANY:  params.Company,
		METADATA_ASSETS:   strconv.Itoa(params.AssetCount),
		METADATA_DURATION: strconv.Itoa(params.DurationMonths),
		METADATA_PRICING:  params.Price.String(),
	}
}

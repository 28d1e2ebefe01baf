package api

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/assettrack/subscription-api/registration"
	"github.com/shopspring/decimal"
)

const requiredRegisterFields = "Required fields: email, company, assets, duration, pricing"

func (a *API) PostRegister(ctx context.Context, request PostRegisterRequestObject) (PostRegisterResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	if request.Body == nil {
		logger.Warn("Nil body for registration")

		return PostRegister400JSONResponse{
			Code:    EmptyBody,
			Message: "Must specify a body",
		}, nil
	}

	params, err := apiRegisterRequestToParams(*request.Body)
	if err != nil {
		logger.Warn("Invalid body for registration", slog.String("error", err.Error()))

		return PostRegister400JSONResponse{
			Code:    InputValidationError,
			Message: err.Error(),
		}, nil
	}

	result, err := registration.Register(ctx, params, a.registrations, a.gateway)
	if err != nil {
		var regErr *registration.Error
		if !errors.As(err, &regErr) {
			logger.Error("Unknown registration error", slog.String("error", err.Error()))

			return PostRegister500JSONResponse{
				Code:    InternalError,
				Message: "Server error during registration",
			}, nil
		}

		switch regErr.Reason {
		case registration.REASON_INVALID_INPUT:
			logger.Warn("Invalid registration input", slog.String("error", err.Error()))

			return PostRegister400JSONResponse{
				Code:    InputValidationError,
				Message: regErr.Message,
			}, nil
		case registration.REASON_PRICE_MISMATCH:
			logger.Warn("Registration price mismatch",
				slog.String("email", params.Email),
				slog.Int("assets", params.AssetCount),
				slog.Int("duration", params.DurationMonths),
				slog.String("error", err.Error()),
			)

			return PostRegister400JSONResponse{
				Code:    PriceMismatch,
				Message: regErr.Message,
			}, nil
		case registration.REASON_REGISTRATION_ALREADY_EXISTS:
			logger.Warn("Registration already exists", slog.String("email", params.Email))

			return PostRegister400JSONResponse{
				Code:    AlreadyExists,
				Message: "User with this email already exists",
			}, nil
		case registration.REASON_ORPHANED_CHARGE:
			logger.Error("Charge created but registration was not saved",
				slog.String("error", err.Error()),
				slog.String("email", params.Email),
			)

			if registration.HasReason(regErr.Cause, registration.REASON_REGISTRATION_ALREADY_EXISTS) {
				return PostRegister400JSONResponse{
					Code:    AlreadyExists,
					Message: "User with this email already exists",
				}, nil
			}
		default:
			logger.Error("Failed to register", slog.String("error", err.Error()))
		}

		return PostRegister500JSONResponse{
			Code:    InternalError,
			Message: "Server error during registration",
		}, nil
	}

	logger.Info("Registration saved with pending payment",
		slog.String("record-id", result.Registration.ID.String()),
		slog.String("payment-reference", result.Registration.PaymentReference),
	)

	return PostRegister201JSONResponse{
		Message:       "Proceed to payment",
		PaymentHandle: result.PaymentHandle,
		RecordId:      result.Registration.ID,
	}, nil
}

func apiRegisterRequestToParams(body RegisterRequest) (registration.RegisterParams, error) {
	if body.Assets == nil || body.Duration == nil || body.Pricing == nil {
		return registration.RegisterParams{}, errors.New(requiredRegisterFields)
	}

	assets, err := wholeNumber(*body.Assets)
	if err != nil {
		return registration.RegisterParams{}, err
	}
	duration, err := wholeNumber(*body.Duration)
	if err != nil {
		return registration.RegisterParams{}, err
	}

	params := registration.RegisterParams{
		Email:          body.Email,
		Company:        body.Company,
		AssetCount:     assets,
		DurationMonths: duration,
		Price:          *body.Pricing,
	}
	if body.Name != nil {
		params.Name = *body.Name
	}

	return params, nil
}

// maxWholeNumber is far above any priceable subscription but small enough
// that the conversion to int never wraps.
var maxWholeNumber = decimal.NewFromInt(math.MaxInt32)

func wholeNumber(d decimal.Decimal) (int, error) {
	if !d.IsInteger() {
		return 0, errors.New("Assets and duration must be whole numbers")
	}
	if d.Abs().GreaterThan(maxWholeNumber) {
		return 0, errors.New("Assets and duration are out of range")
	}
	return int(d.IntPart()), nil
}

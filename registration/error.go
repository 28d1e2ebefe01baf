package registration

import (
	"errors"
	"fmt"
)

type ErrorReason string

const (
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_FETCH                 ErrorReason = "FAILED_TO_FETCH"
	REASON_TIMEOUT                         ErrorReason = "TIMEOUT"
	REASON_INVALID_INPUT                   ErrorReason = "INVALID_INPUT"
	REASON_PRICE_MISMATCH                  ErrorReason = "PRICE_MISMATCH"
	REASON_REGISTRATION_DOES_NOT_EXIST     ErrorReason = "REGISTRATION_DOES_NOT_EXIST"
	REASON_REGISTRATION_ALREADY_EXISTS     ErrorReason = "REGISTRATION_ALREADY_EXISTS"
	REASON_PAYMENT_ALREADY_SETTLED         ErrorReason = "PAYMENT_ALREADY_SETTLED"
	REASON_FAILED_TO_CREATE_CHARGE         ErrorReason = "FAILED_TO_CREATE_CHARGE"
	REASON_ORPHANED_CHARGE                 ErrorReason = "ORPHANED_CHARGE"
	REASON_INVALID_SIGNATURE               ErrorReason = "INVALID_SIGNATURE"
	REASON_MISSING_METADATA                ErrorReason = "MISSING_METADATA"
	REASON_INVALID_METADATA                ErrorReason = "INVALID_METADATA"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newRegistrationError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

// HasReason reports whether err is a registration error with the given reason.
func HasReason(err error, reason ErrorReason) bool {
	var regErr *Error
	if !errors.As(err, &regErr) {
		return false
	}
	return regErr.Reason == reason
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewTimeoutError(message string) *Error {
	return newRegistrationError(REASON_TIMEOUT, message, nil)
}

func NewInvalidInputError(message string) *Error {
	return newRegistrationError(REASON_INVALID_INPUT, message, nil)
}

func NewPriceMismatchError(expected, received string) *Error {
	return newRegistrationError(REASON_PRICE_MISMATCH, fmt.Sprintf("Invalid pricing amount. Expected: %s, Received: %s", expected, received), nil)
}

func NewRegistrationAlreadyExistsError(message string, cause error) *Error {
	return newRegistrationError(REASON_REGISTRATION_ALREADY_EXISTS, message, cause)
}

func NewRegistrationDoesNotExistsError(message string, cause error) *Error {
	return newRegistrationError(REASON_REGISTRATION_DOES_NOT_EXIST, message, cause)
}

func NewPaymentAlreadySettledError(paymentReference string, status PaymentStatus) *Error {
	return newRegistrationError(REASON_PAYMENT_ALREADY_SETTLED, fmt.Sprintf("Payment %q is already %s", paymentReference, status), nil)
}

func NewFailedToCreateChargeError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_CREATE_CHARGE, message, cause)
}

func NewOrphanedChargeError(paymentReference string, cause error) *Error {
	return newRegistrationError(REASON_ORPHANED_CHARGE, fmt.Sprintf("Charge %q was created but its registration was not stored", paymentReference), cause)
}

func NewInvalidSignatureError(message string, cause error) *Error {
	return newRegistrationError(REASON_INVALID_SIGNATURE, message, cause)
}

func NewMissingMetadataError(field string) *Error {
	return newRegistrationError(REASON_MISSING_METADATA, fmt.Sprintf("Payment metadata is missing %q", field), nil)
}

func NewInvalidMetadataError(field string, cause error) *Error {
	return newRegistrationError(REASON_INVALID_METADATA, fmt.Sprintf("Payment metadata field %q is invalid", field), cause)
}

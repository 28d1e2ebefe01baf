package survey

import (
	"errors"
	"fmt"
)

type ErrorReason string

const (
	REASON_FAILED_TO_WRITE       ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_FETCH       ErrorReason = "FAILED_TO_FETCH"
	REASON_TIMEOUT               ErrorReason = "TIMEOUT"
	REASON_INVALID_INPUT         ErrorReason = "INVALID_INPUT"
	REASON_SURVEY_ALREADY_EXISTS ErrorReason = "SURVEY_ALREADY_EXISTS"
	REASON_SURVEY_DOES_NOT_EXIST ErrorReason = "SURVEY_DOES_NOT_EXIST"
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

func newSurveyError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func HasReason(err error, reason ErrorReason) bool {
	var surveyErr *Error
	if !errors.As(err, &surveyErr) {
		return false
	}
	return surveyErr.Reason == reason
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newSurveyError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newSurveyError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewTimeoutError(message string) *Error {
	return newSurveyError(REASON_TIMEOUT, message, nil)
}

func NewInvalidInputError(message string) *Error {
	return newSurveyError(REASON_INVALID_INPUT, message, nil)
}

func NewSurveyAlreadyExistsError(message string, cause error) *Error {
	return newSurveyError(REASON_SURVEY_ALREADY_EXISTS, message, cause)
}

func NewSurveyDoesNotExistError(message string, cause error) *Error {
	return newSurveyError(REASON_SURVEY_DOES_NOT_EXIST, message, cause)
}

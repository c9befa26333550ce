package errors

import (
	stderrors "errors"
	"fmt"
)

type ErrorCode string

const (
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData ErrorCode = "INVALID_REQUEST_DATA"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	ErrGetFailed          ErrorCode = "GET_FAILED"
	ErrCreateFailed       ErrorCode = "CREATE_FAILED"
	ErrUpdateFailed       ErrorCode = "UPDATE_FAILED"
	ErrDeleteFailed       ErrorCode = "DELETE_FAILED"

	// Auth
	ErrUnauthorized               ErrorCode = "UNAUTHORIZED"
	ErrForbidden                  ErrorCode = "FORBIDDEN"
	ErrTokenExpired               ErrorCode = "TOKEN_EXPIRED"
	ErrInvalidTokenFormat         ErrorCode = "INVALID_TOKEN_FORMAT"
	ErrMissingAuthorizationHeader ErrorCode = "MISSING_AUTHORIZATION_HEADER"

	// Event and participation rules
	ErrConflict                ErrorCode = "CONFLICT"
	ErrIllegalStateTransition  ErrorCode = "ILLEGAL_STATE_TRANSITION"
	ErrRequestNotPending       ErrorCode = "REQUEST_NOT_PENDING"
	ErrParticipantLimitReached ErrorCode = "PARTICIPANT_LIMIT_REACHED"
	ErrInvalidRange            ErrorCode = "INVALID_RANGE"
	ErrInvalidEventDateTime    ErrorCode = "INVALID_EVENT_DATE_TIME"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// FromError extracts an AppError carried through a plain error, wrapping
// anything else as an internal server error.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return NewAppError(ErrInternalServer, "internal server error", err)
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsConflict groups the codes answered with 409.
func IsConflict(code ErrorCode) bool {
	switch code {
	case ErrConflict, ErrAlreadyExists, ErrIllegalStateTransition, ErrRequestNotPending, ErrParticipantLimitReached:
		return true
	}
	return false
}

// IsBadRequest groups the codes answered with 400.
func IsBadRequest(code ErrorCode) bool {
	switch code {
	case ErrInvalidInput, ErrInvalidRequestData, ErrInvalidRange, ErrInvalidEventDateTime:
		return true
	}
	return false
}

package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("resource already in use")
	ErrInvalidInput        = errors.New("invalid input")
	ErrPreconditionFailed  = errors.New("precondition failed")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotPending          = errors.New("account is not pending review")
	ErrOtpInvalid          = errors.New("otp code is invalid")
	ErrOtpExpired          = errors.New("otp challenge has expired")
	ErrOtpAlreadyUsed      = errors.New("otp challenge already used")
	ErrOtpAttemptsExceeded = errors.New("otp attempt limit exceeded")
	ErrExhausted           = errors.New("code generation exhausted")
	ErrUpstream            = errors.New("upstream provider failure")
)

// AppError carries a stable machine-readable code alongside the HTTP
// status and a human-readable message. Err keeps the underlying cause
// for errors.Is matching; it is never serialized.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, "NOT_FOUND", message, ErrNotFound)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, "CONFLICT", message, ErrConflict)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "INVALID_INPUT", message, ErrInvalidInput)
}

func PreconditionFailed(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, "PRECONDITION_FAILED", message, ErrPreconditionFailed)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusForbidden, "UNAUTHORIZED", message, ErrUnauthorized)
}

func NotPending(message string) *AppError {
	return NewAppError(http.StatusConflict, "NOT_PENDING", message, ErrNotPending)
}

func Upstream(err error) *AppError {
	return NewAppError(http.StatusBadGateway, "UPSTREAM_FAILURE", "upstream provider failure", err)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "OPERATION_FAILED", "operation failed", err)
}

// OTP error constructors — these stay distinct so callers can tell a
// wrong code from a spent or expired challenge.
func OtpInvalid() *AppError {
	return NewAppError(http.StatusBadRequest, "OTP_INVALID", "verification code is incorrect", ErrOtpInvalid)
}

func OtpExpired() *AppError {
	return NewAppError(http.StatusGone, "OTP_EXPIRED", "verification code has expired", ErrOtpExpired)
}

func OtpAlreadyUsed() *AppError {
	return NewAppError(http.StatusConflict, "OTP_ALREADY_USED", "verification code already used", ErrOtpAlreadyUsed)
}

func OtpAttemptsExceeded() *AppError {
	return NewAppError(http.StatusTooManyRequests, "OTP_ATTEMPTS_EXCEEDED", "too many incorrect attempts", ErrOtpAttemptsExceeded)
}

func Exhausted(message string) *AppError {
	return NewAppError(http.StatusServiceUnavailable, "EXHAUSTED", message, ErrExhausted)
}

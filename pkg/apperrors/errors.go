package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the error type carried through the stores and the API layer.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError without an underlying cause.
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying error to a new AppError.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// CodeOf extracts the ErrorCode from err, or CodeUnknownError for foreign errors.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknownError
}

// NetworkError wraps a transport-level failure (connection refused, DNS, EOF).
func NetworkError(err error) *AppError {
	return Wrap(err, CodeNetworkError, "transport", "Request failed", 0)
}

// FromResponse maps a non-2xx backend response to an AppError. The backend
// reports failures as a message field; the stores treat every class the same
// way, the code only records which class it was.
func FromResponse(domain string, status int, message string) *AppError {
	if message == "" {
		message = http.StatusText(status)
	}
	switch {
	case status == http.StatusUnauthorized:
		return New(CodeUnauthorized, domain, message, status)
	case status == http.StatusForbidden:
		return New(CodeForbidden, domain, message, status)
	case status == http.StatusNotFound:
		return New(CodeNotFound, domain, message, status)
	case status == http.StatusConflict:
		return New(CodeConflict, domain, message, status)
	case status >= 400 && status < 500:
		return New(CodeValidationFailed, domain, message, status)
	default:
		return New(CodeExternalServiceError, domain, message, status)
	}
}

// ValidationError reports a local (pre-request) validation failure.
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).WithDetails(details)
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches on the error code so wrapped copies still compare equal
// to the predefined values.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors
var (
	// Authentication errors
	ErrUnauthenticated = NewDomainError("UNAUTHENTICATED", "authentication required")
	ErrInvalidToken    = NewDomainError("INVALID_TOKEN", "invalid or expired token")
	ErrForbidden       = NewDomainError("FORBIDDEN", "insufficient privileges")
	ErrNotOwner        = NewDomainError("NOT_OWNER", "resource belongs to another user")

	// OTP errors, kept distinct so the client can tell the user
	// whether to retype the code or request a new one
	ErrOtpNotFound = NewDomainError("OTP_NOT_FOUND", "no active code, request a new one")
	ErrOtpMismatch = NewDomainError("OTP_MISMATCH", "incorrect code")
	ErrOtpExpired  = NewDomainError("OTP_EXPIRED", "code has expired, request a new one")

	// Entity errors
	ErrUserNotFound     = NewDomainError("USER_NOT_FOUND", "user not found")
	ErrActivityNotFound = NewDomainError("ACTIVITY_NOT_FOUND", "activity not found")
	ErrPartnerNotFound  = NewDomainError("PARTNER_NOT_FOUND", "partner not found")
	ErrWorkNotFound     = NewDomainError("WORK_NOT_FOUND", "daily work entry not found")
	ErrEmailExists      = NewDomainError("EMAIL_EXISTS", "email already registered")

	// Validation errors
	ErrInvalidInput = NewDomainError("INVALID_INPUT", "invalid input")
	ErrInvalidRole  = NewDomainError("INVALID_ROLE", "unknown role")

	// Throttling
	ErrTooManyRequests = NewDomainError("TOO_MANY_REQUESTS", "too many requests, try again later")

	// System errors
	ErrInternal = NewDomainError("INTERNAL_ERROR", "internal server error")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes
// This should only be used in the handler/presentation layer
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	// Default to internal server error for unknown errors
	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request
	case "INVALID_INPUT", "INVALID_ROLE",
		"OTP_NOT_FOUND", "OTP_MISMATCH", "OTP_EXPIRED":
		return http.StatusBadRequest

	// 401 Unauthorized
	case "UNAUTHENTICATED", "INVALID_TOKEN":
		return http.StatusUnauthorized

	// 403 Forbidden
	case "FORBIDDEN", "NOT_OWNER":
		return http.StatusForbidden

	// 404 Not Found
	case "USER_NOT_FOUND", "ACTIVITY_NOT_FOUND", "PARTNER_NOT_FOUND", "WORK_NOT_FOUND":
		return http.StatusNotFound

	// 409 Conflict
	case "EMAIL_EXISTS":
		return http.StatusConflict

	// 429 Too Many Requests
	case "TOO_MANY_REQUESTS":
		return http.StatusTooManyRequests

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts the user-facing error message.
// Internal detail wrapped inside a domain error is never exposed.
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}

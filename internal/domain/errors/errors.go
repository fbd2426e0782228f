// Package errors defines the application error contract: every failure that
// can surface to a client carries an HTTP status, a business error code and
// a user-facing message.
package errors

import (
	"net/http"

	"laundrify/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is reports whether target carries the same business error code. This keeps
// errors.Is working on detail-enriched copies of a predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Address not found",
		"",
	)

	ErrAddressIncomplete = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_INCOMPLETE",
		"Address is missing required details",
		"",
	)

	ErrAddressSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"ADDRESS_SAVE_FAILED",
		"Failed to save address",
		"",
	)

	// Service-area errors block the save flow with a dedicated modal
	// state, unlike plain validation failures.
	ErrAreaNotServiceable = NewBaseError(
		http.StatusUnprocessableEntity,
		"AREA_NOT_SERVICEABLE",
		"Sorry, we do not deliver to this area yet",
		"",
	)

	ErrAvailabilityUnknown = NewBaseError(
		http.StatusServiceUnavailable,
		"AVAILABILITY_UNKNOWN",
		"Could not verify service availability, please retry",
		"",
	)

	// Geocoding errors
	ErrPlaceNotFound = NewBaseError(
		http.StatusNotFound,
		"PLACE_NOT_FOUND",
		"No matching place was found",
		"",
	)

	ErrGeocodeExhausted = NewBaseError(
		http.StatusBadGateway,
		"GEOCODE_EXHAUSTED",
		"All geocoding providers are unavailable",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Backend synchronization errors
	ErrBackendRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"BACKEND_RATE_LIMITED",
		"Too many requests, please try again later",
		"",
	)

	// Referral errors
	ErrReferralNotFound = NewBaseError(
		http.StatusNotFound,
		"REFERRAL_NOT_FOUND",
		"Referral code not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// StorageExecuteError represents a local storage failure, implementing the
// AppError interface.
type StorageExecuteError struct {
	err     error
	details string
}

// NewStorageExecuteError creates a storage-related error
func NewStorageExecuteError(err error, details string) AppError {
	return &StorageExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageExecuteError) Error() string {
	return errors.Wrap(e.err, "storage execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StorageExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageExecuteError) ErrorCode() string {
	return "STORAGE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageExecuteError) Message() string {
	return "Local storage operation failed"
}

// Details returns detailed error information
func (e *StorageExecuteError) Details() string {
	return e.details
}

package errors

import (
	"net/http"

	"agrimatch/internal/errors"
)

// AppError is an error that knows how it should be rendered to API clients.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is a coded error with a client-safe message.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func newBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

var (
	ErrPartyNotFound    = newBaseError(http.StatusNotFound, "PARTY_NOT_FOUND", "party not found")
	ErrPairingNotFound  = newBaseError(http.StatusNotFound, "PAIRING_NOT_FOUND", "pairing not found")
	ErrInvalidDecision  = newBaseError(http.StatusBadRequest, "INVALID_DECISION", "decision must be accepted or rejected")
	ErrInvalidPairingID = newBaseError(http.StatusBadRequest, "INVALID_PAIRING_ID", "invalid pairing id")
	ErrValidationFailed = newBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed")
	ErrConflict         = newBaseError(http.StatusConflict, "CONFLICT", "resource conflict")
)

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy carrying details. The copy still matches the
// original under errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	cp := *e
	cp.details = details

	return &cp
}

// Is compares business codes.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

// DatabaseExecuteError wraps a driver failure as a 500.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }

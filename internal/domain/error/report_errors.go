// Package error defines domain-specific errors for the transport ledger backend.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidDateRange is returned when `to` is before `from` in a report request.
	ErrInvalidDateRange = errors.New("to must not be before from")

	// ErrInvalidDateFormat is returned when a report date is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidForecastPeriod is returned when periodMonths is not a positive integer.
	ErrInvalidForecastPeriod = errors.New("period months must be a positive integer")

	// ErrDataAccess is returned when a repository read fails during report generation.
	ErrDataAccess = errors.New("repository read failed")

	// ErrMalformedRecord is returned when a stored money or date field cannot be parsed.
	ErrMalformedRecord = errors.New("malformed record")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange      ReportErrorCode = "RPT-010001"
	ErrCodeInvalidDateFormat     ReportErrorCode = "RPT-010002"
	ErrCodeInvalidForecastPeriod ReportErrorCode = "RPT-010003"

	// Data errors (02XXXX)
	ErrCodeMalformedRecord ReportErrorCode = "RPT-020001"

	// Internal errors (99XXXX)
	ErrCodeDataAccess ReportErrorCode = "RPT-990001"
)

// ReportError represents a report-generation error with code and message.
// Any ReportError aborts the whole report computation; partial results are
// never returned.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewDataAccessError wraps a failed repository read as a ReportError.
func NewDataAccessError(message string, err error) *ReportError {
	return &ReportError{
		Code:    ErrCodeDataAccess,
		Message: message,
		Err:     err,
	}
}

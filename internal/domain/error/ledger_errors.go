// Package error defines domain-specific errors for the transport ledger backend.
package error

import "errors"

// Ledger (CRUD) domain errors.
var (
	// ErrInvalidAmount is returned when a money field is missing, negative or unparseable.
	ErrInvalidAmount = errors.New("amount must be a non-negative decimal")

	// ErrInvalidBillingPeriod is returned when a billing period is not YYYY-MM.
	ErrInvalidBillingPeriod = errors.New("billing period must be YYYY-MM")

	// ErrInvalidIncomeType is returned when an income type is not route or adhoc.
	ErrInvalidIncomeType = errors.New("income type must be: route or adhoc")

	// ErrInvalidRouteType is returned when a route type is not owned or subcontracted.
	ErrInvalidRouteType = errors.New("route type must be: owned or subcontracted")

	// ErrInvalidWorkerType is returned when a worker type is not local or foreign.
	ErrInvalidWorkerType = errors.New("worker type must be: local or foreign")

	// ErrInvalidRecurringFrequency is returned when a recurring frequency is not
	// monthly, quarterly or yearly.
	ErrInvalidRecurringFrequency = errors.New("recurring frequency must be: monthly, quarterly or yearly")

	// ErrLevyOnLocalWorker is returned when a levy is supplied for a local worker.
	ErrLevyOnLocalWorker = errors.New("local workers cannot carry a foreign worker levy")

	// ErrSubcontractorCostMissing is returned when a subcontracted route has no cost.
	ErrSubcontractorCostMissing = errors.New("subcontracted routes require a subcontractor cost")
)

// LedgerErrorCode defines error codes for ledger CRUD errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount             LedgerErrorCode = "LGR-010001"
	ErrCodeInvalidBillingPeriod      LedgerErrorCode = "LGR-010002"
	ErrCodeInvalidIncomeType         LedgerErrorCode = "LGR-010003"
	ErrCodeInvalidRouteType          LedgerErrorCode = "LGR-010004"
	ErrCodeInvalidWorkerType         LedgerErrorCode = "LGR-010005"
	ErrCodeInvalidRecurringFrequency LedgerErrorCode = "LGR-010006"
	ErrCodeLevyOnLocalWorker         LedgerErrorCode = "LGR-010007"
	ErrCodeSubcontractorCostMissing  LedgerErrorCode = "LGR-010008"

	// Internal errors (99XXXX)
	ErrCodeLedgerInternalError LedgerErrorCode = "LGR-990001"
)

// LedgerError represents a CRUD validation or persistence error.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

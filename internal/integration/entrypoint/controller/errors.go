// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/transport-ledger/backend/internal/domain/error"
	"github.com/transport-ledger/backend/internal/integration/entrypoint/dto"
)

// handleReportError maps report errors to HTTP responses.
func handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(getStatusCodeForReportError(reportErr.Code), dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidForecastPeriod:
		return http.StatusBadRequest
	case domainerror.ErrCodeMalformedRecord,
		domainerror.ErrCodeDataAccess:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// handleLedgerError maps ledger CRUD errors to HTTP responses.
func handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(getStatusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLedgerError maps ledger error codes to HTTP status codes.
func getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidBillingPeriod,
		domainerror.ErrCodeInvalidIncomeType,
		domainerror.ErrCodeInvalidRouteType,
		domainerror.ErrCodeInvalidWorkerType,
		domainerror.ErrCodeInvalidRecurringFrequency,
		domainerror.ErrCodeLevyOnLocalWorker,
		domainerror.ErrCodeSubcontractorCostMissing:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/transport-ledger/backend/internal/application/usecase/report"
	domainerror "github.com/transport-ledger/backend/internal/domain/error"
	"github.com/transport-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/transport-ledger/backend/internal/integration/export"
)

// ReportController handles profit and loss report endpoints.
type ReportController struct {
	getProfitAndLossUseCase *report.GetProfitAndLossUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(getProfitAndLossUseCase *report.GetProfitAndLossUseCase) *ReportController {
	return &ReportController{
		getProfitAndLossUseCase: getProfitAndLossUseCase,
	}
}

// GetProfitAndLoss handles GET /reports/profit-loss requests.
// The range defaults to January 1st of the current year through today.
func (c *ReportController) GetProfitAndLoss(ctx *gin.Context) {
	input, ok := c.parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.getProfitAndLossUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfitAndLossResponse(output))
}

// ExportProfitAndLossPDF handles GET /reports/profit-loss/pdf requests.
func (c *ReportController) ExportProfitAndLossPDF(ctx *gin.Context) {
	input, ok := c.parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.getProfitAndLossUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	pdf, err := export.RenderProfitAndLossPDF(output)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to render PDF",
		})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="profit-and-loss.pdf"`)
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}

// parseRange reads the from/to query parameters, applying the defaults. It
// writes the error response itself and returns ok=false on bad input.
func (c *ReportController) parseRange(ctx *gin.Context) (report.GetProfitAndLossInput, bool) {
	now := time.Now()
	input := report.GetProfitAndLossInput{
		From: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}

	if fromStr := ctx.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid from date. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return input, false
		}
		input.From = from
	}

	if toStr := ctx.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid to date. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return input, false
		}
		input.To = to
	}

	return input, true
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/transport-ledger/backend/internal/application/usecase/forecast"
	domainerror "github.com/transport-ledger/backend/internal/domain/error"
	"github.com/transport-ledger/backend/internal/integration/entrypoint/dto"
)

// ForecastController handles cash-flow forecast endpoints.
type ForecastController struct {
	getCashFlowForecastUseCase *forecast.GetCashFlowForecastUseCase
}

// NewForecastController creates a new forecast controller instance.
func NewForecastController(getCashFlowForecastUseCase *forecast.GetCashFlowForecastUseCase) *ForecastController {
	return &ForecastController{
		getCashFlowForecastUseCase: getCashFlowForecastUseCase,
	}
}

// GetCashFlowForecast handles GET /forecast/cashflow requests.
func (c *ForecastController) GetCashFlowForecast(ctx *gin.Context) {
	input := forecast.GetCashFlowForecastInput{
		PeriodMonths: forecast.DefaultPeriodMonths,
	}

	if monthsStr := ctx.Query("months"); monthsStr != "" {
		months, err := strconv.Atoi(monthsStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid months parameter",
				Code:  string(domainerror.ErrCodeInvalidForecastPeriod),
			})
			return
		}
		input.PeriodMonths = months
	}

	output, err := c.getCashFlowForecastUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashFlowForecastResponse(output))
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/transport-ledger/backend/internal/application/usecase/dashboard"
	"github.com/transport-ledger/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getStatsUseCase *dashboard.GetStatsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getStatsUseCase *dashboard.GetStatsUseCase) *DashboardController {
	return &DashboardController{
		getStatsUseCase: getStatsUseCase,
	}
}

// GetStats handles GET /dashboard/stats requests.
func (c *DashboardController) GetStats(ctx *gin.Context) {
	output, err := c.getStatsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(output))
}

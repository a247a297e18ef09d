// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/application/usecase/ledger"
	"github.com/transport-ledger/backend/internal/domain/entity"
	"github.com/transport-ledger/backend/internal/integration/entrypoint/dto"
)

// RouteController handles route endpoints.
type RouteController struct {
	createUseCase *ledger.CreateRouteUseCase
	listUseCase   *ledger.ListRoutesUseCase
}

// NewRouteController creates a new route controller instance.
func NewRouteController(
	createUseCase *ledger.CreateRouteUseCase,
	listUseCase *ledger.ListRoutesUseCase,
) *RouteController {
	return &RouteController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /routes requests.
func (c *RouteController) List(ctx *gin.Context) {
	routes, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve routes",
		})
		return
	}

	response := make([]dto.RouteResponse, len(routes))
	for i, route := range routes {
		response[i] = dto.ToRouteResponse(route)
	}
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /routes requests.
func (c *RouteController) Create(ctx *gin.Context) {
	var req dto.CreateRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	customerID, ok := parseOptionalUUID(ctx, req.CustomerID, "customer ID")
	if !ok {
		return
	}
	vehicleID, ok := parseOptionalUUID(ctx, req.VehicleID, "vehicle ID")
	if !ok {
		return
	}

	var subcontractorCost *decimal.Decimal
	if req.SubcontractorCost != nil {
		cost := decimal.NewFromFloat(*req.SubcontractorCost)
		subcontractorCost = &cost
	}

	input := ledger.CreateRouteInput{
		Name:              req.Name,
		CustomerID:        customerID,
		VehicleID:         vehicleID,
		MonthlyRate:       decimal.NewFromFloat(req.MonthlyRate),
		RouteType:         entity.RouteType(req.RouteType),
		SubcontractorCost: subcontractorCost,
	}

	route, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRouteResponse(route))
}

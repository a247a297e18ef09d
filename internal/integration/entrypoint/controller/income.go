// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/application/usecase/ledger"
	"github.com/transport-ledger/backend/internal/domain/entity"
	"github.com/transport-ledger/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles income entry endpoints.
type IncomeController struct {
	createUseCase *ledger.CreateIncomeEntryUseCase
	listUseCase   *ledger.ListIncomeEntriesUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	createUseCase *ledger.CreateIncomeEntryUseCase,
	listUseCase *ledger.ListIncomeEntriesUseCase,
) *IncomeController {
	return &IncomeController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /income requests.
func (c *IncomeController) List(ctx *gin.Context) {
	entries, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve income entries",
		})
		return
	}

	response := make([]dto.IncomeEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = dto.ToIncomeEntryResponse(entry)
	}
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /income requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	var req dto.CreateIncomeEntryRequest
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
	routeID, ok := parseOptionalUUID(ctx, req.RouteID, "route ID")
	if !ok {
		return
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format. Use YYYY-MM-DD",
			})
			return
		}
		dueDate = &parsed
	}

	input := ledger.CreateIncomeEntryInput{
		CustomerID:    customerID,
		RouteID:       routeID,
		Amount:        decimal.NewFromFloat(req.Amount),
		BillingPeriod: req.BillingPeriod,
		IncomeType:    entity.IncomeType(req.IncomeType),
		Description:   req.Description,
		DueDate:       dueDate,
	}

	entry, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeEntryResponse(entry))
}

// parseOptionalUUID parses an optional UUID string from a request body. It
// writes the error response itself and returns ok=false on bad input.
func parseOptionalUUID(ctx *gin.Context, value *string, field string) (*uuid.UUID, bool) {
	if value == nil || *value == "" {
		return nil, true
	}

	id, err := uuid.Parse(*value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + field + " format",
		})
		return nil, false
	}
	return &id, true
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/application/usecase/ledger"
	"github.com/transport-ledger/backend/internal/domain/entity"
	"github.com/transport-ledger/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense entry and category endpoints.
type ExpenseController struct {
	createUseCase         *ledger.CreateExpenseEntryUseCase
	listUseCase           *ledger.ListExpenseEntriesUseCase
	listCategoriesUseCase *ledger.ListExpenseCategoriesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *ledger.CreateExpenseEntryUseCase,
	listUseCase *ledger.ListExpenseEntriesUseCase,
	listCategoriesUseCase *ledger.ListExpenseCategoriesUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase:         createUseCase,
		listUseCase:           listUseCase,
		listCategoriesUseCase: listCategoriesUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	entries, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expense entries",
		})
		return
	}

	response := make([]dto.ExpenseEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = dto.ToExpenseEntryResponse(entry)
	}
	ctx.JSON(http.StatusOK, response)
}

// ListCategories handles GET /expense-categories requests.
func (c *ExpenseController) ListCategories(ctx *gin.Context) {
	categories, err := c.listCategoriesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expense categories",
		})
		return
	}

	response := make([]dto.ExpenseCategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = dto.ToExpenseCategoryResponse(category)
	}
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	categoryID, ok := parseOptionalUUID(ctx, req.CategoryID, "category ID")
	if !ok {
		return
	}
	vehicleID, ok := parseOptionalUUID(ctx, req.VehicleID, "vehicle ID")
	if !ok {
		return
	}

	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense date format. Use YYYY-MM-DD",
		})
		return
	}

	var frequency *entity.RecurringFrequency
	if req.RecurringFrequency != nil && *req.RecurringFrequency != "" {
		f := entity.RecurringFrequency(*req.RecurringFrequency)
		frequency = &f
	}

	input := ledger.CreateExpenseEntryInput{
		CategoryID:         categoryID,
		VehicleID:          vehicleID,
		Amount:             decimal.NewFromFloat(req.Amount),
		ExpenseDate:        expenseDate,
		Description:        req.Description,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: frequency,
	}

	entry, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseEntryResponse(entry))
}

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

// EmployeeController handles employee endpoints.
type EmployeeController struct {
	createUseCase *ledger.CreateEmployeeUseCase
	listUseCase   *ledger.ListEmployeesUseCase
}

// NewEmployeeController creates a new employee controller instance.
func NewEmployeeController(
	createUseCase *ledger.CreateEmployeeUseCase,
	listUseCase *ledger.ListEmployeesUseCase,
) *EmployeeController {
	return &EmployeeController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /employees requests.
func (c *EmployeeController) List(ctx *gin.Context) {
	employees, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve employees",
		})
		return
	}

	response := make([]dto.EmployeeResponse, len(employees))
	for i, employee := range employees {
		response[i] = dto.ToEmployeeResponse(employee)
	}
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /employees requests.
func (c *EmployeeController) Create(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	var levy *decimal.Decimal
	if req.ForeignWorkerLevy != nil {
		l := decimal.NewFromFloat(*req.ForeignWorkerLevy)
		levy = &l
	}

	var joinDate *time.Time
	if req.JoinDate != nil && *req.JoinDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.JoinDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid join date format. Use YYYY-MM-DD",
			})
			return
		}
		joinDate = &parsed
	}

	input := ledger.CreateEmployeeInput{
		Name:              req.Name,
		WorkerType:        entity.WorkerType(req.WorkerType),
		Salary:            decimal.NewFromFloat(req.Salary),
		ForeignWorkerLevy: levy,
		JoinDate:          joinDate,
	}

	employee, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

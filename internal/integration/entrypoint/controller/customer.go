// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/transport-ledger/backend/internal/application/usecase/ledger"
	"github.com/transport-ledger/backend/internal/integration/entrypoint/dto"
)

// CustomerController handles customer endpoints.
type CustomerController struct {
	listUseCase *ledger.ListCustomersUseCase
}

// NewCustomerController creates a new customer controller instance.
func NewCustomerController(listUseCase *ledger.ListCustomersUseCase) *CustomerController {
	return &CustomerController{
		listUseCase: listUseCase,
	}
}

// List handles GET /customers requests.
func (c *CustomerController) List(ctx *gin.Context) {
	customers, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve customers",
		})
		return
	}

	response := make([]dto.CustomerResponse, len(customers))
	for i, customer := range customers {
		response[i] = dto.ToCustomerResponse(customer)
	}
	ctx.JSON(http.StatusOK, response)
}

package ledger

import (
	"context"
	"fmt"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
)

// ListEmployeesUseCase handles listing employees.
type ListEmployeesUseCase struct {
	employeeRepo adapter.EmployeeRepository
}

// NewListEmployeesUseCase creates a new ListEmployeesUseCase instance.
func NewListEmployeesUseCase(employeeRepo adapter.EmployeeRepository) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{
		employeeRepo: employeeRepo,
	}
}

// Execute retrieves all employees.
func (uc *ListEmployeesUseCase) Execute(ctx context.Context) ([]*entity.Employee, error) {
	employees, err := uc.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
	domainerror "github.com/transport-ledger/backend/internal/domain/error"
)

// CreateEmployeeInput represents the input for registering an employee.
type CreateEmployeeInput struct {
	Name              string
	WorkerType        entity.WorkerType
	Salary            decimal.Decimal
	ForeignWorkerLevy *decimal.Decimal
	JoinDate          *time.Time
}

// CreateEmployeeUseCase handles registering a new employee.
type CreateEmployeeUseCase struct {
	employeeRepo adapter.EmployeeRepository
}

// NewCreateEmployeeUseCase creates a new CreateEmployeeUseCase instance.
func NewCreateEmployeeUseCase(employeeRepo adapter.EmployeeRepository) *CreateEmployeeUseCase {
	return &CreateEmployeeUseCase{
		employeeRepo: employeeRepo,
	}
}

// Execute validates and registers the employee. Local workers never carry a
// levy; a levy supplied for one is rejected rather than silently dropped.
func (uc *CreateEmployeeUseCase) Execute(
	ctx context.Context,
	input CreateEmployeeInput,
) (*entity.Employee, error) {
	if input.Salary.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"salary must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	switch input.WorkerType {
	case entity.WorkerTypeLocal, entity.WorkerTypeForeign:
	default:
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidWorkerType,
			"worker type must be: local or foreign",
			domainerror.ErrInvalidWorkerType,
		)
	}

	if input.WorkerType == entity.WorkerTypeLocal && input.ForeignWorkerLevy != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeLevyOnLocalWorker,
			"local workers cannot carry a foreign worker levy",
			domainerror.ErrLevyOnLocalWorker,
		)
	}

	employee := entity.NewEmployee(
		input.Name,
		input.WorkerType,
		input.Salary,
		input.ForeignWorkerLevy,
		input.JoinDate,
	)

	if err := uc.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee, nil
}

package ledger

import (
	"context"
	"fmt"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
)

// ListCustomersUseCase handles listing customers.
type ListCustomersUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewListCustomersUseCase creates a new ListCustomersUseCase instance.
func NewListCustomersUseCase(customerRepo adapter.CustomerRepository) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo: customerRepo,
	}
}

// Execute retrieves all customers.
func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := uc.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

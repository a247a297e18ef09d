package ledger

import (
	"context"
	"fmt"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
)

// ListExpenseEntriesUseCase handles listing expense entries.
type ListExpenseEntriesUseCase struct {
	expenseRepo adapter.ExpenseEntryRepository
}

// NewListExpenseEntriesUseCase creates a new ListExpenseEntriesUseCase instance.
func NewListExpenseEntriesUseCase(expenseRepo adapter.ExpenseEntryRepository) *ListExpenseEntriesUseCase {
	return &ListExpenseEntriesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves all expense entries.
func (uc *ListExpenseEntriesUseCase) Execute(ctx context.Context) ([]*entity.ExpenseEntry, error) {
	entries, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense entries: %w", err)
	}
	return entries, nil
}

package ledger

import (
	"context"
	"fmt"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
)

// ListExpenseCategoriesUseCase handles listing expense categories.
type ListExpenseCategoriesUseCase struct {
	categoryRepo adapter.ExpenseCategoryRepository
}

// NewListExpenseCategoriesUseCase creates a new ListExpenseCategoriesUseCase instance.
func NewListExpenseCategoriesUseCase(categoryRepo adapter.ExpenseCategoryRepository) *ListExpenseCategoriesUseCase {
	return &ListExpenseCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves all expense categories.
func (uc *ListExpenseCategoriesUseCase) Execute(ctx context.Context) ([]*entity.ExpenseCategory, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}
	return categories, nil
}

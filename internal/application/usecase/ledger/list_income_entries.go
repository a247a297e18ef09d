package ledger

import (
	"context"
	"fmt"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
)

// ListIncomeEntriesUseCase handles listing income entries.
type ListIncomeEntriesUseCase struct {
	incomeRepo adapter.IncomeEntryRepository
}

// NewListIncomeEntriesUseCase creates a new ListIncomeEntriesUseCase instance.
func NewListIncomeEntriesUseCase(incomeRepo adapter.IncomeEntryRepository) *ListIncomeEntriesUseCase {
	return &ListIncomeEntriesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute retrieves all income entries.
func (uc *ListIncomeEntriesUseCase) Execute(ctx context.Context) ([]*entity.IncomeEntry, error) {
	entries, err := uc.incomeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list income entries: %w", err)
	}
	return entries, nil
}

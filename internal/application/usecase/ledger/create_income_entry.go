// Package ledger contains CRUD use cases for the transactional records the
// reporting engine aggregates.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
	domainerror "github.com/transport-ledger/backend/internal/domain/error"
)

// CreateIncomeEntryInput represents the input for recording an income entry.
type CreateIncomeEntryInput struct {
	CustomerID    *uuid.UUID
	RouteID       *uuid.UUID
	Amount        decimal.Decimal
	BillingPeriod string
	IncomeType    entity.IncomeType
	Description   string
	DueDate       *time.Time
}

// CreateIncomeEntryUseCase handles recording a new income entry.
type CreateIncomeEntryUseCase struct {
	incomeRepo adapter.IncomeEntryRepository
}

// NewCreateIncomeEntryUseCase creates a new CreateIncomeEntryUseCase instance.
func NewCreateIncomeEntryUseCase(incomeRepo adapter.IncomeEntryRepository) *CreateIncomeEntryUseCase {
	return &CreateIncomeEntryUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute validates and records the income entry.
func (uc *CreateIncomeEntryUseCase) Execute(
	ctx context.Context,
	input CreateIncomeEntryInput,
) (*entity.IncomeEntry, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	if _, err := time.Parse("2006-01", input.BillingPeriod); err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidBillingPeriod,
			"billing period must be YYYY-MM",
			domainerror.ErrInvalidBillingPeriod,
		)
	}

	if input.IncomeType != entity.IncomeTypeRoute && input.IncomeType != entity.IncomeTypeAdhoc {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidIncomeType,
			"income type must be: route or adhoc",
			domainerror.ErrInvalidIncomeType,
		)
	}

	entry := entity.NewIncomeEntry(
		input.CustomerID,
		input.RouteID,
		input.Amount,
		input.BillingPeriod,
		input.IncomeType,
		input.Description,
		input.DueDate,
	)

	if err := uc.incomeRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create income entry: %w", err)
	}

	return entry, nil
}

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

// CreateExpenseEntryInput represents the input for recording an expense entry.
type CreateExpenseEntryInput struct {
	CategoryID         *uuid.UUID
	VehicleID          *uuid.UUID
	Amount             decimal.Decimal
	ExpenseDate        time.Time
	Description        string
	IsRecurring        bool
	RecurringFrequency *entity.RecurringFrequency
}

// CreateExpenseEntryUseCase handles recording a new expense entry.
type CreateExpenseEntryUseCase struct {
	expenseRepo adapter.ExpenseEntryRepository
}

// NewCreateExpenseEntryUseCase creates a new CreateExpenseEntryUseCase instance.
func NewCreateExpenseEntryUseCase(expenseRepo adapter.ExpenseEntryRepository) *CreateExpenseEntryUseCase {
	return &CreateExpenseEntryUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute validates and records the expense entry.
func (uc *CreateExpenseEntryUseCase) Execute(
	ctx context.Context,
	input CreateExpenseEntryInput,
) (*entity.ExpenseEntry, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	if input.RecurringFrequency != nil {
		switch *input.RecurringFrequency {
		case entity.RecurringMonthly, entity.RecurringQuarterly, entity.RecurringYearly:
		default:
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidRecurringFrequency,
				"recurring frequency must be: monthly, quarterly or yearly",
				domainerror.ErrInvalidRecurringFrequency,
			)
		}
	}

	entry := entity.NewExpenseEntry(
		input.CategoryID,
		input.VehicleID,
		input.Amount,
		input.ExpenseDate,
		input.Description,
		input.IsRecurring,
		input.RecurringFrequency,
	)

	if err := uc.expenseRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create expense entry: %w", err)
	}

	return entry, nil
}

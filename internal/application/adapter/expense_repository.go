// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// ExpenseEntryRepository defines the interface for expense entry persistence operations.
type ExpenseEntryRepository interface {
	// Create creates a new expense entry in the database.
	Create(ctx context.Context, entry *entity.ExpenseEntry) error

	// FindAll retrieves all expense entries.
	FindAll(ctx context.Context) ([]*entity.ExpenseEntry, error)

	// FindByDateRange retrieves expense entries with expense date within [from, to].
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.ExpenseEntry, error)

	// FindRecent retrieves the most recently recorded expense entries, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.ExpenseEntry, error)
}

// ExpenseCategoryRepository defines the interface for expense category persistence operations.
type ExpenseCategoryRepository interface {
	// FindAll retrieves all expense categories.
	FindAll(ctx context.Context) ([]*entity.ExpenseCategory, error)
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// IncomeEntryRepository defines the interface for income entry persistence operations.
type IncomeEntryRepository interface {
	// Create creates a new income entry in the database.
	Create(ctx context.Context, entry *entity.IncomeEntry) error

	// FindAll retrieves all income entries.
	FindAll(ctx context.Context) ([]*entity.IncomeEntry, error)

	// FindByBillingPeriodRange retrieves income entries whose billing period
	// falls within [fromKey, toKey]. Keys are YYYY-MM strings, compared
	// lexicographically.
	FindByBillingPeriodRange(ctx context.Context, fromKey, toKey string) ([]*entity.IncomeEntry, error)

	// FindRecent retrieves the most recently recorded income entries, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.IncomeEntry, error)
}

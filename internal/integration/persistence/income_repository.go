package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
	"github.com/transport-ledger/backend/internal/integration/persistence/model"
)

// incomeEntryRepository implements the adapter.IncomeEntryRepository interface.
type incomeEntryRepository struct {
	db *gorm.DB
}

// NewIncomeEntryRepository creates a new income entry repository instance.
func NewIncomeEntryRepository(db *gorm.DB) adapter.IncomeEntryRepository {
	return &incomeEntryRepository{
		db: db,
	}
}

// Create creates a new income entry in the database.
func (r *incomeEntryRepository) Create(ctx context.Context, entry *entity.IncomeEntry) error {
	entryModel := model.IncomeEntryFromEntity(entry)

	if err := r.db.WithContext(ctx).Create(entryModel).Error; err != nil {
		return fmt.Errorf("failed to create income entry: %w", err)
	}

	return nil
}

// FindAll retrieves all income entries, newest first.
func (r *incomeEntryRepository) FindAll(ctx context.Context) ([]*entity.IncomeEntry, error) {
	var models []model.IncomeEntryModel

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find income entries: %w", err)
	}

	return incomeEntriesToEntities(models), nil
}

// FindByBillingPeriodRange retrieves income entries whose YYYY-MM billing
// period falls within [fromKey, toKey]. Billing periods sort
// lexicographically, so the filter is plain string comparison.
func (r *incomeEntryRepository) FindByBillingPeriodRange(
	ctx context.Context,
	fromKey, toKey string,
) ([]*entity.IncomeEntry, error) {
	var models []model.IncomeEntryModel

	err := r.db.WithContext(ctx).
		Where("billing_period >= ?", fromKey).
		Where("billing_period <= ?", toKey).
		Order("billing_period ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find income entries by billing period: %w", err)
	}

	return incomeEntriesToEntities(models), nil
}

// FindRecent retrieves the most recently recorded income entries, newest first.
func (r *incomeEntryRepository) FindRecent(ctx context.Context, limit int) ([]*entity.IncomeEntry, error) {
	var models []model.IncomeEntryModel

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent income entries: %w", err)
	}

	return incomeEntriesToEntities(models), nil
}

func incomeEntriesToEntities(models []model.IncomeEntryModel) []*entity.IncomeEntry {
	entries := make([]*entity.IncomeEntry, len(models))
	for i := range models {
		entries[i] = models[i].ToEntity()
	}
	return entries
}

package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
	"github.com/transport-ledger/backend/internal/integration/persistence/model"
)

// expenseEntryRepository implements the adapter.ExpenseEntryRepository interface.
type expenseEntryRepository struct {
	db *gorm.DB
}

// NewExpenseEntryRepository creates a new expense entry repository instance.
func NewExpenseEntryRepository(db *gorm.DB) adapter.ExpenseEntryRepository {
	return &expenseEntryRepository{
		db: db,
	}
}

// Create creates a new expense entry in the database.
func (r *expenseEntryRepository) Create(ctx context.Context, entry *entity.ExpenseEntry) error {
	entryModel := model.ExpenseEntryFromEntity(entry)

	if err := r.db.WithContext(ctx).Create(entryModel).Error; err != nil {
		return fmt.Errorf("failed to create expense entry: %w", err)
	}

	return nil
}

// FindAll retrieves all expense entries, newest first.
func (r *expenseEntryRepository) FindAll(ctx context.Context) ([]*entity.ExpenseEntry, error) {
	var models []model.ExpenseEntryModel

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expense entries: %w", err)
	}

	return expenseEntriesToEntities(models), nil
}

// FindByDateRange retrieves expense entries with expense date within [from, to].
func (r *expenseEntryRepository) FindByDateRange(
	ctx context.Context,
	from, to time.Time,
) ([]*entity.ExpenseEntry, error) {
	var models []model.ExpenseEntryModel

	err := r.db.WithContext(ctx).
		Where("expense_date >= ?", from).
		Where("expense_date <= ?", to).
		Order("expense_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expense entries by date range: %w", err)
	}

	return expenseEntriesToEntities(models), nil
}

// FindRecent retrieves the most recently recorded expense entries, newest first.
func (r *expenseEntryRepository) FindRecent(ctx context.Context, limit int) ([]*entity.ExpenseEntry, error) {
	var models []model.ExpenseEntryModel

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent expense entries: %w", err)
	}

	return expenseEntriesToEntities(models), nil
}

func expenseEntriesToEntities(models []model.ExpenseEntryModel) []*entity.ExpenseEntry {
	entries := make([]*entity.ExpenseEntry, len(models))
	for i := range models {
		entries[i] = models[i].ToEntity()
	}
	return entries
}

// expenseCategoryRepository implements the adapter.ExpenseCategoryRepository interface.
type expenseCategoryRepository struct {
	db *gorm.DB
}

// NewExpenseCategoryRepository creates a new expense category repository instance.
func NewExpenseCategoryRepository(db *gorm.DB) adapter.ExpenseCategoryRepository {
	return &expenseCategoryRepository{
		db: db,
	}
}

// FindAll retrieves all expense categories ordered by name.
func (r *expenseCategoryRepository) FindAll(ctx context.Context) ([]*entity.ExpenseCategory, error) {
	var models []model.ExpenseCategoryModel

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expense categories: %w", err)
	}

	categories := make([]*entity.ExpenseCategory, len(models))
	for i := range models {
		categories[i] = models[i].ToEntity()
	}

	return categories, nil
}

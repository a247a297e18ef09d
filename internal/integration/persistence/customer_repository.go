// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
	"github.com/transport-ledger/backend/internal/integration/persistence/model"
)

// customerRepository implements the adapter.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance.
func NewCustomerRepository(db *gorm.DB) adapter.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create creates a new customer in the database.
func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.CustomerFromEntity(customer)

	if err := r.db.WithContext(ctx).Create(customerModel).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// FindAll retrieves all customers ordered by name.
func (r *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	var models []model.CustomerModel

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find customers: %w", err)
	}

	customers := make([]*entity.Customer, len(models))
	for i := range models {
		customers[i] = models[i].ToEntity()
	}

	return customers, nil
}

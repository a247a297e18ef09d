// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// CustomerRepository defines the interface for customer persistence operations.
type CustomerRepository interface {
	// Create creates a new customer in the database.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindAll retrieves all customers.
	FindAll(ctx context.Context) ([]*entity.Customer, error)
}

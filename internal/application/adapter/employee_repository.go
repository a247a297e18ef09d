// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// EmployeeRepository defines the interface for employee persistence operations.
type EmployeeRepository interface {
	// Create creates a new employee in the database.
	Create(ctx context.Context, employee *entity.Employee) error

	// FindAll retrieves all employees.
	FindAll(ctx context.Context) ([]*entity.Employee, error)
}

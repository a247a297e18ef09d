package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
	"github.com/transport-ledger/backend/internal/integration/persistence/model"
)

// employeeRepository implements the adapter.EmployeeRepository interface.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository instance.
func NewEmployeeRepository(db *gorm.DB) adapter.EmployeeRepository {
	return &employeeRepository{
		db: db,
	}
}

// Create creates a new employee in the database.
func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	employeeModel := model.EmployeeFromEntity(employee)

	if err := r.db.WithContext(ctx).Create(employeeModel).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// FindAll retrieves all employees ordered by name.
func (r *employeeRepository) FindAll(ctx context.Context) ([]*entity.Employee, error) {
	var models []model.EmployeeModel

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find employees: %w", err)
	}

	employees := make([]*entity.Employee, len(models))
	for i := range models {
		employees[i] = models[i].ToEntity()
	}

	return employees, nil
}

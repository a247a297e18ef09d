// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkerType distinguishes local workers (employer CPF contribution) from
// foreign workers (monthly levy in lieu of CPF).
type WorkerType string

const (
	WorkerTypeLocal   WorkerType = "local"
	WorkerTypeForeign WorkerType = "foreign"
)

// EmployeeStatus represents the employment status of an employee.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// Employee represents a driver or staff member on the payroll.
// Local workers never carry a levy; foreign workers never get CPF.
type Employee struct {
	ID                uuid.UUID
	Name              string
	WorkerType        WorkerType
	Salary            decimal.Decimal
	ForeignWorkerLevy *decimal.Decimal
	Status            EmployeeStatus
	JoinDate          *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewEmployee creates a new Employee entity.
func NewEmployee(
	name string,
	workerType WorkerType,
	salary decimal.Decimal,
	foreignWorkerLevy *decimal.Decimal,
	joinDate *time.Time,
) *Employee {
	now := time.Now().UTC()

	return &Employee{
		ID:                uuid.New(),
		Name:              name,
		WorkerType:        workerType,
		Salary:            salary,
		ForeignWorkerLevy: foreignWorkerLevy,
		Status:            EmployeeStatusActive,
		JoinDate:          joinDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

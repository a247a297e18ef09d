package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// EmployeeModel represents the employees table in the database.
type EmployeeModel struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name              string           `gorm:"type:varchar(255);not null"`
	WorkerType        string           `gorm:"type:varchar(10);not null"`
	Salary            decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	ForeignWorkerLevy *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status            string           `gorm:"type:varchar(10);not null;index"`
	JoinDate          *time.Time       `gorm:"type:date"`
	CreatedAt         time.Time        `gorm:"not null"`
	UpdatedAt         time.Time        `gorm:"not null"`
}

// TableName returns the table name for the EmployeeModel.
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToEntity converts an EmployeeModel to a domain Employee entity.
func (m *EmployeeModel) ToEntity() *entity.Employee {
	return &entity.Employee{
		ID:                m.ID,
		Name:              m.Name,
		WorkerType:        entity.WorkerType(m.WorkerType),
		Salary:            m.Salary,
		ForeignWorkerLevy: m.ForeignWorkerLevy,
		Status:            entity.EmployeeStatus(m.Status),
		JoinDate:          m.JoinDate,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// EmployeeFromEntity creates an EmployeeModel from a domain Employee entity.
func EmployeeFromEntity(employee *entity.Employee) *EmployeeModel {
	return &EmployeeModel{
		ID:                employee.ID,
		Name:              employee.Name,
		WorkerType:        string(employee.WorkerType),
		Salary:            employee.Salary,
		ForeignWorkerLevy: employee.ForeignWorkerLevy,
		Status:            string(employee.Status),
		JoinDate:          employee.JoinDate,
		CreatedAt:         employee.CreatedAt,
		UpdatedAt:         employee.UpdatedAt,
	}
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// CustomerModel represents the customers table in the database.
type CustomerModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	ContactPerson string    `gorm:"type:varchar(255)"`
	Phone         string    `gorm:"type:varchar(32)"`
	Email         string    `gorm:"type:varchar(255)"`
	Status        string    `gorm:"type:varchar(10);not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the CustomerModel.
func (CustomerModel) TableName() string {
	return "customers"
}

// ToEntity converts a CustomerModel to a domain Customer entity.
func (m *CustomerModel) ToEntity() *entity.Customer {
	return &entity.Customer{
		ID:            m.ID,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		Phone:         m.Phone,
		Email:         m.Email,
		Status:        entity.CustomerStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// CustomerFromEntity creates a CustomerModel from a domain Customer entity.
func CustomerFromEntity(customer *entity.Customer) *CustomerModel {
	return &CustomerModel{
		ID:            customer.ID,
		Name:          customer.Name,
		ContactPerson: customer.ContactPerson,
		Phone:         customer.Phone,
		Email:         customer.Email,
		Status:        string(customer.Status),
		CreatedAt:     customer.CreatedAt,
		UpdatedAt:     customer.UpdatedAt,
	}
}

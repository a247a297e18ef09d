// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerStatus represents the lifecycle status of a customer.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// Customer represents a charter or contract customer of the bus operator.
// Customers are referenced by routes and income entries.
type Customer struct {
	ID            uuid.UUID
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Status        CustomerStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCustomer creates a new Customer entity.
func NewCustomer(name, contactPerson, phone, email string) *Customer {
	now := time.Now().UTC()

	return &Customer{
		ID:            uuid.New(),
		Name:          name,
		ContactPerson: contactPerson,
		Phone:         phone,
		Email:         email,
		Status:        CustomerStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

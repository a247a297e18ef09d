// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeType represents the type of income entry (contracted route or ad-hoc charter).
type IncomeType string

const (
	IncomeTypeRoute IncomeType = "route"
	IncomeTypeAdhoc IncomeType = "adhoc"
)

// PaymentStatus represents the collection status of an income entry.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// IncomeEntry represents a single billed income item. BillingPeriod is the
// YYYY-MM month the income is attributed to for aggregation, independent of
// when it is due or paid.
type IncomeEntry struct {
	ID            uuid.UUID
	CustomerID    *uuid.UUID
	RouteID       *uuid.UUID
	Amount        decimal.Decimal
	BillingPeriod string
	IncomeType    IncomeType
	PaymentStatus PaymentStatus
	Description   string
	DueDate       *time.Time
	PaidDate      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewIncomeEntry creates a new IncomeEntry entity.
func NewIncomeEntry(
	customerID *uuid.UUID,
	routeID *uuid.UUID,
	amount decimal.Decimal,
	billingPeriod string,
	incomeType IncomeType,
	description string,
	dueDate *time.Time,
) *IncomeEntry {
	now := time.Now().UTC()

	return &IncomeEntry{
		ID:            uuid.New(),
		CustomerID:    customerID,
		RouteID:       routeID,
		Amount:        amount,
		BillingPeriod: billingPeriod,
		IncomeType:    incomeType,
		PaymentStatus: PaymentStatusPending,
		Description:   description,
		DueDate:       dueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

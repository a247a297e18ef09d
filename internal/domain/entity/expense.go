// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringFrequency represents how often a recurring expense repeats.
type RecurringFrequency string

const (
	RecurringMonthly   RecurringFrequency = "monthly"
	RecurringQuarterly RecurringFrequency = "quarterly"
	RecurringYearly    RecurringFrequency = "yearly"
)

// ExpenseEntry represents a single recorded expense. The calendar month of
// ExpenseDate is the bucketing key for monthly aggregation.
type ExpenseEntry struct {
	ID                 uuid.UUID
	CategoryID         *uuid.UUID
	VehicleID          *uuid.UUID
	Amount             decimal.Decimal
	ExpenseDate        time.Time
	Description        string
	IsRecurring        bool
	RecurringFrequency *RecurringFrequency
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewExpenseEntry creates a new ExpenseEntry entity.
func NewExpenseEntry(
	categoryID *uuid.UUID,
	vehicleID *uuid.UUID,
	amount decimal.Decimal,
	expenseDate time.Time,
	description string,
	isRecurring bool,
	recurringFrequency *RecurringFrequency,
) *ExpenseEntry {
	now := time.Now().UTC()

	return &ExpenseEntry{
		ID:                 uuid.New(),
		CategoryID:         categoryID,
		VehicleID:          vehicleID,
		Amount:             amount,
		ExpenseDate:        expenseDate,
		Description:        description,
		IsRecurring:        isRecurring,
		RecurringFrequency: recurringFrequency,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

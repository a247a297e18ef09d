package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// ExpenseEntryModel represents the expense_entries table in the database.
type ExpenseEntryModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryID         *uuid.UUID      `gorm:"type:uuid;index"`
	VehicleID          *uuid.UUID      `gorm:"type:uuid;index"`
	Amount             decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ExpenseDate        time.Time       `gorm:"type:date;not null;index"`
	Description        string          `gorm:"type:text"`
	IsRecurring        bool            `gorm:"default:false"`
	RecurringFrequency *string         `gorm:"type:varchar(10)"`
	CreatedAt          time.Time       `gorm:"not null;index"`
	UpdatedAt          time.Time       `gorm:"not null"`

	Category *ExpenseCategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	Vehicle  *VehicleModel         `gorm:"foreignKey:VehicleID;references:ID"`
}

// TableName returns the table name for the ExpenseEntryModel.
func (ExpenseEntryModel) TableName() string {
	return "expense_entries"
}

// ToEntity converts an ExpenseEntryModel to a domain ExpenseEntry entity.
func (m *ExpenseEntryModel) ToEntity() *entity.ExpenseEntry {
	var frequency *entity.RecurringFrequency
	if m.RecurringFrequency != nil {
		f := entity.RecurringFrequency(*m.RecurringFrequency)
		frequency = &f
	}

	return &entity.ExpenseEntry{
		ID:                 m.ID,
		CategoryID:         m.CategoryID,
		VehicleID:          m.VehicleID,
		Amount:             m.Amount,
		ExpenseDate:        m.ExpenseDate,
		Description:        m.Description,
		IsRecurring:        m.IsRecurring,
		RecurringFrequency: frequency,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ExpenseEntryFromEntity creates an ExpenseEntryModel from a domain ExpenseEntry entity.
func ExpenseEntryFromEntity(entry *entity.ExpenseEntry) *ExpenseEntryModel {
	var frequency *string
	if entry.RecurringFrequency != nil {
		f := string(*entry.RecurringFrequency)
		frequency = &f
	}

	return &ExpenseEntryModel{
		ID:                 entry.ID,
		CategoryID:         entry.CategoryID,
		VehicleID:          entry.VehicleID,
		Amount:             entry.Amount,
		ExpenseDate:        entry.ExpenseDate,
		Description:        entry.Description,
		IsRecurring:        entry.IsRecurring,
		RecurringFrequency: frequency,
		CreatedAt:          entry.CreatedAt,
		UpdatedAt:          entry.UpdatedAt,
	}
}

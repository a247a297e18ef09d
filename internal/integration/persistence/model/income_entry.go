package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// IncomeEntryModel represents the income_entries table in the database.
// BillingPeriod is stored as a YYYY-MM string so range filters can use plain
// string comparison.
type IncomeEntryModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID    *uuid.UUID      `gorm:"type:uuid;index"`
	RouteID       *uuid.UUID      `gorm:"type:uuid;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	BillingPeriod string          `gorm:"type:varchar(7);not null;index"`
	IncomeType    string          `gorm:"type:varchar(10);not null"`
	PaymentStatus string          `gorm:"type:varchar(10);not null"`
	Description   string          `gorm:"type:text"`
	DueDate       *time.Time      `gorm:"type:date"`
	PaidDate      *time.Time      `gorm:"type:date"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Customer *CustomerModel `gorm:"foreignKey:CustomerID;references:ID"`
	Route    *RouteModel    `gorm:"foreignKey:RouteID;references:ID"`
}

// TableName returns the table name for the IncomeEntryModel.
func (IncomeEntryModel) TableName() string {
	return "income_entries"
}

// ToEntity converts an IncomeEntryModel to a domain IncomeEntry entity.
func (m *IncomeEntryModel) ToEntity() *entity.IncomeEntry {
	return &entity.IncomeEntry{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		RouteID:       m.RouteID,
		Amount:        m.Amount,
		BillingPeriod: m.BillingPeriod,
		IncomeType:    entity.IncomeType(m.IncomeType),
		PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
		Description:   m.Description,
		DueDate:       m.DueDate,
		PaidDate:      m.PaidDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// IncomeEntryFromEntity creates an IncomeEntryModel from a domain IncomeEntry entity.
func IncomeEntryFromEntity(entry *entity.IncomeEntry) *IncomeEntryModel {
	return &IncomeEntryModel{
		ID:            entry.ID,
		CustomerID:    entry.CustomerID,
		RouteID:       entry.RouteID,
		Amount:        entry.Amount,
		BillingPeriod: entry.BillingPeriod,
		IncomeType:    string(entry.IncomeType),
		PaymentStatus: string(entry.PaymentStatus),
		Description:   entry.Description,
		DueDate:       entry.DueDate,
		PaidDate:      entry.PaidDate,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}
}

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// ExpenseCategoryModel represents the expense_categories table in the database.
type ExpenseCategoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(255);not null"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`

	Parent *ExpenseCategoryModel `gorm:"foreignKey:ParentID;references:ID"`
}

// TableName returns the table name for the ExpenseCategoryModel.
func (ExpenseCategoryModel) TableName() string {
	return "expense_categories"
}

// ToEntity converts an ExpenseCategoryModel to a domain ExpenseCategory entity.
func (m *ExpenseCategoryModel) ToEntity() *entity.ExpenseCategory {
	return &entity.ExpenseCategory{
		ID:        m.ID,
		Name:      m.Name,
		ParentID:  m.ParentID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ExpenseCategoryFromEntity creates an ExpenseCategoryModel from a domain ExpenseCategory entity.
func ExpenseCategoryFromEntity(category *entity.ExpenseCategory) *ExpenseCategoryModel {
	return &ExpenseCategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		ParentID:  category.ParentID,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

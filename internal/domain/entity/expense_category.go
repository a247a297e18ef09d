// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseCategory represents an expense classification. Categories form an
// optional single-level hierarchy via ParentID.
type ExpenseCategory struct {
	ID        uuid.UUID
	Name      string
	ParentID  *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExpenseCategory creates a new ExpenseCategory entity.
func NewExpenseCategory(name string, parentID *uuid.UUID) *ExpenseCategory {
	now := time.Now().UTC()

	return &ExpenseCategory{
		ID:        uuid.New(),
		Name:      name,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

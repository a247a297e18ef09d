package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// RouteModel represents the routes table in the database.
type RouteModel struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name              string           `gorm:"type:varchar(255);not null"`
	CustomerID        *uuid.UUID       `gorm:"type:uuid;index"`
	VehicleID         *uuid.UUID       `gorm:"type:uuid;index"`
	MonthlyRate       decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	RouteType         string           `gorm:"type:varchar(15);not null"`
	SubcontractorCost *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status            string           `gorm:"type:varchar(10);not null;index"`
	CreatedAt         time.Time        `gorm:"not null"`
	UpdatedAt         time.Time        `gorm:"not null"`

	Customer *CustomerModel `gorm:"foreignKey:CustomerID;references:ID"`
	Vehicle  *VehicleModel  `gorm:"foreignKey:VehicleID;references:ID"`
}

// TableName returns the table name for the RouteModel.
func (RouteModel) TableName() string {
	return "routes"
}

// ToEntity converts a RouteModel to a domain Route entity.
func (m *RouteModel) ToEntity() *entity.Route {
	return &entity.Route{
		ID:                m.ID,
		Name:              m.Name,
		CustomerID:        m.CustomerID,
		VehicleID:         m.VehicleID,
		MonthlyRate:       m.MonthlyRate,
		RouteType:         entity.RouteType(m.RouteType),
		SubcontractorCost: m.SubcontractorCost,
		Status:            entity.RouteStatus(m.Status),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// RouteFromEntity creates a RouteModel from a domain Route entity.
func RouteFromEntity(route *entity.Route) *RouteModel {
	return &RouteModel{
		ID:                route.ID,
		Name:              route.Name,
		CustomerID:        route.CustomerID,
		VehicleID:         route.VehicleID,
		MonthlyRate:       route.MonthlyRate,
		RouteType:         string(route.RouteType),
		SubcontractorCost: route.SubcontractorCost,
		Status:            string(route.Status),
		CreatedAt:         route.CreatedAt,
		UpdatedAt:         route.UpdatedAt,
	}
}

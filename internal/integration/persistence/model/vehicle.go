package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// VehicleModel represents the vehicles table in the database.
type VehicleModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	RegistrationNumber string    `gorm:"type:varchar(16);not null;uniqueIndex"`
	Make               string    `gorm:"type:varchar(64)"`
	Model              string    `gorm:"type:varchar(64)"`
	Capacity           int       `gorm:"type:integer"`
	Status             string    `gorm:"type:varchar(12);not null;index"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName returns the table name for the VehicleModel.
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToEntity converts a VehicleModel to a domain Vehicle entity.
func (m *VehicleModel) ToEntity() *entity.Vehicle {
	return &entity.Vehicle{
		ID:                 m.ID,
		RegistrationNumber: m.RegistrationNumber,
		Make:               m.Make,
		Model:              m.Model,
		Capacity:           m.Capacity,
		Status:             entity.VehicleStatus(m.Status),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// VehicleFromEntity creates a VehicleModel from a domain Vehicle entity.
func VehicleFromEntity(vehicle *entity.Vehicle) *VehicleModel {
	return &VehicleModel{
		ID:                 vehicle.ID,
		RegistrationNumber: vehicle.RegistrationNumber,
		Make:               vehicle.Make,
		Model:              vehicle.Model,
		Capacity:           vehicle.Capacity,
		Status:             string(vehicle.Status),
		CreatedAt:          vehicle.CreatedAt,
		UpdatedAt:          vehicle.UpdatedAt,
	}
}

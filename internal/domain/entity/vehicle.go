// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VehicleStatus represents the operational status of a vehicle.
type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusInactive    VehicleStatus = "inactive"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// Vehicle represents a bus in the fleet. RegistrationNumber is unique.
type Vehicle struct {
	ID                 uuid.UUID
	RegistrationNumber string
	Make               string
	Model              string
	Capacity           int
	Status             VehicleStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewVehicle creates a new Vehicle entity.
func NewVehicle(registrationNumber, manufacturer, model string, capacity int) *Vehicle {
	now := time.Now().UTC()

	return &Vehicle{
		ID:                 uuid.New(),
		RegistrationNumber: registrationNumber,
		Make:               manufacturer,
		Model:              model,
		Capacity:           capacity,
		Status:             VehicleStatusActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// VehicleRepository defines the interface for vehicle persistence operations.
type VehicleRepository interface {
	// FindAll retrieves all vehicles.
	FindAll(ctx context.Context) ([]*entity.Vehicle, error)
}

// VehicleInstallmentRepository defines the interface for vehicle installment
// schedule persistence operations.
type VehicleInstallmentRepository interface {
	// FindAll retrieves all vehicle installment schedules.
	FindAll(ctx context.Context) ([]*entity.VehicleInstallment, error)
}

// VehicleInsuranceRepository defines the interface for vehicle insurance
// policy persistence operations.
type VehicleInsuranceRepository interface {
	// FindAll retrieves all vehicle insurance policies.
	FindAll(ctx context.Context) ([]*entity.VehicleInsurance, error)
}

// VehicleParkingRepository defines the interface for vehicle parking
// arrangement persistence operations.
type VehicleParkingRepository interface {
	// FindAll retrieves all vehicle parking arrangements.
	FindAll(ctx context.Context) ([]*entity.VehicleParking, error)
}

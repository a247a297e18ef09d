package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
	"github.com/transport-ledger/backend/internal/integration/persistence/model"
)

// vehicleRepository implements the adapter.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository instance.
func NewVehicleRepository(db *gorm.DB) adapter.VehicleRepository {
	return &vehicleRepository{
		db: db,
	}
}

// FindAll retrieves all vehicles ordered by registration number.
func (r *vehicleRepository) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	var models []model.VehicleModel

	err := r.db.WithContext(ctx).
		Order("registration_number ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}

	vehicles := make([]*entity.Vehicle, len(models))
	for i := range models {
		vehicles[i] = models[i].ToEntity()
	}

	return vehicles, nil
}

// vehicleInstallmentRepository implements the adapter.VehicleInstallmentRepository interface.
type vehicleInstallmentRepository struct {
	db *gorm.DB
}

// NewVehicleInstallmentRepository creates a new vehicle installment repository instance.
func NewVehicleInstallmentRepository(db *gorm.DB) adapter.VehicleInstallmentRepository {
	return &vehicleInstallmentRepository{
		db: db,
	}
}

// FindAll retrieves all vehicle installment schedules.
func (r *vehicleInstallmentRepository) FindAll(ctx context.Context) ([]*entity.VehicleInstallment, error) {
	var models []model.VehicleInstallmentModel

	err := r.db.WithContext(ctx).
		Order("start_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle installments: %w", err)
	}

	installments := make([]*entity.VehicleInstallment, len(models))
	for i := range models {
		installments[i] = models[i].ToEntity()
	}

	return installments, nil
}

// vehicleInsuranceRepository implements the adapter.VehicleInsuranceRepository interface.
type vehicleInsuranceRepository struct {
	db *gorm.DB
}

// NewVehicleInsuranceRepository creates a new vehicle insurance repository instance.
func NewVehicleInsuranceRepository(db *gorm.DB) adapter.VehicleInsuranceRepository {
	return &vehicleInsuranceRepository{
		db: db,
	}
}

// FindAll retrieves all vehicle insurance policies.
func (r *vehicleInsuranceRepository) FindAll(ctx context.Context) ([]*entity.VehicleInsurance, error) {
	var models []model.VehicleInsuranceModel

	err := r.db.WithContext(ctx).
		Order("start_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle insurances: %w", err)
	}

	insurances := make([]*entity.VehicleInsurance, len(models))
	for i := range models {
		insurances[i] = models[i].ToEntity()
	}

	return insurances, nil
}

// vehicleParkingRepository implements the adapter.VehicleParkingRepository interface.
type vehicleParkingRepository struct {
	db *gorm.DB
}

// NewVehicleParkingRepository creates a new vehicle parking repository instance.
func NewVehicleParkingRepository(db *gorm.DB) adapter.VehicleParkingRepository {
	return &vehicleParkingRepository{
		db: db,
	}
}

// FindAll retrieves all vehicle parking arrangements.
func (r *vehicleParkingRepository) FindAll(ctx context.Context) ([]*entity.VehicleParking, error) {
	var models []model.VehicleParkingModel

	err := r.db.WithContext(ctx).
		Order("start_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle parking arrangements: %w", err)
	}

	parkings := make([]*entity.VehicleParking, len(models))
	for i := range models {
		parkings[i] = models[i].ToEntity()
	}

	return parkings, nil
}

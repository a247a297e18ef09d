package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// VehicleInstallmentModel represents the vehicle_installments table.
type VehicleInstallmentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VehicleID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	MonthlyAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	EndDate       time.Time       `gorm:"type:date;not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Vehicle *VehicleModel `gorm:"foreignKey:VehicleID;references:ID"`
}

// TableName returns the table name for the VehicleInstallmentModel.
func (VehicleInstallmentModel) TableName() string {
	return "vehicle_installments"
}

// ToEntity converts a VehicleInstallmentModel to a domain VehicleInstallment entity.
func (m *VehicleInstallmentModel) ToEntity() *entity.VehicleInstallment {
	return &entity.VehicleInstallment{
		ID:            m.ID,
		VehicleID:     m.VehicleID,
		MonthlyAmount: m.MonthlyAmount,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// VehicleInsuranceModel represents the vehicle_insurances table. Premium is
// the total for the policy term.
type VehicleInsuranceModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Insurer   string          `gorm:"type:varchar(255)"`
	Premium   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StartDate time.Time       `gorm:"type:date;not null"`
	EndDate   time.Time       `gorm:"type:date;not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	Vehicle *VehicleModel `gorm:"foreignKey:VehicleID;references:ID"`
}

// TableName returns the table name for the VehicleInsuranceModel.
func (VehicleInsuranceModel) TableName() string {
	return "vehicle_insurances"
}

// ToEntity converts a VehicleInsuranceModel to a domain VehicleInsurance entity.
func (m *VehicleInsuranceModel) ToEntity() *entity.VehicleInsurance {
	return &entity.VehicleInsurance{
		ID:        m.ID,
		VehicleID: m.VehicleID,
		Insurer:   m.Insurer,
		Premium:   m.Premium,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// VehicleParkingModel represents the vehicle_parking table. A null end date
// means the arrangement is open-ended.
type VehicleParkingModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VehicleID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Location    string          `gorm:"type:varchar(255)"`
	MonthlyCost decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StartDate   time.Time       `gorm:"type:date;not null"`
	EndDate     *time.Time      `gorm:"type:date"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Vehicle *VehicleModel `gorm:"foreignKey:VehicleID;references:ID"`
}

// TableName returns the table name for the VehicleParkingModel.
func (VehicleParkingModel) TableName() string {
	return "vehicle_parking"
}

// ToEntity converts a VehicleParkingModel to a domain VehicleParking entity.
func (m *VehicleParkingModel) ToEntity() *entity.VehicleParking {
	return &entity.VehicleParking{
		ID:          m.ID,
		VehicleID:   m.VehicleID,
		Location:    m.Location,
		MonthlyCost: m.MonthlyCost,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

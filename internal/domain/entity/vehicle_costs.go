// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleInstallment represents a fixed-term loan installment schedule for a
// vehicle. The installment is active only within [StartDate, EndDate],
// both inclusive, and contributes a flat MonthlyAmount per active month.
type VehicleInstallment struct {
	ID            uuid.UUID
	VehicleID     uuid.UUID
	MonthlyAmount decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VehicleInsurance represents an insurance policy for a vehicle. Premium is
// the total for the whole policy term, not a monthly figure; it is pro-rated
// evenly across the calendar months the term spans.
type VehicleInsurance struct {
	ID        uuid.UUID
	VehicleID uuid.UUID
	Insurer   string
	Premium   decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VehicleParking represents a parking arrangement billed at a flat monthly
// cost. A nil EndDate means the arrangement is open-ended.
type VehicleParking struct {
	ID          uuid.UUID
	VehicleID   uuid.UUID
	Location    string
	MonthlyCost decimal.Decimal
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

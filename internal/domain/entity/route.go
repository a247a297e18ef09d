// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RouteType distinguishes routes operated with own vehicles from subcontracted ones.
type RouteType string

const (
	RouteTypeOwned         RouteType = "owned"
	RouteTypeSubcontracted RouteType = "subcontracted"
)

// RouteStatus represents the lifecycle status of a route contract.
type RouteStatus string

const (
	RouteStatusActive   RouteStatus = "active"
	RouteStatusInactive RouteStatus = "inactive"
)

// Route represents a contracted bus route billed at a flat monthly rate.
// SubcontractorCost is only meaningful when RouteType is subcontracted.
type Route struct {
	ID                uuid.UUID
	Name              string
	CustomerID        *uuid.UUID
	VehicleID         *uuid.UUID
	MonthlyRate       decimal.Decimal
	RouteType         RouteType
	SubcontractorCost *decimal.Decimal
	Status            RouteStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewRoute creates a new Route entity.
func NewRoute(
	name string,
	customerID *uuid.UUID,
	vehicleID *uuid.UUID,
	monthlyRate decimal.Decimal,
	routeType RouteType,
	subcontractorCost *decimal.Decimal,
) *Route {
	now := time.Now().UTC()

	return &Route{
		ID:                uuid.New(),
		Name:              name,
		CustomerID:        customerID,
		VehicleID:         vehicleID,
		MonthlyRate:       monthlyRate,
		RouteType:         routeType,
		SubcontractorCost: subcontractorCost,
		Status:            RouteStatusActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// IsSubcontracted reports whether the route is operated by a subcontractor
// with a meaningful subcontractor cost.
func (r *Route) IsSubcontracted() bool {
	return r.RouteType == RouteTypeSubcontracted && r.SubcontractorCost != nil
}

package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
	domainerror "github.com/transport-ledger/backend/internal/domain/error"
)

// CreateRouteInput represents the input for registering a route contract.
type CreateRouteInput struct {
	Name              string
	CustomerID        *uuid.UUID
	VehicleID         *uuid.UUID
	MonthlyRate       decimal.Decimal
	RouteType         entity.RouteType
	SubcontractorCost *decimal.Decimal
}

// CreateRouteUseCase handles registering a new route contract.
type CreateRouteUseCase struct {
	routeRepo adapter.RouteRepository
}

// NewCreateRouteUseCase creates a new CreateRouteUseCase instance.
func NewCreateRouteUseCase(routeRepo adapter.RouteRepository) *CreateRouteUseCase {
	return &CreateRouteUseCase{
		routeRepo: routeRepo,
	}
}

// Execute validates and registers the route.
func (uc *CreateRouteUseCase) Execute(
	ctx context.Context,
	input CreateRouteInput,
) (*entity.Route, error) {
	if input.MonthlyRate.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"monthly rate must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	switch input.RouteType {
	case entity.RouteTypeOwned, entity.RouteTypeSubcontracted:
	default:
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidRouteType,
			"route type must be: owned or subcontracted",
			domainerror.ErrInvalidRouteType,
		)
	}

	if input.RouteType == entity.RouteTypeSubcontracted && input.SubcontractorCost == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeSubcontractorCostMissing,
			"subcontracted routes require a subcontractor cost",
			domainerror.ErrSubcontractorCostMissing,
		)
	}

	// Subcontractor cost is meaningless on owned routes; drop it rather than
	// persisting a stray figure.
	subcontractorCost := input.SubcontractorCost
	if input.RouteType == entity.RouteTypeOwned {
		subcontractorCost = nil
	}

	route := entity.NewRoute(
		input.Name,
		input.CustomerID,
		input.VehicleID,
		input.MonthlyRate,
		input.RouteType,
		subcontractorCost,
	)

	if err := uc.routeRepo.Create(ctx, route); err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}

	return route, nil
}

package ledger

import (
	"context"
	"fmt"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
)

// ListRoutesUseCase handles listing route contracts.
type ListRoutesUseCase struct {
	routeRepo adapter.RouteRepository
}

// NewListRoutesUseCase creates a new ListRoutesUseCase instance.
func NewListRoutesUseCase(routeRepo adapter.RouteRepository) *ListRoutesUseCase {
	return &ListRoutesUseCase{
		routeRepo: routeRepo,
	}
}

// Execute retrieves all routes.
func (uc *ListRoutesUseCase) Execute(ctx context.Context) ([]*entity.Route, error) {
	routes, err := uc.routeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// RouteRepository defines the interface for route persistence operations.
type RouteRepository interface {
	// Create creates a new route in the database.
	Create(ctx context.Context, route *entity.Route) error

	// FindAll retrieves all routes.
	FindAll(ctx context.Context) ([]*entity.Route, error)
}

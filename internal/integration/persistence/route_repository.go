package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
	"github.com/transport-ledger/backend/internal/integration/persistence/model"
)

// routeRepository implements the adapter.RouteRepository interface.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository creates a new route repository instance.
func NewRouteRepository(db *gorm.DB) adapter.RouteRepository {
	return &routeRepository{
		db: db,
	}
}

// Create creates a new route in the database.
func (r *routeRepository) Create(ctx context.Context, route *entity.Route) error {
	routeModel := model.RouteFromEntity(route)

	if err := r.db.WithContext(ctx).Create(routeModel).Error; err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}

	return nil
}

// FindAll retrieves all routes ordered by name.
func (r *routeRepository) FindAll(ctx context.Context) ([]*entity.Route, error) {
	var models []model.RouteModel

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find routes: %w", err)
	}

	routes := make([]*entity.Route, len(models))
	for i := range models {
		routes[i] = models[i].ToEntity()
	}

	return routes, nil
}

package queries

import (
	"context"

	"gorm.io/gorm"

	"servicearea/internal/core/domain/services"
)

// ResolveServiceWarehouseQueryHandler answers the routing question "which
// warehouse serves this destination" against the committed partition state.
// Exposed as a diagnostic endpoint so operators can verify routing before an
// order exercises it.
type ResolveServiceWarehouseQueryHandler struct {
	db       *gorm.DB
	resolver services.RegionResolver
}

// NewResolveServiceWarehouseQueryHandler creates a handler for resolve queries.
func NewResolveServiceWarehouseQueryHandler(
	db *gorm.DB,
	resolver services.RegionResolver,
) ResolveServiceWarehouseQueryHandler {
	return ResolveServiceWarehouseQueryHandler{db: db, resolver: resolver}
}

// Handle executes the resolve query.
func (h ResolveServiceWarehouseQueryHandler) Handle(
	ctx context.Context,
	query ResolveServiceWarehouseQuery,
) (services.Resolution, error) {
	if err := query.Validate(); err != nil {
		return services.Resolution{}, err
	}

	provinces, cities, registry, err := loadPartitionState(ctx, h.db)
	if err != nil {
		return services.Resolution{}, err
	}

	return h.resolver.Resolve(query.Province(), query.City(), provinces, cities, registry)
}

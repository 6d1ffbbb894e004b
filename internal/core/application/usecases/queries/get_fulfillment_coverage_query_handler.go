package queries

import (
	"context"
	"fmt"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"servicearea/internal/core/domain/services"
)

// GetFulfillmentCoverageQueryHandler derives one warehouse's coverage from
// the committed rows. Results are cached until the next committed replace or
// split toggle flushes the cache, so repeated console polls do not rebuild
// the tables on every request.
type GetFulfillmentCoverageQueryHandler struct {
	db         *gorm.DB
	classifier services.CoverageClassifier
	cache      *gocache.Cache
}

// NewGetFulfillmentCoverageQueryHandler creates a handler for coverage queries.
func NewGetFulfillmentCoverageQueryHandler(
	db *gorm.DB,
	classifier services.CoverageClassifier,
	cache *gocache.Cache,
) GetFulfillmentCoverageQueryHandler {
	return GetFulfillmentCoverageQueryHandler{db: db, classifier: classifier, cache: cache}
}

// Handle executes the query to derive one warehouse's coverage.
// Returns an ObjectNotFoundError for unknown warehouses.
func (h GetFulfillmentCoverageQueryHandler) Handle(
	ctx context.Context,
	query GetFulfillmentCoverageQuery,
) (services.FulfillmentCoverage, error) {
	if err := query.Validate(); err != nil {
		return services.FulfillmentCoverage{}, err
	}

	key := fmt.Sprintf("coverage:%s", query.WarehouseID())
	if cached, found := h.cache.Get(key); found {
		if coverage, ok := cached.(services.FulfillmentCoverage); ok {
			return coverage, nil
		}
	}

	if err := requireWarehouse(ctx, h.db, query.WarehouseID()); err != nil {
		return services.FulfillmentCoverage{}, err
	}

	provinces, cities, registry, err := loadPartitionState(ctx, h.db)
	if err != nil {
		return services.FulfillmentCoverage{}, err
	}

	coverage, err := h.classifier.Classify(query.WarehouseID(), provinces, cities, registry)
	if err != nil {
		return services.FulfillmentCoverage{}, err
	}

	h.cache.Set(key, coverage, gocache.DefaultExpiration)
	return coverage, nil
}

package queries

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"servicearea/internal/core/domain/services"
)

const advisoryCacheKey = "coverage:advisory"

// GetCoverageAdvisoryQueryHandler derives the system-level advisory across
// all active warehouses. Cached alongside the per-warehouse coverage values
// and flushed on the same commits.
type GetCoverageAdvisoryQueryHandler struct {
	db         *gorm.DB
	classifier services.CoverageClassifier
	cache      *gocache.Cache
}

// NewGetCoverageAdvisoryQueryHandler creates a handler for advisory queries.
func NewGetCoverageAdvisoryQueryHandler(
	db *gorm.DB,
	classifier services.CoverageClassifier,
	cache *gocache.Cache,
) GetCoverageAdvisoryQueryHandler {
	return GetCoverageAdvisoryQueryHandler{db: db, classifier: classifier, cache: cache}
}

// Handle executes the query to derive the partition advisory.
func (h GetCoverageAdvisoryQueryHandler) Handle(
	ctx context.Context,
	query GetCoverageAdvisoryQuery,
) (services.CoverageAdvisory, error) {
	if err := query.Validate(); err != nil {
		return services.CoverageAdvisory{}, err
	}

	if cached, found := h.cache.Get(advisoryCacheKey); found {
		if advisory, ok := cached.(services.CoverageAdvisory); ok {
			return advisory, nil
		}
	}

	warehouses, err := loadWarehouses(ctx, h.db)
	if err != nil {
		return services.CoverageAdvisory{}, err
	}

	provinces, cities, registry, err := loadPartitionState(ctx, h.db)
	if err != nil {
		return services.CoverageAdvisory{}, err
	}

	advisory, err := h.classifier.Advise(warehouses, provinces, cities, registry)
	if err != nil {
		return services.CoverageAdvisory{}, err
	}

	h.cache.Set(advisoryCacheKey, advisory, gocache.DefaultExpiration)
	return advisory, nil
}

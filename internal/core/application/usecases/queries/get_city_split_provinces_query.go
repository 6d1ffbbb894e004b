package queries

import (
	"errors"

	"servicearea/internal/pkg/guard"
)

var ErrGetCitySplitProvincesQueryIsNotConstructed = errors.New(
	"GetCitySplitProvincesQuery must be created via NewGetCitySplitProvincesQuery constructor",
)

// GetCitySplitProvincesQuery retrieves the global split-province set, sorted
// lexicographically.
type GetCitySplitProvincesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCitySplitProvincesQuery creates a query for the split registry.
func NewGetCitySplitProvincesQuery() GetCitySplitProvincesQuery {
	return GetCitySplitProvincesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCitySplitProvincesQuery) Validate() error {
	return q.guard.Validate(ErrGetCitySplitProvincesQueryIsNotConstructed)
}

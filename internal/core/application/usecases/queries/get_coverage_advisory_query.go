package queries

import (
	"errors"

	"servicearea/internal/pkg/guard"
)

var ErrGetCoverageAdvisoryQueryIsNotConstructed = errors.New(
	"GetCoverageAdvisoryQuery must be created via NewGetCoverageAdvisoryQuery constructor",
)

// GetCoverageAdvisoryQuery derives the system-level partition advisory:
// which active warehouses are NATIONAL while other active warehouses exist.
type GetCoverageAdvisoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCoverageAdvisoryQuery creates an advisory query.
func NewGetCoverageAdvisoryQuery() GetCoverageAdvisoryQuery {
	return GetCoverageAdvisoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCoverageAdvisoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCoverageAdvisoryQueryIsNotConstructed)
}

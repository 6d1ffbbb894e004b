package queries

import (
	"errors"

	"servicearea/internal/pkg/guard"
)

var ErrGetProvinceOccupancyQueryIsNotConstructed = errors.New(
	"GetProvinceOccupancyQuery must be created via NewGetProvinceOccupancyQuery constructor",
)

// GetProvinceOccupancyQuery retrieves the full province ownership map across
// all warehouses. Operator consoles use it to grey out provinces already
// taken by another warehouse.
type GetProvinceOccupancyQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProvinceOccupancyQuery creates a query for the province occupancy map.
// This is a parameterless query that fetches every assignment row.
func NewGetProvinceOccupancyQuery() GetProvinceOccupancyQuery {
	return GetProvinceOccupancyQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProvinceOccupancyQuery) Validate() error {
	return q.guard.Validate(ErrGetProvinceOccupancyQueryIsNotConstructed)
}

// GetProvinceOccupancyQueryResponse is one row of the occupancy read model.
type GetProvinceOccupancyQueryResponse struct {
	Region      string
	WarehouseID int64
}

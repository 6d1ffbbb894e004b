package queries

import (
	"errors"

	"servicearea/internal/pkg/guard"
)

var ErrGetCityOccupancyQueryIsNotConstructed = errors.New(
	"GetCityOccupancyQuery must be created via NewGetCityOccupancyQuery constructor",
)

// GetCityOccupancyQuery retrieves the full city ownership map across all
// warehouses.
type GetCityOccupancyQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCityOccupancyQuery creates a query for the city occupancy map.
func NewGetCityOccupancyQuery() GetCityOccupancyQuery {
	return GetCityOccupancyQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCityOccupancyQuery) Validate() error {
	return q.guard.Validate(ErrGetCityOccupancyQueryIsNotConstructed)
}

// GetCityOccupancyQueryResponse is one row of the occupancy read model.
type GetCityOccupancyQueryResponse struct {
	Region      string
	WarehouseID int64
}

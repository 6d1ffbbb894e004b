package queries

import (
	"errors"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/pkg/guard"
)

var ErrGetWarehouseCitiesQueryIsNotConstructed = errors.New(
	"GetWarehouseCitiesQuery must be created via NewGetWarehouseCitiesQuery constructor",
)

// GetWarehouseCitiesQuery retrieves the city set owned by one warehouse,
// sorted lexicographically.
type GetWarehouseCitiesQuery struct { //nolint:recvcheck //using for validation
	warehouseID kernel.WarehouseID

	guard guard.ConstructorGuard
}

// NewGetWarehouseCitiesQuery creates a query for one warehouse's cities.
func NewGetWarehouseCitiesQuery(warehouseID int64) (GetWarehouseCitiesQuery, error) {
	query := GetWarehouseCitiesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setWarehouseID(warehouseID); err != nil {
		return GetWarehouseCitiesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWarehouseCitiesQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseCitiesQueryIsNotConstructed)
}

// WarehouseID returns the target warehouse.
func (q GetWarehouseCitiesQuery) WarehouseID() kernel.WarehouseID {
	return q.warehouseID
}

func (q *GetWarehouseCitiesQuery) setWarehouseID(raw int64) error {
	id, err := kernel.NewWarehouseID(raw)
	if err != nil {
		return err
	}

	q.warehouseID = id
	return nil
}

package queries

import (
	"errors"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/pkg/guard"
)

var ErrGetWarehouseProvincesQueryIsNotConstructed = errors.New(
	"GetWarehouseProvincesQuery must be created via NewGetWarehouseProvincesQuery constructor",
)

// GetWarehouseProvincesQuery retrieves the province set owned by one
// warehouse, sorted lexicographically.
type GetWarehouseProvincesQuery struct { //nolint:recvcheck //using for validation
	warehouseID kernel.WarehouseID

	guard guard.ConstructorGuard
}

// NewGetWarehouseProvincesQuery creates a query for one warehouse's provinces.
func NewGetWarehouseProvincesQuery(warehouseID int64) (GetWarehouseProvincesQuery, error) {
	query := GetWarehouseProvincesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setWarehouseID(warehouseID); err != nil {
		return GetWarehouseProvincesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWarehouseProvincesQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseProvincesQueryIsNotConstructed)
}

// WarehouseID returns the target warehouse.
func (q GetWarehouseProvincesQuery) WarehouseID() kernel.WarehouseID {
	return q.warehouseID
}

func (q *GetWarehouseProvincesQuery) setWarehouseID(raw int64) error {
	id, err := kernel.NewWarehouseID(raw)
	if err != nil {
		return err
	}

	q.warehouseID = id
	return nil
}

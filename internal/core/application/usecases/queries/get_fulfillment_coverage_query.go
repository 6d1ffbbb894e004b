package queries

import (
	"errors"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/pkg/guard"
)

var ErrGetFulfillmentCoverageQueryIsNotConstructed = errors.New(
	"GetFulfillmentCoverageQuery must be created via NewGetFulfillmentCoverageQuery constructor",
)

// GetFulfillmentCoverageQuery derives the coverage projection for one
// warehouse: region counts plus the reachability label.
type GetFulfillmentCoverageQuery struct { //nolint:recvcheck //using for validation
	warehouseID kernel.WarehouseID

	guard guard.ConstructorGuard
}

// NewGetFulfillmentCoverageQuery creates a coverage query for one warehouse.
func NewGetFulfillmentCoverageQuery(warehouseID int64) (GetFulfillmentCoverageQuery, error) {
	query := GetFulfillmentCoverageQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setWarehouseID(warehouseID); err != nil {
		return GetFulfillmentCoverageQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFulfillmentCoverageQuery) Validate() error {
	return q.guard.Validate(ErrGetFulfillmentCoverageQueryIsNotConstructed)
}

// WarehouseID returns the target warehouse.
func (q GetFulfillmentCoverageQuery) WarehouseID() kernel.WarehouseID {
	return q.warehouseID
}

func (q *GetFulfillmentCoverageQuery) setWarehouseID(raw int64) error {
	id, err := kernel.NewWarehouseID(raw)
	if err != nil {
		return err
	}

	q.warehouseID = id
	return nil
}

package ports

import (
	"context"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/services"
)

// WarehouseRegistry is the read-only view of the warehouse registry owned by
// the admin service. The partition engine consumes identity and the active
// flag; it never writes warehouses.
type WarehouseRegistry interface {
	// Get returns one warehouse. Unknown identifiers produce an
	// errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.WarehouseID) (services.ActiveWarehouse, error)

	// List returns all registered warehouses with their active flags.
	List(ctx context.Context) ([]services.ActiveWarehouse, error)
}

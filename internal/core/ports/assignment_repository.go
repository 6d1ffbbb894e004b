// Package ports defines repository interfaces for the service-area domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/model/partition"
)

// AssignmentRepository defines the persistence contract for the exclusive
// region-ownership tables. One implementation serves both key spaces; every
// method is scoped by partition.Kind.
type AssignmentRepository interface {
	// GetTable loads the complete committed ownership table for a kind.
	// The table is the state Replace validates against, so within a command
	// this must read the store of record, not a cache.
	GetTable(ctx context.Context, kind partition.Kind) (*partition.Table, error)

	// ReplaceOwned persists the outcome of a successful Table.Replace for one
	// warehouse: every existing row owned by the warehouse is dropped and the
	// applied set is inserted. Rows owned by other warehouses are untouched.
	ReplaceOwned(
		ctx context.Context,
		kind partition.Kind,
		warehouseID kernel.WarehouseID,
		regions []kernel.RegionCode,
	) error
}

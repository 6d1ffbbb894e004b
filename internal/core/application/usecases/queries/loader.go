// Package queries contains read operations for retrieving partition state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases; the derived
// projections (coverage, advisory, resolve) rebuild domain aggregates from
// the committed rows and delegate to the pure domain services.
package queries

import (
	"context"

	"gorm.io/gorm"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/model/partition"
	"servicearea/internal/core/domain/model/split"
	"servicearea/internal/core/domain/services"
	"servicearea/internal/pkg/errs"
)

func assignmentTableName(kind partition.Kind) string {
	if kind == partition.KindCity {
		return "city_assignments"
	}
	return "province_assignments"
}

// loadTable rebuilds one ownership table aggregate from its committed rows.
func loadTable(ctx context.Context, db *gorm.DB, kind partition.Kind) (*partition.Table, error) {
	rows, err := db.WithContext(ctx).Raw(
		"SELECT region, warehouse_id FROM " + assignmentTableName(kind) + " ORDER BY region",
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]partition.Entry, 0)

	for rows.Next() {
		var region string
		var warehouseID int64

		if err = rows.Scan(&region, &warehouseID); err != nil {
			return nil, err
		}

		code, codeErr := kernel.NewRegionCode(region)
		if codeErr != nil {
			return nil, codeErr
		}

		owner, ownerErr := kernel.NewWarehouseID(warehouseID)
		if ownerErr != nil {
			return nil, ownerErr
		}

		entries = append(entries, partition.Entry{Region: code, Owner: owner})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partition.RestoreTable(kind, entries)
}

// loadRegistry rebuilds the split registry aggregate from its committed rows.
func loadRegistry(ctx context.Context, db *gorm.DB) (*split.Registry, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT province
		FROM city_split_provinces
		ORDER BY province
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	provinces := make([]kernel.RegionCode, 0)

	for rows.Next() {
		var province string

		if err = rows.Scan(&province); err != nil {
			return nil, err
		}

		code, codeErr := kernel.NewRegionCode(province)
		if codeErr != nil {
			return nil, codeErr
		}

		provinces = append(provinces, code)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return split.RestoreRegistry(provinces)
}

// loadPartitionState loads the three authoritative sets the derived
// projections are computed from.
func loadPartitionState(
	ctx context.Context,
	db *gorm.DB,
) (*partition.Table, *partition.Table, *split.Registry, error) {
	provinces, err := loadTable(ctx, db, partition.KindProvince)
	if err != nil {
		return nil, nil, nil, err
	}

	cities, err := loadTable(ctx, db, partition.KindCity)
	if err != nil {
		return nil, nil, nil, err
	}

	registry, err := loadRegistry(ctx, db)
	if err != nil {
		return nil, nil, nil, err
	}

	return provinces, cities, registry, nil
}

// loadWarehouses reads the registry view owned by the admin service.
func loadWarehouses(ctx context.Context, db *gorm.DB) ([]services.ActiveWarehouse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT id, active
		FROM warehouses
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	warehouses := make([]services.ActiveWarehouse, 0)

	for rows.Next() {
		var id int64
		var active bool

		if err = rows.Scan(&id, &active); err != nil {
			return nil, err
		}

		warehouseID, idErr := kernel.NewWarehouseID(id)
		if idErr != nil {
			return nil, idErr
		}

		warehouses = append(warehouses, services.ActiveWarehouse{ID: warehouseID, Active: active})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return warehouses, nil
}

// requireWarehouse fails with an ObjectNotFoundError for unknown warehouses,
// so reads against a missing warehouse are distinguishable from an empty
// region set.
func requireWarehouse(ctx context.Context, db *gorm.DB, warehouseID kernel.WarehouseID) error {
	var count int64

	err := db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM warehouses
		WHERE id = ?
	`, warehouseID.Int64()).Scan(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("warehouseID", warehouseID.Int64())
	}

	return nil
}

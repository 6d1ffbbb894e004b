package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetWarehouseProvincesQueryHandler reads one warehouse's province set from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetWarehouseProvincesQueryHandler struct {
	db *gorm.DB
}

// NewGetWarehouseProvincesQueryHandler creates a handler for warehouse province reads.
func NewGetWarehouseProvincesQueryHandler(db *gorm.DB) GetWarehouseProvincesQueryHandler {
	return GetWarehouseProvincesQueryHandler{db: db}
}

// Handle executes the query.
// Returns the sorted province list, or an ObjectNotFoundError for unknown
// warehouses. An existing warehouse with no assignments yields an empty list.
func (h GetWarehouseProvincesQueryHandler) Handle(
	ctx context.Context,
	query GetWarehouseProvincesQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := requireWarehouse(ctx, h.db, query.WarehouseID()); err != nil {
		return nil, err
	}

	provinces := make([]string, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT region
		FROM province_assignments
		WHERE warehouse_id = ?
		ORDER BY region
	`, query.WarehouseID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var region string

		if err = rows.Scan(&region); err != nil {
			return nil, err
		}

		provinces = append(provinces, region)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return provinces, nil
}

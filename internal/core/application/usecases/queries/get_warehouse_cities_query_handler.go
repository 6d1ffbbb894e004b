package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetWarehouseCitiesQueryHandler reads one warehouse's city set from the
// database.
type GetWarehouseCitiesQueryHandler struct {
	db *gorm.DB
}

// NewGetWarehouseCitiesQueryHandler creates a handler for warehouse city reads.
func NewGetWarehouseCitiesQueryHandler(db *gorm.DB) GetWarehouseCitiesQueryHandler {
	return GetWarehouseCitiesQueryHandler{db: db}
}

// Handle executes the query.
// Returns the sorted city list, or an ObjectNotFoundError for unknown
// warehouses.
func (h GetWarehouseCitiesQueryHandler) Handle(
	ctx context.Context,
	query GetWarehouseCitiesQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := requireWarehouse(ctx, h.db, query.WarehouseID()); err != nil {
		return nil, err
	}

	cities := make([]string, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT region
		FROM city_assignments
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

		cities = append(cities, region)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cities, nil
}

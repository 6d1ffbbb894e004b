package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProvinceOccupancyQueryHandler reads the province ownership map from the
// database, sorted by region for stable console rendering.
//
// The occupancy read model is advisory only: the authoritative exclusivity
// check always reruns against the committed table inside the replace
// transaction.
type GetProvinceOccupancyQueryHandler struct {
	db *gorm.DB
}

// NewGetProvinceOccupancyQueryHandler creates a handler for province occupancy queries.
func NewGetProvinceOccupancyQueryHandler(db *gorm.DB) GetProvinceOccupancyQueryHandler {
	return GetProvinceOccupancyQueryHandler{db: db}
}

// Handle executes the query to retrieve all province assignments.
func (h GetProvinceOccupancyQueryHandler) Handle(
	ctx context.Context,
	query GetProvinceOccupancyQuery,
) ([]GetProvinceOccupancyQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	occupancy := make([]GetProvinceOccupancyQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT region, warehouse_id
		FROM province_assignments
		ORDER BY region
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetProvinceOccupancyQueryResponse

		if err = rows.Scan(&row.Region, &row.WarehouseID); err != nil {
			return nil, err
		}

		occupancy = append(occupancy, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return occupancy, nil
}

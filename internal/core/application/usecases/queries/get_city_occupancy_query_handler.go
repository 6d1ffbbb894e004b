package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCityOccupancyQueryHandler reads the city ownership map from the
// database, sorted by region.
type GetCityOccupancyQueryHandler struct {
	db *gorm.DB
}

// NewGetCityOccupancyQueryHandler creates a handler for city occupancy queries.
func NewGetCityOccupancyQueryHandler(db *gorm.DB) GetCityOccupancyQueryHandler {
	return GetCityOccupancyQueryHandler{db: db}
}

// Handle executes the query to retrieve all city assignments.
func (h GetCityOccupancyQueryHandler) Handle(
	ctx context.Context,
	query GetCityOccupancyQuery,
) ([]GetCityOccupancyQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	occupancy := make([]GetCityOccupancyQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT region, warehouse_id
		FROM city_assignments
		ORDER BY region
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetCityOccupancyQueryResponse

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

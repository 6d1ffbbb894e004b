package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCitySplitProvincesQueryHandler reads the split registry from the
// database.
type GetCitySplitProvincesQueryHandler struct {
	db *gorm.DB
}

// NewGetCitySplitProvincesQueryHandler creates a handler for split registry reads.
func NewGetCitySplitProvincesQueryHandler(db *gorm.DB) GetCitySplitProvincesQueryHandler {
	return GetCitySplitProvincesQueryHandler{db: db}
}

// Handle executes the query to retrieve the split-province set.
func (h GetCitySplitProvincesQueryHandler) Handle(
	ctx context.Context,
	query GetCitySplitProvincesQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	provinces := make([]string, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT province
		FROM city_split_provinces
		ORDER BY province
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var province string

		if err = rows.Scan(&province); err != nil {
			return nil, err
		}

		provinces = append(provinces, province)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return provinces, nil
}

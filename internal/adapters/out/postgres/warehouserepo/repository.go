package warehouserepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/services"
	"servicearea/internal/pkg/errs"
)

// GormWarehouseRegistry implements the read-only WarehouseRegistry port
// using GORM.
type GormWarehouseRegistry struct {
	db *gorm.DB
}

// NewGormWarehouseRegistry creates a new GORM warehouse registry view.
func NewGormWarehouseRegistry(db *gorm.DB) *GormWarehouseRegistry {
	return &GormWarehouseRegistry{db: db}
}

// Get retrieves one warehouse by ID.
func (r *GormWarehouseRegistry) Get(
	ctx context.Context,
	id kernel.WarehouseID,
) (services.ActiveWarehouse, error) {
	if err := id.Validate(); err != nil {
		return services.ActiveWarehouse{}, err
	}

	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.ActiveWarehouse{}, errs.NewObjectNotFoundError("warehouseID", id.Int64())
		}
		return services.ActiveWarehouse{}, err
	}

	return toDomain(dto)
}

// List retrieves all registered warehouses sorted by ID.
func (r *GormWarehouseRegistry) List(ctx context.Context) ([]services.ActiveWarehouse, error) {
	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	warehouses := make([]services.ActiveWarehouse, 0, len(dtos))
	for _, dto := range dtos {
		warehouse, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, warehouse)
	}

	return warehouses, nil
}

// Package warehouserepo reads the warehouse registry owned by the admin
// service. The partition engine never writes this table.
package warehouserepo

import (
	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/services"
)

// WarehouseDTO represents the registry view of a warehouse: identity plus
// the active flag. The admin service owns the full row; columns beyond
// these are not mapped.
type WarehouseDTO struct {
	ID     int64 `gorm:"type:bigint;primaryKey"`
	Active bool  `gorm:"type:boolean;not null"`
}

// TableName specifies the database table name for warehouses.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func toDomain(dto WarehouseDTO) (services.ActiveWarehouse, error) {
	id, err := kernel.NewWarehouseID(dto.ID)
	if err != nil {
		return services.ActiveWarehouse{}, err
	}

	return services.ActiveWarehouse{ID: id, Active: dto.Active}, nil
}

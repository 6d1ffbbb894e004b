package assignmentrepo

import (
	"context"

	"gorm.io/gorm"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/model/partition"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// GetTable loads the complete committed ownership table for a kind.
func (r *GormAssignmentRepository) GetTable(
	ctx context.Context,
	kind partition.Kind,
) (*partition.Table, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	var rows []assignmentRow
	if err := r.db.WithContext(ctx).
		Table(tableName(kind)).
		Order("region").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]partition.Entry, 0, len(rows))
	for _, row := range rows {
		entry, err := toEntry(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return partition.RestoreTable(kind, entries)
}

// ReplaceOwned rewrites one warehouse's row set for a kind: drops every row
// the warehouse currently owns and inserts the applied set. Rows owned by
// other warehouses are untouched. Must run inside the surrounding
// transaction so the table never passes through a partially replaced state.
func (r *GormAssignmentRepository) ReplaceOwned(
	ctx context.Context,
	kind partition.Kind,
	warehouseID kernel.WarehouseID,
	regions []kernel.RegionCode,
) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Table(tableName(kind)).
		Where("warehouse_id = ?", warehouseID.Int64()).
		Delete(&assignmentRow{}).Error; err != nil {
		return err
	}

	if len(regions) == 0 {
		return nil
	}

	if kind == partition.KindCity {
		dtos := make([]CityAssignmentDTO, 0, len(regions))
		for _, region := range regions {
			dtos = append(dtos, CityAssignmentDTO{
				Region:      region.String(),
				WarehouseID: warehouseID.Int64(),
			})
		}
		return r.db.WithContext(ctx).Create(&dtos).Error
	}

	dtos := make([]ProvinceAssignmentDTO, 0, len(regions))
	for _, region := range regions {
		dtos = append(dtos, ProvinceAssignmentDTO{
			Region:      region.String(),
			WarehouseID: warehouseID.Int64(),
		})
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

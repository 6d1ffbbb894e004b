// Package assignmentrepo persists the exclusive region-ownership tables.
// One repository serves both key spaces; the partition kind selects the
// backing table.
package assignmentrepo

import (
	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/model/partition"
)

// ProvinceAssignmentDTO represents one row of the province ownership table.
// The region code is the primary key, which makes exclusivity a database
// constraint as well as a domain invariant.
type ProvinceAssignmentDTO struct {
	Region      string `gorm:"type:varchar(64);primaryKey"`
	WarehouseID int64  `gorm:"type:bigint;not null;index"`
}

// TableName specifies the database table name for province assignments.
func (ProvinceAssignmentDTO) TableName() string {
	return "province_assignments"
}

// CityAssignmentDTO represents one row of the city ownership table.
type CityAssignmentDTO struct {
	Region      string `gorm:"type:varchar(64);primaryKey"`
	WarehouseID int64  `gorm:"type:bigint;not null;index"`
}

// TableName specifies the database table name for city assignments.
func (CityAssignmentDTO) TableName() string {
	return "city_assignments"
}

func tableName(kind partition.Kind) string {
	if kind == partition.KindCity {
		return CityAssignmentDTO{}.TableName()
	}
	return ProvinceAssignmentDTO{}.TableName()
}

// assignmentRow is the kind-neutral scan target shared by both tables.
type assignmentRow struct {
	Region      string
	WarehouseID int64
}

func toEntry(row assignmentRow) (partition.Entry, error) {
	region, err := kernel.NewRegionCode(row.Region)
	if err != nil {
		return partition.Entry{}, err
	}

	owner, err := kernel.NewWarehouseID(row.WarehouseID)
	if err != nil {
		return partition.Entry{}, err
	}

	return partition.Entry{Region: region, Owner: owner}, nil
}

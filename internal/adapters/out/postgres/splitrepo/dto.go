// Package splitrepo persists the global city-split province registry.
package splitrepo

import (
	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/model/split"
)

// CitySplitProvinceDTO represents one split-province row.
type CitySplitProvinceDTO struct {
	Province string `gorm:"type:varchar(64);primaryKey"`
}

// TableName specifies the database table name for the split registry.
func (CitySplitProvinceDTO) TableName() string {
	return "city_split_provinces"
}

func fromDomain(registry *split.Registry) []CitySplitProvinceDTO {
	provinces := registry.Provinces()
	dtos := make([]CitySplitProvinceDTO, 0, len(provinces))
	for _, province := range provinces {
		dtos = append(dtos, CitySplitProvinceDTO{Province: province.String()})
	}
	return dtos
}

func toDomain(dtos []CitySplitProvinceDTO) (*split.Registry, error) {
	provinces := make([]kernel.RegionCode, 0, len(dtos))
	for _, dto := range dtos {
		province, err := kernel.NewRegionCode(dto.Province)
		if err != nil {
			return nil, err
		}
		provinces = append(provinces, province)
	}
	return split.RestoreRegistry(provinces)
}

package splitrepo

import (
	"context"

	"gorm.io/gorm"

	"servicearea/internal/core/domain/model/split"
)

// GormSplitRegistryRepository implements SplitRegistryRepository using GORM.
type GormSplitRegistryRepository struct {
	db *gorm.DB
}

// NewGormSplitRegistryRepository creates a new GORM split-registry repository.
func NewGormSplitRegistryRepository(db *gorm.DB) *GormSplitRegistryRepository {
	return &GormSplitRegistryRepository{db: db}
}

// Get loads the current split registry.
func (r *GormSplitRegistryRepository) Get(ctx context.Context) (*split.Registry, error) {
	var dtos []CitySplitProvinceDTO
	if err := r.db.WithContext(ctx).
		Order("province").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomain(dtos)
}

// Save persists the registry's province set as a whole. The set is small (a
// subset of the province universe), so a full rewrite inside the surrounding
// transaction is simpler than diffing.
func (r *GormSplitRegistryRepository) Save(ctx context.Context, registry *split.Registry) error {
	if err := registry.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&CitySplitProvinceDTO{}).Error; err != nil {
		return err
	}

	dtos := fromDomain(registry)
	if len(dtos) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

package auditrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"servicearea/internal/core/ports"
)

// GormAuditRepository implements AssignmentAuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Record appends one audit entry within the surrounding transaction.
func (r *GormAuditRepository) Record(ctx context.Context, audit ports.ReplaceAudit) error {
	if err := audit.Kind.Validate(); err != nil {
		return err
	}
	if err := audit.WarehouseID.Validate(); err != nil {
		return err
	}

	dto := AssignmentAuditDTO{
		ID:            uuid.New(),
		Kind:          audit.Kind.String(),
		WarehouseID:   audit.WarehouseID.Int64(),
		AppliedCount:  audit.AppliedCount,
		ReleasedCount: audit.ReleasedCount,
		AppliedAt:     time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

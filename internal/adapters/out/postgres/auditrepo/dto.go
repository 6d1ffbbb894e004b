// Package auditrepo persists the replace-operation audit trail.
package auditrepo

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentAuditDTO represents one committed replace operation.
type AssignmentAuditDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind          string    `gorm:"type:varchar(16);not null"`
	WarehouseID   int64     `gorm:"type:bigint;not null;index"`
	AppliedCount  int       `gorm:"type:int;not null"`
	ReleasedCount int       `gorm:"type:int;not null"`
	AppliedAt     time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for audit entries.
func (AssignmentAuditDTO) TableName() string {
	return "assignment_audits"
}

package ports

import (
	"context"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/model/partition"
)

// ReplaceAudit records one committed replace operation for the console's
// diagnostics panels.
type ReplaceAudit struct {
	Kind          partition.Kind
	WarehouseID   kernel.WarehouseID
	AppliedCount  int
	ReleasedCount int
}

// AssignmentAuditRepository persists the replace-operation audit trail.
type AssignmentAuditRepository interface {
	// Record appends one audit entry within the surrounding transaction.
	Record(ctx context.Context, audit ReplaceAudit) error
}

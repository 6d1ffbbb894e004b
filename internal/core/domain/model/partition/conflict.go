package partition

import (
	"errors"
	"fmt"
	"strings"

	"servicearea/internal/core/domain/model/kernel"
)

// ErrPartitionConflict is the sentinel for exclusivity violations.
// Use errors.Is to classify, errors.As to read the full conflict list.
var ErrPartitionConflict = errors.New("partition conflict")

// Conflict names one region that a replace request tried to claim while it
// is owned by a different warehouse.
type Conflict struct {
	Region kernel.RegionCode
	Owner  kernel.WarehouseID
}

// ConflictError rejects a replace request without touching state.
// It always carries every offending region, never just the first one, so the
// caller can fix all collisions in a single correction pass.
type ConflictError struct {
	Kind      Kind
	Conflicts []Conflict
}

// NewConflictError creates a ConflictError for the given key space.
func NewConflictError(kind Kind, conflicts []Conflict) *ConflictError {
	return &ConflictError{Kind: kind, Conflicts: conflicts}
}

// Message returns the operator-facing summary the console renders verbatim.
func (e *ConflictError) Message() string {
	if e.Kind == KindCity {
		return "城市互斥冲突：部分城市已属于其他仓库。"
	}
	return "省份互斥冲突：部分省份已属于其他仓库。"
}

func (e *ConflictError) Error() string {
	parts := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		parts[i] = fmt.Sprintf("%s->%s", c.Region, c.Owner)
	}
	return fmt.Sprintf("%s: %d region(s) owned by another warehouse: %s",
		ErrPartitionConflict, len(e.Conflicts), strings.Join(parts, ", "))
}

func (e *ConflictError) Unwrap() error {
	return ErrPartitionConflict
}

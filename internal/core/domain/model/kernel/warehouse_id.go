package kernel

import (
	"strconv"

	"servicearea/internal/pkg/errs"
)

// ErrWarehouseIDIsInvalid is returned for non-positive warehouse identifiers.
var ErrWarehouseIDIsInvalid = errs.NewValueIsInvalidError("warehouse id")

// WarehouseID is the opaque positive identifier of a warehouse in the
// external registry. The partition engine never creates warehouses; it only
// records which one owns a region.
//
// The zero value is invalid; construct through NewWarehouseID.
type WarehouseID struct {
	value int64
}

// NewWarehouseID creates a WarehouseID from a raw integer.
func NewWarehouseID(v int64) (WarehouseID, error) {
	if v <= 0 {
		return WarehouseID{}, ErrWarehouseIDIsInvalid
	}
	return WarehouseID{value: v}, nil
}

// Int64 returns the raw identifier.
func (w WarehouseID) Int64() int64 {
	return w.value
}

// String renders the identifier in decimal.
func (w WarehouseID) String() string {
	return strconv.FormatInt(w.value, 10)
}

// IsZero reports whether the identifier was never constructed.
func (w WarehouseID) IsZero() bool {
	return w.value == 0
}

// Validate checks that the identifier was built through NewWarehouseID.
func (w WarehouseID) Validate() error {
	if w.value <= 0 {
		return ErrWarehouseIDIsInvalid
	}
	return nil
}

// IsEqual compares two warehouse identifiers.
func (w WarehouseID) IsEqual(other WarehouseID) bool {
	return w.value == other.value
}

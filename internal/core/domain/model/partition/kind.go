package partition

import (
	"fmt"

	"servicearea/internal/pkg/errs"
)

// Kind selects which exclusive-ownership key space a table partitions:
// province-level routing or city-level routing. The two key spaces are
// independent; a code may exist in both without relation.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	KindUnknown Kind = iota

	// KindProvince is the province-code key space.
	KindProvince

	// KindCity is the city-code key space.
	KindCity
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:  "Unknown",
		KindProvince: "Province",
		KindCity:     "City",
	}
}

// getValidKindStrings returns a map of only valid Kind values.
func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		KindProvince: "Province",
		KindCity:     "City",
	}
}

// Validate checks that the kind is one of the defined key spaces.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
// Returns "Unknown" for invalid values.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return getKindStrings()[KindUnknown]
}

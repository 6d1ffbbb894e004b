package kernel

import (
	"sort"
	"strings"

	"servicearea/internal/pkg/errs"
)

// ErrRegionCodeIsRequired is returned when a region code is empty after trimming.
var ErrRegionCodeIsRequired = errs.NewValueIsRequiredError("region code")

// RegionCode is a value object for the atomic unit of service-area ownership:
// a province code or a city code. Codes are opaque normalized strings; the
// engine never interprets them beyond trimming, equality, and ordering.
//
// The zero value is invalid; construct through NewRegionCode.
type RegionCode struct {
	value string
}

// NewRegionCode creates a RegionCode from raw input.
// The input is trimmed; an empty result is a validation error, never silently
// dropped, so malformed caller input surfaces instead of shrinking the set.
func NewRegionCode(raw string) (RegionCode, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return RegionCode{}, ErrRegionCodeIsRequired
	}
	return RegionCode{value: v}, nil
}

// String returns the normalized code.
func (r RegionCode) String() string {
	return r.value
}

// IsZero reports whether the code was never constructed.
func (r RegionCode) IsZero() bool {
	return r.value == ""
}

// Validate checks that the code was built through NewRegionCode.
func (r RegionCode) Validate() error {
	if r.value == "" {
		return ErrRegionCodeIsRequired
	}
	return nil
}

// IsEqual compares two region codes by value.
func (r RegionCode) IsEqual(other RegionCode) bool {
	return r.value == other.value
}

// NormalizeRegionCodes converts raw caller input into a deduplicated, sorted
// set of region codes. Every element must normalize to a non-empty code;
// the first offending element fails the whole batch.
func NormalizeRegionCodes(raw []string) ([]RegionCode, error) {
	seen := make(map[string]struct{}, len(raw))
	out := make([]RegionCode, 0, len(raw))

	for _, x := range raw {
		code, err := NewRegionCode(x)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[code.String()]; ok {
			continue
		}
		seen[code.String()] = struct{}{}
		out = append(out, code)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out, nil
}

// RegionCodeStrings renders a code set back to plain strings, preserving order.
func RegionCodeStrings(codes []RegionCode) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.String()
	}
	return out
}

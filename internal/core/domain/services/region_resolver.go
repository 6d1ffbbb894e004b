package services

import (
	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/model/partition"
	"servicearea/internal/core/domain/model/split"
)

// Resolution is the outcome of a destination lookup. When no warehouse owns
// the destination the zero WarehouseID is returned with Found=false, the
// no-service signal order routing reacts to.
type Resolution struct {
	Warehouse kernel.WarehouseID
	Found     bool
}

// RegionResolver decides, for order routing, which warehouse owns a
// destination (province, city). It is a pure function of the two partition
// tables and the split registry.
//
// Tiering is strict: a province inside the split registry resolves through
// the city table only. A missing city assignment is a hard miss, never a
// fallback to the province row. Falling back would paper over a
// configuration bug that operators need to see.
type RegionResolver struct{}

// NewRegionResolver creates a RegionResolver instance.
func NewRegionResolver() RegionResolver {
	return RegionResolver{}
}

// Resolve returns the owning warehouse for a destination, or a not-found
// resolution when no warehouse serves it.
//
// Algorithm:
//   - province in the split registry: look up the city table for the city;
//     absence means no service, without consulting the province table;
//   - otherwise: look up the province table for the province; the city table
//     is never consulted, even if a city row exists.
func (RegionResolver) Resolve(
	province kernel.RegionCode,
	city kernel.RegionCode,
	provinces *partition.Table,
	cities *partition.Table,
	registry *split.Registry,
) (Resolution, error) {
	if err := province.Validate(); err != nil {
		return Resolution{}, err
	}
	if err := provinces.Validate(); err != nil {
		return Resolution{}, err
	}
	if err := cities.Validate(); err != nil {
		return Resolution{}, err
	}
	if err := registry.Validate(); err != nil {
		return Resolution{}, err
	}

	if registry.Contains(province) {
		if city.IsZero() {
			return Resolution{}, nil
		}
		if owner, ok := cities.Owner(city); ok {
			return Resolution{Warehouse: owner, Found: true}, nil
		}
		return Resolution{}, nil
	}

	if owner, ok := provinces.Owner(province); ok {
		return Resolution{Warehouse: owner, Found: true}, nil
	}
	return Resolution{}, nil
}

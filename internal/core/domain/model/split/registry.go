// Package split holds the city-split registry: the global set of provinces
// whose routing granularity has been switched from province level to city
// level. Membership is a pure visibility toggle: it never creates or deletes
// assignment rows, it only freezes a province's assignment for resolution and
// coverage until the province is removed again.
package split

import (
	"errors"
	"sort"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/pkg/guard"
)

// ErrRegistryIsNotConstructed is returned when using an improperly initialized Registry.
var ErrRegistryIsNotConstructed = errors.New("Registry must be created via NewRegistry or RestoreRegistry constructor")

// Registry is the aggregate for the split-province set. It is a single global
// set, not partitioned by warehouse; governance actions add and remove
// provinces independently of any warehouse's assignment lifecycle.
type Registry struct {
	provinces map[string]kernel.RegionCode
	guard     guard.ConstructorGuard
}

// NewRegistry creates an empty split registry.
func NewRegistry() *Registry {
	return &Registry{
		provinces: make(map[string]kernel.RegionCode),
		guard:     guard.NewConstructorGuard(),
	}
}

// RestoreRegistry reconstructs the registry from persisted provinces.
func RestoreRegistry(provinces []kernel.RegionCode) (*Registry, error) {
	r := NewRegistry()
	for _, p := range provinces {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		r.provinces[p.String()] = p
	}
	return r, nil
}

// Validate checks that the registry was built through a constructor.
func (r *Registry) Validate() error {
	if r == nil {
		return ErrRegistryIsNotConstructed
	}
	return r.guard.Validate(ErrRegistryIsNotConstructed)
}

// Add inserts provinces into the split set. Already-present provinces are
// no-ops; the resulting set is what gets persisted as a whole.
func (r *Registry) Add(provinces []kernel.RegionCode) error {
	if err := r.Validate(); err != nil {
		return err
	}
	for _, p := range provinces {
		if err := p.Validate(); err != nil {
			return err
		}
		r.provinces[p.String()] = p
	}
	return nil
}

// Remove deletes provinces from the split set. Absent provinces are no-ops.
// Removing a province unfreezes its province-level assignment immediately;
// nothing is re-created or deleted elsewhere.
func (r *Registry) Remove(provinces []kernel.RegionCode) error {
	if err := r.Validate(); err != nil {
		return err
	}
	for _, p := range provinces {
		if err := p.Validate(); err != nil {
			return err
		}
		delete(r.provinces, p.String())
	}
	return nil
}

// Replace swaps the whole split set for the given provinces.
func (r *Registry) Replace(provinces []kernel.RegionCode) error {
	if err := r.Validate(); err != nil {
		return err
	}
	next := make(map[string]kernel.RegionCode, len(provinces))
	for _, p := range provinces {
		if err := p.Validate(); err != nil {
			return err
		}
		next[p.String()] = p
	}
	r.provinces = next
	return nil
}

// Contains reports whether a province currently routes at city granularity.
func (r *Registry) Contains(province kernel.RegionCode) bool {
	_, ok := r.provinces[province.String()]
	return ok
}

// Provinces returns the sorted split set.
func (r *Registry) Provinces() []kernel.RegionCode {
	out := make([]kernel.RegionCode, 0, len(r.provinces))
	for _, p := range r.provinces {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Len returns the number of split provinces.
func (r *Registry) Len() int {
	return len(r.provinces)
}

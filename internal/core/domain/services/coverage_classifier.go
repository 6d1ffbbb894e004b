package services

import (
	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/model/partition"
	"servicearea/internal/core/domain/model/split"
)

// CoverageLabel classifies a warehouse's fulfillment reach.
type CoverageLabel string

const (
	// CoverageUnreachable means the warehouse owns no routable region at all.
	CoverageUnreachable CoverageLabel = "UNREACHABLE"
	// CoverageNational means the warehouse owns every province still routed
	// at province granularity, so province-level routing can never select
	// another warehouse.
	CoverageNational CoverageLabel = "NATIONAL"
	// CoverageReachable means the warehouse owns some but not all of the
	// effective province universe.
	CoverageReachable CoverageLabel = "REACHABLE"
)

// FulfillmentCoverage is the derived per-warehouse coverage value.
// CityCount is nil while the split registry is empty ("city rules not in
// effect"), which is deliberately distinct from a zero count.
type FulfillmentCoverage struct {
	WarehouseID   kernel.WarehouseID
	ProvinceCount int
	CityCount     *int
	Label         CoverageLabel
}

// ActiveWarehouse is the registry view the advisory needs: identity plus the
// active flag, read from the external warehouse registry.
type ActiveWarehouse struct {
	ID     kernel.WarehouseID
	Active bool
}

// CoverageAdvisory warns operators when the partition is structurally
// misconfigured: more than one active warehouse exists but at least one is
// NATIONAL, which starves every other active warehouse of province-level
// traffic.
type CoverageAdvisory struct {
	NationalWarehouses []kernel.WarehouseID
}

// CoverageClassifier derives region counts and a reachability label per
// warehouse from the three authoritative sets. It is a pure function of its
// inputs; centralizing it here keeps the console and any automated audit in
// agreement.
//
// Counting rule: frozen (split) provinces still count toward ProvinceCount.
// The warehouse still owns the row for audit purposes, only routing ignores
// it. The label, by contrast, is computed against the effective universe
// (universe minus split provinces), so a frozen province cannot make a
// warehouse NATIONAL.
type CoverageClassifier struct {
	universe kernel.Universe
}

// NewCoverageClassifier creates a classifier over the given province universe.
func NewCoverageClassifier(universe kernel.Universe) (CoverageClassifier, error) {
	if err := universe.Validate(); err != nil {
		return CoverageClassifier{}, err
	}
	return CoverageClassifier{universe: universe}, nil
}

// Classify derives the coverage value for one warehouse.
func (c CoverageClassifier) Classify(
	warehouseID kernel.WarehouseID,
	provinces *partition.Table,
	cities *partition.Table,
	registry *split.Registry,
) (FulfillmentCoverage, error) {
	if err := warehouseID.Validate(); err != nil {
		return FulfillmentCoverage{}, err
	}
	if err := provinces.Validate(); err != nil {
		return FulfillmentCoverage{}, err
	}
	if err := cities.Validate(); err != nil {
		return FulfillmentCoverage{}, err
	}
	if err := registry.Validate(); err != nil {
		return FulfillmentCoverage{}, err
	}

	provinceCount := len(provinces.OwnedBy(warehouseID))

	var cityCount *int
	if registry.Len() > 0 {
		n := len(cities.OwnedBy(warehouseID))
		cityCount = &n
	}

	coverage := FulfillmentCoverage{
		WarehouseID:   warehouseID,
		ProvinceCount: provinceCount,
		CityCount:     cityCount,
	}
	coverage.Label = c.label(provinceCount, cityCount, registry.Len())
	return coverage, nil
}

// Advise computes the system-level advisory across all active warehouses.
// Returns a zero-value advisory (no national warehouses) when the partition
// is healthy or when at most one warehouse is active.
func (c CoverageClassifier) Advise(
	warehouses []ActiveWarehouse,
	provinces *partition.Table,
	cities *partition.Table,
	registry *split.Registry,
) (CoverageAdvisory, error) {
	activeCount := 0
	for _, w := range warehouses {
		if w.Active {
			activeCount++
		}
	}
	if activeCount <= 1 {
		return CoverageAdvisory{}, nil
	}

	var national []kernel.WarehouseID
	for _, w := range warehouses {
		if !w.Active {
			continue
		}
		coverage, err := c.Classify(w.ID, provinces, cities, registry)
		if err != nil {
			return CoverageAdvisory{}, err
		}
		if coverage.Label == CoverageNational {
			national = append(national, w.ID)
		}
	}

	return CoverageAdvisory{NationalWarehouses: national}, nil
}

func (c CoverageClassifier) label(provinceCount int, cityCount *int, splitCount int) CoverageLabel {
	cities := 0
	if cityCount != nil {
		cities = *cityCount
	}
	if provinceCount == 0 && cities == 0 {
		return CoverageUnreachable
	}

	effectiveUniverse := c.universe.Size() - splitCount
	if effectiveUniverse > 0 && provinceCount >= effectiveUniverse {
		return CoverageNational
	}
	return CoverageReachable
}

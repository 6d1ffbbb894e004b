package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/model/partition"
	"servicearea/internal/core/domain/model/split"
	"servicearea/internal/core/domain/services"
)

func region(t *testing.T, code string) kernel.RegionCode {
	t.Helper()
	r, err := kernel.NewRegionCode(code)
	require.NoError(t, err)
	return r
}

func regions(t *testing.T, codes ...string) []kernel.RegionCode {
	t.Helper()
	out := make([]kernel.RegionCode, len(codes))
	for i, c := range codes {
		out[i] = region(t, c)
	}
	return out
}

func warehouse(t *testing.T, id int64) kernel.WarehouseID {
	t.Helper()
	w, err := kernel.NewWarehouseID(id)
	require.NoError(t, err)
	return w
}

func universe(t *testing.T, codes ...string) kernel.Universe {
	t.Helper()
	u, err := kernel.NewUniverse(codes)
	require.NoError(t, err)
	return u
}

func classifier(t *testing.T, codes ...string) services.CoverageClassifier {
	t.Helper()
	c, err := services.NewCoverageClassifier(universe(t, codes...))
	require.NoError(t, err)
	return c
}

func provinceTable(t *testing.T, owners map[int64][]string) *partition.Table {
	t.Helper()
	return ownershipTable(t, partition.KindProvince, owners)
}

func cityTable(t *testing.T, owners map[int64][]string) *partition.Table {
	t.Helper()
	return ownershipTable(t, partition.KindCity, owners)
}

func ownershipTable(t *testing.T, kind partition.Kind, owners map[int64][]string) *partition.Table {
	t.Helper()
	table, err := partition.NewTable(kind)
	require.NoError(t, err)
	for id, codes := range owners {
		_, err = table.Replace(warehouse(t, id), regions(t, codes...))
		require.NoError(t, err)
	}
	return table
}

func registry(t *testing.T, codes ...string) *split.Registry {
	t.Helper()
	r, err := split.RestoreRegistry(regions(t, codes...))
	require.NoError(t, err)
	return r
}

func TestCoverageClassifierClassify(t *testing.T) {
	c := classifier(t, "A", "B", "C", "D")

	t.Run("unreachable when the warehouse owns nothing", func(t *testing.T) {
		coverage, err := c.Classify(
			warehouse(t, 1),
			provinceTable(t, nil),
			cityTable(t, nil),
			registry(t),
		)

		require.NoError(t, err)
		assert.Equal(t, services.CoverageUnreachable, coverage.Label)
		assert.Equal(t, 0, coverage.ProvinceCount)
		assert.Nil(t, coverage.CityCount)
	})

	t.Run("reachable with a partial province set", func(t *testing.T) {
		coverage, err := c.Classify(
			warehouse(t, 1),
			provinceTable(t, map[int64][]string{1: {"A", "B"}}),
			cityTable(t, nil),
			registry(t),
		)

		require.NoError(t, err)
		assert.Equal(t, services.CoverageReachable, coverage.Label)
		assert.Equal(t, 2, coverage.ProvinceCount)
	})

	t.Run("national when owning the whole universe", func(t *testing.T) {
		coverage, err := c.Classify(
			warehouse(t, 1),
			provinceTable(t, map[int64][]string{1: {"A", "B", "C", "D"}}),
			cityTable(t, nil),
			registry(t),
		)

		require.NoError(t, err)
		assert.Equal(t, services.CoverageNational, coverage.Label)
		assert.Equal(t, 4, coverage.ProvinceCount)
	})

	t.Run("city count is nil while the split registry is empty", func(t *testing.T) {
		coverage, err := c.Classify(
			warehouse(t, 1),
			provinceTable(t, map[int64][]string{1: {"A"}}),
			cityTable(t, map[int64][]string{1: {"A-1"}}),
			registry(t),
		)

		require.NoError(t, err)
		assert.Nil(t, coverage.CityCount)
	})

	t.Run("city count is zero, not nil, once the registry is non-empty", func(t *testing.T) {
		coverage, err := c.Classify(
			warehouse(t, 1),
			provinceTable(t, map[int64][]string{1: {"A"}}),
			cityTable(t, nil),
			registry(t, "D"),
		)

		require.NoError(t, err)
		require.NotNil(t, coverage.CityCount)
		assert.Equal(t, 0, *coverage.CityCount)
	})

	t.Run("national against the effective universe when provinces are split", func(t *testing.T) {
		// D is split, so owning A, B, C covers every province still routed
		// at province granularity.
		coverage, err := c.Classify(
			warehouse(t, 1),
			provinceTable(t, map[int64][]string{1: {"A", "B", "C"}}),
			cityTable(t, nil),
			registry(t, "D"),
		)

		require.NoError(t, err)
		assert.Equal(t, services.CoverageNational, coverage.Label)
	})

	t.Run("frozen provinces still count toward the province number", func(t *testing.T) {
		coverage, err := c.Classify(
			warehouse(t, 1),
			provinceTable(t, map[int64][]string{1: {"A", "D"}}),
			cityTable(t, nil),
			registry(t, "D"),
		)

		require.NoError(t, err)
		assert.Equal(t, 2, coverage.ProvinceCount)
		// Owning A and frozen D is not national over effective {A, B, C}.
		assert.Equal(t, services.CoverageReachable, coverage.Label)
	})

	t.Run("city ownership alone keeps a warehouse reachable", func(t *testing.T) {
		coverage, err := c.Classify(
			warehouse(t, 2),
			provinceTable(t, nil),
			cityTable(t, map[int64][]string{2: {"D-1"}}),
			registry(t, "D"),
		)

		require.NoError(t, err)
		assert.Equal(t, 0, coverage.ProvinceCount)
		require.NotNil(t, coverage.CityCount)
		assert.Equal(t, 1, *coverage.CityCount)
		assert.Equal(t, services.CoverageReachable, coverage.Label)
	})

	t.Run("should fail with invalid warehouse id", func(t *testing.T) {
		_, err := c.Classify(
			kernel.WarehouseID{},
			provinceTable(t, nil),
			cityTable(t, nil),
			registry(t),
		)

		require.Error(t, err)
	})
}

func TestCoverageClassifierAdvise(t *testing.T) {
	c := classifier(t, "A", "B")

	active := func(id int64) services.ActiveWarehouse {
		return services.ActiveWarehouse{ID: warehouse(t, id), Active: true}
	}
	inactive := func(id int64) services.ActiveWarehouse {
		return services.ActiveWarehouse{ID: warehouse(t, id), Active: false}
	}

	t.Run("no advisory with a single active warehouse", func(t *testing.T) {
		advisory, err := c.Advise(
			[]services.ActiveWarehouse{active(1), inactive(2)},
			provinceTable(t, map[int64][]string{1: {"A", "B"}}),
			cityTable(t, nil),
			registry(t),
		)

		require.NoError(t, err)
		assert.Empty(t, advisory.NationalWarehouses)
	})

	t.Run("advisory names the national warehouses", func(t *testing.T) {
		advisory, err := c.Advise(
			[]services.ActiveWarehouse{active(1), active(2)},
			provinceTable(t, map[int64][]string{1: {"A", "B"}}),
			cityTable(t, nil),
			registry(t),
		)

		require.NoError(t, err)
		require.Len(t, advisory.NationalWarehouses, 1)
		assert.True(t, advisory.NationalWarehouses[0].IsEqual(warehouse(t, 1)))
	})

	t.Run("inactive national warehouse raises no advisory", func(t *testing.T) {
		advisory, err := c.Advise(
			[]services.ActiveWarehouse{inactive(1), active(2), active(3)},
			provinceTable(t, map[int64][]string{1: {"A", "B"}}),
			cityTable(t, nil),
			registry(t),
		)

		require.NoError(t, err)
		assert.Empty(t, advisory.NationalWarehouses)
	})

	t.Run("healthy partition raises no advisory", func(t *testing.T) {
		advisory, err := c.Advise(
			[]services.ActiveWarehouse{active(1), active(2)},
			provinceTable(t, map[int64][]string{1: {"A"}, 2: {"B"}}),
			cityTable(t, nil),
			registry(t),
		)

		require.NoError(t, err)
		assert.Empty(t, advisory.NationalWarehouses)
	})
}

package split_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/model/split"
)

func provinces(t *testing.T, codes ...string) []kernel.RegionCode {
	t.Helper()
	out, err := kernel.NormalizeRegionCodes(codes)
	require.NoError(t, err)
	return out
}

func TestNewRegistry(t *testing.T) {
	r := split.NewRegistry()

	require.NoError(t, r.Validate())
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Provinces())
}

func TestRestoreRegistry(t *testing.T) {
	t.Run("should restore persisted provinces", func(t *testing.T) {
		r, err := split.RestoreRegistry(provinces(t, "广东省", "浙江省"))

		require.NoError(t, err)
		assert.Equal(t, 2, r.Len())
		assert.True(t, r.Contains(provinces(t, "浙江省")[0]))
	})

	t.Run("should fail on invalid province", func(t *testing.T) {
		_, err := split.RestoreRegistry([]kernel.RegionCode{{}})

		require.Error(t, err)
	})

	t.Run("nil registry should not validate", func(t *testing.T) {
		var r *split.Registry

		assert.Error(t, r.Validate())
	})
}

func TestRegistryAdd(t *testing.T) {
	r := split.NewRegistry()

	require.NoError(t, r.Add(provinces(t, "浙江省")))
	require.NoError(t, r.Add(provinces(t, "浙江省", "广东省")))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t,
		[]string{"广东省", "浙江省"},
		kernel.RegionCodeStrings(r.Provinces()),
	)
}

func TestRegistryRemove(t *testing.T) {
	r, err := split.RestoreRegistry(provinces(t, "浙江省", "广东省"))
	require.NoError(t, err)

	require.NoError(t, r.Remove(provinces(t, "浙江省")))
	assert.Equal(t, 1, r.Len())
	assert.False(t, r.Contains(provinces(t, "浙江省")[0]))

	// Removing an absent province is a no-op.
	require.NoError(t, r.Remove(provinces(t, "山东省")))
	assert.Equal(t, 1, r.Len())
}

func TestRegistryReplace(t *testing.T) {
	r, err := split.RestoreRegistry(provinces(t, "浙江省", "广东省"))
	require.NoError(t, err)

	require.NoError(t, r.Replace(provinces(t, "山东省")))

	assert.Equal(t, 1, r.Len())
	assert.True(t, r.Contains(provinces(t, "山东省")[0]))
	assert.False(t, r.Contains(provinces(t, "浙江省")[0]))

	// Replacing with the empty set clears the registry.
	require.NoError(t, r.Replace(nil))
	assert.Equal(t, 0, r.Len())
}

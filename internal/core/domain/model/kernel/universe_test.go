package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicearea/internal/core/domain/model/kernel"
)

func TestNewUniverse(t *testing.T) {
	t.Run("should build from explicit provinces", func(t *testing.T) {
		u, err := kernel.NewUniverse([]string{"A", "B", "C"})

		require.NoError(t, err)
		assert.Equal(t, 3, u.Size())
		require.NoError(t, u.Validate())
	})

	t.Run("should deduplicate provinces", func(t *testing.T) {
		u, err := kernel.NewUniverse([]string{"A", "A", " A ", "B"})

		require.NoError(t, err)
		assert.Equal(t, 2, u.Size())
	})

	t.Run("should fail on empty set", func(t *testing.T) {
		_, err := kernel.NewUniverse(nil)

		require.Error(t, err)
	})

	t.Run("should fail on blank element", func(t *testing.T) {
		_, err := kernel.NewUniverse([]string{"A", " "})

		require.Error(t, err)
	})

	t.Run("zero value should not validate", func(t *testing.T) {
		var u kernel.Universe

		assert.Error(t, u.Validate())
	})
}

func TestUniverseContains(t *testing.T) {
	u, err := kernel.NewUniverse([]string{"A", "B"})
	require.NoError(t, err)

	a, _ := kernel.NewRegionCode("A")
	z, _ := kernel.NewRegionCode("Z")

	assert.True(t, u.Contains(a))
	assert.False(t, u.Contains(z))
}

func TestDefaultUniverse(t *testing.T) {
	u := kernel.DefaultUniverse()

	assert.Equal(t, 34, u.Size())
	require.NoError(t, u.Validate())

	beijing, _ := kernel.NewRegionCode("北京市")
	macau, _ := kernel.NewRegionCode("澳门特别行政区")
	assert.True(t, u.Contains(beijing))
	assert.True(t, u.Contains(macau))
}

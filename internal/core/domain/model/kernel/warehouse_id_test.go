package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/pkg/errs"
)

func TestNewWarehouseID(t *testing.T) {
	t.Run("should create valid identifier", func(t *testing.T) {
		id, err := kernel.NewWarehouseID(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Int64())
		assert.Equal(t, "42", id.String())
		assert.False(t, id.IsZero())
		require.NoError(t, id.Validate())
	})

	t.Run("should fail on zero", func(t *testing.T) {
		_, err := kernel.NewWarehouseID(0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail on negative", func(t *testing.T) {
		_, err := kernel.NewWarehouseID(-7)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value should not validate", func(t *testing.T) {
		var id kernel.WarehouseID

		assert.True(t, id.IsZero())
		assert.Error(t, id.Validate())
	})
}

func TestWarehouseIDIsEqual(t *testing.T) {
	a, _ := kernel.NewWarehouseID(1)
	b, _ := kernel.NewWarehouseID(1)
	c, _ := kernel.NewWarehouseID(2)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

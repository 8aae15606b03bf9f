package order_test

import (
	"testing"

	"washcubes/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create valid item and compute line total", func(t *testing.T) {
		item, err := order.NewItem("Blanket", "per piece", 12.50, 3)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Blanket", item.Name())
		assert.Equal(t, "per piece", item.Unit())
		assert.InDelta(t, 12.50, item.UnitPrice(), 0.001)
		assert.Equal(t, 3, item.Quantity())
		assert.InDelta(t, 37.50, item.LineTotal(), 0.001)
	})

	t.Run("should allow free items", func(t *testing.T) {
		item, err := order.NewItem("Promo Wash", "per kg", 0, 1)

		require.NoError(t, err)
		assert.Zero(t, item.LineTotal())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewItem("", "per piece", 1.00, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		_, err := order.NewItem("Blanket", "per piece", -0.01, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unitPrice is invalid")
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem("Blanket", "per piece", 1.00, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})

	t.Run("should fail validation for zero value item", func(t *testing.T) {
		var item order.Item

		assert.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

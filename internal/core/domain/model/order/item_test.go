package order_test

import (
	"strings"
	"testing"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(decimal.MustParse(amount), "USD")
	require.NoError(t, err)
	return m
}

func TestNewOrderItem(t *testing.T) {
	validID := kernel.NewOrderItemID()
	validProductID := kernel.NewProductID()

	t.Run("should create valid item with derived total", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, validProductID, "Mechanical Keyboard", 3, mustPrice(t, "49.90"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(validID))
		assert.True(t, item.ProductID().IsEqual(validProductID))
		assert.Equal(t, "Mechanical Keyboard", item.ProductName())
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, item.UnitPrice().IsEqual(mustPrice(t, "49.90")))
		assert.True(t, item.TotalPrice().IsEqual(mustPrice(t, "149.70")))
	})

	t.Run("should fail with zero-value item ID", func(t *testing.T) {
		var invalidID kernel.OrderItemID

		item, err := order.NewOrderItem(invalidID, validProductID, "Keyboard", 1, mustPrice(t, "10"))

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with zero-value product ID", func(t *testing.T) {
		var invalidProductID kernel.ProductID

		item, err := order.NewOrderItem(validID, invalidProductID, "Keyboard", 1, mustPrice(t, "10"))

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with empty product name", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, validProductID, "", 1, mustPrice(t, "10"))

		require.Error(t, err)
		assert.Nil(t, item)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with product name over 255 characters", func(t *testing.T) {
		longName := strings.Repeat("x", 256)

		item, err := order.NewOrderItem(validID, validProductID, longName, 1, mustPrice(t, "10"))

		require.Error(t, err)
		assert.Nil(t, item)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept product name of exactly 255 characters", func(t *testing.T) {
		name := strings.Repeat("x", 255)

		item, err := order.NewOrderItem(validID, validProductID, name, 1, mustPrice(t, "10"))

		require.NoError(t, err)
		assert.Equal(t, name, item.ProductName())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, validProductID, "Keyboard", 0, mustPrice(t, "10"))

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, validProductID, "Keyboard", -2, mustPrice(t, "10"))

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with zero-value unit price", func(t *testing.T) {
		var price kernel.Money

		item, err := order.NewOrderItem(validID, validProductID, "Keyboard", 1, price)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "Money must be created")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.OrderItemID

		item, err := order.NewOrderItem(invalidID, validProductID, "", 0, mustPrice(t, "10"))

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "value is required")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})
}

func TestOrderItem_UpdateQuantity(t *testing.T) {
	newItem := func(t *testing.T) *order.OrderItem {
		t.Helper()
		item, err := order.NewOrderItem(
			kernel.NewOrderItemID(), kernel.NewProductID(), "Keyboard", 2, mustPrice(t, "10.00"))
		require.NoError(t, err)
		return item
	}

	t.Run("should replace quantity and recompute total", func(t *testing.T) {
		item := newItem(t)

		err := item.UpdateQuantity(5)

		require.NoError(t, err)
		assert.Equal(t, 5, item.Quantity())
		assert.True(t, item.TotalPrice().IsEqual(mustPrice(t, "50.00")))
	})

	t.Run("should reject zero quantity and leave item unchanged", func(t *testing.T) {
		item := newItem(t)

		err := item.UpdateQuantity(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 2, item.Quantity())
		assert.True(t, item.TotalPrice().IsEqual(mustPrice(t, "20.00")))
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		item := newItem(t)

		err := item.UpdateQuantity(-1)

		require.Error(t, err)
		assert.Equal(t, 2, item.Quantity())
	})
}

func TestOrderItem_Validate(t *testing.T) {
	t.Run("should fail for nil item", func(t *testing.T) {
		var item *order.OrderItem

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderItemIsNotConstructed, err)
	})

	t.Run("should fail for zero-value item", func(t *testing.T) {
		item := &order.OrderItem{}

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderItemIsNotConstructed, err)
	})
}

func TestOrderItem_IsEqual(t *testing.T) {
	first, err := order.NewOrderItem(
		kernel.NewOrderItemID(), kernel.NewProductID(), "Keyboard", 1, mustPrice(t, "10"))
	require.NoError(t, err)
	second, err := order.NewOrderItem(
		kernel.NewOrderItemID(), kernel.NewProductID(), "Keyboard", 1, mustPrice(t, "10"))
	require.NoError(t, err)

	assert.True(t, first.IsEqual(first))
	assert.False(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(nil))
}

package kafka

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ordermanagement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

type recordingStockCache struct {
	stock map[kernel.ProductID]int
}

func newRecordingStockCache() *recordingStockCache {
	return &recordingStockCache{stock: make(map[kernel.ProductID]int)}
}

func (c *recordingStockCache) SetStock(_ context.Context, productID kernel.ProductID, quantity int) error {
	c.stock[productID] = quantity
	return nil
}

func (c *recordingStockCache) Validate(_ context.Context, productID kernel.ProductID, requestedQuantity int) (bool, error) {
	available, ok := c.stock[productID]
	if !ok {
		return true, nil
	}
	return available >= requestedQuantity, nil
}

func testInventoryConsumer(cache *recordingStockCache) *InventoryConsumer {
	return &InventoryConsumer{
		topic:  "inventory-events",
		cache:  cache,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestInventoryConsumer_HandleMessage_UpdatesStock(t *testing.T) {
	cache := newRecordingStockCache()
	consumer := testInventoryConsumer(cache)
	productID := kernel.NewProductID()

	payload := []byte(`{"productId":"` + productID.String() + `","tenantId":"` + kernel.NewTenantID().String() + `","oldQuantity":10,"newQuantity":4}`)

	err := consumer.handleMessage(t.Context(), payload)
	require.NoError(t, err)
	require.Equal(t, 4, cache.stock[productID])
}

func TestInventoryConsumer_HandleMessage_ReplacesPreviousQuantity(t *testing.T) {
	cache := newRecordingStockCache()
	consumer := testInventoryConsumer(cache)
	productID := kernel.NewProductID()

	first := []byte(`{"productId":"` + productID.String() + `","oldQuantity":0,"newQuantity":12}`)
	second := []byte(`{"productId":"` + productID.String() + `","oldQuantity":12,"newQuantity":7}`)

	require.NoError(t, consumer.handleMessage(t.Context(), first))
	require.NoError(t, consumer.handleMessage(t.Context(), second))

	require.Equal(t, 7, cache.stock[productID])
}

func TestInventoryConsumer_HandleMessage_RejectsMalformedPayload(t *testing.T) {
	cache := newRecordingStockCache()
	consumer := testInventoryConsumer(cache)

	err := consumer.handleMessage(t.Context(), []byte("not json"))
	require.Error(t, err)
	require.Empty(t, cache.stock)
}

func TestInventoryConsumer_HandleMessage_RejectsInvalidProductID(t *testing.T) {
	cache := newRecordingStockCache()
	consumer := testInventoryConsumer(cache)

	err := consumer.handleMessage(t.Context(), []byte(`{"productId":"not-a-uuid","newQuantity":3}`))
	require.Error(t, err)
	require.Empty(t, cache.stock)
}

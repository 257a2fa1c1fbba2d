package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeductStockHappyPath(t *testing.T) {
	orders := newFakeOrderRepo()
	inv := &fakeInventoryRepo{stock: map[string]int64{"7": 10, "12": 3}}
	ctx := context.Background()

	require.NoError(t, orders.Create(ctx, &OrderRecord{
		ID:     "ord-1",
		Status: "PENDING",
		ItemsJSON: `[{"menu_item_id":"7","quantity":2,"resolved_price_cents":300},` +
			`{"menu_item_id":"12","quantity":1,"resolved_price_cents":1250}]`,
	}))

	uc := NewDeductStock(orders, inv)
	require.NoError(t, uc.Execute(ctx, "ord-1"))

	assert.Equal(t, int64(8), inv.stock["7"])
	assert.Equal(t, int64(2), inv.stock["12"])
	rec, _ := orders.GetByID(ctx, "ord-1")
	assert.Equal(t, "PENDING", rec.Status)
}

func TestDeductStockFlagsShortOrder(t *testing.T) {
	orders := newFakeOrderRepo()
	inv := &fakeInventoryRepo{stock: map[string]int64{"7": 1}}
	ctx := context.Background()

	require.NoError(t, orders.Create(ctx, &OrderRecord{
		ID:        "ord-2",
		Status:    "PENDING",
		ItemsJSON: `[{"menu_item_id":"7","quantity":5,"resolved_price_cents":300}]`,
	}))

	uc := NewDeductStock(orders, inv)
	require.NoError(t, uc.Execute(ctx, "ord-2"))

	rec, _ := orders.GetByID(ctx, "ord-2")
	assert.Equal(t, "STOCK_SHORT", rec.Status)
	assert.Equal(t, int64(1), inv.stock["7"], "short line is not partially deducted")
}

func TestDeductStockRedeliveryDeductsOnce(t *testing.T) {
	orders := newFakeOrderRepo()
	inv := &fakeInventoryRepo{stock: map[string]int64{"7": 10}}
	ctx := context.Background()

	require.NoError(t, orders.Create(ctx, &OrderRecord{
		ID:        "ord-4",
		Status:    "PENDING",
		ItemsJSON: `[{"menu_item_id":"7","quantity":2,"resolved_price_cents":300}]`,
	}))

	uc := NewDeductStock(orders, inv)
	require.NoError(t, uc.Execute(ctx, "ord-4"))
	require.NoError(t, uc.Execute(ctx, "ord-4"), "redelivered event is acked, not retried")

	assert.Equal(t, int64(8), inv.stock["7"], "redelivery must not deduct twice")
}

func TestDeductStockBadItemsJSON(t *testing.T) {
	orders := newFakeOrderRepo()
	ctx := context.Background()
	require.NoError(t, orders.Create(ctx, &OrderRecord{ID: "ord-3", ItemsJSON: "{"}))

	uc := NewDeductStock(orders, &fakeInventoryRepo{stock: map[string]int64{}})
	require.Error(t, uc.Execute(ctx, "ord-3"))
}

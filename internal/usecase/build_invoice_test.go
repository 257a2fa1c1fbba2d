package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvoiceCopiesFrozenFigures(t *testing.T) {
	orders := newFakeOrderRepo()
	invoices := newFakeInvoiceRepo()
	ctx := context.Background()

	require.NoError(t, orders.Create(ctx, &OrderRecord{
		ID:               "11111111-2222-3333-4444-555555555555",
		CustomerID:       "cust-9",
		Location:         "B",
		Status:           "CONFIRMED",
		ItemsJSON:        `[{"menu_item_id":"7","quantity":2,"resolved_price_cents":500}]`,
		SubtotalCents:    1000,
		DeliveryFeeCents: 15000,
		TotalCents:       16000,
	}))

	uc := NewBuildInvoice(orders, invoices)
	require.NoError(t, uc.Execute(ctx, "11111111-2222-3333-4444-555555555555"))

	inv, err := invoices.GetByOrderID(ctx, "11111111-2222-3333-4444-555555555555")
	require.NoError(t, err)
	assert.Equal(t, "INV-111111112222", inv.Number)
	assert.Equal(t, int64(1000), inv.SubtotalCents)
	assert.Equal(t, int64(15000), inv.DeliveryFeeCents)
	assert.Equal(t, int64(16000), inv.TotalCents)
	assert.Equal(t, `[{"menu_item_id":"7","quantity":2,"resolved_price_cents":500}]`, inv.ItemsJSON)
}

func TestBuildInvoiceIdempotentOnRedelivery(t *testing.T) {
	orders := newFakeOrderRepo()
	invoices := newFakeInvoiceRepo()
	ctx := context.Background()

	require.NoError(t, orders.Create(ctx, &OrderRecord{
		ID: "ord-1", SubtotalCents: 100, DeliveryFeeCents: 10000, TotalCents: 10100,
	}))

	uc := NewBuildInvoice(orders, invoices)
	require.NoError(t, uc.Execute(ctx, "ord-1"))
	first, _ := invoices.GetByOrderID(ctx, "ord-1")

	require.NoError(t, uc.Execute(ctx, "ord-1"))
	second, _ := invoices.GetByOrderID(ctx, "ord-1")
	assert.Equal(t, first, second)
}

func TestBuildInvoiceUnknownOrder(t *testing.T) {
	uc := NewBuildInvoice(newFakeOrderRepo(), newFakeInvoiceRepo())
	require.ErrorIs(t, uc.Execute(context.Background(), "nope"), ErrOrderNotFound)
}

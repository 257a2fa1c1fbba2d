package usecase

import (
	"context"
	"errors"
	"strings"
)

var ErrOrderNotFound = errors.New("order not found")

// BuildInvoice snapshots a submitted order into an invoice row. The figures
// are copied from the frozen order record, not recomputed from the catalog,
// so the invoice always reproduces exactly what the customer saw at checkout.
// Document rendering (PDF) is downstream of the stored row.
type BuildInvoice struct {
	orders   OrderRepo
	invoices InvoiceRepo
}

func NewBuildInvoice(orders OrderRepo, invoices InvoiceRepo) *BuildInvoice {
	return &BuildInvoice{orders: orders, invoices: invoices}
}

func (uc *BuildInvoice) Execute(ctx context.Context, orderID string) error {
	// Idempotent: the submitted-order event can be redelivered.
	if inv, err := uc.invoices.GetByOrderID(ctx, orderID); err == nil && inv != nil {
		return nil
	}

	rec, err := uc.orders.GetByID(ctx, orderID)
	if err != nil || rec == nil {
		return ErrOrderNotFound
	}

	return uc.invoices.Create(ctx, &InvoiceRecord{
		Number:           invoiceNumber(orderID),
		OrderID:          rec.ID,
		CustomerID:       rec.CustomerID,
		Location:         rec.Location,
		ItemsJSON:        rec.ItemsJSON,
		SubtotalCents:    rec.SubtotalCents,
		DeliveryFeeCents: rec.DeliveryFeeCents,
		TotalCents:       rec.TotalCents,
	})
}

func invoiceNumber(orderID string) string {
	id := strings.ReplaceAll(orderID, "-", "")
	if len(id) > 12 {
		id = id[:12]
	}
	return "INV-" + strings.ToUpper(id)
}

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/airgourmethellas/catering-api/internal/pricing"
	"github.com/airgourmethellas/catering-api/internal/usecase"
)

type InvoiceHandler struct {
	invoices usecase.InvoiceRepo
}

func NewInvoiceHandler(invoices usecase.InvoiceRepo) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// GetByOrderID serves the stored invoice snapshot. Figures come from the
// frozen row, identical to what the customer saw at checkout; the document
// renderer downstream consumes this same payload.
func (h *InvoiceHandler) GetByOrderID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	inv, err := h.invoices.GetByOrderID(ctx, c.Param("id"))
	if err != nil || inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"number":                 inv.Number,
		"order_id":               inv.OrderID,
		"customer_id":            inv.CustomerID,
		"location":               inv.Location,
		"items_json":             inv.ItemsJSON,
		"subtotal_cents":         inv.SubtotalCents,
		"subtotal_formatted":     pricing.FormatMinorUnits(inv.SubtotalCents),
		"delivery_fee_cents":     inv.DeliveryFeeCents,
		"delivery_fee_formatted": pricing.FormatMinorUnits(inv.DeliveryFeeCents),
		"total_cents":            inv.TotalCents,
		"total_formatted":        pricing.FormatMinorUnits(inv.TotalCents),
	})
}

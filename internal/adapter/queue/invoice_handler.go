package queue

import (
	"context"

	"github.com/airgourmethellas/catering-api/internal/usecase"
)

// InvoiceHandler builds the invoice snapshot for every submitted order.
// Intended for use with queue.JSONHandler[usecase.SubmittedMsg].
type InvoiceHandler struct {
	Build *usecase.BuildInvoice
}

func NewInvoiceHandler(build *usecase.BuildInvoice) *InvoiceHandler {
	return &InvoiceHandler{Build: build}
}

func (h *InvoiceHandler) HandleSubmitted(ctx context.Context, msg usecase.SubmittedMsg) error {
	return h.Build.Execute(ctx, msg.OrderID)
}

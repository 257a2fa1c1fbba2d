package queue

import (
	"context"

	"github.com/airgourmethellas/catering-api/internal/usecase"
)

// InventoryHandler deducts stock for every submitted order.
type InventoryHandler struct {
	Deduct *usecase.DeductStock
}

func NewInventoryHandler(deduct *usecase.DeductStock) *InventoryHandler {
	return &InventoryHandler{Deduct: deduct}
}

func (h *InventoryHandler) HandleSubmitted(ctx context.Context, msg usecase.SubmittedMsg) error {
	return h.Deduct.Execute(ctx, msg.OrderID)
}

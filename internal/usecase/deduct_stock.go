package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/airgourmethellas/catering-api/internal/pricing"
)

// DeductStock reduces inventory for every line of a submitted order. A short
// line does not fail the already-paid order; the order is flagged for ops
// follow-up instead.
type DeductStock struct {
	orders    OrderRepo
	inventory InventoryRepo
}

func NewDeductStock(orders OrderRepo, inventory InventoryRepo) *DeductStock {
	return &DeductStock{orders: orders, inventory: inventory}
}

func (uc *DeductStock) Execute(ctx context.Context, orderID string) error {
	rec, err := uc.orders.GetByID(ctx, orderID)
	if err != nil || rec == nil {
		return ErrOrderNotFound
	}

	// Idempotent: the submitted-order event can be redelivered.
	first, err := uc.inventory.MarkDeducted(ctx, orderID)
	if err != nil {
		return err
	}
	if !first {
		return nil
	}

	var lines []pricing.LineItem
	if err := json.Unmarshal([]byte(rec.ItemsJSON), &lines); err != nil {
		return fmt.Errorf("unmarshal order items: %w", err)
	}

	short := false
	for _, li := range lines {
		ok, err := uc.inventory.Deduct(ctx, li.MenuItemID, li.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			short = true
		}
	}
	if short {
		return uc.orders.UpdateStatus(ctx, orderID, "STOCK_SHORT")
	}
	return nil
}

package kafka

import (
	"context"

	domain "github.com/airgourmethellas/catering-api/internal/entity"
	"github.com/airgourmethellas/catering-api/internal/usecase"
)

// PaymentStatusHandler applies the payment gateway's settlement result to the
// order. The charged amount was taken verbatim from the frozen order total;
// this handler only moves status, it never touches figures.
type PaymentStatusHandler struct {
	Repo  usecase.OrderRepo
	Cache usecase.OrderCache // optional
}

func NewPaymentStatusHandler(repo usecase.OrderRepo, cache usecase.OrderCache) *PaymentStatusHandler {
	return &PaymentStatusHandler{Repo: repo, Cache: cache}
}

func (h *PaymentStatusHandler) Handle(ctx context.Context, ev usecase.PaymentStatusMsg) error {
	var newStatus domain.Status
	switch ev.Status {
	case "SUCCESS":
		newStatus = domain.StatusConfirmed
	default:
		newStatus = domain.StatusFailed
	}

	// Guarded transition: only a PENDING order moves; redeliveries and
	// out-of-order events are no-ops.
	if _, err := h.Repo.UpdateStatusIf(ctx, ev.OrderID, string(domain.StatusPending), string(newStatus)); err != nil {
		return err
	}

	// Cache best-effort
	if h.Cache != nil {
		_ = h.Cache.SetStatus(ctx, ev.OrderID, string(newStatus))
	}
	return nil
}

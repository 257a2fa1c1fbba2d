package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/airgourmethellas/catering-api/internal/entity"
	"github.com/airgourmethellas/catering-api/internal/logging"
)

var (
	ErrDuplicate  = errors.New("duplicate idempotency key")
	ErrEmptyOrder = errors.New("order has no line items")
)

type SubmitOrderInput struct {
	SessionID, CustomerID, IdempotencyKey string
}

type SubmitOrderOutput struct {
	OrderID    string
	Status     string
	TotalCents int64
}

// SubmitOrder freezes an in-progress pricing session into a persisted order.
// The resolved per-line prices and the total the customer reviewed are written
// as-is; pricing is never consulted again for this order. The payment
// collaborator charges exactly TotalCents.
type SubmitOrder struct {
	repo     OrderRepo
	sessions SessionStore
	idem     IdempotencyStore
	out      OutboxRepo
	queue    OrderQueue
}

func NewSubmitOrder(repo OrderRepo, sessions SessionStore, idem IdempotencyStore, out OutboxRepo, queue OrderQueue) *SubmitOrder {
	return &SubmitOrder{repo: repo, sessions: sessions, idem: idem, out: out, queue: queue}
}

func (uc *SubmitOrder) Execute(ctx context.Context, in SubmitOrderInput) (SubmitOrderOutput, error) {
	// Fast path: idempotency recall. The replayed response carries the frozen
	// figures from the persisted order, not a fresh computation.
	id, ok, err := uc.idem.Recall(ctx, in.CustomerID, in.IdempotencyKey)
	if err != nil {
		return SubmitOrderOutput{}, err
	}
	if ok {
		rec, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return SubmitOrderOutput{}, err
		}
		return SubmitOrderOutput{OrderID: rec.ID, Status: rec.Status, TotalCents: rec.TotalCents}, nil
	}
	ok, err = uc.idem.TryLock(ctx, in.CustomerID, in.IdempotencyKey)
	if err != nil {
		return SubmitOrderOutput{}, err
	}
	if !ok {
		return SubmitOrderOutput{}, ErrDuplicate
	}

	st, found, err := uc.sessions.Load(ctx, in.SessionID)
	if err != nil {
		return SubmitOrderOutput{}, err
	}
	if !found {
		return SubmitOrderOutput{}, ErrSessionNotFound
	}
	sess, err := restoreSession(st)
	if err != nil {
		return SubmitOrderOutput{}, err
	}
	if len(sess.LineItems()) == 0 {
		return SubmitOrderOutput{}, ErrEmptyOrder
	}

	items, err := json.Marshal(sess.LineItems())
	if err != nil {
		return SubmitOrderOutput{}, fmt.Errorf("marshal line items: %w", err)
	}

	orderID := uuid.NewString()
	order := &domain.Order{
		ID:               orderID,
		CustomerID:       in.CustomerID,
		Location:         string(sess.Location()),
		Status:           domain.StatusPending,
		SubtotalCents:    sess.SubtotalCents(),
		DeliveryFeeCents: sess.DeliveryFeeCents(),
		TotalCents:       sess.TotalCents(),
		ItemsJSON:        string(items),
	}
	if err := order.Validate(); err != nil {
		return SubmitOrderOutput{}, err
	}

	rec := &OrderRecord{
		ID:               order.ID,
		CustomerID:       order.CustomerID,
		Location:         order.Location,
		Status:           string(order.Status),
		ItemsJSON:        order.ItemsJSON,
		SubtotalCents:    order.SubtotalCents,
		DeliveryFeeCents: order.DeliveryFeeCents,
		TotalCents:       order.TotalCents,
	}
	if err := uc.repo.Create(ctx, rec); err != nil {
		return SubmitOrderOutput{}, err
	}

	msg := SubmittedMsg{
		OrderID:    orderID,
		CustomerID: in.CustomerID,
		Location:   rec.Location,
		TotalCents: rec.TotalCents,
	}
	// Outbox row first (audit trail and manual replay), then best-effort
	// direct publish. Neither failure aborts the already-persisted order.
	payload, _ := json.Marshal(msg)
	if err := uc.out.InsertOrderSubmitted(ctx, payload); err != nil {
		logging.FromCtx(ctx).Error("outbox insert failed", "order_id", orderID, "err", err)
	}
	if uc.queue != nil {
		if err := uc.queue.PublishSubmitted(ctx, msg); err != nil {
			logging.FromCtx(ctx).Error("publish order.submitted failed", "order_id", orderID, "err", err)
		}
	}

	// The session is consumed; its resolver is done for this order.
	_ = uc.sessions.Delete(ctx, in.SessionID)
	_ = uc.idem.Remember(ctx, in.CustomerID, in.IdempotencyKey, orderID)

	return SubmitOrderOutput{OrderID: orderID, Status: "PENDING", TotalCents: rec.TotalCents}, nil
}

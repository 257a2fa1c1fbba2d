package usecase

import (
	"context"

	"github.com/airgourmethellas/catering-api/internal/pricing"
)

// Persistence shapes (kept out of domain).

type OrderRecord struct {
	ID, CustomerID, Location, Status, ItemsJSON string
	SubtotalCents, DeliveryFeeCents, TotalCents int64
}

type InvoiceRecord struct {
	Number           string
	OrderID          string
	CustomerID       string
	Location         string
	ItemsJSON        string
	SubtotalCents    int64
	DeliveryFeeCents int64
	TotalCents       int64
}

type OrderRepo interface {
	Create(ctx context.Context, o *OrderRecord) error
	GetByID(ctx context.Context, id string) (*OrderRecord, error)
	UpdateStatus(ctx context.Context, id, toStatus string) error
	UpdateStatusIf(ctx context.Context, id string, fromStatus, toStatus string) (bool, error)
}

type CatalogRepo interface {
	List(ctx context.Context) ([]pricing.MenuItem, error)
	Upsert(ctx context.Context, item pricing.MenuItem) error
}

type InvoiceRepo interface {
	Create(ctx context.Context, inv *InvoiceRecord) error
	GetByOrderID(ctx context.Context, orderID string) (*InvoiceRecord, error)
}

// InventoryRepo deducts stock for submitted orders. Deduct returns false when
// any line has insufficient stock (nothing is deducted in that case).
// MarkDeducted records that an order's lines were processed; it returns false
// on a repeat call so redelivered events never deduct twice.
type InventoryRepo interface {
	MarkDeducted(ctx context.Context, orderID string) (bool, error)
	Deduct(ctx context.Context, menuItemID string, quantity int64) (bool, error)
}

type OutboxRepo interface {
	InsertOrderSubmitted(ctx context.Context, payload []byte) error
}

type IdempotencyStore interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Remember(ctx context.Context, scope, key, value string) error
	Recall(ctx context.Context, scope, key string) (string, bool, error)
}

// SessionStore persists pricing session state between requests, one key per
// session; sessions from concurrent order flows never share state.
type SessionStore interface {
	Save(ctx context.Context, st pricing.State) error
	Load(ctx context.Context, id string) (pricing.State, bool, error)
	Delete(ctx context.Context, id string) error
}

// CatalogCache fronts CatalogRepo for the hot menu read path.
type CatalogCache interface {
	Get(ctx context.Context) ([]pricing.MenuItem, bool, error)
	Set(ctx context.Context, items []pricing.MenuItem) error
	Invalidate(ctx context.Context) error
}

type OrderCache interface {
	SetStatus(ctx context.Context, orderID string, status string) error
}

// OrderQueue publishes the submitted-order event consumed by the invoice and
// inventory workers.
type OrderQueue interface {
	PublishSubmitted(ctx context.Context, msg SubmittedMsg) error
}

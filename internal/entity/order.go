package domain

import "errors"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusFailed     Status = "FAILED"
	StatusStockShort Status = "STOCK_SHORT" // confirmed but flagged for ops follow-up
)

var ErrInvalidAmount = errors.New("invalid amount")

// Order is the frozen result of a pricing session: the persisted rows carry
// the resolved prices the customer reviewed, never values re-derived from the
// current catalog.
type Order struct {
	ID               string
	CustomerID       string
	Location         string
	Status           Status
	SubtotalCents    int64
	DeliveryFeeCents int64
	TotalCents       int64
	ItemsJSON        string
}

func (o *Order) Validate() error {
	if o.TotalCents <= 0 || o.TotalCents != o.SubtotalCents+o.DeliveryFeeCents {
		return ErrInvalidAmount
	}
	return nil
}

package repo

import (
	"context"
	"database/sql"

	"github.com/airgourmethellas/catering-api/internal/usecase"
)

type MySQLInvoiceRepo struct{ db *sql.DB }

func NewMySQLInvoiceRepo(db *sql.DB) *MySQLInvoiceRepo { return &MySQLInvoiceRepo{db: db} }

func (r *MySQLInvoiceRepo) Create(ctx context.Context, inv *usecase.InvoiceRecord) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO invoices (number,order_id,customer_id,location,items_json,subtotal_cents,delivery_fee_cents,total_cents,created_at)
VALUES (?,?,?,?,?,?,?,?,NOW())
`, inv.Number, inv.OrderID, inv.CustomerID, inv.Location, inv.ItemsJSON,
		inv.SubtotalCents, inv.DeliveryFeeCents, inv.TotalCents)
	return err
}

func (r *MySQLInvoiceRepo) GetByOrderID(ctx context.Context, orderID string) (*usecase.InvoiceRecord, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT number,order_id,customer_id,location,items_json,subtotal_cents,delivery_fee_cents,total_cents
FROM invoices WHERE order_id=?`, orderID)
	var inv usecase.InvoiceRecord
	if err := row.Scan(&inv.Number, &inv.OrderID, &inv.CustomerID, &inv.Location, &inv.ItemsJSON,
		&inv.SubtotalCents, &inv.DeliveryFeeCents, &inv.TotalCents); err != nil {
		return nil, err
	}
	return &inv, nil
}

var _ usecase.InvoiceRepo = (*MySQLInvoiceRepo)(nil)

package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/airgourmethellas/catering-api/internal/usecase"
)

type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

func (r *MySQLOrderRepo) Create(ctx context.Context, o *usecase.OrderRecord) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO orders (id,customer_id,location,status,subtotal_cents,delivery_fee_cents,total_cents,items_json,version,created_at,updated_at)
VALUES (?,?,?,?,?,?,?,?,0,NOW(),NOW())
`, o.ID, o.CustomerID, o.Location, o.Status, o.SubtotalCents, o.DeliveryFeeCents, o.TotalCents, o.ItemsJSON)
	return err
}

func (r *MySQLOrderRepo) GetByID(ctx context.Context, id string) (*usecase.OrderRecord, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id,customer_id,location,status,subtotal_cents,delivery_fee_cents,total_cents,items_json
FROM orders WHERE id=?`, id)
	var rec usecase.OrderRecord
	if err := row.Scan(&rec.ID, &rec.CustomerID, &rec.Location, &rec.Status,
		&rec.SubtotalCents, &rec.DeliveryFeeCents, &rec.TotalCents, &rec.ItemsJSON); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *MySQLOrderRepo) UpdateStatus(ctx context.Context, id, toStatus string) error {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders
        SET status = ?, updated_at = NOW()
        WHERE id = ?`,
		toStatus, id,
	)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MySQLOrderRepo) UpdateStatusIf(ctx context.Context, id string, fromStatus, toStatus string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders
        SET status = ?, updated_at = NOW()
        WHERE id = ? AND status = ?`,
		toStatus, id, fromStatus,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 0 → nothing matched (either not found or status mismatch)
	return rows > 0, nil
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)

var ErrNotFound = errors.New("not found")

package repo

import (
	"context"
	"database/sql"

	"github.com/airgourmethellas/catering-api/internal/usecase"
)

type MySQLInventoryRepo struct{ db *sql.DB }

func NewMySQLInventoryRepo(db *sql.DB) *MySQLInventoryRepo { return &MySQLInventoryRepo{db: db} }

// MarkDeducted claims an order for deduction. The primary key on order_id
// makes the second delivery of the same event a no-op.
func (r *MySQLInventoryRepo) MarkDeducted(ctx context.Context, orderID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT IGNORE INTO inventory_deductions (order_id, created_at)
        VALUES (?, NOW())`,
		orderID,
	)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// Deduct atomically reduces stock; the qty guard makes a short line a no-op
// rather than a negative balance.
func (r *MySQLInventoryRepo) Deduct(ctx context.Context, menuItemID string, quantity int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE inventory
        SET qty = qty - ?, updated_at = NOW()
        WHERE menu_item_id = ? AND qty >= ?`,
		quantity, menuItemID, quantity,
	)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

var _ usecase.InventoryRepo = (*MySQLInventoryRepo)(nil)

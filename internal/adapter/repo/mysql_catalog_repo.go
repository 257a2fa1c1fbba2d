package repo

import (
	"context"
	"database/sql"

	"github.com/airgourmethellas/catering-api/internal/pricing"
	"github.com/airgourmethellas/catering-api/internal/usecase"
)

// MySQLCatalogRepo stores menu items with one price column per location.
type MySQLCatalogRepo struct{ db *sql.DB }

func NewMySQLCatalogRepo(db *sql.DB) *MySQLCatalogRepo { return &MySQLCatalogRepo{db: db} }

func (r *MySQLCatalogRepo) List(ctx context.Context) ([]pricing.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,name,unit,price_a_cents,price_b_cents
FROM menu_items WHERE active=1 ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []pricing.MenuItem
	for rows.Next() {
		var (
			it     pricing.MenuItem
			unit   sql.NullString
			pa, pb int64
		)
		if err := rows.Scan(&it.ID, &it.Name, &unit, &pa, &pb); err != nil {
			return nil, err
		}
		it.Unit = unit.String
		it.PriceByLocation = map[pricing.Location]int64{
			pricing.LocationThessaloniki: pa,
			pricing.LocationMykonos:      pb,
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *MySQLCatalogRepo) Upsert(ctx context.Context, item pricing.MenuItem) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO menu_items (id,name,unit,price_a_cents,price_b_cents,active,created_at,updated_at)
VALUES (?,?,?,?,?,1,NOW(),NOW())
ON DUPLICATE KEY UPDATE name=VALUES(name), unit=VALUES(unit),
  price_a_cents=VALUES(price_a_cents), price_b_cents=VALUES(price_b_cents), updated_at=NOW()
`, item.ID, item.Name, item.Unit,
		item.PriceByLocation[pricing.LocationThessaloniki],
		item.PriceByLocation[pricing.LocationMykonos])
	return err
}

var _ usecase.CatalogRepo = (*MySQLCatalogRepo)(nil)

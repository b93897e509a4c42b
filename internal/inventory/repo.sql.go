package inventory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

type sqlRepository struct {
	db *pgxpool.Pool
}

// NewRepository returns the PostgreSQL-backed repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &sqlRepository{db: db}
}

const itemColumns = `id, name, sku, category, stock, unit, reorder_point, unit_price, location`

func scanItem(row pgx.Row) (Item, error) {
	var item Item
	err := row.Scan(&item.ID, &item.Name, &item.SKU, &item.Category, &item.Stock, &item.Unit, &item.ReorderPoint, &item.UnitPrice, &item.Location)
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, shared.ErrNotFound
	}
	return item, err
}

func (r *sqlRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM inventory_items ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *sqlRepository) Get(ctx context.Context, id string) (Item, error) {
	return scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id=$1`, id))
}

func (r *sqlRepository) FindByName(ctx context.Context, name string) (Item, error) {
	return scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE name=$1`, name))
}

func (r *sqlRepository) Create(ctx context.Context, item Item) (Item, error) {
	_, err := r.db.Exec(ctx, `INSERT INTO inventory_items (id, name, sku, category, stock, unit, reorder_point, unit_price, location)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		item.ID, item.Name, item.SKU, item.Category, item.Stock, item.Unit, item.ReorderPoint, item.UnitPrice, item.Location)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return Item{}, errors.New("inventory: item id already exists")
	}
	if err != nil {
		return Item{}, err
	}
	return item, nil
}

func (r *sqlRepository) AdjustStock(ctx context.Context, id string, delta int64) (Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `UPDATE inventory_items SET stock = stock + $2 WHERE id=$1 AND stock + $2 >= 0 RETURNING `+itemColumns, id, delta))
	if errors.Is(err, shared.ErrNotFound) {
		// Row exists but the guard rejected the delta, or the id is unknown.
		if _, getErr := r.Get(ctx, id); getErr == nil {
			return Item{}, ErrNegativeStock
		}
		return Item{}, shared.ErrNotFound
	}
	return item, err
}

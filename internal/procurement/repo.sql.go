package procurement

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

type sqlRepository struct {
	db *pgxpool.Pool
}

// NewRepository returns the PostgreSQL-backed repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &sqlRepository{db: db}
}

// Legacy seeded orders have no structured line, so the line_* columns
// are nullable and rehydrated as a whole.
const orderColumns = `id, supplier_id, supplier_name, item, amount, status, order_date, stock_applied,
line_item_id, line_item_name, line_quantity, line_unit, line_unit_price`

func scanOrder(row pgx.Row) (Order, error) {
	var (
		order     Order
		supplier  *string
		lineID    *string
		lineName  *string
		lineQty   *int64
		lineUnit  *string
		linePrice *decimal.Decimal
	)
	err := row.Scan(&order.ID, &supplier, &order.SupplierName, &order.Item, &order.Amount, &order.Status, &order.Date, &order.StockApplied,
		&lineID, &lineName, &lineQty, &lineUnit, &linePrice)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, shared.ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	if supplier != nil {
		order.SupplierID = *supplier
	}
	if lineID != nil {
		order.Line = &OrderLine{ItemID: *lineID, ItemName: *lineName, Quantity: *lineQty, Unit: *lineUnit, UnitPrice: *linePrice}
	}
	return order, nil
}

func (r *sqlRepository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+` FROM purchase_orders ORDER BY order_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, order)
	}
	return out, rows.Err()
}

func (r *sqlRepository) Get(ctx context.Context, id string) (Order, error) {
	return scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM purchase_orders WHERE id=$1`, id))
}

func orderArgs(order Order) []any {
	var (
		supplier  *string
		lineID    *string
		lineName  *string
		lineQty   *int64
		lineUnit  *string
		linePrice *decimal.Decimal
	)
	if order.SupplierID != "" {
		supplier = &order.SupplierID
	}
	if l := order.Line; l != nil {
		lineID, lineName, lineQty, lineUnit, linePrice = &l.ItemID, &l.ItemName, &l.Quantity, &l.Unit, &l.UnitPrice
	}
	return []any{order.ID, supplier, order.SupplierName, order.Item, order.Amount, order.Status, order.Date, order.StockApplied,
		lineID, lineName, lineQty, lineUnit, linePrice}
}

func (r *sqlRepository) Insert(ctx context.Context, order Order) error {
	_, err := r.db.Exec(ctx, `INSERT INTO purchase_orders (`+orderColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`, orderArgs(order)...)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return errors.New("procurement: order id already exists")
	}
	return err
}

func (r *sqlRepository) Update(ctx context.Context, order Order) error {
	tag, err := r.db.Exec(ctx, `UPDATE purchase_orders SET supplier_id=$2, supplier_name=$3, item=$4, amount=$5, status=$6, order_date=$7, stock_applied=$8,
line_item_id=$9, line_item_name=$10, line_quantity=$11, line_unit=$12, line_unit_price=$13 WHERE id=$1`, orderArgs(order)...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

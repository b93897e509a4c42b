package ledger

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type sqlRepository struct {
	db *pgxpool.Pool
}

// NewRepository returns the PostgreSQL-backed repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &sqlRepository{db: db}
}

func (r *sqlRepository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return err
	}
	if err := fn(ctx, &sqlTx{tx: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func (r *sqlRepository) ListTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := r.db.Query(ctx, `SELECT id, date, description, amount, type, category, status FROM ledger_transactions ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Transaction
	for rows.Next() {
		var tx Transaction
		if err := rows.Scan(&tx.ID, &tx.Date, &tx.Description, &tx.Amount, &tx.Type, &tx.Category, &tx.Status); err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

func (r *sqlRepository) ListPostings(ctx context.Context, entryRef string) ([]Posting, error) {
	rows, err := r.db.Query(ctx, `SELECT entry_ref, date, account_code, description, cost_center, tax_code, debit, credit
FROM ledger_postings WHERE entry_ref=$1 ORDER BY id ASC`, entryRef)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Posting
	for rows.Next() {
		var p Posting
		if err := rows.Scan(&p.EntryRef, &p.Date, &p.AccountCode, &p.Description, &p.CostCenter, &p.TaxCode, &p.Debit, &p.Credit); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type sqlTx struct {
	tx pgx.Tx
}

func (t *sqlTx) InsertTransaction(ctx context.Context, tx Transaction) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO ledger_transactions (id, date, description, amount, type, category, status)
VALUES ($1,$2,$3,$4,$5,$6,$7)`, tx.ID, tx.Date, tx.Description, tx.Amount, tx.Type, tx.Category, tx.Status)
	return err
}

func (t *sqlTx) InsertPostings(ctx context.Context, postings []Posting) error {
	for _, p := range postings {
		if _, err := t.tx.Exec(ctx, `INSERT INTO ledger_postings (entry_ref, date, account_code, description, cost_center, tax_code, debit, credit)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`, p.EntryRef, p.Date, p.AccountCode, p.Description, p.CostCenter, p.TaxCode, p.Debit, p.Credit); err != nil {
			return err
		}
	}
	return nil
}

package taxes

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository encapsulates storage for tax rules.
type Repository interface {
	List(ctx context.Context) ([]Tax, error)
	Create(ctx context.Context, t Tax) (Tax, error)
}

type sqlRepository struct {
	db *pgxpool.Pool
}

// NewRepository returns the PostgreSQL-backed repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &sqlRepository{db: db}
}

func (r *sqlRepository) List(ctx context.Context) ([]Tax, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name, rate FROM tax_rules ORDER BY code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Tax
	for rows.Next() {
		var t Tax
		if err := rows.Scan(&t.Code, &t.Name, &t.Rate); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *sqlRepository) Create(ctx context.Context, t Tax) (Tax, error) {
	if _, err := r.db.Exec(ctx, `INSERT INTO tax_rules (code, name, rate) VALUES ($1,$2,$3)`, t.Code, t.Name, t.Rate); err != nil {
		return Tax{}, err
	}
	return t, nil
}

// MemoryRepository keeps tax rules in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	rules []Tax
}

func NewMemoryRepository(seed []Tax) *MemoryRepository {
	return &MemoryRepository{rules: append([]Tax(nil), seed...)}
}

func (r *MemoryRepository) List(_ context.Context) ([]Tax, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Tax(nil), r.rules...), nil
}

func (r *MemoryRepository) Create(_ context.Context, t Tax) (Tax, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rules {
		if existing.Code == t.Code {
			return Tax{}, errors.New("tax code already exists")
		}
	}
	r.rules = append(r.rules, t)
	return t, nil
}

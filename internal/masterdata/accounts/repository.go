package accounts

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

// Repository encapsulates storage for the chart of accounts.
type Repository interface {
	List(ctx context.Context) ([]Account, error)
	Get(ctx context.Context, code string) (Account, error)
	Create(ctx context.Context, account Account) (Account, error)
}

type sqlRepository struct {
	db *pgxpool.Pool
}

// NewRepository returns the PostgreSQL-backed repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &sqlRepository{db: db}
}

func (r *sqlRepository) List(ctx context.Context) ([]Account, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name FROM accounts ORDER BY code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.Code, &a.Name); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *sqlRepository) Get(ctx context.Context, code string) (Account, error) {
	var a Account
	err := r.db.QueryRow(ctx, `SELECT code, name FROM accounts WHERE code=$1`, code).Scan(&a.Code, &a.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, shared.ErrNotFound
	}
	return a, err
}

func (r *sqlRepository) Create(ctx context.Context, account Account) (Account, error) {
	_, err := r.db.Exec(ctx, `INSERT INTO accounts (code, name) VALUES ($1,$2)`, account.Code, account.Name)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return Account{}, errors.New("account code already exists")
	}
	if err != nil {
		return Account{}, err
	}
	return account, nil
}

// MemoryRepository keeps the chart in process memory. Used by the
// single-process deployment and by tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts []Account
	byCode   map[string]Account
}

// NewMemoryRepository returns a memory repository preloaded with seed.
func NewMemoryRepository(seed []Account) *MemoryRepository {
	r := &MemoryRepository{byCode: make(map[string]Account, len(seed))}
	for _, a := range seed {
		r.accounts = append(r.accounts, a)
		r.byCode[a.Code] = a
	}
	return r
}

func (r *MemoryRepository) List(_ context.Context) ([]Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Account(nil), r.accounts...), nil
}

func (r *MemoryRepository) Get(_ context.Context, code string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byCode[code]
	if !ok {
		return Account{}, shared.ErrNotFound
	}
	return a, nil
}

func (r *MemoryRepository) Create(_ context.Context, account Account) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byCode[account.Code]; ok {
		return Account{}, errors.New("account code already exists")
	}
	r.accounts = append(r.accounts, account)
	r.byCode[account.Code] = account
	return account, nil
}

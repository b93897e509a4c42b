package suppliers

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

// Repository encapsulates storage for suppliers.
type Repository interface {
	List(ctx context.Context) ([]Supplier, error)
	Get(ctx context.Context, id string) (Supplier, error)
	Create(ctx context.Context, sup Supplier) (Supplier, error)
}

type sqlRepository struct {
	db *pgxpool.Pool
}

// NewRepository returns the PostgreSQL-backed repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &sqlRepository{db: db}
}

func (r *sqlRepository) List(ctx context.Context) ([]Supplier, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, contact, email, category, rating FROM suppliers ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Supplier
	for rows.Next() {
		var sup Supplier
		if err := rows.Scan(&sup.ID, &sup.Name, &sup.Contact, &sup.Email, &sup.Category, &sup.Rating); err != nil {
			return nil, err
		}
		out = append(out, sup)
	}
	return out, rows.Err()
}

func (r *sqlRepository) Get(ctx context.Context, id string) (Supplier, error) {
	var sup Supplier
	err := r.db.QueryRow(ctx, `SELECT id, name, contact, email, category, rating FROM suppliers WHERE id=$1`, id).
		Scan(&sup.ID, &sup.Name, &sup.Contact, &sup.Email, &sup.Category, &sup.Rating)
	if errors.Is(err, pgx.ErrNoRows) {
		return Supplier{}, shared.ErrNotFound
	}
	return sup, err
}

func (r *sqlRepository) Create(ctx context.Context, sup Supplier) (Supplier, error) {
	_, err := r.db.Exec(ctx, `INSERT INTO suppliers (id, name, contact, email, category, rating) VALUES ($1,$2,$3,$4,$5,$6)`,
		sup.ID, sup.Name, sup.Contact, sup.Email, sup.Category, sup.Rating)
	if err != nil {
		return Supplier{}, err
	}
	return sup, nil
}

// MemoryRepository keeps suppliers in process memory.
type MemoryRepository struct {
	mu   sync.RWMutex
	list []Supplier
	byID map[string]Supplier
}

func NewMemoryRepository(seed []Supplier) *MemoryRepository {
	r := &MemoryRepository{byID: make(map[string]Supplier, len(seed))}
	for _, sup := range seed {
		r.list = append(r.list, sup)
		r.byID[sup.ID] = sup
	}
	return r
}

func (r *MemoryRepository) List(_ context.Context) ([]Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Supplier(nil), r.list...), nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sup, ok := r.byID[id]
	if !ok {
		return Supplier{}, shared.ErrNotFound
	}
	return sup, nil
}

func (r *MemoryRepository) Create(_ context.Context, sup Supplier) (Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[sup.ID]; ok {
		return Supplier{}, errors.New("supplier id already exists")
	}
	r.list = append(r.list, sup)
	r.byID[sup.ID] = sup
	return sup, nil
}

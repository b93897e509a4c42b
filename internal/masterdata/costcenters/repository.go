package costcenters

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository encapsulates storage for cost centers.
type Repository interface {
	List(ctx context.Context) ([]CostCenter, error)
	Create(ctx context.Context, cc CostCenter) (CostCenter, error)
}

type sqlRepository struct {
	db *pgxpool.Pool
}

// NewRepository returns the PostgreSQL-backed repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &sqlRepository{db: db}
}

func (r *sqlRepository) List(ctx context.Context) ([]CostCenter, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name FROM cost_centers ORDER BY code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CostCenter
	for rows.Next() {
		var cc CostCenter
		if err := rows.Scan(&cc.Code, &cc.Name); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}

func (r *sqlRepository) Create(ctx context.Context, cc CostCenter) (CostCenter, error) {
	if _, err := r.db.Exec(ctx, `INSERT INTO cost_centers (code, name) VALUES ($1,$2)`, cc.Code, cc.Name); err != nil {
		return CostCenter{}, err
	}
	return cc, nil
}

// MemoryRepository keeps cost centers in process memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	centers []CostCenter
}

func NewMemoryRepository(seed []CostCenter) *MemoryRepository {
	return &MemoryRepository{centers: append([]CostCenter(nil), seed...)}
}

func (r *MemoryRepository) List(_ context.Context) ([]CostCenter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]CostCenter(nil), r.centers...), nil
}

func (r *MemoryRepository) Create(_ context.Context, cc CostCenter) (CostCenter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.centers {
		if existing.Code == cc.Code {
			return CostCenter{}, errors.New("cost center code already exists")
		}
	}
	r.centers = append(r.centers, cc)
	return cc, nil
}

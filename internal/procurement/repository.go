package procurement

import (
	"context"
	"errors"
	"sync"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

// Repository encapsulates storage for purchase orders.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id string) (Order, error)
	Insert(ctx context.Context, order Order) error
	Update(ctx context.Context, order Order) error
}

// MemoryRepository keeps the order book in process memory, newest first.
type MemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	index  map[string]int
}

// NewMemoryRepository returns a memory repository preloaded with seed
// orders (already ordered newest first).
func NewMemoryRepository(seed []Order) *MemoryRepository {
	r := &MemoryRepository{index: make(map[string]int, len(seed))}
	for _, order := range seed {
		r.index[order.ID] = len(r.orders)
		r.orders = append(r.orders, order)
	}
	return r
}

func (r *MemoryRepository) List(_ context.Context) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Order(nil), r.orders...), nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.index[id]
	if !ok {
		return Order{}, shared.ErrNotFound
	}
	return r.orders[idx], nil
}

func (r *MemoryRepository) Insert(_ context.Context, order Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[order.ID]; ok {
		return errors.New("procurement: order id already exists")
	}
	r.orders = append([]Order{order}, r.orders...)
	r.index = make(map[string]int, len(r.orders))
	for i, o := range r.orders {
		r.index[o.ID] = i
	}
	return nil
}

func (r *MemoryRepository) Update(_ context.Context, order Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx, ok := r.index[order.ID]
	if !ok {
		return shared.ErrNotFound
	}
	r.orders[idx] = order
	return nil
}

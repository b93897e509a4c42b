package inventory

import (
	"context"
	"errors"
	"sync"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

// Repository encapsulates storage for inventory items.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (Item, error)
	FindByName(ctx context.Context, name string) (Item, error)
	Create(ctx context.Context, item Item) (Item, error)
	// AdjustStock applies a stock delta and returns the updated item. The
	// resulting stock must not go negative.
	AdjustStock(ctx context.Context, id string, delta int64) (Item, error)
}

// MemoryRepository keeps inventory in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []Item
	index map[string]int
}

// NewMemoryRepository returns a memory repository preloaded with seed.
func NewMemoryRepository(seed []Item) *MemoryRepository {
	r := &MemoryRepository{index: make(map[string]int, len(seed))}
	for _, item := range seed {
		r.index[item.ID] = len(r.items)
		r.items = append(r.items, item)
	}
	return r
}

func (r *MemoryRepository) List(_ context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Item(nil), r.items...), nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.index[id]
	if !ok {
		return Item{}, shared.ErrNotFound
	}
	return r.items[idx], nil
}

func (r *MemoryRepository) FindByName(_ context.Context, name string) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.Name == name {
			return item, nil
		}
	}
	return Item{}, shared.ErrNotFound
}

func (r *MemoryRepository) Create(_ context.Context, item Item) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[item.ID]; ok {
		return Item{}, errors.New("inventory: item id already exists")
	}
	r.index[item.ID] = len(r.items)
	r.items = append(r.items, item)
	return item, nil
}

func (r *MemoryRepository) AdjustStock(_ context.Context, id string, delta int64) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx, ok := r.index[id]
	if !ok {
		return Item{}, shared.ErrNotFound
	}
	next := r.items[idx].Stock + delta
	if next < 0 {
		return Item{}, ErrNegativeStock
	}
	r.items[idx].Stock = next
	return r.items[idx], nil
}

package ledger

import (
	"context"
	"sync"
)

// Repository encapsulates storage for the transaction log and postings.
type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
	ListTransactions(ctx context.Context) ([]Transaction, error)
	ListPostings(ctx context.Context, entryRef string) ([]Posting, error)
}

// TxRepository exposes writes available within a posting transaction.
type TxRepository interface {
	InsertTransaction(ctx context.Context, tx Transaction) error
	InsertPostings(ctx context.Context, postings []Posting) error
}

// MemoryRepository keeps the ledger in process memory, newest first.
type MemoryRepository struct {
	mu           sync.RWMutex
	transactions []Transaction
	postings     map[string][]Posting
}

// NewMemoryRepository returns a memory repository preloaded with seed
// transactions (already ordered newest first).
func NewMemoryRepository(seed []Transaction) *MemoryRepository {
	return &MemoryRepository{
		transactions: append([]Transaction(nil), seed...),
		postings:     make(map[string][]Posting),
	}
}

type memoryTx struct {
	transactions []Transaction
	postings     []Posting
}

func (t *memoryTx) InsertTransaction(_ context.Context, tx Transaction) error {
	t.transactions = append(t.transactions, tx)
	return nil
}

func (t *memoryTx) InsertPostings(_ context.Context, postings []Posting) error {
	t.postings = append(t.postings, postings...)
	return nil
}

// WithTx stages writes and applies them only when fn succeeds, so a failed
// posting leaves no partial state behind.
func (r *MemoryRepository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	staged := &memoryTx{}
	if err := fn(ctx, staged); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tx := range staged.transactions {
		r.transactions = append([]Transaction{tx}, r.transactions...)
	}
	for _, p := range staged.postings {
		r.postings[p.EntryRef] = append(r.postings[p.EntryRef], p)
	}
	return nil
}

func (r *MemoryRepository) ListTransactions(_ context.Context) ([]Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Transaction(nil), r.transactions...), nil
}

func (r *MemoryRepository) ListPostings(_ context.Context, entryRef string) ([]Posting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Posting(nil), r.postings[entryRef]...), nil
}

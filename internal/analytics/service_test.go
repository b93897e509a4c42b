package analytics

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/inventory"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/ledger"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/procurement"
)

type mockSources struct {
	txs      []ledger.Transaction
	orders   []procurement.Order
	items    []inventory.Item
	txCalls  int
	ordCalls int
}

func (m *mockSources) Transactions(context.Context) ([]ledger.Transaction, error) {
	m.txCalls++
	return m.txs, nil
}

func (m *mockSources) List(context.Context) ([]procurement.Order, error) {
	m.ordCalls++
	return m.orders, nil
}

func (m *mockSources) LowStock(context.Context) ([]inventory.Item, error) {
	var low []inventory.Item
	for _, item := range m.items {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

func (m *mockSources) TotalValue(context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range m.items {
		total = total.Add(item.Value())
	}
	return total, nil
}

func newTestService(t *testing.T, src *mockSources) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(src, src, src, NewCache(client, time.Minute))
}

func testSources() *mockSources {
	return &mockSources{
		txs: []ledger.Transaction{
			{ID: "JE-1", Amount: decimal.NewFromInt(1000000), Type: ledger.TypeCredit, Status: ledger.StatusPosted},
			{ID: "JE-2", Amount: decimal.NewFromInt(400000), Type: ledger.TypeDebit, Status: ledger.StatusPosted},
			{ID: "JE-3", Amount: decimal.NewFromInt(250000), Type: ledger.TypeDebit, Status: ledger.StatusPending},
		},
		orders: []procurement.Order{
			{ID: "PO-1", Status: procurement.StatusSent},
			{ID: "PO-2", Status: procurement.StatusDraft},
			{ID: "PO-3", Status: procurement.StatusPaid},
		},
		items: []inventory.Item{
			{ID: "ITM-1", Stock: 3, ReorderPoint: 5, UnitPrice: decimal.NewFromInt(1000)},
			{ID: "ITM-2", Stock: 50, ReorderPoint: 5, UnitPrice: decimal.NewFromInt(200)},
		},
	}
}

func TestSnapshotAggregates(t *testing.T) {
	src := testSources()
	svc := newTestService(t, src)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(1000000).Equal(snap.Income))
	require.True(t, decimal.NewFromInt(650000).Equal(snap.Expense))
	require.True(t, decimal.NewFromInt(350000).Equal(snap.Net))
	require.Equal(t, 1, snap.PendingTransactions)
	require.Equal(t, 2, snap.OpenOrders)
	require.Equal(t, 1, snap.LowStockItems)
	require.True(t, decimal.NewFromInt(13000).Equal(snap.InventoryValue))
	require.Equal(t, "Rp1.000.000", snap.IncomeDisplay)
}

func TestSnapshotCachesUntilInvalidated(t *testing.T) {
	src := testSources()
	svc := newTestService(t, src)
	ctx := context.Background()

	_, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, src.txCalls)

	_, err = svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, src.txCalls, "second read must come from cache")

	require.NoError(t, svc.Invalidate(ctx))
	src.txs = append(src.txs, ledger.Transaction{ID: "JE-4", Amount: decimal.NewFromInt(500000), Type: ledger.TypeCredit, Status: ledger.StatusPosted})

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, src.txCalls)
	require.True(t, decimal.NewFromInt(1500000).Equal(snap.Income))
}

func TestSnapshotWithoutRedis(t *testing.T) {
	src := testSources()
	svc := NewService(src, src, src, NewCache(nil, time.Minute))

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, snap.OpenOrders)

	_, err = svc.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, src.txCalls, "nil cache always reloads")
}

// Package analytics aggregates the dashboard KPI snapshot from the
// ledger, procurement and inventory engines.
package analytics

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/inventory"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/ledger"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/procurement"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

// LedgerPort exposes the transaction feed the snapshot reduces over.
type LedgerPort interface {
	Transactions(ctx context.Context) ([]ledger.Transaction, error)
}

// ProcurementPort exposes the order book.
type ProcurementPort interface {
	List(ctx context.Context) ([]procurement.Order, error)
}

// InventoryPort exposes the stock reports.
type InventoryPort interface {
	LowStock(ctx context.Context) ([]inventory.Item, error)
	TotalValue(ctx context.Context) (decimal.Decimal, error)
}

// KPISnapshot contains the key indicators surfaced on the dashboard.
type KPISnapshot struct {
	Income              decimal.Decimal `json:"income"`
	IncomeDisplay       string          `json:"incomeDisplay"`
	Expense             decimal.Decimal `json:"expense"`
	ExpenseDisplay      string          `json:"expenseDisplay"`
	Net                 decimal.Decimal `json:"net"`
	NetDisplay          string          `json:"netDisplay"`
	PendingTransactions int             `json:"pendingTransactions"`
	OpenOrders          int             `json:"openOrders"`
	LowStockItems       int             `json:"lowStockItems"`
	InventoryValue      decimal.Decimal `json:"inventoryValue"`
	InventoryDisplay    string          `json:"inventoryDisplay"`
}

// Service resolves KPI snapshots with cache-aware lookups.
type Service struct {
	ledger      LedgerPort
	procurement ProcurementPort
	inventory   InventoryPort
	cache       *Cache
}

func NewService(ledgerPort LedgerPort, procurementPort ProcurementPort, inventoryPort InventoryPort, cache *Cache) *Service {
	return &Service{ledger: ledgerPort, procurement: procurementPort, inventory: inventoryPort, cache: cache}
}

// Snapshot resolves the KPI card, served from cache when warm.
func (s *Service) Snapshot(ctx context.Context) (KPISnapshot, error) {
	loader := func(ctx context.Context) (any, error) {
		return s.build(ctx)
	}
	key, err := s.cache.BuildKey(ctx, "analytics", "kpi")
	if err != nil {
		return KPISnapshot{}, err
	}
	var snap KPISnapshot
	if err := s.cache.FetchJSON(ctx, key, &snap, loader); err != nil {
		return KPISnapshot{}, err
	}
	return snap, nil
}

// Invalidate drops every cached snapshot. Called after postings and
// order transitions so the dashboard never serves stale numbers.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Bump(ctx)
}

func (s *Service) build(ctx context.Context) (KPISnapshot, error) {
	var (
		txs        []ledger.Transaction
		orders     []procurement.Order
		lowStock   []inventory.Item
		stockValue decimal.Decimal
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		txs, err = s.ledger.Transactions(ctx)
		return err
	})
	g.Go(func() (err error) {
		orders, err = s.procurement.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		lowStock, err = s.inventory.LowStock(ctx)
		return err
	})
	g.Go(func() (err error) {
		stockValue, err = s.inventory.TotalValue(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return KPISnapshot{}, err
	}

	income := ledger.Sum(txs, ledger.ByType(ledger.TypeCredit))
	expense := ledger.Sum(txs, ledger.ByType(ledger.TypeDebit))
	open := 0
	for _, order := range orders {
		if order.Status == procurement.StatusDraft || order.Status == procurement.StatusSent {
			open++
		}
	}
	net := income.Sub(expense)
	return KPISnapshot{
		Income:              income,
		IncomeDisplay:       shared.FormatIDR(income),
		Expense:             expense,
		ExpenseDisplay:      shared.FormatIDR(expense),
		Net:                 net,
		NetDisplay:          shared.FormatIDR(net),
		PendingTransactions: ledger.Count(txs, ledger.ByStatus(ledger.StatusPending)),
		OpenOrders:          open,
		LowStockItems:       len(lowStock),
		InventoryValue:      stockValue,
		InventoryDisplay:    shared.FormatIDR(stockValue),
	}, nil
}

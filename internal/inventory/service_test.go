package inventory

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

func newTestService() *Service {
	repo := NewMemoryRepository(Seed())
	return NewService(repo, shared.NewSequence(int64(len(Seed()))), nil, slog.Default())
}

func TestRegisterRequiresNameAndPrice(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{UnitPrice: decimal.NewFromInt(1000)})
	require.ErrorIs(t, err, shared.ErrMissingRequiredField)

	_, err = svc.Register(ctx, RegisterInput{Name: "   ", UnitPrice: decimal.NewFromInt(1000)})
	require.ErrorIs(t, err, shared.ErrMissingRequiredField)

	_, err = svc.Register(ctx, RegisterInput{Name: "Toner Printer"})
	require.ErrorIs(t, err, shared.ErrMissingRequiredField)
}

func TestRegisterAppliesDefaults(t *testing.T) {
	svc := newTestService()

	item, err := svc.Register(context.Background(), RegisterInput{
		Name:      "Toner Printer HP 85A",
		UnitPrice: decimal.NewFromInt(950000),
	})
	require.NoError(t, err)
	require.Equal(t, "ITM-006", item.ID)
	require.Equal(t, "GEN-000", item.SKU)
	require.Equal(t, CategoryConsumable, item.Category)
	require.Zero(t, item.Stock)
	require.Equal(t, "Pcs", item.Unit)
	require.Equal(t, int64(5), item.ReorderPoint)
	require.Equal(t, "General Storage", item.Location)
	require.True(t, item.LowStock(), "zero stock starts at or below the default reorder point")
}

func TestRegisterKeepsExplicitFields(t *testing.T) {
	svc := newTestService()

	reorder := int64(30)
	item, err := svc.Register(context.Background(), RegisterInput{
		Name:         "Proyektor Epson EB-X500",
		SKU:          "IT-PRJ-011",
		Category:     CategoryIT,
		Stock:        8,
		Unit:         "Unit",
		ReorderPoint: &reorder,
		UnitPrice:    decimal.NewFromInt(7200000),
		Location:     "Gudang IT",
	})
	require.NoError(t, err)
	require.Equal(t, "IT-PRJ-011", item.SKU)
	require.Equal(t, int64(30), item.ReorderPoint)
	require.Equal(t, "Gudang IT", item.Location)
}

func TestRegisterIDsSurviveRestart(t *testing.T) {
	repo := NewMemoryRepository(Seed())
	ctx := context.Background()

	itemSequence := func() *shared.Sequence {
		items, err := repo.List(ctx)
		require.NoError(t, err)
		ids := make([]string, len(items))
		for i, item := range items {
			ids[i] = item.ID
		}
		return shared.SuffixSequence(ids...)
	}

	svc := NewService(repo, itemSequence(), nil, slog.Default())
	item, err := svc.Register(ctx, RegisterInput{Name: "Toner Printer HP 85A", UnitPrice: decimal.NewFromInt(950000)})
	require.NoError(t, err)
	require.Equal(t, "ITM-006", item.ID)

	// A new service over the same store must keep counting where the
	// rows left off, not where the seed data ends.
	restarted := NewService(repo, itemSequence(), nil, slog.Default())
	item, err = restarted.Register(ctx, RegisterInput{Name: "Kabel HDMI 10m", UnitPrice: decimal.NewFromInt(120000)})
	require.NoError(t, err)
	require.Equal(t, "ITM-007", item.ID)
}

func TestReceiveAdjustsStock(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	item, err := svc.Receive(ctx, "ITM-001", 50)
	require.NoError(t, err)
	require.Equal(t, int64(95), item.Stock)

	_, err = svc.Receive(ctx, "ITM-001", 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.Receive(ctx, "ITM-404", 10)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestLowStockReportTransitions(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	low, err := svc.LowStock(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(low))
	for _, item := range low {
		ids = append(ids, item.ID)
	}
	// Kertas (45/50) and the PCs (5/5) start at or below reorder point.
	require.Equal(t, []string{"ITM-001", "ITM-004"}, ids)

	_, err = svc.Receive(ctx, "ITM-001", 10)
	require.NoError(t, err)

	low, err = svc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	require.Equal(t, "ITM-004", low[0].ID)
}

func TestTotalValue(t *testing.T) {
	repo := NewMemoryRepository([]Item{
		{ID: "ITM-001", Name: "A", Stock: 2, UnitPrice: decimal.NewFromInt(1500)},
		{ID: "ITM-002", Name: "B", Stock: 3, UnitPrice: decimal.NewFromInt(1000)},
	})
	svc := NewService(repo, shared.NewSequence(2), nil, slog.Default())

	total, err := svc.TotalValue(context.Background())
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(6000).Equal(total))
}

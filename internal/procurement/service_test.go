package procurement

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/inventory"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/masterdata/suppliers"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

func newTestService(t *testing.T) (*Service, *inventory.Service) {
	t.Helper()
	invRepo := inventory.NewMemoryRepository(inventory.Seed())
	invSvc := inventory.NewService(invRepo, shared.NewSequence(int64(len(inventory.Seed()))), nil, slog.Default())
	supSvc := suppliers.NewService(suppliers.NewMemoryRepository(suppliers.Seed()), shared.NewSequence(int64(len(suppliers.Seed()))))

	repo := NewMemoryRepository(Seed())
	svc := NewService(repo, invSvc, supSvc, shared.NewSequence(int64(len(Seed()))), nil, slog.Default())
	svc.WithNow(func() time.Time { return time.Date(2023, 10, 27, 9, 0, 0, 0, time.UTC) })
	return svc, invSvc
}

func TestCreateOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// 50 rim of Kertas A4 at 55,000 apiece.
	order, err := svc.Create(ctx, CreateInput{SupplierID: "SUP-001", ItemID: "ITM-001", Quantity: 50})
	require.NoError(t, err)
	require.Equal(t, "PO-2023-004", order.ID)
	require.Equal(t, "CV. Pustaka Abadi", order.SupplierName)
	require.Equal(t, StatusSent, order.Status)
	require.True(t, decimal.NewFromInt(2750000).Equal(order.Amount))
	require.Equal(t, "Kertas A4 80gsm (Rim) (50 Rim)", order.Item)
	require.NotNil(t, order.Line)
	require.Equal(t, "ITM-001", order.Line.ItemID)
	require.Equal(t, int64(50), order.Line.Quantity)

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, order.ID, orders[0].ID, "new orders prepend to the book")
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{ItemID: "ITM-001", Quantity: 1})
	require.ErrorIs(t, err, shared.ErrMissingSelection)

	_, err = svc.Create(ctx, CreateInput{SupplierID: "SUP-001", ItemID: "ITM-999", Quantity: 1})
	require.ErrorIs(t, err, shared.ErrMissingSelection)

	_, err = svc.Create(ctx, CreateInput{SupplierID: "SUP-001", ItemID: "ITM-001", Quantity: 0})
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestReceiveAppliesStockOnce(t *testing.T) {
	svc, inv := newTestService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, CreateInput{SupplierID: "SUP-001", ItemID: "ITM-001", Quantity: 50})
	require.NoError(t, err)

	before, err := inv.Get(ctx, "ITM-001")
	require.NoError(t, err)

	result, err := svc.Receive(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, StatusReceived, result.Order.Status)
	require.True(t, result.Order.StockApplied)
	require.Equal(t, int64(50), result.QuantityApplied)
	require.Empty(t, result.Warning)

	after, err := inv.Get(ctx, "ITM-001")
	require.NoError(t, err)
	require.Equal(t, before.Stock+50, after.Stock)

	// A second receive is a no-op: same state, no extra stock.
	again, err := svc.Receive(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, StatusReceived, again.Order.Status)
	require.Zero(t, again.QuantityApplied)

	final, err := inv.Get(ctx, "ITM-001")
	require.NoError(t, err)
	require.Equal(t, after.Stock, final.Stock)
}

func TestReceiveLegacyOrderParsesDescription(t *testing.T) {
	svc, inv := newTestService(t)
	ctx := context.Background()

	// Seeded legacy order without a structured line: "PC All-in-One Core i5 (5 Unit)".
	result, err := svc.Receive(ctx, "PO-2023-10-001")
	require.NoError(t, err)
	require.Equal(t, StatusReceived, result.Order.Status)
	require.Equal(t, int64(5), result.QuantityApplied)
	require.Empty(t, result.Warning)

	item, err := inv.Get(ctx, "ITM-004")
	require.NoError(t, err)
	require.Equal(t, int64(10), item.Stock)
}

func TestDraftOrderTransitionsRejected(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// PO-2023-10-003 is seeded in Draft.
	_, err := svc.MarkPaid(ctx, "PO-2023-10-003")
	require.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.Receive(ctx, "PO-2023-10-003")
	require.ErrorIs(t, err, ErrInvalidState, "draft orders cannot be received")
}

func TestReceiveWarnsWhenItemUnknown(t *testing.T) {
	repo := NewMemoryRepository([]Order{{
		ID:           "PO-LEGACY-9",
		SupplierName: "CV. Pustaka Abadi",
		Item:         "Tinta Stempel Ungu (3 Botol)",
		Amount:       decimal.NewFromInt(45000),
		Status:       StatusSent,
		Date:         time.Now(),
	}})
	invSvc := inventory.NewService(inventory.NewMemoryRepository(inventory.Seed()), shared.NewSequence(5), nil, slog.Default())
	supSvc := suppliers.NewService(suppliers.NewMemoryRepository(suppliers.Seed()), shared.NewSequence(4))
	svc := NewService(repo, invSvc, supSvc, shared.NewSequence(0), nil, slog.Default())

	result, err := svc.Receive(context.Background(), "PO-LEGACY-9")
	require.NoError(t, err)
	require.Equal(t, StatusReceived, result.Order.Status)
	require.False(t, result.Order.StockApplied)
	require.NotEmpty(t, result.Warning)

	// Re-receiving retries the stock update; the item still does not
	// exist, so the warning persists and the order stays Received.
	again, err := svc.Receive(context.Background(), "PO-LEGACY-9")
	require.NoError(t, err)
	require.Equal(t, StatusReceived, again.Order.Status)
	require.NotEmpty(t, again.Warning)
}

func TestMarkPaidRequiresReceived(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, CreateInput{SupplierID: "SUP-002", ItemID: "ITM-004", Quantity: 2})
	require.NoError(t, err)

	_, err = svc.MarkPaid(ctx, order.ID)
	require.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.Receive(ctx, order.ID)
	require.NoError(t, err)

	paid, err := svc.MarkPaid(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, StatusPaid, paid.Status)

	_, err = svc.MarkPaid(ctx, order.ID)
	require.ErrorIs(t, err, ErrInvalidState, "paid is terminal")

	_, err = svc.Receive(ctx, order.ID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestMarkPaidUnknownOrder(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.MarkPaid(context.Background(), "PO-NOPE")
	require.ErrorIs(t, err, shared.ErrNotFound)
}

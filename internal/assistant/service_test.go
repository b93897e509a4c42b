package assistant

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/inventory"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/ledger"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/procurement"
)

func seedSources() DataSources {
	return DataSources{
		Transactions: func(context.Context) ([]ledger.Transaction, error) { return ledger.Seed(), nil },
		Orders:       func(context.Context) ([]procurement.Order, error) { return procurement.Seed(), nil },
		Items:        func(context.Context) ([]inventory.Item, error) { return inventory.Seed(), nil },
	}
}

func TestBuildContextRendersAllSections(t *testing.T) {
	text, err := buildContext(context.Background(), seedSources())
	require.NoError(t, err)

	require.Contains(t, text, "Recent financial transactions:")
	require.Contains(t, text, "Purchase orders:")
	require.Contains(t, text, "Inventory:")

	require.Contains(t, text, "Tuition Payment Bulk - Batch A")
	require.Contains(t, text, "Rp1.250.000.000")
	require.Contains(t, text, "PO-2023-10-003")
	require.Contains(t, text, "Kertas A4 80gsm (Rim)")
	require.Contains(t, text, "LOW STOCK", "items at the reorder point must be flagged")
}

func TestAskWithoutClientReturnsFixedReply(t *testing.T) {
	svc := NewService(nil, "", seedSources(), slog.Default())

	answer, err := svc.Ask(context.Background(), "Berapa total pengeluaran bulan ini?")
	require.NoError(t, err)
	require.Equal(t, msgUnavailable, answer)
}

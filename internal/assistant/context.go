// Package assistant answers natural-language questions about the
// dashboard data using Gemini, with the live engine state injected as
// grounding context.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/inventory"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/ledger"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/procurement"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

// DataSources supplies the live snapshots the prompt is grounded on.
type DataSources struct {
	Transactions func(ctx context.Context) ([]ledger.Transaction, error)
	Orders       func(ctx context.Context) ([]procurement.Order, error)
	Items        func(ctx context.Context) ([]inventory.Item, error)
}

// buildContext renders the current state of every engine as a compact
// text block. Amounts are formatted in rupiah so the model answers in
// the same terms the dashboard displays.
func buildContext(ctx context.Context, src DataSources) (string, error) {
	txs, err := src.Transactions(ctx)
	if err != nil {
		return "", fmt.Errorf("assistant: load transactions: %w", err)
	}
	orders, err := src.Orders(ctx)
	if err != nil {
		return "", fmt.Errorf("assistant: load orders: %w", err)
	}
	items, err := src.Items(ctx)
	if err != nil {
		return "", fmt.Errorf("assistant: load inventory: %w", err)
	}

	var b strings.Builder
	b.WriteString("Recent financial transactions:\n")
	for _, tx := range txs {
		fmt.Fprintf(&b, "- %s | %s | %s | %s (%s, %s)\n",
			tx.Date.Format("2006-01-02"), tx.Description, tx.Category,
			shared.FormatIDR(tx.Amount), tx.Type, tx.Status)
	}
	b.WriteString("\nPurchase orders:\n")
	for _, order := range orders {
		fmt.Fprintf(&b, "- %s | %s | %s | %s | %s\n",
			order.ID, order.SupplierName, order.Item, shared.FormatIDR(order.Amount), order.Status)
	}
	b.WriteString("\nInventory:\n")
	for _, item := range items {
		status := "OK"
		if item.LowStock() {
			status = "LOW STOCK"
		}
		fmt.Fprintf(&b, "- %s | %s | stock %d %s (reorder at %d) | %s | %s\n",
			item.ID, item.Name, item.Stock, item.Unit, item.ReorderPoint,
			shared.FormatIDR(item.UnitPrice), status)
	}
	return b.String(), nil
}

const systemInstruction = `You are a helpful administrative assistant for a university management dashboard.
Answer questions about finances, procurement and inventory using only the data provided.
Amounts are in Indonesian Rupiah. Be concise and factual; if the data does not contain
the answer, say so instead of guessing.`

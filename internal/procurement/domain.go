// Package procurement manages the purchase-order lifecycle and its
// inventory side effects.
package procurement

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status enumerates purchase-order lifecycle states.
type Status string

const (
	StatusDraft    Status = "Draft"
	StatusSent     Status = "Sent"
	StatusReceived Status = "Received"
	StatusPaid     Status = "Paid"
)

// OrderLine references the ordered inventory item directly. Orders created
// through the engine always carry one; legacy seeded orders may not, in
// which case the denormalized Item string is parsed at receipt time.
type OrderLine struct {
	ItemID    string          `json:"itemId"`
	ItemName  string          `json:"itemName"`
	Quantity  int64           `json:"quantity"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Display renders the legacy "Name (N Unit)" form.
func (l OrderLine) Display() string {
	return fmt.Sprintf("%s (%d %s)", l.ItemName, l.Quantity, l.Unit)
}

// Order is a commitment to buy from a supplier. SupplierName is a snapshot
// taken at creation, not a live reference.
type Order struct {
	ID           string          `json:"id"`
	SupplierID   string          `json:"supplierId,omitempty"`
	SupplierName string          `json:"supplier"`
	Line         *OrderLine      `json:"line,omitempty"`
	Item         string          `json:"item"`
	Amount       decimal.Decimal `json:"amount"`
	Status       Status          `json:"status"`
	Date         time.Time       `json:"date"`
	// StockApplied records whether the receipt's inventory increment has
	// been applied. Status alone cannot distinguish "received, stock
	// updated" from "received, update skipped", and the increment must
	// never run twice.
	StockApplied bool `json:"stockApplied"`
}

var (
	// ErrInvalidState occurs when an action violates the status workflow.
	ErrInvalidState = errors.New("procurement: invalid state transition")
	// ErrInvalidQuantity indicates a non-positive order quantity.
	ErrInvalidQuantity = errors.New("procurement: quantity must be positive")
)

// Seed returns the opening order book, newest first. The seeded orders
// predate structured lines and carry only the denormalized description.
func Seed() []Order {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []Order{
		{ID: "PO-2023-10-003", SupplierName: "Global Science Supplies", Item: "Mikroskop Cahaya X200 (2 Unit)", Amount: decimal.NewFromInt(9000000), Status: StatusDraft, Date: day("2023-10-26")},
		{ID: "PO-2023-10-001", SupplierName: "PT. Teknologi Edukasi Indonesia", Item: "PC All-in-One Core i5 (5 Unit)", Amount: decimal.NewFromInt(62500000), Status: StatusSent, Date: day("2023-10-25")},
		{ID: "PO-2023-10-002", SupplierName: "CV. Pustaka Abadi", Item: "Kertas A4 80gsm (50 Rim)", Amount: decimal.NewFromInt(2750000), Status: StatusReceived, Date: day("2023-10-20"), StockApplied: true},
	}
}

package inventory

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Category classifies inventory items.
type Category string

const (
	CategoryConsumable Category = "Consumable"
	CategoryAsset      Category = "Asset"
	CategoryIT         Category = "IT"
	CategoryFurniture  Category = "Furniture"
)

// Item is a stocked good. Stock changes only through registration and
// purchase-order receipts; it never goes negative.
type Item struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     Category        `json:"category"`
	Stock        int64           `json:"stock"`
	Unit         string          `json:"unit"`
	ReorderPoint int64           `json:"reorderPoint"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Location     string          `json:"location"`
}

// LowStock reports whether the item is at or below its reorder point.
func (i Item) LowStock() bool {
	return i.Stock <= i.ReorderPoint
}

// Value returns stock times unit price.
func (i Item) Value() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Stock))
}

var (
	// ErrInvalidQuantity indicates a non-positive receipt quantity.
	ErrInvalidQuantity = errors.New("inventory: quantity must be positive")
	// ErrNegativeStock is triggered when a movement would leave negative stock.
	ErrNegativeStock = errors.New("inventory: negative stock not allowed")
)

// Seed returns the initial warehouse contents.
func Seed() []Item {
	return []Item{
		{ID: "ITM-001", Name: "Kertas A4 80gsm (Rim)", SKU: "OFF-PAP-001", Category: CategoryConsumable, Stock: 45, Unit: "Rim", ReorderPoint: 50, UnitPrice: decimal.NewFromInt(55000), Location: "Gudang Admin"},
		{ID: "ITM-002", Name: "Spidol Whiteboard (Box)", SKU: "OFF-MRK-002", Category: CategoryConsumable, Stock: 12, Unit: "Box", ReorderPoint: 10, UnitPrice: decimal.NewFromInt(85000), Location: "Gudang FKIP"},
		{ID: "ITM-003", Name: "Mikroskop Cahaya X200", SKU: "LAB-BIO-001", Category: CategoryAsset, Stock: 20, Unit: "Unit", ReorderPoint: 5, UnitPrice: decimal.NewFromInt(4500000), Location: "Lab Biologi"},
		{ID: "ITM-004", Name: "PC All-in-One Core i5", SKU: "IT-COM-005", Category: CategoryIT, Stock: 5, Unit: "Unit", ReorderPoint: 5, UnitPrice: decimal.NewFromInt(12500000), Location: "Gudang IT"},
		{ID: "ITM-005", Name: "Kursi Kuliah Chitose", SKU: "FUR-CHR-009", Category: CategoryFurniture, Stock: 200, Unit: "Unit", ReorderPoint: 20, UnitPrice: decimal.NewFromInt(650000), Location: "Gudang Umum"},
	}
}

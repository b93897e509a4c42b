package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

// Service owns item registration, stock receipts, and stock reporting.
type Service struct {
	repo   Repository
	seq    *shared.Sequence
	audit  shared.AuditRecorder
	logger *slog.Logger
}

func NewService(repo Repository, seq *shared.Sequence, audit shared.AuditRecorder, logger *slog.Logger) *Service {
	return &Service{repo: repo, seq: seq, audit: audit, logger: logger}
}

// RegisterInput carries the item registration form. Name and unit price are
// mandatory; everything else has a default.
type RegisterInput struct {
	Name         string
	SKU          string
	Category     Category
	Stock        int64
	Unit         string
	ReorderPoint *int64
	UnitPrice    decimal.Decimal
	Location     string
}

// Register creates an item, applying defaults: SKU GEN-000, unit Pcs,
// reorder point 5, location General Storage.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Item, error) {
	if strings.TrimSpace(input.Name) == "" {
		return Item{}, fmt.Errorf("%w: item name", shared.ErrMissingRequiredField)
	}
	if !input.UnitPrice.IsPositive() {
		return Item{}, fmt.Errorf("%w: unit price", shared.ErrMissingRequiredField)
	}
	item := Item{
		ID:           fmt.Sprintf("ITM-%03d", s.seq.Next()),
		Name:         input.Name,
		SKU:          input.SKU,
		Category:     input.Category,
		Stock:        input.Stock,
		Unit:         input.Unit,
		ReorderPoint: 5,
		UnitPrice:    input.UnitPrice,
		Location:     input.Location,
	}
	if item.SKU == "" {
		item.SKU = "GEN-000"
	}
	if item.Category == "" {
		item.Category = CategoryConsumable
	}
	if item.Stock < 0 {
		item.Stock = 0
	}
	if item.Unit == "" {
		item.Unit = "Pcs"
	}
	if input.ReorderPoint != nil && *input.ReorderPoint >= 0 {
		item.ReorderPoint = *input.ReorderPoint
	}
	if item.Location == "" {
		item.Location = "General Storage"
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return Item{}, err
	}
	s.recordAudit(ctx, "item.register", created.ID, map[string]any{"sku": created.SKU})
	return created, nil
}

// Receive increments the item's stock by qty.
func (s *Service) Receive(ctx context.Context, itemID string, qty int64) (Item, error) {
	if qty <= 0 {
		return Item{}, ErrInvalidQuantity
	}
	item, err := s.repo.AdjustStock(ctx, itemID, qty)
	if err != nil {
		return Item{}, err
	}
	s.recordAudit(ctx, "item.receive", item.ID, map[string]any{"qty": qty, "stock": item.Stock})
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (Item, error) {
	if id == "" {
		return Item{}, shared.ErrMissingSelection
	}
	return s.repo.Get(ctx, id)
}

// FindByName resolves an item by its exact display name. Used when applying
// receipts for orders that only carry the legacy description string.
func (s *Service) FindByName(ctx context.Context, name string) (Item, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

// LowStock returns every item at or below its reorder point. Recomputed on
// demand from the current collection.
func (s *Service) LowStock(ctx context.Context) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var low []Item
	for _, item := range items {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

// TotalValue returns the summed stock valuation across all items.
func (s *Service) TotalValue(ctx context.Context) (decimal.Decimal, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Value())
	}
	return total, nil
}

func (s *Service) recordAudit(ctx context.Context, action, entityID string, meta map[string]any) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{Action: action, Entity: "inventory_item", EntityID: entityID, Meta: meta})
}

package procurement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/inventory"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/masterdata/suppliers"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

// InventoryPort exposes the required inventory integration.
type InventoryPort interface {
	Get(ctx context.Context, id string) (inventory.Item, error)
	FindByName(ctx context.Context, name string) (inventory.Item, error)
	Receive(ctx context.Context, id string, qty int64) (inventory.Item, error)
}

// SupplierDirectory resolves supplier ids.
type SupplierDirectory interface {
	Get(ctx context.Context, id string) (suppliers.Supplier, error)
}

// Service orchestrates purchase-order flows.
type Service struct {
	repo      Repository
	inventory InventoryPort
	suppliers SupplierDirectory
	seq       *shared.Sequence
	audit     shared.AuditRecorder
	logger    *slog.Logger
	now       func() time.Time

	// Receipt and payment are serialized per order so a re-entrant call
	// can never apply the inventory increment twice.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewService(repo Repository, inv InventoryPort, sup SupplierDirectory, seq *shared.Sequence, audit shared.AuditRecorder, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		inventory: inv,
		suppliers: sup,
		seq:       seq,
		audit:     audit,
		logger:    logger,
		now:       time.Now,
		locks:     make(map[string]*sync.Mutex),
	}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *Service) lockOrder(id string) func() {
	s.locksMu.Lock()
	mu, ok := s.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[id] = mu
	}
	s.locksMu.Unlock()
	mu.Lock()
	return mu.Unlock
}

// CreateInput identifies the supplier and item by id.
type CreateInput struct {
	SupplierID string
	ItemID     string
	Quantity   int64
}

// Create builds an order against current supplier and inventory records.
// The order starts in Sent state with amount = unit price x quantity.
func (s *Service) Create(ctx context.Context, input CreateInput) (Order, error) {
	if input.SupplierID == "" || input.ItemID == "" {
		return Order{}, shared.ErrMissingSelection
	}
	if input.Quantity <= 0 {
		return Order{}, ErrInvalidQuantity
	}
	sup, err := s.suppliers.Get(ctx, input.SupplierID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return Order{}, fmt.Errorf("%w: supplier %s", shared.ErrMissingSelection, input.SupplierID)
		}
		return Order{}, err
	}
	item, err := s.inventory.Get(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return Order{}, fmt.Errorf("%w: item %s", shared.ErrMissingSelection, input.ItemID)
		}
		return Order{}, err
	}

	line := OrderLine{
		ItemID:    item.ID,
		ItemName:  item.Name,
		Quantity:  input.Quantity,
		Unit:      item.Unit,
		UnitPrice: item.UnitPrice,
	}
	now := s.now()
	order := Order{
		ID:           fmt.Sprintf("PO-%d-%03d", now.Year(), s.seq.Next()),
		SupplierID:   sup.ID,
		SupplierName: sup.Name,
		Line:         &line,
		Item:         line.Display(),
		Amount:       item.UnitPrice.Mul(decimal.NewFromInt(input.Quantity)),
		Status:       StatusSent,
		Date:         now,
	}
	if err := s.repo.Insert(ctx, order); err != nil {
		return Order{}, err
	}
	s.recordAudit(ctx, "po.create", order.ID, map[string]any{"supplier": sup.ID, "item": item.ID, "qty": input.Quantity})
	return order, nil
}

// ReceiptResult reports the outcome of a receipt. Warning is set when the
// order was marked Received but the inventory update had to be skipped.
type ReceiptResult struct {
	Order           Order  `json:"order"`
	QuantityApplied int64  `json:"quantityApplied"`
	Warning         string `json:"warning,omitempty"`
}

// Receive marks the order Received and applies the inventory increment.
// The transition is one-way; calling Receive again on an order whose stock
// update already ran is a no-op. When the ordered item cannot be resolved
// (legacy orders with an unparseable description) the order still reaches
// Received and the gap is surfaced as a warning instead of failing the
// receipt: an order stuck in Sent forever is a worse outcome than an
// inventory-accuracy gap.
func (s *Service) Receive(ctx context.Context, orderID string) (ReceiptResult, error) {
	unlock := s.lockOrder(orderID)
	defer unlock()

	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return ReceiptResult{}, err
	}
	switch order.Status {
	case StatusSent:
		// normal path
	case StatusReceived:
		if order.StockApplied {
			return ReceiptResult{Order: order}, nil
		}
		// Received earlier with the stock update skipped; retry it.
	default:
		return ReceiptResult{}, fmt.Errorf("%w: receive from %s", ErrInvalidState, order.Status)
	}

	applied, qty, warning := s.applyReceipt(ctx, order)
	order.Status = StatusReceived
	order.StockApplied = applied
	if err := s.repo.Update(ctx, order); err != nil {
		return ReceiptResult{}, err
	}

	meta := map[string]any{"qty": qty}
	if warning != "" {
		meta["warning"] = warning
		s.logger.Warn("receipt applied without inventory update",
			slog.String("order", order.ID), slog.String("reason", warning))
	}
	s.recordAudit(ctx, "po.receive", order.ID, meta)
	return ReceiptResult{Order: order, QuantityApplied: qty, Warning: warning}, nil
}

func (s *Service) applyReceipt(ctx context.Context, order Order) (applied bool, qty int64, warning string) {
	itemID := ""
	if order.Line != nil {
		itemID = order.Line.ItemID
		qty = order.Line.Quantity
	} else {
		name, parsed, ok := parseLegacyItem(order.Item)
		if !ok {
			return false, 0, "order description could not be parsed; verify inventory manually"
		}
		item, err := s.inventory.FindByName(ctx, name)
		if err != nil {
			return false, 0, fmt.Sprintf("item %q not found in inventory; verify stock manually", name)
		}
		itemID = item.ID
		qty = parsed
	}
	if _, err := s.inventory.Receive(ctx, itemID, qty); err != nil {
		return false, 0, fmt.Sprintf("inventory update failed: %v", err)
	}
	return true, qty, ""
}

// MarkPaid settles a received order. Paid is terminal.
func (s *Service) MarkPaid(ctx context.Context, orderID string) (Order, error) {
	unlock := s.lockOrder(orderID)
	defer unlock()

	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return Order{}, err
	}
	if order.Status != StatusReceived {
		return Order{}, fmt.Errorf("%w: pay from %s", ErrInvalidState, order.Status)
	}
	order.Status = StatusPaid
	if err := s.repo.Update(ctx, order); err != nil {
		return Order{}, err
	}
	s.recordAudit(ctx, "po.pay", order.ID, nil)
	return order, nil
}

// List returns the order book, newest first.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) recordAudit(ctx context.Context, action, orderID string, meta map[string]any) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{Action: action, Entity: "purchase_order", EntityID: orderID, Meta: meta, At: s.now()})
}

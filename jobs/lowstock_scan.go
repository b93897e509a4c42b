package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/inventory"
)

// LowStockScanner sweeps the inventory and reports items at or below
// their reorder point.
type LowStockScanner struct {
	service *inventory.Service
	logger  *slog.Logger
}

func NewLowStockScanner(service *inventory.Service, logger *slog.Logger) *LowStockScanner {
	return &LowStockScanner{service: service, logger: logger}
}

// Handle processes TaskLowStockScan tasks.
func (s *LowStockScanner) Handle(ctx context.Context, t *asynq.Task) error {
	var payload ScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	items, err := s.service.LowStock(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		s.logger.Info("low stock scan clean", slog.String("job", "lowstock_scan"))
		return nil
	}
	for _, item := range items {
		s.logger.Warn("item below reorder point",
			slog.String("job", "lowstock_scan"),
			slog.String("item", item.ID),
			slog.String("name", item.Name),
			slog.Int64("stock", item.Stock),
			slog.Int64("reorder_point", item.ReorderPoint))
	}
	return nil
}

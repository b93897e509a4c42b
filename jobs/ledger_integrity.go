package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/ledger"
)

// IntegrityChecker re-verifies that every posted entry's legs still sum
// to a balanced total.
type IntegrityChecker struct {
	service *ledger.Service
	logger  *slog.Logger
}

func NewIntegrityChecker(service *ledger.Service, logger *slog.Logger) *IntegrityChecker {
	return &IntegrityChecker{service: service, logger: logger}
}

// Handle processes TaskLedgerIntegrity tasks.
func (c *IntegrityChecker) Handle(ctx context.Context, t *asynq.Task) error {
	var payload ScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	txs, err := c.service.Transactions(ctx)
	if err != nil {
		return err
	}
	tolerance := decimal.NewFromInt(1)
	checked, flagged := 0, 0
	for _, tx := range txs {
		postings, err := c.service.Postings(ctx, tx.ID)
		if err != nil {
			return err
		}
		if len(postings) == 0 {
			// Seeded rows predate per-line postings.
			continue
		}
		debit, credit := decimal.Zero, decimal.Zero
		for _, p := range postings {
			debit = debit.Add(p.Debit)
			credit = credit.Add(p.Credit)
		}
		checked++
		if debit.Sub(credit).Abs().GreaterThanOrEqual(tolerance) {
			flagged++
			c.logger.Error("posted entry out of balance",
				slog.String("job", "ledger_integrity"),
				slog.String("entry", tx.ID),
				slog.String("debit", debit.String()),
				slog.String("credit", credit.String()))
		}
	}
	c.logger.Info("ledger integrity sweep finished",
		slog.String("job", "ledger_integrity"),
		slog.Int("checked", checked),
		slog.Int("flagged", flagged))
	return nil
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/app"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/inventory"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/ledger"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/masterdata/accounts"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/platform/db"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
	"github.com/the-anuneanu/UNINUS-Management-System/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	var (
		ledgerRepo    ledger.Repository
		inventoryRepo inventory.Repository
		accountRepo   accounts.Repository
		auditor       shared.AuditRecorder
	)
	if cfg.PGDSN != "" {
		pool, err := db.New(ctx, cfg.PGDSN)
		if err != nil {
			logger.Error("connect postgres", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		ledgerRepo = ledger.NewRepository(pool)
		inventoryRepo = inventory.NewRepository(pool)
		accountRepo = accounts.NewRepository(pool)
		auditor = shared.NewAuditLogger(pool)
	} else {
		logger.Info("no PG_DSN configured, sweeping in-memory demo seed data (not live state)")
		ledgerRepo = ledger.NewMemoryRepository(ledger.Seed())
		inventoryRepo = inventory.NewMemoryRepository(inventory.Seed())
		accountRepo = accounts.NewMemoryRepository(accounts.DefaultChart())
		auditor = shared.NewSlogAuditor(logger)
	}

	// Counters are rebuilt from the persisted rows, never from seed sizes.
	txRows, err := ledgerRepo.ListTransactions(ctx)
	if err != nil {
		logger.Error("load transactions", slog.Any("error", err))
		os.Exit(1)
	}
	txIDs := make([]string, len(txRows))
	for i, tx := range txRows {
		txIDs[i] = tx.ID
	}
	itemRows, err := inventoryRepo.List(ctx)
	if err != nil {
		logger.Error("load inventory", slog.Any("error", err))
		os.Exit(1)
	}
	itemIDs := make([]string, len(itemRows))
	for i, item := range itemRows {
		itemIDs[i] = item.ID
	}

	accountService := accounts.NewService(accountRepo)
	ledgerService := ledger.NewService(ledgerRepo, accountService, shared.SuffixSequence(txIDs...), auditor, logger)
	inventoryService := inventory.NewService(inventoryRepo, shared.SuffixSequence(itemIDs...), auditor, logger)

	stockScanner := jobs.NewLowStockScanner(inventoryService, logger)
	integrity := jobs.NewIntegrityChecker(ledgerService, logger)

	stockTask, err := jobs.NewLowStockScanTask(time.Now())
	if err != nil {
		logger.Error("build low stock task", slog.Any("error", err))
		os.Exit(1)
	}
	integrityTask, err := jobs.NewLedgerIntegrityTask(time.Now())
	if err != nil {
		logger.Error("build integrity task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskLowStockScan, Handler: stockScanner.Handle},
			{Type: jobs.TaskLedgerIntegrity, Handler: integrity.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.LowStockCron, Task: stockTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: cfg.IntegrityCron, Task: integrityTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("configure worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("worker starting", slog.String("redis", cfg.RedisAddr))
	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

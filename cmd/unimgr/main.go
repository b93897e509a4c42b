package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/genai"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/analytics"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/app"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/assistant"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/inventory"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/ledger"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/masterdata"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/masterdata/accounts"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/masterdata/costcenters"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/masterdata/suppliers"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/masterdata/taxes"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/platform/cache"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/platform/db"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/procurement"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

type stores struct {
	accounts    accounts.Repository
	costCenters costcenters.Repository
	taxes       taxes.Repository
	suppliers   suppliers.Repository
	ledger      ledger.Repository
	inventory   inventory.Repository
	procurement procurement.Repository
	audit       shared.AuditRecorder
}

func sequenceOf[T any](rows []T, id func(T) string) *shared.Sequence {
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = id(row)
	}
	return shared.SuffixSequence(ids...)
}

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
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

	var st stores
	if cfg.PGDSN != "" {
		pool, err := db.New(ctx, cfg.PGDSN)
		if err != nil {
			logger.Error("connect postgres", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		st = stores{
			accounts:    accounts.NewRepository(pool),
			costCenters: costcenters.NewRepository(pool),
			taxes:       taxes.NewRepository(pool),
			suppliers:   suppliers.NewRepository(pool),
			ledger:      ledger.NewRepository(pool),
			inventory:   inventory.NewRepository(pool),
			procurement: procurement.NewRepository(pool),
			audit:       shared.NewAuditLogger(pool),
		}
	} else {
		logger.Info("no PG_DSN configured, running on seeded in-memory stores")
		st = stores{
			accounts:    accounts.NewMemoryRepository(accounts.DefaultChart()),
			costCenters: costcenters.NewMemoryRepository(costcenters.Defaults()),
			taxes:       taxes.NewMemoryRepository(taxes.Defaults()),
			suppliers:   suppliers.NewMemoryRepository(suppliers.Seed()),
			ledger:      ledger.NewMemoryRepository(ledger.Seed()),
			inventory:   inventory.NewMemoryRepository(inventory.Seed()),
			procurement: procurement.NewMemoryRepository(procurement.Seed()),
			audit:       shared.NewSlogAuditor(logger),
		}
	}

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, analytics cache disabled", slog.Any("error", err))
		redisClient = nil
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
	}
	analyticsCache := analytics.NewCache(redisClient, cfg.AnalyticsTTL)
	auditor := analytics.NewAuditBumper(st.audit, analyticsCache, logger)

	// Id counters are floored at the highest suffix already persisted, so
	// a restart against a populated store never reissues an existing id.
	supplierRows, err := st.suppliers.List(ctx)
	if err != nil {
		logger.Error("load suppliers", slog.Any("error", err))
		os.Exit(1)
	}
	txRows, err := st.ledger.ListTransactions(ctx)
	if err != nil {
		logger.Error("load transactions", slog.Any("error", err))
		os.Exit(1)
	}
	itemRows, err := st.inventory.List(ctx)
	if err != nil {
		logger.Error("load inventory", slog.Any("error", err))
		os.Exit(1)
	}
	orderRows, err := st.procurement.List(ctx)
	if err != nil {
		logger.Error("load orders", slog.Any("error", err))
		os.Exit(1)
	}

	accountsService := accounts.NewService(st.accounts)
	costCenterService := costcenters.NewService(st.costCenters)
	taxService := taxes.NewService(st.taxes)
	supplierService := suppliers.NewService(st.suppliers, sequenceOf(supplierRows, func(s suppliers.Supplier) string { return s.ID }))

	ledgerService := ledger.NewService(st.ledger, accountsService, sequenceOf(txRows, func(tx ledger.Transaction) string { return tx.ID }), auditor, logger)
	inventoryService := inventory.NewService(st.inventory, sequenceOf(itemRows, func(i inventory.Item) string { return i.ID }), auditor, logger)
	procurementService := procurement.NewService(st.procurement, inventoryService, supplierService, sequenceOf(orderRows, func(o procurement.Order) string { return o.ID }), auditor, logger)
	analyticsService := analytics.NewService(ledgerService, procurementService, inventoryService, analyticsCache)

	var genaiClient *genai.Client
	if cfg.GeminiAPIKey != "" {
		genaiClient, err = genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.GeminiAPIKey, Backend: genai.BackendGeminiAPI})
		if err != nil {
			logger.Warn("gemini client unavailable", slog.Any("error", err))
		}
	}
	assistantService := assistant.NewService(genaiClient, cfg.GeminiModel, assistant.DataSources{
		Transactions: ledgerService.Transactions,
		Orders:       procurementService.List,
		Items:        inventoryService.List,
	}, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:             logger,
		Config:             cfg,
		LedgerHandler:      ledger.NewHandler(logger, ledgerService),
		ProcurementHandler: procurement.NewHandler(logger, procurementService),
		InventoryHandler:   inventory.NewHandler(logger, inventoryService),
		MasterDataHandler:  masterdata.NewHandler(logger, accountsService, costCenterService, taxService, supplierService),
		AnalyticsHandler:   analytics.NewHandler(logger, analyticsService),
		AssistantHandler:   assistant.NewHandler(logger, assistantService),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/analytics"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/assistant"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/inventory"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/ledger"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/masterdata"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/procurement"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger             *slog.Logger
	Config             *Config
	LedgerHandler      *ledger.Handler
	ProcurementHandler *procurement.Handler
	InventoryHandler   *inventory.Handler
	MasterDataHandler  *masterdata.Handler
	AnalyticsHandler   *analytics.Handler
	AssistantHandler   *assistant.Handler
}

// NewRouter constructs the chi.Router with the dashboard defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(api chi.Router) {
		params.LedgerHandler.MountRoutes(api)
		params.ProcurementHandler.MountRoutes(api)
		params.InventoryHandler.MountRoutes(api)
		params.MasterDataHandler.MountRoutes(api)
		params.AnalyticsHandler.MountRoutes(api)
		params.AssistantHandler.MountRoutes(api)
	})

	return r
}

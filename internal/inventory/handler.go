package inventory

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/platform/httpx"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

// Handler serves inventory endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers inventory routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/inventory", h.list)
	r.Post("/inventory", h.register)
	r.Get("/inventory/low-stock", h.lowStock)
	r.Get("/inventory/value", h.totalValue)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list inventory", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

type registerItemRequest struct {
	Name         string          `json:"name" validate:"required"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category" validate:"omitempty,oneof=Consumable Asset IT Furniture"`
	Stock        int64           `json:"stock" validate:"gte=0"`
	Unit         string          `json:"unit"`
	ReorderPoint *int64          `json:"reorderPoint" validate:"omitempty,gte=0"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Location     string          `json:"location"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	item, err := h.service.Register(r.Context(), RegisterInput{
		Name:         req.Name,
		SKU:          req.SKU,
		Category:     Category(req.Category),
		Stock:        req.Stock,
		Unit:         req.Unit,
		ReorderPoint: req.ReorderPoint,
		UnitPrice:    req.UnitPrice,
		Location:     req.Location,
	})
	if err != nil {
		if !errors.Is(err, shared.ErrMissingRequiredField) {
			h.logger.Error("register item", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.LowStock(r.Context())
	if err != nil {
		h.logger.Error("low stock report", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []Item{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) totalValue(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.TotalValue(r.Context())
	if err != nil {
		h.logger.Error("inventory valuation", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"totalValue": total,
		"display":    shared.FormatIDR(total),
	})
}

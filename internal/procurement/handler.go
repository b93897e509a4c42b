package procurement

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/platform/httpx"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

// Handler serves purchase-order endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers procurement routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/orders", h.list)
	r.Post("/orders", h.create)
	r.Post("/orders/{id}/receive", h.receive)
	r.Post("/orders/{id}/pay", h.pay)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list orders", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, orders)
}

type createOrderRequest struct {
	SupplierID string `json:"supplierId" validate:"required"`
	ItemID     string `json:"itemId" validate:"required"`
	Quantity   int64  `json:"quantity" validate:"gt=0"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	order, err := h.service.Create(r.Context(), CreateInput{
		SupplierID: req.SupplierID,
		ItemID:     req.ItemID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		h.respondOrderError(w, "create order", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, order)
}

func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Receive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondOrderError(w, "receive order", err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.MarkPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondOrderError(w, "pay order", err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func (h *Handler) respondOrderError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalidState):
		httpx.Problem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, ErrInvalidQuantity):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Unprocessable Entity", err.Error())
	case errors.Is(err, shared.ErrMissingSelection), errors.Is(err, shared.ErrNotFound):
		httpx.RespondError(w, err)
	default:
		h.logger.Error(op, slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}

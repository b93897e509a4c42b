// Package masterdata exposes the reference-data HTTP surface: chart of
// accounts, cost centers, tax rules, and the supplier directory.
package masterdata

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/masterdata/accounts"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/masterdata/costcenters"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/masterdata/suppliers"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/masterdata/taxes"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/platform/httpx"
	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

// Handler serves reference-data endpoints.
type Handler struct {
	logger      *slog.Logger
	accounts    *accounts.Service
	costCenters *costcenters.Service
	taxes       *taxes.Service
	suppliers   *suppliers.Service
}

func NewHandler(logger *slog.Logger, acc *accounts.Service, cc *costcenters.Service, tax *taxes.Service, sup *suppliers.Service) *Handler {
	return &Handler{logger: logger, accounts: acc, costCenters: cc, taxes: tax, suppliers: sup}
}

// MountRoutes registers the reference-data routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/accounts", h.listAccounts)
	r.Get("/cost-centers", h.listCostCenters)
	r.Get("/tax-rules", h.listTaxRules)
	r.Get("/suppliers", h.listSuppliers)
	r.Post("/suppliers", h.registerSupplier)
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	out, err := h.accounts.List(r.Context())
	if err != nil {
		h.logger.Error("list accounts", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) listCostCenters(w http.ResponseWriter, r *http.Request) {
	out, err := h.costCenters.List(r.Context())
	if err != nil {
		h.logger.Error("list cost centers", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) listTaxRules(w http.ResponseWriter, r *http.Request) {
	out, err := h.taxes.List(r.Context())
	if err != nil {
		h.logger.Error("list tax rules", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	out, err := h.suppliers.List(r.Context())
	if err != nil {
		h.logger.Error("list suppliers", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

type registerSupplierRequest struct {
	Name     string `json:"name" validate:"required"`
	Contact  string `json:"contact"`
	Email    string `json:"email" validate:"omitempty,email"`
	Category string `json:"category"`
}

func (h *Handler) registerSupplier(w http.ResponseWriter, r *http.Request) {
	var req registerSupplierRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	sup, err := h.suppliers.Register(r.Context(), suppliers.RegisterInput{
		Name:     req.Name,
		Contact:  req.Contact,
		Email:    req.Email,
		Category: req.Category,
	})
	if err != nil {
		if !errors.Is(err, shared.ErrMissingRequiredField) {
			h.logger.Error("register supplier", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sup)
}

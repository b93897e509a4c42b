package assistant

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/platform/httpx"
)

// Handler serves the assistant endpoint.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers assistant routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/assistant/ask", h.ask)
}

type askRequest struct {
	Question string `json:"question" validate:"required"`
}

func (h *Handler) ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	answer, err := h.service.Ask(r.Context(), req.Question)
	if err != nil {
		h.logger.Error("assistant ask", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"answer": answer})
}

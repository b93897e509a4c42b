package ledger

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/platform/httpx"
)

// Handler serves the journal/transaction endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers ledger routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/journal", h.postJournal)
	r.Get("/transactions", h.listTransactions)
	r.Get("/journal/{ref}/postings", h.listPostings)
}

type journalLineRequest struct {
	AccountCode string          `json:"accountCode"`
	Description string          `json:"description"`
	CostCenter  string          `json:"costCenter"`
	TaxCode     string          `json:"taxCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

type postJournalRequest struct {
	Ref   string               `json:"ref"`
	Date  string               `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Lines []journalLineRequest `json:"lines" validate:"required,min=1"`
}

func (h *Handler) postJournal(w http.ResponseWriter, r *http.Request) {
	var req postJournalRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	var date time.Time
	if req.Date != "" {
		date, _ = time.Parse("2006-01-02", req.Date)
	}
	lines := make([]Line, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, Line{
			AccountCode: l.AccountCode,
			Description: l.Description,
			CostCenter:  l.CostCenter,
			TaxCode:     l.TaxCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}
	entry := NewEntryWith(req.Ref, date, lines)

	tx, err := h.service.Post(r.Context(), entry)
	if err != nil {
		h.respondPostError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, tx)
}

func (h *Handler) respondPostError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnbalanced):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Unbalanced", "journal entry is not balanced")
	case errors.Is(err, ErrZeroAmount):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Zero Amount", "journal entry has nothing to post")
	case errors.Is(err, ErrLineConflict),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrMissingAccount),
		errors.Is(err, ErrUnknownAccount):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Invalid Line", err.Error())
	default:
		h.logger.Error("post journal", slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.service.Transactions(r.Context())
	if err != nil {
		h.logger.Error("list transactions", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, txs)
}

func (h *Handler) listPostings(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	postings, err := h.service.Postings(r.Context(), ref)
	if err != nil {
		h.logger.Error("list postings", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if postings == nil {
		postings = []Posting{}
	}
	httpx.JSON(w, http.StatusOK, postings)
}

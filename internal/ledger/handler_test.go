package ledger

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	svc := newTestService(NewMemoryRepository(Seed()))
	h := NewHandler(slog.Default(), svc)
	r := chi.NewRouter()
	h.MountRoutes(r)
	return r
}

func TestPostJournalEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{
		"date": "2023-10-27",
		"lines": [
			{"accountCode": "5100", "description": "Honorarium Dosen Tamu", "costCenter": "CC-100", "debit": "500000"},
			{"accountCode": "1001", "credit": "500000"}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/journal", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), `"Honorarium Dosen Tamu"`)
	require.Contains(t, rec.Body.String(), `"Posted"`)

	req = httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"JE-2023-0001"`)
}

func TestPostJournalEndpointRejectsUnbalanced(t *testing.T) {
	router := newTestRouter()

	body := `{
		"lines": [
			{"accountCode": "5100", "debit": "500000"},
			{"accountCode": "1001", "credit": "100000"}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/journal", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "Unbalanced")
}

func TestPostJournalEndpointRejectsMalformedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/journal", strings.NewReader(`{"lines": [`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/journal", strings.NewReader(`{"lines": []}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code, "at least one line is required")
}

func TestListPostingsEndpointReturnsEmptyArray(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/journal/JE-2023-10-001/postings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]\n", rec.Body.String())
}

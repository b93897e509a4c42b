package httpx

import (
	"errors"
	"net/http"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

// Sentinel errors for the transport layer.
var (
	ErrMalformedBody = errors.New("malformed request body")
	ErrValidation    = errors.New("validation failed")
)

// RespondError maps domain errors to HTTP responses using RFC7807.
// Handlers map their own domain sentinels first; this covers the shared
// taxonomy and the transport-level failures.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, shared.ErrMissingSelection),
		errors.Is(err, shared.ErrMissingRequiredField),
		errors.Is(err, ErrValidation),
		errors.Is(err, ErrMalformedBody):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Biagem01/Orizon/internal/domain"
)

// envelope is the uniform JSON wrapper: success payloads carry "data" plus
// endpoint-specific metadata, errors carry "error" and "message".
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, category, message string) {
	writeJSON(w, status, envelope{"error": category, "message": message})
}

// writeDomainError maps the error taxonomy to a status and category. Store
// failures are logged with full driver detail and surfaced with a generic
// message only.
func writeDomainError(w http.ResponseWriter, err error) {
	var verr domain.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, "Bad Request", verr.Msg)
		return
	}
	var nferr domain.NotFoundError
	if errors.As(err, &nferr) {
		writeError(w, http.StatusNotFound, "Not Found", nferr.Msg)
		return
	}
	var cerr domain.ConflictError
	if errors.As(err, &cerr) {
		writeError(w, http.StatusConflict, "Conflict", cerr.Msg)
		return
	}
	var serr domain.StoreError
	if errors.As(err, &serr) {
		log.Error().Err(serr.Err).Str("msg", serr.Msg).Msg("store error")
		writeError(w, http.StatusInternalServerError, "Database Error", serr.Msg)
		return
	}
	log.Error().Err(err).Msg("unhandled error")
	writeError(w, http.StatusInternalServerError, "Internal Server Error",
		"An unexpected error occurred while processing your request")
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hyunjk/bookreview/internal/logger"
)

// ErrorResponse is the envelope for every rejected request: a stable
// machine-readable code plus a short human-readable message. Internal
// detail never leaks past this boundary.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	OK bool `json:"ok"`

	// Machine-readable error code
	// default: validation_error
	Error string `json:"error"`

	// Human-readable message
	// default: username and password are required
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{OK: false, Error: code, Message: message})
}

// writeInternalError logs the cause and returns a generic 500.
func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

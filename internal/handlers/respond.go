package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/emberhollow/revenant/pkg/chat"
)

// writeJSON encodes a response body. Encoding failures are logged, not
// surfaced; headers are already gone by then.
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError sends the uniform error body.
func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	writeJSON(w, logger, status, chat.ErrorResponse{Error: msg})
}

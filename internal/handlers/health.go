package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/emberhollow/revenant/internal/services"
	"github.com/emberhollow/revenant/internal/storage"
)

type HealthResponse struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Service    string            `json:"service"`
	Components map[string]string `json:"components"`
}

type HealthHandler struct {
	store    storage.Storage
	narrator services.Narrator
	logger   *slog.Logger
}

func NewHealthHandler(store storage.Storage, narrator services.Narrator, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:    store,
		narrator: narrator,
		logger:   logger,
	}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	components := make(map[string]string)
	status := "healthy"

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Storage health check failed", "error", err)
		components["storage"] = "unhealthy"
		status = "degraded"
	} else {
		components["storage"] = "healthy"
	}
	components["narrator"] = h.narrator.Name()

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, h.logger, code, HealthResponse{
		Status:     status,
		Timestamp:  time.Now(),
		Service:    "revenant",
		Components: components,
	})
}

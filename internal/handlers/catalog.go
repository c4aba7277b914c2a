package handlers

import (
	"log/slog"
	"net/http"

	"github.com/emberhollow/revenant/pkg/game"
)

// CatalogHandler serves the static world catalogs.
//
// Routes:
//
//	GET /v1/classes - the playable class roster
//	GET /v1/zones   - the world map, safest zone first
type CatalogHandler struct {
	logger *slog.Logger
}

func NewCatalogHandler(logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{logger: logger}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only GET is supported.")
		return
	}

	switch r.URL.Path {
	case "/v1/classes":
		writeJSON(w, h.logger, http.StatusOK, game.Classes)
	case "/v1/zones":
		zones := make([]game.Zone, 0, len(game.ZoneIDs))
		for _, id := range game.ZoneIDs {
			zones = append(zones, game.Zones[id])
		}
		writeJSON(w, h.logger, http.StatusOK, zones)
	default:
		writeError(w, h.logger, http.StatusNotFound, "Unknown catalog")
	}
}

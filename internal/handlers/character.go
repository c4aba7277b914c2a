package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/emberhollow/revenant/internal/engine"
	"github.com/emberhollow/revenant/internal/storage"
	"github.com/emberhollow/revenant/pkg/chat"
	"github.com/emberhollow/revenant/pkg/game"
)

const defaultMessageLimit = 20

// CharacterResponse is the read view of a character: the persisted
// snapshot plus its derived conditions.
type CharacterResponse struct {
	Snapshot *game.Snapshot      `json:"snapshot"`
	Statuses []game.StatusEffect `json:"statuses"`
}

// CharacterHandler serves everything under /v1/characters.
//
// Routes:
//
//	POST   /v1/characters                - create a character
//	GET    /v1/characters?user_id={uid}  - look up a user's character
//	GET    /v1/characters/{id}           - read a character
//	DELETE /v1/characters/{id}           - delete a character
//	POST   /v1/characters/{id}/action    - play one narrated turn
//	POST   /v1/characters/{id}/rest      - rest in the current zone
//	POST   /v1/characters/{id}/stats     - spend banked stat points
//	GET    /v1/characters/{id}/journal   - read the journal
//	GET    /v1/characters/{id}/messages  - read recent story messages
type CharacterHandler struct {
	engine *engine.Engine
	store  storage.Storage
	logger *slog.Logger
}

func NewCharacterHandler(eng *engine.Engine, store storage.Storage, logger *slog.Logger) *CharacterHandler {
	return &CharacterHandler{
		engine: eng,
		store:  store,
		logger: logger,
	}
}

func (h *CharacterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/characters"), "/")
	if path == "" {
		switch r.Method {
		case http.MethodPost:
			h.handleCreate(w, r)
		case http.MethodGet:
			h.handleLookup(w, r)
		default:
			writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST, GET")
		}
		return
	}

	parts := strings.SplitN(path, "/", 2)
	id, err := uuid.Parse(parts[0])
	if err != nil {
		h.logger.Warn("Invalid character ID", "id", parts[0], "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid character ID format")
		return
	}

	sub := ""
	if len(parts) == 2 {
		sub = parts[1]
	}

	switch {
	case sub == "" && r.Method == http.MethodGet:
		h.handleRead(w, r, id)
	case sub == "" && r.Method == http.MethodDelete:
		h.handleDelete(w, r, id)
	case sub == "action" && r.Method == http.MethodPost:
		h.handleAction(w, r, id)
	case sub == "rest" && r.Method == http.MethodPost:
		h.handleRest(w, r, id)
	case sub == "stats" && r.Method == http.MethodPost:
		h.handleStats(w, r, id)
	case sub == "journal" && r.Method == http.MethodGet:
		h.handleJournal(w, r, id)
	case sub == "messages" && r.Method == http.MethodGet:
		h.handleMessages(w, r, id)
	default:
		writeError(w, h.logger, http.StatusNotFound, "Unknown character endpoint")
	}
}

func (h *CharacterHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req chat.CreateCharacterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body. Expected JSON with 'user_id', 'name' and 'class_id' fields.")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.engine.CreateCharacter(r.Context(), &req)
	switch {
	case errors.Is(err, engine.ErrUnknownClass):
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrCharacterExists):
		writeError(w, h.logger, http.StatusConflict, "User already has a character. Delete it to start over.")
	case err != nil:
		h.logger.Error("Failed to create character", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to create character")
	default:
		h.logger.Info("Character created",
			"character_id", res.Snapshot.Character.ID,
			"user_id", req.UserID,
			"class", req.ClassID)
		writeJSON(w, h.logger, http.StatusCreated, res)
	}
}

func (h *CharacterHandler) handleLookup(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Query parameter 'user_id' is required")
		return
	}

	id, err := h.store.GetCharacterIDForUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to look up character", "error", err, "user_id", userID)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to look up character")
		return
	}
	if id == uuid.Nil {
		writeError(w, h.logger, http.StatusNotFound, "User has no character")
		return
	}
	h.handleRead(w, r, id)
}

func (h *CharacterHandler) handleRead(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	snap, err := h.store.GetSnapshot(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load character", "error", err, "character_id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load character")
		return
	}
	if snap == nil {
		writeError(w, h.logger, http.StatusNotFound, "Character not found")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, CharacterResponse{
		Snapshot: snap,
		Statuses: game.DeriveStatusEffects(snap.Character),
	})
}

func (h *CharacterHandler) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.store.DeleteCharacter(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete character", "error", err, "character_id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete character")
		return
	}
	h.logger.Info("Character deleted", "character_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *CharacterHandler) handleAction(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req chat.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body. Expected JSON with 'action' field.")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.engine.ProcessAction(r.Context(), id, &req)
	switch {
	case errors.Is(err, engine.ErrCharacterNotFound):
		writeError(w, h.logger, http.StatusNotFound, "Character not found")
	case errors.Is(err, engine.ErrExhausted):
		writeError(w, h.logger, http.StatusBadRequest, "Not enough stamina. Rest or take a free action.")
	case err != nil:
		h.logger.Error("Failed to process action", "error", err, "character_id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to process action")
	default:
		writeJSON(w, h.logger, http.StatusOK, res)
	}
}

func (h *CharacterHandler) handleRest(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	res, err := h.engine.Rest(r.Context(), id)
	switch {
	case errors.Is(err, engine.ErrCharacterNotFound):
		writeError(w, h.logger, http.StatusNotFound, "Character not found")
	case err != nil:
		h.logger.Error("Failed to rest", "error", err, "character_id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to rest")
	default:
		writeJSON(w, h.logger, http.StatusOK, res)
	}
}

func (h *CharacterHandler) handleStats(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req chat.AllocateStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body. Expected JSON with 'allocations' field.")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := h.engine.AllocateStats(r.Context(), id, req.Allocations)
	switch {
	case errors.Is(err, engine.ErrCharacterNotFound):
		writeError(w, h.logger, http.StatusNotFound, "Character not found")
	case err != nil:
		// Overspends and unknown skills come back as plain errors.
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
	default:
		writeJSON(w, h.logger, http.StatusOK, CharacterResponse{
			Snapshot: snap,
			Statuses: game.DeriveStatusEffects(snap.Character),
		})
	}
}

func (h *CharacterHandler) handleJournal(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	entries, err := h.store.GetJournal(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load journal", "error", err, "character_id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load journal")
		return
	}
	if entries == nil {
		entries = []game.JournalEntry{}
	}
	writeJSON(w, h.logger, http.StatusOK, entries)
}

func (h *CharacterHandler) handleMessages(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	limit := defaultMessageLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, h.logger, http.StatusBadRequest, "Query parameter 'limit' must be a positive integer")
			return
		}
		limit = n
	}

	msgs, err := h.store.GetRecentMessages(r.Context(), id, limit)
	if err != nil {
		h.logger.Error("Failed to load messages", "error", err, "character_id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load messages")
		return
	}
	if msgs == nil {
		msgs = []chat.Message{}
	}
	writeJSON(w, h.logger, http.StatusOK, msgs)
}

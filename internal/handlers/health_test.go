package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberhollow/revenant/internal/services"
	"github.com/emberhollow/revenant/internal/storage"
)

func TestHealthHandler(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("healthy", func(t *testing.T) {
		h := NewHealthHandler(storage.NewMockStorage(), services.NewMockNarrator(), logger)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var res HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "healthy", res.Status)
		assert.Equal(t, "revenant", res.Service)
		assert.Equal(t, "healthy", res.Components["storage"])
	})

	t.Run("storage down", func(t *testing.T) {
		store := storage.NewMockStorage()
		store.PingFunc = func(ctx context.Context) error {
			return errors.New("connection refused")
		}
		h := NewHealthHandler(store, services.NewMockNarrator(), logger)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var res HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "degraded", res.Status)
		assert.Equal(t, "unhealthy", res.Components["storage"])
	})
}

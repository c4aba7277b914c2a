package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emberhollow/revenant/internal/config"
	"github.com/emberhollow/revenant/internal/engine"
	"github.com/emberhollow/revenant/internal/handlers"
	"github.com/emberhollow/revenant/internal/logger"
	"github.com/emberhollow/revenant/internal/middleware"
	"github.com/emberhollow/revenant/internal/services"
	"github.com/emberhollow/revenant/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Revenant API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"narrator_provider", cfg.Provider)

	var providers []services.Narrator
	if cfg.GroqAPIKey != "" {
		providers = append(providers, services.NewGroqService(cfg.GroqAPIKey, cfg.GroqModel))
	}
	if cfg.OpenRouterAPIKey != "" {
		providers = append(providers, services.NewOpenRouterService(cfg.OpenRouterAPIKey, cfg.OpenRouterModel))
	}
	if cfg.GeminiAPIKey != "" {
		providers = append(providers, services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel))
	}
	if len(providers) == 0 {
		log.Error("No narrator provider configured. Set GROQ_API_KEY, OPENROUTER_API_KEY or GEMINI_API_KEY.")
		os.Exit(1)
	}
	narrator := services.NewFallbackNarrator(providers, cfg.Provider, log)
	log.Info("Narrator providers configured", "count", len(providers), "preferred", cfg.Provider)

	store, err := storage.NewRedisStore(cfg.RedisURL, log)
	if err != nil {
		log.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()
	if err := store.WaitForConnection(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage connection established")

	eng := engine.New(store, narrator, log)

	mux := http.NewServeMux()
	mux.Handle("/health", handlers.NewHealthHandler(store, narrator, log))

	characterHandler := handlers.NewCharacterHandler(eng, store, log)
	mux.Handle("/v1/characters", characterHandler)
	mux.Handle("/v1/characters/", characterHandler)

	catalogHandler := handlers.NewCatalogHandler(log)
	mux.Handle("/v1/classes", catalogHandler)
	mux.Handle("/v1/zones", catalogHandler)

	handler := middleware.RequestLogger(log, mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}

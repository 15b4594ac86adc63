package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kellymillerdev/ai-bank/internal/api/handlers"
	"github.com/kellymillerdev/ai-bank/internal/api/middleware"
	"github.com/kellymillerdev/ai-bank/internal/category"
	"github.com/kellymillerdev/ai-bank/internal/config"
	"github.com/kellymillerdev/ai-bank/internal/ingest"
	"github.com/kellymillerdev/ai-bank/internal/jobs"
	"github.com/kellymillerdev/ai-bank/internal/jobs/inmemory"
	"github.com/kellymillerdev/ai-bank/internal/logger"
	"github.com/kellymillerdev/ai-bank/internal/store"
	"github.com/kellymillerdev/ai-bank/internal/suggest"
)

func main() {
	log := logger.New()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx := context.Background()

	// Core components.
	registry := category.NewRegistry()
	txStore := store.New()
	parser := ingest.NewParser(log)
	suggestSvc := suggest.NewService(
		suggest.NewGeminiCollaborator(cfg.GeminiModel),
		cfg.SuggestTimeout,
		log,
	)

	// Suggestion job infrastructure.
	jobStore := inmemory.NewStore()
	jobQueue := inmemory.NewQueue(cfg.JobQueueSize, cfg.JobWorkers, jobStore)

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	jobHandler := func(ctx context.Context, job *jobs.SuggestionJob) (map[string]string, error) {
		batch := txStore.All()
		log.Info().
			Str("job_id", job.JobID).
			Int("transactions", len(batch)).
			Msg("Processing suggestion job")
		return suggestSvc.SuggestUpdates(ctx, batch), nil
	}

	if err := jobQueue.Start(workerCtx, jobHandler); err != nil {
		log.Fatal().Err(err).Msg("Failed to start job workers")
	}

	// Handlers.
	financeHandler := handlers.NewFinanceHandler(parser, txStore, registry, log)
	suggestionsHandler := handlers.NewSuggestionsHandler(jobQueue, jobStore, log)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/finance/analyze", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			financeHandler.Analyze(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/finance/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			financeHandler.ListCategories(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/finance/transactions/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		categoryID := strings.TrimPrefix(r.URL.Path, "/api/finance/transactions/")
		if categoryID == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Category ID is required")
			return
		}
		financeHandler.CategoryDetail(w, r, categoryID)
	})

	mux.HandleFunc("/api/finance/suggestions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			suggestionsHandler.Enqueue(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/finance/suggestions/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		jobID := strings.TrimPrefix(r.URL.Path, "/api/finance/suggestions/")
		if jobID == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Job ID is required")
			return
		}
		suggestionsHandler.GetJob(w, r, jobID)
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	cancelWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	if err := jobQueue.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error stopping job queue")
	}

	log.Info().Msg("Server exited")
}

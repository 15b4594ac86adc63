// Package handlers implements the HTTP endpoints over the analysis core.
// The routing layer stays thin: it decodes the request, calls into the
// core packages and renders their results as JSON.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/kellymillerdev/ai-bank/internal/analyze"
	"github.com/kellymillerdev/ai-bank/internal/api/middleware"
	"github.com/kellymillerdev/ai-bank/internal/category"
	"github.com/kellymillerdev/ai-bank/internal/ingest"
	"github.com/kellymillerdev/ai-bank/internal/jobs"
	"github.com/kellymillerdev/ai-bank/internal/store"
)

// FinanceHandler handles statement analysis and category queries.
type FinanceHandler struct {
	parser   *ingest.Parser
	store    *store.Store
	registry *category.Registry
	log      zerolog.Logger
}

// NewFinanceHandler creates a new finance handler.
func NewFinanceHandler(parser *ingest.Parser, st *store.Store, registry *category.Registry, log zerolog.Logger) *FinanceHandler {
	return &FinanceHandler{
		parser:   parser,
		store:    st,
		registry: registry,
		log:      log,
	}
}

// Analyze handles POST /api/finance/analyze. It accepts the statement as
// a multipart upload (field "file") or as the raw request body, runs
// ingestion and analysis, and replaces the stored batch with the result.
func (h *FinanceHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	body, err := statementBody(r)
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer body.Close()

	txs, err := h.parser.Parse(body)
	if err != nil {
		if errors.Is(err, ingest.ErrBadFormat) {
			middleware.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("Statement ingestion failed")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to analyze statement")
		return
	}

	analysis := analyze.Analyze(txs)
	h.store.Replace(txs)

	h.log.Info().Int("transactions", len(txs)).Msg("Statement analyzed")

	middleware.WriteJSON(w, http.StatusOK, analysis)
}

// statementBody extracts the statement stream from the request.
func statementBody(r *http.Request) (io.ReadCloser, error) {
	if file, _, err := r.FormFile("file"); err == nil {
		return file, nil
	}
	if r.Body == nil || r.ContentLength == 0 {
		return nil, errors.New("empty request body")
	}
	return r.Body, nil
}

// ListCategories handles GET /api/finance/categories.
func (h *FinanceHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.registry.List()

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"count":      len(categories),
	})
}

// CategoryDetail handles GET /api/finance/transactions/{categoryId}. The
// registry gates the lookup: an unknown id is a 404 regardless of whether
// the store has data for it.
func (h *FinanceHandler) CategoryDetail(w http.ResponseWriter, r *http.Request, categoryID string) {
	cat, err := h.registry.Get(categoryID)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			middleware.WriteError(w, http.StatusNotFound, "Category with ID "+categoryID+" not found")
			return
		}
		h.log.Error().Err(err).Str("category_id", categoryID).Msg("Category lookup failed")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to load category")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"category":     cat,
		"transactions": h.store.ByCategory(categoryID),
		"summary":      h.store.Summary(categoryID),
	})
}

// SuggestionsHandler handles async suggestion jobs.
type SuggestionsHandler struct {
	publisher jobs.Publisher
	jobStore  jobs.JobStore
	log       zerolog.Logger
}

// NewSuggestionsHandler creates a new suggestions handler.
func NewSuggestionsHandler(publisher jobs.Publisher, jobStore jobs.JobStore, log zerolog.Logger) *SuggestionsHandler {
	return &SuggestionsHandler{
		publisher: publisher,
		jobStore:  jobStore,
		log:       log,
	}
}

// Enqueue handles POST /api/finance/suggestions. It queues a suggestion
// run over the current batch and returns immediately with the job id.
func (h *SuggestionsHandler) Enqueue(w http.ResponseWriter, r *http.Request) {
	job := &jobs.SuggestionJob{}

	if err := h.publisher.PublishSuggestion(r.Context(), job); err != nil {
		h.log.Error().Err(err).Msg("Failed to enqueue suggestion job")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to enqueue suggestion job")
		return
	}

	h.log.Info().Str("job_id", job.JobID).Msg("Suggestion job enqueued")

	middleware.WriteJSON(w, http.StatusAccepted, map[string]string{
		"job_id": job.JobID,
		"status": string(job.Status),
	})
}

// GetJob handles GET /api/finance/suggestions/{jobId}.
func (h *SuggestionsHandler) GetJob(w http.ResponseWriter, r *http.Request, jobID string) {
	job, err := h.jobStore.GetJob(r.Context(), jobID)
	if err != nil {
		middleware.WriteError(w, http.StatusNotFound, "Job not found")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, job)
}

// Package chi wires the string analyzer use cases onto a chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain"
	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain/filter"
	domrec "github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain/record"
	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/metrics"
	healthuc "github.com/izuchukwuMcGibson/HNG-stage-1/internal/usecase/health"
	stringsuc "github.com/izuchukwuMcGibson/HNG-stage-1/internal/usecase/strings"
)

// Error codes returned in the JSON error body.
const (
	codeBadRequest    = "bad_request"
	codeUnprocessable = "unprocessable"
	codeConflict      = "conflict"
	codeNotFound      = "not_found"
	codeInternalError = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the HTTP API.
type Server struct {
	strings       *stringsuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(strings *stringsuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		strings: strings,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeConflict),
		sentinelHandler(domain.ErrValueNotString, http.StatusUnprocessableEntity, codeUnprocessable),
		sentinelHandler(domain.ErrUnparseableQuery, http.StatusBadRequest, codeBadRequest),
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, codeBadRequest),
	}
	return s
}

// Register mounts all routes on the router. The static
// filter-by-natural-language route must be declared alongside the {value}
// wildcard; chi resolves the static segment first.
func (s *Server) Register(r chi.Router) {
	r.Post("/strings", s.CreateString)
	r.Get("/strings", s.ListStrings)
	r.Get("/strings/filter-by-natural-language", s.FilterByNaturalLanguage)
	r.Get("/strings/{value}", s.GetString)
	r.Delete("/strings/{value}", s.DeleteString)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// createRequest keeps value raw so a missing field and a wrong JSON type
// can be told apart (400 vs 422).
type createRequest struct {
	Value json.RawMessage `json:"value"`
}

// CreateString handles POST /strings.
func (s *Server) CreateString(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.Value) == 0 || string(req.Value) == "null" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Field \"value\" is required")
		return
	}

	var value string
	if err := json.Unmarshal(req.Value, &value); err != nil {
		s.handleDomainError(w, domain.ErrValueNotString)
		return
	}

	rec, err := s.strings.Create(r.Context(), value)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.RecordsInsertedTotal.Inc()
	writeJSON(w, http.StatusCreated, recordToResponse(rec))
}

// ListStrings handles GET /strings with optional structured filters.
func (s *Server) ListStrings(w http.ResponseWriter, r *http.Request) {
	set, err := filter.FromParams(r.URL.Query())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	recs, err := s.strings.List(r.Context(), set)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Data:           recordsToResponse(recs),
		Count:          len(recs),
		FiltersApplied: set.Echo(),
	})
}

// FilterByNaturalLanguage handles GET /strings/filter-by-natural-language.
func (s *Server) FilterByNaturalLanguage(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("query")
	if text == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Query parameter \"query\" is required")
		return
	}

	recs, parsed, err := s.strings.QueryNatural(r.Context(), text)
	if err != nil {
		if errors.Is(err, domain.ErrUnparseableQuery) {
			metrics.QueryParsesTotal.WithLabelValues("unparseable").Inc()
		}
		s.handleDomainError(w, err)
		return
	}

	metrics.QueryParsesTotal.WithLabelValues("parsed").Inc()
	writeJSON(w, http.StatusOK, naturalLanguageResponse{
		Data:  recordsToResponse(recs),
		Count: len(recs),
		InterpretedQuery: interpretedQuery{
			Original:      text,
			ParsedFilters: parsed.Filters.Echo(),
			MatchedCues:   parsed.Cues,
		},
	})
}

// GetString handles GET /strings/{value}; the value is hashed for lookup.
func (s *Server) GetString(w http.ResponseWriter, r *http.Request) {
	value, ok := s.pathValue(w, r)
	if !ok {
		return
	}

	rec, err := s.strings.GetByValue(r.Context(), value)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recordToResponse(rec))
}

// DeleteString handles DELETE /strings/{value}.
func (s *Server) DeleteString(w http.ResponseWriter, r *http.Request) {
	value, ok := s.pathValue(w, r)
	if !ok {
		return
	}

	if err := s.strings.DeleteByValue(r.Context(), value); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status:      string(report.Status),
		Backend:     report.Backend,
		RecordCount: report.RecordCount,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// pathValue extracts and unescapes the {value} route parameter.
func (s *Server) pathValue(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "value")
	value, err := url.PathUnescape(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid path value")
		return "", false
	}
	return value, true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// --- response shapes ---

type recordResponse struct {
	ID         string            `json:"id"`
	Value      string            `json:"value"`
	Properties domrec.Properties `json:"properties"`
	CreatedAt  time.Time         `json:"created_at"`
}

type listResponse struct {
	Data           []recordResponse `json:"data"`
	Count          int              `json:"count"`
	FiltersApplied map[string]any   `json:"filters_applied"`
}

type interpretedQuery struct {
	Original      string         `json:"original"`
	ParsedFilters map[string]any `json:"parsed_filters"`
	MatchedCues   []string       `json:"matched_cues,omitempty"`
}

type naturalLanguageResponse struct {
	Data             []recordResponse `json:"data"`
	Count            int              `json:"count"`
	InterpretedQuery interpretedQuery `json:"interpreted_query"`
}

type healthResponse struct {
	Status      string `json:"status"`
	Backend     string `json:"storage_backend"`
	RecordCount int    `json:"record_count"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func recordToResponse(rec domrec.Record) recordResponse {
	return recordResponse{
		ID:         rec.ID(),
		Value:      rec.Value(),
		Properties: rec.Properties(),
		CreatedAt:  rec.CreatedAt(),
	}
}

func recordsToResponse(recs []domrec.Record) []recordResponse {
	out := make([]recordResponse, len(recs))
	for i, rec := range recs {
		out[i] = recordToResponse(rec)
	}
	return out
}

// --- error plumbing ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrValueNotString,
		domain.ErrUnparseableQuery,
		domain.ErrValidation,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

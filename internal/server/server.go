// Package server exposes puzzle generation over HTTP.
//
// Routes:
//
//	POST /api/puzzles       generate a puzzle from a posted word bank
//	GET  /api/puzzles       list stored puzzles, newest first
//	GET  /api/puzzles/{id}  fetch one puzzle as JSON
//	GET  /puzzles/{id}      fetch one puzzle as a playable HTML page
//	GET  /healthz           liveness probe
//
// The server owns no generation state: each request runs the pipeline and
// stores the finished puzzle. Errors carry the structured code from
// pkg/errors in the JSON body.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/matzehuels/crossgen/pkg/errors"
	"github.com/matzehuels/crossgen/pkg/pipeline"
	"github.com/matzehuels/crossgen/pkg/puzzle"
	renderhtml "github.com/matzehuels/crossgen/pkg/render/html"
	"github.com/matzehuels/crossgen/pkg/store"
)

// Options configures the server.
type Options struct {
	// DefaultSize is the grid dimension used when a request omits one.
	DefaultSize int

	// GenerateLimit is the allowed number of generation requests per
	// minute per client IP. Zero disables rate limiting.
	GenerateLimit int
}

// Server is the HTTP server. It implements http.Handler.
type Server struct {
	router *chi.Mux
	store  store.Store
	logger *log.Logger
	opts   Options
}

// New creates a configured server backed by st.
func New(st store.Store, logger *log.Logger, opts Options) *Server {
	if opts.DefaultSize == 0 {
		opts.DefaultSize = pipeline.DefaultSize
	}
	s := &Server{
		router: chi.NewRouter(),
		store:  st,
		logger: logger,
		opts:   opts,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/puzzles", func(r chi.Router) {
		gen := r
		if s.opts.GenerateLimit > 0 {
			gen = r.With(rateLimit(s.opts.GenerateLimit))
		}
		gen.Post("/", s.handleGenerate)
		r.Get("/", s.handleList)
		r.Get("/{id}", s.handleGet)
	})

	s.router.Get("/puzzles/{id}", s.handlePage)
}

// generateRequest is the POST /api/puzzles body.
type generateRequest struct {
	Size       int            `json:"size,omitempty"`
	Seed       int64          `json:"seed,omitempty"`
	Shuffle    bool           `json:"shuffle,omitempty"`
	BestEffort bool           `json:"best_effort,omitempty"`
	Entries    []puzzle.Entry `json:"entries"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "malformed request body"))
		return
	}

	size := req.Size
	if size == 0 {
		size = s.opts.DefaultSize
	}
	if err := validateEntries(req.Entries); err != nil {
		s.writeError(w, err)
		return
	}

	p, err := pipeline.Generate(r.Context(), req.Entries, pipeline.Options{
		Size:       size,
		Seed:       req.Seed,
		Shuffle:    req.Shuffle,
		BestEffort: req.BestEffort,
		Logger:     s.logger,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.Save(r.Context(), p); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.lookup(w, r)
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	p, err := s.lookup(w, r)
	if err != nil {
		return
	}

	page, err := renderhtml.Render(p, renderhtml.Options{
		Solution: r.URL.Query().Get("solution") == "1",
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// lookup fetches the puzzle named in the URL, writing the error response
// itself on failure.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*puzzle.Puzzle, error) {
	id := chi.URLParam(r, "id")
	p, err := s.store.Get(r.Context(), id)
	if err == store.ErrNotFound {
		err = apperrors.New(apperrors.ErrCodePuzzleNotFound, "no puzzle with id %q", id)
		s.writeError(w, err)
		return nil, err
	}
	if err != nil {
		s.writeError(w, err)
		return nil, err
	}
	return p, nil
}

// validateEntries normalizes and checks the posted word bank, delegating
// the per-entry rules to pkg/errors.
func validateEntries(entries []puzzle.Entry) error {
	if len(entries) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidBank, "entries must not be empty")
	}
	for i, e := range entries {
		if err := apperrors.ValidateWord(e.Word); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidBank, err, "entry %d", i+1)
		}
		if err := apperrors.ValidateClue(e.Clue); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidBank, err, "entry %d", i+1)
		}
	}
	return nil
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string         `json:"error"`
	Code  apperrors.Code `json:"code,omitempty"`
}

// writeError maps a structured error to an HTTP status and JSON body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidBank,
		apperrors.ErrCodeInvalidWord, apperrors.ErrCodeInvalidSize:
		status = http.StatusBadRequest
	case apperrors.ErrCodePuzzleNotFound, apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodePlanningFailed:
		// The request was well-formed; the word list just does not fit.
		status = http.StatusUnprocessableEntity
	case apperrors.ErrCodeStoreUnavailable:
		status = http.StatusServiceUnavailable
	}

	if status >= 500 && s.logger != nil {
		s.logger.Errorf("request failed: %v", err)
	}
	writeJSON(w, status, errorResponse{Error: apperrors.UserMessage(err), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

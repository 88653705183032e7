// Package httpapi exposes exam controllers as a JSON API. Each session is
// an in-memory exam.Controller keyed by an opaque id; nothing survives a
// restart of the server. Sessions nobody touches for the idle timeout are
// closed by Run.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/edcenter/mocktest/internal/exam"
	"github.com/edcenter/mocktest/internal/question"
)

const (
	DefaultIdleTimeout = 2 * time.Hour
	DefaultMaxSessions = 1000
)

// ErrTooManySessions is returned when the registry is full.
var ErrTooManySessions = errors.New("too many live sessions")

// ControllerFactory builds the controller behind a new session.
type ControllerFactory func() *exam.Controller

type entry struct {
	controller *exam.Controller
	lastSeen   time.Time
}

// Server is the session registry and its HTTP handlers.
type Server struct {
	newController ControllerFactory
	logger        *slog.Logger
	idleTimeout   time.Duration
	maxSessions   int
	now           func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

// Option configures a Server.
type Option func(*Server)

// WithIdleTimeout sets how long a session may go without a request before
// it is closed. Zero or less disables reaping.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Server) { s.idleTimeout = d }
}

// WithMaxSessions caps the number of live sessions. Zero or less means no cap.
func WithMaxSessions(n int) Option {
	return func(s *Server) { s.maxSessions = n }
}

func withClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New returns a Server that creates controllers with factory.
func New(factory ControllerFactory, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		newController: factory,
		logger:        logger,
		idleTimeout:   DefaultIdleTimeout,
		maxSessions:   DefaultMaxSessions,
		now:           time.Now,
		sessions:      make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the router with request logging and panic recovery.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	s.Routes(r)
	return r
}

// Routes registers all HTTP routes.
func (s *Server) Routes(r chi.Router) {
	r.Post("/sessions", s.handleCreate)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Get("/", s.handleGet)
		r.Delete("/", s.handleDelete)
		r.Post("/start", s.handleStart)
		r.Post("/answer", s.handleAnswer)
		r.Post("/review", s.handleReview)
		r.Post("/navigate", s.handleNavigate)
		r.Post("/advance", s.command((*exam.Controller).Advance))
		r.Post("/back", s.command((*exam.Controller).Back))
		r.Post("/finish", s.command((*exam.Controller).FinishNow))
		r.Post("/restart", s.command((*exam.Controller).Restart))
	})
}

// Close stops every session controller.
func (s *Server) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*entry)
	s.mu.Unlock()

	for _, e := range sessions {
		e.controller.Close()
	}
}

// Run reaps idle sessions until ctx is done. It returns immediately when
// reaping is disabled.
func (s *Server) Run(ctx context.Context) {
	if s.idleTimeout <= 0 {
		return
	}
	ticker := time.NewTicker(max(s.idleTimeout/4, time.Second))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Reap()
		}
	}
}

// Reap closes sessions idle for longer than the idle timeout and returns
// how many were removed.
func (s *Server) Reap() int {
	if s.idleTimeout <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.idleTimeout)

	var idle []*exam.Controller
	s.mu.Lock()
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			idle = append(idle, e.controller)
			delete(s.sessions, id)
			s.logger.Info("session expired", "id", id, "last_seen", e.lastSeen)
		}
	}
	s.mu.Unlock()

	for _, c := range idle {
		c.Close()
	}
	return len(idle)
}

// Len returns the number of live sessions.
func (s *Server) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

type sessionResponse struct {
	ID string `json:"id"`
	exam.Snapshot
}

type startRequest struct {
	Subjects   []string `json:"subjects"`
	Count      int      `json:"count"`
	GradeLevel string   `json:"grade_level"`
	System     string   `json:"system"`
	Variant    string   `json:"variant"`
}

type answerRequest struct {
	QuestionID string `json:"question_id"`
	Index      *int   `json:"index"`
}

type reviewRequest struct {
	QuestionID string `json:"question_id"`
}

type navigateRequest struct {
	Index *int `json:"index"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if s.full() {
		s.Reap()
	}
	s.mu.Lock()
	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		s.mu.Unlock()
		writeError(w, http.StatusServiceUnavailable, ErrTooManySessions)
		return
	}
	id := uuid.NewString()
	c := s.newController()
	s.sessions[id] = &entry{controller: c, lastSeen: s.now()}
	s.mu.Unlock()

	s.logger.Info("session created", "id", id)
	writeJSON(w, http.StatusCreated, sessionResponse{ID: id, Snapshot: c.Snapshot()})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, c, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, Snapshot: c.Snapshot()})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("session %q not found", id))
		return
	}
	e.controller.Close()
	s.logger.Info("session deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if !decode(w, r, &req) {
		return
	}
	sys, err := question.ParseSystem(req.System)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	variant, err := question.ParseVariant(req.Variant)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	criteria := question.Criteria{
		Subjects:   req.Subjects,
		Count:      req.Count,
		GradeLevel: req.GradeLevel,
		System:     sys,
		Variant:    variant,
	}
	s.run(w, r, func(ctx context.Context, c *exam.Controller) error {
		return c.Start(ctx, criteria)
	})
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if !decode(w, r, &req) {
		return
	}
	if req.QuestionID == "" || req.Index == nil {
		writeError(w, http.StatusBadRequest, errors.New("question_id and index are required"))
		return
	}
	s.run(w, r, func(ctx context.Context, c *exam.Controller) error {
		return c.Answer(ctx, req.QuestionID, *req.Index)
	})
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !decode(w, r, &req) {
		return
	}
	if req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, errors.New("question_id is required"))
		return
	}
	s.run(w, r, func(ctx context.Context, c *exam.Controller) error {
		return c.ToggleReview(ctx, req.QuestionID)
	})
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Index == nil {
		writeError(w, http.StatusBadRequest, errors.New("index is required"))
		return
	}
	s.run(w, r, func(ctx context.Context, c *exam.Controller) error {
		return c.Navigate(ctx, *req.Index)
	})
}

// command adapts a bodiless controller method to a handler.
func (s *Server) command(fn func(*exam.Controller, context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.run(w, r, func(ctx context.Context, c *exam.Controller) error {
			return fn(c, ctx)
		})
	}
}

// run applies fn to the session's controller and writes the snapshot
// that follows it. Commands that do not apply in the current state are
// not errors; the snapshot shows they changed nothing.
func (s *Server) run(w http.ResponseWriter, r *http.Request, fn func(context.Context, *exam.Controller) error) {
	id, c, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if err := fn(r.Context(), c); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, Snapshot: c.Snapshot()})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (string, *exam.Controller, bool) {
	id := chi.URLParam(r, "sessionID")
	s.mu.Lock()
	e, ok := s.sessions[id]
	if ok {
		e.lastSeen = s.now()
	}
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("session %q not found", id))
		return id, nil, false
	}
	return id, e.controller, true
}

func (s *Server) full() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxSessions > 0 && len(s.sessions) >= s.maxSessions
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, exam.ErrNoSubjects), errors.Is(err, exam.ErrInvalidCount):
		return http.StatusBadRequest
	case errors.Is(err, exam.ErrClosed):
		return http.StatusGone
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

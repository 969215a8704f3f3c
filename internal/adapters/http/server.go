// Package http exposes the automation engine and its configuration store
// over a JSON REST API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/greenscreenhq/greenscreen/internal/logging"
	"github.com/greenscreenhq/greenscreen/pkg/domain"
	"github.com/greenscreenhq/greenscreen/pkg/ports"
	"github.com/greenscreenhq/greenscreen/pkg/session"
)

// Engine is the surface of the automation core the API needs.
type Engine interface {
	Run(ctx context.Context, def *domain.ScreenDefinition, inputs *domain.Inputs, sess ports.Session) (*domain.ExecutionResult, error)
	Validate(def *domain.ScreenDefinition, inputs *domain.Inputs) (bool, []string)
}

// SessionFactory opens a terminal session for one flow. The returned close
// function always runs after the flow, success or not.
type SessionFactory func(ctx context.Context) (ports.Session, func(), error)

// Config wires the server's collaborators.
type Config struct {
	Store    ports.ConfigStore
	Engine   Engine
	Sessions SessionFactory
	// Locks serializes flows that name the same terminal. Optional; when
	// nil a manager is created internally.
	Locks  *session.Manager
	Logger *slog.Logger
}

// Server implements the REST handlers.
type Server struct {
	store    ports.ConfigStore
	engine   Engine
	sessions SessionFactory
	locks    *session.Manager
	logger   *slog.Logger
}

// NewHandler builds the chi router for the API.
func NewHandler(cfg Config) http.Handler {
	s := &Server{
		store:    cfg.Store,
		engine:   cfg.Engine,
		sessions: cfg.Sessions,
		locks:    cfg.Locks,
		logger:   cfg.Logger,
	}
	if s.locks == nil {
		s.locks = session.NewManager()
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	r := chi.NewRouter()
	r.Get("/health", s.health)
	r.Route("/api/screens", func(r chi.Router) {
		r.Get("/", s.listScreens)
		r.Post("/", s.createScreen)
		r.Get("/{name}", s.getScreen)
		r.Delete("/{name}", s.deleteScreen)
		r.Post("/{name}/validate", s.validateScreen)
		r.Post("/{name}/process", s.processScreen)
	})
	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Service: "greenscreen"})
}

func (s *Server) listScreens(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "list screens", err)
		return
	}
	writeJSON(w, http.StatusOK, screenListResponse{Screens: names, Count: len(names)})
}

func (s *Server) createScreen(w http.ResponseWriter, r *http.Request) {
	var body screenPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if body.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "screen name is required"})
		return
	}
	if err := s.store.Save(r.Context(), payloadToDomain(body)); err != nil {
		s.fail(w, http.StatusInternalServerError, "save screen", err)
		return
	}
	writeJSON(w, http.StatusCreated, body)
}

func (s *Server) getScreen(w http.ResponseWriter, r *http.Request) {
	def, ok := s.loadScreen(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, domainToPayload(def))
}

func (s *Server) deleteScreen(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.fail(w, http.StatusInternalServerError, "delete screen", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) validateScreen(w http.ResponseWriter, r *http.Request) {
	def, ok := s.loadScreen(w, r)
	if !ok {
		return
	}
	var body validateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	valid, messages := s.engine.Validate(def, domain.InputsFromPairs(body.Inputs))
	writeJSON(w, http.StatusOK, validateResponse{Valid: valid, Messages: messages})
}

func (s *Server) processScreen(w http.ResponseWriter, r *http.Request) {
	def, ok := s.loadScreen(w, r)
	if !ok {
		return
	}
	if s.sessions == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: domain.ErrNoTransport.Error()})
		return
	}

	var body processRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	terminal := body.Terminal
	if terminal == "" {
		terminal = "default"
	}

	var result *domain.ExecutionResult
	err := s.locks.WithLock(r.Context(), terminal, func(ctx context.Context) error {
		sess, closeSession, err := s.sessions(ctx)
		if err != nil {
			return err
		}
		defer closeSession()

		result, err = s.engine.Run(ctx, def, domain.InputsFromPairs(body.Inputs), sess)
		return err
	})
	if err != nil {
		// Transport failures still carry the partial message log when the
		// flow got far enough to produce one.
		if result != nil {
			s.logger.Error("flow aborted on transport failure", "screen", def.Name, "err", err)
			writeJSON(w, http.StatusBadGateway, processResponse{
				RunID:    result.RunID,
				Success:  false,
				Messages: result.Messages,
			})
			return
		}
		s.fail(w, http.StatusBadGateway, "open terminal session", err)
		return
	}

	writeJSON(w, http.StatusOK, processResponse{
		RunID:    result.RunID,
		Success:  result.Success,
		Messages: result.Messages,
	})
}

func (s *Server) loadScreen(w http.ResponseWriter, r *http.Request) (*domain.ScreenDefinition, bool) {
	name := chi.URLParam(r, "name")
	def, err := s.store.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrScreenNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "screen not found: " + name})
			return nil, false
		}
		s.fail(w, http.StatusInternalServerError, "load screen", err)
		return nil, false
	}
	return def, true
}

func (s *Server) fail(w http.ResponseWriter, status int, msg string, err error) {
	s.logger.Error(msg, "err", err)
	writeJSON(w, status, errorResponse{Error: msg + ": " + err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

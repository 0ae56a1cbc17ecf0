package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/Kerhoff/RosterboT/internal/metrics"
	"github.com/Kerhoff/RosterboT/internal/models"
)

// EventFinder looks up the next event of a chat with its roster.
type EventFinder interface {
	NextEvent(ctx context.Context, chatJID string) (*models.Event, []*models.Person, error)
}

// Pinger checks the database connection.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// UpdateHandler receives Telegram updates posted to the webhook.
type UpdateHandler interface {
	HandleWebhook(update tgbotapi.Update)
}

// Server provides the HTTP API.
type Server struct {
	events  EventFinder
	db      Pinger
	updates UpdateHandler
	logger  *logrus.Logger
	router  chi.Router
}

// NewServer creates a Server and registers all routes. updates may be nil when
// the bot polls for updates; the webhook route is then not mounted.
func NewServer(events EventFinder, db Pinger, updates UpdateHandler, logger *logrus.Logger) *Server {
	s := &Server{events: events, db: db, updates: updates, logger: logger, router: chi.NewRouter()}
	s.routes()
	return s
}

// Handler returns the http.Handler that can be passed to http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/api/chats/{jid}/next-event", s.handleNextEvent)

	if s.updates != nil {
		s.router.Post("/telegram/webhook", s.handleWebhook)
	}
}

// MetricsHandler serves the Prometheus registry of m.
func MetricsHandler(m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry}))
	return r
}

// ---------------------------------------------------------------------------
// JSON helpers
// ---------------------------------------------------------------------------

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.logger.WithError(err).Error("failed to encode JSON response")
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.WithError(err).Warn("health check failed")
		s.respondError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type nextEventResponse struct {
	Event   *models.Event    `json:"event"`
	Persons []*models.Person `json:"persons"`
}

func (s *Server) handleNextEvent(w http.ResponseWriter, r *http.Request) {
	jid := chi.URLParam(r, "jid")

	event, persons, err := s.events.NextEvent(r.Context(), jid)
	if err != nil {
		s.logger.WithError(err).WithField("chat_jid", jid).Error("failed to get next event")
		s.respondError(w, http.StatusInternalServerError, "failed to get next event")
		return
	}
	if event == nil {
		s.respondError(w, http.StatusNotFound, fmt.Sprintf("no upcoming event for chat %s", jid))
		return
	}
	if persons == nil {
		persons = []*models.Person{}
	}

	s.respondJSON(w, http.StatusOK, nextEventResponse{Event: event, Persons: persons})
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	s.updates.HandleWebhook(update)
	w.WriteHeader(http.StatusOK)
}

package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi"
	"github.com/rs/cors"

	"github.com/servvia/servvia/pkg/conversation"
	"github.com/servvia/servvia/pkg/observability"
	"github.com/servvia/servvia/pkg/pipeline"
)

// Answerer runs one chat turn. Implemented by pipeline.Orchestrator.
type Answerer interface {
	Answer(ctx context.Context, userID, query string) pipeline.Envelope
}

type Server struct {
	logger   *log.Logger
	answerer Answerer
	store    *conversation.Store
}

func NewServer(logger *log.Logger, answerer Answerer, store *conversation.Store) *Server {
	return &Server{logger: logger, answerer: answerer, store: store}
}

// Router builds the HTTP surface: chat, context inspection, health and
// metrics endpoints.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(cors.New(cors.Options{
		AllowCredentials: true,
		AllowedOrigins:   []string{"*"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept"},
		Debug:            false,
	}).Handler)

	router.Post("/api/chat", s.handleChat)
	router.Post("/api/chat/clear", s.handleClear)
	router.Get("/api/context", s.handleContext)
	router.Get("/healthz", s.handleHealth)
	router.Handle("/metrics", observability.MetricsHandler())

	return router
}

type chatRequest struct {
	UserID string `json:"user_id"`
	Query  string `json:"query"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	req.Query = strings.TrimSpace(req.Query)
	if req.UserID == "" || req.Query == "" {
		writeError(w, http.StatusBadRequest, "user_id and query are required")
		return
	}

	env := s.answerer.Answer(r.Context(), req.UserID, req.Query)
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	s.store.Clear(r.Context(), req.UserID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) handleContext(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	uc := s.store.Context(r.Context(), userID)
	writeJSON(w, http.StatusOK, map[string]any{
		"context": uc,
		"summary": s.store.Summary(r.Context(), userID),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Package server exposes the chat core over HTTP.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/vmunix/chatarr/internal/chat"
	"github.com/vmunix/chatarr/internal/nlu"
)

// Handler is the chat entry point the server forwards messages to.
type Handler interface {
	Handle(ctx context.Context, req chat.Request) *chat.Reply
}

// HistoryStore loads and records conversation history.
type HistoryStore interface {
	Append(ctx context.Context, userID string, msg nlu.Message) error
	Recent(ctx context.Context, userID string, n int) ([]nlu.Message, error)
	Prune(ctx context.Context, userID string, keep int) error
}

// Server handles the chat HTTP API.
type Server struct {
	handler      Handler
	history      HistoryStore
	historyLimit int
	logger       *slog.Logger
}

// New creates an HTTP chat server.
func New(handler Handler, history HistoryStore, historyLimit int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handler:      handler,
		history:      history,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/chat", s.handleChat)
	mux.HandleFunc("GET /api/v1/health", s.handleHealth)
}

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type chatResponse struct {
	Messages []nlu.Message `json:"messages"`
	Images   []string      `json:"images,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "user_id and message are required")
		return
	}

	ctx := r.Context()
	hist, err := s.history.Recent(ctx, req.UserID, s.historyLimit)
	if err != nil {
		// A missing history is not worth failing the turn over.
		s.logger.Error("history load failed", "user", req.UserID, "error", err)
		hist = nil
	}

	reply := s.handler.Handle(ctx, chat.Request{
		UserID:  req.UserID,
		Message: req.Message,
		History: hist,
	})

	s.record(ctx, req.UserID, nlu.Message{Role: "user", Content: req.Message})
	for _, m := range reply.Messages {
		s.record(ctx, req.UserID, m)
	}
	if err := s.history.Prune(ctx, req.UserID, s.historyLimit); err != nil {
		s.logger.Error("history prune failed", "user", req.UserID, "error", err)
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Messages: reply.Messages,
		Images:   reply.Images,
	})
}

func (s *Server) record(ctx context.Context, userID string, msg nlu.Message) {
	if err := s.history.Append(ctx, userID, msg); err != nil {
		s.logger.Error("history append failed", "user", userID, "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// LogRequests wraps a handler with request logging.
func LogRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == http.StatusOK { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

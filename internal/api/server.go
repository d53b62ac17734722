// Package api is the HTTP surface: onboarding session endpoints, profile
// reads, and the persona chat endpoint.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/inward-labs/inward/internal/assistant"
	"github.com/inward-labs/inward/internal/onboarding"
	"github.com/inward-labs/inward/internal/store"
)

type Server struct {
	router    *chi.Mux
	port      int
	orch      *onboarding.Orchestrator
	store     *store.Store
	assistant *assistant.Client
	logger    *slog.Logger
}

func NewServer(port int, apiToken string, orch *onboarding.Orchestrator, st *store.Store, asst *assistant.Client, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:    router,
		port:      port,
		orch:      orch,
		store:     st,
		assistant: asst,
		logger:    logger,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/identity/status", s.status)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(apiToken))

		r.Route("/onboarding/{userID}", func(r chi.Router) {
			r.Post("/start", s.startOnboarding)
			r.Post("/responses", s.recordResponse)
			r.Post("/next", s.next)
			r.Post("/back", s.back)
			r.Get("/progress", s.progress)
			r.Post("/clarifications", s.submitClarification)
			r.Post("/complete", s.complete)
		})

		r.Get("/profiles/{userID}", s.getProfile)
		r.Post("/chat/{userID}", s.chat)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

// BearerAuthMiddleware rejects requests without the expected bearer token.
// An empty token disables auth (local development).
func BearerAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "inward",
		"status":  "ok",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/inward-labs/inward/internal/assistant"
	"github.com/inward-labs/inward/internal/prompt"
	"github.com/inward-labs/inward/internal/snapshot"
	"github.com/inward-labs/inward/internal/store"
)

const chatMaxTokens = 1024

// ChatRequest carries the user's message plus any prior turns the client
// wants in context.
type ChatRequest struct {
	Message string              `json:"message"`
	History []assistant.Message `json:"history,omitempty"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "profile storage not configured")
		return
	}
	userID := chi.URLParam(r, "userID")

	rec, err := s.store.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNoProfile) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.logger.Error("profile fetch failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "profile fetch failed")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "profile storage not configured")
		return
	}
	if s.assistant == nil || !s.assistant.Configured() {
		writeError(w, http.StatusServiceUnavailable, "chat not configured")
		return
	}
	userID := chi.URLParam(r, "userID")

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	rec, err := s.store.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNoProfile) {
			writeError(w, http.StatusNotFound, "complete onboarding before chatting")
			return
		}
		s.logger.Error("profile fetch failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "profile fetch failed")
		return
	}

	// The snapshot is best-effort context; chat works without one.
	var snap *snapshot.Snapshot
	snap, err = s.store.GetContextSnapshot(r.Context(), userID)
	if err != nil && !errors.Is(err, store.ErrNoSnapshot) {
		s.logger.Warn("snapshot fetch failed", "user_id", userID, "error", err)
		snap = nil
	}

	system := prompt.BuildSystem(rec, snap)
	messages := append(req.History, assistant.Message{Role: "user", Content: req.Message})

	reply, err := s.assistant.Complete(r.Context(), system, messages, chatMaxTokens)
	if err != nil {
		s.logger.Error("chat completion failed", "user_id", userID, "error", err)
		writeError(w, http.StatusBadGateway, "chat completion failed")
		return
	}
	writeJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}

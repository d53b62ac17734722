package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/inward-labs/inward/internal/assessment"
	"github.com/inward-labs/inward/internal/catalog"
	"github.com/inward-labs/inward/internal/onboarding"
)

// ResponseRequest is one statement rating: which trait, which pole, 1-5.
type ResponseRequest struct {
	Trait  catalog.TraitKey `json:"trait"`
	Pole   assessment.Pole  `json:"pole"`
	Rating int              `json:"rating"`
}

// ClarificationRequest is the slider value for one ambiguous trait.
type ClarificationRequest struct {
	Trait catalog.TraitKey `json:"trait"`
	Value int              `json:"value"`
}

func (s *Server) startOnboarding(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	st := s.orch.Start(userID)
	writeJSON(w, http.StatusCreated, st)
}

func (s *Server) recordResponse(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req ResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	st, err := s.orch.RecordAnswer(userID, req.Trait, req.Pole, req.Rating)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) next(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	st, err := s.orch.Next(userID)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) back(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	st, err := s.orch.Back(userID)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) progress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	st, err := s.orch.SessionState(userID)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) submitClarification(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req ClarificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	st, err := s.orch.SubmitClarification(userID, req.Trait, req.Value)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) complete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req onboarding.CompletionInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	rec, err := s.orch.Complete(r.Context(), userID, req)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// writeSessionError maps orchestrator errors to HTTP statuses: missing
// session is 404, sequencing violations are 409, everything else is a 400
// validation failure.
func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, onboarding.ErrNoSession):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, assessment.ErrWrongPhase),
		errors.Is(err, assessment.ErrGroupIncomplete),
		errors.Is(err, assessment.ErrNotClarified):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/server/middleware"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

// respondError maps a typed error to its HTTP status and writes it.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// pathID parses the {id} path segment as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

// handleCreateCandidate registers a new candidate with their initial resume
// profile.
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, &ErrBadRequest{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, &ErrBadRequest{Message: err.Error()})
		return
	}

	now := time.Now().UTC()
	candidate := &types.Candidate{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Profile:   req.Resume.Profile(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateCandidate(r.Context(), candidate); err != nil {
		s.respondError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, candidate)
}

// handleListCandidates returns the candidate pool.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.store.ListCandidates(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidates": candidates,
		"count":      len(candidates),
	})
}

// handleGetCandidate returns one candidate by ID.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, &ErrBadRequest{Message: "invalid candidate ID"})
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if candidate == nil {
		s.respondError(w, &ErrCandidateNotFound{CandidateID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleFindSimilar runs the similarity detector for one candidate against
// the rest of the stored pool.
func (s *Server) handleFindSimilar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, &ErrBadRequest{Message: "invalid candidate ID"})
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if candidate == nil {
		s.respondError(w, &ErrCandidateNotFound{CandidateID: id})
		return
	}

	pool, err := s.store.ListCandidates(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	result := s.engine.FindSimilarCandidates(*candidate, pool)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleSubmission evaluates a fresh resume submission against the
// candidate's stored profile and the pool, persists the pending validation
// when the history changed, and stores the new profile as current.
func (s *Server) handleSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, &ErrBadRequest{Message: "invalid candidate ID"})
		return
	}

	var req types.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, &ErrBadRequest{Message: "invalid JSON body"})
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if candidate == nil {
		s.respondError(w, &ErrCandidateNotFound{CandidateID: id})
		return
	}

	pool, err := s.store.ListCandidates(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	newProfile := req.Resume.Profile()
	evaluation, err := s.engine.EvaluateSubmission(r.Context(), *candidate, req.JobID, newProfile, pool)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if evaluation.Validation != nil {
		if err := s.store.CreateValidation(r.Context(), evaluation.Validation); err != nil {
			s.respondError(w, err)
			return
		}
	}
	if err := s.store.UpdateCandidateProfile(r.Context(), id, newProfile); err != nil {
		s.respondError(w, err)
		return
	}

	status := http.StatusOK
	if evaluation.Validation != nil {
		status = http.StatusCreated
	}
	s.jsonResponse(w, status, evaluation)
}

// handleFlagOverride clears a candidate's suspicious flag. The override is
// explicit and attributed to the operator from the service token.
func (s *Server) handleFlagOverride(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, &ErrBadRequest{Message: "invalid candidate ID"})
		return
	}

	var req types.FlagOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, &ErrBadRequest{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, &ErrBadRequest{Message: err.Error()})
		return
	}

	operator, err := middleware.GetOperator(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if candidate == nil {
		s.respondError(w, &ErrCandidateNotFound{CandidateID: id})
		return
	}

	cleared, err := s.engine.ClearFlag(candidate.Flag, operator, req.Reason)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.store.UpdateCandidateFlag(r.Context(), id, cleared); err != nil {
		s.respondError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidate_id": id,
		"flag":         cleared,
		"cleared_by":   operator,
	})
}

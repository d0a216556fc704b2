package server

import (
	"encoding/json"
	"net/http"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/server/middleware"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

// handleGetValidation returns one validation record by ID.
func (s *Server) handleGetValidation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, &ErrBadRequest{Message: "invalid validation ID"})
		return
	}

	validation, err := s.store.GetValidation(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if validation == nil {
		s.respondError(w, &ErrValidationNotFound{ValidationID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, validation)
}

// handleListValidations returns a candidate's validation history.
func (s *Server) handleListValidations(w http.ResponseWriter, r *http.Request) {
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

	validations, err := s.store.ListValidationsByCandidate(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"validations": validations,
		"count":       len(validations),
	})
}

// handleDecision resolves a pending validation with an operator decision.
// The operator identity comes from the verified service token, never from
// the request body.
func (s *Server) handleDecision(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, &ErrBadRequest{Message: "invalid validation ID"})
		return
	}

	var req types.DecisionRequest
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

	validation, err := s.store.GetValidation(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if validation == nil {
		s.respondError(w, &ErrValidationNotFound{ValidationID: id})
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), validation.CandidateID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if candidate == nil {
		s.respondError(w, &ErrCandidateNotFound{CandidateID: validation.CandidateID})
		return
	}

	outcome, err := s.engine.DecideValidation(validation, candidate.Flag, req.Choice, operator, req.Reason)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.store.RecordDecision(r.Context(), validation); err != nil {
		s.respondError(w, err)
		return
	}
	if outcome.Flag != nil {
		if err := s.store.UpdateCandidateFlag(r.Context(), candidate.ID, outcome.Flag); err != nil {
			s.respondError(w, err)
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"validation": validation,
		"flag":       outcome.Flag,
	})
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/jobtext"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExpandTitle expands one job title into its equivalence-and-hierarchy
// neighborhood.
func (s *Server) handleExpandTitle(w http.ResponseWriter, r *http.Request) {
	var req types.ExpandTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, &ErrBadRequest{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, &ErrBadRequest{Message: err.Error()})
		return
	}

	titles := s.engine.ExpandTitle(req.Title)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"titles": titles,
		"count":  len(titles),
	})
}

// handleRolesFromSkills maps technology keywords to the roles they imply.
func (s *Server) handleRolesFromSkills(w http.ResponseWriter, r *http.Request) {
	var req types.RolesFromSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, &ErrBadRequest{Message: "invalid JSON body"})
		return
	}

	roles := s.engine.RolesFromSkills(req.Skills)
	s.jsonResponse(w, http.StatusOK, map[string]any{"roles": roles})
}

// handleScoreMatch scores a candidate's titles against a job title.
func (s *Server) handleScoreMatch(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, &ErrBadRequest{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, &ErrBadRequest{Message: err.Error()})
		return
	}

	result := s.engine.ScoreTitleMatch(req.JobTitle, req.CandidateTitles, req.JobSkills, req.CandidateSkills)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleDiffHistory diffs two employment histories and reports discrepancies.
func (s *Server) handleDiffHistory(w http.ResponseWriter, r *http.Request) {
	var req types.DiffHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, &ErrBadRequest{Message: "invalid JSON body"})
		return
	}

	report := s.engine.DiffEmploymentHistory(req.Previous.Profile(), req.Current.Profile())
	s.jsonResponse(w, http.StatusOK, report)
}

// handleExtractJobText extracts clean text and known skill keywords from a
// raw job-description HTML document. When the request names no skill
// vocabulary the taxonomy's technology keywords are used.
func (s *Server) handleExtractJobText(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractJobTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, &ErrBadRequest{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, &ErrBadRequest{Message: err.Error()})
		return
	}

	text, err := jobtext.ExtractText(req.HTML)
	if err != nil {
		s.respondError(w, &ErrBadRequest{Message: err.Error()})
		return
	}

	known := req.KnownSkills
	if len(known) == 0 {
		known = s.engine.TechKeywords()
	}
	skills := jobtext.ExtractSkills(text, known)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"text":   text,
		"skills": skills,
	})
}

package types

import (
	"github.com/go-playground/validator/v10"
)

// ResumePayload mirrors the parallel-array shape the extraction service
// produces. Profile zips it into structured records.
type ResumePayload struct {
	Companies []string `json:"companies"`
	Titles    []string `json:"titles"`
	Periods   []string `json:"periods"`
	Education []string `json:"education,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

// Profile converts the payload into a ResumeProfile, padding length
// mismatches with placeholders.
func (p ResumePayload) Profile() ResumeProfile {
	return ResumeProfileFromArrays(p.Companies, p.Titles, p.Periods, p.Education, p.Skills)
}

// ExpandTitleRequest represents a request to expand one job title.
type ExpandTitleRequest struct {
	Title string `json:"title" validate:"required,min=1"`
}

// RolesFromSkillsRequest represents a request to derive roles from declared skills.
type RolesFromSkillsRequest struct {
	Skills []string `json:"skills"`
}

// ScoreMatchRequest represents a request to score a candidate's title history
// against a job opening.
type ScoreMatchRequest struct {
	JobTitle        string   `json:"job_title" validate:"required,min=1"`
	JobSkills       []string `json:"job_skills"`
	CandidateTitles []string `json:"candidate_titles"`
	CandidateSkills []string `json:"candidate_skills"`
}

// DiffHistoryRequest represents a request to diff two resume profiles of the
// same candidate.
type DiffHistoryRequest struct {
	Previous ResumePayload `json:"previous"`
	Current  ResumePayload `json:"current"`
}

// CreateCandidateRequest represents a request to add a candidate to the pool.
type CreateCandidateRequest struct {
	Name   string        `json:"name" validate:"required,min=1"`
	Email  string        `json:"email" validate:"omitempty,email"`
	Resume ResumePayload `json:"resume"`
}

// SubmissionRequest represents a candidate's resubmission to a job with a
// fresh resume.
type SubmissionRequest struct {
	JobID  string        `json:"job_id"`
	Resume ResumePayload `json:"resume"`
}

// DecisionRequest represents an operator's decision on a pending validation.
type DecisionRequest struct {
	Choice Decision `json:"choice" validate:"required,oneof=matching unreal"`
	Reason string   `json:"reason"`
}

// FlagOverrideRequest represents an explicit request to clear a candidate's
// suspicious flag.
type FlagOverrideRequest struct {
	Reason string `json:"reason" validate:"required,min=1"`
}

// ExtractJobTextRequest represents a request to extract clean text and skill
// mentions from a raw HTML job description.
type ExtractJobTextRequest struct {
	HTML        string   `json:"html" validate:"required"`
	KnownSkills []string `json:"known_skills"`
}

// Validate validates the ExpandTitleRequest using the validator.
func (r *ExpandTitleRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScoreMatchRequest using the validator.
func (r *ScoreMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateCandidateRequest using the validator.
func (r *CreateCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the DecisionRequest using the validator.
func (r *DecisionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the FlagOverrideRequest using the validator.
func (r *FlagOverrideRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ExtractJobTextRequest using the validator.
func (r *ExtractJobTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Package engine composes the matching and integrity components behind one
// surface: title expansion, title-match scoring, employment-history diffing,
// cross-candidate similarity scanning, and validation decisions.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/expansion"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/history"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/matching"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/similarity"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/taxonomy"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/workflow"
)

// Options carries the tunable thresholds. Zero values fall back to the
// package defaults of the respective components.
type Options struct {
	// DiscrepancyThreshold is the history-diff score above which a report is
	// marked significant.
	DiscrepancyThreshold int
	// SimilarityThreshold is the pool-scan score above which a non-identical
	// chronology pair counts as high similarity.
	SimilarityThreshold int
}

// Engine wires the expander, matcher, comparator, detector, and workflow over
// one taxonomy. All operations are synchronous pure functions over their
// inputs; the Engine holds no request state and is safe for concurrent use.
type Engine struct {
	expander   *expansion.Expander
	matcher    *matching.Matcher
	comparator *history.Comparator
	detector   *similarity.Detector
	flow       *workflow.Workflow
}

// New builds an Engine over the given taxonomy.
func New(tx *taxonomy.Taxonomy, opts Options) *Engine {
	expander := expansion.New(tx)
	return &Engine{
		expander:   expander,
		matcher:    matching.New(expander),
		comparator: history.New(opts.DiscrepancyThreshold),
		detector:   similarity.New(opts.SimilarityThreshold),
		flow:       workflow.New(),
	}
}

// ExpandTitle returns the closure of titles related to the given one.
func (e *Engine) ExpandTitle(title string) []string {
	return e.expander.Expand(title)
}

// RolesFromSkills returns the roles implied by declared technology skills.
func (e *Engine) RolesFromSkills(skills []string) []string {
	return e.expander.RolesFromSkills(skills)
}

// TechKeywords returns the taxonomy's known technology keywords, used as the
// default skill vocabulary when extracting skills from job text.
func (e *Engine) TechKeywords() []string {
	return e.expander.TechKeywords()
}

// ScoreTitleMatch rates a candidate's title history against a job opening.
func (e *Engine) ScoreTitleMatch(jobTitle string, candidateTitles, jobSkills, candidateSkills []string) matching.MatchResult {
	return e.matcher.Score(jobTitle, candidateTitles, jobSkills, candidateSkills)
}

// DiffEmploymentHistory compares two resume profiles of the same candidate.
func (e *Engine) DiffEmploymentHistory(previous, current types.ResumeProfile) types.DiscrepancyReport {
	return e.comparator.Diff(previous, current)
}

// FindSimilarCandidates scans the pool for chronologies matching the
// candidate's.
func (e *Engine) FindSimilarCandidates(candidate types.Candidate, pool []types.Candidate) types.SimilarityResult {
	return e.detector.FindSimilar(candidate, pool)
}

// DecideValidation resolves a pending validation with the operator's choice.
func (e *Engine) DecideValidation(v *types.Validation, existing *types.SuspiciousFlag, choice types.Decision, operator, reason string) (*workflow.Outcome, error) {
	return e.flow.Decide(v, existing, choice, operator, reason)
}

// ClearFlag is the explicit override removing a candidate's suspicious flag.
func (e *Engine) ClearFlag(existing *types.SuspiciousFlag, operator, reason string) (*types.SuspiciousFlag, error) {
	return e.flow.ClearFlag(existing, operator, reason)
}

// Evaluation is the outcome of checking one resubmission: the history diff,
// the pool scan, and the pending validation assembled when the profile
// changed (nil otherwise).
type Evaluation struct {
	Report     types.DiscrepancyReport `json:"report"`
	Similarity types.SimilarityResult  `json:"similarity"`
	Validation *types.Validation       `json:"validation,omitempty"`
}

// EvaluateSubmission checks a candidate's fresh resume against their stored
// profile and the candidate pool. The diff and the pool scan run as parallel
// branches; both are pure functions over snapshots taken before the call.
//
// The diff is required, so its branch fails the evaluation when ctx is
// cancelled first. The pool scan is advisory: a cancelled scan degrades to
// "no similarity found" rather than failing the submission.
func (e *Engine) EvaluateSubmission(ctx context.Context, candidate types.Candidate, jobID string, newProfile types.ResumeProfile, pool []types.Candidate) (*Evaluation, error) {
	subject := candidate
	subject.Profile = newProfile

	var report types.DiscrepancyReport
	similarityResult := types.SimilarityResult{
		IdenticalChronology: make([]types.CandidateSimilarityMatch, 0),
		HighSimilarity:      make([]types.CandidateSimilarityMatch, 0),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		report = e.comparator.Diff(candidate.Profile, newProfile)
		return nil
	})
	g.Go(func() error {
		if gctx.Err() != nil {
			return nil
		}
		similarityResult = e.detector.FindSimilar(subject, pool)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	eval := &Evaluation{Report: report, Similarity: similarityResult}
	if report.Changed() {
		sim := similarityResult
		eval.Validation = &types.Validation{
			ID:          uuid.New(),
			CandidateID: candidate.ID,
			JobID:       jobID,
			State:       types.StatePending,
			Report:      report,
			Similarity:  &sim,
			CreatedAt:   time.Now().UTC(),
		}
	}
	return eval, nil
}

// Package workflow resolves pending resubmission validations into their
// terminal state. A validation starts pending, carries the discrepancy report
// and similarity scan for the submission, and ends as either matching
// (candidate may be submitted to the job) or unreal (candidate is marked
// fraudulent system-wide).
package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

// Outcome is the result of resolving one pending validation: the terminal
// state, the effective reason, and the suspicious flag the candidate should
// carry afterwards (nil when the candidate remains unflagged).
type Outcome struct {
	State  types.ValidationState
	Reason string
	Flag   *types.SuspiciousFlag
}

// Workflow applies the decision rules. Flag severity is monotonic: a decision
// may raise it but never lower it; only ClearFlag removes a flag.
type Workflow struct{}

// New returns a Workflow.
func New() *Workflow {
	return &Workflow{}
}

// Decide resolves a pending validation with the operator's choice. The
// validation is updated in place (state, reason, operator, decision time);
// the returned Outcome additionally carries the flag to persist on the
// candidate.
//
// An unreal decision needs a reason: the operator's own, or one suggested
// from the validation's similarity scan. Without either the transition is
// rejected. A matching decision never touches an existing flag; approval
// does not imply the earlier signal was wrong.
func (w *Workflow) Decide(v *types.Validation, existing *types.SuspiciousFlag, choice types.Decision, operator, reason string) (*Outcome, error) {
	if v.State != types.StatePending {
		return nil, &ErrAlreadyDecided{State: v.State}
	}

	reason = strings.TrimSpace(reason)

	var outcome *Outcome
	switch choice {
	case types.DecisionMatching:
		outcome = &Outcome{
			State:  types.StateMatching,
			Reason: reason,
			Flag:   copyFlag(existing),
		}
	case types.DecisionUnreal:
		effective := reason
		if effective == "" {
			effective = SuggestReason(v.Similarity)
		}
		if effective == "" {
			return nil, &ErrReasonRequired{}
		}
		outcome = &Outcome{
			State:  types.StateUnreal,
			Reason: effective,
			Flag:   escalateFlag(existing, effective, flagSeverity(v.Similarity)),
		}
	default:
		return nil, &ErrUnknownChoice{Choice: choice}
	}

	now := time.Now().UTC()
	v.State = outcome.State
	v.Reason = outcome.Reason
	v.DecidedBy = operator
	v.DecidedAt = &now
	return outcome, nil
}

// ClearFlag is the explicit override that removes a candidate's suspicious
// flag. It is deliberately separate from Decide: approving a submission does
// not clear a flag, only this does. A non-empty reason is required.
func (w *Workflow) ClearFlag(existing *types.SuspiciousFlag, operator, reason string) (*types.SuspiciousFlag, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, &ErrReasonRequired{}
	}
	if existing == nil || !existing.Suspicious {
		return nil, &ErrNotFlagged{}
	}
	return nil, nil
}

// SuggestReason derives a human-readable unreal reason from a similarity
// scan, preferring identical chronology over high similarity. Returns the
// empty string when the scan offers nothing.
func SuggestReason(result *types.SimilarityResult) string {
	if result == nil {
		return ""
	}
	if len(result.IdenticalChronology) > 0 {
		m := result.IdenticalChronology[0]
		suffix := ""
		if extra := len(result.IdenticalChronology) - 1; extra > 0 {
			suffix = fmt.Sprintf(" and %d other candidate(s)", extra)
		}
		return fmt.Sprintf("employment chronology identical to existing candidate %s%s", m.CandidateName, suffix)
	}
	if len(result.HighSimilarity) > 0 {
		m := result.HighSimilarity[0]
		return fmt.Sprintf("employment chronology %d%% similar to existing candidate %s", m.SimilarityScore, m.CandidateName)
	}
	return ""
}

// flagSeverity grades the flag an unreal decision produces: at least high,
// raised to the strongest severity the similarity scan reported.
func flagSeverity(result *types.SimilarityResult) types.Severity {
	severity := types.SeverityHigh
	if result == nil {
		return severity
	}
	for _, m := range result.IdenticalChronology {
		severity = severity.Max(m.Severity)
	}
	for _, m := range result.HighSimilarity {
		severity = severity.Max(m.Severity)
	}
	return severity
}

// escalateFlag produces the flag after an unreal decision, keeping the higher
// of the existing and new severities.
func escalateFlag(existing *types.SuspiciousFlag, reason string, severity types.Severity) *types.SuspiciousFlag {
	if existing != nil {
		severity = existing.Severity.Max(severity)
	}
	return &types.SuspiciousFlag{
		Suspicious: true,
		Reason:     reason,
		Severity:   severity,
		FlaggedAt:  time.Now().UTC(),
	}
}

func copyFlag(flag *types.SuspiciousFlag) *types.SuspiciousFlag {
	if flag == nil {
		return nil
	}
	copied := *flag
	return &copied
}

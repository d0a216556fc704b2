package types

import (
	"time"

	"github.com/google/uuid"
)

// Severity grades how strong a fraud signal is.
type Severity string

// Severity tiers, weakest to strongest.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Rank returns the numeric order of the severity. Unknown severities rank
// below SeverityLow.
func (s Severity) Rank() int {
	return severityRank[s]
}

// Max returns the higher-ranked of s and other.
func (s Severity) Max(other Severity) Severity {
	if other.Rank() > s.Rank() {
		return other
	}
	return s
}

// ValidationState is the lifecycle state of a resubmission validation.
type ValidationState string

// Validation states. Pending is the only non-terminal state.
const (
	StatePending  ValidationState = "pending"
	StateMatching ValidationState = "matching"
	StateUnreal   ValidationState = "unreal"
)

// Decision is the operator's choice when resolving a pending validation.
type Decision string

// Operator decisions.
const (
	DecisionMatching Decision = "matching"
	DecisionUnreal   Decision = "unreal"
)

// SuspiciousFlag marks a candidate as a fraud risk. Severity is monotonic:
// later validations may raise it but never silently lower it; only an explicit
// override clears the flag.
type SuspiciousFlag struct {
	Suspicious bool      `json:"is_suspicious"`
	Reason     string    `json:"reason"`
	Severity   Severity  `json:"severity"`
	FlaggedAt  time.Time `json:"flagged_at"`
}

// Candidate represents one candidate in the pool.
type Candidate struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email,omitempty"`
	Profile   ResumeProfile   `json:"profile"`
	Flag      *SuspiciousFlag `json:"flag,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Validation is the record of one resubmission check: the discrepancy report,
// the similarity scan that accompanied it, and the operator's eventual
// decision.
type Validation struct {
	ID          uuid.UUID         `json:"id"`
	CandidateID uuid.UUID         `json:"candidate_id"`
	JobID       string            `json:"job_id,omitempty"`
	State       ValidationState   `json:"state"`
	Report      DiscrepancyReport `json:"report"`
	Similarity  *SimilarityResult `json:"similarity,omitempty"`
	Reason      string            `json:"reason,omitempty"`
	DecidedBy   string            `json:"decided_by,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	DecidedAt   *time.Time        `json:"decided_at,omitempty"`
}

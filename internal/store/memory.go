package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

// Memory is an in-process Store. Reads return deep copies, so snapshots
// handed to the similarity detector stay stable while other requests write.
type Memory struct {
	mu          sync.RWMutex
	candidates  map[uuid.UUID]*types.Candidate
	validations map[uuid.UUID]*types.Validation
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		candidates:  make(map[uuid.UUID]*types.Candidate),
		validations: make(map[uuid.UUID]*types.Validation),
	}
}

// CreateCandidate stores a candidate, assigning an ID and timestamps when
// missing.
func (m *Memory) CreateCandidate(_ context.Context, c *types.Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	m.candidates[c.ID] = copyCandidate(c)
	return nil
}

// GetCandidate returns a copy of the candidate, or (nil, nil) when unknown.
func (m *Memory) GetCandidate(_ context.Context, id uuid.UUID) (*types.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.candidates[id]
	if !ok {
		return nil, nil
	}
	return copyCandidate(c), nil
}

// ListCandidates returns a snapshot of the pool ordered by name then ID.
func (m *Memory) ListCandidates(_ context.Context) ([]types.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pool := make([]types.Candidate, 0, len(m.candidates))
	for _, c := range m.candidates {
		pool = append(pool, *copyCandidate(c))
	}
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].Name != pool[j].Name {
			return pool[i].Name < pool[j].Name
		}
		return pool[i].ID.String() < pool[j].ID.String()
	})
	return pool, nil
}

// UpdateCandidateProfile replaces a candidate's resume profile.
func (m *Memory) UpdateCandidateProfile(_ context.Context, id uuid.UUID, profile types.ResumeProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.candidates[id]
	if !ok {
		return &ErrNotFound{Entity: "candidate", ID: id}
	}
	c.Profile = copyProfile(profile)
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateCandidateFlag sets or clears a candidate's suspicious flag.
func (m *Memory) UpdateCandidateFlag(_ context.Context, id uuid.UUID, flag *types.SuspiciousFlag) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.candidates[id]
	if !ok {
		return &ErrNotFound{Entity: "candidate", ID: id}
	}
	c.Flag = copyFlag(flag)
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// CreateValidation stores a validation record, assigning an ID when missing.
func (m *Memory) CreateValidation(_ context.Context, v *types.Validation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	m.validations[v.ID] = copyValidation(v)
	return nil
}

// GetValidation returns a copy of the validation, or (nil, nil) when unknown.
func (m *Memory) GetValidation(_ context.Context, id uuid.UUID) (*types.Validation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.validations[id]
	if !ok {
		return nil, nil
	}
	return copyValidation(v), nil
}

// ListValidationsByCandidate returns the candidate's validations, most recent
// first.
func (m *Memory) ListValidationsByCandidate(_ context.Context, candidateID uuid.UUID) ([]types.Validation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.Validation, 0)
	for _, v := range m.validations {
		if v.CandidateID == candidateID {
			out = append(out, *copyValidation(v))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// RecordDecision persists the terminal state of a decided validation.
func (m *Memory) RecordDecision(_ context.Context, v *types.Validation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.validations[v.ID]
	if !ok {
		return &ErrNotFound{Entity: "validation", ID: v.ID}
	}
	stored.State = v.State
	stored.Reason = v.Reason
	stored.DecidedBy = v.DecidedBy
	if v.DecidedAt != nil {
		at := *v.DecidedAt
		stored.DecidedAt = &at
	}
	return nil
}

func copyCandidate(c *types.Candidate) *types.Candidate {
	copied := *c
	copied.Profile = copyProfile(c.Profile)
	copied.Flag = copyFlag(c.Flag)
	return &copied
}

func copyProfile(p types.ResumeProfile) types.ResumeProfile {
	return types.ResumeProfile{
		Records:   append([]types.EmploymentRecord(nil), p.Records...),
		Education: append([]string(nil), p.Education...),
		Skills:    append([]string(nil), p.Skills...),
	}
}

func copyFlag(f *types.SuspiciousFlag) *types.SuspiciousFlag {
	if f == nil {
		return nil
	}
	copied := *f
	return &copied
}

func copyValidation(v *types.Validation) *types.Validation {
	copied := *v
	copied.Report = copyReport(v.Report)
	if v.Similarity != nil {
		sim := types.SimilarityResult{
			IdenticalChronology:    copyMatches(v.Similarity.IdenticalChronology),
			HighSimilarity:         copyMatches(v.Similarity.HighSimilarity),
			TotalCandidatesChecked: v.Similarity.TotalCandidatesChecked,
		}
		copied.Similarity = &sim
	}
	if v.DecidedAt != nil {
		at := *v.DecidedAt
		copied.DecidedAt = &at
	}
	return &copied
}

func copyReport(r types.DiscrepancyReport) types.DiscrepancyReport {
	copied := r
	copied.AddedCompanies = append([]string(nil), r.AddedCompanies...)
	copied.RemovedCompanies = append([]string(nil), r.RemovedCompanies...)
	copied.UnchangedCompanies = append([]string(nil), r.UnchangedCompanies...)
	copied.AddedTitles = append([]string(nil), r.AddedTitles...)
	copied.RemovedTitles = append([]string(nil), r.RemovedTitles...)
	copied.UnchangedTitles = append([]string(nil), r.UnchangedTitles...)
	copied.AddedDates = append([]string(nil), r.AddedDates...)
	copied.RemovedDates = append([]string(nil), r.RemovedDates...)
	copied.UnchangedDates = append([]string(nil), r.UnchangedDates...)
	copied.AddedEducation = append([]string(nil), r.AddedEducation...)
	copied.RemovedEducation = append([]string(nil), r.RemovedEducation...)
	copied.UnchangedEducation = append([]string(nil), r.UnchangedEducation...)
	return copied
}

func copyMatches(matches []types.CandidateSimilarityMatch) []types.CandidateSimilarityMatch {
	out := make([]types.CandidateSimilarityMatch, len(matches))
	for i, match := range matches {
		copied := match
		copied.MatchedCompanies = append([]string(nil), match.MatchedCompanies...)
		copied.MatchedDates = append([]string(nil), match.MatchedDates...)
		out[i] = copied
	}
	return out
}

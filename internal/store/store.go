// Package store provides the persistence collaborators for candidates and
// validations: a process-local memory implementation for development and
// tests, and a PostgreSQL implementation for deployments. The engine packages
// never import this package; only the server and CLI wiring do.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

// CandidateStore persists the candidate pool. Get returns (nil, nil) for
// unknown IDs; List returns an independent snapshot safe to read while other
// requests mutate the pool.
type CandidateStore interface {
	CreateCandidate(ctx context.Context, c *types.Candidate) error
	GetCandidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error)
	ListCandidates(ctx context.Context) ([]types.Candidate, error)
	UpdateCandidateProfile(ctx context.Context, id uuid.UUID, profile types.ResumeProfile) error
	UpdateCandidateFlag(ctx context.Context, id uuid.UUID, flag *types.SuspiciousFlag) error
}

// ValidationStore persists validation records and their decisions.
type ValidationStore interface {
	CreateValidation(ctx context.Context, v *types.Validation) error
	GetValidation(ctx context.Context, id uuid.UUID) (*types.Validation, error)
	ListValidationsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]types.Validation, error)
	RecordDecision(ctx context.Context, v *types.Validation) error
}

// Store is the combined repository surface the server wires against.
type Store interface {
	CandidateStore
	ValidationStore
}

// ErrNotFound indicates an update against a record that does not exist.
// Lookups signal absence with (nil, nil) instead.
type ErrNotFound struct {
	Entity string
	ID     uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

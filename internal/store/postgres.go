package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

// Postgres is the PostgreSQL-backed Store, wrapping a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and verifies it with
// a ping.
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// Schema is the DDL for the store's tables. Profiles, flags, reports, and
// similarity results are stored as JSONB documents; the engine treats them as
// opaque snapshots, so there is nothing to join on inside them.
const Schema = `
CREATE TABLE IF NOT EXISTS candidates (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL DEFAULT '',
	profile     JSONB NOT NULL,
	flag        JSONB,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS validations (
	id           UUID PRIMARY KEY,
	candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
	job_id       TEXT NOT NULL DEFAULT '',
	state        TEXT NOT NULL,
	report       JSONB NOT NULL,
	similarity   JSONB,
	reason       TEXT NOT NULL DEFAULT '',
	decided_by   TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	decided_at   TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_validations_candidate ON validations(candidate_id);
`

// EnsureSchema creates the tables if they do not exist yet.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// CreateCandidate stores a candidate, assigning an ID and timestamps when
// missing.
func (p *Postgres) CreateCandidate(ctx context.Context, c *types.Candidate) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	profile, err := json.Marshal(c.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	flag, err := marshalNullable(c.Flag)
	if err != nil {
		return fmt.Errorf("failed to marshal flag: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO candidates (id, name, email, profile, flag, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.Email, profile, flag, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

// GetCandidate retrieves a candidate by ID, or (nil, nil) when unknown.
func (p *Postgres) GetCandidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT id, name, email, profile, flag, created_at, updated_at
		 FROM candidates WHERE id = $1`,
		id,
	)

	c, err := scanCandidate(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// ListCandidates returns the full candidate pool, oldest first.
func (p *Postgres) ListCandidates(ctx context.Context) ([]types.Candidate, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, name, email, profile, flag, created_at, updated_at
		 FROM candidates ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	pool := make([]types.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		pool = append(pool, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return pool, nil
}

// UpdateCandidateProfile replaces a candidate's stored resume profile.
func (p *Postgres) UpdateCandidateProfile(ctx context.Context, id uuid.UUID, profile types.ResumeProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	tag, err := p.pool.Exec(ctx,
		`UPDATE candidates SET profile = $1, updated_at = NOW() WHERE id = $2`,
		data, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrNotFound{Entity: "candidate", ID: id}
	}
	return nil
}

// UpdateCandidateFlag replaces a candidate's suspicious flag; nil clears it.
func (p *Postgres) UpdateCandidateFlag(ctx context.Context, id uuid.UUID, flag *types.SuspiciousFlag) error {
	data, err := marshalNullable(flag)
	if err != nil {
		return fmt.Errorf("failed to marshal flag: %w", err)
	}

	tag, err := p.pool.Exec(ctx,
		`UPDATE candidates SET flag = $1, updated_at = NOW() WHERE id = $2`,
		data, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrNotFound{Entity: "candidate", ID: id}
	}
	return nil
}

// CreateValidation stores a validation record.
func (p *Postgres) CreateValidation(ctx context.Context, v *types.Validation) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}

	report, err := json.Marshal(v.Report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	similarity, err := marshalNullable(v.Similarity)
	if err != nil {
		return fmt.Errorf("failed to marshal similarity: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO validations (id, candidate_id, job_id, state, report, similarity, reason, decided_by, created_at, decided_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		v.ID, v.CandidateID, v.JobID, v.State, report, similarity, v.Reason, v.DecidedBy, v.CreatedAt, v.DecidedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create validation: %w", err)
	}
	return nil
}

// GetValidation retrieves a validation by ID, or (nil, nil) when unknown.
func (p *Postgres) GetValidation(ctx context.Context, id uuid.UUID) (*types.Validation, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT id, candidate_id, job_id, state, report, similarity, reason, decided_by, created_at, decided_at
		 FROM validations WHERE id = $1`,
		id,
	)

	v, err := scanValidation(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get validation: %w", err)
	}
	return v, nil
}

// ListValidationsByCandidate returns a candidate's validations, newest first.
func (p *Postgres) ListValidationsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]types.Validation, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, candidate_id, job_id, state, report, similarity, reason, decided_by, created_at, decided_at
		 FROM validations WHERE candidate_id = $1 ORDER BY created_at DESC, id`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list validations: %w", err)
	}
	defer rows.Close()

	out := make([]types.Validation, 0)
	for rows.Next() {
		v, err := scanValidation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan validation: %w", err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list validations: %w", err)
	}
	return out, nil
}

// RecordDecision persists the terminal state of a decided validation.
func (p *Postgres) RecordDecision(ctx context.Context, v *types.Validation) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE validations SET state = $1, reason = $2, decided_by = $3, decided_at = $4 WHERE id = $5`,
		v.State, v.Reason, v.DecidedBy, v.DecidedAt, v.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to record decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrNotFound{Entity: "validation", ID: v.ID}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (*types.Candidate, error) {
	var (
		c       types.Candidate
		profile []byte
		flag    []byte
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &profile, &flag, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(profile, &c.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if flag != nil {
		c.Flag = &types.SuspiciousFlag{}
		if err := json.Unmarshal(flag, c.Flag); err != nil {
			return nil, fmt.Errorf("failed to unmarshal flag: %w", err)
		}
	}
	return &c, nil
}

func scanValidation(row rowScanner) (*types.Validation, error) {
	var (
		v          types.Validation
		report     []byte
		similarity []byte
	)
	if err := row.Scan(&v.ID, &v.CandidateID, &v.JobID, &v.State, &report, &similarity,
		&v.Reason, &v.DecidedBy, &v.CreatedAt, &v.DecidedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(report, &v.Report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	if similarity != nil {
		v.Similarity = &types.SimilarityResult{}
		if err := json.Unmarshal(similarity, v.Similarity); err != nil {
			return nil, fmt.Errorf("failed to unmarshal similarity: %w", err)
		}
	}
	return &v, nil
}

// marshalNullable marshals v, mapping a nil pointer to a SQL NULL.
func marshalNullable[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

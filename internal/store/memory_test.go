package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

func testCandidate(name string) *types.Candidate {
	now := time.Now().UTC()
	return &types.Candidate{
		ID:   uuid.New(),
		Name: name,
		Profile: types.ResumeProfileFromArrays(
			[]string{"Acme Corp", "Globex"},
			[]string{"Java Developer", "Senior Java Developer"},
			[]string{"2017-2020", "2020-2024"},
			nil,
			[]string{"Java", "Spring"},
		),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemoryCandidateRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	candidate := testCandidate("Dana Whitfield")
	require.NoError(t, m.CreateCandidate(ctx, candidate))

	fetched, err := m.GetCandidate(ctx, candidate.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, candidate.Name, fetched.Name)
	assert.Equal(t, candidate.Profile.Companies(), fetched.Profile.Companies())
}

func TestMemoryGetUnknownReturnsNilNil(t *testing.T) {
	m := NewMemory()

	fetched, err := m.GetCandidate(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestMemoryListReturnsCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	candidate := testCandidate("Omar Reyes")
	require.NoError(t, m.CreateCandidate(ctx, candidate))

	pool, err := m.ListCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, pool, 1)

	// Mutating the snapshot must not leak into the store.
	pool[0].Name = "changed"
	pool[0].Profile.Records[0].Company = "changed"

	fetched, err := m.GetCandidate(ctx, candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, "Omar Reyes", fetched.Name)
	assert.Equal(t, "Acme Corp", fetched.Profile.Records[0].Company)
}

func TestMemoryUpdateProfile(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	candidate := testCandidate("Lee Carver")
	require.NoError(t, m.CreateCandidate(ctx, candidate))

	updated := types.ResumeProfileFromArrays(
		[]string{"Initech"}, []string{"Lead Developer"}, []string{"2024-"}, nil, nil)
	require.NoError(t, m.UpdateCandidateProfile(ctx, candidate.ID, updated))

	fetched, err := m.GetCandidate(ctx, candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Initech"}, fetched.Profile.Companies())
	assert.True(t, fetched.UpdatedAt.After(candidate.UpdatedAt) || fetched.UpdatedAt.Equal(candidate.UpdatedAt))

	var notFound *ErrNotFound
	err = m.UpdateCandidateProfile(ctx, uuid.New(), updated)
	require.ErrorAs(t, err, &notFound)
}

func TestMemoryFlagUpdateAndClear(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	candidate := testCandidate("Pat Doyle")
	require.NoError(t, m.CreateCandidate(ctx, candidate))

	flag := &types.SuspiciousFlag{
		Suspicious: true,
		Reason:     "chronology identical to existing candidate",
		Severity:   types.SeverityCritical,
		FlaggedAt:  time.Now().UTC(),
	}
	require.NoError(t, m.UpdateCandidateFlag(ctx, candidate.ID, flag))

	fetched, err := m.GetCandidate(ctx, candidate.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Flag)
	assert.Equal(t, types.SeverityCritical, fetched.Flag.Severity)

	require.NoError(t, m.UpdateCandidateFlag(ctx, candidate.ID, nil))
	fetched, err = m.GetCandidate(ctx, candidate.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Flag)
}

func TestMemoryValidationLifecycle(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	candidate := testCandidate("Priya Natarajan")
	require.NoError(t, m.CreateCandidate(ctx, candidate))

	v := &types.Validation{
		ID:          uuid.New(),
		CandidateID: candidate.ID,
		JobID:       "job-42",
		State:       types.StatePending,
		Report:      types.DiscrepancyReport{AddedCompanies: []string{"Initech"}, Score: 25, Significant: true},
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, m.CreateValidation(ctx, v))

	fetched, err := m.GetValidation(ctx, v.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, types.StatePending, fetched.State)

	unknown, err := m.GetValidation(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, unknown)

	now := time.Now().UTC()
	v.State = types.StateMatching
	v.DecidedBy = "reviewer-7"
	v.DecidedAt = &now
	require.NoError(t, m.RecordDecision(ctx, v))

	fetched, err = m.GetValidation(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StateMatching, fetched.State)
	assert.Equal(t, "reviewer-7", fetched.DecidedBy)

	list, err := m.ListValidationsByCandidate(ctx, candidate.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	other, err := m.ListValidationsByCandidate(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

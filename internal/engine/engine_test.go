package engine

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/taxonomy"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return New(taxonomy.Default(), Options{})
}

func poolCandidate(name string, companies, periods []string) types.Candidate {
	return types.Candidate{
		ID:      uuid.New(),
		Name:    name,
		Profile: types.ResumeProfileFromArrays(companies, nil, periods, nil, nil),
	}
}

func TestEngine_SurfaceOperations(t *testing.T) {
	e := newEngine(t)

	expanded := e.ExpandTitle("Java Developer")
	assert.Contains(t, expanded, "Backend Developer")

	roles := e.RolesFromSkills([]string{"Kubernetes"})
	assert.Contains(t, roles, "DevOps Engineer")

	match := e.ScoreTitleMatch("Java Developer", []string{"Java Developer"}, nil, nil)
	assert.Equal(t, 1.0, match.Score)

	report := e.DiffEmploymentHistory(types.ResumeProfile{}, types.ResumeProfile{})
	assert.Equal(t, 0, report.Score)
}

func TestEvaluateSubmission_UnchangedProfile(t *testing.T) {
	e := newEngine(t)
	cand := poolCandidate("Alice", []string{"Acme"}, []string{"2020-2021"})

	eval, err := e.EvaluateSubmission(context.Background(), cand, "job-1", cand.Profile, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, eval.Report.Score)
	assert.Nil(t, eval.Validation, "unchanged profile should not open a validation")
}

func TestEvaluateSubmission_ChangedProfileOpensPendingValidation(t *testing.T) {
	e := newEngine(t)
	cand := poolCandidate("Alice", []string{"Acme"}, []string{"2020-2021"})
	newProfile := types.ResumeProfileFromArrays(
		[]string{"Acme", "Globex"}, nil, []string{"2020-2021", "2021-2023"}, nil, nil)

	eval, err := e.EvaluateSubmission(context.Background(), cand, "job-7", newProfile, nil)

	require.NoError(t, err)
	require.NotNil(t, eval.Validation)
	assert.Equal(t, types.StatePending, eval.Validation.State)
	assert.Equal(t, cand.ID, eval.Validation.CandidateID)
	assert.Equal(t, "job-7", eval.Validation.JobID)
	assert.NotEqual(t, uuid.Nil, eval.Validation.ID)
	assert.True(t, eval.Validation.Report.Changed())
	require.NotNil(t, eval.Validation.Similarity)
}

func TestEvaluateSubmission_ScanUsesNewProfile(t *testing.T) {
	e := newEngine(t)
	cand := poolCandidate("Alice", []string{"OldCo"}, []string{"2018-2019"})
	newProfile := types.ResumeProfileFromArrays(
		[]string{"Acme", "Globex"}, nil, []string{"2020-2021", "2021-2022"}, nil, nil)
	twin := poolCandidate("Bob", []string{"Acme", "Globex"}, []string{"2020-2021", "2021-2022"})

	eval, err := e.EvaluateSubmission(context.Background(), cand, "", newProfile, []types.Candidate{twin})

	require.NoError(t, err)
	require.Len(t, eval.Similarity.IdenticalChronology, 1)
	assert.Equal(t, twin.ID, eval.Similarity.IdenticalChronology[0].CandidateID)
	assert.Equal(t, types.SeverityCritical, eval.Similarity.IdenticalChronology[0].Severity)
}

func TestEvaluateSubmission_EmptyPoolDegrades(t *testing.T) {
	e := newEngine(t)
	cand := poolCandidate("Alice", []string{"Acme"}, []string{"2020"})
	newProfile := types.ResumeProfileFromArrays([]string{"Globex"}, nil, []string{"2021"}, nil, nil)

	eval, err := e.EvaluateSubmission(context.Background(), cand, "", newProfile, nil)

	require.NoError(t, err)
	assert.Empty(t, eval.Similarity.IdenticalChronology)
	assert.Empty(t, eval.Similarity.HighSimilarity)
	assert.Equal(t, 0, eval.Similarity.TotalCandidatesChecked)
	require.NotNil(t, eval.Validation, "scan degradation must not block the validation")
}

func TestEvaluateSubmission_CancelledContext(t *testing.T) {
	e := newEngine(t)
	cand := poolCandidate("Alice", []string{"Acme"}, []string{"2020"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.EvaluateSubmission(ctx, cand, "", cand.Profile, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecideValidation_EndToEnd(t *testing.T) {
	e := newEngine(t)
	cand := poolCandidate("Alice", []string{"Acme"}, []string{"2020-2021"})
	twin := poolCandidate("Bob", []string{"Acme", "Globex"}, []string{"2020-2021", "2021-2022"})
	newProfile := twin.Profile

	eval, err := e.EvaluateSubmission(context.Background(), cand, "job-1", newProfile, []types.Candidate{twin})
	require.NoError(t, err)
	require.NotNil(t, eval.Validation)
	require.NotEmpty(t, eval.Similarity.IdenticalChronology)

	outcome, err := e.DecideValidation(eval.Validation, nil, types.DecisionUnreal, "operator@agency", "")
	require.NoError(t, err)
	assert.Equal(t, types.StateUnreal, outcome.State)
	assert.Contains(t, outcome.Reason, "Bob")
	require.NotNil(t, outcome.Flag)
	assert.Equal(t, types.SeverityCritical, outcome.Flag.Severity)
}

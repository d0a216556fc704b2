package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumePayloadProfile(t *testing.T) {
	payload := ResumePayload{
		Companies: []string{"Acme Corp", "Globex"},
		Titles:    []string{"Java Developer"},
		Periods:   []string{"2018-2020", "2020-2023", "2023-"},
		Skills:    []string{"Java"},
	}

	profile := payload.Profile()
	require.Len(t, profile.Records, 3)
	assert.Equal(t, NotSpecified, profile.Records[1].Title)
	assert.Equal(t, NotSpecified, profile.Records[2].Company)
	assert.Equal(t, []string{"Java"}, profile.Skills)
}

func TestExpandTitleRequestValidate(t *testing.T) {
	assert.NoError(t, (&ExpandTitleRequest{Title: "Java Developer"}).Validate())
	assert.Error(t, (&ExpandTitleRequest{}).Validate())
}

func TestScoreMatchRequestValidate(t *testing.T) {
	assert.NoError(t, (&ScoreMatchRequest{JobTitle: "Java Developer"}).Validate())
	assert.Error(t, (&ScoreMatchRequest{}).Validate())
}

func TestCreateCandidateRequestValidate(t *testing.T) {
	assert.NoError(t, (&CreateCandidateRequest{Name: "Dana"}).Validate())
	assert.NoError(t, (&CreateCandidateRequest{Name: "Dana", Email: "dana@example.com"}).Validate())
	assert.Error(t, (&CreateCandidateRequest{}).Validate())
	assert.Error(t, (&CreateCandidateRequest{Name: "Dana", Email: "not-an-email"}).Validate())
}

func TestDecisionRequestValidate(t *testing.T) {
	assert.NoError(t, (&DecisionRequest{Choice: DecisionMatching}).Validate())
	assert.NoError(t, (&DecisionRequest{Choice: DecisionUnreal, Reason: "duplicate"}).Validate())
	assert.Error(t, (&DecisionRequest{}).Validate())
	assert.Error(t, (&DecisionRequest{Choice: "maybe"}).Validate())
}

func TestFlagOverrideRequestValidate(t *testing.T) {
	assert.NoError(t, (&FlagOverrideRequest{Reason: "same person"}).Validate())
	assert.Error(t, (&FlagOverrideRequest{}).Validate())
}

func TestExtractJobTextRequestValidate(t *testing.T) {
	assert.NoError(t, (&ExtractJobTextRequest{HTML: "<p>hi</p>"}).Validate())
	assert.Error(t, (&ExtractJobTextRequest{}).Validate())
}

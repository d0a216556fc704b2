package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScoreMatch_ExactEquivalence(t *testing.T) {
	scoreJobTitle = "Software Engineer"
	scoreJobSkills = nil
	scoreCandidateTitles = []string{"Software Developer"}
	scoreCandidateSkills = nil
	scoreTaxonomy = ""
	scoreVerbose = false

	output := captureStdout(t, func() {
		require.NoError(t, runScoreMatch(scoreMatchCmd, nil))
	})

	assert.Contains(t, output, "\"score\": 1")
	assert.Contains(t, output, "Software Developer")
}

func TestRunScoreMatch_Verbose(t *testing.T) {
	scoreJobTitle = "Java Developer"
	scoreJobSkills = nil
	scoreCandidateTitles = []string{"Backend Developer"}
	scoreCandidateSkills = nil
	scoreTaxonomy = ""
	scoreVerbose = true
	defer func() { scoreVerbose = false }()

	output := captureStdout(t, func() {
		require.NoError(t, runScoreMatch(scoreMatchCmd, nil))
	})

	assert.Contains(t, output, "TITLE MATCH")
	assert.Contains(t, output, "Java Developer")
}

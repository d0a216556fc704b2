package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

func testPoolFile(t *testing.T) string {
	t.Helper()
	shared := types.ResumePayload{
		Companies: []string{"Acme Corp", "Globex"},
		Titles:    []string{"Java Developer", "Senior Java Developer"},
		Periods:   []string{"2017-2020", "2020-2024"},
	}
	return writeJSONFile(t, "pool.json", []types.CreateCandidateRequest{
		{Name: "Sam Okafor", Resume: shared},
		{Name: "Sam Okafor Jr", Resume: shared},
		{Name: "Pat Doyle", Resume: types.ResumePayload{
			Companies: []string{"Hooli"},
			Titles:    []string{"QA Engineer"},
			Periods:   []string{"2019-2024"},
		}},
	})
}

func TestRunScanPool(t *testing.T) {
	scanPoolFile = testPoolFile(t)
	scanName = "Sam Okafor"
	scanThreshold = 0
	scanVerbose = false

	output := captureStdout(t, func() {
		require.NoError(t, runScanPool(scanPoolCmd, nil))
	})

	assert.Contains(t, output, "Sam Okafor Jr")
	assert.Contains(t, output, "identical_chronology_matches")
	assert.NotContains(t, output, "Pat Doyle")
}

func TestRunScanPool_Verbose(t *testing.T) {
	scanPoolFile = testPoolFile(t)
	scanName = "pat doyle"
	scanThreshold = 0
	scanVerbose = true
	defer func() { scanVerbose = false }()

	output := captureStdout(t, func() {
		require.NoError(t, runScanPool(scanPoolCmd, nil))
	})

	assert.Contains(t, output, "NO SIMILAR CANDIDATES")
}

func TestRunScanPool_UnknownName(t *testing.T) {
	scanPoolFile = testPoolFile(t)
	scanName = "Nobody"

	err := runScanPool(scanPoolCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in pool")
}

func TestReadPool_BadFile(t *testing.T) {
	_, err := readPool("no-such-pool.json")
	assert.Error(t, err)
}

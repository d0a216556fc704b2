package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExpandTitle(t *testing.T) {
	expandTitle = "Java Developer"
	expandTaxonomy = ""
	expandVerbose = false

	output := captureStdout(t, func() {
		require.NoError(t, runExpandTitle(expandTitleCmd, nil))
	})

	assert.Contains(t, output, "Java Developer")
	assert.Contains(t, output, "Java Engineer")
	assert.Contains(t, output, "\"count\"")
}

func TestRunExpandTitle_Verbose(t *testing.T) {
	expandTitle = "SRE"
	expandTaxonomy = ""
	expandVerbose = true
	defer func() { expandVerbose = false }()

	output := captureStdout(t, func() {
		require.NoError(t, runExpandTitle(expandTitleCmd, nil))
	})

	assert.Contains(t, output, "TITLE EXPANSION")
	assert.Contains(t, output, "Site Reliability Engineer")
}

func TestRunExpandTitle_BadOverlayPath(t *testing.T) {
	expandTitle = "Java Developer"
	expandTaxonomy = "does-not-exist.json"
	defer func() { expandTaxonomy = "" }()

	err := runExpandTitle(expandTitleCmd, nil)
	assert.Error(t, err)
}

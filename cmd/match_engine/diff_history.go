package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/observability"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

var diffHistoryCmd = &cobra.Command{
	Use:   "diff-history",
	Short: "Diff two employment histories",
	Long:  "Compare a previous and a current resume snapshot and report added, removed, and unchanged companies, titles, and dates with a discrepancy score.",
	RunE:  runDiffHistory,
}

var (
	diffPreviousFile string
	diffCurrentFile  string
	diffThreshold    int
	diffVerbose      bool
)

func init() {
	diffHistoryCmd.Flags().StringVar(&diffPreviousFile, "previous", "", "Path to the previous resume JSON file (required)")
	diffHistoryCmd.Flags().StringVar(&diffCurrentFile, "current", "", "Path to the current resume JSON file (required)")
	diffHistoryCmd.Flags().IntVar(&diffThreshold, "threshold", 0, "Significance threshold (0 uses the default)")
	diffHistoryCmd.Flags().BoolVarP(&diffVerbose, "verbose", "v", false, "Print a formatted summary instead of JSON")
	_ = diffHistoryCmd.MarkFlagRequired("previous")
	_ = diffHistoryCmd.MarkFlagRequired("current")
	rootCmd.AddCommand(diffHistoryCmd)
}

// readResumePayload loads a resume snapshot from a JSON file.
func readResumePayload(path string) (types.ResumePayload, error) {
	var payload types.ResumePayload
	data, err := os.ReadFile(path)
	if err != nil {
		return payload, fmt.Errorf("failed to read resume file: %w", err)
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("failed to parse resume file %s: %w", path, err)
	}
	return payload, nil
}

func runDiffHistory(_ *cobra.Command, _ []string) error {
	previous, err := readResumePayload(diffPreviousFile)
	if err != nil {
		return err
	}
	current, err := readResumePayload(diffCurrentFile)
	if err != nil {
		return err
	}

	eng, err := newEngine("", diffThreshold, 0)
	if err != nil {
		return err
	}

	report := eng.DiffEmploymentHistory(previous.Profile(), current.Profile())
	if diffVerbose {
		observability.NewPrinter(stdout).PrintDiscrepancyReport(report)
		return nil
	}

	return printJSON(report)
}

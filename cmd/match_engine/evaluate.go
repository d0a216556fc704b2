package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/observability"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a fresh resume submission against a candidate pool",
	Long:  "Diff a candidate's fresh resume against their profile in a JSON pool, scan the pool for similar chronologies, and report the pending validation the submission would open.",
	RunE:  runEvaluate,
}

var (
	evalPoolFile             string
	evalName                 string
	evalResumeFile           string
	evalJobID                string
	evalDiscrepancyThreshold int
	evalSimilarityThreshold  int
	evalVerbose              bool
)

func init() {
	evaluateCmd.Flags().StringVar(&evalPoolFile, "pool", "", "Path to a JSON file with the candidate pool (required)")
	evaluateCmd.Flags().StringVar(&evalName, "name", "", "Name of the submitting candidate in the pool (required)")
	evaluateCmd.Flags().StringVar(&evalResumeFile, "resume", "", "Path to the fresh resume JSON file (required)")
	evaluateCmd.Flags().StringVar(&evalJobID, "job", "", "Job opening the submission targets")
	evaluateCmd.Flags().IntVar(&evalDiscrepancyThreshold, "discrepancy-threshold", 0, "History-diff significance threshold (0 uses the default)")
	evaluateCmd.Flags().IntVar(&evalSimilarityThreshold, "similarity-threshold", 0, "High-similarity threshold (0 uses the default)")
	evaluateCmd.Flags().BoolVarP(&evalVerbose, "verbose", "v", false, "Print a formatted summary instead of JSON")
	_ = evaluateCmd.MarkFlagRequired("pool")
	_ = evaluateCmd.MarkFlagRequired("name")
	_ = evaluateCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	pool, err := readPool(evalPoolFile)
	if err != nil {
		return err
	}

	var subject *types.Candidate
	for i := range pool {
		if strings.EqualFold(pool[i].Name, evalName) {
			subject = &pool[i]
			break
		}
	}
	if subject == nil {
		return fmt.Errorf("candidate %q not found in pool", evalName)
	}

	resume, err := readResumePayload(evalResumeFile)
	if err != nil {
		return err
	}

	eng, err := newEngine("", evalDiscrepancyThreshold, evalSimilarityThreshold)
	if err != nil {
		return err
	}

	evaluation, err := eng.EvaluateSubmission(context.Background(), *subject, evalJobID, resume.Profile(), pool)
	if err != nil {
		return err
	}

	if evalVerbose {
		printer := observability.NewPrinter(stdout)
		printer.PrintDiscrepancyReport(evaluation.Report)
		printer.PrintSimilarityResult(evaluation.Similarity)
		printer.PrintValidation(evaluation.Validation)
		return nil
	}

	return printJSON(evaluation)
}

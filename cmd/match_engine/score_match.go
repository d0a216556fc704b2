package main

import (
	"github.com/spf13/cobra"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/observability"
)

var scoreMatchCmd = &cobra.Command{
	Use:   "score-match",
	Short: "Score a candidate's title history against a job title",
	Long:  "Score how well a candidate's title history fits a job opening, using taxonomy expansion with a lexical-similarity fallback.",
	RunE:  runScoreMatch,
}

var (
	scoreJobTitle        string
	scoreJobSkills       []string
	scoreCandidateTitles []string
	scoreCandidateSkills []string
	scoreTaxonomy        string
	scoreVerbose         bool
)

func init() {
	scoreMatchCmd.Flags().StringVar(&scoreJobTitle, "job-title", "", "Job title to match against (required)")
	scoreMatchCmd.Flags().StringSliceVar(&scoreJobSkills, "job-skills", nil, "Skills the job requires")
	scoreMatchCmd.Flags().StringSliceVar(&scoreCandidateTitles, "candidate-titles", nil, "Titles the candidate has held (required)")
	scoreMatchCmd.Flags().StringSliceVar(&scoreCandidateSkills, "candidate-skills", nil, "Skills the candidate declares")
	scoreMatchCmd.Flags().StringVar(&scoreTaxonomy, "taxonomy", "", "Path to a taxonomy overlay JSON file")
	scoreMatchCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted summary instead of JSON")
	_ = scoreMatchCmd.MarkFlagRequired("job-title")
	_ = scoreMatchCmd.MarkFlagRequired("candidate-titles")
	rootCmd.AddCommand(scoreMatchCmd)
}

func runScoreMatch(_ *cobra.Command, _ []string) error {
	eng, err := newEngine(scoreTaxonomy, 0, 0)
	if err != nil {
		return err
	}

	result := eng.ScoreTitleMatch(scoreJobTitle, scoreCandidateTitles, scoreJobSkills, scoreCandidateSkills)
	if scoreVerbose {
		observability.NewPrinter(stdout).PrintMatchResult(scoreJobTitle, result)
		return nil
	}

	return printJSON(result)
}

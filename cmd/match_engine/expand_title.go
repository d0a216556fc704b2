package main

import (
	"github.com/spf13/cobra"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/observability"
)

var expandTitleCmd = &cobra.Command{
	Use:   "expand-title",
	Short: "Expand a job title into its related title set",
	Long:  "Expand a job title through the taxonomy's equivalence sets and hierarchy into the full set of titles treated as related when matching.",
	RunE:  runExpandTitle,
}

var (
	expandTitle    string
	expandTaxonomy string
	expandVerbose  bool
)

func init() {
	expandTitleCmd.Flags().StringVarP(&expandTitle, "title", "t", "", "Job title to expand (required)")
	expandTitleCmd.Flags().StringVar(&expandTaxonomy, "taxonomy", "", "Path to a taxonomy overlay JSON file")
	expandTitleCmd.Flags().BoolVarP(&expandVerbose, "verbose", "v", false, "Print a formatted summary instead of JSON")
	_ = expandTitleCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(expandTitleCmd)
}

func runExpandTitle(_ *cobra.Command, _ []string) error {
	eng, err := newEngine(expandTaxonomy, 0, 0)
	if err != nil {
		return err
	}

	titles := eng.ExpandTitle(expandTitle)
	if expandVerbose {
		observability.NewPrinter(stdout).PrintExpansion(expandTitle, titles)
		return nil
	}

	return printJSON(map[string]any{
		"titles": titles,
		"count":  len(titles),
	})
}

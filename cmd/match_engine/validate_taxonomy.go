package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/schemas"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/taxonomy"
)

var validateTaxonomyCmd = &cobra.Command{
	Use:   "validate-taxonomy",
	Short: "Validate a taxonomy overlay file",
	Long:  "Validate a taxonomy overlay JSON file against the overlay schema and the structural invariants (symmetric equivalence, acyclic hierarchy), then report the merged table sizes.",
	RunE:  runValidateTaxonomy,
}

var validateOverlayFile string

func init() {
	validateTaxonomyCmd.Flags().StringVar(&validateOverlayFile, "overlay", "", "Path to the taxonomy overlay JSON file (required)")
	_ = validateTaxonomyCmd.MarkFlagRequired("overlay")
	rootCmd.AddCommand(validateTaxonomyCmd)
}

func runValidateTaxonomy(_ *cobra.Command, _ []string) error {
	tx, err := taxonomy.Load(validateOverlayFile, schemas.ResolveSchemaPath(taxonomy.SchemaPath))
	if err != nil {
		return fmt.Errorf("overlay is invalid: %w", err)
	}

	fmt.Fprintf(stdout, "Overlay %s is valid\n", validateOverlayFile)
	fmt.Fprintf(stdout, "Merged taxonomy carries %d technology keywords\n", len(tx.TechKeywords()))
	return nil
}

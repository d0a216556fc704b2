// Package main provides the entry point for the candidate matching engine.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/engine"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/schemas"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/taxonomy"
)

var rootCmd = &cobra.Command{
	Use:   "match_engine",
	Short: "Candidate matching and fraud-detection engine",
	Long:  "Match candidate title histories against job openings, diff employment histories across submissions, and scan candidate pools for fabricated profiles.",
}

// stdout is swappable so command tests can capture output.
var stdout io.Writer = os.Stdout

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newEngine builds an engine over the default taxonomy, with an optional
// overlay file merged in.
func newEngine(overlayPath string, discrepancyThreshold, similarityThreshold int) (*engine.Engine, error) {
	tx := taxonomy.Default()
	if overlayPath != "" {
		loaded, err := taxonomy.Load(overlayPath, schemas.ResolveSchemaPath(taxonomy.SchemaPath))
		if err != nil {
			return nil, fmt.Errorf("failed to load taxonomy overlay: %w", err)
		}
		tx = loaded
	}
	return engine.New(tx, engine.Options{
		DiscrepancyThreshold: discrepancyThreshold,
		SimilarityThreshold:  similarityThreshold,
	}), nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

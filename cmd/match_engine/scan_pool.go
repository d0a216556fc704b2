package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/observability"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

var scanPoolCmd = &cobra.Command{
	Use:   "scan-pool",
	Short: "Scan a candidate pool for fabricated profiles",
	Long:  "Scan a JSON candidate pool for profiles whose employment chronology is identical or suspiciously similar to one named candidate.",
	RunE:  runScanPool,
}

var (
	scanPoolFile  string
	scanName      string
	scanThreshold int
	scanVerbose   bool
)

func init() {
	scanPoolCmd.Flags().StringVar(&scanPoolFile, "pool", "", "Path to a JSON file with the candidate pool (required)")
	scanPoolCmd.Flags().StringVar(&scanName, "name", "", "Name of the candidate to scan against the pool (required)")
	scanPoolCmd.Flags().IntVar(&scanThreshold, "threshold", 0, "High-similarity threshold (0 uses the default)")
	scanPoolCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Print a formatted summary instead of JSON")
	_ = scanPoolCmd.MarkFlagRequired("pool")
	_ = scanPoolCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(scanPoolCmd)
}

// readPool loads a candidate pool file: a JSON array of candidate requests
// with name, optional email, and resume.
func readPool(path string) ([]types.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pool file: %w", err)
	}

	var entries []types.CreateCandidateRequest
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse pool file %s: %w", path, err)
	}

	now := time.Now().UTC()
	pool := make([]types.Candidate, 0, len(entries))
	for _, entry := range entries {
		pool = append(pool, types.Candidate{
			ID:        uuid.New(),
			Name:      entry.Name,
			Email:     entry.Email,
			Profile:   entry.Resume.Profile(),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return pool, nil
}

func runScanPool(_ *cobra.Command, _ []string) error {
	pool, err := readPool(scanPoolFile)
	if err != nil {
		return err
	}

	var subject *types.Candidate
	for i := range pool {
		if strings.EqualFold(pool[i].Name, scanName) {
			subject = &pool[i]
			break
		}
	}
	if subject == nil {
		return fmt.Errorf("candidate %q not found in pool", scanName)
	}

	eng, err := newEngine("", 0, scanThreshold)
	if err != nil {
		return err
	}

	result := eng.FindSimilarCandidates(*subject, pool)
	if scanVerbose {
		observability.NewPrinter(stdout).PrintSimilarityResult(result)
		return nil
	}

	return printJSON(result)
}

// Command seed_candidates loads a JSON candidate pool file into the
// database so the pool scan has records to compare against.
//
// Usage:
//
//	go run cmd/tools/seed_candidates/main.go pool.json
//
// The file holds a JSON array of {name, email, resume} entries. Requires
// DATABASE_URL environment variable to be set.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/config"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/store"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: seed_candidates <pool.json>")
		os.Exit(1)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	if cfg.DatabaseURL == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	entries, err := readPool(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to ensure schema: %v\n", err)
		os.Exit(1)
	}

	seeded := 0
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %q: %v\n", entry.Name, err)
			continue
		}

		now := time.Now().UTC()
		candidate := &types.Candidate{
			ID:        uuid.New(),
			Name:      entry.Name,
			Email:     entry.Email,
			Profile:   entry.Resume.Profile(),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.CreateCandidate(ctx, candidate); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to create candidate %q: %v\n", entry.Name, err)
			os.Exit(1)
		}
		fmt.Printf("Seeded %s (%s)\n", candidate.Name, candidate.ID)
		seeded++
	}

	fmt.Printf("Done: %d of %d candidates seeded\n", seeded, len(entries))
}

func readPool(path string) ([]types.CreateCandidateRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pool file: %w", err)
	}

	var entries []types.CreateCandidateRequest
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse pool file %s: %w", path, err)
	}
	return entries, nil
}

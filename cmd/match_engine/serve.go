package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/config"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/logging"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveTaxonomy   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the matching, history-diff, similarity, and validation endpoints.

Configuration can be loaded from a JSON file using --config. Environment variables override config file values, and flags override both.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a config JSON file (env vars and flags override its values)")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVar(&serveTaxonomy, "taxonomy", "", "Path to a taxonomy overlay JSON file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if serveTaxonomy != "" {
		cfg.TaxonomyOverlay = serveTaxonomy
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	srv, err := server.New(server.Config{
		Port:                 cfg.Port,
		DatabaseURL:          cfg.DatabaseURL,
		TaxonomyOverlay:      cfg.TaxonomyOverlay,
		DiscrepancyThreshold: cfg.DiscrepancyThreshold,
		SimilarityThreshold:  cfg.SimilarityThreshold,
		Logger:               logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// Package server provides the HTTP REST API for the candidate matching and
// validation engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/config"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/engine"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/schemas"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/server/middleware"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/server/ratelimit"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/store"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/taxonomy"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       store.Store
	engine      *engine.Engine
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
	tokens      *TokenService
	closeStore  func()
}

// Config holds server configuration. Store and Tokens are optional
// overrides; when nil the store is selected from DatabaseURL and the token
// service is built from the environment.
type Config struct {
	Port                 int
	DatabaseURL          string
	TaxonomyOverlay      string
	DiscrepancyThreshold int
	SimilarityThreshold  int
	Logger               *zap.Logger
	Store                store.Store
	Tokens               *TokenService
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tx, err := buildTaxonomy(cfg.TaxonomyOverlay)
	if err != nil {
		return nil, fmt.Errorf("failed to build taxonomy: %w", err)
	}

	s := &Server{
		engine: engine.New(tx, engine.Options{
			DiscrepancyThreshold: cfg.DiscrepancyThreshold,
			SimilarityThreshold:  cfg.SimilarityThreshold,
		}),
		logger:     logger,
		closeStore: func() {},
	}

	switch {
	case cfg.Store != nil:
		s.store = cfg.Store
	case cfg.DatabaseURL != "":
		pg, err := store.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pg.EnsureSchema(context.Background()); err != nil {
			pg.Close()
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
		s.store = pg
		s.closeStore = pg.Close
	default:
		s.store = store.NewMemory()
	}

	// Initialize the service-token validator for mutating routes
	s.tokens = cfg.Tokens
	if s.tokens == nil {
		tokenConfig, err := config.NewTokenConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create token config: %w", err)
		}
		s.tokens = NewTokenService(tokenConfig)
	}
	requireAuth := middleware.Auth(s.tokens.AsTokenValidator())

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Engine endpoints: pure functions over request inputs
	mux.HandleFunc("POST /titles/expand", s.handleExpandTitle)
	mux.HandleFunc("POST /titles/roles-from-skills", s.handleRolesFromSkills)
	mux.HandleFunc("POST /match/score", s.handleScoreMatch)
	mux.HandleFunc("POST /history/diff", s.handleDiffHistory)
	mux.HandleFunc("POST /jobtext/extract", s.handleExtractJobText)

	// Candidate endpoints
	mux.Handle("POST /candidates", requireAuth(http.HandlerFunc(s.handleCreateCandidate)))
	mux.HandleFunc("GET /candidates", s.handleListCandidates)
	mux.HandleFunc("GET /candidates/{id}", s.handleGetCandidate)
	mux.HandleFunc("GET /candidates/{id}/similar", s.handleFindSimilar)
	mux.Handle("POST /candidates/{id}/submissions", requireAuth(http.HandlerFunc(s.handleSubmission)))
	mux.Handle("POST /candidates/{id}/flag/override", requireAuth(http.HandlerFunc(s.handleFlagOverride)))

	// Validation endpoints
	mux.HandleFunc("GET /validations/{id}", s.handleGetValidation)
	mux.HandleFunc("GET /candidates/{id}/validations", s.handleListValidations)
	mux.Handle("POST /validations/{id}/decision", requireAuth(http.HandlerFunc(s.handleDecision)))

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func buildTaxonomy(overlayPath string) (*taxonomy.Taxonomy, error) {
	if overlayPath == "" {
		return taxonomy.Default(), nil
	}
	return taxonomy.Load(overlayPath, schemas.ResolveSchemaPath(taxonomy.SchemaPath))
}

// Handler exposes the fully wired handler chain, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.closeStore()
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For is ignored
// because the server does not sit behind a trusted proxy yet.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit
// information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	retryAfter := time.Until(info.ResetTime)
	if retryAfter < 0 {
		retryAfter = 0
	}
	w.Header().Set("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())+1))
	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":       "rate_limit_exceeded",
		"retry_after": info.ResetTime.Unix(),
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

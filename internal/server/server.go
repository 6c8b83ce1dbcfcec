// Package server provides the HTTP REST API for the vibe quiz.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/vibe-quiz/internal/config"
	"github.com/jonathan/vibe-quiz/internal/db"
	"github.com/jonathan/vibe-quiz/internal/deck"
	"github.com/jonathan/vibe-quiz/internal/images"
	"github.com/jonathan/vibe-quiz/internal/logger"
	"github.com/jonathan/vibe-quiz/internal/server/ratelimit"
	"github.com/jonathan/vibe-quiz/internal/session"
	"github.com/jonathan/vibe-quiz/internal/sports"
	"github.com/jonathan/vibe-quiz/internal/types"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// ResultStore persists finished quizzes. *db.DB implements it.
type ResultStore interface {
	Ping(ctx context.Context) error
	SaveSession(ctx context.Context, s *db.QuizSession) error
	SaveSwipes(ctx context.Context, sessionID uuid.UUID, results []types.SwipeResult) error
	SaveResult(ctx context.Context, sessionID *uuid.UUID, result types.QuizResult) (uuid.UUID, error)
	GetResult(ctx context.Context, id uuid.UUID) (*db.StoredResult, error)
	ListRecentResults(ctx context.Context, limit int) ([]db.StoredResult, error)
	ListSwipes(ctx context.Context, sessionID uuid.UUID) ([]db.Swipe, error)
}

var _ ResultStore = (*db.DB)(nil)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	cfg         config.Config
	log         *logger.Logger
	validate    *validator.Validate
	rateLimiter *ratelimit.Limiter
	origins     []string

	builder  *deck.Builder
	sessions *session.Store
	images   *images.Service
	rosters  *sports.RosterService
	results  ResultStore

	// persisted maps session id to the stored result id.
	mu        sync.Mutex
	persisted map[string]string
	closers   []func()
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithBuilder sets the deck builder shared by decks and sessions.
func WithBuilder(b *deck.Builder) Option {
	return func(s *Server) { s.builder = b }
}

// WithImageService replaces the image service built from config.
func WithImageService(svc *images.Service) Option {
	return func(s *Server) { s.images = svc }
}

// WithRosterService replaces the roster service built from config.
func WithRosterService(r *sports.RosterService) Option {
	return func(s *Server) { s.rosters = r }
}

// WithResultStore sets result persistence instead of connecting to DatabaseURL.
func WithResultStore(rs ResultStore) Option {
	return func(s *Server) { s.results = rs }
}

// WithRateLimiter replaces the limiter loaded from RATE_LIMIT_* variables.
func WithRateLimiter(l *ratelimit.Limiter) Option {
	return func(s *Server) { s.rateLimiter = l }
}

// WithAllowedOrigins restricts CORS origins. The default allows any origin.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.origins = origins
		}
	}
}

// New creates a new server instance. Postgres and Redis are used when their
// addresses are configured; otherwise results are not stored and rosters are
// cached in memory.
func New(cfg config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:       cfg,
		log:       logger.Nop(),
		validate:  validator.New(),
		origins:   []string{"*"},
		persisted: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.builder == nil {
		s.builder = deck.NewBuilder(deck.WithLogger(s.log))
	}
	s.sessions = session.NewStore(s.builder, s.log)

	if s.images == nil {
		providers := images.DefaultProviders(cfg.UnsplashAccessKey, cfg.UnsplashBaseURL, cfg.ImageSearchURL, nil)
		s.images = images.NewService(s.log, cfg.ImageCount, providers...)
	}

	if s.rosters == nil {
		rosters, err := s.newRosterService(cfg)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.rosters = rosters
	}

	if s.results == nil && cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.closers = append(s.closers, database.Close)
		if err := database.EnsureSchema(ctx); err != nil {
			s.Close()
			return nil, err
		}
		s.results = database
	}

	if s.rateLimiter == nil {
		s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())
	}
	s.closers = append(s.closers, s.rateLimiter.Stop)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /decks", s.handleBuildDeck)
	mux.HandleFunc("POST /cards/explain", s.handleExplainCard)
	mux.HandleFunc("GET /icons", s.handleIcons)
	mux.HandleFunc("GET /personalities", s.handlePersonalities)
	mux.HandleFunc("GET /categories", s.handleCategories)

	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("POST /sessions/{id}/swipe", s.handleSwipe)
	mux.HandleFunc("POST /sessions/{id}/skip", s.handleSkip)
	mux.HandleFunc("POST /sessions/{id}/undo", s.handleUndo)
	mux.HandleFunc("GET /sessions/{id}/results", s.handleSessionResults)

	mux.HandleFunc("POST /results", s.handleScoreResults)
	mux.HandleFunc("GET /results", s.handleListResults)
	mux.HandleFunc("GET /results/{id}", s.handleGetResult)
	mux.HandleFunc("GET /results/{id}/swipes", s.handleResultSwipes)

	mux.HandleFunc("GET /api/images", s.handleImages)
	mux.HandleFunc("GET /api/sports/detect", s.handleDetectTeam)
	mux.HandleFunc("GET /api/sports/roster", s.handleRoster)
	mux.HandleFunc("DELETE /api/sports/roster/cache", s.handleClearRosterCache)

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) newRosterService(cfg config.Config) (*sports.RosterService, error) {
	opts := []sports.RosterOption{
		sports.WithBaseURL(cfg.MLBAPIBaseURL),
		sports.WithTTL(cfg.RosterTTL.Duration),
		sports.WithRosterLogger(s.log),
	}
	if cfg.RedisAddr != "" {
		cache, err := sports.NewRedisCache(context.Background(), cfg.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to roster cache: %w", err)
		}
		s.closers = append(s.closers, func() { _ = cache.Close() })
		opts = append(opts, sports.WithCache(cache))
	}
	return sports.NewRosterService(opts...), nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Close releases the limiter, database pool and cache connections.
func (s *Server) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go s.pruneSessions(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.Close()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}
	s.log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.Close()
	s.log.Info("server stopped")
	return nil
}

func (s *Server) pruneSessions(ctx context.Context) {
	maxAge := s.cfg.SessionMaxAge.Duration
	if maxAge <= 0 {
		return
	}
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.pruneExpired(maxAge)
		case <-ctx.Done():
			return
		}
	}
}

// pruneExpired drops old sessions and forgets the stored result ids of
// sessions that no longer exist.
func (s *Server) pruneExpired(maxAge time.Duration) int {
	removed := s.sessions.Prune(maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.persisted {
		if _, err := s.sessions.Get(id); err != nil {
			delete(s.persisted, id)
		}
	}
	return removed
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:         300,
	})(next)
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	database := "not_configured"
	if s.results != nil {
		database = "ok"
		if err := s.results.Ping(r.Context()); err != nil {
			database = "unavailable"
		}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"sessions":        s.sessions.Len(),
		"database":        database,
		"image_providers": s.images.Providers(),
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to a status code and writes it.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		s.log.Error("request failed", "error", err)
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// decodeJSON reads a bounded JSON body into v.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	return nil
}

// extractClientID returns the client IP from RemoteAddr.
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

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	s.log.Warn("rate limit exceeded", "path", r.URL.Path, "limit", info.Limit, "client", s.extractClientID(r))
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

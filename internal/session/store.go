package session

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/vibe-quiz/internal/deck"
	"github.com/jonathan/vibe-quiz/internal/logger"
	"github.com/jonathan/vibe-quiz/internal/types"
)

// Store is an in-memory registry of sessions keyed by uuid.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	builder  *deck.Builder
	log      *logger.Logger
	now      func() time.Time
	validate *validator.Validate
}

// NewStore creates an empty Store. A nil builder uses an unseeded one.
func NewStore(builder *deck.Builder, log *logger.Logger) *Store {
	if builder == nil {
		builder = deck.NewBuilder()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		sessions: make(map[string]*Session),
		builder:  builder,
		log:      log,
		now:      time.Now,
		validate: validator.New(),
	}
}

// Create validates cfg, builds a deck and registers a new session.
func (s *Store) Create(cfg types.DeckConfig) (*Session, error) {
	if err := s.validate.Struct(cfg); err != nil {
		return nil, &ErrInvalidConfig{Message: "validation failed", Cause: err}
	}
	if cfg.TargetCount == 0 && !cfg.Unlimited {
		cfg.TargetCount = types.DefaultTargetCount
	}

	sess := New(uuid.New().String(), cfg, s.builder, s.now())

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.log.Info("session created",
		"session_id", sess.ID,
		"mode", string(sess.Mode),
		"target", sess.TargetCount,
		"cards", len(sess.Deck),
	)
	return sess, nil
}

// Get returns the session registered under id.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, &ErrNotFound{ID: id}
	}
	return sess, nil
}

// Delete removes a session. Deleting an unknown id returns ErrNotFound.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return &ErrNotFound{ID: id}
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Prune drops sessions created more than maxAge ago and returns how many were removed.
func (s *Store) Prune(maxAge time.Duration) int {
	cutoff := s.now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.log.Debug("sessions pruned", "removed", removed, "remaining", len(s.sessions))
	}
	return removed
}

// Package session tracks a player's progress through a swipe deck.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/jonathan/vibe-quiz/internal/deck"
	"github.com/jonathan/vibe-quiz/internal/scoring"
	"github.com/jonathan/vibe-quiz/internal/types"
)

const (
	// RefillThreshold is the number of remaining cards at which an unlimited
	// session asks for another batch.
	RefillThreshold = 5

	// minFreshBatch is the smallest acceptable batch after excluding shown titles.
	minFreshBatch = 10
	// recycleAfter and recycleCount let old titles return once many have been shown.
	recycleAfter = 50
	recycleCount = 25
)

// Session is one play-through. All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	ID           string
	Mode         types.GameMode
	TargetCount  int
	Config       types.DeckConfig
	Deck         []types.Card
	Results      []types.SwipeResult
	SkipCount    int
	CurrentIndex int
	CreatedAt    time.Time

	builder *deck.Builder
	// shown holds lowercase titles in the order they were first dealt.
	shown []string
}

// Snapshot is a point-in-time, JSON-friendly copy of a Session.
type Snapshot struct {
	ID           string              `json:"id"`
	Mode         types.GameMode      `json:"mode"`
	TargetCount  int                 `json:"target_count"`
	Deck         []types.Card        `json:"deck"`
	Results      []types.SwipeResult `json:"results"`
	SkipCount    int                 `json:"skip_count"`
	CurrentIndex int                 `json:"current_index"`
	Remaining    int                 `json:"remaining"`
	Done         bool                `json:"done"`
	CreatedAt    time.Time           `json:"created_at"`
}

// New starts a session over a freshly built deck.
func New(id string, cfg types.DeckConfig, builder *deck.Builder, now time.Time) *Session {
	if builder == nil {
		builder = deck.NewBuilder()
	}
	mode := types.ModeStandard
	if cfg.Unlimited {
		mode = types.ModeUnlimited
	}
	s := &Session{
		ID:          id,
		Mode:        mode,
		TargetCount: cfg.EffectiveTargetCount(),
		Config:      cfg,
		Deck:        builder.Build(cfg),
		Results:     make([]types.SwipeResult, 0),
		CreatedAt:   now,
		builder:     builder,
	}
	s.markShown(s.Deck)
	return s
}

// Current returns the card awaiting a decision.
func (s *Session) Current() (types.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current()
}

func (s *Session) current() (types.Card, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Deck) {
		return types.Card{}, false
	}
	return s.Deck[s.CurrentIndex], true
}

// Swipe records a like or dislike on the current card and advances.
func (s *Session) Swipe(liked bool) (types.SwipeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(liked, false)
}

// Skip records the current card as skipped. Skips never affect scoring.
func (s *Session) Skip() (types.SwipeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(false, true)
}

func (s *Session) record(liked, skipped bool) (types.SwipeResult, error) {
	card, ok := s.current()
	if !ok {
		return types.SwipeResult{}, &ErrDeckExhausted{Index: s.CurrentIndex}
	}
	result := types.SwipeResult{Card: card, Liked: liked, Skipped: skipped}
	s.Results = append(s.Results, result)
	s.CurrentIndex++
	if skipped {
		s.SkipCount++
	}
	return result, nil
}

// Undo removes the most recent result and steps back one card.
func (s *Session) Undo() (types.SwipeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.Results) == 0 {
		return types.SwipeResult{}, &ErrNothingToUndo{}
	}
	last := s.Results[len(s.Results)-1]
	s.Results = s.Results[:len(s.Results)-1]
	s.CurrentIndex--
	if last.Skipped {
		s.SkipCount--
	}
	return last, nil
}

// Done reports whether a standard session has played its target count.
// Unlimited sessions are never done on their own.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done()
}

func (s *Session) done() bool {
	if s.Mode == types.ModeUnlimited || len(s.Results) == 0 {
		return false
	}
	return s.CurrentIndex >= s.TargetCount || s.CurrentIndex >= len(s.Deck)
}

// Remaining returns the number of cards not yet decided.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining()
}

func (s *Session) remaining() int {
	if n := len(s.Deck) - s.CurrentIndex; n > 0 {
		return n
	}
	return 0
}

// NeedsMoreCards reports whether an unlimited session is running low.
func (s *Session) NeedsMoreCards() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Mode == types.ModeUnlimited && s.remaining() <= RefillThreshold
}

// ExtendDeck appends another batch whose titles avoid everything already dealt.
// When exclusion leaves too few fresh titles, the oldest shown titles are
// released and the batch is rebuilt. It returns the appended cards.
func (s *Session) ExtendDeck() []types.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extendDeck()
}

// RefillIfLow extends an unlimited deck that has run low, checking and
// extending under one lock. It returns the appended cards, if any.
func (s *Session) RefillIfLow() []types.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Mode != types.ModeUnlimited || s.remaining() > RefillThreshold {
		return nil
	}
	return s.extendDeck()
}

func (s *Session) extendDeck() []types.Card {
	cfg := s.Config
	cfg.Unlimited = true

	batch := s.builder.BuildExcluding(cfg, s.shown)
	if len(batch) < minFreshBatch {
		if len(s.shown) > recycleAfter {
			s.shown = append([]string(nil), s.shown[recycleCount:]...)
		}
		batch = s.builder.BuildExcluding(cfg, s.shown)
	}

	s.Deck = append(s.Deck, batch...)
	s.markShown(batch)
	return batch
}

func (s *Session) markShown(cards []types.Card) {
	seen := make(map[string]bool, len(s.shown))
	for _, t := range s.shown {
		seen[t] = true
	}
	for _, c := range cards {
		t := strings.ToLower(c.Title)
		if !seen[t] {
			seen[t] = true
			s.shown = append(s.shown, t)
		}
	}
}

// ThemeScores ranks the themes of liked cards so far.
func (s *Session) ThemeScores() []types.ThemeScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scoring.CalculateThemeScores(s.Results)
}

// Personality returns the archetype for the results so far.
func (s *Session) Personality() types.PersonalityType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scoring.CalculatePersonalityType(s.Results)
}

// Result summarizes the session for the results screen.
func (s *Session) Result() types.QuizResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scoring.Summarize(s.Results)
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	deckCopy := make([]types.Card, len(s.Deck))
	copy(deckCopy, s.Deck)
	results := make([]types.SwipeResult, len(s.Results))
	copy(results, s.Results)

	return Snapshot{
		ID:           s.ID,
		Mode:         s.Mode,
		TargetCount:  s.TargetCount,
		Deck:         deckCopy,
		Results:      results,
		SkipCount:    s.SkipCount,
		CurrentIndex: s.CurrentIndex,
		Remaining:    s.remaining(),
		Done:         s.done(),
		CreatedAt:    s.CreatedAt,
	}
}

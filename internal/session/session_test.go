package session

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/vibe-quiz/internal/deck"
	"github.com/jonathan/vibe-quiz/internal/types"
)

func seededBuilder(seed uint64) *deck.Builder {
	return deck.NewBuilder(deck.WithRand(rand.New(rand.NewPCG(seed, seed+1))))
}

func newStandard(t *testing.T, target int) *Session {
	t.Helper()
	cfg := types.DeckConfig{FavoritesText: "dogs pizza", TargetCount: target}
	s := New("test", cfg, seededBuilder(3), time.Unix(0, 0))
	require.Len(t, s.Deck, target)
	return s
}

func TestSwipe_AdvancesAndRecords(t *testing.T) {
	s := newStandard(t, 15)
	first, _ := s.Current()

	result, err := s.Swipe(true)
	require.NoError(t, err)
	assert.Equal(t, first.ID, result.Card.ID)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, s.CurrentIndex)
	assert.Len(t, s.Results, 1)
	assert.Equal(t, 0, s.SkipCount)
}

func TestSkip_CountsSkip(t *testing.T) {
	s := newStandard(t, 15)

	result, err := s.Skip()
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.False(t, result.Liked)
	assert.Equal(t, 1, s.SkipCount)
	assert.Equal(t, 1, s.CurrentIndex)
}

func TestUndo_RestoresSkipCountAndIndex(t *testing.T) {
	s := newStandard(t, 15)

	_, err := s.Swipe(true)
	require.NoError(t, err)
	_, err = s.Skip()
	require.NoError(t, err)

	undone, err := s.Undo()
	require.NoError(t, err)
	assert.True(t, undone.Skipped)
	assert.Equal(t, 0, s.SkipCount)
	assert.Equal(t, 1, s.CurrentIndex)

	undone, err = s.Undo()
	require.NoError(t, err)
	assert.True(t, undone.Liked)
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Empty(t, s.Results)
}

func TestUndo_NothingToUndo(t *testing.T) {
	s := newStandard(t, 15)

	_, err := s.Undo()
	var target *ErrNothingToUndo
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, 0, s.CurrentIndex)
}

func TestDone_StandardMode(t *testing.T) {
	s := newStandard(t, 15)
	assert.False(t, s.Done())

	for i := 0; i < 15; i++ {
		assert.False(t, s.Done())
		_, err := s.Swipe(i%2 == 0)
		require.NoError(t, err)
	}
	assert.True(t, s.Done())

	_, err := s.Swipe(true)
	var exhausted *ErrDeckExhausted
	assert.ErrorAs(t, err, &exhausted)
}

func TestScoring_IgnoresSkips(t *testing.T) {
	s := newStandard(t, 15)
	for i := 0; i < 15; i++ {
		_, err := s.Skip()
		require.NoError(t, err)
	}

	assert.Empty(t, s.ThemeScores())
	result := s.Result()
	assert.Equal(t, 15, result.SkipCount)
	assert.Equal(t, 0, result.LikedCount)
	assert.NotEmpty(t, s.Personality().ID)
}

func TestThemeScores_FromLikes(t *testing.T) {
	s := newStandard(t, 15)
	for i := 0; i < 15; i++ {
		_, err := s.Swipe(true)
		require.NoError(t, err)
	}

	scores := s.ThemeScores()
	require.NotEmpty(t, scores)
	assert.LessOrEqual(t, len(scores), 5)
	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1].Score, scores[i].Score)
	}
}

func TestNeedsMoreCards_OnlyUnlimited(t *testing.T) {
	s := newStandard(t, 15)
	for i := 0; i < 12; i++ {
		_, err := s.Swipe(true)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, s.Remaining())
	assert.False(t, s.NeedsMoreCards())
}

func TestExtendDeck_UnlimitedAvoidsShownTitles(t *testing.T) {
	cfg := types.DeckConfig{FavoritesText: "cats", SelectedCategories: []string{"space"}, Unlimited: true}
	s := New("unlimited", cfg, seededBuilder(11), time.Unix(0, 0))
	require.Len(t, s.Deck, types.UnlimitedBatchSize)
	assert.Equal(t, types.ModeUnlimited, s.Mode)

	for s.Remaining() > RefillThreshold {
		_, err := s.Swipe(true)
		require.NoError(t, err)
	}
	assert.True(t, s.NeedsMoreCards())
	assert.False(t, s.Done())

	firstBatch := make(map[string]bool, len(s.Deck))
	for _, c := range s.Deck {
		firstBatch[strings.ToLower(c.Title)] = true
	}

	added := s.ExtendDeck()
	require.GreaterOrEqual(t, len(added), minFreshBatch)
	for _, c := range added {
		assert.False(t, firstBatch[strings.ToLower(c.Title)], "title %q repeated across batches", c.Title)
	}
	assert.Len(t, s.Deck, types.UnlimitedBatchSize+len(added))
	assert.False(t, s.NeedsMoreCards())
}

func TestRefillIfLow_ExtendsOnceUnderConcurrency(t *testing.T) {
	cfg := types.DeckConfig{FavoritesText: "dogs", Unlimited: true}
	s := New("refill", cfg, seededBuilder(5), time.Unix(0, 0))
	assert.Empty(t, s.RefillIfLow(), "a full batch is not low")

	for s.Remaining() > RefillThreshold {
		_, err := s.Swipe(true)
		require.NoError(t, err)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		refills []int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if added := s.RefillIfLow(); len(added) > 0 {
				mu.Lock()
				refills = append(refills, len(added))
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, refills, 1)
	assert.Len(t, s.Deck, types.UnlimitedBatchSize+refills[0])
	assert.False(t, s.NeedsMoreCards())
}

func TestRefillIfLow_StandardModeNeverRefills(t *testing.T) {
	s := newStandard(t, 15)
	for i := 0; i < 14; i++ {
		_, err := s.Swipe(true)
		require.NoError(t, err)
	}
	assert.Empty(t, s.RefillIfLow())
	assert.Len(t, s.Deck, 15)
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := newStandard(t, 15)
	_, err := s.Swipe(false)
	require.NoError(t, err)

	snap := s.Snapshot()
	snap.Deck[0].Title = "changed"
	snap.Results = nil

	assert.NotEqual(t, "changed", s.Deck[0].Title)
	assert.Len(t, s.Results, 1)
	assert.Equal(t, 14, snap.Remaining)
	assert.False(t, snap.Done)
}

func TestSession_ConcurrentSwipes(t *testing.T) {
	s := newStandard(t, 30)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Swipe(true)
		}()
	}
	wg.Wait()

	assert.Equal(t, 30, s.CurrentIndex)
	assert.Len(t, s.Results, 30)
}

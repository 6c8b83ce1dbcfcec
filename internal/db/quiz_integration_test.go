//go:build integration
// +build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/vibe-quiz/internal/types"
)

func setupTestDB(t *testing.T) *DB {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping integration test: DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}
	require.NoError(t, db.EnsureSchema(context.Background()))
	return db
}

func TestSessionAndSwipes_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	sess := &QuizSession{
		ID:          uuid.New(),
		Mode:        types.ModeStandard,
		TargetCount: 15,
		Config:      types.DeckConfig{FavoritesText: "dogs, pizza", TargetCount: 15},
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, db.SaveSession(ctx, sess))

	results := []types.SwipeResult{
		{Card: types.Card{ID: "c1", Title: "Puppies", Category: "animals", ThemeTags: []string{"animals"}}, Liked: true},
		{Card: types.Card{ID: "c2", Title: "Tacos", Category: "food"}, Skipped: true},
	}
	require.NoError(t, db.SaveSwipes(ctx, sess.ID, results))
	// Saving again replaces rather than duplicates.
	require.NoError(t, db.SaveSwipes(ctx, sess.ID, results))

	swipes, err := db.ListSwipes(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, swipes, 2)
	assert.Equal(t, "Puppies", swipes[0].Title)
	assert.True(t, swipes[1].Skipped)

	done := time.Now().UTC()
	sess.SkipCount = 1
	sess.CompletedAt = &done
	require.NoError(t, db.SaveSession(ctx, sess))

	got, err := db.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.SkipCount)
	assert.NotNil(t, got.CompletedAt)
	assert.Equal(t, "dogs, pizza", got.Config.FavoritesText)
}

func TestResults_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	result := types.QuizResult{
		Personality: types.PersonalityType{ID: "explorer", Name: "The Explorer"},
		TopThemes:   []types.ThemeScore{{Theme: "travel", Score: 3}},
		TotalSwipes: 10,
		LikedCount:  6,
		SkipCount:   1,
	}
	id, err := db.SaveResult(ctx, nil, result)
	require.NoError(t, err)

	got, err := db.GetResult(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.SessionID)
	assert.Equal(t, "explorer", got.PersonalityID)
	assert.Equal(t, result.TopThemes, got.Result.TopThemes)

	recent, err := db.ListRecentResults(ctx, 5)
	require.NoError(t, err)
	assert.NotEmpty(t, recent)

	missing, err := db.GetResult(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/vibe-quiz/internal/types"
)

// QuizSession is a persisted quiz_sessions row.
type QuizSession struct {
	ID          uuid.UUID        `json:"id"`
	Mode        types.GameMode   `json:"mode"`
	TargetCount int              `json:"target_count"`
	Config      types.DeckConfig `json:"config"`
	SkipCount   int              `json:"skip_count"`
	CreatedAt   time.Time        `json:"created_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}

// Swipe is a persisted swipes row.
type Swipe struct {
	SessionID uuid.UUID `json:"session_id"`
	Position  int       `json:"position"`
	CardID    string    `json:"card_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	ThemeTags []string  `json:"theme_tags"`
	Liked     bool      `json:"liked"`
	Skipped   bool      `json:"skipped"`
}

// StoredResult is a persisted quiz_results row.
type StoredResult struct {
	ID            uuid.UUID        `json:"id"`
	SessionID     *uuid.UUID       `json:"session_id,omitempty"`
	PersonalityID string           `json:"personality_id"`
	Result        types.QuizResult `json:"result"`
	CreatedAt     time.Time        `json:"created_at"`
}

// swipeRows converts swipe results into rows numbered in swipe order.
func swipeRows(sessionID uuid.UUID, results []types.SwipeResult) []Swipe {
	rows := make([]Swipe, 0, len(results))
	for i, r := range results {
		tags := r.Card.ThemeTags
		if tags == nil {
			tags = []string{}
		}
		rows = append(rows, Swipe{
			SessionID: sessionID,
			Position:  i,
			CardID:    r.Card.ID,
			Title:     r.Card.Title,
			Category:  r.Card.Category,
			ThemeTags: tags,
			Liked:     r.Liked && !r.Skipped,
			Skipped:   r.Skipped,
		})
	}
	return rows
}

package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/vibe-quiz/internal/types"
)

// SaveSession inserts a session or updates its progress fields.
func (db *DB) SaveSession(ctx context.Context, s *QuizSession) error {
	configJSON, err := json.Marshal(s.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal deck config: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO quiz_sessions (id, mode, target_count, config, skip_count, created_at, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET skip_count = $5, completed_at = $7`,
		s.ID, string(s.Mode), s.TargetCount, configJSON, s.SkipCount, s.CreatedAt, s.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", s.ID, err)
	}
	return nil
}

// GetSession retrieves a session by ID. It returns nil when none exists.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID) (*QuizSession, error) {
	var s QuizSession
	var mode string
	var configJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, mode, target_count, config, skip_count, created_at, completed_at
		 FROM quiz_sessions WHERE id = $1`,
		id,
	).Scan(&s.ID, &mode, &s.TargetCount, &configJSON, &s.SkipCount, &s.CreatedAt, &s.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	s.Mode = types.GameMode(mode)
	if err := json.Unmarshal(configJSON, &s.Config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deck config: %w", err)
	}
	return &s, nil
}

// SaveSwipes replaces the stored swipes of a session with results, in order.
func (db *DB) SaveSwipes(ctx context.Context, sessionID uuid.UUID, results []types.SwipeResult) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM swipes WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("failed to clear swipes: %w", err)
	}

	rows := swipeRows(sessionID, results)
	if len(rows) > 0 {
		batch := &pgx.Batch{}
		for _, r := range rows {
			batch.Queue(
				`INSERT INTO swipes (session_id, position, card_id, title, category, theme_tags, liked, skipped)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				r.SessionID, r.Position, r.CardID, r.Title, r.Category, r.ThemeTags, r.Liked, r.Skipped,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert swipes: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit swipes: %w", err)
	}
	return nil
}

// ListSwipes returns a session's swipes in swipe order.
func (db *DB) ListSwipes(ctx context.Context, sessionID uuid.UUID) ([]Swipe, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT session_id, position, card_id, title, category, theme_tags, liked, skipped
		 FROM swipes WHERE session_id = $1 ORDER BY position`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list swipes: %w", err)
	}
	defer rows.Close()

	var swipes []Swipe
	for rows.Next() {
		var s Swipe
		if err := rows.Scan(&s.SessionID, &s.Position, &s.CardID, &s.Title, &s.Category, &s.ThemeTags, &s.Liked, &s.Skipped); err != nil {
			return nil, fmt.Errorf("failed to scan swipe: %w", err)
		}
		swipes = append(swipes, s)
	}
	return swipes, rows.Err()
}

// SaveResult stores a scored quiz result and returns its ID. sessionID may be nil
// for results scored without a server-side session.
func (db *DB) SaveResult(ctx context.Context, sessionID *uuid.UUID, result types.QuizResult) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO quiz_results (id, session_id, personality_id, total_swipes, liked_count, skip_count, result)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, sessionID, result.Personality.ID, result.TotalSwipes, result.LikedCount, result.SkipCount, resultJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save result: %w", err)
	}
	return id, nil
}

// GetResult retrieves a stored result by ID. It returns nil when none exists.
func (db *DB) GetResult(ctx context.Context, id uuid.UUID) (*StoredResult, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, session_id, personality_id, result, created_at
		 FROM quiz_results WHERE id = $1`,
		id,
	)
	r, err := scanResult(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	return r, nil
}

// ListRecentResults returns the newest results first.
func (db *DB) ListRecentResults(ctx context.Context, limit int) ([]StoredResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, session_id, personality_id, result, created_at
		 FROM quiz_results ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []StoredResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, *r)
	}
	return results, rows.Err()
}

func scanResult(row pgx.Row) (*StoredResult, error) {
	var r StoredResult
	var resultJSON []byte
	if err := row.Scan(&r.ID, &r.SessionID, &r.PersonalityID, &resultJSON, &r.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(resultJSON, &r.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return &r, nil
}

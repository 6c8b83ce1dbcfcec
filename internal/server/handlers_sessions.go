package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/vibe-quiz/internal/db"
	"github.com/jonathan/vibe-quiz/internal/enrichment"
	"github.com/jonathan/vibe-quiz/internal/schemas"
	"github.com/jonathan/vibe-quiz/internal/session"
	"github.com/jonathan/vibe-quiz/internal/types"
)

// SessionResponse is a session snapshot plus the card to show next.
type SessionResponse struct {
	session.Snapshot
	Current *types.EnrichedCard `json:"current,omitempty"`
}

// MoveResponse is returned by swipe, skip and undo.
type MoveResponse struct {
	Result    types.SwipeResult   `json:"result"`
	Current   *types.EnrichedCard `json:"current,omitempty"`
	Remaining int                 `json:"remaining"`
	Done      bool                `json:"done"`
	Added     int                 `json:"added,omitempty"`
}

// SessionResultResponse is the scored outcome of a session.
type SessionResultResponse struct {
	SessionID string           `json:"session_id"`
	Result    types.QuizResult `json:"result"`
	ResultID  string           `json:"result_id,omitempty"`
}

type swipeRequest struct {
	Liked *bool `json:"liked"`
}

func currentCard(sess *session.Session) *types.EnrichedCard {
	card, ok := sess.Current()
	if !ok {
		return nil
	}
	enriched := enrichment.Enrich(card)
	return &enriched
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var cfg types.DeckConfig
	if err := s.decodeJSON(w, r, &cfg); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.validateDeckConfig(cfg); err != nil {
		s.writeError(w, err)
		return
	}
	if cfg.TargetCount == 0 && !cfg.Unlimited {
		cfg.TargetCount = s.cfg.DefaultTargetCount
	}

	sess, err := s.sessions.Create(cfg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, SessionResponse{Snapshot: sess.Snapshot(), Current: currentCard(sess)})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, SessionResponse{Snapshot: sess.Snapshot(), Current: currentCard(sess)})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.sessions.Delete(id); err != nil {
		s.writeError(w, err)
		return
	}
	s.mu.Lock()
	delete(s.persisted, id)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSwipe(w http.ResponseWriter, r *http.Request) {
	var req swipeRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Liked == nil {
		s.writeError(w, &ErrValidation{Field: "liked", Message: "is required"})
		return
	}
	s.move(w, r, func(sess *session.Session) (types.SwipeResult, error) {
		return sess.Swipe(*req.Liked)
	})
}

func (s *Server) handleSkip(w http.ResponseWriter, r *http.Request) {
	s.move(w, r, (*session.Session).Skip)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.move(w, r, (*session.Session).Undo)
}

// move applies one action to the session named in the path. Unlimited
// sessions are topped up when they run low.
func (s *Server) move(w http.ResponseWriter, r *http.Request, action func(*session.Session) (types.SwipeResult, error)) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	result, err := action(sess)
	if err != nil {
		s.writeError(w, err)
		return
	}

	added := len(sess.RefillIfLow())
	if added > 0 {
		s.log.Debug("session deck extended", "session_id", sess.ID, "added", added)
	}

	s.jsonResponse(w, http.StatusOK, MoveResponse{
		Result:    result,
		Current:   currentCard(sess),
		Remaining: sess.Remaining(),
		Done:      sess.Done(),
		Added:     added,
	})
}

// handleSessionResults scores a session. Finished sessions are stored once
// when a result store is configured.
func (s *Server) handleSessionResults(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	result := sess.Result()
	if err := schemas.Validate(schemas.QuizResult, result); err != nil {
		s.writeError(w, err)
		return
	}

	resp := SessionResultResponse{SessionID: sess.ID, Result: result}
	if s.results != nil && sess.Done() {
		id, err := s.persistSession(r.Context(), sess, result)
		if err != nil {
			s.log.Warn("failed to persist session result", "session_id", sess.ID, "error", err)
		}
		resp.ResultID = id
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// persistSession stores the session, its swipes and its result, returning
// the result id. Repeated calls return the first id.
func (s *Server) persistSession(ctx context.Context, sess *session.Session, result types.QuizResult) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.persisted[sess.ID]; ok {
		return id, nil
	}

	sessionID, err := uuid.Parse(sess.ID)
	if err != nil {
		return "", fmt.Errorf("invalid session id %q: %w", sess.ID, err)
	}
	snap := sess.Snapshot()
	completed := time.Now().UTC()

	row := &db.QuizSession{
		ID:          sessionID,
		Mode:        snap.Mode,
		TargetCount: snap.TargetCount,
		Config:      sess.Config,
		SkipCount:   snap.SkipCount,
		CreatedAt:   snap.CreatedAt,
		CompletedAt: &completed,
	}
	if err := s.results.SaveSession(ctx, row); err != nil {
		return "", err
	}
	if err := s.results.SaveSwipes(ctx, sessionID, snap.Results); err != nil {
		return "", err
	}
	resultID, err := s.results.SaveResult(ctx, &sessionID, result)
	if err != nil {
		return "", err
	}

	s.persisted[sess.ID] = resultID.String()
	return resultID.String(), nil
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/vibe-quiz/internal/config"
	"github.com/jonathan/vibe-quiz/internal/db"
	"github.com/jonathan/vibe-quiz/internal/deck"
	"github.com/jonathan/vibe-quiz/internal/enrichment"
	"github.com/jonathan/vibe-quiz/internal/images"
	"github.com/jonathan/vibe-quiz/internal/logger"
	"github.com/jonathan/vibe-quiz/internal/server/ratelimit"
	"github.com/jonathan/vibe-quiz/internal/types"
)

type stubProvider struct{}

func (stubProvider) Name() string { return "stub" }

func (stubProvider) Search(_ context.Context, query string, count int) ([]images.Image, error) {
	out := make([]images.Image, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, images.Image{
			URL:    fmt.Sprintf("https://img.test/%d.jpg", i),
			Alt:    query,
			Source: "stub",
		})
	}
	return out, nil
}

type fakeStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*db.QuizSession
	swipes   map[uuid.UUID][]types.SwipeResult
	results  []db.StoredResult
	pingErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions: make(map[uuid.UUID]*db.QuizSession),
		swipes:   make(map[uuid.UUID][]types.SwipeResult),
	}
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) SaveSession(_ context.Context, s *db.QuizSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[s.ID] = s
	return nil
}

func (f *fakeStore) SaveSwipes(_ context.Context, id uuid.UUID, results []types.SwipeResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.swipes[id] = results
	return nil
}

func (f *fakeStore) SaveResult(_ context.Context, sessionID *uuid.UUID, result types.QuizResult) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.results = append(f.results, db.StoredResult{
		ID:            id,
		SessionID:     sessionID,
		PersonalityID: result.Personality.ID,
		Result:        result,
		CreatedAt:     time.Now(),
	})
	return id, nil
}

func (f *fakeStore) GetResult(_ context.Context, id uuid.UUID) (*db.StoredResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.results {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListRecentResults(_ context.Context, _ int) ([]db.StoredResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]db.StoredResult(nil), f.results...), nil
}

func (f *fakeStore) ListSwipes(_ context.Context, sessionID uuid.UUID) ([]db.Swipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.Swipe
	for i, r := range f.swipes[sessionID] {
		out = append(out, db.Swipe{
			SessionID: sessionID,
			Position:  i,
			CardID:    r.Card.ID,
			Title:     r.Card.Title,
			Category:  r.Card.Category,
			ThemeTags: r.Card.ThemeTags,
			Liked:     r.Liked && !r.Skipped,
			Skipped:   r.Skipped,
		})
	}
	return out, nil
}

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	base := []Option{
		WithLogger(logger.Nop()),
		WithBuilder(deck.NewBuilder(deck.WithRand(rand.New(rand.NewPCG(7, 8))))),
		WithImageService(images.NewService(logger.Nop(), 3, stubProvider{})),
		WithRateLimiter(ratelimit.NewLimiter(&ratelimit.Config{Enabled: false})),
	}
	s, err := New(config.Default(), append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]any](t, w)["error"].(string)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decode[map[string]any](t, w)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "not_configured", resp["database"])
	assert.Equal(t, []any{"stub"}, resp["image_providers"])
}

func TestHandleHealth_ReportsStore(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, WithResultStore(store))

	resp := decode[map[string]any](t, do(t, s, http.MethodGet, "/health", nil))
	assert.Equal(t, "ok", resp["database"])

	store.pingErr = fmt.Errorf("connection refused")
	resp = decode[map[string]any](t, do(t, s, http.MethodGet, "/health", nil))
	assert.Equal(t, "unavailable", resp["database"])
}

func TestBuildDeck(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/decks", map[string]any{
		"favorites_text": "puppies, pizza",
		"target_count":   15,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[DeckResponse](t, w)
	require.Len(t, resp.Cards, 15)
	assert.Equal(t, 15, resp.Telemetry.Total)
	assert.Equal(t, 15, resp.Telemetry.Related+resp.Telemetry.Surprise)
	for _, c := range resp.Cards {
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Icon.Icon)
		assert.NotEmpty(t, c.Explanation.Explanation)
		assert.Nil(t, c.Image)
	}
}

func TestBuildDeck_DefaultCount(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/decks", map[string]any{"selected_categories": []string{"animals"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decode[DeckResponse](t, w).Cards, config.Default().DefaultTargetCount)
}

func TestBuildDeck_WithImages(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/decks?images=true", map[string]any{
		"selected_categories": []string{"animals"},
		"target_count":        15,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, c := range decode[DeckResponse](t, w).Cards {
		require.NotNil(t, c.Image)
		assert.NotEmpty(t, c.Image.URL)
	}
}

func TestBuildDeck_Rejected(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		body    any
		wantErr string
	}{
		{name: "invalid json", body: "{not json", wantErr: "invalid JSON"},
		{name: "unknown category", body: map[string]any{"selected_categories": []string{"quantum-chess"}}, wantErr: "unknown category"},
		{name: "target too large", body: map[string]any{"target_count": 500}, wantErr: "TargetCount"},
		{name: "empty category", body: map[string]any{"selected_categories": []string{""}}, wantErr: "validation error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/decks", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, errorMessage(t, w), tt.wantErr)
		})
	}
}

func TestExplainCard(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/cards/explain", types.Card{Title: "Golden Retriever", Category: "animals"})
	require.Equal(t, http.StatusOK, w.Code)
	card := decode[types.EnrichedCard](t, w)
	assert.Equal(t, "Golden Retriever", card.Title)
	assert.NotEmpty(t, card.Explanation.Explanation)
	assert.Equal(t, []string{"animals"}, card.ThemeTags)

	w = do(t, s, http.MethodPost, "/cards/explain", types.Card{Category: "animals"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "title")
}

func TestExplainCard_BareConcept(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/cards/explain", map[string]string{"concept": "Squishmallow"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ref := decode[enrichment.KidReference](t, w)
	assert.Equal(t, "squishmallow", ref.Concept)
	assert.Contains(t, ref.Explanation, "plush")
	assert.NotEmpty(t, ref.FunFact)

	w = do(t, s, http.MethodPost, "/cards/explain", map[string]string{"concept": "Tony Hawk move"})
	require.Equal(t, http.StatusOK, w.Code)
	ref = decode[enrichment.KidReference](t, w)
	assert.NotContains(t, ref.Explanation, "Tony Hawk")
	assert.Contains(t, ref.Explanation, "skateboard flip trick")

	w = do(t, s, http.MethodPost, "/cards/explain", map[string]string{"concept": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	s := newTestServer(t)

	icons := decode[map[string]map[string]types.IconConfig](t, do(t, s, http.MethodGet, "/icons", nil))
	assert.NotEmpty(t, icons["categories"])

	icon := decode[types.IconConfig](t, do(t, s, http.MethodGet, "/icons?title=Pizza&category=foodtreats", nil))
	assert.NotEmpty(t, icon.Icon)

	personalities := decode[map[string][]types.PersonalityType](t, do(t, s, http.MethodGet, "/personalities", nil))
	assert.NotEmpty(t, personalities["personalities"])

	categories := decode[map[string][]map[string]any](t, do(t, s, http.MethodGet, "/categories", nil))
	assert.NotEmpty(t, categories["categories"])
}

func createSession(t *testing.T, s *Server, body map[string]any) SessionResponse {
	t.Helper()
	w := do(t, s, http.MethodPost, "/sessions", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[SessionResponse](t, w)
}

func TestSessionFlow(t *testing.T) {
	s := newTestServer(t)

	created := createSession(t, s, map[string]any{"favorites_text": "dogs", "target_count": 15})
	require.NotNil(t, created.Current)
	assert.Equal(t, types.ModeStandard, created.Mode)
	assert.Equal(t, 15, created.Remaining)
	assert.Equal(t, created.Deck[0].ID, created.Current.ID)

	path := "/sessions/" + created.ID
	var last MoveResponse
	for i := 0; i < 15; i++ {
		w := do(t, s, http.MethodPost, path+"/swipe", map[string]any{"liked": i%2 == 0})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		last = decode[MoveResponse](t, w)
		assert.Equal(t, created.Deck[i].ID, last.Result.Card.ID)
	}
	assert.True(t, last.Done)
	assert.Nil(t, last.Current)
	assert.Equal(t, 0, last.Remaining)

	w := do(t, s, http.MethodPost, path+"/swipe", map[string]any{"liked": true})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, s, http.MethodGet, path+"/results", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[SessionResultResponse](t, w)
	assert.Equal(t, created.ID, result.SessionID)
	assert.NotEmpty(t, result.Result.Personality.ID)
	assert.Equal(t, 15, result.Result.TotalSwipes)
	assert.Equal(t, 8, result.Result.LikedCount)
	assert.Empty(t, result.ResultID)
}

func TestSessionSkipAndUndo(t *testing.T) {
	s := newTestServer(t)
	created := createSession(t, s, map[string]any{"selected_categories": []string{"animals"}, "target_count": 15})
	path := "/sessions/" + created.ID

	w := do(t, s, http.MethodPost, path+"/undo", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "nothing to undo", errorMessage(t, w))

	w = do(t, s, http.MethodPost, path+"/skip", nil)
	require.Equal(t, http.StatusOK, w.Code)
	skipped := decode[MoveResponse](t, w)
	assert.True(t, skipped.Result.Skipped)
	assert.Equal(t, 14, skipped.Remaining)

	w = do(t, s, http.MethodPost, path+"/undo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	undone := decode[MoveResponse](t, w)
	assert.True(t, undone.Result.Skipped)
	assert.Equal(t, created.Deck[0].ID, undone.Current.ID)

	snap := decode[SessionResponse](t, do(t, s, http.MethodGet, path, nil))
	assert.Equal(t, 0, snap.SkipCount)
	assert.Empty(t, snap.Results)
}

func TestSessionErrors(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/sessions/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, errorMessage(t, w), "session not found")

	w = do(t, s, http.MethodPost, "/sessions/missing/swipe", map[string]any{"liked": true})
	assert.Equal(t, http.StatusNotFound, w.Code)

	created := createSession(t, s, map[string]any{"target_count": 15})
	w = do(t, s, http.MethodPost, "/sessions/"+created.ID+"/swipe", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "liked")

	w = do(t, s, http.MethodPost, "/sessions", map[string]any{"target_count": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSession(t *testing.T) {
	s := newTestServer(t)
	created := createSession(t, s, map[string]any{"target_count": 15})

	w := do(t, s, http.MethodDelete, "/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, s, http.MethodGet, "/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodDelete, "/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPruneExpired_ForgetsStoredResultIDs(t *testing.T) {
	s := newTestServer(t)
	live := createSession(t, s, map[string]any{"target_count": 15})
	s.persisted[live.ID] = "result-live"
	s.persisted["gone"] = "result-gone"

	assert.Equal(t, 0, s.pruneExpired(time.Hour))
	assert.Equal(t, map[string]string{live.ID: "result-live"}, s.persisted)

	assert.Equal(t, 1, s.pruneExpired(-time.Second))
	assert.Empty(t, s.persisted)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/sessions/"+live.ID, nil).Code)
}

func TestUnlimitedSessionExtendsDeck(t *testing.T) {
	s := newTestServer(t)
	created := createSession(t, s, map[string]any{"favorites_text": "dogs", "unlimited": true})
	require.Equal(t, types.ModeUnlimited, created.Mode)
	require.Len(t, created.Deck, types.UnlimitedBatchSize)

	added := 0
	for i := 0; i < types.UnlimitedBatchSize && added == 0; i++ {
		w := do(t, s, http.MethodPost, "/sessions/"+created.ID+"/swipe", map[string]any{"liked": true})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decode[MoveResponse](t, w)
		assert.False(t, resp.Done)
		added = resp.Added
	}
	assert.Positive(t, added)

	snap := decode[SessionResponse](t, do(t, s, http.MethodGet, "/sessions/"+created.ID, nil))
	assert.Greater(t, len(snap.Deck), types.UnlimitedBatchSize)
}

func TestSessionResults_Persisted(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, WithResultStore(store))
	created := createSession(t, s, map[string]any{"favorites_text": "pizza", "target_count": 15})
	path := "/sessions/" + created.ID

	w := do(t, s, http.MethodGet, path+"/results", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[SessionResultResponse](t, w).ResultID, "unfinished sessions are not stored")

	for i := 0; i < 15; i++ {
		require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, path+"/swipe", map[string]any{"liked": true}).Code)
	}

	first := decode[SessionResultResponse](t, do(t, s, http.MethodGet, path+"/results", nil))
	require.NotEmpty(t, first.ResultID)
	second := decode[SessionResultResponse](t, do(t, s, http.MethodGet, path+"/results", nil))
	assert.Equal(t, first.ResultID, second.ResultID)

	sessionID := uuid.MustParse(created.ID)
	require.Len(t, store.results, 1)
	assert.Equal(t, &sessionID, store.results[0].SessionID)
	require.Contains(t, store.sessions, sessionID)
	assert.NotNil(t, store.sessions[sessionID].CompletedAt)
	assert.Len(t, store.swipes[sessionID], 15)

	w = do(t, s, http.MethodGet, "/results/"+first.ResultID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first.Result.Personality.ID, decode[db.StoredResult](t, w).PersonalityID)

	w = do(t, s, http.MethodGet, "/results/"+first.ResultID+"/swipes", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	history := decode[SwipesResponse](t, w)
	assert.Equal(t, first.ResultID, history.ResultID)
	require.Len(t, history.Swipes, 15)
	for i, sw := range history.Swipes {
		assert.Equal(t, i, sw.Position)
		assert.True(t, sw.Liked)
	}

	w = do(t, s, http.MethodGet, "/results/"+uuid.NewString()+"/swipes", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func swipeHistory() []types.SwipeResult {
	return []types.SwipeResult{
		{Card: types.Card{ID: "1", Title: "Puppies", ThemeTags: []string{"animals"}, Category: "animals"}, Liked: true},
		{Card: types.Card{ID: "2", Title: "Kittens", ThemeTags: []string{"animals"}, Category: "animals"}, Liked: true},
		{Card: types.Card{ID: "3", Title: "Pizza", ThemeTags: []string{"food"}, Category: "foodtreats"}, Liked: false},
		{Card: types.Card{ID: "4", Title: "Rockets", ThemeTags: []string{"space"}, Category: "space"}, Skipped: true},
	}
}

func TestScoreResults(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/results", ScoreRequest{Results: swipeHistory()})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[ScoreResponse](t, w)
	assert.Equal(t, 4, resp.Result.TotalSwipes)
	assert.Equal(t, 2, resp.Result.LikedCount)
	assert.Equal(t, 1, resp.Result.SkipCount)
	assert.NotEmpty(t, resp.Result.Personality.ID)
	assert.Empty(t, resp.ResultID)

	w = do(t, s, http.MethodPost, "/results", ScoreRequest{Results: swipeHistory(), Save: true})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestScoreResults_Empty(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/results", ScoreRequest{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[ScoreResponse](t, w)
	assert.Equal(t, 0, resp.Result.TotalSwipes)
	assert.NotEmpty(t, resp.Result.Personality.ID)
}

func TestStoredResults(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, WithResultStore(store))

	w := do(t, s, http.MethodPost, "/results", ScoreRequest{Results: swipeHistory(), Save: true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	saved := decode[ScoreResponse](t, w)
	require.NotEmpty(t, saved.ResultID)

	list := decode[map[string][]db.StoredResult](t, do(t, s, http.MethodGet, "/results?limit=5", nil))
	require.Len(t, list["results"], 1)
	assert.Equal(t, saved.ResultID, list["results"][0].ID.String())
	assert.Nil(t, list["results"][0].SessionID)

	history := decode[SwipesResponse](t, do(t, s, http.MethodGet, "/results/"+saved.ResultID+"/swipes", nil))
	assert.NotNil(t, history.Swipes)
	assert.Empty(t, history.Swipes)

	w = do(t, s, http.MethodGet, "/results/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodGet, "/results/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodGet, "/results?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoredResults_Unavailable(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/results", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "result storage is not available", errorMessage(t, w))

	w = do(t, s, http.MethodGet, "/results/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestWithRateLimit(t *testing.T) {
	limiter := ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})
	s := newTestServer(t, WithRateLimiter(limiter))

	w := do(t, s, http.MethodGet, "/personalities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = do(t, s, http.MethodGet, "/personalities", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "rate_limit_exceeded", errorMessage(t, w))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	w = do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithCORS(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("Origin", "https://quiz.example")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/decks", nil)
	req.Header.Set("Origin", "https://quiz.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Less(t, w.Code, 300)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestWithCORS_RestrictedOrigins(t *testing.T) {
	s := newTestServer(t, WithAllowedOrigins("https://quiz.example"))

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("Origin", "https://other.example")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://quiz.example")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, "https://quiz.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestExtractClientID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "203.0.113.9:51234"
	assert.Equal(t, "203.0.113.9", s.extractClientID(req))

	req.RemoteAddr = "not-a-host-port"
	assert.Equal(t, "not-a-host-port", s.extractClientID(req))
}

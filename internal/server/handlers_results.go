package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/vibe-quiz/internal/db"
	"github.com/jonathan/vibe-quiz/internal/schemas"
	"github.com/jonathan/vibe-quiz/internal/scoring"
	"github.com/jonathan/vibe-quiz/internal/types"
)

// maxScoredSwipes bounds POST /results.
const maxScoredSwipes = 1000

// ScoreRequest is the body of POST /results.
type ScoreRequest struct {
	Results []types.SwipeResult `json:"results"`
	Save    bool                `json:"save"`
}

// ScoreResponse is returned by POST /results.
type ScoreResponse struct {
	Result   types.QuizResult `json:"result"`
	ResultID string           `json:"result_id,omitempty"`
}

// handleScoreResults scores a swipe history sent by the client.
func (s *Server) handleScoreResults(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if len(req.Results) > maxScoredSwipes {
		s.writeError(w, &ErrValidation{Field: "results", Message: "too many swipes"})
		return
	}
	if req.Save && s.results == nil {
		s.writeError(w, &ErrUnavailable{Feature: "result storage"})
		return
	}

	result := scoring.Summarize(req.Results)
	if err := schemas.Validate(schemas.QuizResult, result); err != nil {
		s.writeError(w, err)
		return
	}

	resp := ScoreResponse{Result: result}
	if req.Save {
		id, err := s.results.SaveResult(r.Context(), nil, result)
		if err != nil {
			s.writeError(w, err)
			return
		}
		resp.ResultID = id.String()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		s.writeError(w, &ErrUnavailable{Feature: "result storage"})
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 100 {
			s.writeError(w, &ErrValidation{Field: "limit", Message: "must be between 0 and 100"})
			return
		}
		limit = n
	}

	results, err := s.results.ListRecentResults(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if results == nil {
		results = []db.StoredResult{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	stored, ok := s.storedResult(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, stored)
}

// SwipesResponse is returned by GET /results/{id}/swipes.
type SwipesResponse struct {
	ResultID string     `json:"result_id"`
	Swipes   []db.Swipe `json:"swipes"`
}

// handleResultSwipes returns the swipe history stored with a result. Results
// scored without a session have none.
func (s *Server) handleResultSwipes(w http.ResponseWriter, r *http.Request) {
	stored, ok := s.storedResult(w, r)
	if !ok {
		return
	}
	swipes := []db.Swipe{}
	if stored.SessionID != nil {
		rows, err := s.results.ListSwipes(r.Context(), *stored.SessionID)
		if err != nil {
			s.writeError(w, err)
			return
		}
		if rows != nil {
			swipes = rows
		}
	}
	s.jsonResponse(w, http.StatusOK, SwipesResponse{ResultID: stored.ID.String(), Swipes: swipes})
}

// storedResult loads the result named in the path, writing the error response itself.
func (s *Server) storedResult(w http.ResponseWriter, r *http.Request) (*db.StoredResult, bool) {
	if s.results == nil {
		s.writeError(w, &ErrUnavailable{Feature: "result storage"})
		return nil, false
	}
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return nil, false
	}

	stored, err := s.results.GetResult(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	if stored == nil {
		s.writeError(w, &ErrNotFound{Resource: "result", ID: raw})
		return nil, false
	}
	return stored, true
}

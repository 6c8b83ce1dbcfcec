package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/vibe-quiz/internal/images"
	"github.com/jonathan/vibe-quiz/internal/sports"
	"github.com/jonathan/vibe-quiz/internal/types"
)

// maxImageCount bounds GET /api/images.
const maxImageCount = 20

// ImagesResponse is returned by GET /api/images.
type ImagesResponse struct {
	Query  string         `json:"query"`
	Images []images.Image `json:"images"`
}

// RosterResponse is a roster plus the cards built from it.
type RosterResponse struct {
	Roster *sports.Roster       `json:"roster"`
	Cards  []types.EnrichedCard `json:"cards"`
}

func (s *Server) handleImages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("q"))
	if query == "" {
		s.writeError(w, &ErrValidation{Field: "q", Message: "is required"})
		return
	}
	count := 0
	if raw := q.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxImageCount {
			s.writeError(w, &ErrValidation{Field: "count", Message: "must be between 1 and 20"})
			return
		}
		count = n
	}

	found, err := s.images.Search(r.Context(), query, count)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ImagesResponse{Query: query, Images: found})
}

func (s *Server) handleDetectTeam(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, sports.DetectSportsTeamQuery(r.URL.Query().Get("q")))
}

// handleRoster returns a team roster with player and team-themed cards.
func (s *Server) handleRoster(w http.ResponseWriter, r *http.Request) {
	team := strings.TrimSpace(r.URL.Query().Get("team"))
	if team == "" {
		s.writeError(w, &ErrValidation{Field: "team", Message: "is required"})
		return
	}

	roster, err := s.rosters.GetRoster(r.Context(), team)
	if err != nil {
		s.writeError(w, err)
		return
	}

	cards := append(sports.PlayerCards(roster.Team, roster.Players), sports.ThemedCards(roster.Team)...)
	enriched, err := enrichCards(r.Context(), cards)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, RosterResponse{Roster: roster, Cards: enriched})
}

// handleClearRosterCache drops cached rosters so the next request refetches.
func (s *Server) handleClearRosterCache(w http.ResponseWriter, r *http.Request) {
	if err := s.rosters.ClearCache(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	s.log.Info("roster cache cleared")
	w.WriteHeader(http.StatusNoContent)
}

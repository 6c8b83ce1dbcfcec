package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/vibe-quiz/internal/sports"
)

const dodgersRoster = `{"roster":[
	{"person":{"id":660271,"fullName":"Shohei Ohtani","firstName":"Shohei","lastName":"Ohtani"},"jerseyNumber":"17","position":{"abbreviation":"TWP"}},
	{"person":{"id":605141,"fullName":"Mookie Betts"},"jerseyNumber":"50","position":{"abbreviation":"SS"}}
]}`

func newStatsAPI(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/teams/119/roster/active" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(dodgersRoster))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHandleImages(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/images?q=puppies&count=2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[ImagesResponse](t, w)
	assert.Equal(t, "puppies", resp.Query)
	require.Len(t, resp.Images, 2)
	assert.Equal(t, "stub", resp.Images[0].Source)

	w = do(t, s, http.MethodGet, "/api/images?q=puppies", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[ImagesResponse](t, w).Images, 3)
}

func TestHandleImages_Invalid(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{
		"/api/images",
		"/api/images?q=%20",
		"/api/images?q=cats&count=0",
		"/api/images?q=cats&count=50",
		"/api/images?q=cats&count=many",
	} {
		w := do(t, s, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestHandleDetectTeam(t *testing.T) {
	s := newTestServer(t)

	d := decode[sports.Detection](t, do(t, s, http.MethodGet, "/api/sports/detect?q=dodgers+players", nil))
	assert.True(t, d.IsTeamQuery)
	require.NotNil(t, d.Team)
	assert.Equal(t, "dodgers", d.Team.Slug)

	d = decode[sports.Detection](t, do(t, s, http.MethodGet, "/api/sports/detect?q=rainbow+cupcakes", nil))
	assert.False(t, d.IsTeamQuery)
	assert.Nil(t, d.Team)
}

func TestHandleRoster(t *testing.T) {
	api := newStatsAPI(t)
	s := newTestServer(t, WithRosterService(sports.NewRosterService(sports.WithBaseURL(api.URL))))

	w := do(t, s, http.MethodGet, "/api/sports/roster?team=dodgers", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[RosterResponse](t, w)
	require.NotNil(t, resp.Roster)
	assert.Equal(t, sports.SourceAPI, resp.Roster.Source)
	require.Len(t, resp.Roster.Players, 2)
	assert.Equal(t, "Betts", resp.Roster.Players[1].LastName)

	themed := sports.ThemedCards(resp.Roster.Team)
	require.Len(t, resp.Cards, 2+len(themed))
	assert.Equal(t, "Shohei Ohtani", resp.Cards[0].Title)
	require.NotNil(t, resp.Cards[0].Enrichment)
	assert.Equal(t, "Dodgers", resp.Cards[0].Enrichment.TeamName)
	for _, c := range resp.Cards {
		assert.True(t, c.IsRelated)
		assert.NotEmpty(t, c.Explanation.Explanation)
	}

	again := decode[RosterResponse](t, do(t, s, http.MethodGet, "/api/sports/roster?team=LA+Dodgers", nil))
	assert.True(t, again.Roster.Cached)
}

func TestHandleRoster_Fallback(t *testing.T) {
	api := newStatsAPI(t)
	s := newTestServer(t, WithRosterService(sports.NewRosterService(sports.WithBaseURL(api.URL))))

	w := do(t, s, http.MethodGet, "/api/sports/roster?team=yankees", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[RosterResponse](t, w)
	assert.Equal(t, sports.SourceFallback, resp.Roster.Source)
	assert.NotEmpty(t, resp.Roster.Warning)
	assert.NotEmpty(t, resp.Roster.Players)
}

func TestHandleRoster_Errors(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/sports/roster", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodGet, "/api/sports/roster?team=quidditch", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearRosterCache(t *testing.T) {
	api := newStatsAPI(t)
	s := newTestServer(t, WithRosterService(sports.NewRosterService(sports.WithBaseURL(api.URL))))

	first := decode[RosterResponse](t, do(t, s, http.MethodGet, "/api/sports/roster?team=dodgers", nil))
	assert.False(t, first.Roster.Cached)

	w := do(t, s, http.MethodDelete, "/api/sports/roster/cache", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	again := decode[RosterResponse](t, do(t, s, http.MethodGet, "/api/sports/roster?team=dodgers", nil))
	assert.False(t, again.Roster.Cached)
	assert.Equal(t, sports.SourceAPI, again.Roster.Source)
}

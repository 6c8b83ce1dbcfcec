package sports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeams_Table(t *testing.T) {
	teams := Teams()
	require.Len(t, teams, 30)

	slugs := make(map[string]bool)
	ids := make(map[int]bool)
	for _, team := range teams {
		assert.False(t, slugs[team.Slug], "duplicate slug %s", team.Slug)
		assert.False(t, ids[team.MLBID], "duplicate id %d", team.MLBID)
		slugs[team.Slug] = true
		ids[team.MLBID] = true
		assert.NotEmpty(t, team.Stadium)
		assert.Equal(t, League, team.League())
	}

	for alias, slug := range teamAliases {
		_, ok := TeamBySlug(slug)
		assert.True(t, ok, "alias %q points at unknown slug %q", alias, slug)
	}

	teams[0].Name = "changed"
	assert.Equal(t, "Dodgers", Teams()[0].Name)
}

func TestResolveTeam(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"Dodgers", "dodgers"},
		{"LA Dodgers", "dodgers"},
		{"  cubbies ", "cubs"},
		{"red-sox", "red-sox"},
		{"Red Sox players", "red-sox"},
		{"St. Louis Cardinals", "cardinals"},
		{"yankees baseball team", "yankees"},
		{"Seattle", "mariners"},
		{"I really want the New York Mets roster", "mets"},
		{"my kid loves the chicago white sox", "white-sox"},
		{"Detroit", "tigers"},
		{"d-backs", "diamondbacks"},
		{"a's", "athletics"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			team, ok := ResolveTeam(tt.query)
			require.True(t, ok)
			assert.Equal(t, tt.want, team.Slug)
		})
	}
}

func TestResolveTeam_Unknown(t *testing.T) {
	for _, q := range []string{"", "team", "baseball players", "pokemon cards", "grays and arrays", "xyz"} {
		_, ok := ResolveTeam(q)
		assert.False(t, ok, "query %q", q)
	}
}

func TestResolveTeamOrError(t *testing.T) {
	_, err := ResolveTeamOrError("quidditch")
	var notFound *TeamNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "quidditch", notFound.Query)

	team, err := ResolveTeamOrError("phillies")
	require.NoError(t, err)
	assert.Equal(t, 143, team.MLBID)
}

func TestDetectSportsTeamQuery(t *testing.T) {
	d := DetectSportsTeamQuery("show me Astros players")
	assert.True(t, d.IsTeamQuery)
	require.NotNil(t, d.Team)
	assert.Equal(t, "astros", d.Team.Slug)

	d = DetectSportsTeamQuery("my favorite baseball team")
	assert.True(t, d.IsTeamQuery)
	assert.Nil(t, d.Team)

	d = DetectSportsTeamQuery("cats and pizza")
	assert.False(t, d.IsTeamQuery)
	assert.Nil(t, d.Team)
}

func TestPositionName(t *testing.T) {
	assert.Equal(t, "Shortstop", PositionName("SS"))
	assert.Equal(t, "Starting Pitcher", PositionName("SP"))
	assert.Equal(t, "XX", PositionName("XX"))
}

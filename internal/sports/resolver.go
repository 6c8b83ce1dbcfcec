package sports

import (
	"sort"
	"strings"
)

// fillerWords are dropped from a query before matching.
var fillerWords = map[string]bool{
	"player": true, "players": true, "baseball": true, "team": true, "teams": true,
	"roster": true, "mlb": true, "the": true,
}

// teamQueryWords mark text as a request about a team even when no team resolves.
var teamQueryWords = []string{"players", "team", "roster", "baseball", "mlb"}

type aliasEntry struct {
	alias string
	slug  string
}

// phraseAliases are the multi-word aliases, longest first, used to find a team
// inside longer text. Single-word aliases like "cards" are too ambiguous for that.
var phraseAliases = func() []aliasEntry {
	var out []aliasEntry
	for alias, slug := range teamAliases {
		if strings.Contains(alias, " ") {
			out = append(out, aliasEntry{alias: alias, slug: slug})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].alias) != len(out[j].alias) {
			return len(out[i].alias) > len(out[j].alias)
		}
		return out[i].alias < out[j].alias
	})
	return out
}()

// Detection is the result of scanning free text for a team request.
type Detection struct {
	IsTeamQuery bool      `json:"is_team_query"`
	Team        *TeamInfo `json:"team"`
}

func normalizeQuery(query string) string {
	lower := strings.ToLower(strings.TrimSpace(query))
	lower = strings.ReplaceAll(lower, ".", "")
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ','
	})
	kept := fields[:0]
	for _, f := range fields {
		if !fillerWords[f] {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// containsPhrase reports whether phrase appears in text on word boundaries.
func containsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}

// ResolveTeam maps user text such as "LA Dodgers" or "cubbies" to a team.
// Matching tries aliases, then slugs, then name or city mentions, then single words.
func ResolveTeam(query string) (TeamInfo, bool) {
	normalized := normalizeQuery(query)
	if normalized == "" {
		return TeamInfo{}, false
	}

	if slug, ok := teamAliases[normalized]; ok {
		return TeamBySlug(slug)
	}
	if t, ok := TeamBySlug(normalized); ok {
		return t, true
	}

	for _, t := range mlbTeams {
		name := strings.ToLower(t.Name)
		switch {
		case containsPhrase(normalized, name),
			containsPhrase(normalized, t.Slug),
			len(normalized) >= 3 && strings.Contains(strings.ToLower(t.FullName), normalized),
			strings.ToLower(t.City) == normalized:
			return t, true
		}
	}

	for _, a := range phraseAliases {
		if containsPhrase(normalized, a.alias) {
			return TeamBySlug(a.slug)
		}
	}

	for _, word := range strings.Fields(normalized) {
		if len(word) < 3 {
			continue
		}
		for _, t := range mlbTeams {
			if strings.ToLower(t.Name) == word || t.Slug == word || strings.ToLower(t.City) == word {
				return t, true
			}
		}
	}

	return TeamInfo{}, false
}

// ResolveTeamOrError is ResolveTeam with a TeamNotFoundError for unknown queries.
func ResolveTeamOrError(query string) (TeamInfo, error) {
	t, ok := ResolveTeam(query)
	if !ok {
		return TeamInfo{}, &TeamNotFoundError{Query: query}
	}
	return t, nil
}

// DetectSportsTeamQuery reports whether text asks about a team and which team it names.
func DetectSportsTeamQuery(text string) Detection {
	lower := strings.ToLower(text)
	hasKeyword := false
	for _, kw := range teamQueryWords {
		if strings.Contains(lower, kw) {
			hasKeyword = true
			break
		}
	}

	d := Detection{IsTeamQuery: hasKeyword}
	if t, ok := ResolveTeam(text); ok {
		d.Team = &t
		d.IsTeamQuery = true
	}
	return d
}

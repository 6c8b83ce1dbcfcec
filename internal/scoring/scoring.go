// Package scoring turns a swipe history into ranked themes and a personality archetype.
//
// Scoring is a pure fold over the full history: nothing is cached between
// calls, so the same history always produces the same result.
package scoring

import (
	"sort"

	"github.com/jonathan/vibe-quiz/internal/taxonomy"
	"github.com/jonathan/vibe-quiz/internal/types"
)

const (
	// MaxThemes bounds the theme list returned by CalculateThemeScores.
	MaxThemes = 5

	likePoints    = 1.0
	dislikePoints = -0.5
)

// CalculateThemeScores ranks themes by accumulated swipe points. Likes add 1
// and dislikes subtract 0.5, to every theme a card's tags resolve to and to the
// card's own category. Skips are ignored. Only positive totals are returned.
func CalculateThemeScores(results []types.SwipeResult) []types.ThemeScore {
	totals := make(map[string]float64)
	var order []string
	add := func(theme string, points float64) {
		if _, ok := totals[theme]; !ok {
			order = append(order, theme)
		}
		totals[theme] += points
	}

	for _, r := range results {
		if r.Skipped {
			continue
		}
		points := dislikePoints
		if r.Liked {
			points = likePoints
		}
		for _, tag := range r.Card.ThemeTags {
			if theme := taxonomy.ThemeForKeyword(tag); theme != taxonomy.Other {
				add(theme, points)
			}
		}
		if r.Card.Category != "" {
			add(r.Card.Category, points)
		}
	}

	scores := make([]types.ThemeScore, 0, len(order))
	for _, theme := range order {
		if totals[theme] <= 0 {
			continue
		}
		scores = append(scores, types.ThemeScore{
			Theme: theme,
			Score: totals[theme],
			Emoji: taxonomy.ThemeEmoji(theme),
		})
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	if len(scores) > MaxThemes {
		scores = scores[:MaxThemes]
	}
	return scores
}

// CalculatePersonalityType picks the archetype with the highest weighted score
// over liked cards. Weights come from every resolvable tag and from the card's
// category, so a tag equal to the category counts twice. Ties keep the archetype
// that appears first in the catalog. With no positive score the most-liked
// category's top archetype is used, and failing that the first archetype.
func CalculatePersonalityType(results []types.SwipeResult) types.PersonalityType {
	catalog := taxonomy.Personalities()
	index := make(map[string]int, len(catalog))
	for i, p := range catalog {
		index[p.ID] = i
	}
	scores := make([]int, len(catalog))
	apply := func(theme string) {
		for _, w := range taxonomy.PersonalityWeights(theme) {
			if i, ok := index[w.PersonalityID]; ok {
				scores[i] += w.Weight
			}
		}
	}

	for _, r := range results {
		if r.Skipped || !r.Liked {
			continue
		}
		for _, tag := range r.Card.ThemeTags {
			apply(taxonomy.ThemeForKeyword(tag))
		}
		apply(r.Card.Category)
	}

	best, bestScore := 0, 0
	for i, s := range scores {
		if s > bestScore {
			best, bestScore = i, s
		}
	}
	if bestScore > 0 {
		return catalog[best]
	}
	return fallbackPersonality(results, catalog)
}

func fallbackPersonality(results []types.SwipeResult, catalog []types.PersonalityType) types.PersonalityType {
	counts := make(map[string]int)
	var order []string
	for _, r := range results {
		if r.Skipped || !r.Liked || r.Card.Category == "" {
			continue
		}
		if counts[r.Card.Category] == 0 {
			order = append(order, r.Card.Category)
		}
		counts[r.Card.Category]++
	}

	topCategory, topCount := "", 0
	for _, c := range order {
		if counts[c] > topCount {
			topCategory, topCount = c, counts[c]
		}
	}
	if topCategory != "" {
		if id, ok := taxonomy.TopPersonalityForTheme(topCategory); ok {
			if p, ok := taxonomy.PersonalityByID(id); ok {
				return p
			}
		}
	}
	return catalog[0]
}

// Summarize builds the full quiz result for a swipe history.
func Summarize(results []types.SwipeResult) types.QuizResult {
	out := types.QuizResult{
		Personality: CalculatePersonalityType(results),
		TopThemes:   CalculateThemeScores(results),
		TotalSwipes: len(results),
	}
	for _, r := range results {
		switch {
		case r.Skipped:
			out.SkipCount++
		case r.Liked:
			out.LikedCount++
		}
	}
	return out
}

package expansion

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/vibe-quiz/internal/enrichment"
	"github.com/jonathan/vibe-quiz/internal/taxonomy"
	"github.com/jonathan/vibe-quiz/internal/types"
)

var twoCapitalizedWords = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`)

func TestConcepts_NameLikeTitlesOutsideSportsAreNotAthletes(t *testing.T) {
	checked := 0
	for _, group := range concepts {
		category := taxonomy.ThemeForKeyword(group.Key)
		if category == "sports" {
			continue
		}
		for _, title := range group.Expansions {
			if !twoCapitalizedWords.MatchString(title) {
				continue
			}
			checked++
			card := types.Card{Title: title, Category: category, ThemeTags: []string{group.Key, category}}
			result := enrichment.GenerateCardExplanation(card, nil)
			text := strings.ToLower(result.Explanation + " " + result.FunFact)
			assert.NotContains(t, text, "athlete", "%s (%s)", title, group.Key)
			assert.NotEqual(t, "sportsplayer", result.Category, "%s (%s)", title, group.Key)
		}
	}
	assert.Greater(t, checked, 5)
}

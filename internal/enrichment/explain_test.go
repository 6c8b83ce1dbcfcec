package enrichment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/vibe-quiz/internal/types"
)

func lower(s string) string { return strings.ToLower(s) }

func TestGenerateCardExplanation_DogBreedIsNotAthlete(t *testing.T) {
	card := types.Card{Title: "German Shepherd", Category: "animals", ThemeTags: []string{"dogs"}}
	result := GenerateCardExplanation(card, nil)

	text := lower(result.Explanation + " " + result.FunFact)
	assert.NotContains(t, text, "athlete")
	assert.NotContains(t, text, "professional")
	assert.True(t, strings.Contains(text, "dog") || strings.Contains(text, "pet") || strings.Contains(text, "breed"))
	assert.Equal(t, "pets", result.Category)
}

func TestGenerateCardExplanation_NameShapedTitlesNeedSportsContext(t *testing.T) {
	tests := []struct {
		card types.Card
		want string
	}{
		{types.Card{Title: "Shiba Inu", Category: "animals", ThemeTags: []string{"dogs", "animals"}}, "pets"},
		{types.Card{Title: "Taco Tuesday", Category: "foodtreats", ThemeTags: []string{"tacos", "foodtreats"}}, "food"},
		{types.Card{Title: "Dippin Dots", Category: "foodtreats", ThemeTags: []string{"icecream", "foodtreats"}}, "food"},
		{types.Card{Title: "Clownfish Nemo", Category: "animals", ThemeTags: []string{"fish", "animals"}}, "animals"},
		{types.Card{Title: "Jane Doe"}, "other"},
	}
	for _, tt := range tests {
		t.Run(tt.card.Title, func(t *testing.T) {
			result := GenerateCardExplanation(tt.card, nil)
			text := lower(result.Explanation + " " + result.FunFact)
			assert.NotContains(t, text, "athlete")
			assert.Equal(t, tt.want, result.Category)
		})
	}

	athlete := GenerateCardExplanation(types.Card{Title: "Jane Doe", ThemeTags: []string{"sportsplayer"}}, nil)
	assert.Contains(t, athlete.Explanation, "professional athlete")
}

func TestGenerateCardExplanation_Patterns(t *testing.T) {
	tests := []struct {
		title    string
		category string
		tags     []string
		contains string
		want     string
	}{
		{"Corgi butt", "animals", []string{"dogs"}, "dog breed", "pets"},
		{"Maine Coon fluff", "animals", []string{"cats"}, "type of cat", "pets"},
		{"Border Collie", "animals", nil, "loyal companion", "pets"},
		{"Mike Trout", "sports", []string{"baseball"}, "professional athlete", "sportsplayer"},
		{"French tips classic", "nails", []string{"nails"}, "white tips", "nails"},
		{"Press-on nails easy", "nails", []string{"nails"}, "fake nails", "nails"},
		{"Glitter nails sparkle", "nails", []string{"nails"}, "sparkly nail style", "nails"},
		{"Lip gloss shiny", "makeup", []string{"makeup"}, "on your lips", "makeup"},
		{"Sparkly eyeshadow", "makeup", []string{"makeup"}, "eyelids", "makeup"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			result := GenerateCardExplanation(types.Card{Title: tt.title, Category: tt.category, ThemeTags: tt.tags}, nil)
			assert.Contains(t, result.Explanation, tt.contains)
			assert.Equal(t, tt.want, result.Category)
			assert.NotEmpty(t, result.FunFact)
		})
	}
}

func TestGenerateCardExplanation_GlitterOutsideNailsUsesCategory(t *testing.T) {
	result := GenerateCardExplanation(types.Card{Title: "Glitter art", Category: "artcrafts", ThemeTags: []string{"artcrafts"}}, nil)
	assert.Equal(t, "crafts", result.Category)
	assert.NotContains(t, result.Explanation, "nail")
}

func TestGenerateCardExplanation_PlayerEnrichment(t *testing.T) {
	card := types.Card{Title: "Mike Trout", Category: "sports", ThemeTags: []string{"baseball", "player"}}
	enrichment := &types.CardEnrichment{PlayerPosition: "Outfielder", TeamName: "Angels", Sport: "baseball"}

	result := GenerateCardExplanation(card, enrichment)

	assert.Equal(t, "sportsplayer", result.Category)
	assert.Contains(t, result.Explanation, "Mike Trout")
	assert.Contains(t, result.Explanation, "Angels")
	assert.NotContains(t, result.Explanation, "{")
	assert.NotEmpty(t, result.FunFact)
}

func TestGenerateCardExplanation_PlayerEnrichmentDefaultsSport(t *testing.T) {
	card := types.Card{Title: "Shohei Ohtani Jr", Category: "sports"}
	enrichment := &types.CardEnrichment{PlayerPosition: "Pitcher", TeamName: "Dodgers"}

	result := GenerateCardExplanation(card, enrichment)
	assert.Equal(t, "sportsplayer", result.Category)
	assert.NotContains(t, result.Explanation, "{sport}")
}

func TestGenerateCardExplanation_CategoryTemplates(t *testing.T) {
	tests := []struct {
		card types.Card
		want string
	}{
		{types.Card{Title: "Pepperoni slice pull", Category: "foodtreats", ThemeTags: []string{"pizza", "foodtreats"}}, "food"},
		{types.Card{Title: "Diamond pickaxe", Category: "videogames", ThemeTags: []string{"videogames"}}, "videogames"},
		{types.Card{Title: "Rocket launch", Category: "space", ThemeTags: []string{"space"}}, "space"},
		{types.Card{Title: "Home run swing", Category: "sports", ThemeTags: []string{"baseball", "sports"}}, "baseball"},
		{types.Card{Title: "Dog park fun", Category: "animals", ThemeTags: []string{"dogs", "animals"}}, "pets"},
		{types.Card{Title: "Nail stencils shapes", Category: "beauty", ThemeTags: []string{"beauty"}}, "nails"},
		{types.Card{Title: "Mascara lashes", Category: "beauty", ThemeTags: []string{"beauty"}}, "makeup"},
		{types.Card{Title: "Something odd", Category: "zzz", ThemeTags: []string{"zzz"}}, "other"},
	}
	for _, tt := range tests {
		t.Run(tt.card.Title, func(t *testing.T) {
			result := GenerateCardExplanation(tt.card, nil)
			assert.Equal(t, tt.want, result.Category)
			assert.Contains(t, result.Explanation, tt.card.Title)
			assert.Greater(t, len(result.Explanation), 10)
			assert.NotEqual(t, GenericFallback, result.Explanation)
		})
	}
}

func TestGenerateCardExplanation_Deterministic(t *testing.T) {
	card := types.Card{Title: "Waffle cone stack", Category: "foodtreats", ThemeTags: []string{"icecream"}}
	assert.Equal(t, GenerateCardExplanation(card, nil), GenerateCardExplanation(card, nil))
}

func TestGenerateCardExplanation_TemplatesVaryAcrossTitles(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		card := types.Card{Title: fmt.Sprintf("Thing number %d", i), Category: "music", ThemeTags: []string{"music"}}
		result := GenerateCardExplanation(card, nil)
		seen[strings.Replace(result.Explanation, card.Title, "{title}", 1)] = true
	}
	assert.Len(t, seen, len(templateFamilies["music"].Templates))
}

func TestExplanationForCard(t *testing.T) {
	card := types.Card{Title: "Bunny hop", Category: "animals", ThemeTags: []string{"rabbits", "animals"}}
	assert.Equal(t, GenerateCardExplanation(card, nil), ExplanationForCard(card, nil))
}

func TestExplanationForCard_RecoversFromPanic(t *testing.T) {
	saved := templateFamilies["music"]
	templateFamilies["music"] = templateFamily{}
	defer func() { templateFamilies["music"] = saved }()

	result := ExplanationForCard(types.Card{Title: "Drum solo epic", Category: "music", ThemeTags: []string{"music"}}, nil)
	assert.Equal(t, "unknown", result.Category)
	assert.Contains(t, result.Explanation, "Drum solo epic")
	assert.Contains(t, result.Explanation, "might be something new to you")
}

func TestStableHash(t *testing.T) {
	assert.Equal(t, stableHash("hello"), stableHash("hello"))
	assert.GreaterOrEqual(t, stableHash(strings.Repeat("zzzzzzzz", 40)), 0)
	assert.Equal(t, 0, stableHash(""))
}

func TestEnrich(t *testing.T) {
	enriched := Enrich(types.Card{Title: "Golden Retriever"})
	assert.Equal(t, "Golden Retriever", enriched.Query)
	assert.Equal(t, "other", enriched.Category)
	assert.Equal(t, []string{"other"}, enriched.ThemeTags)
	assert.Equal(t, "🐕", enriched.Icon.Icon)
	require.NotEmpty(t, enriched.Explanation.Explanation)
}

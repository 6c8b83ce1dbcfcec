package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeywords_Basic(t *testing.T) {
	result := ParseKeywords("I like cats, dogs and pizza")
	assert.Contains(t, result, "cats")
	assert.Contains(t, result, "dogs")
	assert.Contains(t, result, "pizza")
	assert.NotContains(t, result, "i")
	assert.NotContains(t, result, "and")
	assert.NotContains(t, result, "like")
}

func TestParseKeywords_StopWordsAndShortWords(t *testing.T) {
	result := ParseKeywords("The cats are really cute")
	assert.Equal(t, []string{"cats", "cute"}, result)
}

func TestParseKeywords_OnlyStopWords(t *testing.T) {
	assert.Empty(t, ParseKeywords("the and but really very"))
	assert.Empty(t, ParseKeywords(""))
}

func TestParseKeywords_DeduplicatesInOrder(t *testing.T) {
	assert.Equal(t, []string{"cats"}, ParseKeywords("cats CATS cats!"))
	assert.Equal(t, []string{"dogs", "cats", "pizza"}, ParseKeywords("dogs, cats; pizza. dogs"))
}

func TestRelatedTerms(t *testing.T) {
	t.Run("direct key", func(t *testing.T) {
		result := RelatedTerms("cats")
		assert.Contains(t, result, "kittens")
	})

	t.Run("singular resolves to plural key", func(t *testing.T) {
		result := RelatedTerms("dog")
		assert.Contains(t, result, "puppies")
	})

	t.Run("term lookup returns key first", func(t *testing.T) {
		result := RelatedTerms("kittens")
		assert.NotEmpty(t, result)
		assert.Equal(t, "cats", result[0])
		assert.NotContains(t, result, "kittens")
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Empty(t, RelatedTerms("xyznonexistent"))
		assert.Empty(t, RelatedTerms(""))
	})

	t.Run("returns a copy", func(t *testing.T) {
		result := RelatedTerms("cats")
		result[0] = "mutated"
		assert.Equal(t, "kittens", RelatedTerms("cats")[0])
	})
}

func TestThemeForKeyword(t *testing.T) {
	tests := []struct {
		keyword  string
		expected string
	}{
		{"cats", "animals"},
		{"dogs", "animals"},
		{"puppies", "animals"},
		{"pizza", "foodtreats"},
		{"icecream", "foodtreats"},
		{"soccer", "sports"},
		{"basketball", "sports"},
		{"robots", "techgadgets"},
		{"coding", "techgadgets"},
		{"painting", "artcrafts"},
		{"animals", "animals"},
		{"techgadgets", "techgadgets"},
		{"space", "space"},
		{"Minecraft", "videogames"},
		{"xyznonexistent", Other},
		{"", Other},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.expected, ThemeForKeyword(tt.keyword))
		})
	}
}

func TestThemeForKeyword_AllCategoriesResolveToThemselves(t *testing.T) {
	for _, id := range CategoryIDs() {
		assert.Equal(t, id, ThemeForKeyword(id), "category %s", id)
	}
}

func TestCategoryForTerm(t *testing.T) {
	assert.Equal(t, "animals", CategoryForTerm("cats"))
	assert.Equal(t, "buildinglego", CategoryForTerm("lego"))
	assert.Equal(t, "bookscomics", CategoryForTerm("fantasy_books"))
	assert.Equal(t, Other, CategoryForTerm("nope"))
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("The"))
	assert.False(t, IsStopWord("dragons"))
}

func TestCategoryEmoji(t *testing.T) {
	assert.Equal(t, "🐾", CategoryEmoji("animals"))
	assert.Equal(t, "🍕", CategoryEmoji("foodtreats"))
	assert.Equal(t, DefaultThemeEmoji, CategoryEmoji("quidditch"))
}

package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/vibe-quiz/internal/taxonomy"
)

func TestGetCardIcon(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		category string
		tags     []string
		want     string
	}{
		{"player falls through to tag", "Mike Trout", "sports", []string{"baseball", "player"}, "⚾"},
		{"french tips", "French Tips", "nails", []string{"manicure"}, "💅"},
		{"title keyword wins over tags", "Golden Retriever", "cats", []string{"cats"}, "🐕"},
		{"specific before generic", "Poodle haircut", "animals", nil, "🐩"},
		{"tag before category", "Mystery thing", "music", []string{"space"}, "🚀"},
		{"category lookup", "Mystery thing", "fantasymagic", nil, "🐉"},
		{"case-insensitive category", "Mystery thing", "Dinosaurs", nil, "🦖"},
		{"default", "Mystery thing", "unknowable", nil, "⭐"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCardIcon(tt.title, tt.category, tt.tags).Icon)
		})
	}
}

func TestGetCardIcon_Deterministic(t *testing.T) {
	a := GetCardIcon("Slam dunk contest", "sports", []string{"basketball"})
	b := GetCardIcon("Slam dunk contest", "sports", []string{"basketball"})
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a.Color)
	assert.NotEmpty(t, a.BgColor)
}

func TestAllCategoryIcons(t *testing.T) {
	icons := AllCategoryIcons()
	for _, id := range taxonomy.CategoryIDs() {
		assert.Contains(t, icons, id, "category %s has no icon", id)
	}
	assert.Contains(t, icons, "other")

	icons["animals"] = defaultIcon
	assert.NotEqual(t, defaultIcon, AllCategoryIcons()["animals"])
}

func TestIconRules_WellFormed(t *testing.T) {
	for i, rule := range iconRules {
		assert.NotEmpty(t, rule.Keywords, "rule %d", i)
		assert.NotEmpty(t, rule.Icon.Icon, "rule %d", i)
		for _, kw := range rule.Keywords {
			assert.Equal(t, kw, lower(kw), "rule %d keyword %q must be lowercase", i, kw)
		}
	}
}

// Package enrichment derives display icons and kid-friendly explanations for cards.
//
// Every function here is a pure function of the card's title, category, and
// tags: the same card always gets the same icon, explanation, and fun fact.
package enrichment

import (
	"strings"

	"github.com/jonathan/vibe-quiz/internal/types"
)

// GetCardIcon picks the icon for a card. Title keyword rules win, then the first
// tag with a category icon, then the category itself, then a default star.
func GetCardIcon(title, category string, themeTags []string) types.IconConfig {
	lowerTitle := strings.ToLower(title)
	for _, rule := range iconRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowerTitle, kw) {
				return rule.Icon
			}
		}
	}

	for _, tag := range themeTags {
		if cfg, ok := categoryIcons[strings.ToLower(tag)]; ok {
			return cfg
		}
	}

	if cfg, ok := categoryIcons[strings.ToLower(category)]; ok {
		return cfg
	}
	return defaultIcon
}

// IconForCard is GetCardIcon applied to a card.
func IconForCard(card types.Card) types.IconConfig {
	return GetCardIcon(card.Title, card.Category, card.ThemeTags)
}

// AllCategoryIcons returns a copy of the category icon table.
func AllCategoryIcons() map[string]types.IconConfig {
	out := make(map[string]types.IconConfig, len(categoryIcons))
	for k, v := range categoryIcons {
		out[k] = v
	}
	return out
}

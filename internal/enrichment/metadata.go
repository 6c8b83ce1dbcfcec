package enrichment

import (
	"strings"

	"github.com/jonathan/vibe-quiz/internal/types"
)

// MysteryTitle replaces an empty card title.
const MysteryTitle = "Mystery Item"

// EnsureCardMetadata fills empty title, query, category, and tags with safe defaults.
// The input card is not modified.
func EnsureCardMetadata(card types.Card) types.Card {
	if strings.TrimSpace(card.Title) == "" {
		card.Title = MysteryTitle
	}
	if strings.TrimSpace(card.Query) == "" {
		card.Query = card.Title
	}
	if strings.TrimSpace(card.Category) == "" {
		card.Category = categoryOther
	}
	if len(card.ThemeTags) == 0 {
		card.ThemeTags = []string{card.Category}
	} else {
		tags := make([]string, len(card.ThemeTags))
		copy(tags, card.ThemeTags)
		card.ThemeTags = tags
	}
	return card
}

// ValidateCard reports which required fields are missing. It does not modify card.
func ValidateCard(card types.Card) types.CardValidation {
	missing := []string{}
	if strings.TrimSpace(card.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(card.Query) == "" {
		missing = append(missing, "query")
	}
	if strings.TrimSpace(card.Category) == "" {
		missing = append(missing, "category")
	}
	if len(card.ThemeTags) == 0 {
		missing = append(missing, "themeTags")
	}

	nonGeneric := true
	if len(missing) == 0 {
		nonGeneric = GenerateCardExplanation(card, card.Enrichment).Explanation != GenericFallback
	}
	return types.CardValidation{
		IsValid:                  len(missing) == 0,
		MissingFields:            missing,
		HasNonGenericExplanation: nonGeneric,
	}
}

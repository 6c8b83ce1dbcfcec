package deck

import (
	"github.com/jonathan/vibe-quiz/internal/expansion"
	"github.com/jonathan/vibe-quiz/internal/types"
)

const (
	replacementFallbackConcept = "adventure"
	replacementCandidates      = 10
)

// ValidateDeck is the deck-wide anti-echo safety pass. Cards with valid, novel
// titles are kept. Others get a replacement title expanded from their first
// theme tag, or are dropped when no replacement qualifies. Applying it twice
// yields the same deck as applying it once.
func (b *Builder) ValidateDeck(cards []types.Card, rawInputs []string) []types.Card {
	valid, _ := b.validateDeck(cards, rawInputs)
	return valid
}

// validateDeck also reports how many cards had their title replaced.
func (b *Builder) validateDeck(cards []types.Card, rawInputs []string) ([]types.Card, int) {
	repaired := 0
	valid := make([]types.Card, 0, len(cards))
	used := make(map[string]bool, len(cards))

	for _, card := range cards {
		normalized := expansion.NormalizeTerm(card.Title)
		if expansion.ValidateTitle(card.Title, rawInputs) && !used[normalized] {
			used[normalized] = true
			valid = append(valid, card)
			continue
		}

		seed := replacementFallbackConcept
		if len(card.ThemeTags) > 0 && card.ThemeTags[0] != "" {
			seed = card.ThemeTags[0]
		}
		for _, replacement := range b.expander.Expand(seed, replacementCandidates) {
			n := expansion.NormalizeTerm(replacement)
			if used[n] || !expansion.ValidateTitle(replacement, rawInputs) {
				continue
			}
			used[n] = true
			card.Title = replacement
			card.Query = replacement
			card.Alt = replacement
			valid = append(valid, card)
			repaired++
			break
		}
	}
	return valid, repaired
}

// ValidateDeck runs the safety pass with the shared Builder.
func ValidateDeck(cards []types.Card, rawInputs []string) []types.Card {
	return defaultBuilder.ValidateDeck(cards, rawInputs)
}

// TitleViolatesRule reports whether title echoes any raw input.
func TitleViolatesRule(title string, rawInputs []string) bool {
	return !expansion.ValidateTitle(title, rawInputs)
}

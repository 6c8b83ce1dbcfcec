package enrichment

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/jonathan/vibe-quiz/internal/types"
)

// GenericFallback is the explanation callers should never see for a well-formed card.
const GenericFallback = "This is something cool you might want to check out!"

// patternRule is one entry of the ordered title matcher chain. Handle may
// decline a match by returning false, letting later rules run.
type patternRule struct {
	Pattern  *regexp.Regexp
	Category string
	Handle   func(card types.Card, enrichment *types.CardEnrichment, match []string) (types.CardExplanation, bool)
}

var breedWords = []string{
	"retriever", "shepherd", "husky", "corgi", "poodle", "bulldog", "beagle", "labrador",
	"terrier", "spaniel", "collie", "dane", "bernard", "russell", "coon", "siamese", "persian", "tabby",
	"shiba", "inu", "dalmatian", "sphynx", "ragdoll",
}

var patternRules = []patternRule{
	{
		Pattern:  regexp.MustCompile(`(?i)(golden retriever|german shepherd|border collie|great dane|saint bernard|jack russell|shih tzu|bichon frise|cocker spaniel|king charles)`),
		Category: categoryPets,
		Handle: func(card types.Card, _ *types.CardEnrichment, _ []string) (types.CardExplanation, bool) {
			return types.CardExplanation{
				Explanation: card.Title + " is a popular dog breed known for being a loyal companion!",
				FunFact:     "Dogs have been human companions for over 15,000 years!",
			}, true
		},
	},
	{
		Pattern:  regexp.MustCompile(`(?i)(retriever|shepherd|husky|corgi|poodle|bulldog|beagle|labrador|terrier|spaniel|dachshund|chihuahua|rottweiler|boxer|doberman|maltese|schnauzer|pitbull|pit bull)`),
		Category: categoryPets,
		Handle: func(card types.Card, _ *types.CardEnrichment, match []string) (types.CardExplanation, bool) {
			return types.CardExplanation{
				Explanation: card.Title + " is a type of dog breed that people love as pets!",
				FunFact:     capitalize(match[1]) + " dogs each have their own special personality and traits!",
			}, true
		},
	},
	{
		Pattern:  regexp.MustCompile(`(?i)(maine coon|siamese|persian|ragdoll|tabby|sphynx|bengal|scottish fold|british shorthair|abyssinian)`),
		Category: categoryPets,
		Handle: func(card types.Card, _ *types.CardEnrichment, _ []string) (types.CardExplanation, bool) {
			return types.CardExplanation{
				Explanation: card.Title + " is a type of cat that makes a wonderful furry friend!",
				FunFact:     "Cats spend about 70% of their day sleeping - that's almost 16 hours!",
			}, true
		},
	},
	{
		// Two capitalized words look like a person's name, but only on sports cards.
		Pattern:  regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`),
		Category: categorySportsPlayer,
		Handle: func(card types.Card, enrichment *types.CardEnrichment, _ []string) (types.CardExplanation, bool) {
			if enrichment.HasPlayer() {
				return types.CardExplanation{}, false
			}
			for _, word := range strings.Fields(strings.ToLower(card.Title)) {
				if slices.Contains(breedWords, word) {
					return types.CardExplanation{
						Explanation: card.Title + " is a beloved pet breed that many families love!",
						FunFact:     "Pets can become your best friends and loyal companions!",
						Category:    categoryPets,
					}, true
				}
			}
			if !hasSportsContext(card) {
				return types.CardExplanation{}, false
			}
			return types.CardExplanation{
				Explanation: card.Title + " is a professional athlete! It's okay if you don't know them yet - they might become one of your favorites!",
				FunFact:     "Pro athletes often started playing their sport when they were kids just like you!",
			}, true
		},
	},
	{
		Pattern:  regexp.MustCompile(`(?i)glitter|sparkl|shimmer`),
		Category: categoryNails,
		Handle: func(card types.Card, _ *types.CardEnrichment, _ []string) (types.CardExplanation, bool) {
			if !hasNailContext(card) {
				return types.CardExplanation{}, false
			}
			return types.CardExplanation{
				Explanation: card.Title + " is a sparkly nail style that catches the light and looks super fun!",
				FunFact:     "Nail glitter is specially made to be safe for use on nails!",
			}, true
		},
	},
	{
		Pattern:  regexp.MustCompile(`(?i)french tip`),
		Category: categoryNails,
		Handle: func(card types.Card, _ *types.CardEnrichment, _ []string) (types.CardExplanation, bool) {
			return types.CardExplanation{
				Explanation: card.Title + " is a classic nail look with white tips - it looks clean and pretty!",
				FunFact:     "French tips actually started in Paris, France in the 1970s!",
			}, true
		},
	},
	{
		Pattern:  regexp.MustCompile(`(?i)press.?on`),
		Category: categoryNails,
		Handle: func(card types.Card, _ *types.CardEnrichment, _ []string) (types.CardExplanation, bool) {
			return types.CardExplanation{
				Explanation: card.Title + " are fake nails you can stick on without any glue mess - they're super easy to use!",
				FunFact:     "Press-on nails have been around since the 1970s!",
			}, true
		},
	},
	{
		Pattern:  regexp.MustCompile(`(?i)lip\s?(gloss|stick|balm)`),
		Category: categoryMakeup,
		Handle: func(card types.Card, _ *types.CardEnrichment, _ []string) (types.CardExplanation, bool) {
			return types.CardExplanation{
				Explanation: card.Title + " is something you put on your lips to make them shiny or colorful!",
				FunFact:     "Ancient Egyptians made lip color from crushed bugs and berries!",
			}, true
		},
	},
	{
		Pattern:  regexp.MustCompile(`(?i)eye\s?shadow`),
		Category: categoryMakeup,
		Handle: func(card types.Card, _ *types.CardEnrichment, _ []string) (types.CardExplanation, bool) {
			return types.CardExplanation{
				Explanation: card.Title + " is colorful powder or cream you put on your eyelids to make your eyes pop!",
				FunFact:     "Eyeshadow has been used for over 12,000 years!",
			}, true
		},
	},
}

// GenerateCardExplanation builds the explanation for a card. Title patterns are
// tried first, then sports-player enrichment, then the template family for the
// card's tags or category. Template choice is a stable hash of the title.
func GenerateCardExplanation(card types.Card, enrichment *types.CardEnrichment) types.CardExplanation {
	title := card.Title

	for _, rule := range patternRules {
		match := rule.Pattern.FindStringSubmatch(title)
		if match == nil {
			continue
		}
		if result, ok := rule.Handle(card, enrichment, match); ok {
			if result.Category == "" {
				result.Category = rule.Category
			}
			return result
		}
	}

	if enrichment.HasPlayer() {
		family := templateFamilies[categorySportsPlayer]
		sport := enrichment.Sport
		if sport == "" {
			sport = "sports"
		}
		explanation := pick(family.Templates, title)
		explanation = strings.NewReplacer(
			"{title}", title,
			"{position}", enrichment.PlayerPosition,
			"{team}", enrichment.TeamName,
			"{sport}", sport,
		).Replace(explanation)
		return types.CardExplanation{
			Explanation: explanation,
			FunFact:     pick(family.FunFacts, title+"funfact"),
			Category:    categorySportsPlayer,
		}
	}

	category := explanationCategory(card)
	family, ok := templateFamilies[category]
	if !ok {
		category = categoryOther
		family = templateFamilies[categoryOther]
	}
	return types.CardExplanation{
		Explanation: strings.ReplaceAll(pick(family.Templates, title), "{title}", title),
		FunFact:     pick(family.FunFacts, title+"fact"),
		Category:    category,
	}
}

// ExplanationForCard is GenerateCardExplanation with a recovery boundary: any
// panic while generating degrades to UnknownTopicExplanation.
func ExplanationForCard(card types.Card, enrichment *types.CardEnrichment) (result types.CardExplanation) {
	defer func() {
		if r := recover(); r != nil {
			result = UnknownTopicExplanation(card.Title)
		}
	}()
	return GenerateCardExplanation(card, enrichment)
}

// UnknownTopicExplanation is the friendly fallback for anything unfamiliar.
func UnknownTopicExplanation(title string) types.CardExplanation {
	return types.CardExplanation{
		Explanation: fmt.Sprintf("%s might be something new to you - and that's totally okay! It's always cool to learn about new things.", title),
		FunFact:     "Being curious about new things is one of the best ways to learn!",
		Category:    categoryUnknown,
	}
}

// Enrich bundles a card with its icon and explanation.
func Enrich(card types.Card) types.EnrichedCard {
	card = EnsureCardMetadata(card)
	return types.EnrichedCard{
		Card:        card,
		Icon:        IconForCard(card),
		Explanation: ExplanationForCard(card, card.Enrichment),
	}
}

func explanationCategory(card types.Card) string {
	title := strings.ToLower(card.Title)
	if strings.Contains(title, "nail") {
		return categoryNails
	}
	for _, word := range []string{"makeup", "lipgloss", "eyeshadow", "mascara", "blush"} {
		if strings.Contains(title, word) {
			return categoryMakeup
		}
	}

	for _, tag := range card.ThemeTags {
		if category, ok := explanationCategories[strings.ToLower(tag)]; ok {
			return category
		}
	}
	if category, ok := explanationCategories[strings.ToLower(card.Category)]; ok {
		return category
	}
	return categoryOther
}

func hasNailContext(card types.Card) bool {
	if strings.Contains(strings.ToLower(card.Title), "nail") {
		return true
	}
	if strings.EqualFold(card.Category, categoryNails) {
		return true
	}
	for _, tag := range card.ThemeTags {
		if strings.EqualFold(tag, categoryNails) || strings.EqualFold(tag, "manicure") {
			return true
		}
	}
	return false
}

func hasSportsContext(card types.Card) bool {
	isSports := func(v string) bool {
		v = strings.ToLower(v)
		if v == categorySportsPlayer || v == "player" {
			return true
		}
		family := explanationCategories[v]
		return family == "sports" || family == "baseball"
	}
	if isSports(card.Category) {
		return true
	}
	for _, tag := range card.ThemeTags {
		if isSports(tag) {
			return true
		}
	}
	return false
}

// stableHash is a 31-multiplier polynomial hash truncated to 32 bits.
func stableHash(s string) int {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}

func pick(values []string, key string) string {
	return values[stableHash(key)%len(values)]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Package types provides type definitions for structured data used throughout the vibe-quiz system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Card is a single swipeable topic produced by the deck builder.
type Card struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Query     string   `json:"query"`
	Alt       string   `json:"alt"`
	ThemeTags []string `json:"theme_tags"`
	Category  string   `json:"category"`
	// IsRelated is true for cards derived from the user's own interests or categories
	// and false for surprise cards.
	IsRelated  bool            `json:"is_related"`
	Enrichment *CardEnrichment `json:"enrichment,omitempty"`
}

// CardEnrichment carries optional, sparsely populated context about a card.
// Empty strings mean the field is absent.
type CardEnrichment struct {
	PlayerPosition string `json:"player_position,omitempty"`
	TeamName       string `json:"team_name,omitempty"`
	TeamFullName   string `json:"team_full_name,omitempty"`
	Sport          string `json:"sport,omitempty"`
	StyleType      string `json:"style_type,omitempty"`
	IngredientType string `json:"ingredient_type,omitempty"`
	AnimalType     string `json:"animal_type,omitempty"`
	GameGenre      string `json:"game_genre,omitempty"`
}

// HasPlayer reports whether the enrichment describes a sports player on a team.
func (e *CardEnrichment) HasPlayer() bool {
	return e != nil && e.PlayerPosition != "" && e.TeamName != ""
}

// IconConfig is the display icon for a card.
type IconConfig struct {
	Icon    string `json:"icon"`
	Color   string `json:"color"`
	BgColor string `json:"bg_color"`
}

// CardExplanation is a short kid-friendly description of a card.
type CardExplanation struct {
	Explanation string `json:"explanation"`
	FunFact     string `json:"fun_fact,omitempty"`
	Category    string `json:"category,omitempty"`
}

// EnrichedCard bundles a card with its icon and explanation for API responses.
type EnrichedCard struct {
	Card
	Icon        IconConfig      `json:"icon"`
	Explanation CardExplanation `json:"explanation"`
}

// CardValidation reports which required card fields are missing.
type CardValidation struct {
	IsValid                  bool     `json:"is_valid"`
	MissingFields            []string `json:"missing_fields"`
	HasNonGenericExplanation bool     `json:"has_non_generic_explanation"`
}

package types

// SwipeResult records one decision on a card, in swipe order.
type SwipeResult struct {
	Card    Card `json:"card"`
	Liked   bool `json:"liked"`
	Skipped bool `json:"skipped,omitempty"`
}

// ThemeScore is an aggregated score for one theme.
type ThemeScore struct {
	Theme string  `json:"theme"`
	Score float64 `json:"score"`
	Emoji string  `json:"emoji"`
}

// PersonalityType is a static archetype in the personality catalog.
type PersonalityType struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
	Suggestions []string `json:"suggestions"`
	Color       string   `json:"color"`
}

// QuizResult is the outcome of scoring a finished session.
type QuizResult struct {
	Personality PersonalityType `json:"personality"`
	TopThemes   []ThemeScore    `json:"top_themes"`
	TotalSwipes int             `json:"total_swipes"`
	LikedCount  int             `json:"liked_count"`
	SkipCount   int             `json:"skip_count"`
}

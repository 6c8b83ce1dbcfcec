// Package taxonomy holds the static reference tables that map free-text interests to themes,
// themes to personality weights, and the personality archetype catalog.
// All tables are read-only after package initialization.
package taxonomy

// Other is the sentinel theme for anything that does not resolve to a known category.
const Other = "other"

// DefaultThemeEmoji is shown for themes without a registered emoji.
const DefaultThemeEmoji = "✨"

// Category is a selectable interest category.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// categories lists the selectable categories in display order.
// Order matters: ThemeForKeyword scans it first-match-wins.
var categories = []Category{
	{ID: "animals", Label: "Animals", Emoji: "🐾"},
	{ID: "sports", Label: "Sports", Emoji: "⚽"},
	{ID: "videogames", Label: "Video Games", Emoji: "🎮"},
	{ID: "artcrafts", Label: "Art & Crafts", Emoji: "🎨"},
	{ID: "music", Label: "Music", Emoji: "🎵"},
	{ID: "moviestv", Label: "Movies & TV", Emoji: "🎬"},
	{ID: "bookscomics", Label: "Books & Comics", Emoji: "📚"},
	{ID: "foodtreats", Label: "Food & Treats", Emoji: "🍕"},
	{ID: "outdoors", Label: "Outdoors & Adventure", Emoji: "🏕️"},
	{ID: "techgadgets", Label: "Tech & Gadgets", Emoji: "🤖"},
	{ID: "space", Label: "Space", Emoji: "🚀"},
	{ID: "fantasymagic", Label: "Fantasy & Magic", Emoji: "🦄"},
	{ID: "fashionstyle", Label: "Fashion & Style", Emoji: "👗"},
	{ID: "collecting", Label: "Collecting", Emoji: "🎴"},
	{ID: "buildinglego", Label: "Building & LEGO", Emoji: "🧱"},
	{ID: "carsvehicles", Label: "Cars & Vehicles", Emoji: "🚗"},
	{ID: "cutestuff", Label: "Cute Stuff", Emoji: "🧸"},
	{ID: "puzzlesgames", Label: "Puzzles & Brain Games", Emoji: "🧩"},
}

// themeEmojis covers the categories plus legacy theme names still found in tags.
var themeEmojis = map[string]string{
	"animals":      "🐾",
	"sports":       "⚽",
	"videogames":   "🎮",
	"artcrafts":    "🎨",
	"music":        "🎵",
	"moviestv":     "🎬",
	"bookscomics":  "📚",
	"foodtreats":   "🍕",
	"outdoors":     "🏕️",
	"techgadgets":  "🤖",
	"space":        "🚀",
	"fantasymagic": "🦄",
	"fashionstyle": "👗",
	"collecting":   "🎴",
	"buildinglego": "🧱",
	"carsvehicles": "🚗",
	"cutestuff":    "🧸",
	"puzzlesgames": "🧩",
	// legacy
	"games":      "🎮",
	"food":       "🍕",
	"colors":     "🌈",
	"places":     "🏖️",
	"nature":     "🌿",
	"art":        "🎨",
	"books":      "📚",
	"movies":     "🎬",
	"adventure":  "🗺️",
	"creativity": "✨",
	"technology": "🤖",
	"friendship": "👋",
	"learning":   "📖",
	"outdoor":    "🏕️",
	"indoor":     "🏠",
	"fantasy":    "🦄",
}

// Categories returns a copy of the selectable categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryIDs returns the category ids in display order.
func CategoryIDs() []string {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return ids
}

// IsCategory reports whether id is one of the selectable categories.
func IsCategory(id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// ThemeEmoji returns the display emoji for a theme, or DefaultThemeEmoji.
func ThemeEmoji(theme string) string {
	if emoji, ok := themeEmojis[theme]; ok {
		return emoji
	}
	return DefaultThemeEmoji
}

// CategoryEmoji returns the emoji of a selectable category, or DefaultThemeEmoji.
func CategoryEmoji(id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Emoji
		}
	}
	return DefaultThemeEmoji
}

package expansion

import "strings"

// categoryConcepts maps category ids, display names, and legacy themes to concept keys.
var categoryConcepts = map[string][]string{
	"animals":      {"dogs", "cats", "horses", "birds", "fish", "dinosaurs", "rabbits", "pandas", "elephants", "butterflies"},
	"sports":       {"soccer", "basketball", "swimming", "gymnastics", "baseball", "tennis", "skateboarding", "dancing", "running"},
	"videogames":   {"minecraft", "roblox", "pokemon", "mario", "fortnite"},
	"artcrafts":    {"painting", "drawing", "crafts", "photography"},
	"music":        {"piano", "guitar", "drums", "singing"},
	"moviestv":     {"movies"},
	"bookscomics":  {"books"},
	"foodtreats":   {"pizza", "icecream", "cookies", "tacos", "sushi", "pasta", "fruit", "chocolate", "pancakes"},
	"outdoors":     {"beach", "mountains", "forest", "amusementpark", "zoo"},
	"techgadgets":  {"technology", "robots"},
	"space":        {"space"},
	"fantasymagic": {"fantasy", "magic"},
	"fashionstyle": {"fashion"},
	"collecting":   {"collecting"},
	"buildinglego": {"lego"},
	"carsvehicles": {"cars", "vehicles"},
	"cutestuff":    {"cute"},
	"puzzlesgames": {"puzzles"},

	"youtubers": {"youtubers"},
	"colors":    {"blue", "red", "green", "purple", "pink", "yellow", "rainbow"},
	"places":    {"beach", "mountains", "forest", "space", "amusementpark", "zoo"},
	"games":     {"minecraft", "roblox", "pokemon", "mario", "fortnite", "lego"},
	"beauty":    {"nails", "makeup"},
	"nails":     {"nails"},
	"makeup":    {"makeup"},
}

// displayNameAliases resolve display labels whose stripped form differs from the id.
var displayNameAliases = map[string]string{
	"outdoorsadventure": "outdoors",
	"puzzlesbraingames": "puzzlesgames",
}

// CategoryID strips a category name down to its identifier form ("Food & Treats" -> "foodtreats").
func CategoryID(category string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(category) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	id := sb.String()
	if alias, ok := displayNameAliases[id]; ok {
		return alias
	}
	return id
}

// CategoryConcepts returns the concept keys behind a category, or nil if unknown.
func CategoryConcepts(category string) []string {
	return categoryConcepts[CategoryID(category)]
}

// HasCategoryPool reports whether a category has curated expansions.
func HasCategoryPool(category string) bool {
	return len(CategoryConcepts(category)) > 0
}

package taxonomy

// PersonalityWeight is one archetype's contribution from a theme.
type PersonalityWeight struct {
	PersonalityID string
	Weight        int
}

// themeWeights maps a theme to archetype contributions, highest weight first.
// Each category has one primary archetype so that varied sessions spread across the catalog.
var themeWeights = map[string][]PersonalityWeight{
	"animals":      {{"animal-whisperer", 4}, {"nature-pal", 2}, {"cozy-collector", 1}},
	"sports":       {{"team-captain", 4}, {"social-butterfly", 2}, {"adventurer", 1}},
	"videogames":   {{"game-champion", 4}, {"chill-explorer", 2}, {"tech-wizard", 1}},
	"artcrafts":    {{"creative-spark", 4}, {"maker-inventor", 2}, {"style-star", 1}},
	"music":        {{"music-maestro", 4}, {"stage-star", 2}, {"movie-buff", 1}},
	"moviestv":     {{"movie-buff", 4}, {"stage-star", 2}, {"story-seeker", 1}},
	"bookscomics":  {{"story-seeker", 4}, {"wonder-seeker", 2}, {"dream-weaver", 1}},
	"foodtreats":   {{"foodie-friend", 4}, {"kind-heart", 2}, {"team-captain", 1}},
	"outdoors":     {{"adventurer", 4}, {"nature-pal", 2}, {"animal-whisperer", 1}},
	"techgadgets":  {{"tech-wizard", 4}, {"maker-inventor", 2}, {"brainy-builder", 1}},
	"space":        {{"cosmic-dreamer", 4}, {"curious-scientist", 2}, {"speed-racer", 1}},
	"fantasymagic": {{"dream-weaver", 4}, {"sparkle-spirit", 2}, {"cosmic-dreamer", 1}},
	"fashionstyle": {{"style-star", 4}, {"sparkle-spirit", 2}, {"creative-spark", 1}},
	"collecting":   {{"super-fan", 4}, {"wonder-seeker", 2}, {"game-champion", 1}},
	"buildinglego": {{"brainy-builder", 4}, {"curious-scientist", 2}, {"puzzle-master", 1}},
	"carsvehicles": {{"speed-racer", 4}, {"chill-explorer", 2}, {"music-maestro", 1}},
	"cutestuff":    {{"cozy-collector", 4}, {"kind-heart", 2}, {"super-fan", 1}},
	"puzzlesgames": {{"puzzle-master", 4}, {"social-butterfly", 2}, {"foodie-friend", 1}},

	// legacy themes
	"games":      {{"game-champion", 3}, {"tech-wizard", 2}, {"super-fan", 1}},
	"food":       {{"foodie-friend", 3}, {"kind-heart", 1}, {"cozy-collector", 1}},
	"colors":     {{"creative-spark", 2}, {"sparkle-spirit", 2}, {"chill-explorer", 1}},
	"places":     {{"adventurer", 3}, {"chill-explorer", 2}},
	"nature":     {{"nature-pal", 4}, {"adventurer", 2}, {"chill-explorer", 1}},
	"art":        {{"creative-spark", 3}, {"story-seeker", 1}},
	"books":      {{"story-seeker", 3}, {"cozy-collector", 1}},
	"movies":     {{"movie-buff", 3}, {"story-seeker", 2}, {"super-fan", 1}},
	"technology": {{"tech-wizard", 3}, {"brainy-builder", 2}},
	"adventure":  {{"adventurer", 3}, {"team-captain", 1}},
	"creativity": {{"creative-spark", 3}, {"maker-inventor", 2}},
	"outdoor":    {{"adventurer", 2}, {"nature-pal", 2}, {"team-captain", 1}},
	"indoor":     {{"cozy-collector", 2}, {"brainy-builder", 1}},
	"fantasy":    {{"dream-weaver", 3}, {"story-seeker", 2}},
	"friendship": {{"social-butterfly", 3}, {"kind-heart", 2}},
	"learning":   {{"curious-scientist", 3}, {"brainy-builder", 1}},
}

// PersonalityWeights returns the archetype contributions for a theme, or nil.
func PersonalityWeights(theme string) []PersonalityWeight {
	return themeWeights[theme]
}

// TopPersonalityForTheme returns the highest-weighted archetype id for a theme.
// Ties keep the earlier entry.
func TopPersonalityForTheme(theme string) (string, bool) {
	weights := themeWeights[theme]
	if len(weights) == 0 {
		return "", false
	}
	best := weights[0]
	for _, w := range weights[1:] {
		if w.Weight > best.Weight {
			best = w
		}
	}
	return best.PersonalityID, true
}

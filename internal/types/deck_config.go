package types

// GameMode selects how many cards a session plays.
type GameMode string

const (
	// ModeStandard plays a fixed number of cards.
	ModeStandard GameMode = "standard"
	// ModeUnlimited keeps generating batches until the player stops.
	ModeUnlimited GameMode = "unlimited"
)

const (
	// DefaultTargetCount is the deck size used when none is given.
	DefaultTargetCount = 24
	// UnlimitedBatchSize is the per-batch deck size in unlimited mode.
	UnlimitedBatchSize = 100
	// MaxTargetCount bounds a single deck request.
	MaxTargetCount = 200
)

// StandardTargetCounts are the deck sizes offered in standard mode.
var StandardTargetCounts = []int{15, 30, 50}

// DeckConfig is the sole input to deck generation.
type DeckConfig struct {
	FavoritesText      string   `json:"favorites_text" validate:"max=2000"`
	SelectedCategories []string `json:"selected_categories" validate:"max=18,dive,required"`
	TargetCount        int      `json:"target_count" validate:"min=0,max=200"`
	Unlimited          bool     `json:"unlimited"`
}

// EffectiveTargetCount returns the number of cards a build should produce.
// Unlimited mode always requests a full batch.
func (c DeckConfig) EffectiveTargetCount() int {
	if c.Unlimited && c.TargetCount < UnlimitedBatchSize {
		return UnlimitedBatchSize
	}
	return c.TargetCount
}

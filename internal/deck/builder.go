// Package deck assembles shuffled, duplicate-free card decks from user interests.
//
// A deck is roughly 85% related cards (expanded from the user's keywords and
// categories) and 15% surprise cards drawn from a curated novelty pool. Every
// title passes the anti-echo rule: it never equals, or trivially pluralizes,
// a keyword the user typed.
package deck

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/jonathan/vibe-quiz/internal/expansion"
	"github.com/jonathan/vibe-quiz/internal/logger"
	"github.com/jonathan/vibe-quiz/internal/taxonomy"
	"github.com/jonathan/vibe-quiz/internal/types"
)

const (
	// SurpriseRatio is the share of a deck reserved for surprise cards.
	SurpriseRatio = 0.15

	keywordExpansions    = 6
	categoryExpansions   = 8
	diversityExpansions  = 6
	exhaustiveExpansions = 1000
)

// diversityCategories fill the related quota when the user gives too little input.
var diversityCategories = []string{"animals", "videogames", "foodtreats", "sports", "music"}

// Builder builds decks. The zero value is not usable; call NewBuilder.
type Builder struct {
	rng      *rand.Rand
	expander *expansion.Expander
	log      *logger.Logger
	now      func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithRand makes shuffling and expansion reproducible. A *rand.Rand is not
// safe for concurrent use, so a Builder given one must not be shared across
// goroutines. session.Store hands its Builder to every session, so a Store's
// Builder should be built without WithRand, drawing from the global source.
func WithRand(rng *rand.Rand) Option {
	return func(b *Builder) {
		b.rng = rng
		b.expander = expansion.NewExpander(rng)
	}
}

// WithLogger sets the logger that receives per-deck telemetry.
func WithLogger(l *logger.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithClock overrides the time source used in card ids.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBuilder creates a Builder. Without WithRand it uses the global random source.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		expander: expansion.NewExpander(nil),
		log:      logger.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Split returns the related and surprise card counts for a target deck size.
func Split(targetCount int) (related, surprise int) {
	if targetCount <= 0 {
		return 0, 0
	}
	surprise = int(math.Round(float64(targetCount) * SurpriseRatio))
	if surprise < 1 {
		surprise = 1
	}
	if surprise > targetCount {
		surprise = targetCount
	}
	return targetCount - surprise, surprise
}

// Build assembles a deck for cfg.
func (b *Builder) Build(cfg types.DeckConfig) []types.Card {
	return b.BuildExcluding(cfg, nil)
}

// BuildExcluding assembles a deck whose titles avoid every title in exclude.
// Unlimited sessions pass previously shown titles so batches do not repeat.
func (b *Builder) BuildExcluding(cfg types.DeckConfig, exclude []string) []types.Card {
	target := cfg.EffectiveTargetCount()
	if target <= 0 {
		return []types.Card{}
	}

	keywords := taxonomy.ParseKeywords(cfg.FavoritesText)
	relatedCount, surpriseCount := Split(target)

	a := &assembly{
		builder: b,
		inputs:  keywords,
		used:    make(map[string]bool, target+len(exclude)),
		stamp:   b.now().UnixMilli(),
		quota:   relatedCount,
	}
	for _, title := range exclude {
		a.used[expansion.NormalizeTerm(title)] = true
	}

	for _, keyword := range keywords {
		if a.full() {
			break
		}
		theme := taxonomy.ThemeForKeyword(keyword)
		tags := dedupeTags(keyword, theme)
		for _, title := range b.expander.Expand(keyword, keywordExpansions) {
			if a.full() {
				break
			}
			a.addRelated(title, tags, theme)
		}
	}

	a.fillFromCategories(cfg.SelectedCategories, categoryExpansions)
	a.fillFromCategories(diversityCategories, diversityExpansions)

	// Large or heavily excluded batches can exhaust the capped passes.
	var all []string
	all = append(all, cfg.SelectedCategories...)
	all = append(all, diversityCategories...)
	all = append(all, taxonomy.CategoryIDs()...)
	a.fillFromCategories(all, exhaustiveExpansions)

	surprises := a.pickSurprises(surpriseCount)

	cards := make([]types.Card, 0, len(a.related)+len(surprises))
	cards = append(cards, a.related...)
	cards = append(cards, surprises...)
	assembled := len(cards)
	cards, repaired := b.validateDeck(cards, keywords)

	telemetry := Summarize(cards)
	b.log.Debug("deck built",
		"target", target,
		"total", telemetry.Total,
		"related", telemetry.Related,
		"surprise", telemetry.Surprise,
		"related_pct", fmt.Sprintf("%.1f%%", telemetry.RelatedPercent),
		"surprise_pct", fmt.Sprintf("%.1f%%", telemetry.SurprisePercent),
		"keywords", len(keywords),
		"categories", len(cfg.SelectedCategories),
		"repaired", repaired,
		"dropped", assembled-len(cards),
	)

	b.shuffleCards(cards)
	return cards
}

func (b *Builder) shuffleCards(cards []types.Card) {
	swap := func(i, j int) { cards[i], cards[j] = cards[j], cards[i] }
	if b.rng != nil {
		b.rng.Shuffle(len(cards), swap)
		return
	}
	rand.Shuffle(len(cards), swap)
}

// assembly tracks the running state of one Build call.
type assembly struct {
	builder *Builder
	inputs  []string
	used    map[string]bool
	related []types.Card
	quota   int
	stamp   int64
	seq     int
}

func (a *assembly) full() bool {
	return len(a.related) >= a.quota
}

// accept reports whether title is novel and passes the anti-echo rule, and reserves it.
func (a *assembly) accept(title string) bool {
	normalized := expansion.NormalizeTerm(title)
	if normalized == "" || a.used[normalized] {
		return false
	}
	if !expansion.ValidateTitle(title, a.inputs) {
		return false
	}
	a.used[normalized] = true
	return true
}

func (a *assembly) nextID(suffix string) string {
	id := fmt.Sprintf("card-%d-%d-%s", a.seq, a.stamp, suffix)
	a.seq++
	return id
}

func (a *assembly) addRelated(title string, tags []string, category string) {
	if !a.accept(title) {
		return
	}
	a.related = append(a.related, types.Card{
		ID:        a.nextID("r"),
		Title:     title,
		Query:     title,
		Alt:       title,
		ThemeTags: tags,
		Category:  category,
		IsRelated: true,
	})
}

func (a *assembly) fillFromCategories(categories []string, perCategory int) {
	for _, category := range categories {
		if a.full() {
			return
		}
		id := expansion.CategoryID(category)
		if id == "" {
			continue
		}
		for _, title := range a.builder.expander.Category(id, perCategory) {
			if a.full() {
				return
			}
			a.addRelated(title, []string{id}, id)
		}
	}
}

func (a *assembly) pickSurprises(count int) []types.Card {
	order := make([]int, len(surprisePool))
	for i := range order {
		order[i] = i
	}
	swap := func(i, j int) { order[i], order[j] = order[j], order[i] }
	if a.builder.rng != nil {
		a.builder.rng.Shuffle(len(order), swap)
	} else {
		rand.Shuffle(len(order), swap)
	}

	cards := make([]types.Card, 0, count)
	for _, idx := range order {
		if len(cards) >= count {
			break
		}
		s := surprisePool[idx]
		if !a.accept(s.Title) {
			continue
		}
		tags := make([]string, len(s.Tags))
		copy(tags, s.Tags)
		cards = append(cards, types.Card{
			ID:        a.nextID("s"),
			Title:     s.Title,
			Query:     s.Title,
			Alt:       s.Title,
			ThemeTags: tags,
			Category:  s.Category,
			IsRelated: false,
		})
	}
	return cards
}

func dedupeTags(tags ...string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

var defaultBuilder = NewBuilder()

// BuildDeck builds a deck with the shared, unseeded Builder.
func BuildDeck(cfg types.DeckConfig) []types.Card {
	return defaultBuilder.Build(cfg)
}

package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/jonathan/vibe-quiz/internal/deck"
	"github.com/jonathan/vibe-quiz/internal/logger"
	"github.com/jonathan/vibe-quiz/internal/observability"
	"github.com/jonathan/vibe-quiz/internal/schemas"
	"github.com/jonathan/vibe-quiz/internal/types"
)

var buildDeckCmd = &cobra.Command{
	Use:   "build-deck",
	Short: "Build a swipe deck from favorites and categories",
	Long:  "Builds a deck of related and surprise cards from free-text favorites and selected categories, validates it against the deck schema, and writes it as JSON.",
	RunE:  runBuildDeck,
}

var (
	buildDeckFavorites  string
	buildDeckCategories []string
	buildDeckCount      int
	buildDeckSeed       uint64
	buildDeckUnlimited  bool
	buildDeckOutput     string
	buildDeckVerbose    bool
)

// DeckDocument is the file written by build-deck.
type DeckDocument struct {
	Config    types.DeckConfig `json:"config"`
	Cards     []types.Card     `json:"cards"`
	Telemetry deck.Telemetry   `json:"telemetry"`
}

func init() {
	buildDeckCmd.Flags().StringVarP(&buildDeckFavorites, "favorites", "f", "", "Favorite things, comma or space separated")
	buildDeckCmd.Flags().StringSliceVarP(&buildDeckCategories, "categories", "c", nil, "Category ids to draw from (e.g. animals,space)")
	buildDeckCmd.Flags().IntVarP(&buildDeckCount, "count", "n", types.DefaultTargetCount, "Number of cards")
	buildDeckCmd.Flags().Uint64Var(&buildDeckSeed, "seed", 0, "Shuffle seed for a reproducible deck (0 = random)")
	buildDeckCmd.Flags().BoolVar(&buildDeckUnlimited, "unlimited", false, "Build an unlimited-mode batch")
	buildDeckCmd.Flags().StringVarP(&buildDeckOutput, "out", "o", "", "Path to output deck JSON file (default stdout)")
	buildDeckCmd.Flags().BoolVarP(&buildDeckVerbose, "verbose", "v", false, "Print the deck summary and builder telemetry")

	rootCmd.AddCommand(buildDeckCmd)
}

func runBuildDeck(cmd *cobra.Command, _ []string) error {
	cfg := types.DeckConfig{
		FavoritesText:      buildDeckFavorites,
		SelectedCategories: buildDeckCategories,
		TargetCount:        buildDeckCount,
		Unlimited:          buildDeckUnlimited,
	}
	if cfg.TargetCount < 0 || cfg.TargetCount > types.MaxTargetCount {
		return fmt.Errorf("--count must be between 0 and %d", types.MaxTargetCount)
	}

	log := logger.Nop()
	if buildDeckVerbose {
		var err error
		if log, err = logger.New("dev"); err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer log.Sync()
	}

	opts := []deck.Option{deck.WithLogger(log)}
	if buildDeckSeed != 0 {
		opts = append(opts, deck.WithRand(rand.New(rand.NewPCG(buildDeckSeed, buildDeckSeed^0x9e3779b97f4a7c15))))
	}
	cards := deck.NewBuilder(opts...).Build(cfg)

	doc := DeckDocument{Config: cfg, Cards: cards, Telemetry: deck.Summarize(cards)}
	if err := schemas.Validate(schemas.Deck, doc); err != nil {
		return fmt.Errorf("deck failed schema validation: %w", err)
	}

	if buildDeckVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintDeck(cards)
	}

	if err := writeJSON(cmd.OutOrStdout(), buildDeckOutput, doc); err != nil {
		return err
	}
	if buildDeckOutput != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully built %d cards to %s\n", len(cards), buildDeckOutput)
	}
	return nil
}

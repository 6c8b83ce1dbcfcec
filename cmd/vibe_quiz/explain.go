package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/vibe-quiz/internal/enrichment"
	"github.com/jonathan/vibe-quiz/internal/observability"
	"github.com/jonathan/vibe-quiz/internal/types"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain a card the way the quiz shows it",
	RunE:  runExplain,
}

var iconCmd = &cobra.Command{
	Use:   "icon",
	Short: "Show the icon chosen for a card, or every category icon",
	RunE:  runIcon,
}

var (
	cardTitle    string
	cardCategory string
	cardTags     []string
	cardConcept  string
	explainBox   bool
	iconAll      bool
)

func init() {
	explainCmd.Flags().StringVarP(&cardTitle, "title", "t", "", "Card title")
	explainCmd.Flags().StringVarP(&cardCategory, "category", "c", "", "Card category id")
	explainCmd.Flags().StringSliceVar(&cardTags, "tags", nil, "Theme tags")
	explainCmd.Flags().StringVar(&cardConcept, "concept", "", "Explain a bare concept instead of a card")
	explainCmd.Flags().BoolVar(&explainBox, "pretty", false, "Print a summary box instead of JSON")
	explainCmd.MarkFlagsMutuallyExclusive("title", "concept")

	iconCmd.Flags().StringVarP(&cardTitle, "title", "t", "", "Card title")
	iconCmd.Flags().StringVarP(&cardCategory, "category", "c", "", "Card category id")
	iconCmd.Flags().StringSliceVar(&cardTags, "tags", nil, "Theme tags")
	iconCmd.Flags().BoolVar(&iconAll, "all", false, "List every category icon")

	rootCmd.AddCommand(explainCmd, iconCmd)
}

func runExplain(cmd *cobra.Command, _ []string) error {
	if strings.TrimSpace(cardTitle) == "" {
		if concept := strings.TrimSpace(cardConcept); concept != "" {
			return writeJSON(cmd.OutOrStdout(), "", enrichment.ExplainConcept(concept))
		}
		return errors.New("either --title or --concept is required")
	}
	card := enrichment.Enrich(types.Card{
		Title:     strings.TrimSpace(cardTitle),
		Category:  cardCategory,
		ThemeTags: cardTags,
	})
	if explainBox {
		observability.NewPrinter(cmd.OutOrStdout()).PrintEnrichedCard(card)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), "", card)
}

func runIcon(cmd *cobra.Command, _ []string) error {
	if iconAll || (cardTitle == "" && cardCategory == "") {
		return writeJSON(cmd.OutOrStdout(), "", enrichment.AllCategoryIcons())
	}
	return writeJSON(cmd.OutOrStdout(), "", enrichment.GetCardIcon(cardTitle, cardCategory, cardTags))
}

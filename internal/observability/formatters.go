// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/vibe-quiz/internal/deck"
	"github.com/jonathan/vibe-quiz/internal/sports"
	"github.com/jonathan/vibe-quiz/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", inner, truncate(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", inner, truncate(line, inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDeck outputs the deck mix and the first few cards of each kind.
func (p *Printer) PrintDeck(cards []types.Card) {
	if len(cards) == 0 {
		return
	}

	t := deck.Summarize(cards)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Cards:     %d\n", t.Total))
	sb.WriteString(fmt.Sprintf("Related:   %d (%.0f%%)\n", t.Related, t.RelatedPercent))
	sb.WriteString(fmt.Sprintf("Surprise:  %d (%.0f%%)\n", t.Surprise, t.SurprisePercent))

	var related, surprise []types.Card
	for _, c := range cards {
		if c.IsRelated {
			related = append(related, c)
		} else {
			surprise = append(surprise, c)
		}
	}
	writeCards(&sb, "Related", related)
	writeCards(&sb, "Surprise", surprise)

	p.printBox("DECK", strings.TrimSuffix(sb.String(), "\n"))
}

func writeCards(sb *strings.Builder, label string, cards []types.Card) {
	if len(cards) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s:\n", label))
	count := min(len(cards), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s [%s]\n", cards[i].Title, cards[i].Category))
	}
	if len(cards) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cards)-maxItemsToShow))
	}
}

// PrintResult outputs the personality and top themes of a finished quiz.
func (p *Printer) PrintResult(result *types.QuizResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n", result.Personality.Emoji, result.Personality.Name))
	if result.Personality.Description != "" {
		sb.WriteString(result.Personality.Description + "\n")
	}
	sb.WriteString(fmt.Sprintf("\nSwipes: %d  Liked: %d  Skipped: %d\n",
		result.TotalSwipes, result.LikedCount, result.SkipCount))

	if len(result.TopThemes) > 0 {
		sb.WriteString("\nTop themes:\n")
		for i, theme := range result.TopThemes {
			if i >= maxItemsToShow {
				break
			}
			sb.WriteString(fmt.Sprintf("  %d. %s %s (%.1f)\n", i+1, theme.Emoji, theme.Theme, theme.Score))
		}
	}

	if len(result.Personality.Traits) > 0 {
		sb.WriteString("\nTraits: " + strings.Join(result.Personality.Traits, ", ") + "\n")
	}

	p.printBox("YOUR VIBE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEnrichedCard outputs a card with its icon and explanation.
func (p *Printer) PrintEnrichedCard(card types.EnrichedCard) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n", card.Icon.Icon, card.Title))
	sb.WriteString(fmt.Sprintf("Category: %s\n", card.Category))
	if len(card.ThemeTags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags:     %s\n", strings.Join(card.ThemeTags, ", ")))
	}
	sb.WriteString("\n" + card.Explanation.Explanation + "\n")
	if card.Explanation.FunFact != "" {
		sb.WriteString("\nFun fact: " + card.Explanation.FunFact + "\n")
	}

	p.printBox("CARD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoster outputs a team roster summary.
func (p *Printer) PrintRoster(roster *sports.Roster) {
	if roster == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Team:    %s (%s)\n", roster.Team.FullName, roster.Team.Abbreviation))
	sb.WriteString(fmt.Sprintf("Stadium: %s\n", roster.Team.Stadium))
	sb.WriteString(fmt.Sprintf("Source:  %s\n", roster.Source))
	if roster.Warning != "" {
		sb.WriteString(fmt.Sprintf("Note:    %s\n", roster.Warning))
	}

	if len(roster.Players) > 0 {
		sb.WriteString(fmt.Sprintf("\n%d players:\n", len(roster.Players)))
		count := min(len(roster.Players), maxItemsToShow*2)
		for i := 0; i < count; i++ {
			pl := roster.Players[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", pl.Name, pl.Position))
		}
		if len(roster.Players) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(roster.Players)-count))
		}
	}

	p.printBox("ROSTER", strings.TrimSuffix(sb.String(), "\n"))
}

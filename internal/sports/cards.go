package sports

import (
	"fmt"

	"github.com/jonathan/vibe-quiz/internal/types"
)

const sportsCategory = "sports"

// TeamThemedItems returns card titles for team gear and places.
func TeamThemedItems(team TeamInfo) []string {
	mascot := team.Name + " mascot"
	if team.Mascot != "" {
		mascot = team.Mascot + " mascot"
	}
	return []string{
		team.Name + " jersey",
		team.Name + " cap",
		team.Stadium + " stadium",
		team.Name + " logo",
		team.Name + " banner",
		team.City + " baseball",
		team.Name + " foam finger",
		team.Name + " pennant",
		mascot,
	}
}

// PlayerEnrichment returns the card enrichment describing player on team.
func PlayerEnrichment(team TeamInfo, player Player) *types.CardEnrichment {
	position := player.PositionName
	if position == "" {
		position = PositionName(player.Position)
	}
	return &types.CardEnrichment{
		PlayerPosition: position,
		TeamName:       team.Name,
		TeamFullName:   team.FullName,
		Sport:          Sport,
	}
}

// PlayerCards turns a roster into related sports cards, one per named player.
func PlayerCards(team TeamInfo, roster []Player) []types.Card {
	cards := make([]types.Card, 0, len(roster))
	seen := make(map[string]bool, len(roster))
	for _, p := range roster {
		if p.Name == "" || seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		cards = append(cards, types.Card{
			ID:         fmt.Sprintf("player-%s-%d", team.Slug, p.ID),
			Title:      p.Name,
			Query:      fmt.Sprintf("%s %s", p.Name, team.Name),
			Alt:        fmt.Sprintf("%s of the %s", p.Name, team.FullName),
			ThemeTags:  []string{sportsCategory, Sport},
			Category:   sportsCategory,
			IsRelated:  true,
			Enrichment: PlayerEnrichment(team, p),
		})
	}
	return cards
}

// ThemedCards turns TeamThemedItems into related sports cards.
func ThemedCards(team TeamInfo) []types.Card {
	items := TeamThemedItems(team)
	cards := make([]types.Card, 0, len(items))
	for i, title := range items {
		cards = append(cards, types.Card{
			ID:        fmt.Sprintf("team-%s-%d", team.Slug, i),
			Title:     title,
			Query:     title,
			Alt:       title,
			ThemeTags: []string{sportsCategory, Sport},
			Category:  sportsCategory,
			IsRelated: true,
		})
	}
	return cards
}

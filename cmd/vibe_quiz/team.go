package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/vibe-quiz/internal/observability"
	"github.com/jonathan/vibe-quiz/internal/sports"
	"github.com/jonathan/vibe-quiz/internal/types"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Resolve an MLB team and fetch its roster",
	Long:  "Resolves free text such as \"LA Dodgers\" or \"cubbies\" to an MLB team, fetches the active roster from the stats API (falling back to curated rosters), and prints the roster with its player and team cards.",
	RunE:  runTeam,
}

var (
	teamQuery   string
	teamAPIURL  string
	teamTimeout time.Duration
	teamPretty  bool
)

// TeamDocument is the output of the team command.
type TeamDocument struct {
	Roster *sports.Roster `json:"roster"`
	Cards  []types.Card   `json:"cards"`
}

func init() {
	teamCmd.Flags().StringVarP(&teamQuery, "query", "q", "", "Team name, city, nickname or slug (required)")
	teamCmd.Flags().StringVar(&teamAPIURL, "api-url", sports.DefaultStatsBaseURL, "MLB stats API base URL")
	teamCmd.Flags().DurationVar(&teamTimeout, "timeout", 15*time.Second, "Roster request timeout")
	teamCmd.Flags().BoolVar(&teamPretty, "pretty", false, "Print a roster box instead of JSON")
	mustMarkRequired(teamCmd, "query")

	rootCmd.AddCommand(teamCmd)
}

func runTeam(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), teamTimeout)
	defer cancel()

	svc := sports.NewRosterService(sports.WithBaseURL(teamAPIURL))
	roster, err := svc.GetRoster(ctx, teamQuery)
	if err != nil {
		return fmt.Errorf("failed to get roster: %w", err)
	}

	if teamPretty {
		observability.NewPrinter(cmd.OutOrStdout()).PrintRoster(roster)
		return nil
	}
	cards := append(sports.PlayerCards(roster.Team, roster.Players), sports.ThemedCards(roster.Team)...)
	return writeJSON(cmd.OutOrStdout(), "", TeamDocument{Roster: roster, Cards: cards})
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/vibe-quiz/internal/observability"
	"github.com/jonathan/vibe-quiz/internal/schemas"
	"github.com/jonathan/vibe-quiz/internal/scoring"
	"github.com/jonathan/vibe-quiz/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a swipe history into a personality result",
	Long:  "Reads a JSON swipe history (a list of {card, liked, skipped} or an object with a \"results\" list), computes theme scores and the personality type, and writes the QuizResult JSON.",
	RunE:  runScore,
}

var (
	scoreInput   string
	scoreOutput  string
	scoreVerbose bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "in", "i", "", "Path to input swipe history JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output QuizResult JSON file (default stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print the result as a summary box")
	mustMarkRequired(scoreCmd, "in")

	rootCmd.AddCommand(scoreCmd)
}

// readSwipes accepts either a bare list or {"results": [...]}.
func readSwipes(path string) ([]types.SwipeResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read swipe history %s: %w", path, err)
	}

	var list []types.SwipeResult
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var wrapped struct {
		Results []types.SwipeResult `json:"results"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swipe history JSON: %w", err)
	}
	return wrapped.Results, nil
}

func runScore(cmd *cobra.Command, _ []string) error {
	swipes, err := readSwipes(scoreInput)
	if err != nil {
		return err
	}

	result := scoring.Summarize(swipes)
	if err := schemas.Validate(schemas.QuizResult, result); err != nil {
		return fmt.Errorf("result failed schema validation: %w", err)
	}

	if scoreVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintResult(&result)
	}
	if err := writeJSON(cmd.OutOrStdout(), scoreOutput, result); err != nil {
		return err
	}
	if scoreOutput != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Scored %d swipes to %s\n", result.TotalSwipes, scoreOutput)
	}
	return nil
}

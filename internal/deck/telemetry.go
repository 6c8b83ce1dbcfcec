package deck

import "github.com/jonathan/vibe-quiz/internal/types"

// Telemetry summarizes the related/surprise mix of a deck.
type Telemetry struct {
	Total           int     `json:"total"`
	Related         int     `json:"related"`
	Surprise        int     `json:"surprise"`
	RelatedPercent  float64 `json:"related_percent"`
	SurprisePercent float64 `json:"surprise_percent"`
}

// Summarize computes Telemetry for cards.
func Summarize(cards []types.Card) Telemetry {
	t := Telemetry{Total: len(cards)}
	for _, c := range cards {
		if c.IsRelated {
			t.Related++
		} else {
			t.Surprise++
		}
	}
	if t.Total > 0 {
		t.RelatedPercent = float64(t.Related) / float64(t.Total) * 100
		t.SurprisePercent = float64(t.Surprise) / float64(t.Total) * 100
	}
	return t
}

package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/vibe-quiz/internal/deck"
	"github.com/jonathan/vibe-quiz/internal/enrichment"
	"github.com/jonathan/vibe-quiz/internal/expansion"
	"github.com/jonathan/vibe-quiz/internal/images"
	"github.com/jonathan/vibe-quiz/internal/taxonomy"
	"github.com/jonathan/vibe-quiz/internal/types"
)

// maxParallelEnrich bounds concurrent card enrichment.
const maxParallelEnrich = 8

// DeckCard is an enriched card with an optional picture.
type DeckCard struct {
	types.EnrichedCard
	Image *images.Image `json:"image,omitempty"`
}

// DeckResponse is the body returned by POST /decks.
type DeckResponse struct {
	Cards     []DeckCard     `json:"cards"`
	Telemetry deck.Telemetry `json:"telemetry"`
}

// handleBuildDeck builds, enriches and optionally illustrates a deck.
func (s *Server) handleBuildDeck(w http.ResponseWriter, r *http.Request) {
	var cfg types.DeckConfig
	if err := s.decodeJSON(w, r, &cfg); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.validateDeckConfig(cfg); err != nil {
		s.writeError(w, err)
		return
	}
	if cfg.TargetCount == 0 && !cfg.Unlimited {
		cfg.TargetCount = s.cfg.DefaultTargetCount
	}

	cards := s.builder.Build(cfg)
	enriched, err := enrichCards(r.Context(), cards)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]DeckCard, len(enriched))
	for i, e := range enriched {
		out[i] = DeckCard{EnrichedCard: e}
	}

	if withImages, _ := strconv.ParseBool(r.URL.Query().Get("images")); withImages {
		queries := make([]string, len(cards))
		for i, c := range cards {
			queries[i] = c.Query
		}
		found, err := s.images.SearchMany(r.Context(), queries)
		if err != nil {
			s.log.Warn("deck image lookup failed", "error", err)
		} else {
			for i := range out {
				img := found[i]
				out[i].Image = &img
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, DeckResponse{Cards: out, Telemetry: deck.Summarize(cards)})
}

// ExplainRequest is a card to enrich, or a bare concept when no card exists.
type ExplainRequest struct {
	types.Card
	Concept string `json:"concept,omitempty"`
}

// handleExplainCard returns the icon and explanation for a single card. A
// request with only a concept gets the kid-friendly concept explanation.
func (s *Server) handleExplainCard(w http.ResponseWriter, r *http.Request) {
	var req ExplainRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		if concept := strings.TrimSpace(req.Concept); concept != "" {
			s.jsonResponse(w, http.StatusOK, enrichment.ExplainConcept(concept))
			return
		}
		s.writeError(w, &ErrValidation{Field: "body", Message: "title or concept is required"})
		return
	}
	s.jsonResponse(w, http.StatusOK, enrichment.Enrich(req.Card))
}

// handleIcons returns the category icon table, or one icon when title is given.
func (s *Server) handleIcons(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if title := q.Get("title"); title != "" {
		var tags []string
		if raw := q.Get("tags"); raw != "" {
			tags = strings.Split(raw, ",")
		}
		s.jsonResponse(w, http.StatusOK, enrichment.GetCardIcon(title, q.Get("category"), tags))
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"categories": enrichment.AllCategoryIcons()})
}

func (s *Server) handlePersonalities(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"personalities": taxonomy.Personalities()})
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"categories": taxonomy.Categories()})
}

// validateDeckConfig checks struct tags and that every selected category is known.
func (s *Server) validateDeckConfig(cfg types.DeckConfig) error {
	if err := s.validate.Struct(cfg); err != nil {
		return validationError(err)
	}
	for _, c := range cfg.SelectedCategories {
		if !taxonomy.IsCategory(c) && !expansion.HasCategoryPool(c) {
			return &ErrValidation{Field: "selected_categories", Message: "unknown category " + strconv.Quote(c)}
		}
	}
	return nil
}

// validationError converts the first validator failure into an ErrValidation.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ErrValidation{Field: fe.Field(), Message: "failed '" + fe.Tag() + "' validation"}
	}
	return &ErrValidation{Field: "body", Message: err.Error()}
}

// enrichCards enriches cards concurrently, preserving order.
func enrichCards(ctx context.Context, cards []types.Card) ([]types.EnrichedCard, error) {
	out := make([]types.EnrichedCard, len(cards))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelEnrich)
	for i, c := range cards {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = enrichment.Enrich(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

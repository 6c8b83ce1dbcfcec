// Package images finds kid-safe pictures for card titles.
//
// Providers are tried in order. Queries that fail the content denylist skip
// providers entirely, and provider results are filtered by the same list.
// When nothing usable comes back, seeded placeholders are returned.
package images

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/vibe-quiz/internal/fetch"
	"github.com/jonathan/vibe-quiz/internal/logger"
)

// DefaultCount is the number of images returned when none is requested.
const DefaultCount = 5

// maxParallelLookups bounds concurrent provider calls in SearchMany.
const maxParallelLookups = 4

// Image source names.
const (
	SourceUnsplash    = "unsplash"
	SourceHTML        = "html"
	SourcePlaceholder = "placeholder"
)

// Image is a picture for a card.
type Image struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Credit string `json:"credit"`
	Source string `json:"source"`
}

// Provider searches one image backend.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, count int) ([]Image, error)
}

// Service searches providers in order and falls back to placeholders.
type Service struct {
	providers []Provider
	count     int
	log       *logger.Logger
}

// DefaultProviders builds the provider chain from settings: Unsplash when an
// access key is set, then the HTML page provider when a template is set.
func DefaultProviders(unsplashKey, unsplashBaseURL, htmlTemplate string, opts *fetch.Options) []Provider {
	var providers []Provider
	if p := NewUnsplashProvider(unsplashKey, unsplashBaseURL, opts); p != nil {
		providers = append(providers, p)
	}
	if p := NewHTMLProvider(htmlTemplate, opts); p != nil {
		providers = append(providers, p)
	}
	return providers
}

// NewService creates a Service. Nil providers are ignored.
func NewService(log *logger.Logger, count int, providers ...Provider) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if count <= 0 {
		count = DefaultCount
	}
	s := &Service{count: count, log: log}
	for _, p := range providers {
		if p != nil {
			s.providers = append(s.providers, p)
		}
	}
	return s
}

// Providers returns the names of the configured providers in search order.
func (s *Service) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for _, p := range s.providers {
		names = append(names, p.Name())
	}
	return names
}

// Search returns up to count images for query. Provider errors are logged and
// skipped; only an empty query is an error.
func (s *Service) Search(ctx context.Context, query string, count int) ([]Image, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if count <= 0 {
		count = s.count
	}

	if !IsContentSafe(query) {
		s.log.Info("unsafe image query, using placeholders", "query", query)
		return Placeholders(query, count), nil
	}

	for _, p := range s.providers {
		found, err := p.Search(ctx, query, count)
		if err != nil {
			s.log.Warn("image provider failed", "provider", p.Name(), "query", query, "error", err)
			continue
		}
		safe := make([]Image, 0, len(found))
		for _, img := range found {
			if IsContentSafe(img.Alt) {
				safe = append(safe, img)
			}
		}
		if len(safe) > 0 {
			if len(safe) > count {
				safe = safe[:count]
			}
			return safe, nil
		}
	}

	return Placeholders(query, count), nil
}

// SearchMany returns the first image for each label, in label order.
// Lookups run concurrently; a failed lookup yields that label's placeholder.
func (s *Service) SearchMany(ctx context.Context, labels []string) ([]Image, error) {
	out := make([]Image, len(labels))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLookups)

	for i, label := range labels {
		g.Go(func() error {
			found, err := s.Search(gctx, label, 1)
			if err != nil || len(found) == 0 {
				out[i] = firstPlaceholder(label)
				return nil
			}
			out[i] = found[0]
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to look up images: %w", err)
	}
	return out, nil
}

func firstPlaceholder(label string) Image {
	if label == "" {
		label = "image"
	}
	return Placeholders(label, 1)[0]
}

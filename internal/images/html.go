package images

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jonathan/vibe-quiz/internal/fetch"
)

// HTMLProvider scrapes result images from a search page. The URL template
// must contain "{query}", which is replaced by the escaped query.
type HTMLProvider struct {
	template string
	opts     *fetch.Options
}

// NewHTMLProvider returns nil when template is empty or lacks "{query}".
func NewHTMLProvider(template string, opts *fetch.Options) *HTMLProvider {
	if !strings.Contains(template, "{query}") {
		return nil
	}
	if opts == nil {
		opts = fetch.DefaultOptions()
	}
	return &HTMLProvider{template: template, opts: opts}
}

func (p *HTMLProvider) Name() string { return SourceHTML }

func (p *HTMLProvider) Search(ctx context.Context, query string, count int) ([]Image, error) {
	pageURL := strings.ReplaceAll(p.template, "{query}", url.QueryEscape(query))

	result, err := fetch.URL(ctx, pageURL, p.opts)
	if err != nil {
		return nil, err
	}

	source := fetch.DetectSource(pageURL)
	candidates, err := fetch.ExtractImages(result.Body, pageURL, fetch.ImageSelectors(source), fetch.NoiseSelectors(source)...)
	if err != nil {
		return nil, fmt.Errorf("failed to extract images: %w", err)
	}

	host := pageURL
	if u, err := url.Parse(pageURL); err == nil {
		host = u.Host
	}

	out := make([]Image, 0, count)
	for _, c := range candidates {
		alt := c.Alt
		if alt == "" {
			alt = query
		}
		out = append(out, Image{
			URL:    c.URL,
			Alt:    alt,
			Credit: "Image from " + host,
			Source: SourceHTML,
		})
		if len(out) >= count {
			break
		}
	}
	return out, nil
}

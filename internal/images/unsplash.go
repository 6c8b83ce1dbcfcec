package images

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jonathan/vibe-quiz/internal/fetch"
)

// DefaultUnsplashBaseURL is the Unsplash API host.
const DefaultUnsplashBaseURL = "https://api.unsplash.com"

// UnsplashProvider searches the Unsplash photo API.
type UnsplashProvider struct {
	accessKey string
	baseURL   string
	opts      *fetch.Options
}

// NewUnsplashProvider returns nil when accessKey is empty.
func NewUnsplashProvider(accessKey, baseURL string, opts *fetch.Options) *UnsplashProvider {
	if accessKey == "" {
		return nil
	}
	if baseURL == "" {
		baseURL = DefaultUnsplashBaseURL
	}
	if opts == nil {
		opts = fetch.DefaultOptions()
	}
	return &UnsplashProvider{
		accessKey: accessKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		opts:      opts,
	}
}

func (p *UnsplashProvider) Name() string { return SourceUnsplash }

type unsplashSearchResponse struct {
	Results []struct {
		Description    string `json:"description"`
		AltDescription string `json:"alt_description"`
		URLs           struct {
			Regular string `json:"regular"`
		} `json:"urls"`
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	} `json:"results"`
}

func (p *UnsplashProvider) Search(ctx context.Context, query string, count int) ([]Image, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", "10")
	params.Set("content_filter", "high")
	params.Set("orientation", "squarish")

	opts := *p.opts
	opts.Headers = map[string]string{"Authorization": "Client-ID " + p.accessKey}

	var payload unsplashSearchResponse
	if err := fetch.JSON(ctx, p.baseURL+"/search/photos?"+params.Encode(), &opts, &payload); err != nil {
		return nil, fmt.Errorf("failed to search unsplash: %w", err)
	}

	out := make([]Image, 0, len(payload.Results))
	for _, photo := range payload.Results {
		if photo.URLs.Regular == "" {
			continue
		}
		if !IsContentSafe(photo.Description + " " + photo.AltDescription) {
			continue
		}
		alt := photo.AltDescription
		if alt == "" {
			alt = query
		}
		out = append(out, Image{
			URL:    photo.URLs.Regular,
			Alt:    alt,
			Credit: fmt.Sprintf("Photo by %s on Unsplash", photo.User.Name),
			Source: SourceUnsplash,
		})
		if len(out) >= count {
			break
		}
	}
	return out, nil
}

// Package fetch provides HTTP fetching for JSON APIs and HTML pages, plus
// image extraction from fetched HTML.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; VibeQuiz/1.0)"

// maxBodyBytes bounds how much of a response is read.
const maxBodyBytes = 5 << 20

// Result holds the raw content from a URL fetch.
type Result struct {
	URL         string
	Body        string
	ContentType string
	StatusCode  int
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	Client    *http.Client
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

func (o *Options) client() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	return &http.Client{Timeout: o.Timeout}
}

// URL retrieves the body of a URL. Non-200 responses return both the result and an Error.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := opts.client().Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		Body:        string(bodyBytes),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return result, nil
}

// JSON fetches urlStr and decodes the body into out.
func JSON(ctx context.Context, urlStr string, opts *Options, out interface{}) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	withAccept := *opts
	withAccept.Headers = make(map[string]string, len(opts.Headers)+1)
	withAccept.Headers["Accept"] = "application/json"
	for k, v := range opts.Headers {
		withAccept.Headers[k] = v
	}

	result, err := URL(ctx, urlStr, &withAccept)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(result.Body), out); err != nil {
		return &Error{
			URL:     urlStr,
			Message: "failed to decode JSON",
			Cause:   err,
		}
	}
	return nil
}

// ImageCandidate is an image found on an HTML page.
type ImageCandidate struct {
	URL   string
	Alt   string
	Width int
}

// ExtractImages returns absolute image URLs found by selectors in html.
// Relative sources resolve against baseURL. Noise regions are removed first,
// and data URIs, tracking pixels and duplicates are skipped.
func ExtractImages(html, baseURL string, selectors []string, noiseSelectors ...string) ([]ImageCandidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads").Remove()
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	base, _ := url.Parse(baseURL)
	if len(selectors) == 0 {
		selectors = []string{"img"}
	}

	var out []ImageCandidate
	seen := make(map[string]bool)
	for _, selector := range selectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			src := imageSource(s)
			if src == "" || strings.HasPrefix(src, "data:") {
				return
			}
			abs := resolve(base, src)
			if abs == "" || seen[abs] {
				return
			}
			width := attrInt(s, "width")
			if width > 0 && width < 50 {
				return
			}
			seen[abs] = true
			out = append(out, ImageCandidate{
				URL:   abs,
				Alt:   cleanWhitespace(s.AttrOr("alt", "")),
				Width: width,
			})
		})
		if len(out) > 0 {
			break
		}
	}
	return out, nil
}

func imageSource(s *goquery.Selection) string {
	for _, attr := range []string{"src", "data-src"} {
		if v := strings.TrimSpace(s.AttrOr(attr, "")); v != "" {
			return v
		}
	}
	if srcset := strings.TrimSpace(s.AttrOr("srcset", "")); srcset != "" {
		first := strings.Fields(strings.Split(srcset, ",")[0])
		if len(first) > 0 {
			return first[0]
		}
	}
	return ""
}

func resolve(base *url.URL, ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if base != nil {
		u = base.ResolveReference(u)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}

func attrInt(s *goquery.Selection, name string) int {
	var n int
	if _, err := fmt.Sscanf(s.AttrOr(name, ""), "%d", &n); err != nil {
		return 0
	}
	return n
}

// cleanWhitespace collapses runs of whitespace into single spaces.
func cleanWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

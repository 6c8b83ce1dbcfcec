package fetch

import (
	"net/url"
	"strings"
)

// Source identifies a known image host.
type Source string

const (
	// SourceWikimedia is Wikimedia Commons search.
	SourceWikimedia Source = "wikimedia"
	// SourceOpenverse is the Openverse image search site.
	SourceOpenverse Source = "openverse"
	// SourceGeneric is any other page.
	SourceGeneric Source = "generic"
)

// DetectSource identifies the image host of a URL.
func DetectSource(urlStr string) Source {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return SourceGeneric
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case strings.HasSuffix(host, "wikimedia.org"):
		return SourceWikimedia
	case strings.HasSuffix(host, "openverse.org"):
		return SourceOpenverse
	default:
		return SourceGeneric
	}
}

// ImageSelectors returns the selectors that locate result images for a source.
func ImageSelectors(source Source) []string {
	switch source {
	case SourceWikimedia:
		return []string{
			".searchResultImage img",
			".mw-search-result img",
			".gallerybox img",
		}
	case SourceOpenverse:
		return []string{
			"figure img",
			"a[href*='/image/'] img",
		}
	default:
		return []string{
			"main img",
			"article img",
			"figure img",
			"img",
		}
	}
}

// NoiseSelectors returns page regions whose images are never results.
func NoiseSelectors(source Source) []string {
	common := []string{
		".logo",
		".avatar",
		".icon",
		".social-share",
		".cookie-banner",
	}

	switch source {
	case SourceWikimedia:
		return append(common,
			"#mw-panel",
			"#p-logo",
			".mw-footer",
		)
	case SourceOpenverse:
		return append(common,
			".brand",
		)
	default:
		return common
	}
}

package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSource(t *testing.T) {
	tests := []struct {
		url  string
		want Source
	}{
		{"https://commons.wikimedia.org/w/index.php?search=otter", SourceWikimedia},
		{"https://upload.wikimedia.org/x.jpg", SourceWikimedia},
		{"https://openverse.org/search/image?q=fox", SourceOpenverse},
		{"https://example.com/gallery", SourceGeneric},
		{"::not a url", SourceGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSource(tt.url))
		})
	}
}

func TestImageSelectors(t *testing.T) {
	assert.Contains(t, ImageSelectors(SourceWikimedia), ".searchResultImage img")
	assert.Contains(t, ImageSelectors(SourceGeneric), "img")
}

func TestNoiseSelectors(t *testing.T) {
	common := NoiseSelectors(SourceGeneric)
	assert.Contains(t, common, ".logo")

	wiki := NoiseSelectors(SourceWikimedia)
	assert.Contains(t, wiki, "#p-logo")
	assert.Greater(t, len(wiki), len(common))
}

package taxonomy

import (
	"regexp"
	"strings"
)

// minMatchLen guards substring matching against very short fragments like "ai" or "dc".
const minMatchLen = 3

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)

var stopWords = map[string]bool{
	"the": true, "and": true, "but": true, "for": true, "are": true, "was": true, "were": true,
	"been": true, "being": true, "have": true, "has": true, "had": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "may": true, "might": true,
	"must": true, "can": true, "this": true, "that": true, "these": true, "those": true,
	"with": true, "from": true, "about": true, "into": true, "through": true, "during": true,
	"before": true, "after": true, "above": true, "below": true, "between": true, "under": true,
	"again": true, "further": true, "then": true, "once": true, "here": true, "there": true,
	"when": true, "where": true, "why": true, "how": true, "all": true, "each": true, "few": true,
	"more": true, "most": true, "other": true, "some": true, "such": true, "only": true,
	"own": true, "same": true, "than": true, "too": true, "very": true, "just": true, "also": true,
	"now": true, "like": true, "really": true, "love": true, "favorite": true, "best": true,
	"thing": true, "things": true, "stuff": true, "lot": true, "lots": true,
}

// ParseKeywords extracts normalized keywords from free text.
// Words of two characters or fewer and stop words are dropped; the first occurrence order is kept.
func ParseKeywords(input string) []string {
	cleaned := nonAlphanumeric.ReplaceAllString(strings.ToLower(input), " ")

	seen := make(map[string]bool)
	keywords := make([]string, 0)
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 || IsStopWord(word) || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}
	return keywords
}

// IsStopWord reports whether word is ignored by ParseKeywords.
func IsStopWord(word string) bool {
	return stopWords[strings.ToLower(strings.TrimSpace(word))]
}

// RelatedTerms returns terms associated with keyword.
// A direct key match returns that key's terms. Otherwise the first group with a term overlapping
// the keyword returns its key followed by its other terms. Unknown keywords return nil.
func RelatedTerms(keyword string) []string {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	if normalized == "" {
		return nil
	}

	for _, candidate := range []string{normalized, normalized + "s", strings.TrimSuffix(normalized, "s")} {
		for _, group := range relatedTerms {
			if group.Key == candidate {
				out := make([]string, len(group.Terms))
				copy(out, group.Terms)
				return out
			}
		}
	}

	for _, group := range relatedTerms {
		for _, term := range group.Terms {
			if overlaps(term, normalized) {
				out := []string{group.Key}
				for _, t := range group.Terms {
					if t != normalized {
						out = append(out, t)
					}
				}
				return out
			}
		}
	}

	return nil
}

// ThemeForKeyword resolves a keyword or tag to a category id.
// Resolution order: category id overlap, related-term group overlap, direct mappings, then Other.
func ThemeForKeyword(keyword string) string {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	if normalized == "" {
		return Other
	}

	for _, c := range categories {
		if overlaps(c.ID, normalized) {
			return c.ID
		}
	}

	for _, group := range relatedTerms {
		if overlaps(group.Key, normalized) {
			return CategoryForTerm(group.Key)
		}
		for _, term := range group.Terms {
			if overlaps(term, normalized) {
				return CategoryForTerm(group.Key)
			}
		}
	}

	if theme, ok := directMappings[normalized]; ok {
		return theme
	}

	return Other
}

// CategoryForTerm returns the category of a related-term key, or Other.
func CategoryForTerm(term string) string {
	if category, ok := termCategories[strings.ToLower(strings.TrimSpace(term))]; ok {
		return category
	}
	return Other
}

// overlaps reports whether a contains b or b contains a.
// The shorter side must be at least minMatchLen long unless the strings are equal.
func overlaps(a, b string) bool {
	if a == b {
		return true
	}
	if len(b) >= minMatchLen && strings.Contains(a, b) {
		return true
	}
	return len(a) >= minMatchLen && strings.Contains(b, a)
}

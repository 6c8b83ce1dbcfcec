// Package expansion turns free-form interests into specific, kid-safe card titles.
//
// A curated table maps concepts ("dogs", "pizza") to concrete subtypes. Titles
// never echo the words a user typed; ValidateTitle enforces that rule and
// GenerateValidTitle produces a replacement when a title breaks it.
package expansion

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultConceptCount is the number of expansions returned when callers pass 0.
	DefaultConceptCount = 8
	// minPartialWordLen guards the "term contains value word" partial match.
	minPartialWordLen = 3
)

var (
	nonWordPattern    = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeTerm lowercases, trims, strips punctuation, and collapses whitespace.
func NormalizeTerm(term string) string {
	s := strings.ToLower(strings.TrimSpace(term))
	s = nonWordPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Expander expands concepts using an injectable random source.
// A nil rng uses the math/rand/v2 global source, which is safe for concurrent use.
type Expander struct {
	rng *rand.Rand
}

// NewExpander creates an Expander. Pass a seeded *rand.Rand for reproducible output.
func NewExpander(rng *rand.Rand) *Expander {
	return &Expander{rng: rng}
}

func (e *Expander) shuffle(n int, swap func(i, j int)) {
	if e.rng != nil {
		e.rng.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}

func (e *Expander) shuffled(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	e.shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Expand returns up to count specific titles for term. Curated keys (including
// simple plural variants) win, then partial matches against curated values, then
// generic templates. The result never contains a title equal to term.
func (e *Expander) Expand(term string, count int) []string {
	if count <= 0 {
		count = DefaultConceptCount
	}
	normalized := NormalizeTerm(term)
	if normalized == "" {
		return nil
	}
	inputs := []string{term}

	for _, key := range keyVariants(normalized) {
		if values := lookupConcept(key); values != nil {
			return take(filterValid(e.shuffled(values), inputs), count)
		}
	}

	if matches := partialMatches(normalized); len(matches) > 0 {
		if valid := filterValid(e.shuffled(matches), inputs); len(valid) > 0 {
			return take(valid, count)
		}
	}

	return take(e.templateTitles(strings.TrimSpace(term)), count)
}

// Category returns up to count titles drawn from every concept behind category,
// shuffled together. Unknown categories fall back to Expand on the raw name.
func (e *Expander) Category(category string, count int) []string {
	keys := CategoryConcepts(category)
	if len(keys) == 0 {
		return e.Expand(category, count)
	}
	if count <= 0 {
		count = DefaultConceptCount
	}
	var pool []string
	seen := make(map[string]bool)
	for _, key := range keys {
		for _, v := range lookupConcept(key) {
			n := NormalizeTerm(v)
			if seen[n] {
				continue
			}
			seen[n] = true
			pool = append(pool, v)
		}
	}
	return take(filterValid(e.shuffled(pool), []string{category}), count)
}

// GenerateValidTitle finds an expansion of base that does not echo any of rawInputs.
// When none qualifies it returns "<modifier> <base> vibes", cycling modifiers by attempt.
func (e *Expander) GenerateValidTitle(base string, rawInputs []string, attempt int) string {
	for _, candidate := range e.Expand(base, 10) {
		if ValidateTitle(candidate, rawInputs) {
			return candidate
		}
	}
	if attempt < 0 {
		attempt = -attempt
	}
	modifier := lastResortModifiers[attempt%len(lastResortModifiers)]
	return modifier + " " + strings.TrimSpace(base) + " vibes"
}

func (e *Expander) templateTitles(thing string) []string {
	out := make([]string, 0, len(fallbackTemplates))
	for _, tmpl := range e.shuffled(fallbackTemplates) {
		title := strings.ReplaceAll(tmpl, "{thing}", thing)
		out = append(out, capitalizeFirst(title))
	}
	return out
}

var defaultExpander = NewExpander(nil)

// ExpandConcept expands term with the shared, unseeded Expander.
func ExpandConcept(term string, count int) []string {
	return defaultExpander.Expand(term, count)
}

// GenerateValidTitle uses the shared, unseeded Expander.
func GenerateValidTitle(base string, rawInputs []string, attempt int) string {
	return defaultExpander.GenerateValidTitle(base, rawInputs, attempt)
}

func keyVariants(normalized string) []string {
	compact := strings.ReplaceAll(normalized, " ", "")
	variants := []string{normalized, normalized + "s"}
	if strings.HasSuffix(normalized, "s") {
		variants = append(variants, strings.TrimSuffix(normalized, "s"))
	}
	if compact != normalized {
		variants = append(variants, compact, compact+"s")
	}
	return variants
}

// partialMatches returns values of the first concept with a value containing
// the term, or whose first word is contained in the term.
func partialMatches(normalized string) []string {
	for _, group := range concepts {
		var matches []string
		for _, v := range group.Expansions {
			nv := NormalizeTerm(v)
			if strings.Contains(nv, normalized) {
				matches = append(matches, v)
				continue
			}
			first, _, _ := strings.Cut(nv, " ")
			if len(first) >= minPartialWordLen && strings.Contains(normalized, first) {
				matches = append(matches, v)
			}
		}
		if len(matches) > 0 {
			return matches
		}
	}
	return nil
}

func filterValid(values, inputs []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if ValidateTitle(v, inputs) {
			out = append(out, v)
		}
	}
	return out
}

func take(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

package images

import "strings"

// contentDenylist holds words that make a query or image description unsuitable for kids.
var contentDenylist = []string{
	"adult", "sexy", "nude", "naked", "erotic", "sensual", "lingerie",
	"bikini", "underwear", "beer", "wine", "alcohol", "drunk", "smoking",
	"cigarette", "violence", "blood", "gore", "weapon", "gun", "knife",
	"scary", "horror", "death", "kill", "drug", "marijuana", "cannabis",
}

// IsContentSafe reports whether text contains none of the denylisted words.
// Matching is by substring, so "gunpowder" is rejected along with "gun".
func IsContentSafe(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range contentDenylist {
		if strings.Contains(lower, word) {
			return false
		}
	}
	return true
}

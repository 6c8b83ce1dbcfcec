package images

import "fmt"

// CreditPlaceholder marks placeholder images.
const CreditPlaceholder = "Placeholder"

var placeholderImages = []Image{
	{URL: "/placeholders/nature-1.jpg", Alt: "Beautiful nature scene"},
	{URL: "/placeholders/nature-2.jpg", Alt: "Forest with sunlight"},
	{URL: "/placeholders/nature-3.jpg", Alt: "Mountain landscape"},
	{URL: "/placeholders/animal-1.jpg", Alt: "Cute animal"},
	{URL: "/placeholders/animal-2.jpg", Alt: "Friendly pet"},
	{URL: "/placeholders/animal-3.jpg", Alt: "Wildlife scene"},
	{URL: "/placeholders/food-1.jpg", Alt: "Delicious food"},
	{URL: "/placeholders/food-2.jpg", Alt: "Tasty treats"},
	{URL: "/placeholders/food-3.jpg", Alt: "Yummy snack"},
	{URL: "/placeholders/sports-1.jpg", Alt: "Sports activity"},
	{URL: "/placeholders/sports-2.jpg", Alt: "Fun game"},
	{URL: "/placeholders/art-1.jpg", Alt: "Colorful art"},
	{URL: "/placeholders/art-2.jpg", Alt: "Creative artwork"},
	{URL: "/placeholders/music-1.jpg", Alt: "Musical instruments"},
	{URL: "/placeholders/science-1.jpg", Alt: "Science experiment"},
	{URL: "/placeholders/space-1.jpg", Alt: "Space and stars"},
	{URL: "/placeholders/ocean-1.jpg", Alt: "Ocean waves"},
	{URL: "/placeholders/adventure-1.jpg", Alt: "Adventure scene"},
	{URL: "/placeholders/rainbow-1.jpg", Alt: "Rainbow colors"},
	{URL: "/placeholders/garden-1.jpg", Alt: "Beautiful garden"},
}

// seededSource is a small LCG seeded from a string hash, so the same query
// always yields the same placeholders.
type seededSource struct {
	state int64
}

func newSeededSource(seed string) *seededSource {
	var hash int32
	for _, r := range seed {
		hash = (hash << 5) - hash + int32(r)
	}
	return &seededSource{state: int64(hash)}
}

// next returns a value in [0, 0x7fffffff].
func (s *seededSource) next() int64 {
	s.state = (s.state*1103515245 + 12345) & 0x7fffffff
	return s.state
}

// Placeholders returns count placeholder images for query, stable per query.
func Placeholders(query string, count int) []Image {
	if count <= 0 {
		return []Image{}
	}
	order := make([]int, len(placeholderImages))
	for i := range order {
		order[i] = i
	}
	src := newSeededSource(query)
	for i := len(order) - 1; i > 0; i-- {
		j := int(src.next() % int64(i+1))
		order[i], order[j] = order[j], order[i]
	}

	if count > len(order) {
		count = len(order)
	}
	out := make([]Image, 0, count)
	for _, idx := range order[:count] {
		img := placeholderImages[idx]
		out = append(out, Image{
			URL:    img.URL,
			Alt:    fmt.Sprintf("%s - %s", query, img.Alt),
			Credit: CreditPlaceholder,
			Source: SourcePlaceholder,
		})
	}
	return out
}

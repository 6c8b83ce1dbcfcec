package taxonomy

import "github.com/jonathan/vibe-quiz/internal/types"

// personalities is the archetype catalog. Catalog order is the scoring tie-break order.
var personalities = []types.PersonalityType{
	{
		ID:          "adventurer",
		Name:        "The Adventurer",
		Emoji:       "🗺️",
		Description: "You're always ready for the next big adventure! You love exploring new places, trying new things, and discovering the unknown. Life is one big exciting journey for you!",
		Traits:      []string{"curious", "brave", "energetic", "outdoor-loving"},
		Suggestions: []string{"hiking trails", "treasure hunts", "travel books", "camping gear", "adventure movies"},
		Color:       "from-orange-400 to-amber-500",
	},
	{
		ID:          "cozy-collector",
		Name:        "The Cozy Collector",
		Emoji:       "🧸",
		Description: "You appreciate the comfy things in life! Whether it's collecting cool stuff, enjoying your favorite snacks, or relaxing with friends, you know how to make every moment special.",
		Traits:      []string{"thoughtful", "organized", "appreciative", "comfort-loving"},
		Suggestions: []string{"cozy blankets", "board games", "hot cocoa recipes", "stuffed animals", "story books"},
		Color:       "from-pink-400 to-rose-500",
	},
	{
		ID:          "creative-spark",
		Name:        "The Creative Spark",
		Emoji:       "🎨",
		Description: "Your imagination knows no limits! You see the world in colors and shapes that others might miss. Making things, drawing, building - that's where you shine brightest!",
		Traits:      []string{"imaginative", "artistic", "original", "expressive"},
		Suggestions: []string{"art supplies", "craft kits", "music lessons", "creative writing", "design apps"},
		Color:       "from-purple-400 to-fuchsia-500",
	},
	{
		ID:          "nature-pal",
		Name:        "The Nature Pal",
		Emoji:       "🌿",
		Description: "You feel most at home in nature! Animals, plants, and the great outdoors call to you. You care about the Earth and all the amazing creatures that live here.",
		Traits:      []string{"caring", "observant", "peaceful", "earth-loving"},
		Suggestions: []string{"nature documentaries", "gardening kits", "bird watching", "wildlife books", "outdoor activities"},
		Color:       "from-green-400 to-emerald-500",
	},
	{
		ID:          "brainy-builder",
		Name:        "The Brainy Builder",
		Emoji:       "🧩",
		Description: "Your brain is like a super computer! You love figuring out how things work, solving puzzles, and building amazing creations. Problems are just puzzles waiting to be solved!",
		Traits:      []string{"logical", "curious", "patient", "inventive"},
		Suggestions: []string{"LEGO sets", "science experiments", "coding games", "brain teasers", "building kits"},
		Color:       "from-blue-400 to-cyan-500",
	},
	{
		ID:          "team-captain",
		Name:        "The Team Captain",
		Emoji:       "⭐",
		Description: "You bring people together! Whether it's sports, games, or group projects, you know how to lead and make everyone feel included. Teamwork makes the dream work!",
		Traits:      []string{"friendly", "confident", "encouraging", "active"},
		Suggestions: []string{"team sports", "group games", "leadership books", "sports equipment", "club activities"},
		Color:       "from-yellow-400 to-orange-500",
	},
	{
		ID:          "chill-explorer",
		Name:        "The Chill Explorer",
		Emoji:       "🌊",
		Description: "You take life at your own pace - calm, cool, and collected! You enjoy discovering new things but in your own relaxed way. You find joy in the simple moments.",
		Traits:      []string{"relaxed", "thoughtful", "open-minded", "easy-going"},
		Suggestions: []string{"music playlists", "nature walks", "podcasts", "journaling", "photography"},
		Color:       "from-teal-400 to-cyan-500",
	},
	{
		ID:          "super-fan",
		Name:        "The Super Fan",
		Emoji:       "🎉",
		Description: "When you love something, you REALLY love it! You dive deep into your favorite things, know all the details, and your enthusiasm is totally contagious!",
		Traits:      []string{"passionate", "dedicated", "enthusiastic", "knowledgeable"},
		Suggestions: []string{"fan communities", "collectibles", "fan art", "trivia games", "themed parties"},
		Color:       "from-red-400 to-pink-500",
	},
	{
		ID:          "tech-wizard",
		Name:        "The Tech Wizard",
		Emoji:       "🤖",
		Description: "Technology is your superpower! You love gadgets, games, and all things digital. You're probably the first one your friends call when they need tech help!",
		Traits:      []string{"tech-savvy", "innovative", "quick-learning", "future-focused"},
		Suggestions: []string{"coding classes", "tech gadgets", "video games", "robotics kits", "digital art"},
		Color:       "from-violet-400 to-purple-500",
	},
	{
		ID:          "story-seeker",
		Name:        "The Story Seeker",
		Emoji:       "📚",
		Description: "Stories are your gateway to endless worlds! Whether reading, watching, or creating them, you love getting lost in amazing tales and unforgettable characters.",
		Traits:      []string{"imaginative", "empathetic", "curious", "creative"},
		Suggestions: []string{"book series", "movies", "writing prompts", "story games", "comic books"},
		Color:       "from-indigo-400 to-blue-500",
	},
	{
		ID:          "foodie-friend",
		Name:        "The Foodie Friend",
		Emoji:       "🍪",
		Description: "Your taste buds are always on an adventure! You love trying new foods, baking treats, and sharing snacks with friends. Every meal is an opportunity for yumminess!",
		Traits:      []string{"adventurous", "generous", "creative", "social"},
		Suggestions: []string{"kid-friendly recipes", "baking kits", "food shows", "cooking classes", "snack ideas"},
		Color:       "from-amber-400 to-yellow-500",
	},
	{
		ID:          "music-maestro",
		Name:        "The Music Maestro",
		Emoji:       "🎵",
		Description: "Music flows through everything you do! Whether you're playing, singing, or just listening, music makes your world go round. You've got rhythm in your soul!",
		Traits:      []string{"rhythmic", "expressive", "creative", "passionate"},
		Suggestions: []string{"music lessons", "concert tickets", "instruments", "music apps", "dance classes"},
		Color:       "from-rose-400 to-red-500",
	},
	{
		ID:          "animal-whisperer",
		Name:        "The Animal Whisperer",
		Emoji:       "🐾",
		Description: "Animals just get you, and you get them! From fluffy puppies to wild tigers, you notice how every creature thinks and feels. Pets trust you right away.",
		Traits:      []string{"gentle", "patient", "observant", "loyal"},
		Suggestions: []string{"animal shelters", "pet care books", "zoo visits", "wildlife cams", "animal drawing"},
		Color:       "from-lime-400 to-green-500",
	},
	{
		ID:          "kind-heart",
		Name:        "The Kind Heart",
		Emoji:       "💖",
		Description: "You make everyone around you feel welcome! Sharing treats, helping a friend, or caring for a pet, your kindness is the thing people remember most about you.",
		Traits:      []string{"caring", "generous", "warm", "helpful"},
		Suggestions: []string{"volunteer projects", "baking for friends", "friendship bracelets", "pet sitting", "kindness challenges"},
		Color:       "from-pink-300 to-red-400",
	},
	{
		ID:          "maker-inventor",
		Name:        "The Maker Inventor",
		Emoji:       "🛠️",
		Description: "If it doesn't exist yet, you'll build it! You love tinkering, crafting, and turning wild ideas into real things you can hold. Every box is a future invention.",
		Traits:      []string{"hands-on", "inventive", "resourceful", "determined"},
		Suggestions: []string{"maker kits", "cardboard engineering", "simple circuits", "woodworking for kids", "science fairs"},
		Color:       "from-orange-300 to-yellow-500",
	},
	{
		ID:          "cosmic-dreamer",
		Name:        "The Cosmic Dreamer",
		Emoji:       "🌌",
		Description: "Your mind lives among the stars! You wonder about planets, galaxies, and what might be out there waiting to be discovered. The sky is not the limit for you.",
		Traits:      []string{"wondering", "big-thinking", "curious", "hopeful"},
		Suggestions: []string{"telescopes", "planetarium trips", "space documentaries", "rocket kits", "star maps"},
		Color:       "from-indigo-500 to-purple-700",
	},
	{
		ID:          "sparkle-spirit",
		Name:        "The Sparkle Spirit",
		Emoji:       "✨",
		Description: "You bring the glitter to every room! Bright colors, shiny things, and a little bit of magic make you smile, and your cheerful energy is impossible to miss.",
		Traits:      []string{"cheerful", "bold", "playful", "bright"},
		Suggestions: []string{"glitter crafts", "costume parties", "nail art kits", "sticker collections", "dance parties"},
		Color:       "from-fuchsia-300 to-pink-500",
	},
	{
		ID:          "dream-weaver",
		Name:        "The Dream Weaver",
		Emoji:       "🦄",
		Description: "Dragons, fairies, and faraway kingdoms feel real when you imagine them! You dream up whole worlds with their own rules, creatures, and legends to explore.",
		Traits:      []string{"imaginative", "whimsical", "visionary", "creative"},
		Suggestions: []string{"fantasy novels", "world-building games", "dragon drawing", "magic tricks", "story journals"},
		Color:       "from-violet-300 to-indigo-500",
	},
	{
		ID:          "game-champion",
		Name:        "The Game Champion",
		Emoji:       "🎮",
		Description: "You never back down from a challenge! Leveling up, beating the boss, and finding every secret is what you live for. Practice makes you a legend on any screen.",
		Traits:      []string{"competitive", "strategic", "focused", "quick"},
		Suggestions: []string{"co-op games", "speedrun videos", "game design apps", "gaming tournaments", "strategy guides"},
		Color:       "from-emerald-400 to-cyan-600",
	},
	{
		ID:          "movie-buff",
		Name:        "The Movie Buff",
		Emoji:       "🍿",
		Description: "Lights, camera, action! You love big-screen moments, favorite characters, and quoting the best lines. Movie night is your favorite night of the whole week.",
		Traits:      []string{"expressive", "observant", "fun-loving", "dramatic"},
		Suggestions: []string{"movie marathons", "stop-motion apps", "behind-the-scenes videos", "popcorn recipes", "film clubs"},
		Color:       "from-red-500 to-amber-500",
	},
	{
		ID:          "style-star",
		Name:        "The Style Star",
		Emoji:       "👗",
		Description: "You have your own look and you rock it! Mixing outfits, colors, and accessories is how you show the world who you are, and everyone wants your style tips.",
		Traits:      []string{"confident", "trendy", "expressive", "detail-oriented"},
		Suggestions: []string{"fashion sketchbooks", "DIY accessories", "thrift flips", "sewing kits", "style challenges"},
		Color:       "from-pink-400 to-purple-500",
	},
	{
		ID:          "speed-racer",
		Name:        "The Speed Racer",
		Emoji:       "🏎️",
		Description: "Vroom vroom! You love anything that goes fast, from race cars to roller coasters. Engines, wheels, and finish lines get your heart racing every time.",
		Traits:      []string{"energetic", "daring", "mechanical", "fast-thinking"},
		Suggestions: []string{"model cars", "racing games", "go-kart tracks", "car shows", "RC vehicles"},
		Color:       "from-red-500 to-orange-600",
	},
	{
		ID:          "puzzle-master",
		Name:        "The Puzzle Master",
		Emoji:       "🧠",
		Description: "No riddle is safe from you! You love cracking codes, solving mysteries, and finding the clever answer nobody else spotted. Brain games are your favorite playground.",
		Traits:      []string{"clever", "patient", "logical", "persistent"},
		Suggestions: []string{"jigsaw puzzles", "escape rooms", "logic books", "chess clubs", "mystery games"},
		Color:       "from-sky-400 to-blue-600",
	},
	{
		ID:          "stage-star",
		Name:        "The Stage Star",
		Emoji:       "🎤",
		Description: "The spotlight loves you! Singing, acting, dancing, or telling jokes, you light up any stage and make the whole audience smile along with you.",
		Traits:      []string{"outgoing", "expressive", "brave", "entertaining"},
		Suggestions: []string{"theater camp", "karaoke nights", "talent shows", "dance classes", "comedy sketches"},
		Color:       "from-yellow-300 to-pink-500",
	},
	{
		ID:          "social-butterfly",
		Name:        "The Social Butterfly",
		Emoji:       "🦋",
		Description: "You never meet a stranger! Games, teams, and parties are better with lots of friends, and you are the one who makes sure nobody gets left out of the fun.",
		Traits:      []string{"friendly", "talkative", "inclusive", "upbeat"},
		Suggestions: []string{"party games", "team clubs", "group crafts", "pen pals", "playdates"},
		Color:       "from-cyan-300 to-blue-500",
	},
	{
		ID:          "curious-scientist",
		Name:        "The Curious Scientist",
		Emoji:       "🔬",
		Description: "Why? How? What if? You ask the best questions and love finding answers through experiments. Every day is a chance to test a new idea and learn something amazing.",
		Traits:      []string{"inquisitive", "methodical", "patient", "analytical"},
		Suggestions: []string{"science kits", "microscopes", "museum trips", "experiment videos", "nature journals"},
		Color:       "from-teal-400 to-emerald-600",
	},
	{
		ID:          "wonder-seeker",
		Name:        "The Wonder Seeker",
		Emoji:       "🔮",
		Description: "You love discovering rare and surprising things! Hidden treasures, amazing facts, and one-of-a-kind finds fill you with wonder, and you love sharing them with friends.",
		Traits:      []string{"curious", "appreciative", "detail-loving", "thoughtful"},
		Suggestions: []string{"fact books", "treasure boxes", "museum gift shops", "library adventures", "mystery collections"},
		Color:       "from-purple-300 to-indigo-500",
	},
}

// Personalities returns a copy of the archetype catalog in tie-break order.
func Personalities() []types.PersonalityType {
	out := make([]types.PersonalityType, len(personalities))
	copy(out, personalities)
	return out
}

// PersonalityByID returns the archetype with the given id.
func PersonalityByID(id string) (types.PersonalityType, bool) {
	for _, p := range personalities {
		if p.ID == id {
			return p, true
		}
	}
	return types.PersonalityType{}, false
}

package enrichment

import "github.com/jonathan/vibe-quiz/internal/types"

func icon(glyph, color, bg string) types.IconConfig {
	return types.IconConfig{Icon: glyph, Color: color, BgColor: bg}
}

// categoryIcons maps category ids and common tags to icons.
var categoryIcons = map[string]types.IconConfig{
	// Animals
	"animals":     icon("🐾", "#8B4513", "#FED7AA"),
	"dogs":        icon("🐕", "#A0522D", "#FED7AA"),
	"cats":        icon("🐱", "#DDA0DD", "#F3E8FF"),
	"pets":        icon("🐾", "#8B4513", "#FED7AA"),
	"horses":      icon("🐴", "#8B4513", "#FED7AA"),
	"birds":       icon("🐦", "#4169E1", "#DBEAFE"),
	"fish":        icon("🐠", "#00CED1", "#CFFAFE"),
	"dinosaurs":   icon("🦖", "#228B22", "#D1FAE5"),
	"pandas":      icon("🐼", "#2D3748", "#E2E8F0"),
	"butterflies": icon("🦋", "#9333EA", "#F3E8FF"),

	// Sports
	"sports":        icon("🏆", "#FFD700", "#FEF9C3"),
	"baseball":      icon("⚾", "#DC2626", "#FEE2E2"),
	"basketball":    icon("🏀", "#F97316", "#FFEDD5"),
	"soccer":        icon("⚽", "#16A34A", "#D1FAE5"),
	"football":      icon("🏈", "#92400E", "#FED7AA"),
	"tennis":        icon("🎾", "#84CC16", "#ECFCCB"),
	"swimming":      icon("🏊", "#0EA5E9", "#E0F2FE"),
	"gymnastics":    icon("🤸", "#EC4899", "#FCE7F3"),
	"skateboarding": icon("🛹", "#7C3AED", "#EDE9FE"),
	"running":       icon("🏃", "#3B82F6", "#DBEAFE"),
	"dancing":       icon("💃", "#EC4899", "#FCE7F3"),
	"sportsplayer":  icon("⭐", "#F59E0B", "#FEF3C7"),

	// Beauty
	"beauty": icon("✨", "#EC4899", "#FCE7F3"),
	"nails":  icon("💅", "#EC4899", "#FCE7F3"),
	"makeup": icon("💄", "#E11D48", "#FFE4E6"),

	// Food
	"food":       icon("🍕", "#F97316", "#FFEDD5"),
	"foodtreats": icon("🍰", "#EC4899", "#FCE7F3"),
	"pizza":      icon("🍕", "#F97316", "#FFEDD5"),
	"icecream":   icon("🍦", "#F472B6", "#FCE7F3"),
	"chocolate":  icon("🍫", "#78350F", "#FED7AA"),
	"cookies":    icon("🍪", "#D97706", "#FEF3C7"),
	"sushi":      icon("🍣", "#EF4444", "#FEE2E2"),
	"tacos":      icon("🌮", "#F59E0B", "#FEF3C7"),

	// Games
	"videogames": icon("🎮", "#7C3AED", "#EDE9FE"),
	"games":      icon("🎮", "#7C3AED", "#EDE9FE"),
	"minecraft":  icon("⛏️", "#16A34A", "#D1FAE5"),
	"roblox":     icon("🎲", "#EF4444", "#FEE2E2"),
	"pokemon":    icon("⚡", "#EAB308", "#FEF9C3"),
	"mario":      icon("🍄", "#EF4444", "#FEE2E2"),
	"fortnite":   icon("🔫", "#8B5CF6", "#EDE9FE"),

	// Music
	"music":   icon("🎵", "#EC4899", "#FCE7F3"),
	"piano":   icon("🎹", "#1F2937", "#F3F4F6"),
	"guitar":  icon("🎸", "#B45309", "#FED7AA"),
	"drums":   icon("🥁", "#DC2626", "#FEE2E2"),
	"singing": icon("🎤", "#8B5CF6", "#EDE9FE"),

	// Art & Crafts
	"crafts":    icon("🎨", "#EC4899", "#FCE7F3"),
	"artcrafts": icon("🎨", "#EC4899", "#FCE7F3"),
	"painting":  icon("🖼️", "#3B82F6", "#DBEAFE"),
	"drawing":   icon("✏️", "#F59E0B", "#FEF3C7"),

	// Movies & TV
	"movies":   icon("🎬", "#EF4444", "#FEE2E2"),
	"moviestv": icon("📺", "#3B82F6", "#DBEAFE"),

	// Outdoors
	"outdoors":  icon("🌲", "#16A34A", "#D1FAE5"),
	"nature":    icon("🌿", "#22C55E", "#DCFCE7"),
	"beach":     icon("🏖️", "#F59E0B", "#FEF3C7"),
	"mountains": icon("⛰️", "#6B7280", "#F3F4F6"),
	"forest":    icon("🌳", "#16A34A", "#D1FAE5"),
	"space":     icon("🚀", "#1D4ED8", "#DBEAFE"),

	// Technology
	"tech":       icon("💻", "#6366F1", "#E0E7FF"),
	"technology": icon("🤖", "#6366F1", "#E0E7FF"),
	"robots":     icon("🤖", "#64748B", "#F1F5F9"),

	// Fantasy
	"fantasy": icon("🐉", "#7C3AED", "#EDE9FE"),
	"magic":   icon("✨", "#A855F7", "#F3E8FF"),

	// Vehicles
	"cars":     icon("🚗", "#EF4444", "#FEE2E2"),
	"vehicles": icon("🚀", "#3B82F6", "#DBEAFE"),

	// Colors
	"colors":  icon("🌈", "#EC4899", "#FCE7F3"),
	"rainbow": icon("🌈", "#EC4899", "#FCE7F3"),
	"blue":    icon("💙", "#3B82F6", "#DBEAFE"),
	"red":     icon("❤️", "#EF4444", "#FEE2E2"),
	"green":   icon("💚", "#22C55E", "#DCFCE7"),
	"purple":  icon("💜", "#A855F7", "#F3E8FF"),
	"pink":    icon("💗", "#EC4899", "#FCE7F3"),
	"yellow":  icon("💛", "#EAB308", "#FEF9C3"),

	// Misc
	"cute":       icon("🥰", "#EC4899", "#FCE7F3"),
	"fashion":    icon("👗", "#EC4899", "#FCE7F3"),
	"books":      icon("📚", "#8B5CF6", "#EDE9FE"),
	"collecting": icon("🏅", "#F59E0B", "#FEF3C7"),
	"puzzles":    icon("🧩", "#6366F1", "#E0E7FF"),
	"youtubers":  icon("▶️", "#EF4444", "#FEE2E2"),
	"lego":       icon("🧱", "#EF4444", "#FEE2E2"),

	// Category ids without a legacy entry
	"bookscomics":  icon("📚", "#8B5CF6", "#EDE9FE"),
	"techgadgets":  icon("💻", "#6366F1", "#E0E7FF"),
	"fantasymagic": icon("🐉", "#7C3AED", "#EDE9FE"),
	"fashionstyle": icon("👗", "#EC4899", "#FCE7F3"),
	"buildinglego": icon("🧱", "#EF4444", "#FEE2E2"),
	"carsvehicles": icon("🚗", "#EF4444", "#FEE2E2"),
	"cutestuff":    icon("🥰", "#EC4899", "#FCE7F3"),
	"puzzlesgames": icon("🧩", "#6366F1", "#E0E7FF"),

	// Default
	"other": icon("⭐", "#F59E0B", "#FEF3C7"),
}

// defaultIcon is returned when nothing else matches.
var defaultIcon = categoryIcons["other"]

type iconRule struct {
	Keywords []string
	Icon     types.IconConfig
}

// iconRules are matched against lowercased titles in order; specific entries precede generic ones.
var iconRules = []iconRule{
	// Specific sports
	{[]string{"baseball", "pitcher", "batter", "outfielder", "mlb"}, icon("⚾", "#DC2626", "#FEE2E2")},
	{[]string{"basketball", "dunk", "nba", "wnba"}, icon("🏀", "#F97316", "#FFEDD5")},
	{[]string{"soccer", "goal kick", "fifa"}, icon("⚽", "#16A34A", "#D1FAE5")},
	{[]string{"football", "touchdown", "nfl", "quarterback"}, icon("🏈", "#92400E", "#FED7AA")},
	{[]string{"hockey", "puck", "nhl"}, icon("🏒", "#1F2937", "#F3F4F6")},
	{[]string{"tennis", "racket", "serve"}, icon("🎾", "#84CC16", "#ECFCCB")},
	{[]string{"volleyball"}, icon("🏐", "#FBBF24", "#FEF3C7")},
	{[]string{"golf"}, icon("⛳", "#16A34A", "#D1FAE5")},
	{[]string{"swimming", "swim", "pool"}, icon("🏊", "#0EA5E9", "#E0F2FE")},
	{[]string{"skateboard", "skate"}, icon("🛹", "#7C3AED", "#EDE9FE")},
	{[]string{"snowboard", "skiing", "ski"}, icon("🎿", "#0EA5E9", "#E0F2FE")},
	{[]string{"surfing", "surf"}, icon("🏄", "#0EA5E9", "#E0F2FE")},
	{[]string{"gymnastics", "gymnast", "tumbling"}, icon("🤸", "#EC4899", "#FCE7F3")},
	{[]string{"dance", "dancing", "ballet"}, icon("💃", "#EC4899", "#FCE7F3")},
	{[]string{"cheerleading", "cheer"}, icon("📣", "#EC4899", "#FCE7F3")},
	{[]string{"running", "track", "marathon"}, icon("🏃", "#3B82F6", "#DBEAFE")},
	{[]string{"wrestling"}, icon("🤼", "#B45309", "#FED7AA")},
	{[]string{"boxing", "mma"}, icon("🥊", "#EF4444", "#FEE2E2")},

	// Nail-specific
	{[]string{"nail", "manicure", "polish"}, icon("💅", "#EC4899", "#FCE7F3")},
	{[]string{"glitter nail", "sparkle nail"}, icon("✨", "#EC4899", "#FCE7F3")},
	{[]string{"french tip"}, icon("💅", "#F9A8D4", "#FCE7F3")},
	{[]string{"press-on", "press on"}, icon("💅", "#A855F7", "#F3E8FF")},
	{[]string{"nail art", "nail design"}, icon("🎨", "#EC4899", "#FCE7F3")},

	// Makeup-specific
	{[]string{"lip gloss", "lipgloss", "lipstick", "lip"}, icon("💋", "#E11D48", "#FFE4E6")},
	{[]string{"eyeshadow", "eye shadow"}, icon("👁️", "#8B5CF6", "#EDE9FE")},
	{[]string{"mascara", "lashes", "eyelash"}, icon("👁️", "#1F2937", "#F3F4F6")},
	{[]string{"blush", "cheeks", "rouge"}, icon("😊", "#EC4899", "#FCE7F3")},
	{[]string{"makeup", "cosmetic"}, icon("💄", "#E11D48", "#FFE4E6")},

	// Dogs - specific breeds
	{[]string{"golden retriever", "retriever"}, icon("🐕", "#D97706", "#FEF3C7")},
	{[]string{"german shepherd", "shepherd"}, icon("🐕‍🦺", "#78350F", "#FED7AA")},
	{[]string{"husky", "siberian"}, icon("🐺", "#6B7280", "#F3F4F6")},
	{[]string{"corgi"}, icon("🐕", "#F97316", "#FFEDD5")},
	{[]string{"poodle"}, icon("🐩", "#EC4899", "#FCE7F3")},
	{[]string{"bulldog", "frenchie"}, icon("🐕", "#78350F", "#FED7AA")},
	{[]string{"beagle"}, icon("🐕", "#92400E", "#FED7AA")},
	{[]string{"labrador", "lab "}, icon("🐕", "#78350F", "#FED7AA")},
	{[]string{"puppy", "puppies"}, icon("🐶", "#A0522D", "#FED7AA")},
	{[]string{"dog", "doggy", "pup"}, icon("🐕", "#A0522D", "#FED7AA")},

	// Cats - specific breeds
	{[]string{"maine coon"}, icon("🐱", "#92400E", "#FED7AA")},
	{[]string{"siamese"}, icon("🐱", "#D4A574", "#FEF3C7")},
	{[]string{"persian"}, icon("🐱", "#F3F4F6", "#E2E8F0")},
	{[]string{"tabby"}, icon("🐱", "#F97316", "#FFEDD5")},
	{[]string{"kitten", "kitty"}, icon("🐱", "#DDA0DD", "#F3E8FF")},
	{[]string{"cat", "kitty"}, icon("🐱", "#DDA0DD", "#F3E8FF")},

	// Other animals
	{[]string{"bunny", "rabbit"}, icon("🐰", "#F9A8D4", "#FCE7F3")},
	{[]string{"hamster", "guinea pig"}, icon("🐹", "#F97316", "#FFEDD5")},
	{[]string{"horse", "pony"}, icon("🐴", "#8B4513", "#FED7AA")},
	{[]string{"unicorn"}, icon("🦄", "#EC4899", "#FCE7F3")},
	{[]string{"dragon"}, icon("🐉", "#DC2626", "#FEE2E2")},
	{[]string{"dinosaur", "t-rex", "trex", "dino"}, icon("🦖", "#16A34A", "#D1FAE5")},
	{[]string{"shark"}, icon("🦈", "#6B7280", "#F3F4F6")},
	{[]string{"whale", "orca"}, icon("🐋", "#3B82F6", "#DBEAFE")},
	{[]string{"dolphin"}, icon("🐬", "#0EA5E9", "#E0F2FE")},
	{[]string{"fish", "goldfish", "tropical"}, icon("🐠", "#F97316", "#FFEDD5")},
	{[]string{"turtle", "tortoise"}, icon("🐢", "#16A34A", "#D1FAE5")},
	{[]string{"frog", "toad"}, icon("🐸", "#22C55E", "#DCFCE7")},
	{[]string{"snake"}, icon("🐍", "#16A34A", "#D1FAE5")},
	{[]string{"bird", "parrot", "parakeet"}, icon("🐦", "#3B82F6", "#DBEAFE")},
	{[]string{"owl"}, icon("🦉", "#78350F", "#FED7AA")},
	{[]string{"penguin"}, icon("🐧", "#1F2937", "#F3F4F6")},
	{[]string{"flamingo"}, icon("🦩", "#EC4899", "#FCE7F3")},
	{[]string{"butterfly", "butterflies"}, icon("🦋", "#A855F7", "#F3E8FF")},
	{[]string{"bee", "bumblebee"}, icon("🐝", "#EAB308", "#FEF9C3")},
	{[]string{"ladybug"}, icon("🐞", "#EF4444", "#FEE2E2")},
	{[]string{"panda"}, icon("🐼", "#1F2937", "#F3F4F6")},
	{[]string{"koala"}, icon("🐨", "#6B7280", "#F3F4F6")},
	{[]string{"bear", "teddy"}, icon("🐻", "#92400E", "#FED7AA")},
	{[]string{"lion"}, icon("🦁", "#F59E0B", "#FEF3C7")},
	{[]string{"tiger"}, icon("🐯", "#F97316", "#FFEDD5")},
	{[]string{"elephant"}, icon("🐘", "#6B7280", "#F3F4F6")},
	{[]string{"monkey", "chimp"}, icon("🐵", "#92400E", "#FED7AA")},
	{[]string{"fox"}, icon("🦊", "#F97316", "#FFEDD5")},
	{[]string{"wolf"}, icon("🐺", "#6B7280", "#F3F4F6")},
	{[]string{"deer", "reindeer"}, icon("🦌", "#92400E", "#FED7AA")},
	{[]string{"cow"}, icon("🐄", "#1F2937", "#F3F4F6")},
	{[]string{"pig"}, icon("🐷", "#F9A8D4", "#FCE7F3")},
	{[]string{"sheep", "lamb"}, icon("🐑", "#F3F4F6", "#E2E8F0")},
	{[]string{"chicken"}, icon("🐔", "#EF4444", "#FEE2E2")},
	{[]string{"duck"}, icon("🦆", "#22C55E", "#DCFCE7")},
	{[]string{"octopus"}, icon("🐙", "#EC4899", "#FCE7F3")},
	{[]string{"crab"}, icon("🦀", "#EF4444", "#FEE2E2")},
	{[]string{"jellyfish"}, icon("🪼", "#A855F7", "#F3E8FF")},
	{[]string{"starfish"}, icon("⭐", "#F59E0B", "#FEF3C7")},
	{[]string{"snail"}, icon("🐌", "#92400E", "#FED7AA")},

	// Food-specific
	{[]string{"ice cream", "icecream", "sundae", "gelato"}, icon("🍦", "#F472B6", "#FCE7F3")},
	{[]string{"pizza"}, icon("🍕", "#F97316", "#FFEDD5")},
	{[]string{"hamburger", "burger", "cheeseburger"}, icon("🍔", "#F59E0B", "#FEF3C7")},
	{[]string{"hot dog", "hotdog"}, icon("🌭", "#F97316", "#FFEDD5")},
	{[]string{"taco", "burrito", "nacho", "mexican"}, icon("🌮", "#F59E0B", "#FEF3C7")},
	{[]string{"cookie", "cookies"}, icon("🍪", "#D97706", "#FEF3C7")},
	{[]string{"cake", "birthday cake"}, icon("🎂", "#EC4899", "#FCE7F3")},
	{[]string{"cupcake"}, icon("🧁", "#EC4899", "#FCE7F3")},
	{[]string{"donut", "doughnut"}, icon("🍩", "#F472B6", "#FCE7F3")},
	{[]string{"candy", "gummy", "sweets"}, icon("🍬", "#EC4899", "#FCE7F3")},
	{[]string{"chocolate"}, icon("🍫", "#78350F", "#FED7AA")},
	{[]string{"lollipop"}, icon("🍭", "#EC4899", "#FCE7F3")},
	{[]string{"popcorn"}, icon("🍿", "#F59E0B", "#FEF3C7")},
	{[]string{"french fries", "fries"}, icon("🍟", "#F59E0B", "#FEF3C7")},
	{[]string{"chicken nugget", "nugget"}, icon("🍗", "#D97706", "#FEF3C7")},
	{[]string{"sushi", "sashimi"}, icon("🍣", "#EF4444", "#FEE2E2")},
	{[]string{"noodle", "ramen", "pasta", "spaghetti"}, icon("🍝", "#F97316", "#FFEDD5")},
	{[]string{"sandwich", "sub"}, icon("🥪", "#D97706", "#FEF3C7")},
	{[]string{"salad"}, icon("🥗", "#22C55E", "#DCFCE7")},
	{[]string{"soup"}, icon("🍲", "#F97316", "#FFEDD5")},
	{[]string{"mac and cheese", "mac & cheese"}, icon("🧀", "#F59E0B", "#FEF3C7")},
	{[]string{"pancake", "waffle"}, icon("🥞", "#D97706", "#FEF3C7")},
	{[]string{"fruit", "apple"}, icon("🍎", "#EF4444", "#FEE2E2")},
	{[]string{"banana"}, icon("🍌", "#EAB308", "#FEF9C3")},
	{[]string{"strawberry", "berry"}, icon("🍓", "#EF4444", "#FEE2E2")},
	{[]string{"watermelon", "melon"}, icon("🍉", "#16A34A", "#D1FAE5")},
	{[]string{"orange"}, icon("🍊", "#F97316", "#FFEDD5")},
	{[]string{"grape"}, icon("🍇", "#7C3AED", "#EDE9FE")},
	{[]string{"pineapple"}, icon("🍍", "#EAB308", "#FEF9C3")},
	{[]string{"cherry", "cherries"}, icon("🍒", "#EF4444", "#FEE2E2")},
	{[]string{"peach"}, icon("🍑", "#F97316", "#FFEDD5")},
	{[]string{"lemon"}, icon("🍋", "#EAB308", "#FEF9C3")},
	{[]string{"avocado"}, icon("🥑", "#22C55E", "#DCFCE7")},
	{[]string{"corn"}, icon("🌽", "#EAB308", "#FEF9C3")},
	{[]string{"carrot"}, icon("🥕", "#F97316", "#FFEDD5")},
	{[]string{"broccoli"}, icon("🥦", "#22C55E", "#DCFCE7")},
	{[]string{"bread"}, icon("🍞", "#D97706", "#FEF3C7")},
	{[]string{"pretzel"}, icon("🥨", "#92400E", "#FED7AA")},
	{[]string{"cheese"}, icon("🧀", "#F59E0B", "#FEF3C7")},
	{[]string{"egg"}, icon("🥚", "#FEF3C7", "#FFFBEB")},
	{[]string{"bacon"}, icon("🥓", "#EF4444", "#FEE2E2")},
	{[]string{"shrimp", "prawn"}, icon("🦐", "#F97316", "#FFEDD5")},
	{[]string{"pie"}, icon("🥧", "#D97706", "#FEF3C7")},
	{[]string{"brownie"}, icon("🟫", "#78350F", "#FED7AA")},

	// Drinks
	{[]string{"smoothie", "milkshake"}, icon("🥤", "#EC4899", "#FCE7F3")},
	{[]string{"juice"}, icon("🧃", "#F97316", "#FFEDD5")},
	{[]string{"hot chocolate", "cocoa"}, icon("☕", "#78350F", "#FED7AA")},
	{[]string{"lemonade"}, icon("🍋", "#EAB308", "#FEF9C3")},
	{[]string{"boba", "bubble tea"}, icon("🧋", "#78350F", "#FED7AA")},

	// Games-specific
	{[]string{"minecraft", "creeper", "pickaxe", "steve"}, icon("⛏️", "#16A34A", "#D1FAE5")},
	{[]string{"pokemon", "pikachu", "pokeball", "eevee"}, icon("⚡", "#EAB308", "#FEF9C3")},
	{[]string{"roblox", "robux"}, icon("🎲", "#EF4444", "#FEE2E2")},
	{[]string{"mario", "luigi", "mushroom", "nintendo"}, icon("🍄", "#EF4444", "#FEE2E2")},
	{[]string{"fortnite", "battle royale"}, icon("🎯", "#8B5CF6", "#EDE9FE")},
	{[]string{"zelda", "link", "hyrule"}, icon("🗡️", "#16A34A", "#D1FAE5")},
	{[]string{"sonic", "hedgehog"}, icon("💨", "#3B82F6", "#DBEAFE")},
	{[]string{"among us", "impostor"}, icon("🛸", "#EF4444", "#FEE2E2")},
	{[]string{"animal crossing"}, icon("🏝️", "#22C55E", "#DCFCE7")},
	{[]string{"splatoon"}, icon("🦑", "#F97316", "#FFEDD5")},
	{[]string{"lego"}, icon("🧱", "#EF4444", "#FEE2E2")},
	{[]string{"board game"}, icon("🎲", "#8B5CF6", "#EDE9FE")},
	{[]string{"puzzle"}, icon("🧩", "#3B82F6", "#DBEAFE")},
	{[]string{"card game"}, icon("🃏", "#EF4444", "#FEE2E2")},
	{[]string{"video game", "gaming"}, icon("🎮", "#8B5CF6", "#EDE9FE")},
	{[]string{"controller", "xbox", "playstation", "ps5"}, icon("🎮", "#1F2937", "#F3F4F6")},
	{[]string{"vr", "virtual reality"}, icon("🥽", "#1F2937", "#F3F4F6")},

	// Music-specific
	{[]string{"piano"}, icon("🎹", "#1F2937", "#F3F4F6")},
	{[]string{"guitar", "acoustic"}, icon("🎸", "#B45309", "#FED7AA")},
	{[]string{"drum", "drums"}, icon("🥁", "#DC2626", "#FEE2E2")},
	{[]string{"violin", "cello"}, icon("🎻", "#92400E", "#FED7AA")},
	{[]string{"trumpet", "horn"}, icon("🎺", "#F59E0B", "#FEF3C7")},
	{[]string{"flute"}, icon("🪈", "#A0A0A0", "#F3F4F6")},
	{[]string{"singing", "singer", "karaoke"}, icon("🎤", "#EC4899", "#FCE7F3")},
	{[]string{"concert", "live music"}, icon("🎵", "#A855F7", "#F3E8FF")},
	{[]string{"headphones", "music"}, icon("🎧", "#8B5CF6", "#EDE9FE")},
	{[]string{"pop music", "pop star"}, icon("⭐", "#EC4899", "#FCE7F3")},
	{[]string{"rock music", "rock band"}, icon("🤘", "#1F2937", "#F3F4F6")},
	{[]string{"hip hop", "rap"}, icon("🎤", "#8B5CF6", "#EDE9FE")},
	{[]string{"taylor swift"}, icon("💖", "#EC4899", "#FCE7F3")},

	// Space
	{[]string{"rocket", "spaceship"}, icon("🚀", "#1D4ED8", "#DBEAFE")},
	{[]string{"astronaut", "space"}, icon("👨‍🚀", "#F3F4F6", "#E2E8F0")},
	{[]string{"moon", "lunar"}, icon("🌙", "#6B7280", "#F3F4F6")},
	{[]string{"star", "stars"}, icon("⭐", "#F59E0B", "#FEF3C7")},
	{[]string{"planet", "saturn", "mars", "jupiter"}, icon("🪐", "#D97706", "#FED7AA")},
	{[]string{"sun", "solar"}, icon("☀️", "#F59E0B", "#FEF3C7")},
	{[]string{"galaxy", "milky way"}, icon("🌌", "#7C3AED", "#EDE9FE")},
	{[]string{"alien", "ufo"}, icon("👽", "#22C55E", "#DCFCE7")},
	{[]string{"comet", "meteor"}, icon("☄️", "#F97316", "#FFEDD5")},

	// Nature/Outdoors
	{[]string{"flower", "rose", "tulip", "daisy"}, icon("🌸", "#EC4899", "#FCE7F3")},
	{[]string{"sunflower"}, icon("🌻", "#EAB308", "#FEF9C3")},
	{[]string{"tree", "forest"}, icon("🌲", "#16A34A", "#D1FAE5")},
	{[]string{"plant", "cactus"}, icon("🌵", "#22C55E", "#DCFCE7")},
	{[]string{"rainbow"}, icon("🌈", "#EC4899", "#FCE7F3")},
	{[]string{"beach", "ocean", "sea"}, icon("🏖️", "#F59E0B", "#FEF3C7")},
	{[]string{"mountain", "hiking"}, icon("⛰️", "#6B7280", "#F3F4F6")},
	{[]string{"camping", "tent"}, icon("⛺", "#22C55E", "#DCFCE7")},
	{[]string{"waterfall"}, icon("💧", "#0EA5E9", "#E0F2FE")},
	{[]string{"volcano"}, icon("🌋", "#EF4444", "#FEE2E2")},
	{[]string{"island"}, icon("🏝️", "#22C55E", "#DCFCE7")},
	{[]string{"snow", "snowflake", "winter"}, icon("❄️", "#0EA5E9", "#E0F2FE")},
	{[]string{"rain", "rainy"}, icon("🌧️", "#6B7280", "#F3F4F6")},
	{[]string{"cloud"}, icon("☁️", "#E2E8F0", "#F8FAFC")},
	{[]string{"lightning", "thunder", "storm"}, icon("⚡", "#EAB308", "#FEF9C3")},
	{[]string{"leaf", "leaves", "autumn", "fall"}, icon("🍂", "#F97316", "#FFEDD5")},

	// Art & Crafts
	{[]string{"paint", "painting", "art"}, icon("🎨", "#EC4899", "#FCE7F3")},
	{[]string{"draw", "drawing", "sketch"}, icon("✏️", "#F59E0B", "#FEF3C7")},
	{[]string{"craft", "crafts", "diy"}, icon("✂️", "#EF4444", "#FEE2E2")},
	{[]string{"slime", "squishy"}, icon("🟢", "#22C55E", "#DCFCE7")},
	{[]string{"clay", "pottery"}, icon("🏺", "#92400E", "#FED7AA")},
	{[]string{"origami", "paper"}, icon("📄", "#F3F4F6", "#E2E8F0")},
	{[]string{"knitting", "crochet", "yarn"}, icon("🧶", "#EC4899", "#FCE7F3")},
	{[]string{"jewelry", "bracelet", "necklace", "beads"}, icon("💎", "#0EA5E9", "#E0F2FE")},
	{[]string{"sticker", "stickers"}, icon("⭐", "#EC4899", "#FCE7F3")},
	{[]string{"glitter", "sparkle", "sparkly"}, icon("✨", "#F59E0B", "#FEF3C7")},

	// Movies/TV
	{[]string{"movie", "film", "cinema"}, icon("🎬", "#EF4444", "#FEE2E2")},
	{[]string{"cartoon", "animation"}, icon("📺", "#3B82F6", "#DBEAFE")},
	{[]string{"disney", "princess"}, icon("👑", "#F59E0B", "#FEF3C7")},
	{[]string{"pixar"}, icon("🎬", "#16A34A", "#D1FAE5")},
	{[]string{"marvel", "superhero", "avenger"}, icon("🦸", "#EF4444", "#FEE2E2")},
	{[]string{"star wars"}, icon("⚔️", "#1F2937", "#F3F4F6")},
	{[]string{"harry potter", "wizard", "magic"}, icon("🪄", "#7C3AED", "#EDE9FE")},
	{[]string{"frozen", "elsa"}, icon("❄️", "#0EA5E9", "#E0F2FE")},
	{[]string{"moana"}, icon("🌊", "#0EA5E9", "#E0F2FE")},
	{[]string{"encanto", "mirabel"}, icon("🦋", "#16A34A", "#D1FAE5")},
	{[]string{"minion"}, icon("🟡", "#EAB308", "#FEF9C3")},
	{[]string{"spongebob"}, icon("🧽", "#EAB308", "#FEF9C3")},
	{[]string{"paw patrol"}, icon("🐕", "#3B82F6", "#DBEAFE")},
	{[]string{"bluey"}, icon("🐕", "#3B82F6", "#DBEAFE")},
	{[]string{"peppa pig"}, icon("🐷", "#F9A8D4", "#FCE7F3")},

	// Vehicles
	{[]string{"car", "race car", "racing"}, icon("🚗", "#EF4444", "#FEE2E2")},
	{[]string{"truck", "monster truck"}, icon("🚚", "#3B82F6", "#DBEAFE")},
	{[]string{"train", "railroad"}, icon("🚂", "#1F2937", "#F3F4F6")},
	{[]string{"airplane", "plane", "flying"}, icon("✈️", "#3B82F6", "#DBEAFE")},
	{[]string{"helicopter"}, icon("🚁", "#6B7280", "#F3F4F6")},
	{[]string{"boat", "ship", "sailing"}, icon("⛵", "#0EA5E9", "#E0F2FE")},
	{[]string{"motorcycle", "motorbike"}, icon("🏍️", "#EF4444", "#FEE2E2")},
	{[]string{"bicycle", "bike", "cycling"}, icon("🚲", "#22C55E", "#DCFCE7")},
	{[]string{"scooter"}, icon("🛴", "#8B5CF6", "#EDE9FE")},
	{[]string{"roller skate", "roller blade", "skating"}, icon("⛸️", "#EC4899", "#FCE7F3")},
	{[]string{"fire truck", "firetruck"}, icon("🚒", "#EF4444", "#FEE2E2")},
	{[]string{"ambulance"}, icon("🚑", "#F3F4F6", "#E2E8F0")},
	{[]string{"police", "cop car"}, icon("🚓", "#3B82F6", "#DBEAFE")},
	{[]string{"bus"}, icon("🚌", "#EAB308", "#FEF9C3")},
	{[]string{"tractor", "farm"}, icon("🚜", "#22C55E", "#DCFCE7")},

	// Tech
	{[]string{"robot", "robots"}, icon("🤖", "#6B7280", "#F3F4F6")},
	{[]string{"computer", "laptop", "pc"}, icon("💻", "#6B7280", "#F3F4F6")},
	{[]string{"phone", "tablet", "ipad"}, icon("📱", "#1F2937", "#F3F4F6")},
	{[]string{"camera", "photo"}, icon("📷", "#1F2937", "#F3F4F6")},
	{[]string{"tv", "television"}, icon("📺", "#1F2937", "#F3F4F6")},
	{[]string{"ai", "artificial intelligence"}, icon("🧠", "#EC4899", "#FCE7F3")},
	{[]string{"coding", "programming", "code"}, icon("👨‍💻", "#16A34A", "#D1FAE5")},

	// Fantasy & Magic
	{[]string{"fairy", "fairies"}, icon("🧚", "#EC4899", "#FCE7F3")},
	{[]string{"mermaid"}, icon("🧜‍♀️", "#0EA5E9", "#E0F2FE")},
	{[]string{"vampire"}, icon("🧛", "#7C3AED", "#EDE9FE")},
	{[]string{"ghost", "spooky"}, icon("👻", "#F3F4F6", "#E2E8F0")},
	{[]string{"witch"}, icon("🧙‍♀️", "#7C3AED", "#EDE9FE")},
	{[]string{"castle", "palace"}, icon("🏰", "#6B7280", "#F3F4F6")},
	{[]string{"treasure", "gold", "pirate"}, icon("💰", "#F59E0B", "#FEF3C7")},
	{[]string{"crown", "royal", "king", "queen"}, icon("👑", "#F59E0B", "#FEF3C7")},
	{[]string{"knight", "armor"}, icon("⚔️", "#6B7280", "#F3F4F6")},
	{[]string{"wand", "spell"}, icon("🪄", "#A855F7", "#F3E8FF")},
	{[]string{"crystal", "gem"}, icon("💎", "#0EA5E9", "#E0F2FE")},
	{[]string{"potion"}, icon("🧪", "#A855F7", "#F3E8FF")},

	// Holidays
	{[]string{"christmas", "santa", "xmas"}, icon("🎄", "#16A34A", "#D1FAE5")},
	{[]string{"halloween", "pumpkin"}, icon("🎃", "#F97316", "#FFEDD5")},
	{[]string{"easter", "easter egg"}, icon("🐰", "#EC4899", "#FCE7F3")},
	{[]string{"birthday", "party"}, icon("🎉", "#EC4899", "#FCE7F3")},
	{[]string{"valentine", "love", "heart"}, icon("❤️", "#EF4444", "#FEE2E2")},

	// School
	{[]string{"school", "classroom"}, icon("🏫", "#EF4444", "#FEE2E2")},
	{[]string{"book", "reading", "story"}, icon("📚", "#8B5CF6", "#EDE9FE")},
	{[]string{"math", "numbers"}, icon("🔢", "#3B82F6", "#DBEAFE")},
	{[]string{"science", "experiment"}, icon("🔬", "#16A34A", "#D1FAE5")},
	{[]string{"homework", "study"}, icon("📝", "#F59E0B", "#FEF3C7")},

	// Fashion
	{[]string{"dress", "gown"}, icon("👗", "#EC4899", "#FCE7F3")},
	{[]string{"shoe", "sneaker", "boots"}, icon("👟", "#3B82F6", "#DBEAFE")},
	{[]string{"hat", "cap"}, icon("🧢", "#EF4444", "#FEE2E2")},
	{[]string{"sunglasses", "glasses"}, icon("🕶️", "#1F2937", "#F3F4F6")},
	{[]string{"jewelry", "ring"}, icon("💍", "#F59E0B", "#FEF3C7")},
	{[]string{"purse", "bag", "handbag"}, icon("👜", "#EC4899", "#FCE7F3")},

	// Misc fun stuff
	{[]string{"balloon"}, icon("🎈", "#EF4444", "#FEE2E2")},
	{[]string{"present", "gift"}, icon("🎁", "#EF4444", "#FEE2E2")},
	{[]string{"trophy", "award", "winner"}, icon("🏆", "#F59E0B", "#FEF3C7")},
	{[]string{"medal"}, icon("🥇", "#F59E0B", "#FEF3C7")},
	{[]string{"emoji", "smiley"}, icon("😊", "#F59E0B", "#FEF3C7")},
	{[]string{"silly", "funny", "joke"}, icon("😜", "#F59E0B", "#FEF3C7")},
	{[]string{"sleep", "nap", "bed"}, icon("😴", "#8B5CF6", "#EDE9FE")},
	{[]string{"friend", "friendship", "bff"}, icon("👯", "#EC4899", "#FCE7F3")},
	{[]string{"hug"}, icon("🤗", "#F59E0B", "#FEF3C7")},
	{[]string{"thumbs up", "like", "awesome"}, icon("👍", "#3B82F6", "#DBEAFE")},
	{[]string{"fire", "hot", "cool"}, icon("🔥", "#F97316", "#FFEDD5")},
	{[]string{"100", "perfect"}, icon("💯", "#EF4444", "#FEE2E2")},
}

package taxonomy

// termGroup is one keyword and the terms players associate with it.
type termGroup struct {
	Key   string
	Terms []string
}

// relatedTerms is scanned in order, so it is a slice rather than a map.
var relatedTerms = []termGroup{
	// Animals
	{"cats", []string{"kittens", "lions", "tigers", "leopards", "cheetahs", "fluffy cats"}},
	{"dogs", []string{"puppies", "golden retrievers", "huskies", "beagles", "poodles"}},
	{"horses", []string{"ponies", "unicorns", "mustangs", "horse riding", "stable"}},
	{"birds", []string{"parrots", "eagles", "owls", "penguins", "flamingos"}},
	{"fish", []string{"goldfish", "dolphins", "whales", "sharks", "aquarium"}},
	{"dinosaurs", []string{"t-rex", "triceratops", "fossils", "prehistoric", "jurassic"}},
	{"rabbits", []string{"bunnies", "carrots", "fluffy pets", "hop"}},
	{"pandas", []string{"bamboo", "bears", "china", "black and white"}},
	{"elephants", []string{"safari", "trunks", "africa", "big animals"}},
	{"butterflies", []string{"caterpillars", "flowers", "gardens", "colorful insects"}},

	// Sports
	{"soccer", []string{"football", "goals", "cleats", "stadium", "world cup"}},
	{"basketball", []string{"hoops", "dribbling", "slam dunk", "court"}},
	{"swimming", []string{"pool", "diving", "water sports", "beach"}},
	{"gymnastics", []string{"tumbling", "balance beam", "olympics", "flips"}},
	{"baseball", []string{"batting", "home run", "gloves", "pitcher"}},
	{"tennis", []string{"racket", "wimbledon", "court", "volley"}},
	{"skateboarding", []string{"skate park", "tricks", "wheels", "ramps"}},
	{"dancing", []string{"ballet", "hip hop", "jazz", "rhythm"}},
	{"running", []string{"track", "marathon", "jogging", "sprinting"}},

	// Video games
	{"minecraft", []string{"building", "crafting", "blocks", "survival", "creepers"}},
	{"roblox", []string{"avatars", "games", "multiplayer", "building"}},
	{"pokemon", []string{"pikachu", "pokeball", "trainers", "battles", "cards"}},
	{"mario", []string{"nintendo", "mushrooms", "princess peach", "luigi"}},
	{"fortnite", []string{"battle royale", "skins", "building", "squad"}},
	{"zelda", []string{"link", "hyrule", "adventure", "master sword"}},

	// Building and puzzles
	{"lego", []string{"building blocks", "construction", "sets", "minifigures"}},
	{"puzzles", []string{"jigsaw", "brain teasers", "riddles", "thinking"}},
	{"boardgames", []string{"monopoly", "chess", "checkers", "family game night"}},

	// Food and treats
	{"pizza", []string{"pepperoni", "cheese", "italian food", "toppings"}},
	{"icecream", []string{"sundae", "cones", "frozen treats", "sprinkles"}},
	{"cookies", []string{"chocolate chip", "baking", "desserts", "treats"}},
	{"tacos", []string{"mexican food", "burritos", "salsa", "nachos"}},
	{"sushi", []string{"japanese food", "rice", "seafood", "chopsticks"}},
	{"pasta", []string{"spaghetti", "noodles", "marinara", "italian"}},
	{"fruit", []string{"apples", "bananas", "strawberries", "oranges", "smoothies"}},
	{"chocolate", []string{"candy", "cocoa", "sweets", "desserts"}},
	{"pancakes", []string{"breakfast", "syrup", "waffles", "brunch"}},

	// Colors
	{"blue", []string{"ocean", "sky", "sapphire", "cool colors"}},
	{"red", []string{"fire", "roses", "ruby", "warm colors"}},
	{"green", []string{"nature", "grass", "emerald", "forest"}},
	{"purple", []string{"lavender", "grapes", "amethyst", "royal"}},
	{"pink", []string{"flowers", "cotton candy", "flamingos", "sunset"}},
	{"yellow", []string{"sunshine", "sunflowers", "gold", "bright"}},
	{"rainbow", []string{"colorful", "pride", "spectrum", "bright colors"}},

	// Outdoors
	{"beach", []string{"ocean", "sand", "waves", "tropical", "shells"}},
	{"mountains", []string{"hiking", "peaks", "snow", "climbing", "adventure"}},
	{"forest", []string{"trees", "camping", "wildlife", "trails"}},
	{"camping", []string{"tents", "campfire", "smores", "nature"}},

	// Space
	{"space", []string{"stars", "planets", "rockets", "astronauts", "galaxy"}},
	{"moon", []string{"lunar", "astronaut", "crater", "night sky"}},
	{"planets", []string{"mars", "jupiter", "saturn rings", "solar system"}},

	// Music
	{"piano", []string{"keyboard", "classical", "keys", "melodies"}},
	{"guitar", []string{"rock", "acoustic", "strings", "chords"}},
	{"drums", []string{"rhythm", "beat", "percussion", "rock band"}},
	{"singing", []string{"vocals", "karaoke", "microphone", "songs"}},
	{"pop", []string{"pop stars", "charts", "dance", "radio"}},
	{"rock", []string{"bands", "concerts", "electric guitar", "drums"}},

	// Art and crafts
	{"painting", []string{"canvas", "brushes", "colors", "gallery"}},
	{"drawing", []string{"pencils", "sketching", "doodles", "art"}},
	{"crafts", []string{"diy", "making things", "creativity", "projects"}},
	{"photography", []string{"cameras", "pictures", "memories", "photos"}},
	{"origami", []string{"paper folding", "cranes", "japanese art"}},

	// Tech
	{"robots", []string{"technology", "coding", "machines", "ai"}},
	{"coding", []string{"programming", "computers", "games", "apps"}},
	{"gadgets", []string{"devices", "electronics", "tech", "cool stuff"}},

	// Fantasy
	{"unicorns", []string{"magical", "rainbow", "fantasy", "sparkles"}},
	{"dragons", []string{"fire breathing", "medieval", "fantasy", "scales"}},
	{"magic", []string{"wizards", "spells", "wands", "potions"}},
	{"fairies", []string{"pixies", "wings", "magical", "enchanted"}},

	// Movies and TV
	{"animation", []string{"cartoons", "anime", "animated movies", "pixar"}},
	{"superheroes", []string{"marvel", "dc", "powers", "capes"}},

	// Books and comics
	{"comics", []string{"graphic novels", "manga", "superheroes", "stories"}},
	{"fantasy_books", []string{"adventure", "magic", "worlds", "series"}},

	// Fashion
	{"fashion", []string{"clothes", "style", "outfits", "trends"}},
	{"sneakers", []string{"shoes", "kicks", "jordans", "collection"}},

	// Collecting
	{"cards", []string{"trading cards", "pokemon cards", "collection", "rare"}},
	{"stickers", []string{"sticker books", "decorating", "collection"}},
	{"figurines", []string{"action figures", "collectibles", "display"}},

	// Vehicles
	{"cars", []string{"racing", "sports cars", "driving", "speed"}},
	{"trucks", []string{"monster trucks", "big rigs", "construction"}},
	{"trains", []string{"locomotives", "railroads", "model trains"}},

	// Cute stuff
	{"kawaii", []string{"cute", "japanese style", "adorable", "plushies"}},
	{"plushies", []string{"stuffed animals", "cuddly", "soft", "collection"}},
}

// termCategories maps related-term keys (and a few extras) to their category.
var termCategories = map[string]string{
	"cats": "animals", "dogs": "animals", "horses": "animals", "birds": "animals",
	"fish": "animals", "dinosaurs": "animals", "rabbits": "animals", "pandas": "animals",
	"elephants": "animals", "butterflies": "animals",

	"soccer": "sports", "basketball": "sports", "swimming": "sports", "gymnastics": "sports",
	"baseball": "sports", "tennis": "sports", "skateboarding": "sports", "dancing": "sports",
	"running": "sports",

	"minecraft": "videogames", "roblox": "videogames", "pokemon": "videogames", "mario": "videogames",
	"fortnite": "videogames", "zelda": "videogames",

	"lego": "buildinglego", "puzzles": "puzzlesgames", "boardgames": "puzzlesgames",

	"pizza": "foodtreats", "icecream": "foodtreats", "cookies": "foodtreats", "tacos": "foodtreats",
	"sushi": "foodtreats", "pasta": "foodtreats", "fruit": "foodtreats", "chocolate": "foodtreats",
	"pancakes": "foodtreats",

	"blue": "artcrafts", "red": "artcrafts", "green": "artcrafts", "purple": "artcrafts",
	"pink": "artcrafts", "yellow": "artcrafts", "rainbow": "artcrafts",

	"beach": "outdoors", "mountains": "outdoors", "forest": "outdoors", "camping": "outdoors",

	"space": "space", "moon": "space", "planets": "space",

	"piano": "music", "guitar": "music", "drums": "music", "singing": "music",
	"pop": "music", "rock": "music",

	"painting": "artcrafts", "drawing": "artcrafts", "crafts": "artcrafts", "photography": "artcrafts",
	"origami": "artcrafts",

	"robots": "techgadgets", "coding": "techgadgets", "gadgets": "techgadgets",

	"unicorns": "fantasymagic", "dragons": "fantasymagic", "magic": "fantasymagic", "fairies": "fantasymagic",

	"animation": "moviestv", "superheroes": "moviestv",

	"comics": "bookscomics", "fantasy_books": "bookscomics",

	"fashion": "fashionstyle", "sneakers": "fashionstyle",

	"cards": "collecting", "stickers": "collecting", "figurines": "collecting",

	"cars": "carsvehicles", "trucks": "carsvehicles", "trains": "carsvehicles",

	"kawaii": "cutestuff", "plushies": "cutestuff",
}

// directMappings catch common keywords the related-term scan misses.
var directMappings = map[string]string{
	"pizza": "foodtreats", "icecream": "foodtreats", "cookies": "foodtreats",
	"tacos": "foodtreats", "sushi": "foodtreats", "pasta": "foodtreats",
	"fruit": "foodtreats", "chocolate": "foodtreats", "pancakes": "foodtreats",
	"food": "foodtreats", "treats": "foodtreats", "snacks": "foodtreats",

	"games": "videogames", "gaming": "videogames", "minecraft": "videogames",
	"roblox": "videogames", "fortnite": "videogames", "pokemon": "videogames",
}

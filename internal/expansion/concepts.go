package expansion

// conceptGroup is one curated concept and its specific, kid-safe subtypes.
type conceptGroup struct {
	Key        string
	Expansions []string
}

// concepts is scanned in order for partial matches, so it is a slice.
var concepts = []conceptGroup{
	// Animals
	{"dogs", []string{
		"Golden Retriever", "German Shepherd", "Shiba Inu", "Labrador puppy",
		"Husky with blue eyes", "Corgi butt", "Dalmatian spots", "Poodle haircut",
		"Dog agility course", "Rescue dog adoption", "Dog park fun", "Puppy training class",
		"Frisbee catching dog", "Service dog hero", "Sled dog team",
	}},
	{"cats", []string{
		"Maine Coon fluff", "Sphynx cat", "Ragdoll kitten", "Orange tabby",
		"Black cat luck", "Siamese eyes", "Persian cat", "Cat café visit",
		"Laser pointer chase", "Cat in a box", "Kitten mittens", "Cat tree tower",
		"Sleepy cat loaf", "Cat zoomies", "Tuxedo cat",
	}},
	{"horses", []string{
		"Wild mustang", "Clydesdale giant", "Arabian horse", "Pony ride",
		"Horse jumping", "Unicorn horn", "Painted horse", "Foal first steps",
		"Horse braids", "Barrel racing", "Trail riding", "Horse whisperer",
	}},
	{"birds", []string{
		"Colorful parrot", "Snowy owl", "Tiny hummingbird", "Peacock feathers",
		"Flamingo pink", "Eagle soaring", "Penguin waddle", "Toucan beak",
		"Parakeet tricks", "Bird feeder visitors", "Cockatoo dancing",
	}},
	{"fish", []string{
		"Clownfish Nemo", "Betta fish colors", "Goldfish pond", "Shark teeth",
		"Whale tail splash", "Dolphin jump", "Jellyfish glow", "Coral reef life",
		"Aquarium tunnel", "Koi fish pattern", "Seahorse dad",
	}},
	{"dinosaurs", []string{
		"T-Rex roar", "Triceratops horns", "Velociraptor pack", "Brontosaurus neck",
		"Pterodactyl flying", "Stegosaurus plates", "Fossil dig site", "Dino eggs",
		"Jurassic jungle", "Dinosaur footprint", "Raptor claw",
	}},
	{"rabbits", []string{
		"Lop-eared bunny", "Holland Lop fluff", "Bunny hop", "Rabbit ears up",
		"Baby bunnies nest", "Bunny nose wiggle", "Rabbit in hat magic",
	}},
	{"pandas", []string{
		"Baby panda tumble", "Panda eating bamboo", "Red panda curl", "Panda slide",
		"Panda sneeze video", "Panda bear hug", "Giant panda nap",
	}},
	{"elephants", []string{
		"Baby elephant bath", "Elephant parade", "Trunk spray", "Elephant family",
		"Circus elephant tricks", "Elephant painting art", "Safari elephant",
	}},
	{"butterflies", []string{
		"Monarch migration", "Blue morpho wings", "Butterfly garden", "Caterpillar munch",
		"Chrysalis transform", "Butterfly on flower", "Painted lady butterfly",
	}},

	// Sports
	{"soccer", []string{
		"Bicycle kick goal", "Penalty shootout", "World Cup trophy", "Goalkeeper dive",
		"Free kick curve", "Soccer juggling", "Header goal", "Corner kick play",
		"Yellow card drama", "Hat trick celebration", "Cleats on grass",
	}},
	{"basketball", []string{
		"Slam dunk contest", "3-point buzzer beater", "Crossover dribble", "Alley-oop pass",
		"Free throw swish", "WNBA all-star", "Basketball spinning", "Fast break layup",
		"Block party defense", "March Madness", "Sneaker collection",
	}},
	{"swimming", []string{
		"Cannonball splash", "Butterfly stroke", "Diving board flip", "Pool noodle fun",
		"Swim goggles on", "Relay race finish", "Underwater handstand", "Marco Polo game",
	}},
	{"gymnastics", []string{
		"Perfect 10 landing", "Balance beam flip", "Uneven bars routine", "Floor tumbling",
		"Vault jump", "Gymnastics leotard", "Olympic gold moment", "Cartwheel practice",
	}},
	{"baseball", []string{
		"Home run swing", "Pitching fastball", "Sliding into base", "Outfield catch",
		"Baseball card collection", "Stadium hot dog", "Batting helmet", "Double play",
	}},
	{"tennis", []string{
		"Ace serve", "Tennis volley", "Grand Slam match", "Tennis ball can pop",
		"Racket string pattern", "Wimbledon strawberries", "Backhand winner",
	}},
	{"skateboarding", []string{
		"Kickflip trick", "Halfpipe air", "Ollie jump", "Skateboard deck design",
		"Skate park grind", "Pro skater trick", "Longboard cruise", "Helmet safety",
	}},
	{"dancing", []string{
		"Hip hop battle", "Ballet pirouette", "Breakdance spin", "TikTok dance trend",
		"Dance recital costume", "Jazz hands", "Tap dance shoes", "K-pop choreography",
	}},
	{"running", []string{
		"Sprint finish line", "Relay baton pass", "Marathon medal", "Track hurdles",
		"Cross country trail", "Running shoes tech", "Starting block launch",
	}},

	// Beauty
	{"nails", []string{
		"Glitter nails sparkle", "French tips classic", "Press-on nails easy", "Nail art stickers",
		"Pastel nails soft", "Ombre nails fade", "Acrylic nails long", "Gel nails shiny",
		"Rainbow nails colorful", "Flower nail art", "Marble nails swirl", "Neon nails bright",
		"Butterfly nail design", "Heart nail art", "Polka dot nails", "Nail gems crystals",
		"Holographic nails", "Chrome nails mirror", "Matte nails smooth", "Nail stencils shapes",
	}},
	{"makeup", []string{
		"Lip gloss shiny", "Sparkly eyeshadow", "Blush pink cheeks", "Mascara lashes",
		"Makeup brushes set", "Eyeshadow palette", "Lip balm fruity", "Highlighter glow",
		"Face gems stickers", "Glitter makeup", "Tinted lip balm", "Makeup mirror lights",
		"Nail polish colors", "Face paint designs", "Body glitter sparkle", "Makeup bag cute",
		"Lip tint natural", "Setting spray mist", "Beauty blender sponge", "Brow gel brush",
	}},

	// Food
	{"pizza", []string{
		"Deep dish Chicago", "Wood-fired margherita", "Pepperoni slice pull", "Pizza oven fire",
		"Stuffed crust bite", "Pizza dough toss", "Cheese stretch", "Personal pan pizza",
		"Pizza party spread", "Hawaiian pizza debate", "Pizza emoji",
	}},
	{"icecream", []string{
		"Soft serve swirl", "Waffle cone stack", "Sundae toppings", "Ice cream truck jingle",
		"Brain freeze moment", "Sprinkles rainbow", "Banana split", "Gelato scoop",
		"Ice cream sandwich", "Rolled ice cream", "Dippin Dots",
	}},
	{"cookies", []string{
		"Chocolate chip warm", "Oreo twist", "Sugar cookie decorating", "Cookie dough raw",
		"Giant cookie cake", "Snickerdoodle cinnamon", "Fortune cookie message",
		"Milk and cookies dunk", "Girl Scout cookies",
	}},
	{"tacos", []string{
		"Taco Tuesday", "Crunchy vs soft shell", "Street taco stand", "Taco bar toppings",
		"Fish taco fresh", "Nacho cheese drip", "Burrito wrap", "Guacamole fresh",
	}},
	{"sushi", []string{
		"Rainbow roll colors", "Sushi conveyor belt", "Chopstick skills", "Nigiri piece",
		"Soy sauce dip", "Wasabi challenge", "Poke bowl art", "Sushi making class",
	}},
	{"pasta", []string{
		"Spaghetti twirl", "Mac and cheese bowl", "Lasagna layers", "Ravioli pillow",
		"Alfredo creamy", "Pasta making machine", "Ramen slurp", "Noodle pull",
	}},
	{"fruit", []string{
		"Watermelon slice", "Strawberry picking", "Banana peel slip", "Orange juice fresh",
		"Apple picking orchard", "Smoothie blend", "Fruit salad rainbow", "Grape bunch",
	}},
	{"chocolate", []string{
		"Hot cocoa marshmallows", "Chocolate fountain dip", "Brownie fudge", "Chocolate bunny",
		"Candy bar unwrap", "Chocolate chip melted", "Truffle box fancy", "Smores campfire",
	}},
	{"pancakes", []string{
		"Pancake flip", "Syrup pour", "Blueberry pancakes", "Pancake art face",
		"Waffle iron pattern", "Breakfast in bed", "Whipped cream tower", "French toast",
	}},

	// Games
	{"minecraft", []string{
		"Diamond pickaxe", "Creeper explosion", "Nether portal glow", "Enderman stare",
		"Redstone contraption", "Village trading", "Ender dragon fight", "Minecraft mansion",
		"Steve skin", "Pig riding", "Enchanting table", "Beacon beam",
	}},
	{"roblox", []string{
		"Robux coins", "Adopt Me pets", "Tower of Hell climb", "Brookhaven roleplay",
		"Murder Mystery solve", "Obby parkour", "Avatar customization", "Bloxburg house",
	}},
	{"pokemon", []string{
		"Pikachu thunderbolt", "Pokeball throw", "Shiny Pokemon rare", "Eevee evolutions",
		"Pokemon card holographic", "Gym badge collection", "Legendary catch", "Pokemon GO walk",
		"Starter Pokemon choice", "Pokemon battle arena",
	}},
	{"mario", []string{
		"Super mushroom power", "Princess Peach rescue", "Luigi mansion", "Bowser battle",
		"Mario Kart rainbow road", "Coin block punch", "Yoshi egg", "Star power invincible",
		"Warp pipe travel", "Goomba stomp",
	}},
	{"lego", []string{
		"LEGO set unboxing", "Minifigure collection", "LEGO city build", "Brick separator tool",
		"LEGO Star Wars", "LEGO castle siege", "LEGO Technic gears", "Stop motion LEGO",
		"LEGO sort by color", "Custom LEGO creation",
	}},
	{"fortnite", []string{
		"Victory Royale dance", "Battle bus drop", "Building ramps fast", "Loot chest open",
		"Fortnite emote", "Squad win", "Storm circle run", "Fortnite skin rare",
	}},

	// Music
	{"piano", []string{
		"Grand piano keys", "Piano recital", "Keyboard synthesizer", "Learning piano app",
		"Piano melody", "Playing by ear", "Duet performance", "Electric keyboard",
	}},
	{"guitar", []string{
		"Electric guitar solo", "Acoustic campfire", "Guitar pick collection", "Learning chords",
		"Rock star pose", "Ukulele strumming", "Bass guitar groove", "Air guitar contest",
	}},
	{"drums", []string{
		"Drum solo epic", "Drumstick spin", "Drum kit setup", "Marching band drums",
		"Beat making", "Snare drum roll", "Cymbal crash", "Electronic drum pad",
	}},
	{"singing", []string{
		"Karaoke night", "Microphone gold", "Talent show audition", "Choir harmony",
		"Singing in shower", "Voice recording studio", "Duet performance", "High note hit",
	}},

	// Colors
	{"blue", []string{
		"Ocean blue deep", "Sky blue bright", "Neon blue glow", "Royal blue velvet",
		"Blue raspberry candy", "Sapphire gemstone", "Blue butterfly wings", "Ice blue frozen",
	}},
	{"red", []string{
		"Fire engine red", "Ruby gemstone", "Cherry red lips", "Sunset red sky",
		"Rose red petals", "Strawberry red", "Racing red car", "Lava red hot",
	}},
	{"green", []string{
		"Emerald green gem", "Forest green trees", "Lime green neon", "Mint green fresh",
		"Grass green field", "Slime green goo", "Shamrock green lucky", "Frog green hop",
	}},
	{"purple", []string{
		"Royal purple crown", "Lavender fields", "Grape purple sweet", "Galaxy purple swirl",
		"Amethyst crystal", "Eggplant emoji", "Violet flower", "Neon purple glow",
	}},
	{"pink", []string{
		"Bubblegum pink", "Flamingo pink bird", "Cotton candy pink", "Cherry blossom pink",
		"Hot pink neon", "Rose pink soft", "Strawberry milk pink", "Pink sunset sky",
	}},
	{"yellow", []string{
		"Sunshine yellow", "Lemon yellow zesty", "Banana yellow", "Sunflower yellow bright",
		"Rubber duck yellow", "School bus yellow", "Gold yellow treasure", "Emoji yellow face",
	}},
	{"rainbow", []string{
		"Double rainbow sky", "Rainbow cake layers", "Rainbow tie dye", "Pride rainbow flag",
		"Rainbow sprinkles", "Rainbow unicorn", "Rainbow road game", "Rainbow slime swirl",
	}},

	// Places
	{"beach", []string{
		"Sandcastle building", "Wave surfing", "Seashell collecting", "Beach sunset",
		"Tide pool exploring", "Beach volleyball", "Boardwalk arcade", "Palm tree shade",
		"Beach bonfire", "Snorkeling adventure", "Hermit crab friend",
	}},
	{"mountains", []string{
		"Mountain peak summit", "Ski slope fresh powder", "Hiking trail view", "Cable car ride",
		"Waterfall discovery", "Mountain goat sighting", "Campfire night", "Rock climbing wall",
	}},
	{"forest", []string{
		"Treehouse hideout", "Forest trail hike", "Mushroom fairy ring", "Owl spotting",
		"Campsite setup", "Stream crossing", "Firefly night", "Tree climbing adventure",
	}},
	{"space", []string{
		"Rocket launch", "Astronaut floating", "Moon landing footprint", "Mars rover",
		"Saturn rings", "Meteor shower night", "Space station view", "Black hole mystery",
		"Nebula colors", "Alien planet", "Telescope stargazing", "Zero gravity fun",
	}},
	{"amusementpark", []string{
		"Roller coaster loop", "Ferris wheel view", "Bumper cars crash", "Cotton candy giant",
		"Carousel horse", "Water slide splash", "Haunted house scare", "Prize booth win",
	}},
	{"zoo", []string{
		"Zoo train ride", "Giraffe feeding", "Lion roar", "Penguin parade",
		"Monkey climbing", "Zoo gift shop", "Petting zoo baby", "Aquarium tunnel walk",
	}},

	// Art
	{"painting", []string{
		"Canvas splatter", "Watercolor blend", "Palette mixing", "Bob Ross trees",
		"Finger painting fun", "Portrait drawing", "Landscape painting", "Art museum visit",
	}},
	{"drawing", []string{
		"Sketchbook doodles", "Anime drawing style", "Character design", "Colored pencil art",
		"Comic strip creation", "Doodle art pattern", "Still life sketch", "Digital drawing tablet",
	}},
	{"crafts", []string{
		"DIY slime making", "Origami crane fold", "Friendship bracelet", "Clay sculpting",
		"Tie dye shirt", "Beaded jewelry", "Paper mache project", "Scrapbook page",
		"Popsicle stick house", "Glitter art",
	}},
	{"photography", []string{
		"Selfie pose", "Nature photography", "Pet photoshoot", "Sunset capture",
		"Photo filter fun", "Polaroid instant", "Photography contest", "Action shot freeze",
	}},

	// Creators
	{"youtubers", []string{
		"MrBeast challenge", "Gaming stream live", "Unboxing video", "Vlog camera setup",
		"Subscriber milestone", "YouTube play button", "Collab video duo", "Fan meetup event",
		"Merch collection", "Behind the scenes", "Comment section funny",
	}},

	// Tech
	{"technology", []string{
		"VR headset gaming", "Robot assistant", "Drone flying", "Smart watch apps",
		"3D printer creation", "Coding screen", "Gaming PC setup", "Wireless earbuds",
		"Tablet drawing", "LED strip lights", "Mechanical keyboard clicks",
	}},
	{"robots", []string{
		"Robot dance battle", "AI assistant chat", "Robot dog pet", "Battle bot arena",
		"Robot arm grabber", "Humanoid robot walk", "LEGO Mindstorms build", "Robot vacuum patrol",
	}},

	// Fantasy
	{"fantasy", []string{
		"Dragon breathing fire", "Wizard casting spell", "Fairy dust sparkle", "Mermaid tail",
		"Unicorn rainbow", "Castle drawbridge", "Knight armor shiny", "Magic wand wave",
		"Enchanted forest", "Phoenix rising", "Elf ears pointed", "Treasure chest gold",
	}},
	{"magic", []string{
		"Magic trick reveal", "Card trick shuffle", "Disappearing act", "Levitation illusion",
		"Magic hat rabbit", "Crystal ball gaze", "Potion brewing", "Spell book ancient",
	}},

	// Vehicles
	{"cars", []string{
		"Sports car speed", "Monster truck jump", "Race car pit stop", "Lowrider bounce",
		"Electric car charging", "Classic car show", "Go kart racing", "Car wash rainbow",
		"Hot wheels collection", "Dream car poster",
	}},
	{"vehicles", []string{
		"Fire truck siren", "Helicopter hover", "Train locomotive", "Motorcycle ride",
		"Airplane takeoff", "Boat sailing", "Ambulance rescue", "Garbage truck arm",
		"Ice cream truck", "School bus ride",
	}},

	// Collecting
	{"collecting", []string{
		"Trading card binder", "Funko Pop shelf", "Coin collection rare", "Stamp album",
		"Rock collection display", "Seashell jar", "Action figure collection", "Keychain collection",
		"Pin badge board", "Sticker album complete",
	}},

	// Cute
	{"cute", []string{
		"Baby animal yawn", "Tiny food miniature", "Kawaii character", "Plushie mountain",
		"Hamster eating tiny", "Kitten in teacup", "Puppy eyes look", "Squish mallow hug",
		"Chibi art style", "Baby penguin waddle",
	}},

	// Fashion
	{"fashion", []string{
		"Outfit of the day", "Sneaker collection", "Hair color change", "Nail art design",
		"Accessory haul", "Thrift store find", "Fashion show runway", "Mix and match style",
		"Jewelry sparkle", "Sunglasses cool",
	}},

	// Books
	{"books", []string{
		"Book stack tower", "Library quiet corner", "Audiobook headphones", "Bookmark collection",
		"Book series marathon", "Comic book page", "Graphic novel art", "Reading nook cozy",
		"Book club meeting", "Author autograph",
	}},

	// Movies and TV
	{"movies", []string{
		"Movie theater popcorn", "Superhero cape pose", "Animation behind scenes", "Movie premiere red carpet",
		"Favorite movie quote", "Movie marathon snacks", "Film camera vintage", "Special effects magic",
		"Movie poster collection", "Disney castle",
	}},

	// Puzzles
	{"puzzles", []string{
		"Jigsaw puzzle progress", "Rubiks cube solve", "Crossword puzzle pen", "Sudoku grid",
		"Escape room clue", "Brain teaser twist", "Logic puzzle solve", "Word search find",
		"Maze navigation", "Puzzle box secret",
	}},
}

// fallbackTemplates synthesize titles for concepts with no curated data.
var fallbackTemplates = []string{
	"amazing {thing}",
	"super cool {thing}",
	"tiny {thing}",
	"giant {thing}",
	"sparkly {thing}",
	"rainbow {thing}",
	"vintage {thing}",
	"futuristic {thing}",
	"{thing} collection",
	"{thing} adventure",
	"{thing} discovery",
	"best {thing} ever",
	"DIY {thing} project",
	"{thing} challenge",
	"ultimate {thing}",
	"secret {thing}",
	"{thing} surprise",
	"epic {thing} moment",
	"{thing} transformation",
	"{thing} world record",
}

// lastResortModifiers prefix a "vibes" title when no expansion passes validation.
var lastResortModifiers = []string{"awesome", "incredible", "magical", "special", "super"}

// lookupConcept returns the curated expansions for a concept key.
func lookupConcept(key string) []string {
	for _, group := range concepts {
		if group.Key == key {
			return group.Expansions
		}
	}
	return nil
}

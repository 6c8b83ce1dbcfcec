package enrichment

import (
	"regexp"
	"strings"

	"github.com/jonathan/vibe-quiz/internal/taxonomy"
)

// KidReference is a hand-written explanation for a well-known concept.
type KidReference struct {
	Concept     string   `json:"concept,omitempty"`
	Explanation string   `json:"explanation"`
	FunFact     string   `json:"fun_fact,omitempty"`
	RelatedTo   []string `json:"related_to,omitempty"`
}

// kidReferences is scanned in order for partial matches.
var kidReferences = []KidReference{
	{
		Concept:     "golden retriever",
		Explanation: "A super friendly, fluffy golden dog that loves to play fetch and give cuddles!",
		FunFact:     "They're often trained as helper dogs because they're so smart and gentle.",
		RelatedTo:   []string{"dogs", "pets", "puppies"},
	},
	{
		Concept:     "german shepherd",
		Explanation: "A brave, loyal dog with pointy ears that's often seen as a police or rescue dog!",
		FunFact:     "They can learn over 200 commands - that's way more than most dogs!",
		RelatedTo:   []string{"dogs", "pets", "working dogs"},
	},
	{
		Concept:     "shiba inu",
		Explanation: "A fluffy orange dog from Japan with a curly tail and a super cute face!",
		FunFact:     "They're the dog behind all those funny doge memes!",
		RelatedTo:   []string{"dogs", "pets", "memes"},
	},
	{
		Concept:     "husky",
		Explanation: "A beautiful wolf-like dog with bright blue eyes that loves cold weather!",
		FunFact:     "Huskies can pull sleds for hundreds of miles through the snow.",
		RelatedTo:   []string{"dogs", "snow", "sledding"},
	},
	{
		Concept:     "corgi",
		Explanation: "A short-legged, long dog with big ears and an adorable fluffy butt!",
		FunFact:     "The Queen of England loved corgis so much she had over 30 of them!",
		RelatedTo:   []string{"dogs", "pets", "cute animals"},
	},
	{
		Concept:     "maine coon",
		Explanation: "A giant fluffy cat that can be as big as a small dog!",
		FunFact:     "They're one of the oldest cat breeds from America and love to play in water.",
		RelatedTo:   []string{"cats", "pets", "fluffy"},
	},
	{
		Concept:     "orange tabby",
		Explanation: "A friendly orange cat with stripy fur - like Garfield!",
		FunFact:     "Almost all orange cats are boys! Only about 1 in 5 are girls.",
		RelatedTo:   []string{"cats", "pets", "Garfield"},
	},
	{
		Concept:     "baby panda",
		Explanation: "A tiny, pink newborn panda that grows up to be a big fluffy black and white bear!",
		FunFact:     "Baby pandas are SO tiny - about the size of a stick of butter when born!",
		RelatedTo:   []string{"pandas", "zoo animals", "cute"},
	},
	{
		Concept:     "t-rex",
		Explanation: "The most famous dinosaur ever - a huge meat-eater with tiny arms and giant teeth!",
		FunFact:     "T-Rex's teeth were as long as bananas! 🍌",
		RelatedTo:   []string{"dinosaurs", "Jurassic World", "fossils"},
	},
	{
		Concept:     "clownfish",
		Explanation: "A bright orange and white striped fish - just like Nemo!",
		FunFact:     "Clownfish live inside sea anemones which would sting other fish but not them!",
		RelatedTo:   []string{"fish", "Finding Nemo", "ocean"},
	},
	{
		Concept:     "minecraft",
		Explanation: "A super popular game where you build anything you want with blocks!",
		FunFact:     "Over 140 million people play Minecraft every month - that's like the whole population of Russia!",
		RelatedTo:   []string{"building", "survival games", "creepers"},
	},
	{
		Concept:     "diamond pickaxe",
		Explanation: "The best mining tool in Minecraft - it takes forever to find enough diamonds to make one!",
		FunFact:     "A real diamond pickaxe would actually be terrible for mining since diamonds are brittle!",
		RelatedTo:   []string{"Minecraft", "mining", "diamonds"},
	},
	{
		Concept:     "creeper",
		Explanation: "The green exploding monster from Minecraft that sneaks up and goes BOOM!",
		FunFact:     "Creepers were actually created by accident when the game maker messed up making a pig!",
		RelatedTo:   []string{"Minecraft", "mobs", "explosions"},
	},
	{
		Concept:     "roblox",
		Explanation: "A platform where you can play millions of different games made by other players!",
		FunFact:     "Kids have earned real money making games on Roblox!",
		RelatedTo:   []string{"gaming", "online games", "avatars"},
	},
	{
		Concept:     "adopt me",
		Explanation: "One of the most popular Roblox games where you raise and trade virtual pets!",
		FunFact:     "Adopt Me once had over 1.6 million people playing at the same time!",
		RelatedTo:   []string{"Roblox", "pets", "trading"},
	},
	{
		Concept:     "pikachu",
		Explanation: "The famous yellow electric mouse Pokémon - Ash's best friend!",
		FunFact:     "Pikachu's name comes from the Japanese words for sparkle (pika) and squeak (chu)!",
		RelatedTo:   []string{"Pokémon", "anime", "Nintendo"},
	},
	{
		Concept:     "mario",
		Explanation: "The famous red-hatted plumber who jumps on mushrooms and saves Princess Peach!",
		FunFact:     "Mario was originally called 'Jumpman' and was a carpenter, not a plumber!",
		RelatedTo:   []string{"Nintendo", "video games", "Luigi"},
	},
	{
		Concept:     "rainbow road",
		Explanation: "The hardest and most famous track in Mario Kart - one wrong move and you fall off!",
		FunFact:     "There's a Rainbow Road in almost every Mario Kart game since the first one in 1992!",
		RelatedTo:   []string{"Mario Kart", "racing games", "Nintendo"},
	},
	{
		Concept:     "fortnite",
		Explanation: "A battle royale game where 100 players compete to be the last one standing!",
		FunFact:     "Fortnite once hosted a virtual concert with over 12 million people watching at the same time!",
		RelatedTo:   []string{"battle royale", "building", "Victory Royale"},
	},
	{
		Concept:     "slam dunk",
		Explanation: "When a basketball player jumps super high and stuffs the ball through the hoop!",
		FunFact:     "The tallest NBA players can dunk without even jumping!",
		RelatedTo:   []string{"basketball", "NBA", "hoops"},
	},
	{
		Concept:     "bicycle kick",
		Explanation: "An amazing soccer move where you flip backwards and kick the ball over your head!",
		FunFact:     "It's called a bicycle kick because your legs move like you're pedaling a bike!",
		RelatedTo:   []string{"soccer", "goals", "tricks"},
	},
	{
		Concept:     "skateboard trick",
		Explanation: "Cool moves on a skateboard like flips, grinds, and jumps!",
		FunFact:     "The kickflip was invented in the 1980s and is still one of the most popular tricks!",
		RelatedTo:   []string{"skateboarding", "skate park", "extreme sports"},
	},
	{
		Concept:     "gymnastics floor routine",
		Explanation: "An amazing performance combining tumbling, dancing, and acrobatic moves!",
		FunFact:     "Olympic gymnasts can do flips so fast they spin 3 times before landing!",
		RelatedTo:   []string{"gymnastics", "Olympics", "tumbling"},
	},
	{
		Concept:     "deep dish pizza",
		Explanation: "A super thick pizza from Chicago with layers of cheese and chunky tomato sauce on top!",
		FunFact:     "It's so thick it's more like a pizza pie than a flat pizza!",
		RelatedTo:   []string{"pizza", "Chicago", "Italian food"},
	},
	{
		Concept:     "sushi roll",
		Explanation: "Rice, fish, and veggies rolled up in seaweed - you eat it in one or two bites!",
		FunFact:     "In Japan, sushi chefs train for years before they're allowed to make sushi for customers!",
		RelatedTo:   []string{"Japanese food", "seafood", "chopsticks"},
	},
	{
		Concept:     "ice cream sundae",
		Explanation: "Ice cream piled high with toppings like chocolate sauce, whipped cream, and a cherry!",
		FunFact:     "Sundaes were invented because some places wouldn't sell ice cream sodas on Sundays!",
		RelatedTo:   []string{"dessert", "ice cream", "toppings"},
	},
	{
		Concept:     "rainbow cake",
		Explanation: "A magical cake with layers of different colors that look like a rainbow when you cut it!",
		FunFact:     "Rainbow cakes became super popular from a cake decorating TV show!",
		RelatedTo:   []string{"birthday cake", "baking", "colorful"},
	},
	{
		Concept:     "rocket launch",
		Explanation: "When a giant rocket blasts off into space with fire shooting out the bottom!",
		FunFact:     "Rockets go so fast they could travel from New York to Los Angeles in under 10 minutes!",
		RelatedTo:   []string{"space", "NASA", "astronauts"},
	},
	{
		Concept:     "astronaut floating",
		Explanation: "People floating in space because there's no gravity to pull them down!",
		FunFact:     "Astronauts have to exercise 2 hours every day in space or their muscles get weak!",
		RelatedTo:   []string{"space station", "zero gravity", "NASA"},
	},
	{
		Concept:     "saturn rings",
		Explanation: "The beautiful rings around Saturn made of ice and rock chunks!",
		FunFact:     "You could fit 764 Earths inside Saturn - it's HUGE!",
		RelatedTo:   []string{"planets", "solar system", "space"},
	},
	{
		Concept:     "mars rover",
		Explanation: "A robot car that drives around on Mars taking pictures and doing science!",
		FunFact:     "NASA's rovers on Mars are powered by the same kind of batteries in your phone!",
		RelatedTo:   []string{"Mars", "robots", "NASA"},
	},
	{
		Concept:     "electric guitar solo",
		Explanation: "When a guitarist plays an awesome fast part all by themselves!",
		FunFact:     "Electric guitars need to be plugged in to make sound - without power, they're super quiet!",
		RelatedTo:   []string{"rock music", "concerts", "band"},
	},
	{
		Concept:     "drum solo",
		Explanation: "When a drummer shows off their skills playing all the drums and cymbals super fast!",
		FunFact:     "Some drummers use over 30 different drums and cymbals in their drum kit!",
		RelatedTo:   []string{"drums", "band", "rhythm"},
	},
	{
		Concept:     "k-pop dance",
		Explanation: "Perfectly synchronized dancing from Korean pop music groups!",
		FunFact:     "K-pop trainees practice dancing for years before they can debut in a group!",
		RelatedTo:   []string{"dancing", "BTS", "music"},
	},
	{
		Concept:     "karaoke",
		Explanation: "Singing along to your favorite songs with the lyrics on screen!",
		FunFact:     "Karaoke means 'empty orchestra' in Japanese!",
		RelatedTo:   []string{"singing", "music", "fun"},
	},
	{
		Concept:     "tie dye",
		Explanation: "A cool way to make colorful swirly patterns on t-shirts and fabric!",
		FunFact:     "Tie dye has been around for over 1,000 years in different cultures!",
		RelatedTo:   []string{"crafts", "colorful", "DIY"},
	},
	{
		Concept:     "origami crane",
		Explanation: "A paper bird made by folding paper without any cutting or glue!",
		FunFact:     "In Japan, people believe if you fold 1,000 cranes, you get a wish!",
		RelatedTo:   []string{"paper folding", "Japanese art", "crafts"},
	},
	{
		Concept:     "slime",
		Explanation: "Squishy, stretchy goo that's super satisfying to play with!",
		FunFact:     "You can make slime with just glue and contact lens solution!",
		RelatedTo:   []string{"DIY", "ASMR", "crafts"},
	},
	{
		Concept:     "perler beads",
		Explanation: "Tiny colorful beads you arrange on a pegboard then iron to melt together!",
		FunFact:     "You can make pixel art of video game characters with perler beads!",
		RelatedTo:   []string{"crafts", "pixel art", "DIY"},
	},
	{
		Concept:     "dragon",
		Explanation: "A giant flying lizard that can breathe fire - super cool but not real!",
		FunFact:     "Almost every culture in the world has dragon legends!",
		RelatedTo:   []string{"fantasy", "magic", "mythical creatures"},
	},
	{
		Concept:     "unicorn",
		Explanation: "A magical horse with a sparkly horn on its forehead!",
		FunFact:     "The unicorn is the national animal of Scotland!",
		RelatedTo:   []string{"magic", "horses", "rainbows"},
	},
	{
		Concept:     "mermaid tail",
		Explanation: "The beautiful sparkly fish tail that mermaids have instead of legs!",
		FunFact:     "You can actually buy swimmable mermaid tails to wear in pools!",
		RelatedTo:   []string{"mermaids", "ocean", "swimming"},
	},
	{
		Concept:     "wizard hat",
		Explanation: "The pointy hat that wizards and witches wear when doing magic!",
		FunFact:     "The classic wizard hat look was made famous by Gandalf and Dumbledore!",
		RelatedTo:   []string{"magic", "Harry Potter", "fantasy"},
	},
	{
		Concept:     "robot dog",
		Explanation: "A robot pet that can walk, play, and respond to commands!",
		FunFact:     "Some robot dogs can do backflips and dance!",
		RelatedTo:   []string{"robots", "technology", "pets"},
	},
	{
		Concept:     "vr headset",
		Explanation: "Goggles that make you feel like you're inside a video game!",
		FunFact:     "VR stands for Virtual Reality - it tricks your brain into thinking you're somewhere else!",
		RelatedTo:   []string{"gaming", "technology", "virtual reality"},
	},
	{
		Concept:     "drone",
		Explanation: "A flying robot with propellers that you control with a remote!",
		FunFact:     "Some drones can fly for over an hour and travel miles away!",
		RelatedTo:   []string{"flying", "technology", "cameras"},
	},
	{
		Concept:     "3d printer",
		Explanation: "A machine that builds 3D objects layer by layer from melted plastic!",
		FunFact:     "You can 3D print toys, phone cases, and even parts for other machines!",
		RelatedTo:   []string{"technology", "making", "printing"},
	},
	{
		Concept:     "lego set",
		Explanation: "A box of LEGO bricks with instructions to build something awesome!",
		FunFact:     "There are over 400 billion LEGO bricks in the world!",
		RelatedTo:   []string{"building", "toys", "creativity"},
	},
	{
		Concept:     "lego minifigure",
		Explanation: "The tiny LEGO people with yellow heads and claw hands!",
		FunFact:     "The most expensive LEGO minifigure ever sold was worth $15,000!",
		RelatedTo:   []string{"LEGO", "collecting", "toys"},
	},
	{
		Concept:     "squishmallow",
		Explanation: "Super soft, squishy plush toys that are perfect for cuddling!",
		FunFact:     "There are over 1,000 different Squishmallow characters!",
		RelatedTo:   []string{"plushies", "collecting", "cute"},
	},
	{
		Concept:     "kawaii",
		Explanation: "The Japanese word for 'cute' - think big eyes, pastel colors, and adorable faces!",
		FunFact:     "Hello Kitty is one of the most famous kawaii characters!",
		RelatedTo:   []string{"cute", "Japanese culture", "art style"},
	},
}

const defaultKidFunFact = "Every day is a chance to learn something new!"

// KidExplanation returns the curated reference for concept: an exact match,
// else the first partial match in either direction, else a generated sentence.
func KidExplanation(concept string) KidReference {
	normalized := strings.ToLower(strings.TrimSpace(concept))
	if normalized != "" {
		for _, ref := range kidReferences {
			if ref.Concept == normalized {
				return ref
			}
		}
		for _, ref := range kidReferences {
			if strings.Contains(normalized, ref.Concept) || strings.Contains(ref.Concept, normalized) {
				return ref
			}
		}
	}
	return KidReference{
		Concept:     normalized,
		Explanation: strings.TrimSpace(concept) + " - something cool you might want to check out!",
		FunFact:     defaultKidFunFact,
	}
}

type replacement struct {
	pattern *regexp.Regexp
	with    string
}

// modernReplacements swap dated or adult references for ones kids recognize.
// Longer phrases come first so they win over their prefixes.
var modernReplacements = []replacement{
	{regexp.MustCompile(`(?i)tony hawk move`), "skateboard flip trick"},
	{regexp.MustCompile(`(?i)tony hawk`), "pro skater trick"},
	{regexp.MustCompile(`(?i)rock concert`), "music concert"},
	{regexp.MustCompile(`(?i)influencer`), "YouTuber"},
	{regexp.MustCompile(`(?i)celebrity`), "famous person"},
}

// ModernizeReference rewrites outdated references in text.
func ModernizeReference(text string) string {
	for _, r := range modernReplacements {
		text = r.pattern.ReplaceAllLiteralString(text, r.with)
	}
	return text
}

// ExplainConcept explains a bare concept when there is no card to enrich.
// Dated references are modernized on the way in and out.
func ExplainConcept(concept string) KidReference {
	ref := KidExplanation(ModernizeReference(concept))
	ref.Explanation = ModernizeReference(ref.Explanation)
	ref.FunFact = ModernizeReference(ref.FunFact)
	if len(ref.RelatedTo) == 0 {
		ref.RelatedTo = taxonomy.RelatedTerms(ref.Concept)
	}
	return ref
}

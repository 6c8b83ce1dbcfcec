package enrichment

type templateFamily struct {
	Templates []string
	FunFacts  []string
}

const (
	categorySportsPlayer = "sportsplayer"
	categoryOther        = "other"
	categoryUnknown      = "unknown"
	categoryNails        = "nails"
	categoryMakeup       = "makeup"
	categoryPets         = "pets"
)

var templateFamilies = map[string]templateFamily{
	"sports": {
		Templates: []string{
			"{title} is a super exciting part of the sports world!",
			"This is all about {title} - get ready to cheer!",
			"{title} is something athletes love to do or use!",
		},
		FunFacts: []string{
			"Sports help you stay healthy and make friends!",
			"Professional athletes practice for hours every day!",
			"Many kids dream of becoming sports stars one day!",
		},
	},
	categorySportsPlayer: {
		Templates: []string{
			"{title} is a {position} who plays {sport} for {team}!",
			"Meet {title} - a {sport} player who plays for {team}!",
			"{title} plays {position} for the {team}!",
		},
		FunFacts: []string{
			"Pro athletes train for hours every day to stay at the top of their game!",
			"Many athletes started playing their sport when they were your age!",
			"Being a team player is just as important as being talented!",
		},
	},
	"baseball": {
		Templates: []string{
			"{title} is part of the awesome world of baseball!",
			"This is {title} - a key part of America's favorite pastime!",
			"{title} makes baseball games super exciting!",
		},
		FunFacts: []string{
			"A baseball has exactly 108 stitches!",
			"The fastest pitch ever recorded was over 105 mph!",
			"Baseball games can last 3+ hours - that's a lot of hot dogs!",
		},
	},
	categoryNails: {
		Templates: []string{
			"{title} is a fun way to make your nails look amazing!",
			"This is {title} - a super cute nail style!",
			"{title} is all about expressing yourself through nail art!",
		},
		FunFacts: []string{
			"Your fingernails grow about 3.5 millimeters per month!",
			"Nail art has been around for over 5,000 years!",
			"Some nail artists create tiny paintings on a single nail!",
		},
	},
	categoryMakeup: {
		Templates: []string{
			"{title} is a fun beauty product to play with!",
			"This is {title} - a popular makeup item for creating cool looks!",
			"{title} helps people express their creativity through makeup!",
		},
		FunFacts: []string{
			"Ancient Egyptians wore makeup over 6,000 years ago!",
			"Glitter in makeup is often made from tiny pieces of mica rock!",
			"Some makeup artists create amazing fantasy looks for movies!",
		},
	},
	"animals": {
		Templates: []string{
			"{title} is an amazing creature you might see at a zoo or in nature!",
			"This is {title} - one of nature's coolest animals!",
			"{title} is a fascinating animal with some pretty cool abilities!",
		},
		FunFacts: []string{
			"There are over 8 million animal species on Earth!",
			"Some animals can see colors that humans can't!",
			"Baby animals are often called different names than adults!",
		},
	},
	categoryPets: {
		Templates: []string{
			"{title} makes for an awesome pet and friend!",
			"This is {title} - a popular pet that people love!",
			"{title} is a cuddly companion that many families have at home!",
		},
		FunFacts: []string{
			"Dogs have been human companions for over 15,000 years!",
			"Cats spend about 70% of their lives sleeping!",
			"Having a pet can make you happier and healthier!",
		},
	},
	"food": {
		Templates: []string{
			"{title} is a yummy treat that lots of people love!",
			"This is {title} - a delicious food you might want to try!",
			"{title} is something tasty that makes meal time fun!",
		},
		FunFacts: []string{
			"Your taste buds can detect five different flavors!",
			"The world's largest pizza was over 13,000 square feet!",
			"Humans eat about 35 tons of food in their lifetime!",
		},
	},
	"videogames": {
		Templates: []string{
			"{title} is something awesome from the gaming world!",
			"This is {title} - a cool thing gamers love!",
			"{title} makes gaming even more fun and exciting!",
		},
		FunFacts: []string{
			"The first video game was created in 1958!",
			"More than 3 billion people play video games worldwide!",
			"Some people play video games professionally and win prizes!",
		},
	},
	"music": {
		Templates: []string{
			"{title} is a cool part of the music world!",
			"This is {title} - something musicians use or love!",
			"{title} helps make music that you can sing or dance to!",
		},
		FunFacts: []string{
			"Music can make you feel happier and more energized!",
			"The world's longest concert lasted over 453 hours!",
			"Every culture in the world has its own music!",
		},
	},
	"crafts": {
		Templates: []string{
			"{title} is a fun way to get creative!",
			"This is {title} - an awesome art or craft activity!",
			"{title} lets you make cool stuff with your own hands!",
		},
		FunFacts: []string{
			"Making art can help reduce stress and boost your mood!",
			"The world's most expensive painting sold for $450 million!",
			"Kids are often more creative than adults!",
		},
	},
	"movies": {
		Templates: []string{
			"{title} is from the exciting world of movies and TV!",
			"This is {title} - something you might see on the big screen!",
			"{title} is part of what makes movies and shows so much fun!",
		},
		FunFacts: []string{
			"The first movie ever made was only 2 seconds long!",
			"Some movies take years to make from start to finish!",
			"Voice actors bring animated characters to life!",
		},
	},
	"outdoors": {
		Templates: []string{
			"{title} is a great reason to get outside and explore!",
			"This is {title} - an awesome outdoor activity or place!",
			"{title} makes spending time in nature super fun!",
		},
		FunFacts: []string{
			"Spending time outside is great for your health!",
			"There are over 400 national parks in the United States!",
			"Nature is home to millions of plants and animals!",
		},
	},
	"tech": {
		Templates: []string{
			"{title} is a cool piece of technology!",
			"This is {title} - something from the world of tech!",
			"{title} shows how technology can be amazing!",
		},
		FunFacts: []string{
			"The first computer was as big as a room!",
			"Your smartphone is more powerful than the computers that sent people to the moon!",
			"New technology is invented every single day!",
		},
	},
	"space": {
		Templates: []string{
			"{title} is out of this world - literally!",
			"This is {title} - a glimpse of the universe beyond our sky!",
			"{title} is something astronauts and scientists get excited about!",
		},
		FunFacts: []string{
			"A day on Venus is longer than a whole year on Venus!",
			"There are more stars in the universe than grains of sand on every beach on Earth!",
			"Footprints on the Moon can last for millions of years because there is no wind!",
		},
	},
	"fantasy": {
		Templates: []string{
			"{title} comes straight from a world of magic and legends!",
			"This is {title} - something you might find in a fairy tale!",
			"{title} is full of imagination and a little bit of magic!",
		},
		FunFacts: []string{
			"Almost every culture in the world has its own magical creatures!",
			"Many fantasy stories were first told out loud around campfires!",
			"Some magic tricks have been performed for hundreds of years!",
		},
	},
	"books": {
		Templates: []string{
			"{title} is something readers and comic fans love!",
			"This is {title} - a great way to get lost in a story!",
			"{title} is all about stories, pictures, and big adventures!",
		},
		FunFacts: []string{
			"The world's largest library has over 170 million items!",
			"Comic books have been around for almost 100 years!",
			"Reading just 20 minutes a day adds up to almost 2 million words a year!",
		},
	},
	"vehicles": {
		Templates: []string{
			"{title} is all about things that go fast or move big stuff!",
			"This is {title} - a cool machine on wheels, wings, or water!",
			"{title} shows how amazing vehicles can be!",
		},
		FunFacts: []string{
			"The fastest car in the world can go over 300 miles per hour!",
			"The first cars had a top speed slower than a bicycle!",
			"Some monster trucks weigh as much as three elephants!",
		},
	},
	"building": {
		Templates: []string{
			"{title} is perfect for builders who love making big creations!",
			"This is {title} - snap it together and make something new!",
			"{title} lets you design and build whatever you imagine!",
		},
		FunFacts: []string{
			"Two LEGO bricks can be combined in 24 different ways!",
			"The tallest LEGO tower ever built was over 100 feet tall!",
			"Engineers often start by building small models first!",
		},
	},
	"puzzles": {
		Templates: []string{
			"{title} is a fun challenge for your brain!",
			"This is {title} - a game where thinking helps you win!",
			"{title} is great for anyone who loves solving things!",
		},
		FunFacts: []string{
			"The Rubik's Cube has over 43 quintillion possible positions!",
			"Solving puzzles can help your memory get stronger!",
			"The first jigsaw puzzles were maps cut into pieces!",
		},
	},
	"fashion": {
		Templates: []string{
			"{title} is a fun way to show off your personal style!",
			"This is {title} - something that makes an outfit pop!",
			"{title} is all about looking cool and feeling confident!",
		},
		FunFacts: []string{
			"Sneakers got their name because their rubber soles made them quiet!",
			"Some fashion designers sketch hundreds of ideas before making one outfit!",
			"Sunglasses were first made in China hundreds of years ago!",
		},
	},
	"collecting": {
		Templates: []string{
			"{title} is something collectors love to find and show off!",
			"This is {title} - one more treasure for a growing collection!",
			"{title} is fun to gather, trade, and organize!",
		},
		FunFacts: []string{
			"Some rare trading cards have sold for millions of dollars!",
			"People have collected coins for more than 2,000 years!",
			"Trading with friends is one of the best parts of collecting!",
		},
	},
	"cute": {
		Templates: []string{
			"{title} is so adorable it might make you say 'aww'!",
			"This is {title} - one of the cutest things around!",
			"{title} is soft, sweet, and super cute!",
		},
		FunFacts: []string{
			"Looking at cute things can actually make you feel happier!",
			"Big eyes and round faces are why baby animals look so cute!",
			"Kawaii is the Japanese word for cute!",
		},
	},
	categoryOther: {
		Templates: []string{
			"{title} is something cool you might want to learn about!",
			"This is {title} - it could be fun to check out!",
			"{title} is one of many interesting things in the world!",
		},
		FunFacts: []string{
			"Learning new things helps your brain grow!",
			"Every day is a chance to discover something awesome!",
			"Curiosity is one of the best traits to have!",
		},
	},
}

// explanationCategories maps tags and card categories to template families.
var explanationCategories = map[string]string{
	"animals":    "animals",
	"dogs":       categoryPets,
	"cats":       categoryPets,
	"pets":       categoryPets,
	"sports":     "sports",
	"baseball":   "baseball",
	"basketball": "sports",
	"soccer":     "sports",
	"football":   "sports",
	"food":       "food",
	"foodtreats": "food",
	"videogames": "videogames",
	"games":      "videogames",
	"music":      "music",
	"art":        "crafts",
	"crafts":     "crafts",
	"artcrafts":  "crafts",
	"movies":     "movies",
	"tv":         "movies",
	"moviestv":   "movies",
	"outdoors":   "outdoors",
	"nature":     "outdoors",
	"tech":       "tech",
	"technology": "tech",
	"beauty":     categoryMakeup,
	"nails":      categoryNails,

	"techgadgets":  "tech",
	"space":        "space",
	"fantasymagic": "fantasy",
	"fantasy":      "fantasy",
	"magic":        "fantasy",
	"bookscomics":  "books",
	"books":        "books",
	"carsvehicles": "vehicles",
	"cars":         "vehicles",
	"vehicles":     "vehicles",
	"buildinglego": "building",
	"lego":         "building",
	"puzzlesgames": "puzzles",
	"puzzles":      "puzzles",
	"fashionstyle": "fashion",
	"fashion":      "fashion",
	"collecting":   "collecting",
	"cutestuff":    "cute",
	"cute":         "cute",
}

package deck

// surpriseCard is a curated, universally kid-safe novelty topic.
type surpriseCard struct {
	Title    string
	Category string
	Tags     []string
}

var surprisePool = []surpriseCard{
	// Animals
	{"Fluffy kittens", "animals", []string{"cats", "animals"}},
	{"Playful puppies", "animals", []string{"dogs", "animals"}},
	{"Baby pandas rolling", "animals", []string{"pandas", "animals"}},
	{"Dolphin jumping", "animals", []string{"fish", "animals"}},
	{"Penguin waddle", "animals", []string{"birds", "animals"}},
	{"Bunny hop", "animals", []string{"rabbits", "animals"}},
	{"Koala nap time", "animals", []string{"animals"}},
	{"Red panda cute", "animals", []string{"animals"}},

	// Treats
	{"Rainbow ice cream", "foodtreats", []string{"icecream", "food"}},
	{"Gummy bears", "foodtreats", []string{"candy", "food"}},
	{"Cookie decorating", "foodtreats", []string{"cookies", "food"}},
	{"Popcorn movie night", "foodtreats", []string{"snacks", "food"}},
	{"Cotton candy swirl", "foodtreats", []string{"candy", "food"}},
	{"Hot cocoa marshmallows", "foodtreats", []string{"chocolate", "food"}},
	{"Fruit smoothie blend", "foodtreats", []string{"fruit", "food"}},

	// Activities
	{"Bubble blowing", "outdoors", []string{"fun", "outdoors"}},
	{"Trampoline jumping", "sports", []string{"fun", "sports"}},
	{"Water balloon fight", "outdoors", []string{"summer", "outdoors"}},
	{"Pillow fort building", "buildinglego", []string{"building", "fun"}},
	{"Hide and seek", "puzzlesgames", []string{"games", "fun"}},
	{"Dance party", "music", []string{"dancing", "music"}},
	{"Balloon animals", "artcrafts", []string{"crafts", "fun"}},

	// Sports
	{"Soccer goal celebration", "sports", []string{"soccer", "sports"}},
	{"Basketball slam dunk", "sports", []string{"basketball", "sports"}},
	{"Swimming pool splash", "sports", []string{"swimming", "sports"}},
	{"Bowling strike", "sports", []string{"bowling", "sports"}},
	{"Mini golf hole-in-one", "sports", []string{"golf", "sports"}},

	// Games
	{"Board game night", "puzzlesgames", []string{"boardgames", "games"}},
	{"Card game tricks", "puzzlesgames", []string{"cards", "games"}},
	{"Video game victory", "videogames", []string{"games", "videogames"}},
	{"Puzzle solving", "puzzlesgames", []string{"puzzles", "games"}},
	{"LEGO creations", "buildinglego", []string{"lego", "building"}},

	// Crafts
	{"Slime making", "artcrafts", []string{"crafts", "art"}},
	{"Rainbow painting", "artcrafts", []string{"painting", "art"}},
	{"Friendship bracelets", "artcrafts", []string{"crafts", "art"}},
	{"Origami animals", "artcrafts", []string{"origami", "crafts"}},
	{"Sticker collection", "collecting", []string{"stickers", "collecting"}},

	// Sky and seasons
	{"Fireworks show", "outdoors", []string{"celebration", "outdoors"}},
	{"Rainbow after rain", "outdoors", []string{"rainbow", "nature"}},
	{"Stargazing night", "space", []string{"space", "nature"}},
	{"Sunset colors", "outdoors", []string{"nature", "outdoors"}},
	{"Snowflake catching", "outdoors", []string{"winter", "outdoors"}},
}

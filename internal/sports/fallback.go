package sports

// fallbackRosters are curated rosters served when the stats API is unreachable.
// They are not guaranteed to reflect current rosters.
var fallbackRosters = map[string][]Player{
	"dodgers": {
		{ID: 1, Name: "Mookie Betts", FirstName: "Mookie", LastName: "Betts", Position: "RF"},
		{ID: 2, Name: "Freddie Freeman", FirstName: "Freddie", LastName: "Freeman", Position: "1B"},
		{ID: 3, Name: "Shohei Ohtani", FirstName: "Shohei", LastName: "Ohtani", Position: "DH"},
		{ID: 4, Name: "Will Smith", FirstName: "Will", LastName: "Smith", Position: "C"},
		{ID: 5, Name: "Teoscar Hernandez", FirstName: "Teoscar", LastName: "Hernandez", Position: "LF"},
		{ID: 6, Name: "Max Muncy", FirstName: "Max", LastName: "Muncy", Position: "3B"},
		{ID: 7, Name: "Gavin Lux", FirstName: "Gavin", LastName: "Lux", Position: "2B"},
		{ID: 8, Name: "James Outman", FirstName: "James", LastName: "Outman", Position: "CF"},
		{ID: 9, Name: "Miguel Rojas", FirstName: "Miguel", LastName: "Rojas", Position: "SS"},
		{ID: 10, Name: "Tyler Glasnow", FirstName: "Tyler", LastName: "Glasnow", Position: "SP"},
		{ID: 11, Name: "Yoshinobu Yamamoto", FirstName: "Yoshinobu", LastName: "Yamamoto", Position: "SP"},
		{ID: 12, Name: "Clayton Kershaw", FirstName: "Clayton", LastName: "Kershaw", Position: "SP"},
	},
	"yankees": {
		{ID: 1, Name: "Aaron Judge", FirstName: "Aaron", LastName: "Judge", Position: "CF"},
		{ID: 2, Name: "Juan Soto", FirstName: "Juan", LastName: "Soto", Position: "RF"},
		{ID: 3, Name: "Anthony Rizzo", FirstName: "Anthony", LastName: "Rizzo", Position: "1B"},
		{ID: 4, Name: "Gleyber Torres", FirstName: "Gleyber", LastName: "Torres", Position: "2B"},
		{ID: 5, Name: "Anthony Volpe", FirstName: "Anthony", LastName: "Volpe", Position: "SS"},
		{ID: 6, Name: "Jazz Chisholm Jr.", FirstName: "Jazz", LastName: "Chisholm Jr.", Position: "3B"},
		{ID: 7, Name: "Austin Wells", FirstName: "Austin", LastName: "Wells", Position: "C"},
		{ID: 8, Name: "Giancarlo Stanton", FirstName: "Giancarlo", LastName: "Stanton", Position: "DH"},
		{ID: 9, Name: "Gerrit Cole", FirstName: "Gerrit", LastName: "Cole", Position: "SP"},
		{ID: 10, Name: "Carlos Rodon", FirstName: "Carlos", LastName: "Rodon", Position: "SP"},
	},
	"red-sox": {
		{ID: 1, Name: "Rafael Devers", FirstName: "Rafael", LastName: "Devers", Position: "3B"},
		{ID: 2, Name: "Trevor Story", FirstName: "Trevor", LastName: "Story", Position: "SS"},
		{ID: 3, Name: "Masataka Yoshida", FirstName: "Masataka", LastName: "Yoshida", Position: "LF"},
		{ID: 4, Name: "Jarren Duran", FirstName: "Jarren", LastName: "Duran", Position: "CF"},
		{ID: 5, Name: "Connor Wong", FirstName: "Connor", LastName: "Wong", Position: "C"},
		{ID: 6, Name: "Tyler ONeill", FirstName: "Tyler", LastName: "ONeill", Position: "RF"},
		{ID: 7, Name: "Triston Casas", FirstName: "Triston", LastName: "Casas", Position: "1B"},
		{ID: 8, Name: "Brayan Bello", FirstName: "Brayan", LastName: "Bello", Position: "SP"},
		{ID: 9, Name: "Tanner Houck", FirstName: "Tanner", LastName: "Houck", Position: "SP"},
	},
	"cubs": {
		{ID: 1, Name: "Dansby Swanson", FirstName: "Dansby", LastName: "Swanson", Position: "SS"},
		{ID: 2, Name: "Nico Hoerner", FirstName: "Nico", LastName: "Hoerner", Position: "2B"},
		{ID: 3, Name: "Ian Happ", FirstName: "Ian", LastName: "Happ", Position: "LF"},
		{ID: 4, Name: "Cody Bellinger", FirstName: "Cody", LastName: "Bellinger", Position: "CF"},
		{ID: 5, Name: "Seiya Suzuki", FirstName: "Seiya", LastName: "Suzuki", Position: "RF"},
		{ID: 6, Name: "Christopher Morel", FirstName: "Christopher", LastName: "Morel", Position: "3B"},
		{ID: 7, Name: "Yan Gomes", FirstName: "Yan", LastName: "Gomes", Position: "C"},
		{ID: 8, Name: "Justin Steele", FirstName: "Justin", LastName: "Steele", Position: "SP"},
	},
	"braves": {
		{ID: 1, Name: "Ronald Acuna Jr.", FirstName: "Ronald", LastName: "Acuna Jr.", Position: "RF"},
		{ID: 2, Name: "Ozzie Albies", FirstName: "Ozzie", LastName: "Albies", Position: "2B"},
		{ID: 3, Name: "Austin Riley", FirstName: "Austin", LastName: "Riley", Position: "3B"},
		{ID: 4, Name: "Matt Olson", FirstName: "Matt", LastName: "Olson", Position: "1B"},
		{ID: 5, Name: "Michael Harris II", FirstName: "Michael", LastName: "Harris II", Position: "CF"},
		{ID: 6, Name: "Marcell Ozuna", FirstName: "Marcell", LastName: "Ozuna", Position: "DH"},
		{ID: 7, Name: "Travis dArnaud", FirstName: "Travis", LastName: "dArnaud", Position: "C"},
		{ID: 8, Name: "Spencer Strider", FirstName: "Spencer", LastName: "Strider", Position: "SP"},
		{ID: 9, Name: "Max Fried", FirstName: "Max", LastName: "Fried", Position: "SP"},
	},
	"phillies": {
		{ID: 1, Name: "Bryce Harper", FirstName: "Bryce", LastName: "Harper", Position: "1B"},
		{ID: 2, Name: "Trea Turner", FirstName: "Trea", LastName: "Turner", Position: "SS"},
		{ID: 3, Name: "Kyle Schwarber", FirstName: "Kyle", LastName: "Schwarber", Position: "LF"},
		{ID: 4, Name: "JT Realmuto", FirstName: "JT", LastName: "Realmuto", Position: "C"},
		{ID: 5, Name: "Nick Castellanos", FirstName: "Nick", LastName: "Castellanos", Position: "RF"},
		{ID: 6, Name: "Alec Bohm", FirstName: "Alec", LastName: "Bohm", Position: "3B"},
		{ID: 7, Name: "Bryson Stott", FirstName: "Bryson", LastName: "Stott", Position: "2B"},
		{ID: 8, Name: "Zack Wheeler", FirstName: "Zack", LastName: "Wheeler", Position: "SP"},
		{ID: 9, Name: "Aaron Nola", FirstName: "Aaron", LastName: "Nola", Position: "SP"},
	},
	"astros": {
		{ID: 1, Name: "Jose Altuve", FirstName: "Jose", LastName: "Altuve", Position: "2B"},
		{ID: 2, Name: "Yordan Alvarez", FirstName: "Yordan", LastName: "Alvarez", Position: "DH"},
		{ID: 3, Name: "Alex Bregman", FirstName: "Alex", LastName: "Bregman", Position: "3B"},
		{ID: 4, Name: "Kyle Tucker", FirstName: "Kyle", LastName: "Tucker", Position: "RF"},
		{ID: 5, Name: "Jeremy Pena", FirstName: "Jeremy", LastName: "Pena", Position: "SS"},
		{ID: 6, Name: "Yainer Diaz", FirstName: "Yainer", LastName: "Diaz", Position: "C"},
		{ID: 7, Name: "Framber Valdez", FirstName: "Framber", LastName: "Valdez", Position: "SP"},
		{ID: 8, Name: "Justin Verlander", FirstName: "Justin", LastName: "Verlander", Position: "SP"},
	},
	"padres": {
		{ID: 1, Name: "Fernando Tatis Jr.", FirstName: "Fernando", LastName: "Tatis Jr.", Position: "RF"},
		{ID: 2, Name: "Manny Machado", FirstName: "Manny", LastName: "Machado", Position: "3B"},
		{ID: 3, Name: "Xander Bogaerts", FirstName: "Xander", LastName: "Bogaerts", Position: "SS"},
		{ID: 4, Name: "Jake Cronenworth", FirstName: "Jake", LastName: "Cronenworth", Position: "1B"},
		{ID: 5, Name: "Ha-Seong Kim", FirstName: "Ha-Seong", LastName: "Kim", Position: "2B"},
		{ID: 6, Name: "Jurickson Profar", FirstName: "Jurickson", LastName: "Profar", Position: "LF"},
		{ID: 7, Name: "Kyle Higashioka", FirstName: "Kyle", LastName: "Higashioka", Position: "C"},
		{ID: 8, Name: "Yu Darvish", FirstName: "Yu", LastName: "Darvish", Position: "SP"},
		{ID: 9, Name: "Joe Musgrove", FirstName: "Joe", LastName: "Musgrove", Position: "SP"},
	},
	"mets": {
		{ID: 1, Name: "Francisco Lindor", FirstName: "Francisco", LastName: "Lindor", Position: "SS"},
		{ID: 2, Name: "Pete Alonso", FirstName: "Pete", LastName: "Alonso", Position: "1B"},
		{ID: 3, Name: "Brandon Nimmo", FirstName: "Brandon", LastName: "Nimmo", Position: "CF"},
		{ID: 4, Name: "Jeff McNeil", FirstName: "Jeff", LastName: "McNeil", Position: "2B"},
		{ID: 5, Name: "Starling Marte", FirstName: "Starling", LastName: "Marte", Position: "RF"},
		{ID: 6, Name: "Mark Vientos", FirstName: "Mark", LastName: "Vientos", Position: "3B"},
		{ID: 7, Name: "Francisco Alvarez", FirstName: "Francisco", LastName: "Alvarez", Position: "C"},
		{ID: 8, Name: "Kodai Senga", FirstName: "Kodai", LastName: "Senga", Position: "SP"},
	},
	"giants": {
		{ID: 1, Name: "Matt Chapman", FirstName: "Matt", LastName: "Chapman", Position: "3B"},
		{ID: 2, Name: "Jung Hoo Lee", FirstName: "Jung Hoo", LastName: "Lee", Position: "CF"},
		{ID: 3, Name: "Michael Conforto", FirstName: "Michael", LastName: "Conforto", Position: "RF"},
		{ID: 4, Name: "Wilmer Flores", FirstName: "Wilmer", LastName: "Flores", Position: "1B"},
		{ID: 5, Name: "Jorge Soler", FirstName: "Jorge", LastName: "Soler", Position: "DH"},
		{ID: 6, Name: "Thairo Estrada", FirstName: "Thairo", LastName: "Estrada", Position: "2B"},
		{ID: 7, Name: "Tyler Fitzgerald", FirstName: "Tyler", LastName: "Fitzgerald", Position: "SS"},
		{ID: 8, Name: "Logan Webb", FirstName: "Logan", LastName: "Webb", Position: "SP"},
		{ID: 9, Name: "Blake Snell", FirstName: "Blake", LastName: "Snell", Position: "SP"},
	},
}

// positionNames maps roster position codes to display names.
var positionNames = map[string]string{
	"P":   "Pitcher",
	"SP":  "Starting Pitcher",
	"RP":  "Relief Pitcher",
	"C":   "Catcher",
	"1B":  "First Baseman",
	"2B":  "Second Baseman",
	"3B":  "Third Baseman",
	"SS":  "Shortstop",
	"LF":  "Left Fielder",
	"CF":  "Center Fielder",
	"RF":  "Right Fielder",
	"OF":  "Outfielder",
	"DH":  "Designated Hitter",
	"IF":  "Infielder",
	"UT":  "Utility Player",
	"TWP": "Two-Way Player",
}

// PositionName returns the display name for a position code, or the code itself.
func PositionName(code string) string {
	if name, ok := positionNames[code]; ok {
		return name
	}
	return code
}

func fallbackPlayers(slug string) []Player {
	src := fallbackRosters[slug]
	out := make([]Player, len(src))
	for i, p := range src {
		p.PositionName = PositionName(p.Position)
		out[i] = p
	}
	return out
}

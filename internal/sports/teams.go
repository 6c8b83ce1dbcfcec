// Package sports resolves baseball team mentions and serves team rosters for player cards.
package sports

// League is the only league currently served.
const League = "MLB"

// Sport is the sport name attached to team and player cards.
const Sport = "baseball"

// TeamColors are a team's brand colors as hex strings.
type TeamColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// TeamInfo is the canonical record for one team.
type TeamInfo struct {
	MLBID        int        `json:"mlb_id"`
	Slug         string     `json:"slug"`
	Name         string     `json:"name"`
	FullName     string     `json:"full_name"`
	Abbreviation string     `json:"abbreviation"`
	City         string     `json:"city"`
	Colors       TeamColors `json:"colors"`
	Mascot       string     `json:"mascot,omitempty"`
	Stadium      string     `json:"stadium"`
}

// League returns the league the team plays in.
func (t TeamInfo) League() string { return League }

var mlbTeams = []TeamInfo{
	{MLBID: 119, Slug: "dodgers", Name: "Dodgers", FullName: "Los Angeles Dodgers", Abbreviation: "LAD", City: "Los Angeles", Colors: TeamColors{Primary: "#005A9C", Secondary: "#EF3E42"}, Stadium: "Dodger Stadium"},
	{MLBID: 147, Slug: "yankees", Name: "Yankees", FullName: "New York Yankees", Abbreviation: "NYY", City: "New York", Colors: TeamColors{Primary: "#003087", Secondary: "#E4002C"}, Stadium: "Yankee Stadium"},
	{MLBID: 111, Slug: "red-sox", Name: "Red Sox", FullName: "Boston Red Sox", Abbreviation: "BOS", City: "Boston", Colors: TeamColors{Primary: "#BD3039", Secondary: "#0C2340"}, Stadium: "Fenway Park"},
	{MLBID: 112, Slug: "cubs", Name: "Cubs", FullName: "Chicago Cubs", Abbreviation: "CHC", City: "Chicago", Colors: TeamColors{Primary: "#0E3386", Secondary: "#CC3433"}, Stadium: "Wrigley Field"},
	{MLBID: 145, Slug: "white-sox", Name: "White Sox", FullName: "Chicago White Sox", Abbreviation: "CHW", City: "Chicago", Colors: TeamColors{Primary: "#27251F", Secondary: "#C4CED4"}, Stadium: "Guaranteed Rate Field"},
	{MLBID: 137, Slug: "giants", Name: "Giants", FullName: "San Francisco Giants", Abbreviation: "SF", City: "San Francisco", Colors: TeamColors{Primary: "#FD5A1E", Secondary: "#27251F"}, Stadium: "Oracle Park"},
	{MLBID: 108, Slug: "angels", Name: "Angels", FullName: "Los Angeles Angels", Abbreviation: "LAA", City: "Anaheim", Colors: TeamColors{Primary: "#BA0021", Secondary: "#003263"}, Stadium: "Angel Stadium"},
	{MLBID: 143, Slug: "phillies", Name: "Phillies", FullName: "Philadelphia Phillies", Abbreviation: "PHI", City: "Philadelphia", Colors: TeamColors{Primary: "#E81828", Secondary: "#002D72"}, Stadium: "Citizens Bank Park"},
	{MLBID: 144, Slug: "braves", Name: "Braves", FullName: "Atlanta Braves", Abbreviation: "ATL", City: "Atlanta", Colors: TeamColors{Primary: "#CE1141", Secondary: "#13274F"}, Stadium: "Truist Park"},
	{MLBID: 140, Slug: "rangers", Name: "Rangers", FullName: "Texas Rangers", Abbreviation: "TEX", City: "Texas", Colors: TeamColors{Primary: "#003278", Secondary: "#C0111F"}, Stadium: "Globe Life Field"},
	{MLBID: 141, Slug: "blue-jays", Name: "Blue Jays", FullName: "Toronto Blue Jays", Abbreviation: "TOR", City: "Toronto", Colors: TeamColors{Primary: "#134A8E", Secondary: "#1D2D5C"}, Stadium: "Rogers Centre"},
	{MLBID: 142, Slug: "twins", Name: "Twins", FullName: "Minnesota Twins", Abbreviation: "MIN", City: "Minnesota", Colors: TeamColors{Primary: "#002B5C", Secondary: "#D31145"}, Stadium: "Target Field"},
	{MLBID: 136, Slug: "mariners", Name: "Mariners", FullName: "Seattle Mariners", Abbreviation: "SEA", City: "Seattle", Colors: TeamColors{Primary: "#0C2C56", Secondary: "#005C5C"}, Stadium: "T-Mobile Park"},
	{MLBID: 146, Slug: "marlins", Name: "Marlins", FullName: "Miami Marlins", Abbreviation: "MIA", City: "Miami", Colors: TeamColors{Primary: "#00A3E0", Secondary: "#EF3340"}, Stadium: "LoanDepot Park"},
	{MLBID: 121, Slug: "mets", Name: "Mets", FullName: "New York Mets", Abbreviation: "NYM", City: "New York", Colors: TeamColors{Primary: "#002D72", Secondary: "#FF5910"}, Stadium: "Citi Field"},
	{MLBID: 135, Slug: "padres", Name: "Padres", FullName: "San Diego Padres", Abbreviation: "SD", City: "San Diego", Colors: TeamColors{Primary: "#2F241D", Secondary: "#FFC425"}, Stadium: "Petco Park"},
	{MLBID: 109, Slug: "diamondbacks", Name: "Diamondbacks", FullName: "Arizona Diamondbacks", Abbreviation: "ARI", City: "Arizona", Colors: TeamColors{Primary: "#A71930", Secondary: "#E3D4AD"}, Mascot: "Baxter the Bobcat", Stadium: "Chase Field"},
	{MLBID: 115, Slug: "rockies", Name: "Rockies", FullName: "Colorado Rockies", Abbreviation: "COL", City: "Colorado", Colors: TeamColors{Primary: "#33006F", Secondary: "#C4CED4"}, Mascot: "Dinger", Stadium: "Coors Field"},
	{MLBID: 113, Slug: "reds", Name: "Reds", FullName: "Cincinnati Reds", Abbreviation: "CIN", City: "Cincinnati", Colors: TeamColors{Primary: "#C6011F", Secondary: "#000000"}, Stadium: "Great American Ball Park"},
	{MLBID: 114, Slug: "guardians", Name: "Guardians", FullName: "Cleveland Guardians", Abbreviation: "CLE", City: "Cleveland", Colors: TeamColors{Primary: "#00385D", Secondary: "#E50022"}, Stadium: "Progressive Field"},
	{MLBID: 116, Slug: "tigers", Name: "Tigers", FullName: "Detroit Tigers", Abbreviation: "DET", City: "Detroit", Colors: TeamColors{Primary: "#0C2340", Secondary: "#FA4616"}, Stadium: "Comerica Park"},
	{MLBID: 117, Slug: "astros", Name: "Astros", FullName: "Houston Astros", Abbreviation: "HOU", City: "Houston", Colors: TeamColors{Primary: "#002D62", Secondary: "#EB6E1F"}, Stadium: "Minute Maid Park"},
	{MLBID: 118, Slug: "royals", Name: "Royals", FullName: "Kansas City Royals", Abbreviation: "KC", City: "Kansas City", Colors: TeamColors{Primary: "#004687", Secondary: "#BD9B60"}, Stadium: "Kauffman Stadium"},
	{MLBID: 158, Slug: "brewers", Name: "Brewers", FullName: "Milwaukee Brewers", Abbreviation: "MIL", City: "Milwaukee", Colors: TeamColors{Primary: "#12284B", Secondary: "#FFC52F"}, Stadium: "American Family Field"},
	{MLBID: 133, Slug: "athletics", Name: "Athletics", FullName: "Oakland Athletics", Abbreviation: "OAK", City: "Oakland", Colors: TeamColors{Primary: "#003831", Secondary: "#EFB21E"}, Stadium: "Oakland Coliseum"},
	{MLBID: 134, Slug: "pirates", Name: "Pirates", FullName: "Pittsburgh Pirates", Abbreviation: "PIT", City: "Pittsburgh", Colors: TeamColors{Primary: "#27251F", Secondary: "#FDB827"}, Stadium: "PNC Park"},
	{MLBID: 138, Slug: "cardinals", Name: "Cardinals", FullName: "St. Louis Cardinals", Abbreviation: "STL", City: "St. Louis", Colors: TeamColors{Primary: "#C41E3A", Secondary: "#0C2340"}, Stadium: "Busch Stadium"},
	{MLBID: 139, Slug: "rays", Name: "Rays", FullName: "Tampa Bay Rays", Abbreviation: "TB", City: "Tampa Bay", Colors: TeamColors{Primary: "#092C5C", Secondary: "#8FBCE6"}, Stadium: "Tropicana Field"},
	{MLBID: 110, Slug: "orioles", Name: "Orioles", FullName: "Baltimore Orioles", Abbreviation: "BAL", City: "Baltimore", Colors: TeamColors{Primary: "#DF4601", Secondary: "#27251F"}, Stadium: "Camden Yards"},
	{MLBID: 120, Slug: "nationals", Name: "Nationals", FullName: "Washington Nationals", Abbreviation: "WSH", City: "Washington", Colors: TeamColors{Primary: "#AB0003", Secondary: "#14225A"}, Stadium: "Nationals Park"},
}

// teamAliases maps normalized nicknames and full names to team slugs.
var teamAliases = map[string]string{
	"la dodgers":            "dodgers",
	"los angeles dodgers":   "dodgers",
	"dodger":                "dodgers",
	"ny yankees":            "yankees",
	"new york yankees":      "yankees",
	"yanks":                 "yankees",
	"boston red sox":        "red-sox",
	"redsox":                "red-sox",
	"boston":                "red-sox",
	"chicago cubs":          "cubs",
	"cubbies":               "cubs",
	"chicago white sox":     "white-sox",
	"whitesox":              "white-sox",
	"chi sox":               "white-sox",
	"sf giants":             "giants",
	"san francisco giants":  "giants",
	"la angels":             "angels",
	"los angeles angels":    "angels",
	"anaheim angels":        "angels",
	"ny mets":               "mets",
	"new york mets":         "mets",
	"philadelphia phillies": "phillies",
	"philly":                "phillies",
	"atlanta braves":        "braves",
	"toronto blue jays":     "blue-jays",
	"jays":                  "blue-jays",
	"bluejays":              "blue-jays",
	"houston astros":        "astros",
	"san diego padres":      "padres",
	"st louis cardinals":    "cardinals",
	"stl cardinals":         "cardinals",
	"cards":                 "cardinals",
	"cleveland guardians":   "guardians",
	"cleveland indians":     "guardians",
	"seattle mariners":      "mariners",
	"texas rangers":         "rangers",
	"minnesota twins":       "twins",
	"detroit tigers":        "tigers",
	"kansas city royals":    "royals",
	"kc royals":             "royals",
	"milwaukee brewers":     "brewers",
	"cincinnati reds":       "reds",
	"pittsburgh pirates":    "pirates",
	"colorado rockies":      "rockies",
	"arizona diamondbacks":  "diamondbacks",
	"dbacks":                "diamondbacks",
	"d-backs":               "diamondbacks",
	"tampa bay rays":        "rays",
	"devil rays":            "rays",
	"baltimore orioles":     "orioles",
	"os":                    "orioles",
	"washington nationals":  "nationals",
	"nats":                  "nationals",
	"oakland athletics":     "athletics",
	"oakland as":            "athletics",
	"a's":                   "athletics",
	"miami marlins":         "marlins",
	"florida marlins":       "marlins",
}

// Teams returns a copy of the team table in its canonical order.
func Teams() []TeamInfo {
	out := make([]TeamInfo, len(mlbTeams))
	copy(out, mlbTeams)
	return out
}

// TeamBySlug returns the team with the given slug.
func TeamBySlug(slug string) (TeamInfo, bool) {
	for _, t := range mlbTeams {
		if t.Slug == slug {
			return t, true
		}
	}
	return TeamInfo{}, false
}

package webcast

import "strings"

// Category is the refined classification of an event. It is a closed set as
// far as the lookup tables below are concerned, but an unrecognized source
// category passes through and falls back to the generic naming rules.
type Category string

const (
	CategoryWrestling        Category = "Wrestling"
	CategoryFootball         Category = "Football"
	CategoryBasketball       Category = "Basketball"
	CategoryNBA              Category = "NBA"
	CategoryNCAA             Category = "NCAA"
	CategoryBaseball         Category = "Baseball"
	CategoryAmericanFootball Category = "American Football"
	CategoryCollegeFootball  Category = "College Football"
	CategoryCombatSports     Category = "Combat Sports"
	CategoryDarts            Category = "Darts"
	CategoryMotorsports      Category = "Motorsports"
	CategoryIceHockey        Category = "Ice Hockey"
	CategoryCricket          Category = "Cricket"
)

var categoryLogos = map[Category]string{
	CategoryWrestling:        "http://drewlive24.duckdns.org:9000/Logos/Wrestling.png",
	CategoryFootball:         "http://drewlive24.duckdns.org:9000/Logos/Football.png",
	CategoryBasketball:       "http://drewlive24.duckdns.org:9000/Logos/NCAA.png",
	CategoryBaseball:         "http://drewlive24.duckdns.org:9000/Logos/Baseball.png",
	CategoryAmericanFootball: "http://drewlive24.duckdns.org:9000/Logos/NFL3.png",
	CategoryCombatSports:     "http://drewlive24.duckdns.org:9000/Logos/CombatSports2.png",
	CategoryDarts:            "http://drewlive24.duckdns.org:9000/Logos/Darts.png",
	CategoryMotorsports:      "http://drewlive24.duckdns.org:9000/Logos/Motorsports2.png",
	CategoryIceHockey:        "http://drewlive24.duckdns.org:9000/Logos/Hockey.png",
	CategoryNBA:              "http://drewlive24.duckdns.org:9000/Logos/NBA.png",
	CategoryNCAA:             "http://drewlive24.duckdns.org:9000/Logos/NCAA.png",
	CategoryCricket:          "https://i.imgur.com/rA9TeSu.png",
}

var categoryTvgIDs = map[Category]string{
	CategoryWrestling:        "PPV.EVENTS.Dummy.us",
	CategoryFootball:         "Soccer.Dummy.us",
	CategoryBasketball:       "NCAA.Basketball.Dummy.us",
	CategoryNBA:              "NBA.Basketball.Dummy.us",
	CategoryNCAA:             "NCAA.Basketball.Dummy.us",
	CategoryBaseball:         "MLB.Baseball.Dummy.us",
	CategoryAmericanFootball: "NFL.Dummy.us",
	CategoryCollegeFootball:  "NCAA.Football.Dummy.us",
	CategoryCombatSports:     "PPV.EVENTS.Dummy.us",
	CategoryDarts:            "Darts.Dummy.us",
	CategoryMotorsports:      "Racing.Dummy.us",
	CategoryIceHockey:        "NHL.Hockey.Dummy.us",
	CategoryCricket:          "Cricket.Dummy.us",
}

var categoryGroups = map[Category]string{
	CategoryWrestling:        "Wrestling Events",
	CategoryFootball:         "Global Football Streams",
	CategoryBasketball:       "NCAA College Basketball",
	CategoryNBA:              "NBA Games",
	CategoryNCAA:             "NCAA College Basketball",
	CategoryBaseball:         "MLB",
	CategoryAmericanFootball: "NFL Action",
	CategoryCollegeFootball:  "NCAA College Football",
	CategoryCombatSports:     "Combat Sports",
	CategoryDarts:            "Darts",
	CategoryMotorsports:      "Racing Action",
	CategoryIceHockey:        "NHL Action",
	CategoryCricket:          "Cricket Games",
}

const fallbackTvgID = "Misc.Dummy.us"

// Logo returns the category's channel logo URL, or "" when none is mapped.
func (c Category) Logo() string {
	return categoryLogos[c]
}

// TvgID returns the category's EPG id base, falling back to the generic
// dummy id for unmapped categories.
func (c Category) TvgID() string {
	if id, ok := categoryTvgIDs[c]; ok {
		return id
	}
	return fallbackTvgID
}

// Group returns the playlist group title, falling back to the generic
// "PPVLand - <category>" pattern for unmapped categories.
func (c Category) Group() string {
	if g, ok := categoryGroups[c]; ok {
		return g
	}
	return "PPVLand - " + string(c)
}

var nbaTeams = []string{
	"hawks", "celtics", "nets", "hornets", "bulls", "cavaliers", "mavericks", "nuggets",
	"pistons", "warriors", "rockets", "pacers", "clippers", "lakers", "grizzlies",
	"heat", "bucks", "timberwolves", "pelicans", "knicks", "thunder", "magic", "sixers",
	"suns", "blazers", "kings", "spurs", "raptors", "jazz", "wizards",
}

var ncaaKeywords = []string{
	"aztecs", "badgers", "beach", "bearcats", "bearkats", "bears", "bengals",
	"big green", "big red", "billikens", "bison", "bisons", "black bears",
	"black knights", "blue demons", "blue devils", "blue hens", "blue hoses",
	"blue knights", "bluejays", "bobcats", "braves", "broncos", "broncs",
	"brown bears", "bruins", "bucs", "buffaloes", "bulldogs", "bulls", "camels",
	"cardinals", "cavaliers", "cocks", "colonials", "cougars", "cowboys",
	"coyotes", "crimson", "crimson tide", "crusaders", "cyclones", "dawgs",
	"demon deacons", "dolphins", "dons", "dragons", "dukes", "dutchmen",
	"eagles", "explorers", "falcons", "fighting illini", "flames", "flyers",
	"gaels", "gamecocks", "gators", "gauchos", "golden bears", "golden flashes",
	"golden gophers", "golden griffins", "golden lions", "governors",
	"great danes", "greyhounds", "grizzlies", "hawkeyes", "hawks", "highlanders",
	"hilltoppers", "hokies", "hoos", "hoosiers", "hornets", "hoyas",
	"hurricanes", "huskies", "jackrabbits", "jaguars", "jaspers", "jayhawks",
	"kangaroos", "keydets", "knights", "lancers", "leopards", "lions", "lopes",
	"mastodons", "matadors", "mavericks", "mercer bears", "minutemen", "mocs",
	"mountain hawks", "mountaineers", "musketeers", "mustangs", "owls",
	"paladins", "panthers", "patriots", "peacocks", "penguins", "phoenix",
	"pioneers", "pirates", "ragin cajuns", "raiders", "ramblers", "rams",
	"razorbacks", "rebels", "red foxes", "red raiders", "red wolves",
	"redbirds", "redhawks", "river hawks", "runnin bulldogs", "saints",
	"scarlet knights", "screaming eagles", "seahawks", "seminoles", "sharks",
	"shockers", "siue cougars", "spartans", "spiders", "sun devils",
	"sycamores", "terps", "terriers", "thundering herd", "tigers", "tillicums",
	"titans", "toreros", "tribe", "trojans", "vandals", "vaqueros", "vikings",
	"warhawks", "warriors", "wildcats", "wolverines", "yellow jackets", "zips",
}

// classifyBasketball refines a generic basketball label using the event name.
// NBA team names take priority over the collegiate keyword set.
func classifyBasketball(name string) Category {
	lower := strings.ToLower(name)
	for _, team := range nbaTeams {
		if strings.Contains(lower, team) {
			return CategoryNBA
		}
	}
	for _, kw := range ncaaKeywords {
		if strings.Contains(lower, kw) {
			return CategoryNCAA
		}
	}
	return CategoryBasketball
}

// refineCategory applies the classification rules on top of the
// source-reported category label.
func refineCategory(raw, name string) Category {
	switch strings.ToLower(raw) {
	case "basketball":
		return classifyBasketball(name)
	case "american football":
		if strings.Contains(strings.ToLower(name), "college") {
			return CategoryCollegeFootball
		}
	}
	return Category(raw)
}

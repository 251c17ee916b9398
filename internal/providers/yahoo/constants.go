package yahoo

const (
	providerName   = "yahoo"
	defaultBaseURL = "https://fantasysports.yahooapis.com/fantasy/v2"
	gameCode       = "mlb"
)

// Yahoo stat IDs -> scoring category names, for the categories the league
// scores. Unknown IDs are ignored.
var statIDToCategory = map[int]string{
	7:  "R",
	8:  "H",
	9:  "1B",
	10: "2B",
	11: "3B",
	12: "HR",
	13: "RBI",
	16: "SB",
	17: "CS",
	18: "BB",
	21: "SO",
	51: "HBP",
	28: "IP",
	32: "ER",
	34: "HA",
	35: "BBA",
	42: "K",
	37: "W",
	38: "L",
	39: "SV",
	48: "HLD",
	57: "QS",
}

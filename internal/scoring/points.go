package scoring

import "math"

// Stat-source pitching column -> scoring category. The stats source reports
// strikeouts as SO and shutouts as ShO, while the scoring settings use K/SO.
var pitchingStatToCategory = map[string]string{
	"IP":  "IP",
	"W":   "W",
	"L":   "L",
	"SV":  "SV",
	"HLD": "HLD",
	"ER":  "ER",
	"H":   "HA",
	"BB":  "BBA",
	"SO":  "K",
	"QS":  "QS",
	"CG":  "CG",
	"ShO": "SO",
}

// BattingPoints computes fantasy points for a batting stat line. Singles are
// derived from H-2B-3B-HR when the source does not report them directly.
// The returned value is rounded to one decimal, matching the site's display.
func BattingPoints(stats map[string]float64, scoring map[string]float64) float64 {
	if _, ok := stats["1B"]; !ok {
		if hits, ok := stats["H"]; ok {
			stats["1B"] = hits - stats["2B"] - stats["3B"] - stats["HR"]
		}
	}

	var points float64
	for stat, value := range scoring {
		if statValue, ok := stats[stat]; ok {
			points += statValue * value
		}
	}
	return round1(points)
}

// PitchingPoints computes fantasy points for a pitching stat line, translating
// stat-source column names into the league's scoring categories.
func PitchingPoints(stats map[string]float64, scoring map[string]float64) float64 {
	var points float64
	for statCol, category := range pitchingStatToCategory {
		statValue, ok := stats[statCol]
		if !ok {
			continue
		}
		if pointValue, ok := scoring[category]; ok {
			points += statValue * pointValue
		}
	}
	return round1(points)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

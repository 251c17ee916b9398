package fangraphs

import (
	"math"

	"fbcw-data-service/internal/domain"
	"fbcw-data-service/internal/providers"
)

// Leaderboard columns carried into player stat lines. Counting stats are
// truncated to whole numbers; rate stats keep the precision the site shows.
var battingCounting = []string{"G", "AB", "PA", "H", "2B", "3B", "HR", "R", "RBI", "BB", "SO", "SB", "CS", "HBP"}
var battingRates = map[string]int{"AVG": 3, "OBP": 3, "SLG": 3, "OPS": 3}

var pitchingCounting = []string{"G", "GS", "W", "L", "SV", "HLD", "H", "ER", "HR", "BB", "SO", "QS", "CG", "ShO"}
var pitchingRates = map[string]int{"IP": 1, "ERA": 2, "WHIP": 2, "K/9": 2, "BB/9": 2}

func mapBattingRow(row map[string]any) (domain.StatLine, error) {
	line, err := mapRow(row, battingCounting, battingRates)
	if err != nil {
		return domain.StatLine{}, err
	}
	line.Stats["1B"] = line.Stats["H"] - line.Stats["2B"] - line.Stats["3B"] - line.Stats["HR"]
	return line, nil
}

func mapPitchingRow(row map[string]any) (domain.StatLine, error) {
	return mapRow(row, pitchingCounting, pitchingRates)
}

func mapRow(row map[string]any, counting []string, rates map[string]int) (domain.StatLine, error) {
	name, ok := stringField(row, "Name")
	if !ok || name == "" {
		return domain.StatLine{}, &providers.MalformedRecordError{Provider: providerName, Record: "stat row", Field: "Name"}
	}
	team, _ := stringField(row, "Team")

	stats := make(map[string]float64, len(counting)+len(rates))
	for _, col := range counting {
		stats[col] = math.Trunc(floatField(row, col))
	}
	for col, places := range rates {
		stats[col] = roundTo(floatField(row, col), places)
	}

	return domain.StatLine{Name: name, Team: team, Stats: stats}, nil
}

func stringField(row map[string]any, key string) (string, bool) {
	v, ok := row[key].(string)
	return v, ok
}

func floatField(row map[string]any, key string) float64 {
	switch v := row[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

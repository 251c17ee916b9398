// Package scoring holds the league's points-scoring configuration and the
// fantasy-point formulas applied to raw stat lines.
package scoring

import "fbcw-data-service/internal/domain"

// Yahoo points-league defaults. Actual league settings override these when
// the season's settings are available upstream.
var defaultBatting = map[string]float64{
	"1B":  2.6,
	"2B":  5.2,
	"3B":  7.8,
	"HR":  10.4,
	"RBI": 1.9,
	"R":   1.9,
	"BB":  2.6,
	"HBP": 2.6,
	"SB":  4.2,
	"CS":  -2.6,
	"SO":  -1,
}

var defaultPitching = map[string]float64{
	"IP":  5,
	"W":   4,
	"L":   -4,
	"SV":  8,
	"HLD": 4,
	"ER":  -3,
	"HA":  -1,
	"BBA": -1,
	"K":   3,
	"QS":  4,
	"CG":  5,
	"SO":  5,
}

// DefaultSettings returns a fresh copy of the default scoring settings.
func DefaultSettings() domain.ScoringSettings {
	return domain.ScoringSettings{
		Batting:  copyMap(defaultBatting),
		Pitching: copyMap(defaultPitching),
	}
}

// FillDefaults adds default point values for any category the league
// settings left out, so partial upstream settings never zero out a stat.
func FillDefaults(s domain.ScoringSettings) domain.ScoringSettings {
	if s.Batting == nil {
		s.Batting = map[string]float64{}
	}
	if s.Pitching == nil {
		s.Pitching = map[string]float64{}
	}
	for stat, value := range defaultBatting {
		if _, ok := s.Batting[stat]; !ok {
			s.Batting[stat] = value
		}
	}
	for stat, value := range defaultPitching {
		if _, ok := s.Pitching[stat]; !ok {
			s.Pitching[stat] = value
		}
	}
	return s
}

func copyMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

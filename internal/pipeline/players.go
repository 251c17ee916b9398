package pipeline

import (
	"log/slog"
	"sort"

	"fbcw-data-service/internal/domain"
	"fbcw-data-service/internal/logging"
	"fbcw-data-service/internal/names"
	"fbcw-data-service/internal/scoring"
)

// statIndex holds one source's stat lines keyed by raw name, with the name
// list kept for tiered matching.
type statIndex struct {
	byName map[string]domain.StatLine
	names  []string
}

func indexStatLines(lines []domain.StatLine) statIndex {
	idx := statIndex{byName: make(map[string]domain.StatLine, len(lines))}
	for _, line := range lines {
		if _, dup := idx.byName[line.Name]; dup {
			continue
		}
		idx.byName[line.Name] = line
		idx.names = append(idx.names, line.Name)
	}
	return idx
}

// JoinPlayers joins one season's rosters with the season's stat lines and
// computes fantasy points under the league's scoring settings. Players with
// no stat-source match keep their roster data with zero stats so the roster
// stays complete; the miss is logged for followup.
func JoinPlayers(rosters map[string][]domain.RosterSlot, batting, pitching []domain.StatLine, settings domain.ScoringSettings, logger *slog.Logger) []domain.PlayerSeason {
	settings = scoring.FillDefaults(settings)
	bats := indexStatLines(batting)
	arms := indexStatLines(pitching)

	teamKeys := make([]string, 0, len(rosters))
	for key := range rosters {
		teamKeys = append(teamKeys, key)
	}
	sort.Strings(teamKeys)

	var players []domain.PlayerSeason
	for _, teamKey := range teamKeys {
		for _, slot := range rosters[teamKey] {
			player := domain.PlayerSeason{
				RosterSlot: slot,
				Stats:      map[string]float64{},
			}

			idx := bats
			pitcher := slot.PositionType == "P"
			if pitcher {
				idx = arms
			}

			if match := names.MatchPlayer(slot.Name, idx.names); match != "" {
				line := idx.byName[match]
				player.Stats = line.Stats
				player.MLBTeam = line.Team
				if pitcher {
					player.FantasyPoints = scoring.PitchingPoints(line.Stats, settings.Pitching)
				} else {
					player.FantasyPoints = scoring.BattingPoints(line.Stats, settings.Batting)
				}
			} else {
				logging.Warn(logger, "no stat line for rostered player",
					logging.FieldPlayer, slot.Name,
					logging.FieldManager, slot.Manager)
			}

			players = append(players, player)
		}
	}

	sort.SliceStable(players, func(i, j int) bool {
		if players[i].FantasyPoints != players[j].FantasyPoints {
			return players[i].FantasyPoints > players[j].FantasyPoints
		}
		return players[i].Name < players[j].Name
	})
	return players
}

// FoldPlayerHistory aggregates player seasons across years into career
// entries keyed by normalized player name. Seasons must arrive oldest first
// for stable history order.
func FoldPlayerHistory(seasons map[int][]domain.PlayerSeason) map[string]domain.PlayerCareer {
	years := make([]int, 0, len(seasons))
	for year := range seasons {
		years = append(years, year)
	}
	sort.Ints(years)

	careers := make(map[string]domain.PlayerCareer)
	for _, year := range years {
		for _, player := range seasons[year] {
			if player.Name == "" {
				continue
			}
			key := names.Player(player.Name)
			career, ok := careers[key]
			if !ok {
				career = domain.PlayerCareer{Name: player.Name}
			}
			career.Seasons = append(career.Seasons, domain.PlayerCareerSeason{
				Year:          year,
				TeamName:      player.TeamName,
				Manager:       player.Manager,
				FantasyPoints: player.FantasyPoints,
				PositionType:  player.PositionType,
				Stats:         player.Stats,
			})
			career.CareerFantasyPoints = roundTo(career.CareerFantasyPoints+player.FantasyPoints, 1)
			careers[key] = career
		}
	}
	return careers
}

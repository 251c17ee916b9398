package pipeline

import (
	"math"
	"sort"

	"fbcw-data-service/internal/domain"
)

// SeasonStandings is one completed (or in-progress) season's standings input
// to the career fold.
type SeasonStandings struct {
	Year      int
	Standings []domain.TeamStanding
}

// FoldOptions tunes the career fold.
type FoldOptions struct {
	// PlayoffTeams is the rank cutoff counting as a playoff appearance.
	PlayoffTeams int
	Overrides    Overrides
}

// FoldCareers folds per-season standings into all-time manager careers.
// Seasons are processed oldest first so first_season and season_history order
// are deterministic; averages cover only seasons the manager actually played.
func FoldCareers(seasons []SeasonStandings, opts FoldOptions) []domain.ManagerCareer {
	if opts.PlayoffTeams <= 0 {
		opts.PlayoffTeams = 6
	}

	ordered := append([]SeasonStandings(nil), seasons...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Year < ordered[j].Year })

	careers := make(map[string]*domain.ManagerCareer)
	for _, season := range ordered {
		standings := opts.Overrides.CorrectRanks(season.Year, season.Standings)
		for _, team := range standings {
			manager := opts.Overrides.ResolveManager(season.Year, team)

			career, ok := careers[manager]
			if !ok {
				career = &domain.ManagerCareer{
					ManagerName: manager,
					FirstSeason: season.Year,
				}
				careers[manager] = career
			}

			career.TotalWins += team.Wins
			career.TotalLosses += team.Losses
			career.TotalTies += team.Ties
			career.TotalPointsFor += team.PointsFor
			career.SeasonsPlayed++
			if team.Rank == 1 {
				career.Championships++
			}
			if team.Rank == 2 {
				career.RunnerUps++
			}
			if team.Rank <= opts.PlayoffTeams {
				career.PlayoffAppearances++
			}
			career.SeasonHistory = append(career.SeasonHistory, domain.ManagerSeason{
				Year:      season.Year,
				TeamName:  team.TeamName,
				Rank:      team.Rank,
				Wins:      team.Wins,
				Losses:    team.Losses,
				PointsFor: team.PointsFor,
			})
		}
	}

	out := make([]domain.ManagerCareer, 0, len(careers))
	for _, career := range careers {
		if games := career.TotalWins + career.TotalLosses; games > 0 {
			career.WinPct = roundTo(float64(career.TotalWins)/float64(games), 3)
		}
		var rankSum int
		for _, s := range career.SeasonHistory {
			rankSum += s.Rank
		}
		career.AvgFinish = roundTo(float64(rankSum)/float64(len(career.SeasonHistory)), 1)
		out = append(out, *career)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ManagerName < out[j].ManagerName })
	return out
}

func sortByRank(standings []domain.TeamStanding) {
	sort.SliceStable(standings, func(i, j int) bool { return standings[i].Rank < standings[j].Rank })
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

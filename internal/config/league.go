package config

// LeagueConfig describes the league being collected.
type LeagueConfig struct {
	Name              string
	TotalTeams        int
	CurrentSeason     int
	HistoricalSeasons []int
	LeagueIDOverrides map[int]string // per-year Yahoo league key overrides
	MaxWeeks          int
	PlayoffTeams      int
	// RankPolicy selects the standings tie-break policy: "points" (points-for,
	// then wins), "record" (wins, then points-for), or "source" (trust the
	// upstream rank when present).
	RankPolicy string
}

func loadLeague() LeagueConfig {
	return LeagueConfig{
		Name:              defaultLeagueName,
		TotalTeams:        defaultTotalTeams,
		CurrentSeason:     intEnvOrDefault(envCurrentSeason, defaultCurrentSeason),
		HistoricalSeasons: intListEnvOrDefault(envHistorical, defaultHistoricalSeasons),
		LeagueIDOverrides: mapEnvOrDefault(envLeagueOverrides, defaultLeagueIDOverrides),
		MaxWeeks:          intEnvOrDefault(envMaxWeeks, defaultMaxWeeks),
		PlayoffTeams:      intEnvOrDefault(envPlayoffTeams, defaultPlayoffTeams),
		RankPolicy:        envOrDefault(envRankPolicy, defaultRankPolicy),
	}
}

// AllSeasons returns historical seasons plus the current one, oldest first.
func (l LeagueConfig) AllSeasons() []int {
	seasons := make([]int, 0, len(l.HistoricalSeasons)+1)
	seasons = append(seasons, l.HistoricalSeasons...)
	for _, y := range seasons {
		if y == l.CurrentSeason {
			return seasons
		}
	}
	return append(seasons, l.CurrentSeason)
}

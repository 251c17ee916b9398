package domain

// ManagerSeason is one season's result inside a manager's career history.
type ManagerSeason struct {
	Year      int     `json:"year"`
	TeamName  string  `json:"team_name"`
	Rank      int     `json:"rank"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	PointsFor float64 `json:"points_for"`
}

// ManagerCareer is a manager's cumulative all-time record. Averages are
// computed only over seasons the manager actually fielded a team.
type ManagerCareer struct {
	ManagerName        string          `json:"manager_name"`
	FirstSeason        int             `json:"first_season"`
	TotalWins          int             `json:"total_wins"`
	TotalLosses        int             `json:"total_losses"`
	TotalTies          int             `json:"total_ties"`
	Championships      int             `json:"championships"`
	RunnerUps          int             `json:"runner_ups"`
	PlayoffAppearances int             `json:"playoff_appearances"`
	SeasonsPlayed      int             `json:"seasons_played"`
	TotalPointsFor     float64         `json:"total_points_for"`
	WinPct             float64         `json:"win_pct"`
	AvgFinish          float64         `json:"avg_finish"`
	SeasonHistory      []ManagerSeason `json:"season_history"`
}

// ManagerSeasonEntry flattens one manager-season for the history index.
type ManagerSeasonEntry struct {
	Manager string `json:"manager"`
	ManagerSeason
}

// PlayerCareerSeason is one season inside a player's career history.
type PlayerCareerSeason struct {
	Year          int                `json:"year"`
	TeamName      string             `json:"team_name"`
	Manager       string             `json:"manager"`
	FantasyPoints float64            `json:"fantasy_points"`
	PositionType  string             `json:"position_type"`
	Stats         map[string]float64 `json:"stats"`
}

// PlayerCareer aggregates a player's fantasy history across seasons,
// keyed by normalized player name.
type PlayerCareer struct {
	Name                string               `json:"name"`
	Seasons             []PlayerCareerSeason `json:"seasons"`
	CareerFantasyPoints float64              `json:"career_fantasy_points"`
}

// LeagueInfo is the league metadata file consumed by the frontend.
type LeagueInfo struct {
	LeagueName    string `json:"league_name"`
	Founded       int    `json:"founded"`
	CurrentSeason int    `json:"current_season"`
	TotalTeams    int    `json:"total_teams"`
	LeagueType    string `json:"league_type"`
	LastUpdated   string `json:"last_updated"`
}

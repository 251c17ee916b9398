package domain

// TeamStanding is one team's final line in a season's standings.
type TeamStanding struct {
	Rank          int     `json:"rank"`
	TeamKey       string  `json:"team_key"`
	TeamName      string  `json:"team_name"`
	Manager       string  `json:"manager"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	WinPct        float64 `json:"win_pct"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
}

// TeamInfo carries display metadata for a team within a season.
type TeamInfo struct {
	TeamKey  string `json:"team_key"`
	TeamName string `json:"team_name"`
	TeamLogo string `json:"team_logo"`
	Manager  string `json:"manager"`
}

// MatchupScore is one side of a weekly head-to-head matchup.
type MatchupScore struct {
	TeamKey       string  `json:"team_key"`
	TeamScore     float64 `json:"team_score"`
	Week          int     `json:"week"`
	OpponentKey   string  `json:"opponent_key"`
	OpponentScore float64 `json:"opponent_score"`
}

// RosterSlot is one rostered player on a team for a season.
type RosterSlot struct {
	PlayerID          string   `json:"player_id"`
	Name              string   `json:"name"`
	PositionType      string   `json:"position_type"` // "B" batter, "P" pitcher
	EligiblePositions []string `json:"eligible_positions"`
	PrimaryPosition   string   `json:"primary_position"`
	SelectedPosition  string   `json:"selected_position"`
	Status            string   `json:"status"`
	TeamKey           string   `json:"team_key"`
	TeamName          string   `json:"team_name"`
	TeamLogo          string   `json:"team_logo"`
	Manager           string   `json:"manager"`
}

// PlayerSeason is a rostered player joined with their season stat line.
type PlayerSeason struct {
	RosterSlot
	Stats         map[string]float64 `json:"stats"`
	FantasyPoints float64            `json:"fantasy_points"`
	HeadshotURL   string             `json:"headshot_url"`
	MLBTeam       string             `json:"mlb_team"`
}

// Transaction is one roster move (add, drop, add/drop, or trade).
type Transaction struct {
	TransactionKey string              `json:"transaction_key"`
	TransactionID  string              `json:"transaction_id"`
	Type           string              `json:"type"`
	Timestamp      string              `json:"timestamp"`
	Status         string              `json:"status"`
	Players        []TransactionPlayer `json:"players"`
}

// TransactionPlayer is one player's movement within a transaction.
type TransactionPlayer struct {
	PlayerKey           string `json:"player_key"`
	PlayerName          string `json:"player_name"`
	TransactionType     string `json:"transaction_type"`
	SourceType          string `json:"source_type"`
	SourceTeamKey       string `json:"source_team_key"`
	SourceTeamName      string `json:"source_team_name"`
	DestinationTeamKey  string `json:"destination_team_key"`
	DestinationTeamName string `json:"destination_team_name"`
}

// DraftPick is one selection in a season's draft.
type DraftPick struct {
	Pick      int    `json:"pick"`
	Round     int    `json:"round"`
	TeamKey   string `json:"team_key"`
	PlayerKey string `json:"player_key"`
}

// ScoringSettings maps raw stat categories to point values, split by
// position type. Shared by all seasons unless a season's league settings
// override it.
type ScoringSettings struct {
	Batting  map[string]float64 `json:"batting"`
	Pitching map[string]float64 `json:"pitching"`
}

// StatLine is one player's season stat row from the stats source.
type StatLine struct {
	Name  string             `json:"name"`
	Team  string             `json:"team"`
	Stats map[string]float64 `json:"stats"`
}

// SeasonRecords bundles everything the adapter normalizes for one season.
type SeasonRecords struct {
	Year         int
	Current      bool
	Standings    []TeamStanding
	Teams        []TeamInfo
	Scores       []MatchupScore
	Draft        []DraftPick
	Transactions []Transaction
	Scoring      ScoringSettings
}

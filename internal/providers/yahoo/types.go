package yahoo

import "encoding/json"

// Raw response shapes for the fantasy API (format=json). Numeric fields the
// API serializes as strings are decoded as json.Number and validated in the
// mapper.

type leaguesResponse struct {
	Leagues []leagueEntry `json:"leagues"`
}

type leagueEntry struct {
	LeagueKey string `json:"league_key"`
	Name      string `json:"name"`
	Season    int    `json:"season"`
}

type standingsResponse struct {
	Standings []standingEntry `json:"standings"`
}

type standingEntry struct {
	TeamKey       string        `json:"team_key"`
	Rank          json.Number   `json:"rank"`
	OutcomeTotals outcomeTotals `json:"outcome_totals"`
	PointsFor     json.Number   `json:"points_for"`
	PointsAgainst json.Number   `json:"points_against"`
}

type outcomeTotals struct {
	Wins       json.Number `json:"wins"`
	Losses     json.Number `json:"losses"`
	Ties       json.Number `json:"ties"`
	Percentage json.Number `json:"percentage"`
}

type teamsResponse struct {
	Teams []teamEntry `json:"teams"`
}

type teamEntry struct {
	TeamKey  string         `json:"team_key"`
	Name     string         `json:"name"`
	Logos    []teamLogo     `json:"team_logos"`
	Managers []managerEntry `json:"managers"`
}

type teamLogo struct {
	URL string `json:"url"`
}

type managerEntry struct {
	Nickname string `json:"nickname"`
}

type scoreboardResponse struct {
	Week     int            `json:"week"`
	Matchups []matchupEntry `json:"matchups"`
}

type matchupEntry struct {
	Teams []matchupTeam `json:"teams"`
}

type matchupTeam struct {
	TeamKey string      `json:"team_key"`
	Points  json.Number `json:"team_points"`
}

type rosterResponse struct {
	Players []playerEntry `json:"players"`
}

type playerEntry struct {
	PlayerID          json.Number `json:"player_id"`
	Name              playerName  `json:"name"`
	PositionType      string      `json:"position_type"`
	EligiblePositions []string    `json:"eligible_positions"`
	SelectedPosition  string      `json:"selected_position"`
	Status            string      `json:"status"`
}

type playerName struct {
	Full string `json:"full"`
}

type settingsResponse struct {
	StatCategories []statCategory `json:"stat_categories"`
}

type statCategory struct {
	StatID       int         `json:"stat_id"`
	Value        json.Number `json:"value"`
	PositionType string      `json:"position_type"` // "B" or "P"
}

type transactionsResponse struct {
	Transactions []transactionEntry `json:"transactions"`
}

type transactionEntry struct {
	TransactionKey string                   `json:"transaction_key"`
	TransactionID  json.Number              `json:"transaction_id"`
	Type           string                   `json:"type"`
	Timestamp      json.Number              `json:"timestamp"`
	Status         string                   `json:"status"`
	Players        []transactionPlayerEntry `json:"players"`
}

type transactionPlayerEntry struct {
	PlayerKey       string              `json:"player_key"`
	Name            playerName          `json:"name"`
	TransactionData transactionMovement `json:"transaction_data"`
}

type transactionMovement struct {
	Type                string `json:"type"`
	SourceType          string `json:"source_type"`
	SourceTeamKey       string `json:"source_team_key"`
	SourceTeamName      string `json:"source_team_name"`
	DestinationTeamKey  string `json:"destination_team_key"`
	DestinationTeamName string `json:"destination_team_name"`
}

type draftResultsResponse struct {
	DraftResults []draftPickEntry `json:"draft_results"`
}

type draftPickEntry struct {
	Pick      json.Number `json:"pick"`
	Round     json.Number `json:"round"`
	TeamKey   string      `json:"team_key"`
	PlayerKey string      `json:"player_key"`
}

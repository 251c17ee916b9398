package yahoo

import (
	"encoding/json"
	"sort"

	"fbcw-data-service/internal/domain"
	"fbcw-data-service/internal/names"
	"fbcw-data-service/internal/providers"
	"fbcw-data-service/internal/scoring"
)

// The mapper is the single validation step between the upstream's loose JSON
// and typed domain records. Anything that fails here becomes a
// MalformedRecordError the caller logs and skips.

func malformed(record, field string) error {
	return &providers.MalformedRecordError{Provider: providerName, Record: record, Field: field}
}

func mapStanding(entry standingEntry, team teamEntry) (domain.TeamStanding, error) {
	if entry.TeamKey == "" {
		return domain.TeamStanding{}, malformed("standing", "team_key")
	}
	if team.TeamKey == "" {
		return domain.TeamStanding{}, malformed("standing", "team")
	}

	rank, err := toInt(entry.Rank)
	if err != nil {
		return domain.TeamStanding{}, malformed("standing", "rank")
	}
	wins, err := toInt(entry.OutcomeTotals.Wins)
	if err != nil {
		return domain.TeamStanding{}, malformed("standing", "wins")
	}
	losses, err := toInt(entry.OutcomeTotals.Losses)
	if err != nil {
		return domain.TeamStanding{}, malformed("standing", "losses")
	}
	ties, err := toInt(entry.OutcomeTotals.Ties)
	if err != nil {
		return domain.TeamStanding{}, malformed("standing", "ties")
	}
	winPct, err := toFloat(entry.OutcomeTotals.Percentage)
	if err != nil {
		return domain.TeamStanding{}, malformed("standing", "percentage")
	}
	pointsFor, err := toFloat(entry.PointsFor)
	if err != nil {
		return domain.TeamStanding{}, malformed("standing", "points_for")
	}
	pointsAgainst, err := toFloat(entry.PointsAgainst)
	if err != nil {
		return domain.TeamStanding{}, malformed("standing", "points_against")
	}

	info, err := mapTeamInfo(team)
	if err != nil {
		return domain.TeamStanding{}, err
	}

	return domain.TeamStanding{
		Rank:          rank,
		TeamKey:       entry.TeamKey,
		TeamName:      info.TeamName,
		Manager:       info.Manager,
		Wins:          wins,
		Losses:        losses,
		Ties:          ties,
		WinPct:        winPct,
		PointsFor:     pointsFor,
		PointsAgainst: pointsAgainst,
	}, nil
}

func mapTeamInfo(entry teamEntry) (domain.TeamInfo, error) {
	if entry.TeamKey == "" {
		return domain.TeamInfo{}, malformed("team", "team_key")
	}
	if entry.Name == "" {
		return domain.TeamInfo{}, malformed("team", "name")
	}
	if len(entry.Managers) == 0 || entry.Managers[0].Nickname == "" {
		return domain.TeamInfo{}, malformed("team", "manager")
	}

	var logo string
	if len(entry.Logos) > 0 {
		logo = entry.Logos[0].URL
	}

	return domain.TeamInfo{
		TeamKey:  entry.TeamKey,
		TeamName: entry.Name,
		TeamLogo: logo,
		Manager:  names.Manager(entry.Managers[0].Nickname),
	}, nil
}

// mapMatchup expands one matchup into both teams' score records.
func mapMatchup(entry matchupEntry, week int) ([]domain.MatchupScore, error) {
	if len(entry.Teams) != 2 {
		return nil, malformed("matchup", "teams")
	}
	a, b := entry.Teams[0], entry.Teams[1]
	if a.TeamKey == "" || b.TeamKey == "" {
		return nil, malformed("matchup", "team_key")
	}
	aScore, err := toFloat(a.Points)
	if err != nil {
		return nil, malformed("matchup", "team_points")
	}
	bScore, err := toFloat(b.Points)
	if err != nil {
		return nil, malformed("matchup", "team_points")
	}

	return []domain.MatchupScore{
		{TeamKey: a.TeamKey, TeamScore: aScore, Week: week, OpponentKey: b.TeamKey, OpponentScore: bScore},
		{TeamKey: b.TeamKey, TeamScore: bScore, Week: week, OpponentKey: a.TeamKey, OpponentScore: aScore},
	}, nil
}

func mapRosterSlot(entry playerEntry, team domain.TeamInfo) (domain.RosterSlot, error) {
	if entry.PlayerID.String() == "" || entry.PlayerID.String() == "0" {
		return domain.RosterSlot{}, malformed("roster slot", "player_id")
	}
	if entry.Name.Full == "" {
		return domain.RosterSlot{}, malformed("roster slot", "name")
	}
	if entry.PositionType == "" {
		return domain.RosterSlot{}, malformed("roster slot", "position_type")
	}

	eligible := entry.EligiblePositions
	if eligible == nil {
		eligible = []string{}
	}
	var primary string
	if len(eligible) > 0 {
		primary = eligible[0]
	}

	return domain.RosterSlot{
		PlayerID:          entry.PlayerID.String(),
		Name:              entry.Name.Full,
		PositionType:      entry.PositionType,
		EligiblePositions: eligible,
		PrimaryPosition:   primary,
		SelectedPosition:  entry.SelectedPosition,
		Status:            entry.Status,
		TeamKey:           team.TeamKey,
		TeamName:          team.TeamName,
		TeamLogo:          team.TeamLogo,
		Manager:           team.Manager,
	}, nil
}

func mapDraftPick(entry draftPickEntry) (domain.DraftPick, error) {
	if entry.TeamKey == "" || entry.PlayerKey == "" {
		return domain.DraftPick{}, malformed("draft pick", "team_key")
	}
	pick, err := toInt(entry.Pick)
	if err != nil {
		return domain.DraftPick{}, malformed("draft pick", "pick")
	}
	round, err := toInt(entry.Round)
	if err != nil {
		return domain.DraftPick{}, malformed("draft pick", "round")
	}
	return domain.DraftPick{
		Pick:      pick,
		Round:     round,
		TeamKey:   entry.TeamKey,
		PlayerKey: entry.PlayerKey,
	}, nil
}

func mapTransaction(entry transactionEntry) (domain.Transaction, error) {
	if entry.TransactionKey == "" {
		return domain.Transaction{}, malformed("transaction", "transaction_key")
	}
	players := make([]domain.TransactionPlayer, 0, len(entry.Players))
	for _, p := range entry.Players {
		players = append(players, domain.TransactionPlayer{
			PlayerKey:           p.PlayerKey,
			PlayerName:          p.Name.Full,
			TransactionType:     p.TransactionData.Type,
			SourceType:          p.TransactionData.SourceType,
			SourceTeamKey:       p.TransactionData.SourceTeamKey,
			SourceTeamName:      p.TransactionData.SourceTeamName,
			DestinationTeamKey:  p.TransactionData.DestinationTeamKey,
			DestinationTeamName: p.TransactionData.DestinationTeamName,
		})
	}
	return domain.Transaction{
		TransactionKey: entry.TransactionKey,
		TransactionID:  entry.TransactionID.String(),
		Type:           entry.Type,
		Timestamp:      entry.Timestamp.String(),
		Status:         entry.Status,
		Players:        players,
	}, nil
}

func sortTransactionsNewestFirst(transactions []domain.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp > transactions[j].Timestamp
	})
}

func mapScoringSettings(payload settingsResponse) domain.ScoringSettings {
	settings := domain.ScoringSettings{
		Batting:  map[string]float64{},
		Pitching: map[string]float64{},
	}
	for _, cat := range payload.StatCategories {
		category, ok := statIDToCategory[cat.StatID]
		if !ok {
			continue
		}
		value, err := toFloat(cat.Value)
		if err != nil || value == 0 {
			continue
		}
		switch cat.PositionType {
		case "B":
			settings.Batting[category] = value
		case "P":
			settings.Pitching[category] = value
		}
	}
	return scoring.FillDefaults(settings)
}

func toInt(n json.Number) (int, error) {
	v, err := n.Int64()
	return int(v), err
}

func toFloat(n json.Number) (float64, error) {
	if n.String() == "" {
		return 0, nil
	}
	return n.Float64()
}

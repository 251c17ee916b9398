// Package fixture provides a deterministic in-memory data source so the
// pipeline and server can run without credentials or network access.
package fixture

import (
	"context"
	"fmt"

	"fbcw-data-service/internal/domain"
	"fbcw-data-service/internal/scoring"
)

// Provider implements both the league and stats provider interfaces with
// canned records for a four-team league.
type Provider struct {
	Seasons []int
}

// New returns a fixture provider with data for the given seasons.
func New(seasons ...int) *Provider {
	if len(seasons) == 0 {
		seasons = []int{2024}
	}
	return &Provider{Seasons: seasons}
}

func (p *Provider) AvailableSeasons(ctx context.Context) ([]int, error) {
	out := make([]int, len(p.Seasons))
	copy(out, p.Seasons)
	return out, nil
}

func (p *Provider) FetchStandings(ctx context.Context, year int) ([]domain.TeamStanding, error) {
	return []domain.TeamStanding{
		{Rank: 1, TeamKey: key(year, 1), TeamName: "Bash Brothers", Manager: "Ryan", Wins: 14, Losses: 6, WinPct: 0.7, PointsFor: 1520.5, PointsAgainst: 1300},
		{Rank: 2, TeamKey: key(year, 2), TeamName: "Moonshots", Manager: "Tyler", Wins: 12, Losses: 8, WinPct: 0.6, PointsFor: 1480, PointsAgainst: 1350},
		{Rank: 3, TeamKey: key(year, 3), TeamName: "Dingers", Manager: "Rich", Wins: 8, Losses: 12, WinPct: 0.4, PointsFor: 1390, PointsAgainst: 1410},
		{Rank: 4, TeamKey: key(year, 4), TeamName: "Small Ball", Manager: "Logan", Wins: 6, Losses: 14, WinPct: 0.3, PointsFor: 1280, PointsAgainst: 1490},
	}, nil
}

func (p *Provider) FetchTeams(ctx context.Context, year int) ([]domain.TeamInfo, error) {
	standings, _ := p.FetchStandings(ctx, year)
	teams := make([]domain.TeamInfo, 0, len(standings))
	for _, s := range standings {
		teams = append(teams, domain.TeamInfo{
			TeamKey:  s.TeamKey,
			TeamName: s.TeamName,
			Manager:  s.Manager,
		})
	}
	return teams, nil
}

func (p *Provider) FetchWeekScores(ctx context.Context, year, week int) ([]domain.MatchupScore, error) {
	// Two matchups per week; weeks past 20 have no data, like a real season.
	if week > 20 {
		return nil, nil
	}
	base := float64(80 + week)
	return []domain.MatchupScore{
		{TeamKey: key(year, 1), TeamScore: base + 10, Week: week, OpponentKey: key(year, 2), OpponentScore: base},
		{TeamKey: key(year, 2), TeamScore: base, Week: week, OpponentKey: key(year, 1), OpponentScore: base + 10},
		{TeamKey: key(year, 3), TeamScore: base + 5, Week: week, OpponentKey: key(year, 4), OpponentScore: base - 5},
		{TeamKey: key(year, 4), TeamScore: base - 5, Week: week, OpponentKey: key(year, 3), OpponentScore: base + 5},
	}, nil
}

func (p *Provider) FetchRosters(ctx context.Context, year int) (map[string][]domain.RosterSlot, error) {
	teams, _ := p.FetchTeams(ctx, year)
	rosters := make(map[string][]domain.RosterSlot, len(teams))
	for i, team := range teams {
		rosters[team.TeamKey] = []domain.RosterSlot{
			{
				PlayerID:          fmt.Sprintf("%d01", i+1),
				Name:              fmt.Sprintf("Batter %d", i+1),
				PositionType:      "B",
				EligiblePositions: []string{"OF"},
				PrimaryPosition:   "OF",
				TeamKey:           team.TeamKey,
				TeamName:          team.TeamName,
				Manager:           team.Manager,
			},
			{
				PlayerID:          fmt.Sprintf("%d02", i+1),
				Name:              fmt.Sprintf("Pitcher %d", i+1),
				PositionType:      "P",
				EligiblePositions: []string{"SP"},
				PrimaryPosition:   "SP",
				TeamKey:           team.TeamKey,
				TeamName:          team.TeamName,
				Manager:           team.Manager,
			},
		}
	}
	return rosters, nil
}

func (p *Provider) FetchDraft(ctx context.Context, year int) ([]domain.DraftPick, error) {
	return []domain.DraftPick{
		{Pick: 1, Round: 1, TeamKey: key(year, 1), PlayerKey: "mlb.p.101"},
		{Pick: 2, Round: 1, TeamKey: key(year, 2), PlayerKey: "mlb.p.201"},
	}, nil
}

func (p *Provider) FetchTransactions(ctx context.Context, year int) ([]domain.Transaction, error) {
	return []domain.Transaction{
		{
			TransactionKey: fmt.Sprintf("%d.l.1.tr.1", year),
			TransactionID:  "1",
			Type:           "add",
			Timestamp:      "1714000000",
			Status:         "successful",
			Players: []domain.TransactionPlayer{
				{PlayerKey: "mlb.p.301", PlayerName: "Waiver Wire Hero", TransactionType: "add", DestinationTeamKey: key(year, 1)},
			},
		},
	}, nil
}

func (p *Provider) FetchScoringSettings(ctx context.Context, year int) (domain.ScoringSettings, error) {
	return scoring.DefaultSettings(), nil
}

func (p *Provider) FetchBatting(ctx context.Context, year int) ([]domain.StatLine, error) {
	lines := make([]domain.StatLine, 0, 4)
	for i := 1; i <= 4; i++ {
		lines = append(lines, domain.StatLine{
			Name: fmt.Sprintf("Batter %d", i),
			Team: "FBC",
			Stats: map[string]float64{
				"G": 150, "H": 150, "2B": 30, "3B": 2, "HR": float64(20 + i),
				"R": 90, "RBI": 85, "BB": 60, "SO": 110, "SB": 12, "CS": 3, "HBP": 4,
				"1B": 150 - 30 - 2 - float64(20+i),
			},
		})
	}
	return lines, nil
}

func (p *Provider) FetchPitching(ctx context.Context, year int) ([]domain.StatLine, error) {
	lines := make([]domain.StatLine, 0, 4)
	for i := 1; i <= 4; i++ {
		lines = append(lines, domain.StatLine{
			Name: fmt.Sprintf("Pitcher %d", i),
			Team: "FBC",
			Stats: map[string]float64{
				"G": 32, "GS": 32, "W": float64(10 + i), "L": 8, "SV": 0, "HLD": 0,
				"IP": 180.0, "H": 160, "ER": 70, "BB": 50, "SO": float64(180 + i*5),
				"QS": 18, "CG": 0, "ShO": 0,
			},
		})
	}
	return lines, nil
}

func key(year, team int) string {
	return fmt.Sprintf("%d.l.1.t.%d", year, team)
}

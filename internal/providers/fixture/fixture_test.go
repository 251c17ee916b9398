package fixture

import (
	"context"
	"testing"
)

func TestFixtureRoundRobinSymmetry(t *testing.T) {
	p := New(2024)
	standings, err := p.FetchStandings(context.Background(), 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var wins, losses int
	for _, s := range standings {
		wins += s.Wins
		losses += s.Losses
	}
	if wins != losses {
		t.Fatalf("fixture standings must be symmetric: %d wins vs %d losses", wins, losses)
	}
}

func TestFixtureRostersMatchTeams(t *testing.T) {
	p := New(2024)
	ctx := context.Background()

	teams, _ := p.FetchTeams(ctx, 2024)
	rosters, err := p.FetchRosters(ctx, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rosters) != len(teams) {
		t.Fatalf("expected one roster per team")
	}
	for _, team := range teams {
		if len(rosters[team.TeamKey]) == 0 {
			t.Fatalf("missing roster for %s", team.TeamKey)
		}
	}
}

func TestFixtureWeeksEnd(t *testing.T) {
	p := New(2024)
	scores, err := p.FetchWeekScores(context.Background(), 2024, 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scores) != 0 {
		t.Fatalf("expected no scores past the schedule, got %d", len(scores))
	}
}

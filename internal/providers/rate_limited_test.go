package providers

import (
	"context"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"fbcw-data-service/internal/domain"
)

type countingProvider struct {
	fixtureLeague
	calls int
}

func (c *countingProvider) FetchStandings(ctx context.Context, year int) ([]domain.TeamStanding, error) {
	c.calls++
	return nil, nil
}

// fixtureLeague provides no-op implementations for the rest of the interface.
type fixtureLeague struct{}

func (fixtureLeague) AvailableSeasons(context.Context) ([]int, error) { return nil, nil }
func (fixtureLeague) FetchStandings(context.Context, int) ([]domain.TeamStanding, error) {
	return nil, nil
}
func (fixtureLeague) FetchTeams(context.Context, int) ([]domain.TeamInfo, error) { return nil, nil }
func (fixtureLeague) FetchWeekScores(context.Context, int, int) ([]domain.MatchupScore, error) {
	return nil, nil
}
func (fixtureLeague) FetchRosters(context.Context, int) (map[string][]domain.RosterSlot, error) {
	return nil, nil
}
func (fixtureLeague) FetchDraft(context.Context, int) ([]domain.DraftPick, error) { return nil, nil }
func (fixtureLeague) FetchTransactions(context.Context, int) ([]domain.Transaction, error) {
	return nil, nil
}
func (fixtureLeague) FetchScoringSettings(context.Context, int) (domain.ScoringSettings, error) {
	return domain.ScoringSettings{}, nil
}

func TestRateLimitedProviderPassesThrough(t *testing.T) {
	inner := &countingProvider{}
	p := NewRateLimitedProvider(inner, rate.Inf, 1, nil)

	for i := 0; i < 3; i++ {
		if _, err := p.FetchStandings(context.Background(), 2024); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 inner calls, got %d", inner.calls)
	}
}

func TestRateLimitedProviderHonorsCancel(t *testing.T) {
	inner := &countingProvider{}
	// One request per hour with burst 1: the second call must block.
	p := NewRateLimitedProvider(inner, rate.Every(time.Hour), 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	if _, err := p.FetchStandings(ctx, 2024); err != nil {
		t.Fatalf("first call should pass: %v", err)
	}
	cancel()
	if _, err := p.FetchStandings(ctx, 2024); err == nil {
		t.Fatalf("expected context error on second call")
	}
	if inner.calls != 1 {
		t.Fatalf("expected inner provider untouched after cancel, got %d calls", inner.calls)
	}
}

func TestRateLimitedProviderDefaults(t *testing.T) {
	p := NewRateLimitedProvider(&countingProvider{}, 0, 0, nil)
	if p == nil {
		t.Fatalf("expected provider")
	}
	if _, err := p.FetchStandings(context.Background(), 2024); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

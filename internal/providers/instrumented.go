package providers

import (
	"context"
	"time"

	"fbcw-data-service/internal/domain"
	"fbcw-data-service/internal/metrics"
)

// instrumentedProvider records call counts and latency for every upstream
// fetch under the provider's name.
type instrumentedProvider struct {
	next     LeagueProvider
	name     string
	recorder *metrics.Recorder
}

// NewInstrumentedProvider wraps a league provider with metrics recording.
func NewInstrumentedProvider(next LeagueProvider, name string, recorder *metrics.Recorder) LeagueProvider {
	return &instrumentedProvider{next: next, name: name, recorder: recorder}
}

func (p *instrumentedProvider) AvailableSeasons(ctx context.Context) ([]int, error) {
	start := time.Now()
	seasons, err := p.next.AvailableSeasons(ctx)
	p.recorder.RecordProviderAttempt(ctx, p.name, time.Since(start), err)
	return seasons, err
}

func (p *instrumentedProvider) FetchStandings(ctx context.Context, year int) ([]domain.TeamStanding, error) {
	start := time.Now()
	standings, err := p.next.FetchStandings(ctx, year)
	p.recorder.RecordProviderAttempt(ctx, p.name, time.Since(start), err)
	return standings, err
}

func (p *instrumentedProvider) FetchTeams(ctx context.Context, year int) ([]domain.TeamInfo, error) {
	start := time.Now()
	teams, err := p.next.FetchTeams(ctx, year)
	p.recorder.RecordProviderAttempt(ctx, p.name, time.Since(start), err)
	return teams, err
}

func (p *instrumentedProvider) FetchWeekScores(ctx context.Context, year, week int) ([]domain.MatchupScore, error) {
	start := time.Now()
	scores, err := p.next.FetchWeekScores(ctx, year, week)
	p.recorder.RecordProviderAttempt(ctx, p.name, time.Since(start), err)
	return scores, err
}

func (p *instrumentedProvider) FetchRosters(ctx context.Context, year int) (map[string][]domain.RosterSlot, error) {
	start := time.Now()
	rosters, err := p.next.FetchRosters(ctx, year)
	p.recorder.RecordProviderAttempt(ctx, p.name, time.Since(start), err)
	return rosters, err
}

func (p *instrumentedProvider) FetchDraft(ctx context.Context, year int) ([]domain.DraftPick, error) {
	start := time.Now()
	picks, err := p.next.FetchDraft(ctx, year)
	p.recorder.RecordProviderAttempt(ctx, p.name, time.Since(start), err)
	return picks, err
}

func (p *instrumentedProvider) FetchTransactions(ctx context.Context, year int) ([]domain.Transaction, error) {
	start := time.Now()
	txns, err := p.next.FetchTransactions(ctx, year)
	p.recorder.RecordProviderAttempt(ctx, p.name, time.Since(start), err)
	return txns, err
}

func (p *instrumentedProvider) FetchScoringSettings(ctx context.Context, year int) (domain.ScoringSettings, error) {
	start := time.Now()
	settings, err := p.next.FetchScoringSettings(ctx, year)
	p.recorder.RecordProviderAttempt(ctx, p.name, time.Since(start), err)
	return settings, err
}

// instrumentedStats is the stats-provider counterpart.
type instrumentedStats struct {
	next     StatsProvider
	name     string
	recorder *metrics.Recorder
}

// NewInstrumentedStatsProvider wraps a stats provider with metrics recording.
func NewInstrumentedStatsProvider(next StatsProvider, name string, recorder *metrics.Recorder) StatsProvider {
	return &instrumentedStats{next: next, name: name, recorder: recorder}
}

func (p *instrumentedStats) FetchBatting(ctx context.Context, year int) ([]domain.StatLine, error) {
	start := time.Now()
	lines, err := p.next.FetchBatting(ctx, year)
	p.recorder.RecordProviderAttempt(ctx, p.name, time.Since(start), err)
	return lines, err
}

func (p *instrumentedStats) FetchPitching(ctx context.Context, year int) ([]domain.StatLine, error) {
	start := time.Now()
	lines, err := p.next.FetchPitching(ctx, year)
	p.recorder.RecordProviderAttempt(ctx, p.name, time.Since(start), err)
	return lines, err
}

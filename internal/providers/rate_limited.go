package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"fbcw-data-service/internal/domain"
)

// rateLimitedProvider wraps a LeagueProvider and spaces calls out to stay
// under the upstream quota. Calls block until the limiter admits them.
type rateLimitedProvider struct {
	next    LeagueProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a LeagueProvider that admits at most r
// requests per second with the given burst. Non-positive values fall back
// to one request per second with burst 1.
func NewRateLimitedProvider(next LeagueProvider, r rate.Limit, burst int, logger *slog.Logger) LeagueProvider {
	if r <= 0 {
		r = rate.Limit(1)
	}
	if burst <= 0 {
		burst = 1
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(r, burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate limit wait canceled", "error", err)
		return err
	}
	return nil
}

func (p *rateLimitedProvider) AvailableSeasons(ctx context.Context) ([]int, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.AvailableSeasons(ctx)
}

func (p *rateLimitedProvider) FetchStandings(ctx context.Context, year int) ([]domain.TeamStanding, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchStandings(ctx, year)
}

func (p *rateLimitedProvider) FetchTeams(ctx context.Context, year int) ([]domain.TeamInfo, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchTeams(ctx, year)
}

func (p *rateLimitedProvider) FetchWeekScores(ctx context.Context, year, week int) ([]domain.MatchupScore, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchWeekScores(ctx, year, week)
}

func (p *rateLimitedProvider) FetchRosters(ctx context.Context, year int) (map[string][]domain.RosterSlot, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchRosters(ctx, year)
}

func (p *rateLimitedProvider) FetchDraft(ctx context.Context, year int) ([]domain.DraftPick, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchDraft(ctx, year)
}

func (p *rateLimitedProvider) FetchTransactions(ctx context.Context, year int) ([]domain.Transaction, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchTransactions(ctx, year)
}

func (p *rateLimitedProvider) FetchScoringSettings(ctx context.Context, year int) (domain.ScoringSettings, error) {
	if err := p.wait(ctx); err != nil {
		return domain.ScoringSettings{}, err
	}
	return p.next.FetchScoringSettings(ctx, year)
}

// Package app wires configured providers into runnable components shared by
// the collect CLI and the server's scheduled refresh.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"fbcw-data-service/internal/auth"
	"fbcw-data-service/internal/config"
	"fbcw-data-service/internal/metrics"
	"fbcw-data-service/internal/providers"
	"fbcw-data-service/internal/providers/fangraphs"
	"fbcw-data-service/internal/providers/fixture"
	"fbcw-data-service/internal/providers/yahoo"
)

// The fantasy API throttles aggressively; two requests per second with no
// burst keeps collection runs under its limits.
const (
	yahooRequestsPerSecond = 2
	yahooBurst             = 1
)

// BuildProviders constructs the league and stats providers named by the
// configuration, instrumented with the given recorder. The yahoo provider
// needs a valid credential file and returns an AuthError when it is missing
// or expired.
func BuildProviders(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.LeagueProvider, providers.StatsProvider, error) {
	switch cfg.Provider {
	case "fixture":
		p := fixture.New(cfg.League.AllSeasons()...)
		return providers.NewInstrumentedProvider(p, "fixture", recorder),
			providers.NewInstrumentedStatsProvider(p, "fixture", recorder), nil
	case "yahoo", "":
		session, err := auth.NewSession(ctx, cfg.Auth.CredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		// The stored access token is usually expired, so the first real
		// request would refresh it; forcing the refresh here surfaces a
		// revoked credential as an AuthError before the run starts.
		if _, err := session.Token(); err != nil {
			return nil, nil, err
		}
		client := yahoo.NewClient(yahoo.Config{
			HTTPClient:         session.Client(),
			LeagueKeyOverrides: cfg.League.LeagueIDOverrides,
			Logger:             logger,
		})
		league := providers.NewRateLimitedProvider(client, rate.Limit(yahooRequestsPerSecond), yahooBurst, logger)
		stats := fangraphs.NewClient(fangraphs.Config{Logger: logger})
		return providers.NewInstrumentedProvider(league, "yahoo", recorder),
			providers.NewInstrumentedStatsProvider(stats, "fangraphs", recorder), nil
	default:
		return nil, nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

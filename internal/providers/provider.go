// Package providers defines how upstream fantasy and stats sources are
// fetched and normalized into domain records, plus the shared error taxonomy
// for adapter failures.
package providers

import (
	"context"

	"fbcw-data-service/internal/domain"
)

// LeagueProvider fetches normalized league records for one season at a time.
// Implementations do not retry transient failures; callers re-run the whole
// pipeline, which is idempotent.
type LeagueProvider interface {
	// AvailableSeasons lists the seasons the credential can see.
	AvailableSeasons(ctx context.Context) ([]int, error)
	FetchStandings(ctx context.Context, year int) ([]domain.TeamStanding, error)
	FetchTeams(ctx context.Context, year int) ([]domain.TeamInfo, error)
	// FetchWeekScores returns both sides of every matchup for the given week.
	// An empty slice with no error means the week has no data yet.
	FetchWeekScores(ctx context.Context, year, week int) ([]domain.MatchupScore, error)
	FetchRosters(ctx context.Context, year int) (map[string][]domain.RosterSlot, error)
	FetchDraft(ctx context.Context, year int) ([]domain.DraftPick, error)
	FetchTransactions(ctx context.Context, year int) ([]domain.Transaction, error)
	FetchScoringSettings(ctx context.Context, year int) (domain.ScoringSettings, error)
}

// StatsProvider fetches season-level player stat lines from the
// stats-aggregation source.
type StatsProvider interface {
	FetchBatting(ctx context.Context, year int) ([]domain.StatLine, error)
	FetchPitching(ctx context.Context, year int) ([]domain.StatLine, error)
}

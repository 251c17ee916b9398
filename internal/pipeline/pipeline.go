package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fbcw-data-service/internal/config"
	"fbcw-data-service/internal/domain"
	"fbcw-data-service/internal/logging"
	"fbcw-data-service/internal/materialize"
	"fbcw-data-service/internal/metrics"
	"fbcw-data-service/internal/providers"
)

// Runner orchestrates collection runs: fetch normalized records from the
// providers, fold them into aggregates, and materialize the JSON tree.
// Runs are idempotent; a failed run is simply re-run after the cause clears.
type Runner struct {
	league    providers.LeagueProvider
	stats     providers.StatsProvider
	writer    *materialize.Writer
	store     *materialize.Store
	cfg       config.LeagueConfig
	overrides Overrides
	logger    *slog.Logger
	recorder  *metrics.Recorder
}

// NewRunner constructs a collection runner. The stats provider may be nil
// when only league data is collected.
func NewRunner(league providers.LeagueProvider, stats providers.StatsProvider, dataDir string, cfg config.LeagueConfig, logger *slog.Logger, recorder *metrics.Recorder) *Runner {
	return &Runner{
		league:    league,
		stats:     stats,
		writer:    materialize.NewWriter(dataDir),
		store:     materialize.NewStore(dataDir),
		cfg:       cfg,
		overrides: DefaultOverrides(),
		logger:    logger,
		recorder:  recorder,
	}
}

// Update collects the current season and refolds manager careers. This is
// the default weekly run.
func (r *Runner) Update(ctx context.Context) error {
	return r.timed(ctx, "update", func() error {
		if err := r.collectSeason(ctx, r.cfg.CurrentSeason, true); err != nil {
			return err
		}
		if err := r.refoldManagers(); err != nil {
			return err
		}
		return r.writeLeagueInfo()
	})
}

// Setup collects every historical season plus the current one. Run once when
// bootstrapping a data tree, or to rebuild it from scratch.
func (r *Runner) Setup(ctx context.Context) error {
	return r.timed(ctx, "setup", func() error {
		for _, year := range r.cfg.HistoricalSeasons {
			if err := r.collectSeason(ctx, year, false); err != nil {
				return fmt.Errorf("season %d: %w", year, err)
			}
		}
		if err := r.collectSeason(ctx, r.cfg.CurrentSeason, true); err != nil {
			return fmt.Errorf("season %d: %w", r.cfg.CurrentSeason, err)
		}
		if err := r.refoldManagers(); err != nil {
			return err
		}
		return r.writeLeagueInfo()
	})
}

// Players collects per-season player stats for every season and rebuilds the
// player career history. Requires a stats provider.
func (r *Runner) Players(ctx context.Context) error {
	return r.timed(ctx, "players", func() error {
		if r.stats == nil {
			return fmt.Errorf("players run requires a stats provider")
		}
		for _, year := range r.cfg.AllSeasons() {
			current := year == r.cfg.CurrentSeason
			if err := r.collectPlayers(ctx, year, current); err != nil {
				return fmt.Errorf("players %d: %w", year, err)
			}
		}
		return r.refoldPlayerHistory()
	})
}

// Full runs Update followed by Players.
func (r *Runner) Full(ctx context.Context) error {
	if err := r.Update(ctx); err != nil {
		return err
	}
	return r.Players(ctx)
}

// Check lists the seasons the configured credential can actually see,
// without writing anything.
func (r *Runner) Check(ctx context.Context) ([]int, error) {
	return r.league.AvailableSeasons(ctx)
}

// collectSeason fetches and materializes one season's league records.
func (r *Runner) collectSeason(ctx context.Context, year int, current bool) error {
	start := time.Now()
	rec := domain.SeasonRecords{Year: year, Current: current}

	standings, err := r.league.FetchStandings(ctx, year)
	if err != nil {
		return err
	}
	rec.Standings = Rank(standings, r.cfg.RankPolicy)
	r.overrides.ResolveStandings(year, rec.Standings)

	if rec.Teams, err = r.league.FetchTeams(ctx, year); err != nil {
		return err
	}
	r.overrides.ResolveTeams(year, rec.Teams)
	if rec.Scores, err = r.collectWeeks(ctx, year); err != nil {
		return err
	}
	if !current {
		if rec.Draft, err = r.league.FetchDraft(ctx, year); err != nil {
			return err
		}
	}
	if rec.Transactions, err = r.league.FetchTransactions(ctx, year); err != nil {
		return err
	}
	if rec.Scoring, err = r.league.FetchScoringSettings(ctx, year); err != nil {
		return err
	}

	if err := r.writer.WriteSeasonRecords(rec); err != nil {
		return err
	}
	r.recorder.SeasonCollected(ctx, year)
	logging.Info(r.logger, "season collected",
		logging.FieldSeason, year,
		logging.FieldCount, len(rec.Scores),
		logging.FieldDurationMS, time.Since(start).Milliseconds())
	return nil
}

// collectWeeks pulls matchup scores week by week until the source runs out
// of data for the season.
func (r *Runner) collectWeeks(ctx context.Context, year int) ([]domain.MatchupScore, error) {
	var all []domain.MatchupScore
	for week := 1; week <= r.cfg.MaxWeeks; week++ {
		scores, err := r.league.FetchWeekScores(ctx, year, week)
		if err != nil {
			return nil, err
		}
		if len(scores) == 0 {
			logging.Info(r.logger, "season schedule exhausted",
				logging.FieldSeason, year,
				logging.FieldWeek, week)
			break
		}
		all = append(all, scores...)
	}
	return all, nil
}

// collectPlayers joins one season's rosters with stat-source lines and
// materializes the result.
func (r *Runner) collectPlayers(ctx context.Context, year int, current bool) error {
	rosters, err := r.league.FetchRosters(ctx, year)
	if err != nil {
		return err
	}
	r.overrides.ResolveRosters(year, rosters)
	settings, err := r.league.FetchScoringSettings(ctx, year)
	if err != nil {
		return err
	}
	batting, err := r.stats.FetchBatting(ctx, year)
	if err != nil {
		return err
	}
	pitching, err := r.stats.FetchPitching(ctx, year)
	if err != nil {
		return err
	}

	players := JoinPlayers(rosters, batting, pitching, settings, r.logger)
	if err := r.writer.WritePlayerStats(year, current, players); err != nil {
		return err
	}
	logging.Info(r.logger, "player stats collected",
		logging.FieldSeason, year,
		logging.FieldCount, len(players))
	return nil
}

// refoldManagers rebuilds manager careers from every materialized season.
func (r *Runner) refoldManagers() error {
	var seasons []SeasonStandings
	for _, year := range r.cfg.AllSeasons() {
		current := year == r.cfg.CurrentSeason
		if !r.store.HasSeason(year, current) {
			continue
		}
		standings, err := r.store.LoadStandings(year, current)
		if err != nil {
			return err
		}
		seasons = append(seasons, SeasonStandings{Year: year, Standings: standings})
	}

	careers := FoldCareers(seasons, FoldOptions{
		PlayoffTeams: r.cfg.PlayoffTeams,
		Overrides:    r.overrides,
	})
	if err := r.writer.WriteManagerStats(careers); err != nil {
		return err
	}
	logging.Info(r.logger, "manager careers refolded", logging.FieldCount, len(careers))
	return nil
}

// refoldPlayerHistory rebuilds player careers from every materialized
// player-stats file.
func (r *Runner) refoldPlayerHistory() error {
	seasons := make(map[int][]domain.PlayerSeason)
	for _, year := range r.cfg.AllSeasons() {
		current := year == r.cfg.CurrentSeason
		players, err := r.store.LoadPlayerStats(year, current)
		if err != nil {
			return err
		}
		if len(players) > 0 {
			seasons[year] = players
		}
	}

	careers := FoldPlayerHistory(seasons)
	if err := r.writer.WritePlayerHistory(careers); err != nil {
		return err
	}
	logging.Info(r.logger, "player careers refolded", logging.FieldCount, len(careers))
	return nil
}

func (r *Runner) writeLeagueInfo() error {
	founded := r.cfg.CurrentSeason
	for _, year := range r.cfg.HistoricalSeasons {
		if year < founded {
			founded = year
		}
	}
	return r.writer.WriteLeagueInfo(domain.LeagueInfo{
		LeagueName:    r.cfg.Name,
		Founded:       founded,
		CurrentSeason: r.cfg.CurrentSeason,
		TotalTeams:    r.cfg.TotalTeams,
		LeagueType:    "Points",
	})
}

// timed wraps a run with duration logging and metrics.
func (r *Runner) timed(ctx context.Context, command string, fn func() error) error {
	start := time.Now()
	err := fn()
	r.recorder.PipelineRun(ctx, command, time.Since(start), err)
	if err != nil {
		logging.Error(r.logger, "run failed", err, "command", command)
		return err
	}
	logging.Info(r.logger, "run completed",
		"command", command,
		logging.FieldDurationMS, time.Since(start).Milliseconds())
	return nil
}

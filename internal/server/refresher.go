package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"fbcw-data-service/internal/logging"
)

// runFunc is one scheduled collection run.
type runFunc func(context.Context) error

// Refresher runs the update pipeline on a cron schedule so the data tree
// stays current during the season without a manual collect run.
type Refresher struct {
	schedule string
	run      runFunc
	logger   *slog.Logger
	cron     *cron.Cron
	ctx      context.Context
}

// NewRefresher builds a refresher; Start must be called to begin scheduling.
func NewRefresher(schedule string, run runFunc, logger *slog.Logger) *Refresher {
	return &Refresher{
		schedule: schedule,
		run:      run,
		logger:   logger,
	}
}

// Start registers the schedule and begins running. Invalid schedules are
// reported once and the refresher stays idle.
func (r *Refresher) Start(ctx context.Context) {
	if r == nil || r.run == nil || r.schedule == "" {
		return
	}

	r.ctx = ctx
	r.cron = cron.New()
	if _, err := r.cron.AddFunc(r.schedule, r.runOnce); err != nil {
		logging.Error(r.logger, "invalid refresh schedule", err, "schedule", r.schedule)
		r.cron = nil
		return
	}
	r.cron.Start()
	logging.Info(r.logger, "scheduled refresh enabled", "schedule", r.schedule)
}

func (r *Refresher) runOnce() {
	ctx := r.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if ctx.Err() != nil {
		return
	}

	start := time.Now()
	if err := r.run(ctx); err != nil {
		logging.Error(r.logger, "scheduled refresh failed", err)
		return
	}
	logging.Info(r.logger, "scheduled refresh complete",
		logging.FieldDurationMS, time.Since(start).Milliseconds())
}

// Stop halts scheduling and waits for an in-flight run to finish or the
// context to expire.
func (r *Refresher) Stop(ctx context.Context) error {
	if r == nil || r.cron == nil {
		return nil
	}
	done := r.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

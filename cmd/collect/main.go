// Command collect runs the data pipeline: it pulls league and player records
// from the configured sources and rewrites the JSON tree the site serves.
//
// Commands:
//
//	update   collect the current season and refold manager careers (default)
//	setup    collect every historical season plus the current one
//	players  collect per-season player stats and rebuild player careers
//	full     update followed by players
//	check    list the seasons the configured credential can see
//
// Exit codes: 0 success, 1 source or write failure (safe to re-run),
// 2 credential problem (fix oauth2.json before re-running).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fbcw-data-service/internal/app"
	"fbcw-data-service/internal/config"
	"fbcw-data-service/internal/logging"
	"fbcw-data-service/internal/metrics"
	"fbcw-data-service/internal/pipeline"
	"fbcw-data-service/internal/providers"
)

const appVersion = "dev"

const (
	exitOK     = 0
	exitFailed = 1
	exitAuth   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout))
}

func run(ctx context.Context, args []string, out *os.File) int {
	command := "update"
	if len(args) > 0 {
		command = args[0]
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "fbcw-collect",
		Version: appVersion,
	})

	recorder := metrics.NewRecorder()
	league, stats, err := app.BuildProviders(ctx, cfg, logger, recorder)
	if err != nil {
		return reportError(logger, command, err)
	}
	runner := pipeline.NewRunner(league, stats, cfg.DataDir, cfg.League, logger, recorder)

	switch command {
	case "update":
		err = runner.Update(ctx)
	case "setup":
		err = runner.Setup(ctx)
	case "players":
		err = runner.Players(ctx)
	case "full":
		err = runner.Full(ctx)
	case "check":
		var seasons []int
		if seasons, err = runner.Check(ctx); err == nil {
			for _, year := range seasons {
				fmt.Fprintln(out, year)
			}
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want update, setup, players, full, or check)\n", command)
		return exitFailed
	}

	if err != nil {
		return reportError(logger, command, err)
	}
	return exitOK
}

func reportError(logger *slog.Logger, command string, err error) int {
	logger.Error("collection failed", "command", command, "error", err)
	if _, ok := providers.AsAuthError(err); ok {
		return exitAuth
	}
	return exitFailed
}

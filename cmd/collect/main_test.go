package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func setFixtureEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("DATA_DIR", dir)
	t.Setenv("HISTORICAL_SEASONS", "2024")
	t.Setenv("CURRENT_SEASON", "2025")
	return dir
}

func TestRunUpdate(t *testing.T) {
	dir := setFixtureEnv(t)

	if code := run(context.Background(), []string{"update"}, os.Stdout); code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	if _, err := os.Stat(filepath.Join(dir, "current_season", "standings.json")); err != nil {
		t.Errorf("standings not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "league_info.json")); err != nil {
		t.Errorf("league info not written: %v", err)
	}
}

func TestRunDefaultsToUpdate(t *testing.T) {
	dir := setFixtureEnv(t)

	if code := run(context.Background(), nil, os.Stdout); code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	if _, err := os.Stat(filepath.Join(dir, "current_season", "standings.json")); err != nil {
		t.Errorf("standings not written: %v", err)
	}
}

func TestRunFull(t *testing.T) {
	dir := setFixtureEnv(t)

	if code := run(context.Background(), []string{"full"}, os.Stdout); code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	if _, err := os.Stat(filepath.Join(dir, "players", "player_history.json")); err != nil {
		t.Errorf("player history not written: %v", err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	setFixtureEnv(t)

	if code := run(context.Background(), []string{"bogus"}, os.Stdout); code != exitFailed {
		t.Fatalf("exit code = %d, want %d", code, exitFailed)
	}
}

func TestRunMissingCredentialsExitsAuth(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROVIDER", "yahoo")
	t.Setenv("DATA_DIR", dir)
	t.Setenv("OAUTH_CREDENTIALS", filepath.Join(dir, "missing-oauth2.json"))

	if code := run(context.Background(), []string{"update"}, os.Stdout); code != exitAuth {
		t.Fatalf("exit code = %d, want %d", code, exitAuth)
	}
}

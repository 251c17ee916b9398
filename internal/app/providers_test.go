package app

import (
	"context"
	"path/filepath"
	"testing"

	"fbcw-data-service/internal/config"
	"fbcw-data-service/internal/metrics"
	"fbcw-data-service/internal/providers"
)

func TestBuildProvidersFixture(t *testing.T) {
	cfg := config.Config{Provider: "fixture"}
	cfg.League.CurrentSeason = 2025

	league, stats, err := BuildProviders(context.Background(), cfg, nil, metrics.NewRecorder())
	if err != nil {
		t.Fatalf("BuildProviders: %v", err)
	}
	if league == nil || stats == nil {
		t.Fatal("expected both providers")
	}

	seasons, err := league.AvailableSeasons(context.Background())
	if err != nil {
		t.Fatalf("AvailableSeasons: %v", err)
	}
	if len(seasons) != 1 || seasons[0] != 2025 {
		t.Errorf("seasons = %v", seasons)
	}
}

func TestBuildProvidersUnknown(t *testing.T) {
	_, _, err := BuildProviders(context.Background(), config.Config{Provider: "espn"}, nil, nil)
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestBuildProvidersYahooMissingCredentials(t *testing.T) {
	cfg := config.Config{Provider: "yahoo"}
	cfg.Auth.CredentialsFile = filepath.Join(t.TempDir(), "oauth2.json")

	_, _, err := BuildProviders(context.Background(), cfg, nil, metrics.NewRecorder())
	if err == nil {
		t.Fatal("expected auth error")
	}
	if _, ok := providers.AsAuthError(err); !ok {
		t.Errorf("expected AuthError, got %T: %v", err, err)
	}
}

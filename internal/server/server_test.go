package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"fbcw-data-service/internal/config"
	"fbcw-data-service/internal/metrics"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Config{
		Port:      "5000",
		DataDir:   t.TempDir(),
		PublicDir: t.TempDir(),
		Provider:  "fixture",
	}
	cfg.League.CurrentSeason = 2025
	cfg.League.MaxWeeks = 26
	cfg.League.PlayoffTeams = 6
	return cfg
}

func TestNewServesHealthWithNoCacheHeaders(t *testing.T) {
	srv, err := New(context.Background(), testConfig(t), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store, no-cache, must-revalidate" {
		t.Errorf("Cache-Control = %q", got)
	}
	if got := rec.Header().Get("Pragma"); got != "no-cache" {
		t.Errorf("Pragma = %q", got)
	}
	if got := rec.Header().Get("Expires"); got != "0" {
		t.Errorf("Expires = %q", got)
	}
}

func TestNewWithRefreshEnabledBuildsRefresher(t *testing.T) {
	cfg := testConfig(t)
	cfg.Refresh.Enabled = true
	cfg.Refresh.Schedule = "0 6 * * 1"

	srv, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if srv.refresher == nil {
		t.Error("expected a refresher when refresh is enabled")
	}
}

func TestNewWithRefreshEnabledMissingCredentials(t *testing.T) {
	cfg := testConfig(t)
	cfg.Provider = "yahoo"
	cfg.Auth.CredentialsFile = cfg.DataDir + "/missing-oauth2.json"
	cfg.Refresh.Enabled = true
	cfg.Refresh.Schedule = "0 6 * * 1"

	if _, err := New(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected credential error at construction")
	}
}

type stubHTTPServer struct {
	mu       sync.Mutex
	started  bool
	shutdown bool
	serveErr error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.started = true
	err := s.serveErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	select {} // block like a real server
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdown = true
	s.mu.Unlock()
	return nil
}

func (s *stubHTTPServer) Addr() string          { return ":0" }
func (s *stubHTTPServer) Handler() http.Handler { return nil }

func (s *stubHTTPServer) wasShutdown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdown
}

func TestRunShutsDownOnContextCancel(t *testing.T) {
	stub := &stubHTTPServer{}
	srv := newServerWithDeps(testConfig(t), nil, metrics.NewRecorder(), stub, nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if !stub.wasShutdown() {
		t.Error("http server was not shut down")
	}
}

func TestRunStopsWhenServerFails(t *testing.T) {
	stub := &stubHTTPServer{serveErr: errors.New("bind failed")}
	srv := newServerWithDeps(testConfig(t), nil, metrics.NewRecorder(), stub, nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after server failure")
	}
}

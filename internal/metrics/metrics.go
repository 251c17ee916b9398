package metrics

import (
	"context"
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type runStats struct {
	runs            int
	errors          int
	lastRunDuration time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// collection runs, and HTTP traffic. The in-memory counters back the tests;
// the optional otel instruments export the same events.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*providerStats
	runs      map[string]*runStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		runs:      make(map[string]*runStats),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for an upstream call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(ctx context.Context, provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	r.otel.recordProviderAttempt(ctx, provider, duration, err)
}

// PipelineRun tracks one collection run per command.
func (r *Recorder) PipelineRun(ctx context.Context, command string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.runs[command]
	if !ok {
		stats = &runStats{}
		r.runs[command] = stats
	}
	stats.runs++
	stats.lastRunDuration = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	r.otel.recordPipelineRun(ctx, command, duration, err)
}

// SeasonCollected counts a completed season collection.
func (r *Recorder) SeasonCollected(ctx context.Context, year int) {
	if r == nil {
		return
	}
	r.otel.recordSeasonCollected(ctx, year)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.otel.recordHTTPRequest(ctx, method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.providers[provider]; ok {
		return stats.calls
	}
	return 0
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.providers[provider]; ok {
		return stats.errors
	}
	return 0
}

// PipelineRuns returns the total runs recorded for a command.
func (r *Recorder) PipelineRuns(command string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.runs[command]; ok {
		return stats.runs
	}
	return 0
}

// PipelineErrors returns the total failed runs recorded for a command.
func (r *Recorder) PipelineErrors(command string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.runs[command]; ok {
		return stats.errors
	}
	return 0
}

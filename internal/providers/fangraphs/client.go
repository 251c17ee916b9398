package fangraphs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fbcw-data-service/internal/domain"
	"fbcw-data-service/internal/logging"
	"fbcw-data-service/internal/providers"
)

const (
	providerName   = "fangraphs"
	defaultBaseURL = "https://www.fangraphs.com/api/leaders/major-league/data"
)

// Config controls how the fangraphs client reaches the leaderboard API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches season leaderboards from the stats-aggregation source.
// No credential is required; the leaderboard endpoint is public.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient constructs a fangraphs client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		// First-time leaderboard pulls are slow upstream.
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient, logger: cfg.Logger}
}

type leaderboardResponse struct {
	Data []map[string]any `json:"data"`
}

// FetchBatting returns every qualified batter's season line.
func (c *Client) FetchBatting(ctx context.Context, year int) ([]domain.StatLine, error) {
	return c.fetch(ctx, year, "bat", mapBattingRow)
}

// FetchPitching returns every qualified pitcher's season line.
func (c *Client) FetchPitching(ctx context.Context, year int) ([]domain.StatLine, error) {
	return c.fetch(ctx, year, "pit", mapPitchingRow)
}

func (c *Client) fetch(ctx context.Context, year int, kind string, mapRow func(map[string]any) (domain.StatLine, error)) ([]domain.StatLine, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("stats", kind)
	q.Set("season", strconv.Itoa(year))
	q.Set("qual", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.SourceUnavailableError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.SourceUnavailableError{
			Provider: providerName,
			Err:      fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var payload leaderboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &providers.SourceUnavailableError{Provider: providerName, Err: fmt.Errorf("decode leaderboard: %w", err)}
	}

	lines := make([]domain.StatLine, 0, len(payload.Data))
	for _, row := range payload.Data {
		line, err := mapRow(row)
		if err != nil {
			c.warnSkip(ctx, err)
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (c *Client) warnSkip(ctx context.Context, err error) {
	logger := logging.FromContext(ctx, c.logger)
	if logger != nil {
		logger.Warn("skipping malformed stat row",
			slog.String(logging.FieldProvider, providerName),
			"error", err,
		)
	}
}

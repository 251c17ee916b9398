package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"fbcw-data-service/internal/domain"
	"fbcw-data-service/internal/logging"
	"fbcw-data-service/internal/providers"
)

// Config controls how the yahoo client reaches the fantasy API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client // authorized client from an auth.Session
	// LeagueKeyOverrides pins specific league keys per year when the
	// credential can see more than one league for a season.
	LeagueKeyOverrides map[int]string
	Logger             *slog.Logger
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches league data from the fantasy API and maps it to domain
// records. One client is built per pipeline run from that run's session.
type Client struct {
	baseURL    string
	httpClient httpDoer
	overrides  map[int]string
	logger     *slog.Logger

	leagueKeys map[int]string // per-run cache of year -> league key
}

// NewClient constructs a yahoo client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: doer,
		overrides:  cfg.LeagueKeyOverrides,
		logger:     cfg.Logger,
		leagueKeys: make(map[int]string),
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	q := req.URL.Query()
	q.Set("format", "json")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The oauth2 transport refreshes the token on demand; a rejected
		// refresh means the credential is revoked, not that the API is down.
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return &providers.AuthError{Reason: "token refresh rejected; re-authorize", Err: err}
		}
		return &providers.SourceUnavailableError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &providers.AuthError{Reason: fmt.Sprintf("fantasy API rejected credentials (status=%d)", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.SourceUnavailableError{
			Provider: providerName,
			Err:      fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &providers.SourceUnavailableError{Provider: providerName, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// leagueKey resolves the league key for a season, preferring configured
// overrides and caching lookups for the rest of the run.
func (c *Client) leagueKey(ctx context.Context, year int) (string, error) {
	if key, ok := c.overrides[year]; ok {
		return key, nil
	}
	if key, ok := c.leagueKeys[year]; ok {
		return key, nil
	}

	var payload leaguesResponse
	path := fmt.Sprintf("/users;use_login=1/games;game_codes=%s;seasons=%d/leagues", gameCode, year)
	if err := c.get(ctx, path, &payload); err != nil {
		return "", err
	}
	for _, lg := range payload.Leagues {
		if lg.Season == year && lg.LeagueKey != "" {
			c.leagueKeys[year] = lg.LeagueKey
			return lg.LeagueKey, nil
		}
	}
	return "", &providers.SourceUnavailableError{
		Provider: providerName,
		Err:      fmt.Errorf("no league found for season %d", year),
	}
}

// AvailableSeasons lists every season the credential has league data for.
func (c *Client) AvailableSeasons(ctx context.Context) ([]int, error) {
	var payload leaguesResponse
	path := fmt.Sprintf("/users;use_login=1/games;game_codes=%s/leagues", gameCode)
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}
	seen := make(map[int]struct{})
	var seasons []int
	for _, lg := range payload.Leagues {
		if lg.Season <= 0 {
			continue
		}
		if _, ok := seen[lg.Season]; ok {
			continue
		}
		seen[lg.Season] = struct{}{}
		seasons = append(seasons, lg.Season)
	}
	return seasons, nil
}

// FetchStandings joins the standings and teams endpoints into final
// season lines. Malformed entries are skipped with a warning.
func (c *Client) FetchStandings(ctx context.Context, year int) ([]domain.TeamStanding, error) {
	key, err := c.leagueKey(ctx, year)
	if err != nil {
		return nil, err
	}

	var standings standingsResponse
	if err := c.get(ctx, "/league/"+key+"/standings", &standings); err != nil {
		return nil, err
	}
	teams, err := c.fetchTeamEntries(ctx, key)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]teamEntry, len(teams))
	for _, t := range teams {
		byKey[t.TeamKey] = t
	}

	results := make([]domain.TeamStanding, 0, len(standings.Standings))
	for _, entry := range standings.Standings {
		standing, err := mapStanding(entry, byKey[entry.TeamKey])
		if err != nil {
			c.warnSkip(ctx, "standing", err)
			continue
		}
		results = append(results, standing)
	}
	return results, nil
}

// FetchTeams returns team display metadata in standings order.
func (c *Client) FetchTeams(ctx context.Context, year int) ([]domain.TeamInfo, error) {
	key, err := c.leagueKey(ctx, year)
	if err != nil {
		return nil, err
	}
	entries, err := c.fetchTeamEntries(ctx, key)
	if err != nil {
		return nil, err
	}
	teams := make([]domain.TeamInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := mapTeamInfo(entry)
		if err != nil {
			c.warnSkip(ctx, "team", err)
			continue
		}
		teams = append(teams, info)
	}
	return teams, nil
}

func (c *Client) fetchTeamEntries(ctx context.Context, leagueKey string) ([]teamEntry, error) {
	var payload teamsResponse
	if err := c.get(ctx, "/league/"+leagueKey+"/teams", &payload); err != nil {
		return nil, err
	}
	return payload.Teams, nil
}

// FetchWeekScores returns both sides of every matchup for the given week.
// A week the schedule has not reached yet yields an empty slice.
func (c *Client) FetchWeekScores(ctx context.Context, year, week int) ([]domain.MatchupScore, error) {
	key, err := c.leagueKey(ctx, year)
	if err != nil {
		return nil, err
	}

	var payload scoreboardResponse
	path := fmt.Sprintf("/league/%s/scoreboard;week=%d", key, week)
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}

	scores := make([]domain.MatchupScore, 0, len(payload.Matchups)*2)
	for _, matchup := range payload.Matchups {
		pair, err := mapMatchup(matchup, week)
		if err != nil {
			c.warnSkip(ctx, "matchup", err)
			continue
		}
		scores = append(scores, pair...)
	}
	return scores, nil
}

// FetchRosters returns every team's roster keyed by team key. A roster slot
// the adapter cannot normalize is skipped; the rest of the roster survives.
func (c *Client) FetchRosters(ctx context.Context, year int) (map[string][]domain.RosterSlot, error) {
	key, err := c.leagueKey(ctx, year)
	if err != nil {
		return nil, err
	}
	teams, err := c.fetchTeamEntries(ctx, key)
	if err != nil {
		return nil, err
	}

	rosters := make(map[string][]domain.RosterSlot, len(teams))
	for _, team := range teams {
		info, err := mapTeamInfo(team)
		if err != nil {
			c.warnSkip(ctx, "team", err)
			continue
		}

		var payload rosterResponse
		if err := c.get(ctx, "/team/"+team.TeamKey+"/roster", &payload); err != nil {
			return nil, err
		}

		slots := make([]domain.RosterSlot, 0, len(payload.Players))
		for _, player := range payload.Players {
			slot, err := mapRosterSlot(player, info)
			if err != nil {
				c.warnSkip(ctx, "roster slot", err)
				continue
			}
			slots = append(slots, slot)
		}
		rosters[team.TeamKey] = slots
	}
	return rosters, nil
}

// FetchDraft returns the season's draft results, oldest pick first.
func (c *Client) FetchDraft(ctx context.Context, year int) ([]domain.DraftPick, error) {
	key, err := c.leagueKey(ctx, year)
	if err != nil {
		return nil, err
	}
	var payload draftResultsResponse
	if err := c.get(ctx, "/league/"+key+"/draftresults", &payload); err != nil {
		return nil, err
	}
	picks := make([]domain.DraftPick, 0, len(payload.DraftResults))
	for _, entry := range payload.DraftResults {
		pick, err := mapDraftPick(entry)
		if err != nil {
			c.warnSkip(ctx, "draft pick", err)
			continue
		}
		picks = append(picks, pick)
	}
	return picks, nil
}

// FetchTransactions returns all roster moves, newest first.
func (c *Client) FetchTransactions(ctx context.Context, year int) ([]domain.Transaction, error) {
	key, err := c.leagueKey(ctx, year)
	if err != nil {
		return nil, err
	}
	var payload transactionsResponse
	if err := c.get(ctx, "/league/"+key+"/transactions;types=add,drop,trade", &payload); err != nil {
		return nil, err
	}
	transactions := make([]domain.Transaction, 0, len(payload.Transactions))
	for _, entry := range payload.Transactions {
		tx, err := mapTransaction(entry)
		if err != nil {
			c.warnSkip(ctx, "transaction", err)
			continue
		}
		transactions = append(transactions, tx)
	}
	sortTransactionsNewestFirst(transactions)
	return transactions, nil
}

// FetchScoringSettings maps the league's stat categories to point values,
// filling defaults for categories the settings leave out.
func (c *Client) FetchScoringSettings(ctx context.Context, year int) (domain.ScoringSettings, error) {
	key, err := c.leagueKey(ctx, year)
	if err != nil {
		return domain.ScoringSettings{}, err
	}
	var payload settingsResponse
	if err := c.get(ctx, "/league/"+key+"/settings", &payload); err != nil {
		return domain.ScoringSettings{}, err
	}
	return mapScoringSettings(payload), nil
}

func (c *Client) warnSkip(ctx context.Context, record string, err error) {
	logger := logging.FromContext(ctx, c.logger)
	if logger != nil {
		logger.Warn("skipping malformed record",
			slog.String(logging.FieldProvider, providerName),
			slog.String("record", record),
			"error", err,
		)
	}
}

package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"fbcw-data-service/internal/config"
	"fbcw-data-service/internal/domain"
	"fbcw-data-service/internal/metrics"
	"fbcw-data-service/internal/providers/fixture"
)

func testLeagueConfig() config.LeagueConfig {
	return config.LeagueConfig{
		Name:              "Fantasy Baseball Civil War",
		TotalTeams:        4,
		CurrentSeason:     2025,
		HistoricalSeasons: []int{2023, 2024},
		MaxWeeks:          26,
		PlayoffTeams:      2,
		RankPolicy:        RankPolicyPoints,
	}
}

func newTestRunner(t *testing.T) (*Runner, string) {
	t.Helper()
	dir := t.TempDir()
	provider := fixture.New(2023, 2024, 2025)
	return NewRunner(provider, provider, dir, testLeagueConfig(), nil, metrics.NewRecorder()), dir
}

func TestSetupMaterializesFullTree(t *testing.T) {
	r, dir := newTestRunner(t)

	if err := r.Setup(context.Background()); err != nil {
		t.Fatalf("Setup: %v", err)
	}

	wantFiles := []string{
		"league_info.json",
		"current_season/standings.json",
		"current_season/teams.json",
		"current_season/all_scores.json",
		"current_season/week_1_scores.json",
		"current_season/transactions.json",
		"current_season/scoring_settings.json",
		"historical/2023/final_standings.json",
		"historical/2023/draft.json",
		"historical/2024/final_standings.json",
		"managers/all_time_stats.json",
		"managers/manager_history.json",
	}
	for _, name := range wantFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "current_season", "draft.json")); err == nil {
		t.Error("current season should not have a draft file")
	}
}

func TestSetupFoldsCareersAcrossSeasons(t *testing.T) {
	r, dir := newTestRunner(t)

	if err := r.Setup(context.Background()); err != nil {
		t.Fatalf("Setup: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "managers", "all_time_stats.json"))
	if err != nil {
		t.Fatalf("read all_time_stats.json: %v", err)
	}
	var careers []domain.ManagerCareer
	if err := json.Unmarshal(data, &careers); err != nil {
		t.Fatalf("decode: %v", err)
	}

	var ryan *domain.ManagerCareer
	for i := range careers {
		if careers[i].ManagerName == "Ryan" {
			ryan = &careers[i]
		}
	}
	if ryan == nil {
		t.Fatalf("no career for Ryan: %+v", careers)
	}
	if ryan.SeasonsPlayed != 3 {
		t.Errorf("Ryan seasons = %d, want 3", ryan.SeasonsPlayed)
	}
	if ryan.Championships != 3 {
		t.Errorf("Ryan championships = %d, want 3", ryan.Championships)
	}
}

func TestUpdateIsIdempotent(t *testing.T) {
	r, dir := newTestRunner(t)
	ctx := context.Background()

	if err := r.Update(ctx); err != nil {
		t.Fatalf("first update: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(dir, "current_season", "standings.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if err := r.Update(ctx); err != nil {
		t.Fatalf("second update: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(dir, "current_season", "standings.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(first) != string(second) {
		t.Error("re-running update over identical input changed the output")
	}
}

func TestPlayersBuildsCareerHistory(t *testing.T) {
	r, dir := newTestRunner(t)
	ctx := context.Background()

	if err := r.Players(ctx); err != nil {
		t.Fatalf("Players: %v", err)
	}

	for _, name := range []string{
		"current_season/player_stats.json",
		"historical/2023/player_stats.json",
		"players/player_history.json",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "players", "player_history.json"))
	if err != nil {
		t.Fatalf("read player_history.json: %v", err)
	}
	var careers map[string]domain.PlayerCareer
	if err := json.Unmarshal(data, &careers); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(careers) == 0 {
		t.Fatal("empty player history")
	}
	for key, career := range careers {
		if len(career.Seasons) != 3 {
			t.Errorf("%s seasons = %d, want 3", key, len(career.Seasons))
		}
	}
}

func TestCheckListsSeasons(t *testing.T) {
	r, _ := newTestRunner(t)

	seasons, err := r.Check(context.Background())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(seasons) != 3 {
		t.Errorf("seasons = %v, want 3 entries", seasons)
	}
}

func TestRunnerRecordsMetrics(t *testing.T) {
	dir := t.TempDir()
	provider := fixture.New(2025)
	rec := metrics.NewRecorder()
	cfg := testLeagueConfig()
	cfg.HistoricalSeasons = nil
	r := NewRunner(provider, provider, dir, cfg, nil, rec)

	if err := r.Update(context.Background()); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := rec.PipelineRuns("update"); got != 1 {
		t.Errorf("pipeline runs = %d, want 1", got)
	}
	if got := rec.PipelineErrors("update"); got != 0 {
		t.Errorf("pipeline errors = %d, want 0", got)
	}
}

// ambiguousLeague serves a 2023 season where two teams carry the same Yahoo
// nickname, as the real league's 2023 season did.
type ambiguousLeague struct{}

func (ambiguousLeague) AvailableSeasons(context.Context) ([]int, error) {
	return []int{2023}, nil
}

func (ambiguousLeague) FetchStandings(context.Context, int) ([]domain.TeamStanding, error) {
	return []domain.TeamStanding{
		{Rank: 1, TeamKey: "422.l.6780.t.4", TeamName: "Draft Pool Party", Manager: "Logan", Wins: 13, Losses: 9, PointsFor: 1500},
		{Rank: 2, TeamKey: "422.l.6780.t.12", TeamName: "Peanut Butter & Elly", Manager: "Logan", Wins: 12, Losses: 10, PointsFor: 1400},
	}, nil
}

func (ambiguousLeague) FetchTeams(context.Context, int) ([]domain.TeamInfo, error) {
	return []domain.TeamInfo{
		{TeamKey: "422.l.6780.t.4", TeamName: "Draft Pool Party", Manager: "Logan"},
		{TeamKey: "422.l.6780.t.12", TeamName: "Peanut Butter & Elly", Manager: "Logan"},
	}, nil
}

func (ambiguousLeague) FetchWeekScores(context.Context, int, int) ([]domain.MatchupScore, error) {
	return nil, nil
}

func (ambiguousLeague) FetchRosters(context.Context, int) (map[string][]domain.RosterSlot, error) {
	return map[string][]domain.RosterSlot{
		"422.l.6780.t.4": {{
			PlayerID: "101", Name: "Batter 1", PositionType: "B",
			TeamKey: "422.l.6780.t.4", TeamName: "Draft Pool Party", Manager: "Logan",
		}},
		"422.l.6780.t.12": {{
			PlayerID: "102", Name: "Batter 2", PositionType: "B",
			TeamKey: "422.l.6780.t.12", TeamName: "Peanut Butter & Elly", Manager: "Logan",
		}},
	}, nil
}

func (ambiguousLeague) FetchDraft(context.Context, int) ([]domain.DraftPick, error) {
	return nil, nil
}

func (ambiguousLeague) FetchTransactions(context.Context, int) ([]domain.Transaction, error) {
	return nil, nil
}

func (ambiguousLeague) FetchScoringSettings(context.Context, int) (domain.ScoringSettings, error) {
	return domain.ScoringSettings{}, nil
}

func (ambiguousLeague) FetchBatting(context.Context, int) ([]domain.StatLine, error) {
	return []domain.StatLine{
		{Name: "Batter 1", Team: "CIN", Stats: map[string]float64{"H": 100, "2B": 20, "3B": 2, "HR": 10}},
		{Name: "Batter 2", Team: "NYM", Stats: map[string]float64{"H": 90, "2B": 15, "3B": 1, "HR": 8}},
	}, nil
}

func (ambiguousLeague) FetchPitching(context.Context, int) ([]domain.StatLine, error) {
	return nil, nil
}

// The per-season files feed the frontend directly, so identity overrides
// must already be applied there, not only in the career fold.
func TestCollectSeasonWritesDistinctManagerIdentities(t *testing.T) {
	dir := t.TempDir()
	cfg := testLeagueConfig()
	cfg.HistoricalSeasons = []int{2023}
	r := NewRunner(ambiguousLeague{}, ambiguousLeague{}, dir, cfg, nil, metrics.NewRecorder())
	ctx := context.Background()

	if err := r.collectSeason(ctx, 2023, false); err != nil {
		t.Fatalf("collectSeason: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "historical", "2023", "final_standings.json"))
	if err != nil {
		t.Fatalf("read final_standings.json: %v", err)
	}
	var standings []domain.TeamStanding
	if err := json.Unmarshal(data, &standings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	byKey := make(map[string]string, len(standings))
	for _, s := range standings {
		if s.Manager == "Logan" {
			t.Errorf("standings still carry the ambiguous nickname: %+v", s)
		}
		byKey[s.TeamKey] = s.Manager
	}
	if byKey["422.l.6780.t.4"] != "Logan C" || byKey["422.l.6780.t.12"] != "Logan S" {
		t.Errorf("unexpected identities: %v", byKey)
	}

	data, err = os.ReadFile(filepath.Join(dir, "historical", "2023", "teams.json"))
	if err != nil {
		t.Fatalf("read teams.json: %v", err)
	}
	var teams []domain.TeamInfo
	if err := json.Unmarshal(data, &teams); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, team := range teams {
		if team.Manager == "Logan" {
			t.Errorf("teams still carry the ambiguous nickname: %+v", team)
		}
	}

	if err := r.collectPlayers(ctx, 2023, false); err != nil {
		t.Fatalf("collectPlayers: %v", err)
	}
	data, err = os.ReadFile(filepath.Join(dir, "historical", "2023", "player_stats.json"))
	if err != nil {
		t.Fatalf("read player_stats.json: %v", err)
	}
	var players []domain.PlayerSeason
	if err := json.Unmarshal(data, &players); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, p := range players {
		if p.Manager != "Logan C" && p.Manager != "Logan S" {
			t.Errorf("player %s attributed to %q", p.Name, p.Manager)
		}
	}
}

// Win/loss symmetry of the materialized output: every decided matchup
// contributes exactly one win and one loss.
func TestSetupOutputIsRoundRobinSymmetric(t *testing.T) {
	r, dir := newTestRunner(t)

	if err := r.Setup(context.Background()); err != nil {
		t.Fatalf("Setup: %v", err)
	}

	for _, name := range []string{
		"historical/2023/final_standings.json",
		"historical/2024/final_standings.json",
		"current_season/standings.json",
	} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		var standings []domain.TeamStanding
		if err := json.Unmarshal(data, &standings); err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		var wins, losses int
		for _, s := range standings {
			wins += s.Wins
			losses += s.Losses
		}
		if wins != losses {
			t.Errorf("%s: %d wins vs %d losses", name, wins, losses)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "current_season", "all_scores.json"))
	if err != nil {
		t.Fatalf("read all_scores.json: %v", err)
	}
	var scores []domain.MatchupScore
	if err := json.Unmarshal(data, &scores); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var won, lost int
	for _, s := range scores {
		switch {
		case s.TeamScore > s.OpponentScore:
			won++
		case s.TeamScore < s.OpponentScore:
			lost++
		}
	}
	if won != lost || won == 0 {
		t.Errorf("matchup outcomes do not mirror: %d won vs %d lost", won, lost)
	}
}

package materialize

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fbcw-data-service/internal/domain"
)

func sampleSeason(current bool) domain.SeasonRecords {
	return domain.SeasonRecords{
		Year:    2024,
		Current: current,
		Standings: []domain.TeamStanding{
			{Rank: 2, TeamKey: "431.l.1.t.2", TeamName: "Bravo", Manager: "Tyler", Wins: 10, Losses: 12, PointsFor: 2200.5},
			{Rank: 1, TeamKey: "431.l.1.t.1", TeamName: "Alpha", Manager: "Ryan", Wins: 15, Losses: 7, PointsFor: 2450.2},
		},
		Teams: []domain.TeamInfo{
			{TeamKey: "431.l.1.t.2", TeamName: "Bravo", Manager: "Tyler"},
			{TeamKey: "431.l.1.t.1", TeamName: "Alpha", Manager: "Ryan"},
		},
		Scores: []domain.MatchupScore{
			{TeamKey: "431.l.1.t.1", TeamScore: 101.5, Week: 2, OpponentKey: "431.l.1.t.2", OpponentScore: 88.0},
			{TeamKey: "431.l.1.t.1", TeamScore: 95.0, Week: 1, OpponentKey: "431.l.1.t.2", OpponentScore: 90.5},
			{TeamKey: "431.l.1.t.2", TeamScore: 90.5, Week: 1, OpponentKey: "431.l.1.t.1", OpponentScore: 95.0},
		},
		Transactions: []domain.Transaction{{TransactionID: "1", Type: "add"}},
		Scoring:      domain.ScoringSettings{Batting: map[string]float64{"HR": 4}, Pitching: map[string]float64{"W": 5}},
	}
}

func TestWriteSeasonRecordsHistoricalLayout(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	if err := w.WriteSeasonRecords(sampleSeason(false)); err != nil {
		t.Fatalf("WriteSeasonRecords: %v", err)
	}

	seasonDir := filepath.Join(dir, "historical", "2024")
	for _, name := range []string{"final_standings.json", "teams.json", "all_scores.json", "transactions.json", "scoring_settings.json"} {
		if _, err := os.Stat(filepath.Join(seasonDir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(seasonDir, "standings.json")); err == nil {
		t.Error("historical season should not write standings.json")
	}
	if _, err := os.Stat(filepath.Join(seasonDir, "week_1_scores.json")); err == nil {
		t.Error("historical season should not write per-week score files")
	}

	var standings []domain.TeamStanding
	data, err := os.ReadFile(filepath.Join(seasonDir, "final_standings.json"))
	if err != nil {
		t.Fatalf("read final_standings.json: %v", err)
	}
	if err := json.Unmarshal(data, &standings); err != nil {
		t.Fatalf("decode final_standings.json: %v", err)
	}
	if len(standings) != 2 || standings[0].Rank != 1 || standings[0].Manager != "Ryan" {
		t.Errorf("standings not sorted by rank: %+v", standings)
	}
}

func TestWriteSeasonRecordsCurrentLayout(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	if err := w.WriteSeasonRecords(sampleSeason(true)); err != nil {
		t.Fatalf("WriteSeasonRecords: %v", err)
	}

	seasonDir := filepath.Join(dir, "current_season")
	for _, name := range []string{"standings.json", "week_1_scores.json", "week_2_scores.json"} {
		if _, err := os.Stat(filepath.Join(seasonDir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	var week1 []domain.MatchupScore
	data, err := os.ReadFile(filepath.Join(seasonDir, "week_1_scores.json"))
	if err != nil {
		t.Fatalf("read week_1_scores.json: %v", err)
	}
	if err := json.Unmarshal(data, &week1); err != nil {
		t.Fatalf("decode week_1_scores.json: %v", err)
	}
	if len(week1) != 2 {
		t.Errorf("week 1 score count = %d, want 2", len(week1))
	}
	for _, s := range week1 {
		if s.Week != 1 {
			t.Errorf("week 1 file contains week %d entry", s.Week)
		}
	}
}

func TestWriteJSONIdempotent(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	if err := w.WriteSeasonRecords(sampleSeason(false)); err != nil {
		t.Fatalf("first write: %v", err)
	}
	path := filepath.Join(dir, "historical", "2024", "final_standings.json")
	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if err := w.WriteSeasonRecords(sampleSeason(false)); err != nil {
		t.Fatalf("second write: %v", err)
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !before.ModTime().Equal(after.ModTime()) {
		t.Error("identical content should leave the file untouched")
	}
}

func TestWriteJSONLeavesPriorFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	target := filepath.Join(dir, "league_info.json")
	if err := w.WriteLeagueInfo(domain.LeagueInfo{LeagueName: "FBCW", LastUpdated: "2026-01-01T00:00:00Z"}); err != nil {
		t.Fatalf("WriteLeagueInfo: %v", err)
	}
	prior, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	// Unmarshalable payload fails before any file is touched.
	if err := w.writeJSON(target, func() {}); err == nil {
		t.Fatal("expected marshal failure")
	} else if _, ok := AsWriteError(err); !ok {
		t.Errorf("expected WriteError, got %T", err)
	}

	current, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read after failure: %v", err)
	}
	if string(current) != string(prior) {
		t.Error("failed write modified the existing file")
	}
}

func TestWriteManagerStats(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	careers := []domain.ManagerCareer{
		{
			ManagerName: "Tyler",
			SeasonHistory: []domain.ManagerSeason{
				{Year: 2023, TeamName: "Bravo", Rank: 3, Wins: 12, Losses: 10},
			},
		},
		{
			ManagerName: "Ryan",
			SeasonHistory: []domain.ManagerSeason{
				{Year: 2023, TeamName: "Alpha", Rank: 1, Wins: 18, Losses: 4},
				{Year: 2024, TeamName: "Alpha", Rank: 2, Wins: 14, Losses: 8},
			},
		},
	}
	if err := w.WriteManagerStats(careers); err != nil {
		t.Fatalf("WriteManagerStats: %v", err)
	}

	var all []domain.ManagerCareer
	data, err := os.ReadFile(filepath.Join(dir, "managers", "all_time_stats.json"))
	if err != nil {
		t.Fatalf("read all_time_stats.json: %v", err)
	}
	if err := json.Unmarshal(data, &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != 2 || all[0].ManagerName != "Ryan" {
		t.Errorf("careers not sorted by name: %+v", all)
	}

	var history []domain.ManagerSeasonEntry
	data, err = os.ReadFile(filepath.Join(dir, "managers", "manager_history.json"))
	if err != nil {
		t.Fatalf("read manager_history.json: %v", err)
	}
	if err := json.Unmarshal(data, &history); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history entries = %d, want 3", len(history))
	}
	if history[0].Manager != "Ryan" || history[0].Year != 2023 {
		t.Errorf("unexpected first history entry: %+v", history[0])
	}
}

func TestWriteLeagueInfoStampsTimestamp(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	fixed := time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	if err := w.WriteLeagueInfo(domain.LeagueInfo{LeagueName: "FBCW"}); err != nil {
		t.Fatalf("WriteLeagueInfo: %v", err)
	}

	var info domain.LeagueInfo
	data, err := os.ReadFile(filepath.Join(dir, "league_info.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := json.Unmarshal(data, &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.LastUpdated != "2026-08-01T06:00:00Z" {
		t.Errorf("last_updated = %q", info.LastUpdated)
	}
}

func TestWritePlayerStatsSortedByPoints(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	players := []domain.PlayerSeason{
		{RosterSlot: domain.RosterSlot{Name: "Low"}, FantasyPoints: 120.5},
		{RosterSlot: domain.RosterSlot{Name: "High"}, FantasyPoints: 480.1},
	}
	if err := w.WritePlayerStats(2024, false, players); err != nil {
		t.Fatalf("WritePlayerStats: %v", err)
	}

	var got []domain.PlayerSeason
	data, err := os.ReadFile(filepath.Join(dir, "historical", "2024", "player_stats.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got[0].Name != "High" {
		t.Errorf("players not sorted by fantasy points: %+v", got)
	}
}

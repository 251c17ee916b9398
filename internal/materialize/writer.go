package materialize

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"fbcw-data-service/internal/domain"
)

// Writer persists aggregated structures into the JSON layout. It is the sole
// writer of the data tree; the static server only ever reads it.
type Writer struct {
	basePath string
	now      func() time.Time
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath, now: time.Now}
}

// WriteSeasonRecords materializes one season's collected records: standings,
// teams, scores (plus per-week files for the current season), draft results,
// transactions, and scoring settings. Each file write is isolated; the first
// failure aborts and leaves earlier files in place.
func (w *Writer) WriteSeasonRecords(rec domain.SeasonRecords) error {
	dir := SeasonDir(w.basePath, rec.Year, rec.Current)

	standings := append([]domain.TeamStanding(nil), rec.Standings...)
	sort.SliceStable(standings, func(i, j int) bool { return standings[i].Rank < standings[j].Rank })
	if err := w.writeJSON(StandingsPath(w.basePath, rec.Year, rec.Current), standings); err != nil {
		return err
	}

	if err := w.writeJSON(filepath.Join(dir, teamsFile), sortedTeams(rec.Teams)); err != nil {
		return err
	}

	scores := append([]domain.MatchupScore(nil), rec.Scores...)
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Week != scores[j].Week {
			return scores[i].Week < scores[j].Week
		}
		return scores[i].TeamKey < scores[j].TeamKey
	})
	if err := w.writeJSON(filepath.Join(dir, allScoresFile), scores); err != nil {
		return err
	}

	if rec.Current {
		byWeek := make(map[int][]domain.MatchupScore)
		for _, s := range scores {
			byWeek[s.Week] = append(byWeek[s.Week], s)
		}
		for week, weekScores := range byWeek {
			if err := w.writeJSON(WeekScoresPath(w.basePath, week), weekScores); err != nil {
				return err
			}
		}
	}

	if rec.Draft != nil {
		if err := w.writeJSON(filepath.Join(dir, draftFile), rec.Draft); err != nil {
			return err
		}
	}
	if rec.Transactions != nil {
		if err := w.writeJSON(filepath.Join(dir, transactionsFile), rec.Transactions); err != nil {
			return err
		}
	}
	if rec.Scoring.Batting != nil || rec.Scoring.Pitching != nil {
		if err := w.writeJSON(filepath.Join(dir, scoringSettingsFile), rec.Scoring); err != nil {
			return err
		}
	}
	return nil
}

// WritePlayerStats materializes one season's joined player stat lines,
// highest fantasy points first.
func (w *Writer) WritePlayerStats(year int, current bool, players []domain.PlayerSeason) error {
	sorted := append([]domain.PlayerSeason(nil), players...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].FantasyPoints != sorted[j].FantasyPoints {
			return sorted[i].FantasyPoints > sorted[j].FantasyPoints
		}
		return sorted[i].Name < sorted[j].Name
	})
	path := filepath.Join(SeasonDir(w.basePath, year, current), playerStatsFile)
	return w.writeJSON(path, sorted)
}

// WriteManagerStats materializes the all-time manager table and the
// flattened manager-season history index.
func (w *Writer) WriteManagerStats(careers []domain.ManagerCareer) error {
	sorted := append([]domain.ManagerCareer(nil), careers...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ManagerName < sorted[j].ManagerName })

	if err := w.writeJSON(ManagersPath(w.basePath), sorted); err != nil {
		return err
	}

	var history []domain.ManagerSeasonEntry
	for _, career := range sorted {
		for _, season := range career.SeasonHistory {
			history = append(history, domain.ManagerSeasonEntry{
				Manager:       career.ManagerName,
				ManagerSeason: season,
			})
		}
	}
	return w.writeJSON(ManagerHistoryPath(w.basePath), history)
}

// WritePlayerHistory materializes the player career index keyed by
// normalized player name.
func (w *Writer) WritePlayerHistory(careers map[string]domain.PlayerCareer) error {
	return w.writeJSON(PlayerHistoryPath(w.basePath), careers)
}

// WriteLeagueInfo materializes league metadata with a fresh timestamp.
func (w *Writer) WriteLeagueInfo(info domain.LeagueInfo) error {
	if info.LastUpdated == "" {
		info.LastUpdated = w.now().UTC().Format(time.RFC3339)
	}
	return w.writeJSON(LeagueInfoPath(w.basePath), info)
}

// writeJSON writes payload atomically: marshal, write to a temp file in the
// same directory, rename over the target. Identical content is left
// untouched so repeated runs are byte-identical and cheap.
func (w *Writer) writeJSON(target string, payload any) error {
	if w == nil {
		return &WriteError{Path: target, Err: os.ErrInvalid}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return &WriteError{Path: target, Err: err}
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return &WriteError{Path: target, Err: err}
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &WriteError{Path: target, Err: err}
	}
	if err := os.Rename(tmp, target); err != nil {
		return &WriteError{Path: target, Err: err}
	}
	return nil
}

func sortedTeams(teams []domain.TeamInfo) []domain.TeamInfo {
	sorted := append([]domain.TeamInfo(nil), teams...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].TeamKey < sorted[j].TeamKey })
	return sorted
}

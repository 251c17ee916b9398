package materialize

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"fbcw-data-service/internal/domain"
)

// Store reads previously materialized season files so careers can be
// re-folded without re-fetching every season from the upstream sources.
type Store struct {
	basePath string
}

// NewStore constructs a store rooted at basePath.
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// HasSeason reports whether a standings file exists for the season.
func (s *Store) HasSeason(year int, current bool) bool {
	_, err := os.Stat(StandingsPath(s.basePath, year, current))
	return err == nil
}

// LoadStandings reads a season's standings file.
func (s *Store) LoadStandings(year int, current bool) ([]domain.TeamStanding, error) {
	var standings []domain.TeamStanding
	if err := s.readJSON(StandingsPath(s.basePath, year, current), &standings); err != nil {
		return nil, err
	}
	return standings, nil
}

// LoadScores reads a season's full score list.
func (s *Store) LoadScores(year int, current bool) ([]domain.MatchupScore, error) {
	var scores []domain.MatchupScore
	if err := s.readJSON(filepath.Join(SeasonDir(s.basePath, year, current), allScoresFile), &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// LoadPlayerStats reads a season's joined player stat lines. A missing file
// yields an empty slice: player stats are optional per season.
func (s *Store) LoadPlayerStats(year int, current bool) ([]domain.PlayerSeason, error) {
	var players []domain.PlayerSeason
	err := s.readJSON(filepath.Join(SeasonDir(s.basePath, year, current), playerStatsFile), &players)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (s *Store) readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

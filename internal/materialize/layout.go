// Package materialize writes aggregated structures to the fixed JSON layout
// the frontend consumes, and reads prior materializations back when careers
// are re-folded. Every write is atomic (temp file + rename) so the static
// server never observes a half-written file.
package materialize

import (
	"fmt"
	"path/filepath"
	"strconv"
)

const (
	currentSeasonDir = "current_season"
	historicalDir    = "historical"
	managersDir      = "managers"
	playersDir       = "players"

	leagueInfoFile      = "league_info.json"
	teamsFile           = "teams.json"
	allScoresFile       = "all_scores.json"
	draftFile           = "draft.json"
	playerStatsFile     = "player_stats.json"
	transactionsFile    = "transactions.json"
	scoringSettingsFile = "scoring_settings.json"
	allTimeStatsFile    = "all_time_stats.json"
	managerHistoryFile  = "manager_history.json"
	playerHistoryFile   = "player_history.json"

	// The frontend reads live standings and final standings from
	// different file names.
	currentStandingsFile    = "standings.json"
	historicalStandingsFile = "final_standings.json"
)

// SeasonDir returns the directory holding one season's files.
func SeasonDir(basePath string, year int, current bool) string {
	if current {
		return filepath.Join(basePath, currentSeasonDir)
	}
	return filepath.Join(basePath, historicalDir, strconv.Itoa(year))
}

// StandingsPath returns the standings file for a season.
func StandingsPath(basePath string, year int, current bool) string {
	name := historicalStandingsFile
	if current {
		name = currentStandingsFile
	}
	return filepath.Join(SeasonDir(basePath, year, current), name)
}

// WeekScoresPath returns the per-week score file for the current season.
func WeekScoresPath(basePath string, week int) string {
	return filepath.Join(basePath, currentSeasonDir, fmt.Sprintf("week_%d_scores.json", week))
}

// LeagueInfoPath returns the league metadata file path.
func LeagueInfoPath(basePath string) string {
	return filepath.Join(basePath, leagueInfoFile)
}

// ManagersPath returns the all-time manager stats file path.
func ManagersPath(basePath string) string {
	return filepath.Join(basePath, managersDir, allTimeStatsFile)
}

// ManagerHistoryPath returns the flattened manager-season index path.
func ManagerHistoryPath(basePath string) string {
	return filepath.Join(basePath, managersDir, managerHistoryFile)
}

// PlayerHistoryPath returns the player career index path.
func PlayerHistoryPath(basePath string) string {
	return filepath.Join(basePath, playersDir, playerHistoryFile)
}

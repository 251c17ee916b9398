package pipeline

import (
	"strings"

	"fbcw-data-service/internal/domain"
)

// AliasRule resolves one ambiguous manager nickname to a distinct identity.
// Two league members have shared the same Yahoo nickname in different eras,
// so the raw name alone cannot identify a career.
type AliasRule struct {
	Nickname  string
	FromYear  int // inclusive, 0 = open
	ToYear    int // inclusive, 0 = open
	TeamKey   string
	KeySuffix string
	NamePart  string // substring match on the team name
	Resolved  string
}

// Overrides carries the league-specific identity fixes applied before the
// manager fold: nickname disambiguation and historical rank corrections.
type Overrides struct {
	Aliases []AliasRule
	// Ranks maps year -> manager -> corrected rank, for seasons where the
	// recorded standings disagree with the actual playoff outcome.
	Ranks map[int]map[string]int
}

// DefaultOverrides returns the FBCW identity tables: the two Logans, the two
// Joshes, and the 2019 playoff result correction.
func DefaultOverrides() Overrides {
	return Overrides{
		Aliases: []AliasRule{
			{Nickname: "Logan", FromYear: 2023, ToYear: 2023, TeamKey: "422.l.6780.t.4", Resolved: "Logan C"},
			{Nickname: "Logan", FromYear: 2023, ToYear: 2023, TeamKey: "422.l.6780.t.12", Resolved: "Logan S"},
			{Nickname: "Logan", FromYear: 2023, ToYear: 2023, NamePart: "Draft Pool", Resolved: "Logan C"},
			{Nickname: "Logan", FromYear: 2023, ToYear: 2023, NamePart: "Peanut Butter", Resolved: "Logan S"},
			{Nickname: "Logan", FromYear: 2023, ToYear: 2023, NamePart: "Elly", Resolved: "Logan S"},
			{Nickname: "Logan", FromYear: 2020, ToYear: 2022, Resolved: "Logan C"},
			{Nickname: "Logan", FromYear: 2024, Resolved: "Logan S"},
			{Nickname: "Josh", FromYear: 2019, ToYear: 2022, KeySuffix: "t.1", Resolved: "Josh B"},
			{Nickname: "Josh", FromYear: 2019, ToYear: 2022, Resolved: "Josh S"},
			{Nickname: "Josh", FromYear: 2023, KeySuffix: "t.1", Resolved: "Josh B"},
		},
		Ranks: map[int]map[string]int{
			2019: {"Ryan": 1, "Rich": 2, "Tyler": 3},
		},
	}
}

// Resolve returns the distinct manager identity for a team. Rules are
// checked in order; the first match wins, and an unmatched name passes
// through unchanged, so applying the table twice is harmless.
func (o Overrides) Resolve(year int, teamKey, teamName, manager string) string {
	for _, rule := range o.Aliases {
		if rule.Nickname != manager {
			continue
		}
		if rule.FromYear != 0 && year < rule.FromYear {
			continue
		}
		if rule.ToYear != 0 && year > rule.ToYear {
			continue
		}
		if rule.TeamKey != "" && rule.TeamKey != teamKey {
			continue
		}
		if rule.KeySuffix != "" && !strings.HasSuffix(teamKey, rule.KeySuffix) {
			continue
		}
		if rule.NamePart != "" && !strings.Contains(teamName, rule.NamePart) {
			continue
		}
		return rule.Resolved
	}
	return manager
}

// ResolveManager resolves one standing line's manager identity.
func (o Overrides) ResolveManager(year int, team domain.TeamStanding) string {
	return o.Resolve(year, team.TeamKey, team.TeamName, team.Manager)
}

// ResolveStandings rewrites ambiguous nicknames in place so the season's
// materialized standings carry distinct identities.
func (o Overrides) ResolveStandings(year int, standings []domain.TeamStanding) {
	for i := range standings {
		standings[i].Manager = o.ResolveManager(year, standings[i])
	}
}

// ResolveTeams rewrites ambiguous nicknames across a season's team metadata.
func (o Overrides) ResolveTeams(year int, teams []domain.TeamInfo) {
	for i := range teams {
		teams[i].Manager = o.Resolve(year, teams[i].TeamKey, teams[i].TeamName, teams[i].Manager)
	}
}

// ResolveRosters rewrites ambiguous nicknames across a season's rosters so
// player stat files attribute players to the right manager.
func (o Overrides) ResolveRosters(year int, rosters map[string][]domain.RosterSlot) {
	for _, slots := range rosters {
		for i := range slots {
			slots[i].Manager = o.Resolve(year, slots[i].TeamKey, slots[i].TeamName, slots[i].Manager)
		}
	}
}

// CorrectRanks applies the per-season rank corrections and returns standings
// re-sorted by the corrected rank. Seasons without corrections are returned
// as-is.
func (o Overrides) CorrectRanks(year int, standings []domain.TeamStanding) []domain.TeamStanding {
	fixes, ok := o.Ranks[year]
	if !ok {
		return standings
	}
	corrected := append([]domain.TeamStanding(nil), standings...)
	for i := range corrected {
		if rank, ok := fixes[corrected[i].Manager]; ok {
			corrected[i].Rank = rank
		}
	}
	sortByRank(corrected)
	return corrected
}

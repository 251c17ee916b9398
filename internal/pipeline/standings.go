// Package pipeline folds normalized season records into the aggregated
// structures the site serves: season standings, manager careers, and player
// career histories.
package pipeline

import (
	"sort"

	"fbcw-data-service/internal/domain"
)

// Rank policies. The upstream rank field reflects the regular season only,
// so by default ranks are recomputed from the season results.
const (
	RankPolicyPoints = "points" // points-for desc, then wins, then name
	RankPolicyRecord = "record" // wins desc, then points-for, then name
	RankPolicySource = "source" // keep the upstream rank when present
)

// Rank returns a copy of standings ordered and numbered 1..N under the given
// policy. Unknown policies fall back to the points policy.
func Rank(standings []domain.TeamStanding, policy string) []domain.TeamStanding {
	ranked := append([]domain.TeamStanding(nil), standings...)

	switch policy {
	case RankPolicySource:
		if allRanked(ranked) {
			sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Rank < ranked[j].Rank })
			return ranked
		}
		fallthrough
	case RankPolicyPoints:
		sort.SliceStable(ranked, func(i, j int) bool {
			a, b := ranked[i], ranked[j]
			if a.PointsFor != b.PointsFor {
				return a.PointsFor > b.PointsFor
			}
			if a.Wins != b.Wins {
				return a.Wins > b.Wins
			}
			return a.TeamName < b.TeamName
		})
	case RankPolicyRecord:
		sort.SliceStable(ranked, func(i, j int) bool {
			a, b := ranked[i], ranked[j]
			if a.Wins != b.Wins {
				return a.Wins > b.Wins
			}
			if a.PointsFor != b.PointsFor {
				return a.PointsFor > b.PointsFor
			}
			return a.TeamName < b.TeamName
		})
	default:
		return Rank(standings, RankPolicyPoints)
	}

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

func allRanked(standings []domain.TeamStanding) bool {
	for _, s := range standings {
		if s.Rank <= 0 {
			return false
		}
	}
	return len(standings) > 0
}

// Package names normalizes manager and player names so records from the
// fantasy API and the stats source can be keyed and matched consistently.
package names

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleCaser       = cases.Title(language.English)
	positionTagRe    = regexp.MustCompile(`(?i)\s*\((batter|pitcher)\)`)
	generationSuffix = regexp.MustCompile(`(?i)\s+(jr\.?|sr\.?|ii|iii|iv)$`)
)

// Upstream nicknames sometimes carry accents the stats source drops.
var accentFold = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"ñ", "n", "ü", "u",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U",
	"Ñ", "N", "Ü", "U",
)

// Manager normalizes a raw manager nickname to a stable display form.
func Manager(raw string) string {
	return titleCaser.String(strings.TrimSpace(raw))
}

// Player normalizes a player name into the canonical matching key:
// position tags removed, accents folded, whitespace collapsed, lowercased.
func Player(raw string) string {
	if raw == "" {
		return ""
	}
	name := positionTagRe.ReplaceAllString(raw, "")
	name = accentFold.Replace(name)
	name = strings.Join(strings.Fields(name), " ")
	return strings.ToLower(strings.TrimSpace(name))
}

// MatchPlayer finds the candidate name that refers to the same player as
// target, or "" if none matches. Matching tiers: exact normalized name,
// name without a generation suffix, then last name plus first initial.
func MatchPlayer(target string, candidates []string) string {
	normalized := Player(target)
	if normalized == "" {
		return ""
	}

	for _, c := range candidates {
		if Player(c) == normalized {
			return c
		}
	}

	noSuffix := generationSuffix.ReplaceAllString(normalized, "")
	for _, c := range candidates {
		if generationSuffix.ReplaceAllString(Player(c), "") == noSuffix {
			return c
		}
	}

	last, initial, ok := lastAndInitial(normalized)
	if !ok {
		return ""
	}
	for _, c := range candidates {
		cLast, cInitial, cok := lastAndInitial(Player(c))
		if cok && cLast == last && cInitial == initial {
			return c
		}
	}
	return ""
}

func lastAndInitial(normalized string) (last string, initial byte, ok bool) {
	parts := strings.Fields(normalized)
	if len(parts) < 2 || parts[0] == "" {
		return "", 0, false
	}
	return strings.TrimRight(parts[len(parts)-1], "."), parts[0][0], true
}

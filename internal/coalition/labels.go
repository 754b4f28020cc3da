package coalition

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// foldCaser is a package-level Unicode case folder for performance.
// This avoids creating a new caser for each lookup.
var foldCaser = cases.Fold()

// ResolveGroupLabel maps a free-text group name (e.g. from a report query)
// to a group ID. Matching is case-folded: an exact folded match wins
// outright, otherwise the closest label by Levenshtein distance is chosen,
// provided the distance stays within a third of the query's rune length
// (minimum 1 edit). Ties resolve to the lowest group ID so lookups are
// deterministic.
//
// The second return value is false when no label matches within budget.
func ResolveGroupLabel(labels []string, query string) (int, bool) {
	if len(labels) == 0 || query == "" {
		return 0, false
	}

	foldedQuery := foldCaser.String(query)
	for id, label := range labels {
		if foldCaser.String(label) == foldedQuery {
			return id, true
		}
	}

	// The levenshtein library operates on runes, so the edit budget uses
	// rune count for Unicode correctness.
	budget := utf8.RuneCountInString(query) / 3
	if budget < 1 {
		budget = 1
	}

	bestID := -1
	bestDistance := budget + 1
	for id, label := range labels {
		distance := levenshtein.ComputeDistance(foldedQuery, foldCaser.String(label))
		if distance < bestDistance {
			bestDistance = distance
			bestID = id
		}
	}

	if bestID < 0 {
		return 0, false
	}
	return bestID, true
}

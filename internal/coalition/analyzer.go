// Package coalition computes pairwise alignment statistics between opinion
// groups from per-statement aggregated agreement scores: which groups vote
// together, which oppose each other, and how polarized the poll is overall.
//
// Every function is stateless and deterministic over caller-owned
// snapshots; concurrent invocation needs no locking.
package coalition

import (
	"fmt"
	"math"
	"sort"

	"github.com/ahrav/go-agora/internal/domain"
)

// AgreementThreshold is the absolute normalized-score cutoff on the
// -100..+100 scale. A group's position on a statement is decisive only
// when its normalized score exceeds this magnitude; anything at or below
// it is neutral.
const AgreementThreshold = 60.0

// maxStrongestCoalitions bounds the strongest-coalitions prefix.
const maxStrongestCoalitions = 3

// Analyze computes the full pairwise alignment table for numGroups opinion
// groups over the given statements.
//
// For every unordered pair (i, j), each statement where both groups have a
// score is classified as neutral (either normalized score within the
// agreement threshold), agreement (both decisive with the same sign), or
// disagreement (both decisive with opposite signs). Statements missing a
// score for either group are excluded from that pair's tally entirely, but
// still count in the alignment-percentage denominator.
//
// Scores may arrive on either the [0, 1] or the [-100, 100] scale, one
// convention per call: values inside [0, 1] are mapped via (s - 0.5) * 200,
// everything else is taken as already normalized.
//
// The resulting table is sorted by alignment percentage descending, ties
// broken by agreement count descending; StrongestCoalitions is the first
// three entries of that ordering (fewer when numGroups yields fewer pairs).
//
// Labels supplies display names per group ID; missing or empty entries
// default to "Group {id+1}". A negative numGroups or a non-finite score is
// a contract violation and fails fast with a domain input error.
func Analyze(statements []domain.StatementScores, numGroups int, labels []string) (domain.CoalitionAnalysis, error) {
	if numGroups < 0 {
		return domain.CoalitionAnalysis{}, domain.NewInputError("num_groups", "analyze", domain.ErrInvalidGroupCount)
	}
	for si, stmt := range statements {
		for gid, score := range stmt.GroupScores {
			if math.IsNaN(score) || math.IsInf(score, 0) {
				field := fmt.Sprintf("statements[%d].group_scores[%d]", si, gid)
				return domain.CoalitionAnalysis{}, domain.NewInputError(field, "analyze", domain.ErrNonFiniteScore)
			}
		}
	}

	totalStatements := len(statements)
	pairs := make([]domain.PairwiseAlignment, 0, numGroups*(numGroups-1)/2)

	for i := 0; i < numGroups; i++ {
		for j := i + 1; j < numGroups; j++ {
			pair := domain.PairwiseAlignment{
				GroupA: i,
				GroupB: j,
				LabelA: groupLabel(labels, i),
				LabelB: groupLabel(labels, j),
			}

			for _, stmt := range statements {
				scoreA, okA := stmt.GroupScores[i]
				scoreB, okB := stmt.GroupScores[j]
				if !okA || !okB {
					continue
				}

				normA := normalizeScore(scoreA)
				normB := normalizeScore(scoreB)

				switch {
				case math.Abs(normA) <= AgreementThreshold || math.Abs(normB) <= AgreementThreshold:
					pair.NeutralCount++
				case (normA > AgreementThreshold) == (normB > AgreementThreshold):
					pair.AgreementCount++
				default:
					pair.DisagreementCount++
				}
			}

			if totalStatements > 0 {
				pair.AlignmentPercentage = int(math.Round(float64(pair.AgreementCount) / float64(totalStatements) * 100))
			}
			pairs = append(pairs, pair)
		}
	}

	// Stable sort keeps pair enumeration order for full ties, so output is
	// reproducible across runs.
	sort.SliceStable(pairs, func(a, b int) bool {
		if pairs[a].AlignmentPercentage != pairs[b].AlignmentPercentage {
			return pairs[a].AlignmentPercentage > pairs[b].AlignmentPercentage
		}
		return pairs[a].AgreementCount > pairs[b].AgreementCount
	})

	strongest := pairs
	if len(strongest) > maxStrongestCoalitions {
		strongest = strongest[:maxStrongestCoalitions]
	}

	return domain.CoalitionAnalysis{
		PairwiseAlignments:  pairs,
		StrongestCoalitions: strongest,
	}, nil
}

// normalizeScore maps a raw score onto the -100..+100 scale. Values inside
// [0, 1] are treated as the fractional convention; everything else is
// assumed to be normalized already.
func normalizeScore(score float64) float64 {
	if score >= 0 && score <= 1 {
		return (score - 0.5) * 200
	}
	return score
}

// groupLabel returns the display label for a group, defaulting to
// "Group {id+1}" when none was supplied.
func groupLabel(labels []string, id int) string {
	if id < len(labels) && labels[id] != "" {
		return labels[id]
	}
	return fmt.Sprintf("Group %d", id+1)
}

// StrongestCoalition returns the single strongest coalition, or nil when
// the analysis has no pairs.
func StrongestCoalition(analysis domain.CoalitionAnalysis) *domain.PairwiseAlignment {
	if len(analysis.StrongestCoalitions) == 0 {
		return nil
	}
	top := analysis.StrongestCoalitions[0]
	return &top
}

// IsStrongCoalition reports whether the pair covering the two groups, in
// either order, aligns on more than half of all statements. Absent pairs
// are not strong.
func IsStrongCoalition(analysis domain.CoalitionAnalysis, group1, group2 int) bool {
	for _, pair := range analysis.PairwiseAlignments {
		if pair.Involves(group1, group2) {
			return pair.AlignmentPercentage > 50
		}
	}
	return false
}

// CoalitionsAboveThreshold filters the alignment table down to pairs with
// an alignment percentage of at least minAlignment, preserving order.
func CoalitionsAboveThreshold(analysis domain.CoalitionAnalysis, minAlignment int) []domain.PairwiseAlignment {
	filtered := make([]domain.PairwiseAlignment, 0, len(analysis.PairwiseAlignments))
	for _, pair := range analysis.PairwiseAlignments {
		if pair.AlignmentPercentage >= minAlignment {
			filtered = append(filtered, pair)
		}
	}
	return filtered
}

// PolarizationLevel derives a 0-100 score for how often groups disagree
// rather than align. An empty analysis scores 0.
//
// The denominator approximates "statements per pair" from the first pair's
// classified-statement total alone rather than averaging across all pairs.
// That is the metric consumers already calibrate against, so it is kept
// as is; do not rework it without the metric's owner signing off.
func PolarizationLevel(analysis domain.CoalitionAnalysis) int {
	numPairs := len(analysis.PairwiseAlignments)
	if numPairs == 0 {
		return 0
	}

	totalDisagreements := 0
	for _, pair := range analysis.PairwiseAlignments {
		totalDisagreements += pair.DisagreementCount
	}

	first := analysis.PairwiseAlignments[0]
	statementsPerPair := first.AgreementCount + first.DisagreementCount + first.NeutralCount
	if statementsPerPair == 0 {
		statementsPerPair = 1
	}

	return int(math.Round(float64(totalDisagreements) / float64(numPairs*statementsPerPair) * 100))
}

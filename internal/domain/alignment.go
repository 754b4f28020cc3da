package domain

// StatementScores carries the aggregated per-group agreement scores for a
// single statement, as produced by the upstream vote-aggregation stage.
// GroupScores maps dense group IDs (0..numGroups-1) to a score on a single
// consistent scale for the whole call: either [0, 1] or [-100, 100], never
// mixed. Groups may be absent for a statement; absent entries exclude the
// statement from every pair involving that group.
type StatementScores struct {
	// StatementID identifies the statement within its poll.
	StatementID string `json:"statement_id"`

	// GroupScores maps group ID to that group's aggregated agreement score.
	GroupScores map[int]float64 `json:"group_scores"`
}

// PairwiseAlignment describes how strongly two opinion groups align across
// all statements of a poll. Counts classify each statement where both
// groups have a score; statements with a missing score for either group are
// excluded entirely and do not appear in any counter.
//
// Invariant: AgreementCount + DisagreementCount + NeutralCount is at most
// the total statement count of the analysis.
type PairwiseAlignment struct {
	// GroupA and GroupB identify the pair, with GroupA < GroupB.
	GroupA int `json:"group_a"`
	GroupB int `json:"group_b"`

	// LabelA and LabelB are the display labels for the two groups.
	LabelA string `json:"label_a"`
	LabelB string `json:"label_b"`

	// AgreementCount is the number of statements where both groups took the
	// same decisive position (both above or both below the threshold).
	AgreementCount int `json:"agreement_count"`

	// DisagreementCount is the number of statements where the groups took
	// opposite decisive positions.
	DisagreementCount int `json:"disagreement_count"`

	// NeutralCount is the number of statements where at least one group's
	// normalized score fell inside the neutral band.
	NeutralCount int `json:"neutral_count"`

	// AlignmentPercentage is round(AgreementCount / totalStatements * 100),
	// where totalStatements is the full input statement count, including
	// statements skipped for missing data.
	AlignmentPercentage int `json:"alignment_percentage"`
}

// Involves reports whether this pair covers the two given groups,
// independent of order.
func (pa PairwiseAlignment) Involves(g1, g2 int) bool {
	return (pa.GroupA == g1 && pa.GroupB == g2) ||
		(pa.GroupA == g2 && pa.GroupB == g1)
}

// CoalitionAnalysis is the full pairwise alignment table for a poll.
// PairwiseAlignments is sorted by AlignmentPercentage descending, ties
// broken by AgreementCount descending. StrongestCoalitions is a prefix of
// that ordering with at most three entries.
type CoalitionAnalysis struct {
	PairwiseAlignments  []PairwiseAlignment `json:"pairwise_alignments"`
	StrongestCoalitions []PairwiseAlignment `json:"strongest_coalitions"`
}

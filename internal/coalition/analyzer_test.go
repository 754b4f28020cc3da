package coalition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-agora/internal/domain"
)

// scores builds a StatementScores record with dense group IDs 0..n-1.
func scores(id string, values ...float64) domain.StatementScores {
	gs := make(map[int]float64, len(values))
	for g, v := range values {
		gs[g] = v
	}
	return domain.StatementScores{StatementID: id, GroupScores: gs}
}

// TestAnalyze_PairCount verifies the table has exactly n*(n-1)/2 entries.
func TestAnalyze_PairCount(t *testing.T) {
	tests := []struct {
		numGroups int
		expected  int
	}{
		{numGroups: 0, expected: 0},
		{numGroups: 1, expected: 0},
		{numGroups: 2, expected: 1},
		{numGroups: 3, expected: 3},
		{numGroups: 5, expected: 10},
		{numGroups: 10, expected: 45},
	}

	for _, tt := range tests {
		analysis, err := Analyze(nil, tt.numGroups, nil)
		require.NoError(t, err)
		assert.Len(t, analysis.PairwiseAlignments, tt.expected, "numGroups=%d", tt.numGroups)
	}
}

// TestAnalyze_FullAgreement verifies two groups decisively on the same
// side of every statement align at 100 percent.
func TestAnalyze_FullAgreement(t *testing.T) {
	statements := []domain.StatementScores{
		scores("s1", 80, 75),
		scores("s2", -90, -70),
		scores("s3", 65, 99),
	}

	analysis, err := Analyze(statements, 2, nil)
	require.NoError(t, err)
	require.Len(t, analysis.PairwiseAlignments, 1)

	pair := analysis.PairwiseAlignments[0]
	assert.Equal(t, 3, pair.AgreementCount)
	assert.Equal(t, 0, pair.DisagreementCount)
	assert.Equal(t, 0, pair.NeutralCount)
	assert.Equal(t, 100, pair.AlignmentPercentage)
}

// TestAnalyze_FullDisagreement verifies opposite decisive positions on
// every statement count as pure disagreement.
func TestAnalyze_FullDisagreement(t *testing.T) {
	statements := []domain.StatementScores{
		scores("s1", 80, -75),
		scores("s2", -90, 70),
	}

	analysis, err := Analyze(statements, 2, nil)
	require.NoError(t, err)

	pair := analysis.PairwiseAlignments[0]
	assert.Equal(t, 0, pair.AgreementCount)
	assert.Equal(t, 2, pair.DisagreementCount)
	assert.Equal(t, 0, pair.NeutralCount)
	assert.Equal(t, 0, pair.AlignmentPercentage)
}

// TestAnalyze_NeutralBeforeSign verifies the classification order: any
// score within the threshold is neutral even when the other group is
// decisive, and the threshold itself (exactly 60) is not decisive.
func TestAnalyze_NeutralBeforeSign(t *testing.T) {
	statements := []domain.StatementScores{
		scores("s1", 10, 95),
		scores("s2", 60, 90),
		scores("s3", -60, -90),
	}

	analysis, err := Analyze(statements, 2, nil)
	require.NoError(t, err)

	pair := analysis.PairwiseAlignments[0]
	assert.Equal(t, 3, pair.NeutralCount)
	assert.Equal(t, 0, pair.AgreementCount)
	assert.Equal(t, 0, pair.DisagreementCount)
}

// TestAnalyze_FractionalScale verifies [0,1] scores map through
// (s - 0.5) * 200 before classification.
func TestAnalyze_FractionalScale(t *testing.T) {
	statements := []domain.StatementScores{
		scores("s1", 0.95, 0.9), // -> 90, 80: agreement
		scores("s2", 0.1, 0.85), // -> -80, 70: disagreement
		scores("s3", 0.5, 0.99), // -> 0, 98: neutral
	}

	analysis, err := Analyze(statements, 2, nil)
	require.NoError(t, err)

	pair := analysis.PairwiseAlignments[0]
	assert.Equal(t, 1, pair.AgreementCount)
	assert.Equal(t, 1, pair.DisagreementCount)
	assert.Equal(t, 1, pair.NeutralCount)
	assert.Equal(t, 33, pair.AlignmentPercentage) // round(1/3*100)
}

// TestAnalyze_MissingScores verifies statements lacking a score for either
// group are excluded from the tally but still count in the percentage
// denominator.
func TestAnalyze_MissingScores(t *testing.T) {
	statements := []domain.StatementScores{
		scores("s1", 80, 75),
		{StatementID: "s2", GroupScores: map[int]float64{0: 90}},
		{StatementID: "s3", GroupScores: map[int]float64{1: -90}},
		{StatementID: "s4", GroupScores: map[int]float64{}},
	}

	analysis, err := Analyze(statements, 2, nil)
	require.NoError(t, err)

	pair := analysis.PairwiseAlignments[0]
	assert.Equal(t, 1, pair.AgreementCount)
	assert.Equal(t, 0, pair.DisagreementCount)
	assert.Equal(t, 0, pair.NeutralCount)
	// Denominator is all four statements, not just the one counted.
	assert.Equal(t, 25, pair.AlignmentPercentage)
	assert.LessOrEqual(t,
		pair.AgreementCount+pair.DisagreementCount+pair.NeutralCount, len(statements))
}

// TestAnalyze_EndToEnd reproduces the three-group scenario: one strong
// pair at 50 percent, two opposed pairs, and the approximate polarization
// formula over the sorted table.
func TestAnalyze_EndToEnd(t *testing.T) {
	statements := []domain.StatementScores{
		scores("s1", 80, 75, -90),
		scores("s2", 10, -70, 70),
	}

	analysis, err := Analyze(statements, 3, nil)
	require.NoError(t, err)
	require.Len(t, analysis.PairwiseAlignments, 3)

	top := analysis.PairwiseAlignments[0]
	assert.Equal(t, 0, top.GroupA)
	assert.Equal(t, 1, top.GroupB)
	assert.Equal(t, 1, top.AgreementCount)
	assert.Equal(t, 1, top.NeutralCount)
	assert.Equal(t, 0, top.DisagreementCount)
	assert.Equal(t, 50, top.AlignmentPercentage)

	// Remaining pairs tie at 0 percent with equal agreement counts; the
	// stable sort preserves enumeration order.
	assert.Equal(t, [2]int{0, 2}, [2]int{analysis.PairwiseAlignments[1].GroupA, analysis.PairwiseAlignments[1].GroupB})
	assert.Equal(t, [2]int{1, 2}, [2]int{analysis.PairwiseAlignments[2].GroupA, analysis.PairwiseAlignments[2].GroupB})

	// totalDisagreements=3, first pair classifies 2 statements, 3 pairs:
	// round(3 / (3*2) * 100) = 50.
	assert.Equal(t, 50, PolarizationLevel(analysis))
}

// TestAnalyze_SortAndStrongestPrefix verifies descending sort with
// agreement-count tie-break and the three-entry strongest prefix.
func TestAnalyze_SortAndStrongestPrefix(t *testing.T) {
	// Four groups: bloc {0,1,2} always agrees, group 3 always opposes.
	statements := []domain.StatementScores{
		scores("s1", 80, 75, 90, -95),
		scores("s2", -70, -82, -66, 88),
		scores("s3", 91, 64, 77, -61),
	}

	analysis, err := Analyze(statements, 4, nil)
	require.NoError(t, err)
	require.Len(t, analysis.PairwiseAlignments, 6)

	for i := 1; i < len(analysis.PairwiseAlignments); i++ {
		prev, cur := analysis.PairwiseAlignments[i-1], analysis.PairwiseAlignments[i]
		if prev.AlignmentPercentage == cur.AlignmentPercentage {
			assert.GreaterOrEqual(t, prev.AgreementCount, cur.AgreementCount)
			continue
		}
		assert.Greater(t, prev.AlignmentPercentage, cur.AlignmentPercentage)
	}

	require.Len(t, analysis.StrongestCoalitions, 3)
	assert.Equal(t, analysis.PairwiseAlignments[:3], analysis.StrongestCoalitions)
	for _, pair := range analysis.StrongestCoalitions {
		assert.Equal(t, 100, pair.AlignmentPercentage)
		assert.True(t, pair.GroupA < 3 && pair.GroupB < 3, "strongest pairs come from the bloc")
	}
}

// TestAnalyze_Labels verifies supplied labels are carried through and
// missing ones default to "Group {i+1}".
func TestAnalyze_Labels(t *testing.T) {
	analysis, err := Analyze(nil, 3, []string{"Urban", ""})
	require.NoError(t, err)
	require.Len(t, analysis.PairwiseAlignments, 3)

	byPair := map[[2]int][2]string{}
	for _, pair := range analysis.PairwiseAlignments {
		byPair[[2]int{pair.GroupA, pair.GroupB}] = [2]string{pair.LabelA, pair.LabelB}
	}
	assert.Equal(t, [2]string{"Urban", "Group 2"}, byPair[[2]int{0, 1}])
	assert.Equal(t, [2]string{"Urban", "Group 3"}, byPair[[2]int{0, 2}])
	assert.Equal(t, [2]string{"Group 2", "Group 3"}, byPair[[2]int{1, 2}])
}

// TestAnalyze_InvalidInput verifies contract violations fail fast with
// the domain sentinels.
func TestAnalyze_InvalidInput(t *testing.T) {
	_, err := Analyze(nil, -1, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidGroupCount)

	_, err = Analyze([]domain.StatementScores{scores("s1", math.NaN(), 80)}, 2, nil)
	assert.ErrorIs(t, err, domain.ErrNonFiniteScore)

	_, err = Analyze([]domain.StatementScores{scores("s1", math.Inf(1), 80)}, 2, nil)
	assert.ErrorIs(t, err, domain.ErrNonFiniteScore)
}

// TestStrongestCoalition covers the nil-on-empty contract.
func TestStrongestCoalition(t *testing.T) {
	empty, err := Analyze(nil, 1, nil)
	require.NoError(t, err)
	assert.Nil(t, StrongestCoalition(empty))

	analysis, err := Analyze([]domain.StatementScores{scores("s1", 80, 75)}, 2, nil)
	require.NoError(t, err)
	top := StrongestCoalition(analysis)
	require.NotNil(t, top)
	assert.Equal(t, 100, top.AlignmentPercentage)
}

// TestIsStrongCoalition verifies the strict >50 cutoff, order
// independence, and the absent-pair case.
func TestIsStrongCoalition(t *testing.T) {
	statements := []domain.StatementScores{
		scores("s1", 80, 75, -90),
		scores("s2", 70, 82, -66),
	}
	analysis, err := Analyze(statements, 3, nil)
	require.NoError(t, err)

	assert.True(t, IsStrongCoalition(analysis, 0, 1))
	assert.True(t, IsStrongCoalition(analysis, 1, 0), "lookup must be order independent")
	assert.False(t, IsStrongCoalition(analysis, 0, 2))
	assert.False(t, IsStrongCoalition(analysis, 0, 7), "absent pair is not strong")

	// Exactly 50 percent is not strong.
	half, err := Analyze([]domain.StatementScores{
		scores("h1", 80, 75),
		scores("h2", 10, 75),
	}, 2, nil)
	require.NoError(t, err)
	require.Equal(t, 50, half.PairwiseAlignments[0].AlignmentPercentage)
	assert.False(t, IsStrongCoalition(half, 0, 1))
}

// TestCoalitionsAboveThreshold verifies the inclusive filter preserves
// sort order.
func TestCoalitionsAboveThreshold(t *testing.T) {
	statements := []domain.StatementScores{
		scores("s1", 80, 75, -90),
		scores("s2", 70, 82, -66),
	}
	analysis, err := Analyze(statements, 3, nil)
	require.NoError(t, err)

	all := CoalitionsAboveThreshold(analysis, 0)
	assert.Equal(t, analysis.PairwiseAlignments, all)

	strong := CoalitionsAboveThreshold(analysis, 100)
	require.Len(t, strong, 1)
	assert.Equal(t, 0, strong[0].GroupA)
	assert.Equal(t, 1, strong[0].GroupB)

	assert.Empty(t, CoalitionsAboveThreshold(analysis, 101))
}

// TestPolarizationLevel covers the empty case and the zero-classified
// first-pair fallback.
func TestPolarizationLevel(t *testing.T) {
	empty, err := Analyze(nil, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, PolarizationLevel(empty))

	// No statements at all: every pair classifies zero statements, the
	// denominator falls back to 1, and no disagreements exist.
	noData, err := Analyze(nil, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, PolarizationLevel(noData))
}

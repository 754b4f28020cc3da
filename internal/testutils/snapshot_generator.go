// Package testutils provides utilities for testing, including synthetic
// poll snapshots and test data generators. These components are intended
// for internal use within the project's test suites and are not part of
// the public API.
package testutils

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/ahrav/go-agora/internal/domain"
)

// PollSnapshot is a self-contained synthetic poll: projected cluster point
// clouds plus a statement/group score matrix with a known coalition
// structure. It is the JSON input format of the generate_landscape command
// and of integration tests.
type PollSnapshot struct {
	PollID     string                    `json:"poll_id"`
	NumGroups  int                       `json:"num_groups"`
	Labels     []string                  `json:"labels"`
	Clusters   map[string][]domain.Point `json:"clusters"`
	Statements []domain.StatementScores  `json:"statements"`
}

// SnapshotSpec controls synthetic snapshot generation.
type SnapshotSpec struct {
	// NumGroups is the number of opinion groups (and clusters).
	NumGroups int

	// PointsPerCluster is the cluster size; degenerate sizes (0, 1, 2) are
	// legitimate and exercise the fallback-radius path.
	PointsPerCluster int

	// NumStatements is the statement count of the score matrix.
	NumStatements int

	// Blocs partitions group IDs into voting blocs. Groups sharing a bloc
	// get same-sign decisive scores; groups in different blocs oppose each
	// other. A nil value puts every group in its own bloc.
	Blocs [][]int

	// MissingScoreRate is the probability that a group's score is absent
	// for a statement, exercising the pair-skip path.
	MissingScoreRate float64
}

// GenerateSnapshot creates a synthetic poll snapshot. The seed controls
// randomization - use time.Now().UnixNano() for non-deterministic
// generation or a fixed value for reproducible tests.
func GenerateSnapshot(spec SnapshotSpec, seed int64) *PollSnapshot {
	rng := rand.New(rand.NewSource(seed))

	snapshot := &PollSnapshot{
		PollID:    fmt.Sprintf("synthetic-%d", seed),
		NumGroups: spec.NumGroups,
		Labels:    make([]string, 0, spec.NumGroups),
		Clusters:  make(map[string][]domain.Point, spec.NumGroups),
	}

	blocByGroup := blocAssignment(spec)

	for g := 0; g < spec.NumGroups; g++ {
		snapshot.Labels = append(snapshot.Labels, fmt.Sprintf("Bloc %c", 'A'+blocByGroup[g]))

		// Spread cluster centers on a circle so hulls rarely overlap.
		angle := 2 * math.Pi * float64(g) / float64(spec.NumGroups)
		center := domain.Point{X: 400 * math.Cos(angle), Y: 400 * math.Sin(angle)}
		clusterID := fmt.Sprintf("cluster-%d", g)
		snapshot.Clusters[clusterID] = gaussianCloud(rng, center, 60, spec.PointsPerCluster)
	}

	for s := 0; s < spec.NumStatements; s++ {
		stmt := domain.StatementScores{
			StatementID: fmt.Sprintf("stmt-%d", s),
			GroupScores: make(map[int]float64, spec.NumGroups),
		}
		// Each statement flips a coin for its polarity; even blocs take
		// that side, odd blocs the opposite, so intra-bloc pairs agree
		// and cross-bloc pairs oppose with decisive magnitudes.
		polarity := 1.0
		if rng.Intn(2) == 1 {
			polarity = -1
		}
		for g := 0; g < spec.NumGroups; g++ {
			if rng.Float64() < spec.MissingScoreRate {
				continue
			}
			side := polarity
			if blocByGroup[g]%2 == 1 {
				side = -polarity
			}
			stmt.GroupScores[g] = side * (70 + rng.Float64()*25)
		}
		snapshot.Statements = append(snapshot.Statements, stmt)
	}

	return snapshot
}

// GenerateSnapshotDefault creates a snapshot with a time-based seed.
func GenerateSnapshotDefault(spec SnapshotSpec) *PollSnapshot {
	return GenerateSnapshot(spec, time.Now().UnixNano())
}

// blocAssignment maps each group ID to its bloc index.
func blocAssignment(spec SnapshotSpec) map[int]int {
	assignment := make(map[int]int, spec.NumGroups)
	if len(spec.Blocs) == 0 {
		for g := 0; g < spec.NumGroups; g++ {
			assignment[g] = g
		}
		return assignment
	}
	for bloc, members := range spec.Blocs {
		for _, g := range members {
			assignment[g] = bloc
		}
	}
	// Groups not named in any bloc each get their own.
	next := len(spec.Blocs)
	for g := 0; g < spec.NumGroups; g++ {
		if _, ok := assignment[g]; !ok {
			assignment[g] = next
			next++
		}
	}
	return assignment
}

// gaussianCloud samples n points normally distributed around center.
func gaussianCloud(rng *rand.Rand, center domain.Point, stddev float64, n int) []domain.Point {
	points := make([]domain.Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, domain.Point{
			X: center.X + rng.NormFloat64()*stddev,
			Y: center.Y + rng.NormFloat64()*stddev,
		})
	}
	return points
}

// SaveSnapshot writes a snapshot to a JSON file, creating parent
// directories as needed.
func SaveSnapshot(snapshot *PollSnapshot, path string) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot reads a snapshot back from a JSON file.
func LoadSnapshot(path string) (*PollSnapshot, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	var snapshot PollSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return &snapshot, nil
}

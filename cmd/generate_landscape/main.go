// Command generate_landscape builds a synthetic poll snapshot (or loads
// one from a JSON file), runs the landscape composer over it, and prints a
// summary of the resulting cluster shapes and coalition analysis. It is a
// development tool for eyeballing engine output, not a public interface.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/ahrav/go-agora/internal/landscape"
	"github.com/ahrav/go-agora/internal/testutils"
)

func main() {
	var (
		snapshotPath = flag.String("snapshot", "", "Load a poll snapshot from this JSON file instead of generating one")
		outputPath   = flag.String("output", "", "Save the (generated) snapshot to this JSON file")
		numGroups    = flag.Int("groups", 4, "Number of opinion groups to generate")
		clusterSize  = flag.Int("cluster-size", 40, "Points per generated cluster")
		statements   = flag.Int("statements", 30, "Statements in the generated score matrix")
		seed         = flag.Int64("seed", time.Now().UnixNano(), "Random seed for snapshot generation")
	)
	flag.Parse()

	var snapshot *testutils.PollSnapshot
	if *snapshotPath != "" {
		var err error
		snapshot, err = testutils.LoadSnapshot(*snapshotPath)
		if err != nil {
			log.Fatalf("Failed to load snapshot: %v", err)
		}
	} else {
		// Two-bloc structure gives the summary something to show: strong
		// intra-bloc coalitions and visible polarization across blocs.
		half := *numGroups / 2
		blocA := make([]int, 0, half)
		blocB := make([]int, 0, *numGroups-half)
		for g := 0; g < *numGroups; g++ {
			if g < half {
				blocA = append(blocA, g)
			} else {
				blocB = append(blocB, g)
			}
		}
		snapshot = testutils.GenerateSnapshot(testutils.SnapshotSpec{
			NumGroups:        *numGroups,
			PointsPerCluster: *clusterSize,
			NumStatements:    *statements,
			Blocs:            [][]int{blocA, blocB},
			MissingScoreRate: 0.05,
		}, *seed)
	}

	if *outputPath != "" {
		if err := testutils.SaveSnapshot(snapshot, *outputPath); err != nil {
			log.Fatalf("Failed to save snapshot: %v", err)
		}
		fmt.Printf("Snapshot saved to %s\n", *outputPath)
	}

	cfg := landscape.DefaultConfig()
	cfg.Labels = snapshot.Labels
	composer, err := landscape.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create composer: %v", err)
	}

	result, err := composer.Compose(context.Background(), snapshot.Clusters, snapshot.Statements, snapshot.NumGroups)
	if err != nil {
		log.Fatalf("Composition failed: %v", err)
	}

	fmt.Printf("Composed landscape for %s:\n", snapshot.PollID)
	fmt.Printf("- Clusters: %d\n", len(result.Shapes))
	for id, shape := range result.Shapes {
		if shape.Boundary != nil {
			fmt.Printf("  %s: hull with %d vertices (%d points)\n", id, len(shape.Boundary.Hull), shape.PointCount)
			continue
		}
		fmt.Printf("  %s: fallback circle r=%.1f at (%.1f, %.1f) (%d points)\n",
			id, float64(shape.FallbackRadius), shape.Centroid.X, shape.Centroid.Y, shape.PointCount)
	}

	fmt.Printf("- Pairwise alignments: %d\n", len(result.Coalitions.PairwiseAlignments))
	for _, pair := range result.Coalitions.StrongestCoalitions {
		fmt.Printf("  %s + %s: %d%% aligned (%d agree / %d disagree / %d neutral)\n",
			pair.LabelA, pair.LabelB, pair.AlignmentPercentage,
			pair.AgreementCount, pair.DisagreementCount, pair.NeutralCount)
	}
	fmt.Printf("- Polarization: %d/100\n", result.Polarization)
}

package landscape

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ahrav/go-agora/internal/coalition"
	"github.com/ahrav/go-agora/internal/domain"
	"github.com/ahrav/go-agora/internal/geometry"
	"github.com/ahrav/go-agora/internal/ports"
)

var _ ports.Composer = (*Composer)(nil)

// Composer implements ports.Composer over the geometry and coalition
// components. It carries only immutable configuration and is safe for
// concurrent use; cross-cutting concerns (tracing, metrics) belong in the
// middleware decorators, not here.
type Composer struct {
	cfg Config
}

// New creates a Composer from the given configuration.
// The configuration is validated using struct tags and is immutable after
// construction.
func New(cfg Config) (*Composer, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
	}
	return &Composer{cfg: cfg}, nil
}

// Compose computes the full opinion landscape for one poll snapshot.
//
// Cluster geometry is independent per cluster, so it fans out on an
// errgroup bounded by MaxConcurrency (or the CPU count). Each cluster
// yields a ClusterShape: a smoothed hull boundary when one can be drawn,
// and always a centroid plus fallback radius for circle rendering.
// The coalition analysis runs once over the whole statement matrix.
//
// Input contracts are enforced here rather than in the leaf components:
// non-finite coordinates and negative group counts fail fast with a
// domain input error. Degenerate clusters are normal results, not errors.
func (c *Composer) Compose(
	ctx context.Context,
	clusters map[string][]domain.Point,
	statements []domain.StatementScores,
	numGroups int,
) (*domain.Landscape, error) {
	if numGroups < 0 {
		return nil, domain.NewInputError("num_groups", "compose", domain.ErrInvalidGroupCount)
	}
	for id, points := range clusters {
		for i, p := range points {
			if !p.IsFinite() {
				field := fmt.Sprintf("clusters[%s][%d]", id, i)
				return nil, domain.NewInputError(field, "compose", domain.ErrNonFiniteCoordinate)
			}
		}
	}

	shapes := make(map[string]domain.ClusterShape, len(clusters))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	limit := c.cfg.MaxConcurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	for id, points := range clusters {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			shape := composeCluster(id, points)
			mu.Lock()
			shapes[id] = shape
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cluster geometry: %w", err)
	}

	analysis, err := coalition.Analyze(statements, numGroups, c.cfg.Labels)
	if err != nil {
		return nil, fmt.Errorf("coalition analysis: %w", err)
	}

	return &domain.Landscape{
		Shapes:       shapes,
		Coalitions:   analysis,
		Polarization: coalition.PolarizationLevel(analysis),
	}, nil
}

// composeCluster builds the renderable shape for one cluster. Centroid and
// fallback radius are always populated so the renderer can draw the
// fallback circle without recomputing anything.
func composeCluster(id string, points []domain.Point) domain.ClusterShape {
	return domain.ClusterShape{
		ClusterID:      id,
		Boundary:       geometry.SmoothedHull(points),
		Centroid:       geometry.Centroid(points),
		FallbackRadius: geometry.EstimateRadius(points),
		PointCount:     len(points),
	}
}

// StrongCoalitions filters an analysis down to the pairs meeting the
// configured MinAlignment floor, for the reporting layer.
func (c *Composer) StrongCoalitions(analysis domain.CoalitionAnalysis) []domain.PairwiseAlignment {
	return coalition.CoalitionsAboveThreshold(analysis, c.cfg.MinAlignment)
}

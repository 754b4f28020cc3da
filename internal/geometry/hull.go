// Package geometry provides the pure computational-geometry routines of the
// opinion-landscape engine: convex hull construction, hull-path smoothing,
// and fallback radius estimation for degenerate clusters.
//
// Every function is stateless and side-effect free. Degenerate input (too
// few points, collinear sets) degrades to an empty or fallback result, never
// an error; only the composition boundary enforces input contracts.
package geometry

import (
	"math"
	"sort"

	"github.com/ahrav/go-agora/internal/domain"
)

// IsCounterClockwise reports whether the triple (a, b, c) forms a strict
// counter-clockwise turn, using the 2D cross product
// (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X) > 0.
// Collinear triples (zero cross product) are not counter-clockwise.
func IsCounterClockwise(a, b, c domain.Point) bool {
	return crossProduct(a, b, c) > 0
}

// crossProduct returns the z-component of (b-a) x (c-a).
func crossProduct(a, b, c domain.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// squaredDistance avoids the sqrt when only relative order matters.
func squaredDistance(a, b domain.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// ConvexHull computes the convex hull of a point set using a Graham scan.
//
// The anchor is the point with minimum Y, ties broken by minimum X. The
// remaining points are sorted by polar angle from the anchor ascending,
// ties broken by ascending squared distance; both comparisons are explicit
// so hull output is reproducible across platforms. The scan keeps a stack
// and pops while the last two stacked points and the candidate do not form
// a strict counter-clockwise turn, which also removes collinear vertices
// and duplicate points.
//
// Fewer than three input points, or a fully collinear set, yields an empty
// hull: a degenerate line encloses no renderable region. Otherwise the
// result has at least three vertices in counter-clockwise order starting
// at the anchor. Complexity is O(n log n), dominated by the sort.
func ConvexHull(points []domain.Point) domain.ConvexHull {
	if len(points) < 3 {
		return nil
	}

	pts := make([]domain.Point, len(points))
	copy(pts, points)

	anchorIdx := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].Y < pts[anchorIdx].Y ||
			(pts[i].Y == pts[anchorIdx].Y && pts[i].X < pts[anchorIdx].X) {
			anchorIdx = i
		}
	}
	pts[0], pts[anchorIdx] = pts[anchorIdx], pts[0]
	anchor := pts[0]

	rest := pts[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		angleI := math.Atan2(rest[i].Y-anchor.Y, rest[i].X-anchor.X)
		angleJ := math.Atan2(rest[j].Y-anchor.Y, rest[j].X-anchor.X)
		if angleI != angleJ {
			return angleI < angleJ
		}
		return squaredDistance(anchor, rest[i]) < squaredDistance(anchor, rest[j])
	})

	stack := make([]domain.Point, 0, len(pts))
	stack = append(stack, anchor)
	for _, p := range rest {
		for len(stack) >= 2 && !IsCounterClockwise(stack[len(stack)-2], stack[len(stack)-1], p) {
			stack = stack[:len(stack)-1]
		}
		if p == stack[len(stack)-1] {
			continue
		}
		stack = append(stack, p)
	}

	// A collinear set collapses to the anchor plus its farthest point.
	if len(stack) < 3 {
		return nil
	}
	return stack
}

// SmoothedHull composes ConvexHull and SmoothHullPath. It returns nil when
// the hull is degenerate or smoothing produces an empty path, so callers
// can fall back to circle rendering with a single check.
func SmoothedHull(points []domain.Point) *domain.SmoothedBoundary {
	hull := ConvexHull(points)
	if hull.IsDegenerate() {
		return nil
	}
	path := SmoothHullPath(hull)
	if len(path) == 0 {
		return nil
	}
	return &domain.SmoothedBoundary{Hull: hull, Path: path}
}

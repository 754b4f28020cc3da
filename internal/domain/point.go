// Package domain contains pure, dependency-free domain models and types
// for the opinion-landscape engine.
package domain

import "math"

// Point is a position in the 2D opinion plane produced by the upstream
// dimensionality-reduction stage. It is a plain value type; copies are
// independent and no ownership semantics apply.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// IsFinite reports whether both coordinates are finite numbers.
// Non-finite coordinates are an input-contract violation and are rejected
// at the composition boundary rather than inside the geometry routines.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// ConvexHull is an ordered sequence of hull vertices in strict
// counter-clockwise order, starting at the anchor (minimum Y, ties broken
// by minimum X). Every vertex is a member of the input point set.
//
// Invariant: a hull is either empty (degenerate input: fewer than three
// points, or all points collinear) or has at least three vertices.
type ConvexHull []Point

// IsDegenerate reports whether the hull cannot be rendered as a region.
func (h ConvexHull) IsDegenerate() bool { return len(h) < 3 }

// PathSegment is a single cubic Bezier segment of a smoothed boundary.
// P0 and P3 are on-curve endpoints; P1 and P2 are control points.
type PathSegment struct {
	P0 Point `json:"p0"`
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
	P3 Point `json:"p3"`
}

// At evaluates the segment at parameter t in [0, 1].
func (s PathSegment) At(t float64) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point{
		X: b0*s.P0.X + b1*s.P1.X + b2*s.P2.X + b3*s.P3.X,
		Y: b0*s.P0.Y + b1*s.P1.Y + b2*s.P2.Y + b3*s.P3.Y,
	}
}

// BoundaryPath is a closed chain of cubic Bezier segments interpolating the
// hull vertices in order: segment i runs from hull[i] to hull[(i+1) % n].
// An empty path means no boundary can be drawn for the cluster.
type BoundaryPath []PathSegment

// IsClosed reports whether the path wraps back to its starting point.
// The zero-length path is not closed.
func (p BoundaryPath) IsClosed() bool {
	if len(p) == 0 {
		return false
	}
	last := p[len(p)-1]
	return last.P3 == p[0].P0
}

// SmoothedBoundary pairs a convex hull with the smooth closed curve drawn
// through its vertices. Path is empty iff Hull has fewer than three points.
type SmoothedBoundary struct {
	Hull ConvexHull   `json:"hull"`
	Path BoundaryPath `json:"path"`
}

// RadiusEstimate is the fallback circle radius used when a cluster's hull
// is degenerate. It always meets a documented floor: 30 for empty input,
// 40 for a single point, at least 50 for two points, and at least 60
// otherwise. The padding guarantees a visually sane minimum footprint.
type RadiusEstimate float64

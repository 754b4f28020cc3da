package geometry

import (
	"math"

	"github.com/ahrav/go-agora/internal/domain"
)

// splineAlpha is the Catmull-Rom tension parameter. 0.5 selects the
// centripetal parameterization, which cannot produce loops or cusps on
// convex control polygons.
const splineAlpha = 0.5

// minKnotSpacing keeps the knot sequence strictly monotone when two
// neighboring vertices coincide.
const minKnotSpacing = 1e-9

// SmoothHullPath produces a closed, smooth curve through the hull vertices
// using a centripetal Catmull-Rom spline, expressed as one cubic Bezier
// segment per hull edge. The curve passes through every vertex in order,
// wraps from the last vertex back to the first, and is C1 at vertices.
//
// Hulls with fewer than three vertices yield an empty path.
func SmoothHullPath(hull domain.ConvexHull) domain.BoundaryPath {
	n := len(hull)
	if n < 3 {
		return nil
	}

	path := make(domain.BoundaryPath, 0, n)
	for i := 0; i < n; i++ {
		p0 := hull[(i-1+n)%n]
		p1 := hull[i]
		p2 := hull[(i+1)%n]
		p3 := hull[(i+2)%n]
		path = append(path, catmullRomSegment(p0, p1, p2, p3))
	}
	return path
}

// catmullRomSegment converts the centripetal Catmull-Rom span from p1 to p2
// (with outer neighbors p0 and p3) into an equivalent cubic Bezier segment.
// Knot spacing follows t[i+1] = t[i] + dist^alpha.
func catmullRomSegment(p0, p1, p2, p3 domain.Point) domain.PathSegment {
	d1 := knotSpacing(p0, p1)
	d2 := knotSpacing(p1, p2)
	d3 := knotSpacing(p2, p3)

	d1sq := d1 * d1
	d2sq := d2 * d2
	d3sq := d3 * d3

	// Standard centripetal CR -> Bezier control point conversion.
	b1 := domain.Point{
		X: (d1sq*p2.X - d2sq*p0.X + (2*d1sq+3*d1*d2+d2sq)*p1.X) / (3 * d1 * (d1 + d2)),
		Y: (d1sq*p2.Y - d2sq*p0.Y + (2*d1sq+3*d1*d2+d2sq)*p1.Y) / (3 * d1 * (d1 + d2)),
	}
	b2 := domain.Point{
		X: (d3sq*p1.X - d2sq*p3.X + (2*d3sq+3*d3*d2+d2sq)*p2.X) / (3 * d3 * (d3 + d2)),
		Y: (d3sq*p1.Y - d2sq*p3.Y + (2*d3sq+3*d3*d2+d2sq)*p2.Y) / (3 * d3 * (d3 + d2)),
	}

	return domain.PathSegment{P0: p1, P1: b1, P2: b2, P3: p2}
}

// knotSpacing returns dist(a, b)^alpha floored to keep knots monotone.
func knotSpacing(a, b domain.Point) float64 {
	d := math.Pow(a.DistanceTo(b), splineAlpha)
	if d < minKnotSpacing {
		return minKnotSpacing
	}
	return d
}

package geometry

import "github.com/ahrav/go-agora/internal/domain"

// Fallback radius floors. When a hull cannot be drawn the renderer places a
// circle of the estimated radius at the cluster centroid; the floors and
// padding guarantee a visually sane minimum footprint.
const (
	radiusEmpty       = 30
	radiusSinglePoint = 40
	radiusTwoPoints   = 50
	radiusMulti       = 60
	radiusPadding     = 20
)

// EstimateRadius estimates a fallback circle radius for a cluster whose
// hull is degenerate.
//
//   - no points: 30
//   - one point: 40
//   - two points: max(50, half their distance + 20)
//   - three or more: max(60, max distance from centroid + 20)
func EstimateRadius(points []domain.Point) domain.RadiusEstimate {
	switch len(points) {
	case 0:
		return radiusEmpty
	case 1:
		return radiusSinglePoint
	case 2:
		r := points[0].DistanceTo(points[1])/2 + radiusPadding
		if r < radiusTwoPoints {
			return radiusTwoPoints
		}
		return domain.RadiusEstimate(r)
	}

	center := Centroid(points)
	maxDistance := 0.0
	for _, p := range points {
		if d := center.DistanceTo(p); d > maxDistance {
			maxDistance = d
		}
	}
	r := maxDistance + radiusPadding
	if r < radiusMulti {
		return radiusMulti
	}
	return domain.RadiusEstimate(r)
}

// Centroid returns the arithmetic mean of the points' coordinates, summed
// fresh on every call. The zero point is returned for empty input.
func Centroid(points []domain.Point) domain.Point {
	if len(points) == 0 {
		return domain.Point{}
	}
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	return domain.Point{X: sumX / n, Y: sumY / n}
}

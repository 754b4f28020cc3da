package domain

// ClusterShape is the renderable geometry for one opinion cluster.
// When Boundary is nil the cluster is degenerate (too few or collinear
// points) and the renderer falls back to a circle of FallbackRadius
// centered on Centroid. Centroid and FallbackRadius are populated either
// way so the renderer never has to recompute them.
type ClusterShape struct {
	// ClusterID is the caller-supplied identifier for the cluster.
	ClusterID string `json:"cluster_id"`

	// Boundary is the smoothed hull outline, or nil when none can be drawn.
	Boundary *SmoothedBoundary `json:"boundary,omitempty"`

	// Centroid is the arithmetic mean of the cluster's points.
	Centroid Point `json:"centroid"`

	// FallbackRadius is the circle radius to use when Boundary is nil.
	FallbackRadius RadiusEstimate `json:"fallback_radius"`

	// PointCount is the number of points the cluster contained.
	PointCount int `json:"point_count"`
}

// Landscape is the composed output of one engine invocation: per-cluster
// shapes for the rendering layer plus the coalition analysis and aggregate
// polarization score for the reporting layer. It is a freshly constructed
// immutable snapshot; callers wanting memoization cache it externally keyed
// by (poll identifier, data version).
type Landscape struct {
	// Shapes holds one entry per input cluster, keyed by cluster ID.
	Shapes map[string]ClusterShape `json:"shapes"`

	// Coalitions is the pairwise alignment analysis across all groups.
	Coalitions CoalitionAnalysis `json:"coalitions"`

	// Polarization is the aggregate 0-100 disagreement score.
	Polarization int `json:"polarization"`
}

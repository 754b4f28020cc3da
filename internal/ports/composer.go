// Package ports defines the core interfaces that form the contract between
// the domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the system testable.
package ports

import (
	"context"

	"github.com/ahrav/go-agora/internal/domain"
)

// Composer assembles a complete opinion landscape from caller-supplied
// snapshots: per-cluster 2D point feeds from the upstream projection stage
// and per-statement group scores from the vote-aggregation stage.
// Implementations must be stateless and safe for concurrent use; every call
// returns freshly constructed value objects.
//
// Middleware (tracing, metrics) wraps this interface rather than the
// concrete composer so cross-cutting concerns stay out of the computation.
type Composer interface {
	// Compose computes a boundary shape (or fallback radius) for every
	// cluster and one coalition analysis over the full statement matrix.
	//
	// The context bounds the per-cluster fan-out; each unit of work is
	// small, so cancellation is checked between clusters, not within one.
	// Contract violations (negative numGroups, non-finite coordinates or
	// scores) fail fast with a domain input error.
	Compose(
		ctx context.Context,
		clusters map[string][]domain.Point,
		statements []domain.StatementScores,
		numGroups int,
	) (*domain.Landscape, error)
}

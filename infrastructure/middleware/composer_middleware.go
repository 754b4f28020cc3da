package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/ahrav/go-agora/internal/domain"
	"github.com/ahrav/go-agora/internal/ports"
)

var _ ports.Composer = (*TracedComposer)(nil)

// TracedComposer decorates a Composer with OpenTelemetry tracing. It
// creates a span per composition, records input shape and result
// attributes, and marks the span on error. The computation itself stays
// untouched; tracing composes with MeteredComposer in either order.
type TracedComposer struct {
	next   ports.Composer
	pollID string
}

// NewTracedComposer wraps next with tracing. PollID labels the spans so
// traces from concurrent polls stay distinguishable.
func NewTracedComposer(next ports.Composer, pollID string) *TracedComposer {
	return &TracedComposer{next: next, pollID: pollID}
}

// Compose implements ports.Composer.
func (tc *TracedComposer) Compose(
	ctx context.Context,
	clusters map[string][]domain.Point,
	statements []domain.StatementScores,
	numGroups int,
) (*domain.Landscape, error) {
	tracer := otel.Tracer("landscape-composer")
	ctx, span := tracer.Start(ctx, "Composer.Compose")
	defer span.End()

	span.SetAttributes(
		attribute.String("poll.id", tc.pollID),
		attribute.Int("input.clusters", len(clusters)),
		attribute.Int("input.statements", len(statements)),
		attribute.Int("input.groups", numGroups),
	)

	result, err := tc.next.Compose(ctx, clusters, statements, numGroups)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("result.polarization", result.Polarization),
		attribute.Int("result.pairs", len(result.Coalitions.PairwiseAlignments)),
	)
	span.SetStatus(codes.Ok, "")
	return result, nil
}

var _ ports.Composer = (*MeteredComposer)(nil)

// MeteredComposer decorates a Composer with metrics collection through the
// MetricsCollector port: composition latency, outcome counters, hull
// vertex distributions, and the latest polarization level.
type MeteredComposer struct {
	next    ports.Composer
	metrics ports.MetricsCollector
	pollID  string
}

// NewMeteredComposer wraps next with metrics recording. A nil collector
// yields a pass-through composer.
func NewMeteredComposer(next ports.Composer, metrics ports.MetricsCollector, pollID string) *MeteredComposer {
	return &MeteredComposer{next: next, metrics: metrics, pollID: pollID}
}

// Compose implements ports.Composer.
func (mc *MeteredComposer) Compose(
	ctx context.Context,
	clusters map[string][]domain.Point,
	statements []domain.StatementScores,
	numGroups int,
) (*domain.Landscape, error) {
	if mc.metrics == nil {
		return mc.next.Compose(ctx, clusters, statements, numGroups)
	}

	labels := map[string]string{"poll_id": mc.pollID}
	start := time.Now()

	result, err := mc.next.Compose(ctx, clusters, statements, numGroups)
	mc.metrics.RecordLatency("compose", time.Since(start), labels)

	if err != nil {
		mc.metrics.RecordCounter("compose", 1, map[string]string{
			"poll_id": mc.pollID,
			"status":  "error",
		})
		return nil, err
	}

	mc.metrics.RecordCounter("compose", 1, labels)
	for _, shape := range result.Shapes {
		mc.metrics.RecordHistogram("hull_vertices", float64(len(hullOf(shape))), labels)
		if shape.Boundary == nil {
			mc.metrics.RecordCounter("degenerate_clusters", 1, labels)
		}
	}
	mc.metrics.RecordGauge("polarization_level", float64(result.Polarization), labels)

	return result, nil
}

// hullOf returns the hull of a shape, tolerating degenerate clusters.
func hullOf(shape domain.ClusterShape) domain.ConvexHull {
	if shape.Boundary == nil {
		return nil
	}
	return shape.Boundary.Hull
}

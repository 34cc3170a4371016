package builder

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/world"
)

// startBuild opens the span that wraps one BuildMap call.
func startBuild(ctx context.Context, algorithm string, width, height int) trace.Span {
	tracer := telemetry.Tracer("builder")
	_, span := tracer.Start(ctx, "builder.build")
	span.SetAttributes(
		attribute.String("algorithm", algorithm),
		attribute.String("run.id", telemetry.NewRunID()),
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
	)
	return span
}

// endBuild records the outcome of a run and closes its span.
func endBuild(span trace.Span, h *history, rooms int) {
	floor := 0
	if h.grid != nil {
		floor = h.grid.Count(world.TileFloor)
	}
	span.SetAttributes(
		attribute.Int("map.snapshots", len(h.snapshots)),
		attribute.Int("map.floor_tiles", floor),
		attribute.Int("map.rooms", rooms),
	)
	span.End()
}

// diggerAttributes describes the diggers of a drunkard's walk run.
func diggerAttributes(diggers, active int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("drunkard.diggers", diggers),
		attribute.Int("drunkard.active_diggers", active),
	}
}

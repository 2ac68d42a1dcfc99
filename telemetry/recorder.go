package telemetry

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName scopes the meter and tracer.
const InstrumentationName = "github.com/katalvlaran/pathseek"

// Outcome labels.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeError     = "error"
)

// Recorder holds the search instruments.
//
// Thread Safety: safe for concurrent use; each Run is not.
type Recorder struct {
	tracer        trace.Tracer
	searches      metric.Int64Counter
	expansions    metric.Int64Counter
	nodesExpanded metric.Int64Counter
	duration      metric.Float64Histogram
}

// NewRecorder registers the instruments. Nil providers fall back to no-op
// implementations.
func NewRecorder(mp metric.MeterProvider, tp trace.TracerProvider) (*Recorder, error) {
	if mp == nil {
		mp = metricnoop.NewMeterProvider()
	}
	if tp == nil {
		tp = tracenoop.NewTracerProvider()
	}
	meter := mp.Meter(InstrumentationName)
	r := &Recorder{tracer: tp.Tracer(InstrumentationName)}

	var err error
	r.searches, err = meter.Int64Counter(
		"pathseek_searches_total",
		metric.WithDescription("Total searches by strategy and outcome"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create searches_total: %w", err)
	}

	r.expansions, err = meter.Int64Counter(
		"pathseek_expansions_total",
		metric.WithDescription("Successor states pushed onto a frontier"),
		metric.WithUnit("{state}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create expansions_total: %w", err)
	}

	r.nodesExpanded, err = meter.Int64Counter(
		"pathseek_nodes_expanded_total",
		metric.WithDescription("States whose successors were generated"),
		metric.WithUnit("{state}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create nodes_expanded_total: %w", err)
	}

	r.duration, err = meter.Float64Histogram(
		"pathseek_search_duration_seconds",
		metric.WithDescription("Search wall time in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5),
	)
	if err != nil {
		return nil, fmt.Errorf("create search_duration: %w", err)
	}

	return r, nil
}

// Run tracks a single search.
type Run struct {
	rec      *Recorder
	ctx      context.Context
	span     trace.Span
	attrs    []attribute.KeyValue
	began    time.Time
	expanded int64 // OnExpand calls
}

// Start opens a span for one search. The returned context carries the span.
func (r *Recorder) Start(ctx context.Context, strategy string, attrs ...attribute.KeyValue) (context.Context, *Run) {
	base := append([]attribute.KeyValue{attribute.String("strategy", strategy)}, attrs...)
	ctx, span := r.tracer.Start(ctx, "search."+strategy, trace.WithAttributes(base...))

	return ctx, &Run{rec: r, ctx: ctx, span: span, attrs: base, began: time.Now()}
}

// OnExpand matches the expansion hook of every search package.
func (run *Run) OnExpand(string, int, int) {
	run.expanded++
}

// NodesExpanded returns the number of OnExpand calls so far.
func (run *Run) NodesExpanded() int64 { return run.expanded }

// End records the outcome and closes the span. expanded is the search's own
// successor counter; err is the search error, if any.
func (run *Run) End(found bool, expanded int, err error) {
	outcome := OutcomeExhausted
	switch {
	case err != nil:
		outcome = OutcomeError
		run.span.RecordError(err)
		run.span.SetStatus(codes.Error, err.Error())
	case found:
		outcome = OutcomeFound
	}

	elapsed := time.Since(run.began).Seconds()
	withStrategy := metric.WithAttributes(run.attrs...)
	withOutcome := metric.WithAttributes(append(slices.Clip(run.attrs), attribute.String("outcome", outcome))...)
	run.rec.searches.Add(run.ctx, 1, withOutcome)
	run.rec.expansions.Add(run.ctx, int64(expanded), withStrategy)
	run.rec.nodesExpanded.Add(run.ctx, run.expanded, withStrategy)
	run.rec.duration.Record(run.ctx, elapsed, withStrategy)

	run.span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("expanded", expanded),
		attribute.Int64("nodes_expanded", run.expanded),
	)
	run.span.End()
}

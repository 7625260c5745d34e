package trace

import (
	"context"
	"fmt"
	"math"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/activation"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/eigen"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/sampling"
)

// Tracer sweeps tracked vectors through the continuous powers of one
// evaluator's base matrix and collects the activated paths.
type Tracer struct {
	eval    *eigen.Evaluator
	metrics []Metric
}

// New returns a tracer over eval. A nil evaluator is accepted and makes
// every run fail with ErrNoEvaluator, mirroring a failed decomposition
// upstream.
func New(eval *eigen.Evaluator) *Tracer {
	return &Tracer{
		eval:    eval,
		metrics: make([]Metric, 0),
	}
}

func (tr *Tracer) AddMetric(m Metric) { tr.metrics = append(tr.metrics, m) }

// Run traces every vector across the sample times of cfg's window.
// Trajectories are all-or-nothing: one failed sample fails the whole
// run with a *PathError rather than returning a partial path.
func (tr *Tracer) Run(ctx context.Context, vectors []flow.Vec3, cfg Config) (*Result, error) {
	if tr.eval == nil {
		return nil, ErrNoEvaluator
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return tr.run(ctx, vectors, sampling.Times(cfg.Start, cfg.End, cfg.Precision), cfg)
}

// RunTimes traces every vector across an explicit time sequence instead
// of the window's own sampling. Replay paths hand back the times an
// earlier run produced; a time the evaluator rejects surfaces as a
// *PathError naming the vector and the offending time.
func (tr *Tracer) RunTimes(ctx context.Context, vectors []flow.Vec3, times []float64, cfg Config) (*Result, error) {
	if tr.eval == nil {
		return nil, ErrNoEvaluator
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: no sample times", ErrInvalidRange)
	}
	return tr.run(ctx, vectors, times, cfg)
}

func (tr *Tracer) run(ctx context.Context, vectors []flow.Vec3, times []float64, cfg Config) (*Result, error) {
	result := &Result{
		Trajectories: make([]Trajectory, 0, len(vectors)),
		Times:        times,
		Steps:        len(times) - 1,
		Metrics:      make(map[string]float64),
	}

	for _, m := range tr.metrics {
		m.Reset()
	}

	for i, v := range vectors {
		points := make([]flow.Vec3, 0, len(times))
		for _, t := range times {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			raw, err := tr.eval.Apply(t, v, cfg.Mode)
			if err != nil {
				return nil, &PathError{Vector: i, Source: v, Time: t, Wrapped: err}
			}
			p := activation.Apply(cfg.Shape, raw)
			points = append(points, p)

			for _, m := range tr.metrics {
				m.Observe(p, t)
			}
		}
		result.Trajectories = append(result.Trajectories, newTrajectory(v, points))
	}

	for _, m := range tr.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// Step evaluates the current and previous interpolated positions of one
// vector at animation time t, the pair contact detection consumes. The
// previous position sits one precision step back, clamped to the window
// start; ok is false at the first instant, when no previous exists.
func (tr *Tracer) Step(v flow.Vec3, t float64, cfg Config) (cur, prev flow.Vec3, ok bool, err error) {
	if tr.eval == nil {
		return cur, prev, false, ErrNoEvaluator
	}

	cur, err = tr.eval.Apply(t, v, cfg.Mode)
	if err != nil {
		return cur, prev, false, err
	}
	cur = activation.Apply(cfg.Shape, cur)

	if t <= cfg.Start {
		return cur, prev, false, nil
	}
	prevT := math.Max(t-effectiveStep(cfg.Precision), cfg.Start)
	prev, err = tr.eval.Apply(prevT, v, cfg.Mode)
	if err != nil {
		return cur, prev, false, err
	}
	return cur, activation.Apply(cfg.Shape, prev), true, nil
}

func effectiveStep(precision float64) float64 {
	if !(precision > 0) || precision > sampling.MaxStep {
		return sampling.MaxStep
	}
	return precision
}

func validateConfig(cfg Config) error {
	if math.IsNaN(cfg.Start) || math.IsInf(cfg.Start, 0) ||
		math.IsNaN(cfg.End) || math.IsInf(cfg.End, 0) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidRange)
	}
	if cfg.End <= cfg.Start {
		return fmt.Errorf("%w: got [%v, %v]", ErrInvalidRange, cfg.Start, cfg.End)
	}
	return nil
}

package scene

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/activation"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/config"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/contact"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/eigen"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/trace"
)

// Position is one vector's location at a frame instant: where it is now
// and where it was one precision step earlier. HasPrev is false at the
// window start.
type Position struct {
	Source  flow.Vec3
	Current flow.Vec3
	Prev    flow.Vec3
	HasPrev bool
}

// Frame is the complete renderable record for one animation instant.
type Frame struct {
	Time      float64
	Matrix    flow.Mat3
	Values    [3]eigen.Value
	Positions []Position
	Events    []contact.Event
}

// Session owns the pipeline for one configuration. It is not safe for
// concurrent use; a host drives it from a single display loop.
type Session struct {
	id        string
	mode      eigen.Mode
	act       string
	shape     activation.Func
	traceCfg  trace.Config
	source    flow.Mat3
	prepared  flow.Mat3
	normalize bool
	eval      *eigen.Evaluator
	evalErr   error
	tracer    *trace.Tracer
	specs     []VectorSpec
	walls     []contact.Wall
	warnings  []string
	totals    map[string]int
}

// VectorSpec pairs one tracked vector with its display metadata.
type VectorSpec struct {
	Label string
	Color string
	Value flow.Vec3
}

// New validates cfg and assembles a session from it. A matrix that
// cannot be decomposed is not a construction error here: the session is
// returned and reports the failure from every numerical query instead.
func New(cfg *config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		id:        uuid.New().String(),
		mode:      eigen.Mode(cfg.Mode),
		act:       cfg.Activation,
		shape:     activation.Get(cfg.Activation),
		normalize: cfg.Normalize,
		walls:     cfg.WallList(),
		totals:    make(map[string]int),
	}
	for i, vc := range cfg.ActiveVectors() {
		label := vc.Label
		if label == "" {
			label = fmt.Sprintf("v%d", i)
		}
		s.specs = append(s.specs, VectorSpec{Label: label, Color: vc.Color, Value: vc.Vec3()})
	}
	s.traceCfg = trace.Config{
		Start:     cfg.Start,
		End:       cfg.End,
		Precision: cfg.Precision,
		Mode:      s.mode,
		Shape:     s.shape,
	}

	s.SetMatrix(cfg.Matrix3().Pow(cfg.Exponent).Scale(cfg.Multiplier))
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Mode returns the evaluation mode the session traces with.
func (s *Session) Mode() eigen.Mode { return s.mode }

// Activation returns the configured activation name, "" for identity.
func (s *Session) Activation() string { return s.act }

// Matrix returns the prepared matrix the evaluator was built from, after
// the integer power, the multiplier, and any applied normalization.
func (s *Session) Matrix() flow.Mat3 { return s.prepared }

// Available reports whether the matrix decomposed successfully.
func (s *Session) Available() bool { return s.evalErr == nil }

// Err returns the decomposition failure, or nil.
func (s *Session) Err() error { return s.evalErr }

// Normalized reports whether determinant normalization is in effect. It
// flips to false when normalization was requested but failed.
func (s *Session) Normalized() bool { return s.normalize }

// Warnings returns the accumulated non-fatal problems, oldest first.
func (s *Session) Warnings() []string {
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// Window returns the trace configuration the session samples with.
func (s *Session) Window() trace.Config { return s.traceCfg }

// Vectors returns a copy of the tracked vector values.
func (s *Session) Vectors() []flow.Vec3 {
	out := make([]flow.Vec3, len(s.specs))
	for i, spec := range s.specs {
		out[i] = spec.Value
	}
	return out
}

// Specs returns a copy of the tracked vectors with their metadata.
func (s *Session) Specs() []VectorSpec {
	out := make([]VectorSpec, len(s.specs))
	copy(out, s.specs)
	return out
}

// Walls returns a copy of the wall snapshot.
func (s *Session) Walls() []contact.Wall {
	out := make([]contact.Wall, len(s.walls))
	copy(out, s.walls)
	return out
}

// SetMatrix supersedes the base matrix: the previous evaluator and its
// cache are discarded, a new decomposition is attempted, and the
// contact totals restart. Normalization, if still enabled, is re-applied
// to the new matrix.
func (s *Session) SetMatrix(m flow.Mat3) {
	s.source = m
	prepared := m
	if s.normalize {
		n, err := m.Normalize()
		if err != nil {
			// Keep the unnormalized matrix and disable the flag; the
			// caller sees the warning rather than a halt.
			s.normalize = false
			s.warnings = append(s.warnings, "normalization skipped: determinant too close to zero")
		} else {
			prepared = n
		}
	}
	s.prepared = prepared
	s.eval, s.evalErr = eigen.New(prepared)
	s.tracer = trace.New(s.eval)
	s.tracer.AddMetric(trace.NewPathLength())
	s.tracer.AddMetric(trace.NewNetDisplacement())
	s.tracer.AddMetric(trace.NewMaxExcursion())
	s.tracer.AddMetric(trace.NewContainment(s.containmentBound()))
	s.Reset()
}

// containmentBound is the coordinate box the containment metric checks
// against: twice the farthest configured wall, or ±2 with no walls.
func (s *Session) containmentBound() float64 {
	bound := 1.0
	for _, w := range s.walls {
		if a := math.Abs(w.Position); a > bound {
			bound = a
		}
	}
	return 2 * bound
}

// SetVectors replaces the tracked vectors for later passes. Labels are
// regenerated positionally; use SetSpecs to keep metadata.
func (s *Session) SetVectors(vectors []flow.Vec3) {
	specs := make([]VectorSpec, len(vectors))
	for i, v := range vectors {
		specs[i] = VectorSpec{Label: fmt.Sprintf("v%d", i), Value: v}
	}
	s.specs = specs
}

// SetSpecs replaces the tracked vectors and their metadata.
func (s *Session) SetSpecs(specs []VectorSpec) {
	s.specs = make([]VectorSpec, len(specs))
	copy(s.specs, specs)
}

// SetWalls replaces the wall snapshot for later passes.
func (s *Session) SetWalls(walls []contact.Wall) {
	s.walls = make([]contact.Wall, len(walls))
	copy(s.walls, walls)
}

// Reset clears the accumulated contact totals.
func (s *Session) Reset() {
	for k := range s.totals {
		delete(s.totals, k)
	}
}

// ContactTotals returns the contacts seen per wall across every frame
// since the last reset.
func (s *Session) ContactTotals() map[string]int {
	out := make(map[string]int, len(s.totals))
	for k, v := range s.totals {
		out[k] = v
	}
	return out
}

// Values returns the eigenvalues of the prepared matrix.
func (s *Session) Values() ([3]eigen.Value, error) {
	if s.evalErr != nil {
		return [3]eigen.Value{}, s.evalErr
	}
	return s.eval.Values(), nil
}

// ValuesAt returns the eigenvalues adjusted to animation time t.
func (s *Session) ValuesAt(t float64) ([3]eigen.Value, error) {
	if s.evalErr != nil {
		return [3]eigen.Value{}, s.evalErr
	}
	return s.eval.ValuesAt(t, s.mode)
}

// MatrixAt returns the interpolated power of the prepared matrix at
// animation time t.
func (s *Session) MatrixAt(t float64) (flow.Mat3, error) {
	if s.evalErr != nil {
		return flow.Mat3{}, s.evalErr
	}
	return s.eval.MatrixAt(t, s.mode)
}

// Frame recomputes the renderable record for animation time t and folds
// this frame's contacts into the running totals. It fails when the
// matrix is unavailable or t is not finite; a failed frame changes no
// session state.
func (s *Session) Frame(t float64) (*Frame, error) {
	if s.evalErr != nil {
		return nil, s.evalErr
	}

	m, err := s.eval.MatrixAt(t, s.mode)
	if err != nil {
		return nil, err
	}
	vals, err := s.eval.ValuesAt(t, s.mode)
	if err != nil {
		return nil, err
	}

	frame := &Frame{
		Time:      t,
		Matrix:    m,
		Values:    vals,
		Positions: make([]Position, 0, len(s.specs)),
	}
	for _, spec := range s.specs {
		cur, prev, hasPrev, err := s.tracer.Step(spec.Value, t, s.traceCfg)
		if err != nil {
			return nil, err
		}
		frame.Positions = append(frame.Positions, Position{
			Source:  spec.Value,
			Current: cur,
			Prev:    prev,
			HasPrev: hasPrev,
		})
		frame.Events = append(frame.Events, contact.DetectAll(s.walls, prev, cur, hasPrev)...)
	}

	for _, ev := range frame.Events {
		s.totals[ev.WallID]++
	}
	return frame, nil
}

// Trajectories runs a full trace of every tracked vector across the
// session window.
func (s *Session) Trajectories(ctx context.Context) (*trace.Result, error) {
	return s.tracer.Run(ctx, s.Vectors(), s.traceCfg)
}

// PathContacts sweeps a full trace and returns every contact event along
// the sampled paths, in path order. Consecutive samples inside a wall's
// tolerance each report their own event, matching what an animation
// sweep of the same window would accumulate.
func (s *Session) PathContacts(ctx context.Context) ([]contact.Event, error) {
	res, err := s.Trajectories(ctx)
	if err != nil {
		return nil, err
	}
	return s.sweep(res), nil
}

func (s *Session) sweep(res *trace.Result) []contact.Event {
	var all []contact.Event
	for _, path := range res.Trajectories {
		var prev flow.Vec3
		for i, p := range path.Points {
			all = append(all, contact.DetectAll(s.walls, prev, p, i > 0)...)
			prev = p
		}
	}
	return all
}

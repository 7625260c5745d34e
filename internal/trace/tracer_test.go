package trace

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/eigen"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
)

func mustEvaluator(t *testing.T, m flow.Mat3) *eigen.Evaluator {
	t.Helper()
	e, err := eigen.New(m)
	if err != nil {
		t.Fatalf("eigen.New(%v): %v", m, err)
	}
	return e
}

func TestRun_IdentityMatrix(t *testing.T) {
	tr := New(mustEvaluator(t, flow.Identity()))

	cfg := Config{Start: 0, End: 1, Precision: 0.1, Mode: eigen.ModePower}
	res, err := tr.Run(context.Background(), []flow.Vec3{{X: 1, Y: 2, Z: 3}}, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Trajectories) != 1 {
		t.Fatalf("got %d trajectories, want 1", len(res.Trajectories))
	}
	path := res.Trajectories[0]
	if len(path.Points) != 11 {
		t.Fatalf("got %d points, want 11", len(path.Points))
	}
	for i, p := range path.Points {
		if p.Sub(flow.Vec3{X: 1, Y: 2, Z: 3}).Length() > 1e-9 {
			t.Fatalf("point %d = %v, identity should not move the vector", i, p)
		}
	}
}

func TestRun_DiagonalGrowth(t *testing.T) {
	tr := New(mustEvaluator(t, flow.Mat3{{4, 0, 0}, {0, 1, 0}, {0, 0, 1}}))

	cfg := Config{Start: 0, End: 1, Precision: 0.25, Mode: eigen.ModePower}
	res, err := tr.Run(context.Background(), []flow.Vec3{{X: 1}}, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	path := res.Trajectories[0]
	for i, tm := range res.Times {
		want := math.Pow(4, tm)
		if math.Abs(path.Points[i].X-want) > 1e-9 {
			t.Errorf("point at t=%v has x=%v, want %v", tm, path.Points[i].X, want)
		}
	}
	if path.Initial().X != 1 {
		t.Errorf("Initial().X = %v, want 1", path.Initial().X)
	}
	if math.Abs(path.Final().X-4) > 1e-9 {
		t.Errorf("Final().X = %v, want 4", path.Final().X)
	}
}

func TestRun_ActivationApplied(t *testing.T) {
	tr := New(mustEvaluator(t, flow.Identity()))

	cfg := Config{
		Start: 0, End: 1, Precision: 0.5,
		Mode:  eigen.ModePower,
		Shape: func(x float64) float64 { return 2 * x },
	}
	res, err := tr.Run(context.Background(), []flow.Vec3{{X: 1, Y: 2, Z: 3}}, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := res.Trajectories[0].Final()
	if got.Sub(flow.Vec3{X: 2, Y: 4, Z: 6}).Length() > 1e-9 {
		t.Errorf("activated point = %v, want (2,4,6)", got)
	}
}

func TestRun_InvalidRange(t *testing.T) {
	tr := New(mustEvaluator(t, flow.Identity()))

	for _, cfg := range []Config{
		{Start: 0, End: 0, Precision: 0.01},
		{Start: 2, End: 1, Precision: 0.01},
		{Start: math.NaN(), End: 1, Precision: 0.01},
		{Start: 0, End: math.Inf(1), Precision: 0.01},
	} {
		_, err := tr.Run(context.Background(), []flow.Vec3{{X: 1}}, cfg)
		if !errors.Is(err, ErrInvalidRange) {
			t.Errorf("window [%v,%v]: err = %v, want ErrInvalidRange", cfg.Start, cfg.End, err)
		}
	}
}

func TestRun_NoEvaluator(t *testing.T) {
	tr := New(nil)

	_, err := tr.Run(context.Background(), []flow.Vec3{{X: 1}}, DefaultConfig())
	if !errors.Is(err, ErrNoEvaluator) {
		t.Fatalf("err = %v, want ErrNoEvaluator", err)
	}
}

func TestRun_Canceled(t *testing.T) {
	tr := New(mustEvaluator(t, flow.Identity()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := tr.Run(ctx, []flow.Vec3{{X: 1}}, DefaultConfig())
	if err == nil {
		t.Fatal("expected a context error")
	}
	if res != nil {
		t.Error("canceled run must not return a partial result")
	}
}

func TestRun_Metrics(t *testing.T) {
	tr := New(mustEvaluator(t, flow.Mat3{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}))
	tr.AddMetric(NewPathLength())
	tr.AddMetric(NewNetDisplacement())
	tr.AddMetric(NewMaxExcursion())

	vectors := []flow.Vec3{{X: 1}, {Z: 4}}
	cfg := Config{Start: 0, End: 1, Precision: 0.05, Mode: eigen.ModePower}

	res, err := tr.Run(context.Background(), vectors, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// The first vector slides from x=1 to x=2; the second never moves.
	// The jump between the two paths must not count as a segment.
	if got := res.Metrics["path_length"]; math.Abs(got-1) > 1e-9 {
		t.Errorf("path_length = %v, want 1", got)
	}
	if got := res.Metrics["net_displacement"]; math.Abs(got-1) > 1e-9 {
		t.Errorf("net_displacement = %v, want 1", got)
	}
	if got := res.Metrics["max_excursion"]; math.Abs(got-4) > 1e-9 {
		t.Errorf("max_excursion = %v, want 4", got)
	}
}

func TestRunTimes_ExplicitSequence(t *testing.T) {
	tr := New(mustEvaluator(t, flow.Mat3{{4, 0, 0}, {0, 1, 0}, {0, 0, 1}}))

	times := []float64{0, 0.5, 1}
	cfg := Config{Start: 0, End: 1, Mode: eigen.ModePower}
	res, err := tr.RunTimes(context.Background(), []flow.Vec3{{X: 1}}, times, cfg)
	if err != nil {
		t.Fatalf("RunTimes: %v", err)
	}

	path := res.Trajectories[0]
	want := []float64{1, 2, 4}
	for i, w := range want {
		if math.Abs(path.Points[i].X-w) > 1e-9 {
			t.Errorf("point %d has x=%v, want %v", i, path.Points[i].X, w)
		}
	}
	if res.Steps != 2 {
		t.Errorf("Steps = %d, want 2", res.Steps)
	}
}

func TestRunTimes_FailFast(t *testing.T) {
	tr := New(mustEvaluator(t, flow.Identity()))

	times := []float64{0, math.NaN(), 1}
	vectors := []flow.Vec3{{X: 1}, {Y: 1}}
	res, err := tr.RunTimes(context.Background(), vectors, times, Config{Mode: eigen.ModePower})
	if res != nil {
		t.Error("a failed sample must not leave partial trajectories")
	}

	var perr *PathError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *PathError", err)
	}
	if perr.Vector != 0 {
		t.Errorf("PathError.Vector = %d, want 0", perr.Vector)
	}
	if !errors.Is(err, eigen.ErrNonFiniteTime) {
		t.Error("PathError should unwrap to the evaluator failure")
	}
}

func TestRunTimes_Empty(t *testing.T) {
	tr := New(mustEvaluator(t, flow.Identity()))

	_, err := tr.RunTimes(context.Background(), []flow.Vec3{{X: 1}}, nil, Config{Mode: eigen.ModePower})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
}

func TestTrajectory_CachedEndpointsIndependent(t *testing.T) {
	tr := New(mustEvaluator(t, flow.Identity()))

	res, err := tr.Run(context.Background(), []flow.Vec3{{X: 1}}, DefaultConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	path := &res.Trajectories[0]
	path.Points[0] = flow.Vec3{X: 99}
	path.Points[len(path.Points)-1] = flow.Vec3{X: -99}

	if path.Initial().X != 1 || path.Final().X != 1 {
		t.Error("mutating Points must not disturb the cached endpoints")
	}
}

func TestStep(t *testing.T) {
	tr := New(mustEvaluator(t, flow.Mat3{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}))
	cfg := Config{Start: 0, End: 1, Precision: 0.01, Mode: eigen.ModePower}
	v := flow.Vec3{X: 1}

	// At the window start there is no previous position yet.
	cur, _, ok, err := tr.Step(v, 0, cfg)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if ok {
		t.Error("first instant should have no previous point")
	}
	if math.Abs(cur.X-1) > 1e-9 {
		t.Errorf("cur.X = %v, want 1", cur.X)
	}

	cur, prev, ok, err := tr.Step(v, 0.5, cfg)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !ok {
		t.Fatal("expected a previous point at t=0.5")
	}
	if math.Abs(cur.X-math.Pow(2, 0.5)) > 1e-9 {
		t.Errorf("cur.X = %v, want 2^0.5", cur.X)
	}
	if math.Abs(prev.X-math.Pow(2, 0.49)) > 1e-9 {
		t.Errorf("prev.X = %v, want 2^0.49", prev.X)
	}
}

func TestPathError(t *testing.T) {
	err := &PathError{
		Vector:  2,
		Source:  flow.Vec3{X: 1},
		Time:    0.75,
		Wrapped: eigen.ErrNonFiniteTime,
	}

	want := "trace: vector 2 (t=0.7500): eigen: time parameter is not finite"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, eigen.ErrNonFiniteTime) {
		t.Error("PathError should unwrap to its cause")
	}
}

package trace

import (
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/activation"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/eigen"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
)

// Config describes one trace run: the time window, the sampling
// precision, the interpolation mode, and the activation applied to
// every transformed point.
type Config struct {
	Start     float64
	End       float64
	Precision float64
	Mode      eigen.Mode
	Shape     activation.Func
}

// DefaultConfig traces the unit window [0,1] at the resolution ceiling
// in power mode with no shaping.
func DefaultConfig() Config {
	return Config{
		Start:     0,
		End:       1,
		Precision: 0.01,
		Mode:      eigen.ModePower,
	}
}

// Trajectory is the activated path of one tracked vector across the
// sample times. The first and last points are cached independently at
// build time, so later mutation of Points cannot corrupt them.
type Trajectory struct {
	Source flow.Vec3
	Points []flow.Vec3

	first flow.Vec3
	last  flow.Vec3
}

// Initial returns the cached first point of the path.
func (tr Trajectory) Initial() flow.Vec3 { return tr.first }

// Final returns the cached last point of the path.
func (tr Trajectory) Final() flow.Vec3 { return tr.last }

func newTrajectory(source flow.Vec3, points []flow.Vec3) Trajectory {
	t := Trajectory{Source: source, Points: points}
	if len(points) > 0 {
		t.first = points[0]
		t.last = points[len(points)-1]
	}
	return t
}

// Result collects the output of one trace run.
type Result struct {
	Trajectories []Trajectory
	Times        []float64
	Steps        int
	Metrics      map[string]float64
}

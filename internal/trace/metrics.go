package trace

import (
	"math"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
)

// Metric accumulates a scalar over every point a trace run produces.
// Observe is called once per sample in path order; paths restart the
// time parameter, which is how segment-based metrics tell one vector's
// path from the next.
type Metric interface {
	Name() string
	Observe(p flow.Vec3, t float64)
	Value() float64
	Reset()
}

// PathLength sums the segment lengths of every trajectory in a run.
type PathLength struct {
	name    string
	total   float64
	last    flow.Vec3
	lastT   float64
	samples int
}

func NewPathLength() *PathLength {
	return &PathLength{name: "path_length"}
}

func (m *PathLength) Name() string { return m.name }

func (m *PathLength) Observe(p flow.Vec3, t float64) {
	// A non-increasing time means a new path started; no segment spans
	// the gap between two vectors' paths.
	if m.samples > 0 && t > m.lastT {
		m.total += p.Sub(m.last).Length()
	}
	m.last = p
	m.lastT = t
	m.samples++
}

func (m *PathLength) Value() float64 {
	return m.total
}

func (m *PathLength) Reset() {
	m.total = 0
	m.last = flow.Vec3{}
	m.lastT = 0
	m.samples = 0
}

// NetDisplacement sums, per trajectory, the straight-line distance from
// the path's first point to its last. A looping path can have a large
// length and a near-zero displacement.
type NetDisplacement struct {
	name    string
	total   float64
	first   flow.Vec3
	last    flow.Vec3
	lastT   float64
	samples int
}

func NewNetDisplacement() *NetDisplacement {
	return &NetDisplacement{name: "net_displacement"}
}

func (m *NetDisplacement) Name() string { return m.name }

func (m *NetDisplacement) Observe(p flow.Vec3, t float64) {
	if m.samples == 0 || t <= m.lastT {
		// New path: close out the one before it.
		if m.samples > 0 {
			m.total += m.last.Sub(m.first).Length()
		}
		m.first = p
	}
	m.last = p
	m.lastT = t
	m.samples++
}

func (m *NetDisplacement) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total + m.last.Sub(m.first).Length()
}

func (m *NetDisplacement) Reset() {
	m.total = 0
	m.first = flow.Vec3{}
	m.last = flow.Vec3{}
	m.lastT = 0
	m.samples = 0
}

// Containment reports the fraction of samples whose every coordinate
// stays within a bound. 1.0 means no point ever left the box.
type Containment struct {
	name       string
	bound      float64
	violations int
	samples    int
}

func NewContainment(bound float64) *Containment {
	return &Containment{name: "containment", bound: bound}
}

func (m *Containment) Name() string { return m.name }

func (m *Containment) Observe(p flow.Vec3, t float64) {
	m.samples++
	if math.Abs(p.X) > m.bound || math.Abs(p.Y) > m.bound || math.Abs(p.Z) > m.bound {
		m.violations++
	}
}

func (m *Containment) Value() float64 {
	if m.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(m.violations)/float64(m.samples)
}

func (m *Containment) Reset() {
	m.violations = 0
	m.samples = 0
}

// MaxExcursion tracks the farthest any activated point strays from the
// origin during a run.
type MaxExcursion struct {
	name string
	max  float64
}

func NewMaxExcursion() *MaxExcursion {
	return &MaxExcursion{name: "max_excursion"}
}

func (m *MaxExcursion) Name() string { return m.name }

func (m *MaxExcursion) Observe(p flow.Vec3, t float64) {
	m.max = math.Max(m.max, p.Length())
}

func (m *MaxExcursion) Value() float64 {
	return m.max
}

func (m *MaxExcursion) Reset() {
	m.max = 0
}

// Package contact detects trajectory contacts with axis-aligned walls.
//
// A wall is an infinite plane at a fixed position along one principal
// axis. Detection looks at one animation step at a time, the segment
// between the previous and current interpolated position, and reports at
// most one event per wall per step.
package contact

import (
	"math"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
)

const (
	// Tolerance is the world-space contact thickness: a point this close
	// to a wall plane counts as touching it.
	Tolerance = 0.07

	// minDenom guards the crossing interpolation against near-parallel
	// segments.
	minDenom = 1e-8

	// signNoise is the offset magnitude below which the side of the wall
	// is ambiguous.
	signNoise = 1e-12
)

// Axis names one of the three principal axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// ParseAxis maps an axis name to its tag.
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "x", "X":
		return AxisX, true
	case "y", "Y":
		return AxisY, true
	case "z", "Z":
		return AxisZ, true
	}
	return AxisX, false
}

// Wall is an axis-aligned plane at Position along Axis. Walls are owned
// by the caller; detection only reads them.
type Wall struct {
	ID       string
	Axis     Axis
	Position float64
}

// Event records one contact between a trajectory step and a wall.
// Direction is +1 when the contact resolves to the positive side of the
// wall and -1 otherwise; an ambiguous side resolves to +1.
type Event struct {
	WallID    string
	Axis      Axis
	Position  float64
	Point     flow.Vec3
	Direction int
}

// Detect checks one wall against the step from prev to cur and returns
// the contact event, or nil when the step never touches the wall.
// hasPrev is false on the first sample of a path, when there is no
// previous point yet.
//
// Matches apply in priority order, first one wins:
//
//  1. cur within Tolerance of the plane: cur projected onto the plane,
//     side taken from cur's offset with prev as fallback.
//  2. prev within Tolerance: the mirror case.
//  3. the offsets of prev and cur have opposite signs: the crossing
//     point is interpolated along the segment and projected onto the
//     plane, with the side taken from cur's offset.
func Detect(w Wall, prev, cur flow.Vec3, hasPrev bool) *Event {
	axis := int(w.Axis)
	curOff := cur.Axis(axis) - w.Position

	if math.Abs(curOff) <= Tolerance {
		fallback := curOff
		if hasPrev {
			fallback = prev.Axis(axis) - w.Position
		}
		return w.event(cur.WithAxis(axis, w.Position), direction(curOff, fallback))
	}

	if !hasPrev {
		return nil
	}
	prevOff := prev.Axis(axis) - w.Position

	if math.Abs(prevOff) <= Tolerance {
		return w.event(prev.WithAxis(axis, w.Position), direction(prevOff, curOff))
	}

	// Both endpoints clear of the wall: a contact needs a sign change.
	if prevOff*curOff >= 0 {
		return nil
	}
	denom := cur.Axis(axis) - prev.Axis(axis)
	if math.Abs(denom) < minDenom {
		return nil
	}
	ratio := (w.Position - prev.Axis(axis)) / denom
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	point := flow.Lerp(prev, cur, ratio).WithAxis(axis, w.Position)
	return w.event(point, direction(curOff, prevOff))
}

// DetectAll runs Detect for every wall, collecting at most one event per
// wall for this step.
func DetectAll(walls []Wall, prev, cur flow.Vec3, hasPrev bool) []Event {
	var events []Event
	for _, w := range walls {
		if ev := Detect(w, prev, cur, hasPrev); ev != nil {
			events = append(events, *ev)
		}
	}
	return events
}

func (w Wall) event(point flow.Vec3, dir int) *Event {
	return &Event{
		WallID:    w.ID,
		Axis:      w.Axis,
		Position:  w.Position,
		Point:     point,
		Direction: dir,
	}
}

// direction resolves a side from the primary offset, falling back to the
// secondary when the primary is within noise of the plane, and to the
// positive side when both are.
func direction(primary, fallback float64) int {
	if s := side(primary); s != 0 {
		return s
	}
	if s := side(fallback); s != 0 {
		return s
	}
	return 1
}

func side(off float64) int {
	if off > signNoise {
		return 1
	}
	if off < -signNoise {
		return -1
	}
	return 0
}

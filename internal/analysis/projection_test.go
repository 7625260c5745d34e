package analysis

import (
	"strings"
	"testing"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
)

func TestParsePlane(t *testing.T) {
	cases := []struct {
		in     string
		x, y   int
		wantOK bool
	}{
		{"xy", 0, 1, true},
		{"XZ", 0, 2, true},
		{"zx", 2, 0, true},
		{"xx", 0, 0, false},
		{"w", 0, 0, false},
		{"xyz", 0, 0, false},
	}
	for _, tc := range cases {
		x, y, ok := ParsePlane(tc.in)
		if ok != tc.wantOK {
			t.Errorf("ParsePlane(%q) ok = %v, want %v", tc.in, ok, tc.wantOK)
			continue
		}
		if ok && (x != tc.x || y != tc.y) {
			t.Errorf("ParsePlane(%q) = (%d, %d), want (%d, %d)", tc.in, x, y, tc.x, tc.y)
		}
	}
}

func TestProject(t *testing.T) {
	points := []flow.Vec3{
		{X: 1, Y: 2, Z: 3},
		{X: 4, Y: 5, Z: 6},
	}

	proj := Project(points, 0, 2)
	if proj == nil {
		t.Fatal("Project returned nil for valid axes")
	}
	if len(proj.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(proj.Points))
	}
	if proj.Points[1].X != 4 || proj.Points[1].Y != 6 {
		t.Errorf("Points[1] = %+v, want {4 6}", proj.Points[1])
	}

	if Project(points, 0, 3) != nil {
		t.Error("Project accepted an out-of-range axis")
	}
}

func TestASCII_DrawsPathAndAxes(t *testing.T) {
	// A path straddling the origin so both axes fall inside the canvas.
	points := []flow.Vec3{
		{X: -1, Y: -1},
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
	}

	art := Project(points, 0, 1).ASCII(21, 11)
	if art == "" {
		t.Fatal("ASCII returned an empty canvas")
	}
	if !strings.Contains(art, "•") {
		t.Error("canvas has no plotted points")
	}
	if !strings.Contains(art, "│") || !strings.Contains(art, "─") {
		t.Error("canvas is missing the coordinate axes")
	}
	if lines := strings.Count(art, "\n"); lines != 11 {
		t.Errorf("canvas has %d rows, want 11", lines)
	}
}

func TestASCII_Empty(t *testing.T) {
	if got := (*Projection)(nil).ASCII(10, 10); got != "" {
		t.Errorf("nil projection rendered %q", got)
	}
	if got := Project(nil, 0, 1).ASCII(10, 10); got != "" {
		t.Errorf("empty projection rendered %q", got)
	}
}

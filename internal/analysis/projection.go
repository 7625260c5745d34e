package analysis

import (
	"strings"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
)

// Projection holds a traced path flattened onto a coordinate plane.
type Projection struct {
	XAxis, YAxis int
	Points       []struct{ X, Y float64 }
}

// Project flattens a 3D path onto the plane spanned by two coordinate
// axes (0 = x, 1 = y, 2 = z). Returns nil when an axis is out of range.
func Project(points []flow.Vec3, xAxis, yAxis int) *Projection {
	if xAxis < 0 || xAxis > 2 || yAxis < 0 || yAxis > 2 {
		return nil
	}

	proj := &Projection{
		XAxis:  xAxis,
		YAxis:  yAxis,
		Points: make([]struct{ X, Y float64 }, 0, len(points)),
	}
	for _, p := range points {
		proj.Points = append(proj.Points, struct{ X, Y float64 }{
			X: p.Axis(xAxis),
			Y: p.Axis(yAxis),
		})
	}
	return proj
}

// ParsePlane maps a two-letter plane name like "xy" or "xz" to a pair
// of axis indices.
func ParsePlane(s string) (xAxis, yAxis int, ok bool) {
	if len(s) != 2 {
		return 0, 0, false
	}
	xAxis, okX := axisIndex(s[0])
	yAxis, okY := axisIndex(s[1])
	if !okX || !okY || xAxis == yAxis {
		return 0, 0, false
	}
	return xAxis, yAxis, true
}

func axisIndex(c byte) (int, bool) {
	switch c {
	case 'x', 'X':
		return 0, true
	case 'y', 'Y':
		return 1, true
	case 'z', 'Z':
		return 2, true
	}
	return 0, false
}

// ASCII renders the projected path as ASCII art. Bounds are padded by
// 10% on each side, and the coordinate axes are drawn where they cross
// the visible area.
func (p *Projection) ASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	// Find bounds
	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, pt := range p.Points {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((pt.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	// Draw axes if they cross the visible area
	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if col >= 0 && col < width && canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

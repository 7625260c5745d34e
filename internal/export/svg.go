package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/scene"
)

const (
	svgWidth  = 640.0
	svgHeight = 480.0

	svgBackground = "#0a0a0a"
	svgAxisColor  = "#333333"
	svgWallColor  = "#666666"
	svgHitColor   = "#ff4040"
	svgPathColor  = "#00ff00"
)

// SVG writes the scene's traced paths as a standalone SVG document,
// projected onto the plane spanned by two coordinate axes (0 = x,
// 1 = y, 2 = z). Walls on an in-plane axis are drawn as dashed lines
// and contact points as filled dots; a wall on the remaining axis has
// no footprint in the projection and is skipped.
func SVG(w io.Writer, scn *scene.Scene, xAxis, yAxis int) error {
	if xAxis < 0 || xAxis > 2 || yAxis < 0 || yAxis > 2 || xAxis == yAxis {
		return fmt.Errorf("invalid projection plane (%d, %d)", xAxis, yAxis)
	}

	minX, maxX, minY, maxY := svgBounds(scn, xAxis, yAxis)
	rangeX := maxX - minX
	rangeY := maxY - minY
	px := func(v float64) float64 { return (v - minX) / rangeX * svgWidth }
	py := func(v float64) float64 { return svgHeight - (v-minY)/rangeY*svgHeight }

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, svgWidth, svgHeight, svgWidth, svgHeight, svgBackground))

	// Coordinate axes where they cross the visible area
	if minX <= 0 && maxX >= 0 {
		x := px(0)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%.0f" stroke="%s"/>`+"\n",
			x, x, svgHeight, svgAxisColor))
	}
	if minY <= 0 && maxY >= 0 {
		y := py(0)
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%.0f" y2="%.1f" stroke="%s"/>`+"\n",
			y, svgWidth, y, svgAxisColor))
	}

	for _, wall := range scn.Walls {
		switch int(wall.Axis) {
		case xAxis:
			x := px(wall.Position)
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%.0f" stroke="%s" stroke-dasharray="4 3"/>`+"\n",
				x, x, svgHeight, svgWallColor))
		case yAxis:
			y := py(wall.Position)
			sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%.0f" y2="%.1f" stroke="%s" stroke-dasharray="4 3"/>`+"\n",
				y, svgWidth, y, svgWallColor))
		}
	}

	for _, obj := range scn.Objects {
		if len(obj.Points) < 2 {
			continue
		}
		color := obj.Color
		if color == "" {
			color = svgPathColor
		}

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i, p := range obj.Points {
			x := px(p.Axis(xAxis))
			y := py(p.Axis(yAxis))
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>`+"\n",
			px(obj.Source.Axis(xAxis)), py(obj.Source.Axis(yAxis)), color))
	}

	for _, ev := range scn.Contacts {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2.5" fill="%s"/>`+"\n",
			px(ev.Point.Axis(xAxis)), py(ev.Point.Axis(yAxis)), svgHitColor))
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// svgBounds covers every projected path point and every in-plane wall,
// padded by 10% on each side. Degenerate spans widen to 1.
func svgBounds(scn *scene.Scene, xAxis, yAxis int) (minX, maxX, minY, maxY float64) {
	minX, maxX = -1, 1
	minY, maxY = -1, 1
	first := true

	grow := func(x, y float64) {
		if first {
			minX, maxX = x, x
			minY, maxY = y, y
			first = false
			return
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	for _, obj := range scn.Objects {
		for _, p := range obj.Points {
			grow(p.Axis(xAxis), p.Axis(yAxis))
		}
	}
	for _, wall := range scn.Walls {
		switch int(wall.Axis) {
		case xAxis:
			grow(wall.Position, minY)
		case yAxis:
			grow(minX, wall.Position)
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
	return minX, maxX, minY, maxY
}

package render

import (
	"math"

	"github.com/lixenwraith/vi-countdown/countdown"
	"github.com/lixenwraith/vi-countdown/layout"
	"github.com/lixenwraith/vi-countdown/parameter"
	"github.com/lixenwraith/vi-countdown/vmath"
)

// minMarkerRadius keeps the marker at least one pixel wide on small terminals
const minMarkerRadius = 0.75

// Rasterize paints frame f against geometry g onto the canvas
// Layer order: background, ring (wiped part in the highlight gradient, rest in ring color with stroke), marker, readout
func Rasterize(c *Canvas, p *Palette, g layout.Geometry, f countdown.FrameState) {
	c.Clear()
	w, h := c.Bounds()

	ring := vmath.AnnularSector{Center: g.Center, Inner: g.InnerRadius, Outer: g.OuterRadius, End: vmath.FullTurn}
	marker := vmath.Disc{Center: f.Marker, Radius: math.Max(f.MarkerRadius, minMarkerRadius)}
	wipe := f.SweepPath.Sector

	// Only scan the ring's bounding box for the ring and marker layers
	x0, y0, x1, y1 := bbox(g.Center, g.OuterRadius+parameter.StrokeWidth, w, h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			pt := vmath.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}

			switch {
			case marker.Contains(pt):
				c.Set(x, y, p.Marker)
			case !ring.Contains(pt):
				continue
			case wipe.Contains(pt):
				c.Set(x, y, p.RevealedAt(pt.Dist(g.Center)/g.OuterRadius))
			case onEdge(pt, g):
				c.Set(x, y, p.Stroke)
			default:
				c.Set(x, y, p.Ring)
			}
		}
	}

	drawText(c, p.Text, g.TextOrigin, g.FontSize, f.Text)
}

// onEdge reports whether pt lies on the stroke band along either ring boundary
func onEdge(pt vmath.Point, g layout.Geometry) bool {
	d := pt.Dist(g.Center)
	return d >= g.OuterRadius-parameter.StrokeWidth || d <= g.InnerRadius+parameter.StrokeWidth
}

func drawText(c *Canvas, color RGB, origin vmath.Point, fontSize float64, text string) {
	w, h := c.Bounds()
	extent := MeasureText(text, fontSize)

	x0 := max(int(math.Floor(origin.X)), 0)
	y0 := max(int(math.Floor(origin.Y)), 0)
	x1 := min(int(math.Ceil(origin.X+extent.W)), w)
	y1 := min(int(math.Ceil(origin.Y+extent.H)), h)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if textInk(text, fontSize, float64(x)+0.5-origin.X, float64(y)+0.5-origin.Y) {
				c.Set(x, y, color)
			}
		}
	}
}

// bbox returns the pixel box around a circle clipped to the canvas, max bounds exclusive
func bbox(center vmath.Point, radius float64, w, h int) (x0, y0, x1, y1 int) {
	x0 = max(int(math.Floor(center.X-radius)), 0)
	y0 = max(int(math.Floor(center.Y-radius)), 0)
	x1 = min(int(math.Ceil(center.X+radius))+1, w)
	y1 = min(int(math.Ceil(center.Y+radius))+1, h)
	return
}

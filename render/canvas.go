package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-countdown/parameter"
	"github.com/lixenwraith/vi-countdown/parameter/visual"
)

// Canvas is a square-pixel raster mapped onto half-block terminal cells
// Each cell holds two vertically stacked pixels: foreground is the top one, background the bottom
type Canvas struct {
	pixels []RGB
	width  int // Pixels
	height int // Pixels
	fill   RGB
}

// NewCanvas creates a canvas covering cols x rows terminal cells
func NewCanvas(cols, rows int, fill RGB) *Canvas {
	c := &Canvas{fill: fill}
	c.Resize(cols, rows)
	return c
}

// Resize adjusts to cols x rows cells, reallocates only if capacity insufficient
func (c *Canvas) Resize(cols, rows int) {
	w := max(cols, 0) * parameter.PixelsPerCellX
	h := max(rows, 0) * parameter.PixelsPerCellY
	size := w * h
	if cap(c.pixels) < size {
		c.pixels = make([]RGB, size)
	} else {
		c.pixels = c.pixels[:size]
	}
	c.width = w
	c.height = h
	c.Clear()
}

// Bounds returns the pixel dimensions
func (c *Canvas) Bounds() (int, int) {
	return c.width, c.height
}

// Clear resets all pixels to the fill color using exponential copy
func (c *Canvas) Clear() {
	if len(c.pixels) == 0 {
		return
	}
	c.pixels[0] = c.fill
	for filled := 1; filled < len(c.pixels); filled *= 2 {
		copy(c.pixels[filled:], c.pixels[:filled])
	}
}

// inBounds returns true if in canvas bounds
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set writes one pixel, out of bounds writes are ignored
func (c *Canvas) Set(x, y int, color RGB) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.width+x] = color
}

// Get returns one pixel, the fill color when out of bounds
func (c *Canvas) Get(x, y int) RGB {
	if !c.inBounds(x, y) {
		return c.fill
	}
	return c.pixels[y*c.width+x]
}

// Flush writes the canvas to screen starting at row top, fading every pixel toward the fill by opacity
func (c *Canvas) Flush(screen tcell.Screen, top int, opacity float64) {
	rows := c.height / parameter.PixelsPerCellY
	for row := 0; row < rows; row++ {
		for x := 0; x < c.width; x++ {
			upper := Blend(c.fill, c.Get(x, row*2), opacity)
			lower := Blend(c.fill, c.Get(x, row*2+1), opacity)

			ch := visual.HalfBlockUpper
			if upper == lower {
				ch = visual.HalfBlockEmpty
			}
			style := tcell.StyleDefault.Foreground(upper.Tcell()).Background(lower.Tcell())
			screen.SetContent(x, top+row, ch, nil, style)
		}
	}
}

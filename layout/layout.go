package layout

import (
	"github.com/lixenwraith/vi-countdown/parameter"
	"github.com/lixenwraith/vi-countdown/vmath"
)

// Size is a width/height extent in container units
type Size struct {
	W, H float64
}

// TextMeasurer reports the ink extent of text rendered at a font size
type TextMeasurer interface {
	Measure(text string, fontSize float64) Size
}

// Geometry is the immutable placement of ring, marker and readout for one container size
// Replaced wholesale on every resize
type Geometry struct {
	Width  float64
	Height float64

	Center       vmath.Point
	OuterRadius  float64
	InnerRadius  float64
	MarkerRadius float64

	// Footprint is the horizontal span reserved for ring and readout together
	Footprint float64

	FontSize   float64
	TextOrigin vmath.Point // Top-left corner of the readout block
	TextSize   Size
}

// Left returns the x coordinate where the footprint begins
func (g Geometry) Left() float64 {
	return g.Center.X - g.OuterRadius
}

// Right returns the x coordinate where the footprint ends
func (g Geometry) Right() float64 {
	return g.Left() + g.Footprint
}

// Compute derives geometry for a width x height container
// sample is the readout text used for font fitting, normally the idle display
// Pure: identical inputs produce bit-identical output
func Compute(width, height float64, sample string, m TextMeasurer) Geometry {
	outer := height * parameter.OuterRadiusFactor
	inner := height * parameter.InnerRadiusFactor
	diameter := 2 * outer
	footprint := parameter.FootprintFactor * diameter

	center := vmath.Point{
		X: (width-footprint)/2 + outer,
		Y: height / 2,
	}

	fontSize, text := FitFontSize(sample, parameter.TextFitFactor*diameter, m)

	return Geometry{
		Width:        width,
		Height:       height,
		Center:       center,
		OuterRadius:  outer,
		InnerRadius:  inner,
		MarkerRadius: inner / parameter.MarkerRadiusDivisor,
		Footprint:    footprint,
		FontSize:     fontSize,
		TextOrigin: vmath.Point{
			X: center.X - outer + footprint - text.W,
			Y: center.Y - text.H,
		},
		TextSize: text,
	}
}

// FitFontSize grows the font from the base size in fixed steps until the measured
// height reaches target, returning the final size and its extent
// Bounded by MaxFontSize so a measurer that never grows cannot stall layout
func FitFontSize(text string, target float64, m TextMeasurer) (float64, Size) {
	size := parameter.BaseFontSize
	extent := m.Measure(text, size)
	for extent.H < target && size < parameter.MaxFontSize {
		size += parameter.FontSizeStep
		extent = m.Measure(text, size)
	}
	return size, extent
}

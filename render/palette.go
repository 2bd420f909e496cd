package render

import (
	"github.com/lixenwraith/vi-countdown/parameter"
	"github.com/lixenwraith/vi-countdown/parameter/visual"
)

// gradientSteps is the resolution of the precomputed highlight gradient
const gradientSteps = 64

// Theme holds the widget colors as hex strings
type Theme struct {
	Ring       string
	Revealed   string
	Highlight  string
	Marker     string
	Stroke     string
	Text       string
	Background string
}

// DefaultTheme returns the stock palette
func DefaultTheme() Theme {
	return Theme{
		Ring:       visual.HexRing,
		Revealed:   visual.HexRevealed,
		Highlight:  visual.HexHighlight,
		Marker:     visual.HexMarker,
		Stroke:     visual.HexStroke,
		Text:       visual.HexText,
		Background: visual.HexBackground,
	}
}

// Palette is a parsed Theme with the revealed-area gradient precomputed
type Palette struct {
	Ring       RGB
	Revealed   RGB
	Highlight  RGB
	Marker     RGB
	Stroke     RGB
	Text       RGB
	Background RGB

	// Lookup table array access (no pointers) for speed
	gradient [gradientSteps]RGB
}

// NewPalette parses every theme color, the first invalid one is reported
func NewPalette(t Theme) (*Palette, error) {
	p := &Palette{}
	fields := []struct {
		hex string
		dst *RGB
	}{
		{t.Ring, &p.Ring},
		{t.Revealed, &p.Revealed},
		{t.Highlight, &p.Highlight},
		{t.Marker, &p.Marker},
		{t.Stroke, &p.Stroke},
		{t.Text, &p.Text},
		{t.Background, &p.Background},
	}
	for _, f := range fields {
		c, err := ParseHex(f.hex)
		if err != nil {
			return nil, err
		}
		*f.dst = c
	}

	for i := range p.gradient {
		p.gradient[i] = BlendLab(p.Highlight, p.Revealed, float64(i)/float64(gradientSteps-1))
	}
	return p, nil
}

// RevealedAt returns the revealed-area color at r, the distance from center as a fraction of the outer radius
// Solid highlight up to HighlightStop, then a gradient out to the revealed color at the rim
func (p *Palette) RevealedAt(r float64) RGB {
	if r <= parameter.HighlightStop {
		return p.gradient[0]
	}
	t := (r - parameter.HighlightStop) / (1 - parameter.HighlightStop)
	idx := int(t*float64(gradientSteps-1) + 0.5)
	if idx >= gradientSteps {
		idx = gradientSteps - 1
	}
	return p.gradient[idx]
}

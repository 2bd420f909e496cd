package render

import (
	"math"

	"github.com/lixenwraith/vi-countdown/layout"
	"github.com/lixenwraith/vi-countdown/parameter"
)

// glyphRows is the ink height of every glyph in font pixels
const glyphRows = 7

// glyphSpacing is the gap between adjacent glyphs in font pixels
const glyphSpacing = 1

// glyph is a bitmap row-major, MSB-first within width: bit (width-1) is column 0
type glyph struct {
	width int
	rows  [glyphRows]uint8
}

// readoutFont covers what the readout ever shows
var readoutFont = map[rune]glyph{
	'0': {5, [glyphRows]uint8{0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E}},
	'1': {5, [glyphRows]uint8{0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E}},
	'2': {5, [glyphRows]uint8{0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F}},
	'3': {5, [glyphRows]uint8{0x1F, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0E}},
	'4': {5, [glyphRows]uint8{0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02}},
	'5': {5, [glyphRows]uint8{0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E}},
	'6': {5, [glyphRows]uint8{0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E}},
	'7': {5, [glyphRows]uint8{0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08}},
	'8': {5, [glyphRows]uint8{0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E}},
	'9': {5, [glyphRows]uint8{0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C}},
	':': {2, [glyphRows]uint8{0x00, 0x03, 0x03, 0x00, 0x03, 0x03, 0x00}},
	' ': {3, [glyphRows]uint8{}},
}

// fallbackGlyph is a hollow box for runes outside the font
var fallbackGlyph = glyph{5, [glyphRows]uint8{0x1F, 0x11, 0x11, 0x11, 0x11, 0x11, 0x1F}}

func lookupGlyph(r rune) glyph {
	if g, ok := readoutFont[r]; ok {
		return g
	}
	return fallbackGlyph
}

func (g glyph) set(col, row int) bool {
	if col < 0 || col >= g.width || row < 0 || row >= glyphRows {
		return false
	}
	return g.rows[row]&(1<<(g.width-1-col)) != 0
}

// fontScale returns surface pixels per font pixel
func fontScale(fontSize float64) float64 {
	return fontSize / parameter.GlyphEmRows
}

// textColumns returns the ink width of text in font pixels
func textColumns(text string) int {
	cols := 0
	n := 0
	for _, r := range text {
		cols += lookupGlyph(r).width
		n++
	}
	if n > 1 {
		cols += (n - 1) * glyphSpacing
	}
	return cols
}

// MeasureText returns the ink extent of text at fontSize in surface pixels
func MeasureText(text string, fontSize float64) layout.Size {
	if text == "" {
		return layout.Size{}
	}
	s := fontScale(fontSize)
	return layout.Size{
		W: float64(textColumns(text)) * s,
		H: glyphRows * s,
	}
}

// textInk reports whether the pixel at (x, y) relative to the text origin is inked
// Nearest-neighbor sampling of the bitmap at the given scale
func textInk(text string, fontSize, x, y float64) bool {
	s := fontScale(fontSize)
	if s <= 0 || x < 0 || y < 0 {
		return false
	}
	row := int(math.Floor(y / s))
	col := int(math.Floor(x / s))
	if row >= glyphRows {
		return false
	}
	for _, r := range text {
		g := lookupGlyph(r)
		if col < g.width {
			return g.set(col, row)
		}
		col -= g.width + glyphSpacing
		if col < 0 {
			return false
		}
	}
	return false
}

package parameter

// Ring Geometry
// All radii are proportional to container height so the widget scales uniformly
const (
	// OuterRadiusFactor is the outer ring radius as a fraction of container height
	OuterRadiusFactor = 0.24

	// InnerRadiusFactor is the inner ring radius as a fraction of container height
	InnerRadiusFactor = 0.15

	// FootprintFactor is the reserved horizontal footprint in outer diameters (ring + readout)
	FootprintFactor = 3.25

	// MarkerRadiusDivisor sizes the marker ball: radius = inner radius / divisor
	MarkerRadiusDivisor = 12

	// MinSweepAngle keeps the sweep path from degenerating to an empty shape at session start
	MinSweepAngle = 0.1
)

// Readout Auto-Fit
const (
	// TextFitFactor is the fraction of the outer diameter the readout height must reach
	TextFitFactor = 0.75

	// BaseFontSize is the starting point of the auto-fit search
	BaseFontSize = 12.0

	// FontSizeStep is the auto-fit increment
	FontSizeStep = 0.5

	// MaxFontSize bounds the auto-fit search
	MaxFontSize = 4096.0
)

// Terminal Surface
const (
	// PixelsPerCellX is the horizontal pixel count of one terminal cell
	PixelsPerCellX = 1

	// PixelsPerCellY is the vertical pixel count of one terminal cell (half-block rendering)
	PixelsPerCellY = 2

	// GlyphEmRows is the em height of the readout bitmap font in font pixels
	GlyphEmRows = 10

	// StrokeWidth is the outline width of the remaining ring in pixels
	StrokeWidth = 1.0

	// HighlightStop is the fraction of the outer radius where the revealed gradient starts
	HighlightStop = 0.7

	// StatusLineHeight is the number of rows reserved for the debug status line
	StatusLineHeight = 1
)

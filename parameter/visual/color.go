package visual

// Default countdown palette as hex strings, parsed by config and render
const (
	// HexRing fills the part of the ring still to be wiped
	HexRing = "#74546a"

	// HexRevealed is the outer color of the wiped region gradient
	HexRevealed = "#c0c5c1"

	// HexHighlight is the inner color of the wiped region gradient
	HexHighlight = "#ffffff"

	// HexMarker fills the per-second marker ball
	HexMarker = "#eaf0ce"

	// HexStroke outlines the remaining ring
	HexStroke = "#473341"

	// HexText colors the mm:ss readout
	HexText = "#eaf0ce"

	// HexBackground is the color everything fades toward
	HexBackground = "#000000"
)

package visual

// HalfBlockUpper renders two vertical pixels per cell: foreground = top, background = bottom
const HalfBlockUpper = '▀'

// HalfBlockEmpty is drawn where both pixels of a cell are background
const HalfBlockEmpty = ' '

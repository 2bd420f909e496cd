package countdown

import "github.com/lixenwraith/vi-countdown/layout"

// Surface draws frames; every method is invoked on the scheduler thread
type Surface interface {
	// Layout applies new geometry before the next Render
	Layout(g layout.Geometry)

	// Render replaces the displayed frame
	Render(f FrameState)

	// SetVisible shows or hides the widget
	SetVisible(visible bool)

	// FadeIn starts the entry effect
	FadeIn()

	// FadeOut starts the exit effect and calls onComplete on the scheduler thread when done
	// Calling it again while a fade-out runs must not restart the effect
	FadeOut(onComplete func())
}

// Container is the host area the widget attaches to
type Container interface {
	layout.TextMeasurer

	// Size returns the drawable extent in surface pixels
	Size() (w, h float64)
}

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-countdown/parameter"
)

// linearMeasurer scales a fixed em box, 0.7 em tall and 0.5 em per rune wide
type linearMeasurer struct {
	calls int
}

func (m *linearMeasurer) Measure(text string, fontSize float64) Size {
	m.calls++
	return Size{
		W: 0.5 * fontSize * float64(len([]rune(text))),
		H: 0.7 * fontSize,
	}
}

// flatMeasurer never grows, simulating a broken font backend
type flatMeasurer struct{}

func (flatMeasurer) Measure(string, float64) Size { return Size{W: 1, H: 1} }

func TestComputeProportions(t *testing.T) {
	g := Compute(400, 100, "5:00", &linearMeasurer{})

	assert.InDelta(t, 24.0, g.OuterRadius, 1e-9)
	assert.InDelta(t, 15.0, g.InnerRadius, 1e-9)
	assert.InDelta(t, 15.0/parameter.MarkerRadiusDivisor, g.MarkerRadius, 1e-9)
	assert.InDelta(t, 3.25*48, g.Footprint, 1e-9)

	// Footprint is centered horizontally, ring center sits one radius in
	assert.InDelta(t, (400-g.Footprint)/2, g.Left(), 1e-9)
	assert.InDelta(t, 400-(400-g.Footprint)/2, g.Right(), 1e-9)
	assert.InDelta(t, 50.0, g.Center.Y, 1e-9)
}

func TestComputeTextPlacement(t *testing.T) {
	g := Compute(400, 100, "5:00", &linearMeasurer{})

	// Top-right corner flush with footprint edge, bottom on the center line
	assert.InDelta(t, g.Right(), g.TextOrigin.X+g.TextSize.W, 1e-9)
	assert.InDelta(t, g.Center.Y, g.TextOrigin.Y+g.TextSize.H, 1e-9)
}

func TestComputeIsDeterministic(t *testing.T) {
	a := Compute(321, 87, "5:00", &linearMeasurer{})
	b := Compute(321, 87, "5:00", &linearMeasurer{})
	assert.Equal(t, a, b)
}

func TestComputeScalesWithHeightOnly(t *testing.T) {
	narrow := Compute(300, 100, "5:00", &linearMeasurer{})
	wide := Compute(900, 100, "5:00", &linearMeasurer{})

	assert.Equal(t, narrow.OuterRadius, wide.OuterRadius)
	assert.Equal(t, narrow.FontSize, wide.FontSize)
	assert.InDelta(t, 300.0, wide.Center.X-narrow.Center.X, 1e-9)
}

func TestFitFontSizeReachesTarget(t *testing.T) {
	m := &linearMeasurer{}
	target := 0.75 * 48

	size, extent := FitFontSize("5:00", target, m)

	require.GreaterOrEqual(t, extent.H, target)
	// One step smaller would have been short of the target
	assert.Less(t, 0.7*(size-parameter.FontSizeStep), target)
	assert.Equal(t, int((size-parameter.BaseFontSize)/parameter.FontSizeStep)+1, m.calls)
}

func TestFitFontSizeKeepsBaseWhenAlreadyLarge(t *testing.T) {
	size, _ := FitFontSize("5:00", 1, &linearMeasurer{})
	assert.Equal(t, parameter.BaseFontSize, size)
}

func TestFitFontSizeBounded(t *testing.T) {
	size, extent := FitFontSize("5:00", 1000, flatMeasurer{})
	assert.GreaterOrEqual(t, size, parameter.MaxFontSize)
	assert.Equal(t, Size{W: 1, H: 1}, extent)
}

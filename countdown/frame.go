package countdown

import (
	"math"

	"github.com/lixenwraith/vi-countdown/layout"
	"github.com/lixenwraith/vi-countdown/parameter"
	"github.com/lixenwraith/vi-countdown/vmath"
)

// FrameState is the complete visual state of one tick, produced fresh and never mutated
type FrameState struct {
	SweepAngle   float64 // Degrees wiped, clockwise from 12 o'clock
	SweepPath    vmath.PathDescription
	Marker       vmath.Point
	MarkerRadius float64
	Text         string
	Remaining    float64 // Seconds, clamped at zero
	Phase        Phase
}

// newFrame builds a frame against geometry g
func newFrame(g layout.Geometry, angle float64, secondIndex int, text string, remaining float64, phase Phase) FrameState {
	return FrameState{
		SweepAngle:   angle,
		SweepPath:    vmath.SweepPath(angle, g.Center, g.InnerRadius, g.OuterRadius),
		Marker:       vmath.MarkerPosition(g.Center, secondIndex, g.MarkerRadius, g.InnerRadius),
		MarkerRadius: g.MarkerRadius,
		Text:         text,
		Remaining:    math.Max(remaining, 0),
		Phase:        phase,
	}
}

// IdleFrame is shown before the first start: full ring, marker at 12, full duration readout
func IdleFrame(g layout.Geometry, phase Phase) FrameState {
	return newFrame(g, 0, 0, IdleText(), parameter.CountdownSeconds, phase)
}

// TerminalFrame is the single frame pushed when the countdown runs out
func TerminalFrame(g layout.Geometry) FrameState {
	return newFrame(g, 0, 0, FormatRemaining(0), 0, PhaseFinished)
}

// RunningFrame derives the frame for a running session from elapsed and remaining seconds
func RunningFrame(g layout.Geometry, elapsed, remaining float64) FrameState {
	index := int(math.Floor(elapsed)) % parameter.MarkerCycleSeconds
	angle := vmath.SweepAngle(remaining, parameter.CountdownSeconds)
	return newFrame(g, angle, index, FormatRemaining(DisplaySeconds(remaining)), remaining, PhaseRunning)
}

// IdleText is the readout shown while no session runs
func IdleText() string {
	return FormatRemaining(parameter.CountdownSeconds)
}

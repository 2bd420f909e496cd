package parameter

import "time"

// Countdown Timing
const (
	// CountdownDuration is the fixed length of every countdown (5 minutes)
	CountdownDuration = 300 * time.Second

	// CountdownSeconds is CountdownDuration in whole seconds
	CountdownSeconds = 300

	// TickInterval is the animator cadence, each tick reschedules the next one
	TickInterval = 20 * time.Millisecond

	// MarkerCycleSeconds is the number of positions on the marker clock face
	MarkerCycleSeconds = 60
)

// Fade Transitions
const (
	// FadeDuration is the length of the fade-in and fade-out effects
	FadeDuration = 1 * time.Second

	// FadeStepInterval is the redraw cadence while a fade is running
	FadeStepInterval = 40 * time.Millisecond
)

// Engine Loop
const (
	// LoopQueueSize is the initial capacity of the loop's pending task slice
	LoopQueueSize = 256

	// EventQueueSize bounds the events one scheduler callback may raise before they are flushed
	// A callback raises at most a handful (started, layout, time-up, stopped)
	EventQueueSize = 16
)

// DroppedFrameLogInterval throttles warnings about frames skipped after a surface failure
const DroppedFrameLogInterval = 1 * time.Second

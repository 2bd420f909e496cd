// Package schedule plans countdowns that end when a recurring meeting begins
package schedule

import (
	"fmt"
	"time"

	"github.com/adhocore/gronx"

	"github.com/lixenwraith/vi-countdown/parameter"
)

// Plan is the countdown for the next meeting occurrence
type Plan struct {
	// Meeting is the next occurrence strictly after the planning instant
	Meeting time.Time

	// Start is when the countdown must begin to reach zero at Meeting
	Start time.Time

	// Delay is the wait before Start, zero when the countdown is already due
	Delay time.Duration

	// AlreadyElapsed is the whole seconds of the countdown that passed before now
	AlreadyElapsed int
}

// Due reports whether the countdown should start immediately
func (p Plan) Due() bool {
	return p.Delay == 0
}

// Validate reports whether expr is a usable meeting expression
func Validate(expr string) error {
	if !gronx.New().IsValid(expr) {
		return fmt.Errorf("invalid cron expression %q", expr)
	}
	return nil
}

// Next plans the countdown for the first meeting after now
// A countdown that should already be running yields Delay 0 and the seconds it is behind
func Next(expr string, now time.Time) (Plan, error) {
	return NextAfter(expr, now, now)
}

// NextAfter plans the countdown for the first meeting strictly after after, measured from now
// Passing the last armed meeting as after skips occurrences already counted down
func NextAfter(expr string, after, now time.Time) (Plan, error) {
	if err := Validate(expr); err != nil {
		return Plan{}, err
	}

	meeting, err := gronx.NextTickAfter(expr, after, false)
	if err != nil {
		return Plan{}, fmt.Errorf("next meeting for %q: %w", expr, err)
	}

	p := Plan{
		Meeting: meeting,
		Start:   meeting.Add(-parameter.CountdownDuration),
	}
	if now.Before(p.Start) {
		p.Delay = p.Start.Sub(now)
		return p, nil
	}
	p.AlreadyElapsed = int(now.Sub(p.Start) / time.Second)
	return p, nil
}

package countdown

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-countdown/parameter"
)

// Session is the countdown state owned by the scheduler thread
// Remaining time is always derived from the clock, never stored
type Session struct {
	id       uuid.UUID
	start    time.Time
	duration time.Duration
	phase    Phase
}

// NewSession creates an idle session with the fixed countdown duration
func NewSession() *Session {
	return &Session{
		duration: parameter.CountdownDuration,
		phase:    PhaseIdle,
	}
}

// ID returns the identifier of the current arming, zero before the first
func (s *Session) ID() uuid.UUID { return s.id }

// Phase returns the current phase
func (s *Session) Phase() Phase { return s.phase }

// Duration returns the countdown length
func (s *Session) Duration() time.Duration { return s.duration }

// StartedAt returns the start instant, zero if never armed
func (s *Session) StartedAt() time.Time { return s.start }

// Arm starts or restarts the countdown as if it began alreadyElapsed before now
// Last call wins; a fresh id is issued every time
func (s *Session) Arm(now time.Time, alreadyElapsed time.Duration) {
	if alreadyElapsed < 0 {
		alreadyElapsed = 0
	}
	s.id = uuid.New()
	s.start = now.Add(-alreadyElapsed)
	s.phase = PhaseRunning
}

// Finish moves a running session to Finished, false from any other phase
func (s *Session) Finish() bool {
	return s.transition(PhaseFinished)
}

// Stop moves the session to Stopped, false when already stopped
func (s *Session) Stop() bool {
	return s.transition(PhaseStopped)
}

// Elapsed returns time since start, zero when never armed
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s.start.IsZero() {
		return 0
	}
	return now.Sub(s.start)
}

// Remaining returns the time left, negative once the countdown has run out
func (s *Session) Remaining(now time.Time) time.Duration {
	return s.duration - s.Elapsed(now)
}

func (s *Session) transition(to Phase) bool {
	if !CanTransition(s.phase, to) {
		return false
	}
	s.phase = to
	return true
}

package countdown

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/vi-countdown/engine"
	"github.com/lixenwraith/vi-countdown/event"
	"github.com/lixenwraith/vi-countdown/layout"
	"github.com/lixenwraith/vi-countdown/parameter"
	"github.com/lixenwraith/vi-countdown/status"
)

// Animator drives the self-rescheduling tick and owns the session
// All methods except RequestStop must run on the scheduler thread
type Animator struct {
	sched   engine.Scheduler
	surface Surface
	session *Session
	emit    func(t event.EventType, payload any)
	logger  zerolog.Logger

	geometry layout.Geometry
	enabled  bool
	visible  bool
	pending  engine.Task
	ticks    int64
	fadeGen  uint64

	// Raised from any goroutine by RequestStop, cleared by Arm
	stopRequested atomic.Bool

	dropLog rate.Sometimes

	// Cached metric pointers
	statTicks     *atomic.Int64
	statFrames    *atomic.Int64
	statDropped   *atomic.Int64
	statCompleted *atomic.Int64
	statRemaining *status.AtomicFloat
	statPhase     *status.AtomicString
	statVisible   *atomic.Bool
}

// NewAnimator creates an animator; emit receives every lifecycle event
func NewAnimator(sched engine.Scheduler, surface Surface, reg *status.Registry, logger zerolog.Logger, emit func(event.EventType, any)) *Animator {
	a := &Animator{
		sched:         sched,
		surface:       surface,
		session:       NewSession(),
		emit:          emit,
		logger:        logger,
		dropLog:       rate.Sometimes{Interval: parameter.DroppedFrameLogInterval},
		statTicks:     reg.Ints.Get(status.KeyTicks),
		statFrames:    reg.Ints.Get(status.KeyFrames),
		statDropped:   reg.Ints.Get(status.KeyDroppedFrames),
		statCompleted: reg.Ints.Get(status.KeyCompleted),
		statRemaining: reg.Floats.Get(status.KeyRemaining),
		statPhase:     reg.Strings.Get(status.KeyPhase),
		statVisible:   reg.Bools.Get(status.KeyVisible),
	}
	a.statRemaining.Set(parameter.CountdownSeconds)
	a.statPhase.Store(PhaseIdle.String())
	return a
}

// Session exposes the session for inspection on the scheduler thread
func (a *Animator) Session() *Session { return a.session }

// Ticks returns the number of ticks processed
func (a *Animator) Ticks() int64 { return a.ticks }

// Enable applies first geometry, shows the idle frame with a fade-in and starts ticking
func (a *Animator) Enable(g layout.Geometry) {
	a.geometry = g
	if a.enabled {
		a.redraw()
		return
	}
	a.enabled = true
	a.show()
	a.scheduleTick()
}

// SetGeometry replaces geometry and redraws the current state
func (a *Animator) SetGeometry(g layout.Geometry) {
	a.geometry = g
	if a.enabled {
		a.redraw()
	}
}

// Arm starts the countdown as if alreadyElapsed had passed, re-arming if already running
// The first frame is produced immediately when ticking is enabled
func (a *Animator) Arm(alreadyElapsed time.Duration) {
	a.stopRequested.Store(false)
	a.cancelPending()

	// A stopped surface may still be fading out
	resurface := !a.visible || a.session.Phase() == PhaseStopped

	a.session.Arm(a.sched.Now(), alreadyElapsed)
	a.statPhase.Store(a.session.Phase().String())
	a.logger.Info().
		Str("session", a.session.ID().String()).
		Dur("already_elapsed", alreadyElapsed).
		Msg("countdown armed")
	a.emit(event.EventCountdownStarted, &event.StartedPayload{
		SessionID:      a.session.ID(),
		AlreadyElapsed: int(alreadyElapsed / time.Second),
	})

	if !a.enabled {
		return
	}
	if resurface {
		a.show()
	}
	a.tick()
}

// RequestStop flags a pending stop so an in-flight tick bails out before touching state
// Safe from any goroutine; Halt must follow on the scheduler thread
func (a *Animator) RequestStop() {
	a.stopRequested.Store(true)
}

// Halt cancels ticking, stops the session and fades the surface out
// Repeated calls are no-ops
func (a *Animator) Halt() {
	a.cancelPending()
	if !a.session.Stop() {
		return
	}
	a.statPhase.Store(a.session.Phase().String())
	a.logger.Info().Str("session", a.session.ID().String()).Msg("countdown stopped")
	a.emit(event.EventCountdownStopped, nil)

	if !a.enabled || a.sched.ShuttingDown() {
		return
	}

	a.fadeGen++
	gen := a.fadeGen
	a.guard("fade-out", func() {
		a.surface.FadeOut(func() {
			// A later Start owns the surface now
			if gen != a.fadeGen || a.session.Phase() != PhaseStopped {
				return
			}
			a.setVisible(false)
			a.emit(event.EventFadeOutComplete, nil)
		})
	})
}

// tick is one scheduler callback
func (a *Animator) tick() {
	a.pending = nil

	if a.sched.ShuttingDown() {
		return
	}
	if a.stopRequested.Load() {
		return
	}

	a.ticks++
	a.statTicks.Add(1)

	if a.session.Phase() != PhaseRunning {
		a.scheduleTick()
		return
	}

	now := a.sched.Now()
	remaining := a.session.Remaining(now)
	if remaining >= 0 {
		elapsed := a.session.Elapsed(now)
		a.push(RunningFrame(a.geometry, elapsed.Seconds(), remaining.Seconds()))
		a.statRemaining.Set(remaining.Seconds())
		a.scheduleTick()
		return
	}

	a.finish()
}

// finish pushes the terminal frame and emits the single time-up notification
func (a *Animator) finish() {
	a.push(TerminalFrame(a.geometry))
	if !a.session.Finish() {
		return
	}
	a.statRemaining.Set(0)
	a.statPhase.Store(a.session.Phase().String())
	a.statCompleted.Add(1)
	a.logger.Info().
		Str("session", a.session.ID().String()).
		Int64("ticks", a.ticks).
		Msg("countdown finished")
	a.emit(event.EventTimeUp, nil)
}

// currentFrame derives the frame for the present phase without advancing it
func (a *Animator) currentFrame() FrameState {
	switch a.session.Phase() {
	case PhaseRunning:
		now := a.sched.Now()
		remaining := a.session.Remaining(now)
		if remaining < 0 {
			return TerminalFrame(a.geometry)
		}
		return RunningFrame(a.geometry, a.session.Elapsed(now).Seconds(), remaining.Seconds())
	case PhaseFinished:
		return TerminalFrame(a.geometry)
	default:
		return IdleFrame(a.geometry, a.session.Phase())
	}
}

func (a *Animator) redraw() {
	if a.sched.ShuttingDown() {
		return
	}
	a.push(a.currentFrame())
}

// show renders the current frame, makes the surface visible and fades it in
func (a *Animator) show() {
	a.fadeGen++
	a.push(a.currentFrame())
	a.setVisible(true)
	a.guard("fade-in", a.surface.FadeIn)
}

func (a *Animator) setVisible(v bool) {
	if a.guard("visibility", func() { a.surface.SetVisible(v) }) {
		a.visible = v
		a.statVisible.Store(v)
	}
}

// push hands a frame to the surface, a surface failure drops the frame only
func (a *Animator) push(f FrameState) {
	if a.guard("render", func() { a.surface.Render(f) }) {
		a.statFrames.Add(1)
	}
}

// guard runs a surface call, converting a panic into a dropped frame
func (a *Animator) guard(op string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			a.statDropped.Add(1)
			a.dropLog.Do(func() {
				a.logger.Warn().
					Str("op", op).
					Interface("panic", r).
					Int64("dropped", a.statDropped.Load()).
					Msg("surface call failed, frame dropped")
			})
		}
	}()
	fn()
	return true
}

func (a *Animator) scheduleTick() {
	if a.pending != nil {
		return
	}
	a.pending = a.sched.ScheduleAfter(parameter.TickInterval, a.tick)
}

func (a *Animator) cancelPending() {
	if a.pending != nil {
		a.pending.Cancel()
		a.pending = nil
	}
}

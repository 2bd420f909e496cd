package countdown

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-countdown/engine"
	"github.com/lixenwraith/vi-countdown/event"
	"github.com/lixenwraith/vi-countdown/layout"
	"github.com/lixenwraith/vi-countdown/status"
)

// Widget is the countdown host: construct with New, then Attach to a container
// Public methods are safe from any goroutine; work is marshaled onto the scheduler
type Widget struct {
	sched   engine.Scheduler
	surface Surface
	anim    *Animator

	queue  *event.EventQueue
	router *event.Router[*Widget]

	// A flush is posted for the current batch
	flushPending bool

	reg    *status.Registry
	logger zerolog.Logger

	// Scheduler thread state
	container Container
	geometry  layout.Geometry
	attached  bool

	statResizes  *atomic.Int64
	statFontSize *status.AtomicFloat
}

// Option configures a Widget
type Option func(*Widget)

// WithLogger sets the widget logger, defaults to a no-op logger
func WithLogger(logger zerolog.Logger) Option {
	return func(w *Widget) { w.logger = logger }
}

// WithRegistry shares a metrics registry, defaults to a private one
func WithRegistry(reg *status.Registry) Option {
	return func(w *Widget) { w.reg = reg }
}

// New builds the widget value objects; nothing is drawn until Attach
func New(sched engine.Scheduler, surface Surface, opts ...Option) *Widget {
	w := &Widget{
		sched:   sched,
		surface: surface,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.reg == nil {
		w.reg = status.NewRegistry()
	}

	w.queue = event.NewEventQueue()
	w.router = event.NewRouter[*Widget](w.queue)
	w.router.OnPanic(func(ev event.Event, r any) {
		w.logger.Error().Stringer("event", ev.Type).Interface("panic", r).Msg("event handler failed")
	})
	w.anim = NewAnimator(sched, surface, w.reg, w.logger, w.emit)
	w.statResizes = w.reg.Ints.Get(status.KeyLayoutResizes)
	w.statFontSize = w.reg.Floats.Get(status.KeyLayoutFontSize)
	return w
}

// Registry returns the metrics registry the widget writes to
func (w *Widget) Registry() *status.Registry { return w.reg }

// Attach lays out against c, shows the idle frame with a fade-in and enables ticking
// A second Attach rebinds to the new container
func (w *Widget) Attach(c Container) {
	w.sched.Post(func() {
		w.container = c
		w.attached = true
		w.applyLayout()
		w.anim.Enable(w.geometry)
	})
}

// Relayout recomputes geometry from the attached container's current size
func (w *Widget) Relayout() {
	w.sched.Post(func() {
		if !w.attached {
			return
		}
		w.applyLayout()
		w.anim.SetGeometry(w.geometry)
		w.statResizes.Add(1)
	})
}

// Start arms the countdown as if secondsAlreadyElapsed had already passed
// Calling it while running restarts from the new offset
func (w *Widget) Start(secondsAlreadyElapsed int) {
	if secondsAlreadyElapsed < 0 {
		w.logger.Warn().Int("elapsed", secondsAlreadyElapsed).Msg("negative elapsed clamped to zero")
		secondsAlreadyElapsed = 0
	}
	elapsed := time.Duration(secondsAlreadyElapsed) * time.Second
	w.sched.Post(func() {
		w.anim.Arm(elapsed)
	})
}

// Stop cancels ticking and fades the widget out; safe to call repeatedly
func (w *Widget) Stop() {
	w.anim.RequestStop()
	w.sched.Post(w.anim.Halt)
}

// Subscribe registers h for its event types; handlers run on the scheduler thread
func (w *Widget) Subscribe(h event.Handler[*Widget]) {
	w.sched.Post(func() {
		w.router.Register(h)
	})
}

// OnTimeUp is a convenience for subscribing a function to EventTimeUp
func (w *Widget) OnTimeUp(fn func()) {
	w.Subscribe(event.On(func(*Widget, event.Event) { fn() }, event.EventTimeUp))
}

// Phase returns the session phase, scheduler thread only
func (w *Widget) Phase() Phase { return w.anim.session.Phase() }

// Geometry returns the applied geometry, scheduler thread only
func (w *Widget) Geometry() layout.Geometry { return w.geometry }

func (w *Widget) applyLayout() {
	width, height := w.container.Size()
	w.geometry = layout.Compute(width, height, IdleText(), w.container)
	w.anim.guard("layout", func() { w.surface.Layout(w.geometry) })
	w.statFontSize.Set(w.geometry.FontSize)
	w.logger.Debug().
		Float64("width", width).
		Float64("height", height).
		Float64("font_size", w.geometry.FontSize).
		Msg("layout applied")
	w.emit(event.EventLayoutChanged, &event.LayoutPayload{
		Width:    width,
		Height:   height,
		FontSize: w.geometry.FontSize,
	})
}

// emit queues an event for the current batch
// Handlers run once the scheduler callback that raised it has returned, after its frame is pushed
func (w *Widget) emit(t event.EventType, payload any) {
	if !w.queue.Push(event.Event{
		Type:      t,
		Payload:   payload,
		Frame:     w.anim.ticks,
		Timestamp: w.sched.Now(),
	}) {
		w.logger.Warn().Stringer("event", t).Int64("dropped", w.queue.Dropped()).Msg("event batch full, oldest dropped")
	}
	w.logger.Debug().Stringer("event", t).Msg("event emitted")

	if !w.flushPending {
		w.flushPending = true
		w.sched.Post(w.flush)
	}
}

// flush dispatches the pending batch, handlers that emit in turn are drained in the same pass
func (w *Widget) flush() {
	w.flushPending = false
	for w.queue.Len() > 0 {
		w.router.DispatchAll(w)
	}
}

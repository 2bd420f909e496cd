package render

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-countdown/countdown"
	"github.com/lixenwraith/vi-countdown/engine"
	"github.com/lixenwraith/vi-countdown/layout"
	"github.com/lixenwraith/vi-countdown/parameter"
	"github.com/lixenwraith/vi-countdown/status"
)

// fadeDirection of a running fade
type fadeDirection int

const (
	fadeNone fadeDirection = iota
	fadeIn
	fadeOut
)

// TerminalSurface draws the countdown on a tcell screen and doubles as its container
// Drawing methods run on the scheduler thread; Size and Measure are safe from any goroutine
type TerminalSurface struct {
	screen  tcell.Screen
	sched   engine.Scheduler
	palette *Palette
	reg     *status.Registry
	debug   bool

	canvas   *Canvas
	geometry layout.Geometry
	frame    countdown.FrameState
	hasFrame bool
	visible  bool

	// Fade state, opacity starts at zero so the first FadeIn is visible
	opacity    float64
	fadeDir    fadeDirection
	fadeFrom   float64
	fadeStart  time.Time
	fadeTask   engine.Task
	fadeOnDone func()

	statOpacity *status.AtomicFloat
	statVisible *atomic.Bool
}

// SurfaceOption configures a TerminalSurface
type SurfaceOption func(*TerminalSurface)

// WithDebugLine reserves the bottom row for a metrics summary
func WithDebugLine() SurfaceOption {
	return func(s *TerminalSurface) {
		s.debug = true
	}
}

// NewTerminalSurface binds a surface to an initialized screen
func NewTerminalSurface(screen tcell.Screen, sched engine.Scheduler, palette *Palette, reg *status.Registry, opts ...SurfaceOption) *TerminalSurface {
	s := &TerminalSurface{
		screen:  screen,
		sched:   sched,
		palette: palette,
		reg:     reg,
	}
	for _, opt := range opts {
		opt(s)
	}
	cols, rows := s.cells()
	s.canvas = NewCanvas(cols, rows, palette.Background)
	s.statOpacity = reg.Floats.Get(status.KeyFadeOpacity)
	s.statVisible = reg.Bools.Get(status.KeyVisible)
	return s
}

// cells returns the terminal area available to the canvas
func (s *TerminalSurface) cells() (int, int) {
	cols, rows := s.screen.Size()
	if s.debug {
		rows -= parameter.StatusLineHeight
	}
	return max(cols, 0), max(rows, 0)
}

// Size implements countdown.Container, in canvas pixels
func (s *TerminalSurface) Size() (float64, float64) {
	cols, rows := s.cells()
	return float64(cols * parameter.PixelsPerCellX), float64(rows * parameter.PixelsPerCellY)
}

// Measure implements layout.TextMeasurer
func (s *TerminalSurface) Measure(text string, fontSize float64) layout.Size {
	return MeasureText(text, fontSize)
}

// Layout implements countdown.Surface
func (s *TerminalSurface) Layout(g layout.Geometry) {
	s.geometry = g
	cols, rows := s.cells()
	s.canvas.Resize(cols, rows)
	s.screen.Clear()
	s.draw()
}

// Render implements countdown.Surface
func (s *TerminalSurface) Render(f countdown.FrameState) {
	s.frame = f
	s.hasFrame = true
	s.draw()
}

// SetVisible implements countdown.Surface
// Visibility gates drawing; opacity is driven by the fades only
func (s *TerminalSurface) SetVisible(visible bool) {
	s.visible = visible
	s.statVisible.Store(visible)
	s.draw()
}

// FadeIn implements countdown.Surface; a running fade-out is abandoned without its callback
func (s *TerminalSurface) FadeIn() {
	if s.fadeDir == fadeIn {
		return
	}
	s.startFade(fadeIn, nil)
}

// FadeOut implements countdown.Surface; repeated calls while fading out are ignored
func (s *TerminalSurface) FadeOut(onComplete func()) {
	if s.fadeDir == fadeOut {
		return
	}
	s.startFade(fadeOut, onComplete)
}

// Opacity returns the current fade opacity in [0, 1]
func (s *TerminalSurface) Opacity() float64 {
	return s.opacity
}

func (s *TerminalSurface) startFade(dir fadeDirection, onDone func()) {
	s.cancelFade()
	s.fadeDir = dir
	s.fadeFrom = s.opacity
	s.fadeStart = s.sched.Now()
	s.fadeOnDone = onDone
	s.fadeStep()
}

// fadeStep recomputes opacity from elapsed time so a late step never drifts
func (s *TerminalSurface) fadeStep() {
	s.fadeTask = nil
	if s.sched.ShuttingDown() {
		return
	}

	progress := float64(s.sched.Now().Sub(s.fadeStart)) / float64(parameter.FadeDuration)
	if progress > 1 {
		progress = 1
	}

	target := 1.0
	if s.fadeDir == fadeOut {
		target = 0
	}
	s.setOpacity(s.fadeFrom + (target-s.fadeFrom)*progress)
	s.draw()

	if progress < 1 {
		s.fadeTask = s.sched.ScheduleAfter(parameter.FadeStepInterval, s.fadeStep)
		return
	}

	done := s.fadeOnDone
	s.fadeDir = fadeNone
	s.fadeOnDone = nil
	if done != nil {
		done()
	}
}

func (s *TerminalSurface) cancelFade() {
	if s.fadeTask != nil {
		s.fadeTask.Cancel()
		s.fadeTask = nil
	}
	s.fadeDir = fadeNone
	s.fadeOnDone = nil
}

func (s *TerminalSurface) setOpacity(v float64) {
	s.opacity = v
	s.statOpacity.Set(v)
}

// draw rasterizes the last frame and pushes it to the terminal
func (s *TerminalSurface) draw() {
	s.canvas.Clear()
	if s.visible && s.hasFrame {
		Rasterize(s.canvas, s.palette, s.geometry, s.frame)
	}
	s.canvas.Flush(s.screen, 0, s.opacity)
	if s.debug {
		s.drawStatusLine()
	}
	s.screen.Show()
}

func (s *TerminalSurface) drawStatusLine() {
	cols, rows := s.screen.Size()
	y := rows - parameter.StatusLineHeight
	if y < 0 {
		return
	}
	style := textStyle(s.palette.Text, s.palette.Background)
	text := []rune(s.reg.Summary())
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(text) {
			r = text[x]
		}
		s.screen.SetContent(x, y, r, nil, style)
	}
}

func textStyle(fg, bg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Tcell()).Background(bg.Tcell())
}

package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-countdown/audio"
	"github.com/lixenwraith/vi-countdown/config"
	"github.com/lixenwraith/vi-countdown/countdown"
	"github.com/lixenwraith/vi-countdown/engine"
	"github.com/lixenwraith/vi-countdown/render"
	"github.com/lixenwraith/vi-countdown/status"
)

// run owns the terminal for the lifetime of the widget
func run(cfg *config.Config, opts *options) error {
	logger, logFile := setupLogging(cfg.Debug, cfg.LogDir)
	if logFile != nil {
		defer logFile.Close()
	}

	palette, err := render.NewPalette(renderTheme(cfg.Theme))
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	applyColorMode(cfg.ColorMode)
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	// Goroutines started through engine.Go restore the terminal before dying
	engine.SetCrashHandler(func(r any) {
		screen.Fini()
		// Use \r\n in case the terminal is still in raw mode
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCOUNTDOWN CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})

	sound := audio.NewSoundManager()
	if cfg.Sound {
		if err := sound.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, continuing without chime")
		}
		defer sound.Cleanup()
	}

	reg := status.NewRegistry()
	loop := engine.NewLoop(clockwork.NewRealClock(), reg)

	var surfaceOpts []render.SurfaceOption
	if cfg.Debug {
		surfaceOpts = append(surfaceOpts, render.WithDebugLine())
	}
	surface := render.NewTerminalSurface(screen, loop, palette, reg, surfaceOpts...)

	widget := countdown.New(loop, surface,
		countdown.WithLogger(logger),
		countdown.WithRegistry(reg),
	)
	widget.OnTimeUp(sound.PlayChime)

	loop.Start()
	defer loop.Stop()

	widget.Attach(surface)

	if cfg.Meeting != "" {
		// The planner chains every following occurrence itself
		loop.Post(newMeetingPlanner(loop, widget, cfg.Meeting, logger).plan)
	}
	if opts.autostart {
		widget.Start(opts.elapsed)
	}

	return pollEvents(screen, widget, logger)
}

// pollEvents blocks on terminal input until the user quits or the terminal closes
func pollEvents(screen tcell.Screen, widget *countdown.Widget, logger zerolog.Logger) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	engine.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			widget.Relayout()
		case *tcell.EventKey:
			if handleKey(ev, widget) {
				logger.Info().Msg("quit requested")
				return nil
			}
		}
	}
	return nil
}

// controller is the part of the widget the keyboard drives
type controller interface {
	Start(secondsAlreadyElapsed int)
	Stop()
}

// handleKey applies a key press and reports whether the app should exit
func handleKey(ev *tcell.EventKey, c controller) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 's', 'S', 'r', 'R':
			c.Start(0)
		case 'x', 'X':
			c.Stop()
		}
	}
	return false
}

// applyColorMode forces tcell's color depth before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
}

func renderTheme(t config.Theme) render.Theme {
	return render.Theme{
		Ring:       t.Ring,
		Revealed:   t.Revealed,
		Highlight:  t.Highlight,
		Marker:     t.Marker,
		Stroke:     t.Stroke,
		Text:       t.Text,
		Background: t.Background,
	}
}

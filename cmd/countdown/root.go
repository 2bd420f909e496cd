package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-countdown/config"
)

// options holds raw flag values, applied over the loaded config only when set
type options struct {
	configPath string
	elapsed    int
	debug      bool
	colorMode  string
	noSound    bool
	meeting    string
	autostart  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Five minute circular countdown for the terminal",
		Long: `Draws a ring that wipes away over five minutes, a marker that orbits once per
minute and an M:SS readout, then chimes when time is up.

Keys: s start, x stop, r restart, q or Esc quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, opts, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "countdown.yaml", "path to the YAML config file")
	f.IntVarP(&opts.elapsed, "elapsed", "e", 0, "seconds already elapsed when auto-starting")
	f.BoolVarP(&opts.debug, "debug", "d", false, "enable file logging and the status line")
	f.StringVar(&opts.colorMode, "color", config.ColorAuto, "color mode: auto, truecolor, 256")
	f.BoolVar(&opts.noSound, "no-sound", false, "disable the time-up chime")
	f.StringVarP(&opts.meeting, "meeting", "m", "", "cron expression of a recurring meeting to count down to")
	f.BoolVarP(&opts.autostart, "autostart", "a", false, "start counting down immediately")

	return cmd
}

// applyFlags overrides config values with the flags the user actually passed
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if f.Changed("color") {
		cfg.ColorMode = opts.colorMode
	}
	if f.Changed("no-sound") {
		cfg.Sound = !opts.noSound
	}
	if f.Changed("meeting") {
		cfg.Meeting = opts.meeting
	}
	// An explicit offset implies starting right away
	if f.Changed("elapsed") {
		opts.autostart = true
	}
}

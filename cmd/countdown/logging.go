package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFileName = "countdown.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging opens dir/countdown.log when debug is on, rotating it past maxLogSize
// The terminal belongs to the widget, so nothing is ever logged to stdout or stderr
func setupLogging(debug bool, dir string) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("countdown_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil
	}

	logger := zerolog.New(file).With().Timestamp().Str("component", "countdown").Logger()
	logger.Info().Int("pid", os.Getpid()).Msg("logging started")
	return logger, file
}

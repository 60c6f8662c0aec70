// Package logger bootstraps the process-wide slog logger with a tint
// handler.
package logger

import (
	"log/slog"
	"os"
	"sync"

	"github.com/lmittmann/tint"
)

var (
	once   sync.Once
	logger *slog.Logger
)

// Options for Init.
type Options struct {
	Level      slog.Leveler // default: slog.LevelInfo
	Writer     *os.File     // default: os.Stderr
	TimeFormat string       // default: 15:04:05
}

// Init installs the tint handler as the default slog logger. Safe to call
// more than once; only the first call takes effect.
func Init(opts *Options) {
	once.Do(func() {
		writer := opts.Writer
		if writer == nil {
			writer = os.Stderr
		}

		handler := tint.NewHandler(writer, &tint.Options{
			Level:      opts.Level,
			TimeFormat: opts.TimeFormat,
		})

		logger = slog.New(handler)
		slog.SetDefault(logger)
	})
}

// L returns the initialized logger, or the slog default when Init has not
// run.
func L() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// Package cli implements the pathfinder command-line interface.
//
// The CLI answers shortest-path queries from graph files, renders the
// result as SVG, runs the HTTP service and manages the local result cache.
// It is built on cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - solve: find the shortest path in a .json or .toml request file
//   - render: draw the graph with the shortest path highlighted
//   - serve: run the HTTP API
//   - cache: clear or locate the local result cache
//   - version: print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes every settle and relax step of the search. Loggers are passed
// through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// parseLevel maps a config log_level to a logger level.
func parseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// progress logs the elapsed time of an operation when it finishes.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Solved query (1ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

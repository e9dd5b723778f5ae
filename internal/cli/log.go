// Package cli implements the robinson command-line interface.
//
// The commands read dissimilarity matrices from JSON, TOML or text files,
// recognize whether they are Robinson, and print or export a compatible
// order. Results are cached by matrix content; see the cache command.
//
// # Commands
//
//   - resolve: find a compatible order for one or more matrices
//   - check: test a matrix (optionally under a given order) for the Robinson property
//   - demo: generate a random Robinson matrix, shuffle it and recover an order
//   - trace: render the decomposition tree of a resolution
//   - view: browse a matrix and its reordering in the terminal
//   - serve: run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// elapsed returns the time since the progress was created, rounded to the
// microsecond.
func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Microsecond)
}

// done logs msg along with the elapsed time, e.g. "Resolved 3 matrices (1.234ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.elapsed())
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

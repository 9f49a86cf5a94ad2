package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ivlev/transitions/internal/config"
)

// newLogger creates a timestamped logger writing to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// app is the per-invocation state the root command prepares for its
// subcommands.
type app struct {
	cfg    *config.Config
	logger *log.Logger
}

type ctxKey int

const appKey ctxKey = 0

func withApp(ctx context.Context, a *app) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// appFromContext returns the state attached by the root command, or a
// default configuration when none is attached.
func appFromContext(ctx context.Context) *app {
	if a, ok := ctx.Value(appKey).(*app); ok {
		return a
	}
	return &app{cfg: config.Default(), logger: log.Default()}
}

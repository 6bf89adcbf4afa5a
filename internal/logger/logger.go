package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Log is the global logger instance
var Log *slog.Logger

// Options controls where and how records are written.
type Options struct {
	Dev       bool
	SentryDSN string
	Output    io.Writer    // defaults to stdout
	Component string       // "server" or "cli", attached to every record
	Level     slog.Leveler // overrides the Dev/production default
}

// Init initializes the global logger for the web server.
// Development: Text format with Debug level
// Production: JSON format with Info level
func Init(isDev bool, sentryDSN string) {
	Setup(Options{Dev: isDev, SentryDSN: sentryDSN, Component: "server"})
}

// Setup builds the logger from explicit options and installs it as the slog default.
// Errors are also shipped to Sentry when a DSN is configured.
func Setup(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var handlers []slog.Handler
	if opts.Dev {
		handlers = append(handlers, slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: level(opts.Level, slog.LevelDebug),
		}))
	} else {
		handlers = append(handlers, slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: level(opts.Level, slog.LevelInfo),
		}))
	}

	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              opts.SentryDSN,
			TracesSampleRate: 1.0,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	Log = slog.New(handler)
	if opts.Component != "" {
		Log = Log.With("component", opts.Component)
	}
	slog.SetDefault(Log)
	return Log
}

func level(l slog.Leveler, def slog.Level) slog.Leveler {
	if l == nil {
		return def
	}
	return l
}

// Package log provides a thin leveled logging layer on top of zerolog,
// shared by all packages of this module.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger

	// panicOnInvalidChars signals whether the logger should panic when a log
	// line carries invalid UTF-8, typically a byte slice formatted with %s.
	// Only meant to catch bad log calls in tests.
	panicOnInvalidChars = os.Getenv("LOG_PANIC_ON_INVALIDCHARS") == "true"

	// logTestWriter is the sink used when Init is called with
	// logTestWriterName as output, so tests and benchmarks can capture or
	// discard the log stream.
	logTestWriter io.Writer = io.Discard
)

const logTestWriterName = "logtest"

// checkInvalidChars panics if the formatted message carries invalid UTF-8,
// typically a byte slice formatted with %s, and panicOnInvalidChars is set.
func checkInvalidChars(format string, args []any) {
	if !panicOnInvalidChars {
		return
	}
	if msg := fmt.Sprintf(format, args...); !utf8.ValidString(msg) {
		panic(fmt.Sprintf("invalid char in log message: %q", msg))
	}
}

// Init initializes the logger with the given level ("debug", "info", "warn",
// "error" or "fatal") and output ("stdout", "stderr", the special test writer
// name or a file path). An optional second writer receives a copy of error
// and fatal messages.
func Init(level, output string, errorOutput io.Writer) {
	var out io.Writer
	switch output {
	case "stdout":
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}
	case "stderr":
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339Nano}
	case logTestWriterName:
		out = logTestWriter
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Sprintf("cannot open log output %q: %v", output, err))
		}
		out = f
	}
	if errorOutput != nil {
		out = zerolog.MultiLevelWriter(out, errorLevelWriter{errorOutput})
	}
	log = zerolog.New(out).With().Timestamp().Logger()
	switch strings.ToLower(level) {
	case "debug":
		log = log.Level(zerolog.DebugLevel)
	case "info":
		log = log.Level(zerolog.InfoLevel)
	case "warn":
		log = log.Level(zerolog.WarnLevel)
	case "error":
		log = log.Level(zerolog.ErrorLevel)
	case "fatal":
		log = log.Level(zerolog.FatalLevel)
	default:
		panic(fmt.Sprintf("invalid log level: %q", level))
	}
}

// errorLevelWriter forwards only error and fatal lines to its writer.
type errorLevelWriter struct{ w io.Writer }

func (w errorLevelWriter) Write(p []byte) (int, error) { return len(p), nil }

func (w errorLevelWriter) WriteLevel(lv zerolog.Level, p []byte) (int, error) {
	if lv < zerolog.ErrorLevel {
		return len(p), nil
	}
	return w.w.Write(p)
}

// Logger returns the underlying zerolog logger.
func Logger() *zerolog.Logger { return &log }

func Debugf(format string, args ...any) {
	checkInvalidChars(format, args)
	log.Debug().Msgf(format, args...)
}

func Infof(format string, args ...any) {
	checkInvalidChars(format, args)
	log.Info().Msgf(format, args...)
}

func Warnf(format string, args ...any) {
	checkInvalidChars(format, args)
	log.Warn().Msgf(format, args...)
}

func Errorf(format string, args ...any) {
	checkInvalidChars(format, args)
	log.Error().Msgf(format, args...)
}

func Debug(args ...any) { log.Debug().Msg(fmt.Sprint(args...)) }
func Info(args ...any)  { log.Info().Msg(fmt.Sprint(args...)) }
func Warn(args ...any)  { log.Warn().Msg(fmt.Sprint(args...)) }
func Error(args ...any) { log.Error().Msg(fmt.Sprint(args...)) }

// Fatalf logs a message and exits.
func Fatalf(format string, args ...any) { log.Fatal().Msgf(format, args...) }

// Debugw logs a message at debug level with key-value fields.
func Debugw(msg string, keyvals ...any) { logw(log.Debug(), msg, keyvals) }

// Infow logs a message at info level with key-value fields.
func Infow(msg string, keyvals ...any) { logw(log.Info(), msg, keyvals) }

// Warnw logs a message at warn level with key-value fields.
func Warnw(msg string, keyvals ...any) { logw(log.Warn(), msg, keyvals) }

// Errorw logs an error with an accompanying message.
func Errorw(err error, msg string) { log.Error().Err(err).Msg(msg) }

func logw(ev *zerolog.Event, msg string, keyvals []any) {
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		ev = ev.Interface(key, keyvals[i+1])
	}
	ev.Msg(msg)
}

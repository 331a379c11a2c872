package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"promptmail/internal/config"
)

// Logger wraps zerolog.Logger with application-specific methods
type Logger struct {
	zerolog.Logger
	closer io.Closer
}

// New creates a Logger from the log section of the config. Console output
// goes to stderr so it never interleaves with the terminal front ends'
// stdout. When cfg.File is set, a rolling JSON log file is written as well.
func New(cfg config.LogConfig) *Logger {
	return build(cfg, true)
}

// NewFileOnly is New without the console stream, for the full-screen
// terminal UI. Without cfg.File nothing is written.
func NewFileOnly(cfg config.LogConfig) *Logger {
	return build(cfg, false)
}

func build(cfg config.LogConfig, withConsole bool) *Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	l := &Logger{}
	var writers []io.Writer
	if withConsole {
		if cfg.Format == "json" {
			writers = append(writers, os.Stderr)
		} else {
			writers = append(writers, zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			})
		}
	}
	if cfg.File != "" {
		rolling := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		writers = append(writers, rolling)
		l.closer = rolling
	}
	if len(writers) == 0 {
		return Nop()
	}

	l.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	return l
}

// NewWriter creates a Logger writing JSON lines to w. Used by tests and by
// front ends that own the terminal.
func NewWriter(w io.Writer) *Logger {
	return &Logger{Logger: zerolog.New(w).With().Timestamp().Logger()}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithComponent returns a new logger with the component name attached
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.With().Str("component", component).Logger(),
		closer: l.closer,
	}
}

// Close flushes and closes the rolling log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Package logging provides a shared, structured logger for cipher-nexus.
//
// It wraps [log/slog] and provides a single initialization point so all
// components share the same handler and level. The level comes from the
// CIPHER_NEXUS_LOG_LEVEL environment variable (debug, info, warn, error) and
// defaults to INFO.
//
// Usage:
//
//	log := logging.New("config")
//	log.Info("loaded config", "path", p)
//	log.Error("failed to save", "error", err)
//
// The terminal UI owns stdout and stderr while it runs, so records go to a
// rotating file under ~/.cipher-nexus by default. CIPHER_NEXUS_LOG_FILE picks
// another path; "-" sends records to stderr, which suits the one-shot CLI
// commands, and "off" discards them. The sink is resolved on the first write,
// not when New is called, so package-level loggers follow the environment of
// the running process rather than the one seen during package init.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// EnvLevel selects the minimum level.
	EnvLevel = "CIPHER_NEXUS_LOG_LEVEL"
	// EnvFile overrides the log file path.
	EnvFile = "CIPHER_NEXUS_LOG_FILE"

	defaultFileName = "cipher-nexus.log"
)

var (
	initLogger sync.Once
	baseLogger *slog.Logger
)

// New returns a logger tagged with component. An empty component returns the
// base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = slog.New(slog.NewTextHandler(&lazySink{}, &slog.HandlerOptions{
			Level: parseLevel(os.Getenv(EnvLevel)),
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// lazySink opens the configured sink on its first write.
type lazySink struct {
	once sync.Once
	w    io.Writer
}

func (s *lazySink) Write(p []byte) (int, error) {
	s.once.Do(func() {
		s.w = openSink(os.Getenv(EnvFile))
	})
	return s.w.Write(p)
}

// openSink resolves where records are written. Failure to resolve a home
// directory falls back to discarding, never to the terminal.
func openSink(path string) io.Writer {
	path = strings.TrimSpace(path)
	switch strings.ToLower(path) {
	case "-":
		return os.Stderr
	case "off":
		return io.Discard
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return io.Discard
		}
		path = filepath.Join(home, ".cipher-nexus", defaultFileName)
	}
	return newRotatingFile(path)
}

func newRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     14,
	}
}

// parseLevel converts a human-readable level to a [slog.Level]. Unknown
// values select INFO.
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

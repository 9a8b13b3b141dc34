// Package logger provides structured logging for the engine.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger  *slog.Logger
	logFile *lumberjack.Logger

	// consoleOutput is stderr so log lines never interleave with game text on stdout.
	consoleOutput io.Writer = os.Stderr
)

// Initialize points the package logger at the sinks enabled in config. Both
// sinks share one text handler and level; with neither enabled records are dropped.
func Initialize(config Config) error {
	config = config.WithDefaults()
	Close()

	var sinks []io.Writer
	if config.ConsoleEnabled {
		sinks = append(sinks, consoleOutput)
	}
	if config.FileEnabled {
		logFile = &lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.FileMaxSizeMB,
			MaxBackups: config.FileMaxBackups,
			MaxAge:     config.FileMaxAgeDays,
		}
		sinks = append(sinks, logFile)
	}

	out := io.Discard
	if len(sinks) > 0 {
		out = io.MultiWriter(sinks...)
	}
	logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLogLevel(config.Level),
	}))
	return nil
}

// Close flushes and closes the log file, if any
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Debugf logs a printf-style debug line with no attributes
func Debugf(format string, args ...any) {
	Debug(fmt.Sprintf(format, args...))
}

func Info(msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

func Error(msg string, args ...any) {
	if logger != nil {
		logger.Error(msg, args...)
	}
}

// Errorf logs a printf-style error line with no attributes
func Errorf(format string, args ...any) {
	Error(fmt.Sprintf(format, args...))
}

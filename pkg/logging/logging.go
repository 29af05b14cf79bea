package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	appDir         = "dotlink"
	DefaultLogFile = "dotlink.log"
)

// Options tunes SetupLogger beyond the verbosity count.
type Options struct {
	// Level overrides the verbosity-derived level when verbosity is 0.
	Level string
	// Color enables colored console output.
	Color bool
	// Console receives the human readable stream, os.Stderr when nil.
	Console io.Writer
}

var (
	consoleWriter io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen, NoColor: true}
	withCaller    bool
)

// SetupLogger configures the global logger based on verbosity level.
// Output goes to the console only; the log file is added by AttachLogFile
// once the run is known to proceed.
func SetupLogger(verbosity int, opts Options) {
	zerolog.SetGlobalLevel(levelFor(verbosity, opts.Level))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleWriter = zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    !opts.Color,
	}
	withCaller = verbosity >= 2
	setOutput(consoleWriter)

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// AttachLogFile adds $XDG_STATE_HOME/dotlink/<name> as a second sink and
// returns its path. On failure the logger keeps writing to the console only.
func AttachLogFile(name string) (string, error) {
	logFile := getLogFilePath(name)
	handle, err := setupLogFile(logFile)
	if err != nil {
		return logFile, err
	}

	setOutput(io.MultiWriter(consoleWriter, handle))
	log.Debug().Str("logFile", logFile).Msg("Log file attached")
	return logFile, nil
}

func setOutput(w io.Writer) {
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	if withCaller {
		log.Logger = log.Logger.With().Caller().Logger()
	}
}

// levelFor maps -v counts to levels. An explicit level only applies when no
// -v flag was given.
func levelFor(verbosity int, level string) zerolog.Level {
	if verbosity == 0 && level != "" {
		if parsed, err := zerolog.ParseLevel(level); err == nil && parsed != zerolog.NoLevel {
			return parsed
		}
	}

	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath returns $XDG_STATE_HOME/dotlink/<name>.
func getLogFilePath(name string) string {
	if name == "" {
		name = DefaultLogFile
	}
	// pick up XDG_* changes made after package init
	xdg.Reload()
	return filepath.Join(xdg.StateHome, appDir, name)
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

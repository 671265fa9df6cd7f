package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Pretty bool   // Enable pretty console output
}

// New creates a new structured logger
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stderr
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Logger()
}

// EngineLogger adapts a zerolog.Logger to the projection engine's Logger
// interface.
type EngineLogger struct {
	log zerolog.Logger
}

// NewEngineLogger wraps a zerolog logger for the engine.
func NewEngineLogger(log zerolog.Logger) *EngineLogger {
	return &EngineLogger{log: log}
}

func (l *EngineLogger) Debugf(format string, args ...any) { l.log.Debug().Msgf(format, args...) }
func (l *EngineLogger) Infof(format string, args ...any)  { l.log.Info().Msgf(format, args...) }
func (l *EngineLogger) Warnf(format string, args ...any)  { l.log.Warn().Msgf(format, args...) }
func (l *EngineLogger) Errorf(format string, args ...any) { l.log.Error().Msgf(format, args...) }

package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config параметри логера.
type Config struct {
	Env   string // development -> читабельна консоль; production -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger обгортка над zerolog для ін'єкції залежностей.
type Logger struct {
	zl zerolog.Logger
}

// New створює структурований логер. У development — консольний вивід, у production — JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// Перенаправляємо глобальний логер zerolog для бібліотек, що ним користуються
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Trace..Fatal делегуються zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With створює піділогер із фіксованими полями.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog повертає внутрішній логер, якщо потрібен прямий API.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}

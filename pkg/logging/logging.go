// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup()                          // INFO level, from LOG_LEVEL env
//	logging.SetupWithLevel(slog.LevelDebug)  // explicit level override
//	logging.SetupWithParams(logging.Params{  // level name plus rotating log file
//		Level: "debug",
//		File:  "./data/deskwalk.log",
//	})
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params configures SetupWithParams.
type Params struct {
	// Level is a level name; empty falls back to LOG_LEVEL.
	Level string

	// File, if set, receives a copy of every log line. The file is rotated
	// at 50 MB and old files are compressed.
	File string
}

// Setup configures colored logging at the level specified by LOG_LEVEL env var
// (default: INFO).
func Setup() {
	SetupWithLevel(levelFromEnv())
}

// SetupWithLevel configures colored logging at the given level.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(newHandler(os.Stderr, level, false)))
}

// SetupWithParams configures logging from params. The returned closer
// flushes and closes the log file, if any.
func SetupWithParams(params Params) io.Closer {
	level := levelFromEnv()
	if params.Level != "" {
		level = ParseLevel(params.Level)
	}

	if params.File == "" {
		SetupWithLevel(level)
		return nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename: params.File,
		MaxSize:  50, // megabytes
		Compress: true,
	}
	// Colors are disabled so the file stays free of escape codes.
	w := NewCombinedWriter(os.Stderr, file)
	slog.SetDefault(slog.New(newHandler(w, level, true)))
	return file
}

func newHandler(w io.Writer, level slog.Level, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    noColor,
	})
}

// ParseLevel maps a level name to a slog.Level, defaulting to INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func levelFromEnv() slog.Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

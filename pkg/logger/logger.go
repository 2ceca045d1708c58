// Package logger provides a logger implementation using slog
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/8thgencore/webstore/internal/config"
	"github.com/golang-cz/devslog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates a new logger with configured formatting and logging level
func New(env config.Env, cfg config.LoggingConfig) *slog.Logger {
	var log *slog.Logger

	w := Writer(cfg)
	level := Level(cfg.Level)

	if env == config.Prod {
		slogOpts := &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
		}
		log = slog.New(slog.NewJSONHandler(w, slogOpts))
	} else {
		slogOpts := &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
		}
		opts := &devslog.Options{
			HandlerOptions:    slogOpts,
			MaxSlicePrintSize: 10,
			SortKeys:          true,
			NewLineAfterLog:   true,
			StringerFormatter: true,
			TimeFormat:        "[15:04:05.000]",
		}

		log = slog.New(devslog.NewHandler(w, opts))
	}

	// Set the logger as the default logger
	slog.SetDefault(log)

	return log
}

// Level parses a level name, falling back to info
func Level(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Writer resolves the log output: stdout, stderr, or a rotated file
func Writer(cfg config.LoggingConfig) io.Writer {
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	}

	return &lumberjack.Logger{
		Filename:   cfg.Output,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     int(cfg.MaxAge.Hours() / 24),
		Compress:   cfg.Compress,
	}
}

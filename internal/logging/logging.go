// Package logging sets up the application logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"workrest/internal/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the log file created under the log directory.
const FileName = "workrest.log"

// Result contains the logger and the writer backing it.
type Result struct {
	Logger   *slog.Logger
	LogFile  io.WriteCloser
	FilePath string
}

// Close closes the log file if it was opened.
func (r *Result) Close() error {
	if r.LogFile != nil {
		return r.LogFile.Close()
	}
	return nil
}

// ParseLevel maps a level name to slog.Level. Unknown names yield info and an error.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Setup creates a JSON logger writing to a rotating file. The file is
// options.File when set, otherwise FileName inside logDir.
func Setup(logDir string, options config.LogOptions) (*Result, error) {
	level, levelErr := ParseLevel(options.Level)

	path := options.File
	if path == "" {
		path = filepath.Join(logDir, FileName)
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    options.Rotation.MaxSizeMB,
		MaxBackups: options.Rotation.MaxBackups,
		MaxAge:     options.Rotation.MaxAgeDays,
		Compress:   options.Rotation.Compress,
	}

	return &Result{
		Logger:   NewWithWriter(writer, level),
		LogFile:  writer,
		FilePath: path,
	}, levelErr
}

// NewWithWriter creates a JSON logger writing to w.
func NewWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

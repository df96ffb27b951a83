// Package logger wires the application's structured logger. Output is
// JSON on stdout; when a log directory is configured, entries also go
// to a size-rotated file.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration
type Config struct {
	Level  slog.Level
	LogDir string
}

// New builds the logger for the given configuration.
func New(cfg Config) (*slog.Logger, error) {
	var writer io.Writer = os.Stdout

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
			return nil, err
		}

		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, "second-brain.log"),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		writer = io.MultiWriter(os.Stdout, fileWriter)
	}

	return slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: cfg.Level,
	})), nil
}

package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestNew_StdoutOnly(t *testing.T) {
	log, err := New(Config{Level: slog.LevelInfo})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	if log == nil {
		t.Fatal("Logger is nil")
	}

	log.Info("test message", "key", "value")
}

func TestNew_WithLogDir(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	log, err := New(Config{Level: slog.LevelInfo, LogDir: logDir})
	if err != nil {
		t.Fatalf("Failed to initialize logger with log dir: %v", err)
	}

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}

	log.Info("test message to file")
}

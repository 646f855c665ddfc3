// ABOUTME: Tests for logger setup.
// ABOUTME: Verifies level mapping and that file logging writes to disk.
package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestGetLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"trace", logrus.TraceLevel},
		{"", logrus.WarnLevel},
		{"loud", logrus.WarnLevel},
	}
	for _, tt := range tests {
		if got := GetLevel(tt.in); got != tt.want {
			t.Errorf("GetLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupStderr(t *testing.T) {
	logger := logrus.New()
	closer := Setup(logger, LoggerSetupParams{LogLevel: "debug"})
	defer closer.Close()

	if logger.Out != os.Stderr {
		t.Error("expected stderr output")
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %v", logger.GetLevel())
	}
}

func TestSetupFile(t *testing.T) {
	dir := t.TempDir()
	logger := logrus.New()
	closer := Setup(logger, LoggerSetupParams{
		LogFileName:   filepath.Join(dir, "logs", "routine"),
		LogLevel:      "info",
		LogFormatJSON: true,
	})

	if _, ok := logger.Out.(*lumberjack.Logger); !ok {
		t.Errorf("expected file-only output, got %T", logger.Out)
	}

	logger.WithField("workouts", 3).Info("loaded snapshot")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "logs", "routine.log"))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"loaded snapshot"`) {
		t.Errorf("expected JSON log line, got %s", data)
	}
}

func TestSetupFileAndStderr(t *testing.T) {
	logger := logrus.New()
	closer := Setup(logger, LoggerSetupParams{
		LogFileName: filepath.Join(t.TempDir(), "routine.log"),
		LogToStderr: true,
	})
	defer closer.Close()

	if logger.Out == os.Stderr {
		t.Error("expected the log file to receive output too")
	}
	if _, ok := logger.Out.(*lumberjack.Logger); ok {
		t.Error("expected stderr to receive output too")
	}
}

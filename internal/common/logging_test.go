package common

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLogFilesExplicitPath(t *testing.T) {
	logPath, errPath, err := RunLogFiles("input.pdf", "custom.log", "")
	if err != nil {
		t.Fatalf("RunLogFiles: %v", err)
	}
	if logPath != "custom.log" {
		t.Errorf("log path = %q, want custom.log", logPath)
	}
	if errPath != "custom.err" {
		t.Errorf("err path = %q, want custom.err", errPath)
	}
}

func TestRunLogFilesIncrementingSuffix(t *testing.T) {
	t.Chdir(t.TempDir())

	logPath, errPath, err := RunLogFiles("protokoll.pdf", "", "")
	if err != nil {
		t.Fatalf("RunLogFiles: %v", err)
	}
	if logPath != "protokoll_1.log" || errPath != "protokoll_1.err" {
		t.Fatalf("first pair = %q/%q, want protokoll_1.log/.err", logPath, errPath)
	}

	// Existing files are never overwritten; the suffix increments past them.
	if err := os.WriteFile("protokoll_1.log", nil, 0o644); err != nil {
		t.Fatal(err)
	}
	logPath, errPath, err = RunLogFiles("protokoll.pdf", "", "")
	if err != nil {
		t.Fatalf("RunLogFiles: %v", err)
	}
	if logPath != "protokoll_2.log" || errPath != "protokoll_2.err" {
		t.Errorf("second pair = %q/%q, want protokoll_2.log/.err", logPath, errPath)
	}
}

func TestNewRunLoggerSplitsLevels(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "run.log")

	logger, closeFiles, err := NewRunLogger("input.pdf", logPath, "")
	if err != nil {
		t.Fatalf("NewRunLogger: %v", err)
	}

	logger.Debug("debug event", "page", 1)
	logger.Error("error event", "page", 2)
	if err := closeFiles(); err != nil {
		t.Fatalf("closing log files: %v", err)
	}

	logData, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	errData, err := os.ReadFile(filepath.Join(dir, "run.err"))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(logData), "debug event") || !strings.Contains(string(logData), "error event") {
		t.Error("primary log should carry all levels")
	}
	if strings.Contains(string(errData), "debug event") {
		t.Error("error log should not carry debug records")
	}
	if !strings.Contains(string(errData), "error event") {
		t.Error("error log should carry error records")
	}
}

func TestMultiHandlerWithAttrs(t *testing.T) {
	var sb strings.Builder
	h := NewMultiHandler(slog.NewTextHandler(&sb, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger := slog.New(h).With("file", "a.pdf")

	logger.Info("event", "page", 3)
	out := sb.String()
	if !strings.Contains(out, "file=a.pdf") || !strings.Contains(out, "page=3") {
		t.Errorf("output missing attrs: %q", out)
	}

	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("handler should be enabled at info")
	}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("handler should not be enabled at debug")
	}
}

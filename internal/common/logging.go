package common

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// MultiHandler fans each record out to every wrapped handler. Levels are
// decided per handler, so a debug-level file handler and an error-only file
// handler can share one logger.
type MultiHandler struct {
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		next[i] = h.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: next}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		next[i] = h.WithGroup(name)
	}
	return &MultiHandler{handlers: next}
}

// RunLogFiles resolves the primary/error log file pair for an input file.
// An explicit logPath wins; its errPath defaults to the same path with the
// extension swapped to .err. Without an explicit path, names derive from the
// input filename with the first free incrementing numeric suffix so repeated
// runs never overwrite earlier logs.
func RunLogFiles(inputPath, logPath, errPath string) (string, string, error) {
	if logPath != "" {
		if errPath == "" {
			errPath = swapExt(logPath, ".err")
		}
		return logPath, errPath, nil
	}

	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	for suffix := 1; ; suffix++ {
		candidate := fmt.Sprintf("%s_%d.log", stem, suffix)
		if _, err := os.Stat(candidate); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return "", "", WrapError(err, "probing log file")
		}
		return candidate, swapExt(candidate, ".err"), nil
	}
}

func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// NewRunLogger builds the per-run logger: console (stderr) at info, a primary
// log file at debug, and an error-only log file. The returned closer releases
// both files.
func NewRunLogger(inputPath, logPath, errPath string) (*slog.Logger, func() error, error) {
	logPath, errPath, err := RunLogFiles(inputPath, logPath, errPath)
	if err != nil {
		return nil, nil, err
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, WrapError(err, "opening log file")
	}
	errFile, err := os.OpenFile(errPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		_ = logFile.Close()
		return nil, nil, WrapError(err, "opening error log file")
	}

	handler := NewMultiHandler(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(errFile, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	closer := func() error {
		err1 := logFile.Close()
		err2 := errFile.Close()
		if err1 != nil {
			return err1
		}
		return err2
	}
	return slog.New(handler), closer, nil
}
